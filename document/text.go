package document

import (
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"time"

	"golang.org/x/text/language"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

// Text is free text with optional translations.
type Text struct {
	Default      string                  // Text for the undetermined language
	Translations map[language.Tag]string // Localized variants
}

// NewText returns untranslated text.
func NewText(s string) *Text {
	return &Text{Default: s}
}

// String returns the text in the default language.
func (t *Text) String() string {
	return t.Default
}

// Localized returns the translation best matching tag, or the default text
// when no translation matches.
func (t *Text) Localized(tag language.Tag) string {
	if tag == language.Und || len(t.Translations) == 0 {
		return t.Default
	}
	tags := make([]language.Tag, 0, len(t.Translations))
	for k := range t.Translations {
		tags = append(tags, k)
	}
	slices.SortFunc(tags, func(a, b language.Tag) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	})
	_, i, confidence := language.NewMatcher(tags).Match(tag)
	if confidence == language.No {
		return t.Default
	}
	return t.Translations[tags[i]]
}

// UnmarshalJSON accepts a string or an object of language tags. In the
// object form the "und" entry is the default text; without it the English
// entry is used, then the first tag in alphabetical order.
func (t *Text) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Text{Default: s}
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("text shall be a string or an object of language tags: %w", err)
	}
	*t = Text{Translations: make(map[language.Tag]string, len(m))}
	var first string
	for k, v := range m {
		tag, err := language.Parse(k)
		if err != nil {
			return fmt.Errorf("text: invalid language tag %q: %w", k, err)
		}
		t.Translations[tag] = v
		if first == "" || k < first {
			first = k
		}
	}
	switch {
	case m["und"] != "":
		t.Default = m["und"]
		delete(t.Translations, language.Und)
	case m["en"] != "":
		t.Default = m["en"]
	default:
		t.Default = m[first]
	}
	return nil
}

// Date is a timestamp accepting calendar dates and RFC 3339 date-times.
type Date struct {
	time.Time
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// UnmarshalJSON decodes a date string.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date shall be a string: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}

// UnmarshalText parses "2006-01-02", a local date-time or RFC 3339.
func (d *Date) UnmarshalText(b []byte) error {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, string(b)); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", string(b))
}

func (d *Date) value() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}

// URL is a parsed URI reference.
type URL struct {
	*url.URL
}

// UnmarshalText parses a URI reference.
func (u *URL) UnmarshalText(b []byte) error {
	parsed, err := url.Parse(string(b))
	if err != nil {
		return err
	}
	u.URL = parsed
	return nil
}

func (u *URL) value() *url.URL {
	if u == nil {
		return nil
	}
	return u.URL
}

// view returns e as an I, or the nil I when e is nil.
func view[I any, E any](e *E) I {
	var zero I
	if e == nil {
		return zero
	}
	return any(e).(I)
}

// views converts elements to interface values. Nil elements stay nil
// pointers so validators see them as null elements.
func views[I any, E any](items []*E) []I {
	if items == nil {
		return nil
	}
	out := make([]I, len(items))
	for i, e := range items {
		out[i] = any(e).(I)
	}
	return out
}

func texts(items []*Text) []metadata.InternationalString {
	return views[metadata.InternationalString](items)
}

func text(t *Text) metadata.InternationalString {
	return view[metadata.InternationalString](t)
}
