package metadata

import (
	"errors"

	"golang.org/x/text/language"
)

// ErrUnknownCode is returned when a code list name matches no well-known value.
var ErrUnknownCode = errors.New("metadata: unknown code")

// InternationalString is a character string that may be localized.
type InternationalString interface {
	// String returns the text in the default locale.
	String() string
	// Localized returns the text for the given language, falling back to the
	// default locale when no translation exists. Localized(language.Und)
	// returns the same text as String.
	Localized(tag language.Tag) string
}

// Record is one value of a quantitative result.
type Record interface {
	// Fields returns the record attributes keyed by member name.
	Fields() map[string]any
}

// Bool returns a pointer to b, for optional Boolean attributes.
func Bool(b bool) *bool { return &b }
