package conformance

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

// identity keys the visited set. Only reference-like values have one.
type identity struct {
	typ reflect.Type
	ptr uintptr
}

func identityOf(v reflect.Value) (identity, bool) {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return identity{}, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if v.IsNil() {
			return identity{}, false
		}
		return identity{typ: v.Type(), ptr: v.Pointer()}, true
	}
	return identity{}, false
}

// pass is the state of a single validation walk.
type pass struct {
	c       *Container
	visited map[identity]struct{}
}

func (c *Container) newPass() *pass {
	return &pass{c: c, visited: make(map[identity]struct{})}
}

func (p *pass) cfg() *Config {
	return &p.c.cfg
}

// enter reports whether obj must be validated, marking it as visited.
// Absent objects and objects already seen during this walk are skipped.
// Value types have no identity and are always entered.
func (p *pass) enter(obj any) bool {
	if isNil(obj) {
		return false
	}
	key, ok := identityOf(reflect.ValueOf(obj))
	if !ok {
		return true
	}
	if _, seen := p.visited[key]; seen {
		return false
	}
	p.visited[key] = struct{}{}
	return true
}

// missing returns an ErrMandatory failure.
func (p *pass) missing(validator, message string) error {
	return p.fail(ErrMandatory, validator, message)
}

// violation returns an ErrConstraint failure.
func (p *pass) violation(validator, format string, args ...any) error {
	return p.fail(ErrConstraint, validator, fmt.Sprintf(format, args...))
}

func (p *pass) fail(kind error, validator, message string) error {
	p.c.logger.Debug("conformance failure",
		slog.String("validator", validator),
		slog.String("kind", kindName(kind)),
		slog.String("message", message))
	return &Failure{Kind: kind, Validator: validator, Message: message}
}

// require fails with ErrMandatory when n is zero and mandatory attributes
// are enforced.
func (p *pass) require(validator string, n int, message string) error {
	if n == 0 && p.cfg().RequireMandatoryAttributes {
		return p.missing(validator, message)
	}
	return nil
}

func (p *pass) text(s metadata.InternationalString) error {
	return p.c.Metadata.text(p, s)
}

func (p *pass) mandatoryText(validator string, s metadata.InternationalString, message string) error {
	if isNil(s) || blank(s.String()) {
		return p.missing(validator, message)
	}
	return p.c.Metadata.text(p, s)
}

func (p *pass) texts(owner string, list []metadata.InternationalString) error {
	items, err := collect[metadata.InternationalString](p, owner, list)
	if err != nil {
		return err
	}
	for _, s := range items {
		if err := p.text(s); err != nil {
			return err
		}
	}
	return nil
}

func (p *pass) identifiers(owner string, list []metadata.Identifier) error {
	items, err := collect[metadata.Identifier](p, owner, list)
	if err != nil {
		return err
	}
	for _, id := range items {
		if err := p.c.Metadata.identifier(p, id); err != nil {
			return err
		}
	}
	return nil
}

func (p *pass) responsibilities(owner string, list []metadata.Responsibility) error {
	items, err := collect[metadata.Responsibility](p, owner, list)
	if err != nil {
		return err
	}
	for _, r := range items {
		if err := p.c.Citation.responsibility(p, r); err != nil {
			return err
		}
	}
	return nil
}

func (p *pass) extents(owner string, list []metadata.Extent) error {
	items, err := collect[metadata.Extent](p, owner, list)
	if err != nil {
		return err
	}
	for _, e := range items {
		if err := p.c.Extent.extent(p, e); err != nil {
			return err
		}
	}
	return nil
}

// collect materializes a collection attribute, naming the owning attribute
// in failures.
func collect[T any](p *pass, owner string, collection any) ([]T, error) {
	items, err := Materialize[T](collection)
	if err != nil {
		f := err.(*Failure)
		return nil, p.fail(f.Kind, f.Validator, owner+": "+f.Message)
	}
	return items, nil
}

// Sized is implemented by collections reporting their size independently of
// iteration. Materialize checks the reported size against the iterated count.
type Sized interface {
	Len() int
}

// Materialize copies a collection into a slice of T.
//
// The collection may be a slice, an array or a range-over-func iterator
// (func(yield func(E) bool)). Elements keep their iteration order and
// duplicates, by pointer identity, are kept only at their first occurrence.
// A nil slice is an empty collection. Materialize fails with ErrMandatory when
// the collection itself is nil and with ErrConstraint on a nil element, an
// element that is not a T, or a Sized collection whose Len disagrees with the
// number of iterated elements.
func Materialize[T any](collection any) ([]T, error) {
	if collection == nil {
		return nil, collectionFailure(ErrMandatory, "collection shall not be null")
	}
	rv := reflect.ValueOf(collection)
	var values []reflect.Value
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		values = make([]reflect.Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			values = append(values, rv.Index(i))
		}
	case reflect.Func:
		if rv.IsNil() {
			return nil, collectionFailure(ErrMandatory, "collection shall not be null")
		}
		if !isSeq(rv.Type()) {
			return nil, collectionFailure(ErrConstraint, fmt.Sprintf("%T is not a collection", collection))
		}
		for v := range rv.Seq() {
			values = append(values, v)
		}
	default:
		return nil, collectionFailure(ErrConstraint, fmt.Sprintf("%T is not a collection", collection))
	}
	if sized, ok := collection.(Sized); ok && sized.Len() != len(values) {
		return nil, collectionFailure(ErrConstraint, fmt.Sprintf(
			"collection size changed during iteration: Len reported %d but %d elements were iterated",
			sized.Len(), len(values)))
	}

	out := make([]T, 0, len(values))
	seen := make(map[identity]struct{}, len(values))
	for i, v := range values {
		if isNilValue(v) {
			return nil, collectionFailure(ErrConstraint, fmt.Sprintf("null element at index %d", i))
		}
		elem, ok := v.Interface().(T)
		if !ok {
			return nil, collectionFailure(ErrConstraint, fmt.Sprintf(
				"wrong element type at index %d: %T is not a %s",
				i, v.Interface(), reflect.TypeFor[T]()))
		}
		if key, ok := identityOf(v); ok {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		out = append(out, elem)
	}
	return out, nil
}

func collectionFailure(kind error, message string) *Failure {
	return &Failure{Kind: kind, Validator: "collection", Message: message}
}

// isSeq reports whether t is func(yield func(E) bool).
func isSeq(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 && yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	return isNilValue(reflect.ValueOf(v))
}

func isNilValue(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return true
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func kindName(kind error) string {
	switch kind {
	case ErrMandatory:
		return "mandatory"
	case ErrConstraint:
		return "constraint"
	}
	return "unknown"
}
