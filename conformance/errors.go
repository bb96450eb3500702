package conformance

import "errors"

// Failure kinds. Every error returned by a validator wraps one of them.
var (
	// ErrMandatory reports a mandatory attribute that is absent, or a
	// collection that is empty where at least one element is required.
	ErrMandatory = errors.New("conformance: mandatory attribute missing")

	// ErrConstraint reports a present value that breaks an ordering, range
	// or completeness rule.
	ErrConstraint = errors.New("conformance: constraint violated")

	// ErrInvalidConfig is returned when the configuration cannot be loaded.
	ErrInvalidConfig = errors.New("conformance: invalid configuration")
)

// Failure is a conformance violation.
type Failure struct {
	Kind      error  // ErrMandatory or ErrConstraint
	Validator string // Validator that detected the violation ("citation", "extent", ...)
	Message   string // Human-readable description naming the entity and attribute
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return f.Message
}

// Unwrap returns the failure kind for errors.Is compatibility.
func (f *Failure) Unwrap() error {
	return f.Kind
}

// IsMandatory reports whether err is a missing mandatory attribute failure.
func IsMandatory(err error) bool {
	return errors.Is(err, ErrMandatory)
}

// IsConstraint reports whether err is a constraint violation.
func IsConstraint(err error) bool {
	return errors.Is(err, ErrConstraint)
}
