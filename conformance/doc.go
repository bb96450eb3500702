// Package conformance checks whether implementations of the metadata
// interfaces obey the obligations and invariants of ISO 19115 and ISO 19157.
//
// A Container owns one validator per metadata domain (citation, extent,
// quality, maintenance and metadata base) and routes any object to the
// validator that knows its shape:
//
//	c := conformance.NewContainer(nil)
//	if err := c.Validate(md); err != nil {
//		var f *conformance.Failure
//		if errors.As(err, &f) {
//			fmt.Println(f.Validator, f.Message)
//		}
//	}
//
// Validation is read-only and fail-fast: the first violation stops the walk
// and is returned as a *Failure wrapping either ErrMandatory or ErrConstraint.
// Nested objects are reached by walking the graph; each walk remembers the
// objects it has already visited (by pointer identity), so cyclic graphs such
// as a citation used as the authority of its own identifier terminate.
//
// Behaviour switches live in Config and are fixed when the container is
// built. Containers are safe for concurrent use; callers needing different
// strictness settings build separate containers.
package conformance
