// Package metadata declares the ISO 19115 / ISO 19157 metadata interfaces
// checked by the conformance package.
//
// The interfaces are contracts for third-party implementations: a value is
// valid when it obeys the obligations and invariants the standards attach to
// each attribute. Absence follows Go conventions rather than null references:
//
//   - a nil interface or nil pointer is an absent object or optional Boolean
//   - a zero time.Time is an absent date
//   - an empty string is an absent character sequence
//   - NaN is an absent numeric bound
//   - a nil slice is an empty collection
//
// Sibling capability interfaces (for example GeographicBoundingBox and
// BoundingPolygon) embed a common parent, so one concrete type may satisfy
// several of them at once. Consumers must test every candidate capability
// rather than stopping at the first match.
package metadata
