package metadata

import (
	"time"

	"github.com/paulmach/orb"
)

// Extent describes the spatial and temporal extent of a resource.
type Extent interface {
	ExtentDescription() InternationalString
	GeographicElements() []GeographicExtent
	VerticalElements() []VerticalExtent
	TemporalElements() []TemporalExtent
}

// GeographicExtent is the common parent of the geographic area variants.
// A value normally also implements one or more of GeographicBoundingBox,
// BoundingPolygon and GeographicDescription.
type GeographicExtent interface {
	// InclusionFlag tells whether the bounding area encompasses (true) or
	// excludes (false) the resource. Nil when unspecified.
	InclusionFlag() *bool
}

// GeographicBoundingBox is a geographic area in decimal degrees.
// Bounds are NaN when unset.
type GeographicBoundingBox interface {
	GeographicExtent
	WestBoundLongitude() float64
	EastBoundLongitude() float64
	SouthBoundLatitude() float64
	NorthBoundLatitude() float64
}

// BoundingPolygon is an enclosing geometric object locating the resource.
type BoundingPolygon interface {
	GeographicExtent
	Polygons() []orb.Geometry
}

// GeographicDescription is a geographic area identified by a code.
type GeographicDescription interface {
	GeographicExtent
	// GeographicIdentifier identifies the area. Mandatory.
	GeographicIdentifier() Identifier
}

// VerticalExtent is a vertical domain. Bounds are NaN when unset.
type VerticalExtent interface {
	MinimumValue() float64
	MaximumValue() float64
	VerticalCRS() ReferenceSystem
}

// TemporalExtent is the time period covered by a resource.
type TemporalExtent interface {
	// TemporalElement is the instant or period covered. Mandatory.
	TemporalElement() TemporalPrimitive
}

// TemporalPrimitive is the parent of Instant and Period.
type TemporalPrimitive interface {
	// TemporalLabel is a human-readable label, possibly empty.
	TemporalLabel() string
}

// Instant is a zero-duration position in time.
type Instant interface {
	TemporalPrimitive
	Position() time.Time
}

// Period is a time interval bounded by two instants.
type Period interface {
	TemporalPrimitive
	Beginning() time.Time
	Ending() time.Time
}
