package conformance

import (
	"log/slog"
	"math"
	"time"

	"github.com/paulmach/orb"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

const extentName = "extent"

// ExtentValidator validates extents and their geographic, vertical and
// temporal elements.
type ExtentValidator struct {
	c *Container
}

// Validate validates an extent. A nil extent is valid.
func (v *ExtentValidator) Validate(obj metadata.Extent) error {
	return v.extent(v.c.newPass(), obj)
}

// Dispatch validates a geographic extent against every capability it
// implements (bounding box, bounding polygon, description) and returns how
// many matched. An extent matching none is accepted.
func (v *ExtentValidator) Dispatch(obj metadata.GeographicExtent) (int, error) {
	return v.dispatch(v.c.newPass(), obj)
}

// ValidateBoundingBox checks that longitudes are within [-180, 180], that
// latitudes are within [-90, 90] and that south does not exceed north.
// NaN bounds are accepted. West may exceed east for boxes crossing the
// anti-meridian.
func (v *ExtentValidator) ValidateBoundingBox(obj metadata.GeographicBoundingBox) error {
	p := v.c.newPass()
	if !p.enter(obj) {
		return nil
	}
	return v.boundingBox(p, obj)
}

// ValidateBoundingPolygon validates a bounding polygon.
func (v *ExtentValidator) ValidateBoundingPolygon(obj metadata.BoundingPolygon) error {
	p := v.c.newPass()
	if !p.enter(obj) {
		return nil
	}
	return v.boundingPolygon(p, obj)
}

// ValidateDescription validates a geographic description.
func (v *ExtentValidator) ValidateDescription(obj metadata.GeographicDescription) error {
	p := v.c.newPass()
	if !p.enter(obj) {
		return nil
	}
	return v.description(p, obj)
}

// ValidateVertical validates a vertical extent.
func (v *ExtentValidator) ValidateVertical(obj metadata.VerticalExtent) error {
	return v.vertical(v.c.newPass(), obj)
}

// ValidateTemporal validates a temporal extent.
func (v *ExtentValidator) ValidateTemporal(obj metadata.TemporalExtent) error {
	return v.temporal(v.c.newPass(), obj)
}

func (v *ExtentValidator) extent(p *pass, obj metadata.Extent) error {
	if !p.enter(obj) {
		return nil
	}
	description := obj.ExtentDescription()
	if err := p.text(description); err != nil {
		return err
	}
	geographic, err := collect[metadata.GeographicExtent](p, "Extent: geographic elements", obj.GeographicElements())
	if err != nil {
		return err
	}
	vertical, err := collect[metadata.VerticalExtent](p, "Extent: vertical elements", obj.VerticalElements())
	if err != nil {
		return err
	}
	temporal, err := collect[metadata.TemporalExtent](p, "Extent: temporal elements", obj.TemporalElements())
	if err != nil {
		return err
	}
	n := len(geographic) + len(vertical) + len(temporal)
	if isNil(description) {
		if err := p.require(extentName, n,
			"Extent: shall have at least one description, geographic, vertical or temporal element."); err != nil {
			return err
		}
	}
	for _, e := range geographic {
		if _, err := v.dispatch(p, e); err != nil {
			return err
		}
	}
	for _, e := range vertical {
		if err := v.vertical(p, e); err != nil {
			return err
		}
	}
	for _, e := range temporal {
		if err := v.temporal(p, e); err != nil {
			return err
		}
	}
	return nil
}

func (v *ExtentValidator) dispatch(p *pass, obj metadata.GeographicExtent) (int, error) {
	if !p.enter(obj) {
		return 0, nil
	}
	n := 0
	if o, ok := obj.(metadata.GeographicBoundingBox); ok {
		if err := v.boundingBox(p, o); err != nil {
			return n, err
		}
		n++
	}
	if o, ok := obj.(metadata.BoundingPolygon); ok {
		if err := v.boundingPolygon(p, o); err != nil {
			return n, err
		}
		n++
	}
	if o, ok := obj.(metadata.GeographicDescription); ok {
		if err := v.description(p, o); err != nil {
			return n, err
		}
		n++
	}
	p.c.logger.Debug("geographic extent dispatched", slog.Int("matches", n))
	return n, nil
}

func (v *ExtentValidator) boundingBox(p *pass, obj metadata.GeographicBoundingBox) error {
	west, east := obj.WestBoundLongitude(), obj.EastBoundLongitude()
	south, north := obj.SouthBoundLatitude(), obj.NorthBoundLatitude()
	if err := v.between(p, "west bound longitude", west, -180, 180); err != nil {
		return err
	}
	if err := v.between(p, "east bound longitude", east, -180, 180); err != nil {
		return err
	}
	if err := v.between(p, "south bound latitude", south, -90, 90); err != nil {
		return err
	}
	if err := v.between(p, "north bound latitude", north, -90, 90); err != nil {
		return err
	}
	if south > north {
		return p.violation(extentName,
			"GeographicBoundingBox: south bound latitude (%g) shall not be greater than north bound latitude (%g).",
			south, north)
	}
	return nil
}

// between accepts NaN, which compares false against both limits.
func (v *ExtentValidator) between(p *pass, attribute string, value, lo, hi float64) error {
	if value < lo || value > hi {
		return p.violation(extentName, "GeographicBoundingBox: %s (%g) shall be in the [%g … %g] range.",
			attribute, value, lo, hi)
	}
	return nil
}

func (v *ExtentValidator) boundingPolygon(p *pass, obj metadata.BoundingPolygon) error {
	polygons, err := collect[orb.Geometry](p, "BoundingPolygon: polygons", obj.Polygons())
	if err != nil {
		return err
	}
	if err := p.require(extentName, len(polygons), "BoundingPolygon: shall have at least one polygon."); err != nil {
		return err
	}
	if !p.cfg().ValidateGeometry {
		return nil
	}
	for _, g := range polygons {
		if err := v.geometry(p, g); err != nil {
			return err
		}
	}
	return nil
}

// geometry checks that coordinates are finite, line strings have at least two
// points and rings are closed with at least four points. Geometry types not
// listed are accepted.
func (v *ExtentValidator) geometry(p *pass, g orb.Geometry) error {
	switch g := g.(type) {
	case orb.Point:
		return v.finite(p, g)
	case orb.MultiPoint:
		for _, pt := range g {
			if err := v.finite(p, pt); err != nil {
				return err
			}
		}
	case orb.LineString:
		if len(g) < 2 {
			return p.violation(extentName, "BoundingPolygon: line string shall have at least 2 points, got %d.", len(g))
		}
		return v.geometry(p, orb.MultiPoint(g))
	case orb.MultiLineString:
		for _, ls := range g {
			if err := v.geometry(p, ls); err != nil {
				return err
			}
		}
	case orb.Ring:
		if len(g) < 4 {
			return p.violation(extentName, "BoundingPolygon: ring shall have at least 4 points, got %d.", len(g))
		}
		if !g.Closed() {
			return p.violation(extentName, "BoundingPolygon: ring shall be closed.")
		}
		return v.geometry(p, orb.MultiPoint(g))
	case orb.Polygon:
		if len(g) == 0 {
			return p.violation(extentName, "BoundingPolygon: polygon shall have an exterior ring.")
		}
		for _, r := range g {
			if err := v.geometry(p, r); err != nil {
				return err
			}
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			if err := v.geometry(p, poly); err != nil {
				return err
			}
		}
	case orb.Collection:
		for _, member := range g {
			if err := v.geometry(p, member); err != nil {
				return err
			}
		}
	case orb.Bound:
		if err := v.finite(p, g.Min); err != nil {
			return err
		}
		if err := v.finite(p, g.Max); err != nil {
			return err
		}
		if g.Min[0] > g.Max[0] || g.Min[1] > g.Max[1] {
			return p.violation(extentName, "BoundingPolygon: bound minimum %v shall not exceed maximum %v.", g.Min, g.Max)
		}
	}
	return nil
}

func (v *ExtentValidator) finite(p *pass, pt orb.Point) error {
	for _, c := range pt {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return p.violation(extentName, "BoundingPolygon: coordinate %v shall be finite.", pt)
		}
	}
	return nil
}

func (v *ExtentValidator) description(p *pass, obj metadata.GeographicDescription) error {
	id := obj.GeographicIdentifier()
	if isNil(id) {
		return p.missing(extentName, "GeographicDescription: shall have a geographic identifier.")
	}
	return p.c.Metadata.identifier(p, id)
}

func (v *ExtentValidator) vertical(p *pass, obj metadata.VerticalExtent) error {
	if !p.enter(obj) {
		return nil
	}
	lo, hi := obj.MinimumValue(), obj.MaximumValue()
	if math.IsNaN(lo) {
		return p.missing(extentName, "VerticalExtent: shall have a minimum value.")
	}
	if math.IsNaN(hi) {
		return p.missing(extentName, "VerticalExtent: shall have a maximum value.")
	}
	if lo > hi {
		return p.violation(extentName,
			"VerticalExtent: minimum value (%g) shall not be greater than maximum value (%g).", lo, hi)
	}
	return p.c.Metadata.referenceSystem(p, obj.VerticalCRS())
}

func (v *ExtentValidator) temporal(p *pass, obj metadata.TemporalExtent) error {
	if !p.enter(obj) {
		return nil
	}
	element := obj.TemporalElement()
	if isNil(element) {
		return p.missing(extentName, "TemporalExtent: shall have a temporal element.")
	}
	return v.temporalPrimitive(p, element)
}

func (v *ExtentValidator) temporalPrimitive(p *pass, obj metadata.TemporalPrimitive) error {
	if !p.enter(obj) {
		return nil
	}
	if o, ok := obj.(metadata.Instant); ok && o.Position().IsZero() {
		return p.missing(extentName, "Instant: shall have a position.")
	}
	if o, ok := obj.(metadata.Period); ok {
		begin, end := o.Beginning(), o.Ending()
		if begin.IsZero() {
			return p.missing(extentName, "Period: shall have a beginning.")
		}
		if end.IsZero() {
			return p.missing(extentName, "Period: shall have an ending.")
		}
		if end.Before(begin) {
			return p.violation(extentName, "Period: ending (%s) shall not be before beginning (%s).",
				end.Format(time.RFC3339), begin.Format(time.RFC3339))
		}
	}
	return nil
}
