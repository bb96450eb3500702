package document

import (
	"math"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

// Extent is a decoded extent.
type Extent struct{ extent }

type extent struct {
	Description       *Text                `json:"description,omitempty"`
	GeographicElement []*GeographicElement `json:"geographicElement,omitempty"`
	VerticalElement   []*VerticalExtent    `json:"verticalElement,omitempty"`
	TemporalElement   []*TemporalExtent    `json:"temporalElement,omitempty"`
}

func (e *Extent) ExtentDescription() metadata.InternationalString { return text(e.Description) }

func (e *Extent) GeographicElements() []metadata.GeographicExtent {
	if e.GeographicElement == nil {
		return nil
	}
	out := make([]metadata.GeographicExtent, len(e.GeographicElement))
	for i, g := range e.GeographicElement {
		if g != nil {
			out[i] = g.view
		}
	}
	return out
}

func (e *Extent) VerticalElements() []metadata.VerticalExtent {
	return views[metadata.VerticalExtent](e.VerticalElement)
}

func (e *Extent) TemporalElements() []metadata.TemporalExtent {
	return views[metadata.TemporalExtent](e.TemporalElement)
}

// GeographicElement is a decoded geographic extent. Bounds make it a
// GeographicBoundingBox, polygons a BoundingPolygon and a geographic
// identifier a GeographicDescription, in any combination.
type GeographicElement struct {
	geographicElement
	view metadata.GeographicExtent
}

type geographicElement struct {
	ExtentTypeCode       *bool               `json:"extentTypeCode,omitempty"`
	WestBoundLongitude   *float64            `json:"westBoundLongitude,omitempty"`
	EastBoundLongitude   *float64            `json:"eastBoundLongitude,omitempty"`
	SouthBoundLatitude   *float64            `json:"southBoundLatitude,omitempty"`
	NorthBoundLatitude   *float64            `json:"northBoundLatitude,omitempty"`
	Polygon              []*geojson.Geometry `json:"polygon,omitempty"`
	GeographicIdentifier *Identifier         `json:"geographicIdentifier,omitempty"`
}

// UnmarshalJSON decodes the element and selects its capabilities.
func (g *GeographicElement) UnmarshalJSON(b []byte) error {
	if err := strict(b, &g.geographicElement); err != nil {
		return err
	}
	e := &g.geographicElement

	var bounds *Bounds
	if e.WestBoundLongitude != nil || e.EastBoundLongitude != nil ||
		e.SouthBoundLatitude != nil || e.NorthBoundLatitude != nil {
		bounds = &Bounds{
			West:  orNaN(e.WestBoundLongitude),
			East:  orNaN(e.EastBoundLongitude),
			South: orNaN(e.SouthBoundLatitude),
			North: orNaN(e.NorthBoundLatitude),
		}
	}
	var polygons []orb.Geometry
	if e.Polygon != nil {
		polygons = make([]orb.Geometry, len(e.Polygon))
		for i, p := range e.Polygon {
			if p != nil {
				polygons[i] = p.Geometry()
			}
		}
	}
	g.view = NewGeographicExtent(e.ExtentTypeCode, bounds, polygons, view[metadata.Identifier](e.GeographicIdentifier))
	return nil
}

// View returns the element as the metadata interface matching its capabilities.
func (g *GeographicElement) View() metadata.GeographicExtent { return g.view }

func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// Bounds are the limits of a geographic bounding box in decimal degrees.
type Bounds struct {
	West, East, South, North float64
}

// NewGeographicExtent returns a geographic extent that is a bounding box when
// bounds is not nil, a bounding polygon when polygons is not nil and a
// geographic description when id is not nil.
func NewGeographicExtent(inclusion *bool, bounds *Bounds, polygons []orb.Geometry, id metadata.Identifier) metadata.GeographicExtent {
	base := inclusionFlag{inclusion}
	var b bbox
	if bounds != nil {
		b = bbox{*bounds}
	}
	p := polygonSet{polygons}
	d := identified{id}

	switch hasBox, hasPolygon, hasID := bounds != nil, polygons != nil, id != nil; {
	case hasBox && hasPolygon && hasID:
		return &fullExtent{base, b, p, d}
	case hasBox && hasPolygon:
		return &boxPolygonExtent{base, b, p}
	case hasBox && hasID:
		return &boxDescriptionExtent{base, b, d}
	case hasPolygon && hasID:
		return &polygonDescriptionExtent{base, p, d}
	case hasBox:
		return &boxExtent{base, b}
	case hasPolygon:
		return &polygonExtent{base, p}
	case hasID:
		return &descriptionExtent{base, d}
	}
	return &base
}

type inclusionFlag struct{ flag *bool }

func (f inclusionFlag) InclusionFlag() *bool { return f.flag }

type bbox struct{ b Bounds }

func (b bbox) WestBoundLongitude() float64 { return b.b.West }
func (b bbox) EastBoundLongitude() float64 { return b.b.East }
func (b bbox) SouthBoundLatitude() float64 { return b.b.South }
func (b bbox) NorthBoundLatitude() float64 { return b.b.North }

type polygonSet struct{ g []orb.Geometry }

func (p polygonSet) Polygons() []orb.Geometry { return p.g }

type identified struct{ id metadata.Identifier }

func (d identified) GeographicIdentifier() metadata.Identifier { return d.id }

type boxExtent struct {
	inclusionFlag
	bbox
}

type polygonExtent struct {
	inclusionFlag
	polygonSet
}

type descriptionExtent struct {
	inclusionFlag
	identified
}

type boxPolygonExtent struct {
	inclusionFlag
	bbox
	polygonSet
}

type boxDescriptionExtent struct {
	inclusionFlag
	bbox
	identified
}

type polygonDescriptionExtent struct {
	inclusionFlag
	polygonSet
	identified
}

type fullExtent struct {
	inclusionFlag
	bbox
	polygonSet
	identified
}

// VerticalExtent is a decoded vertical extent.
type VerticalExtent struct {
	Minimum *float64         `json:"minimumValue"`
	Maximum *float64         `json:"maximumValue"`
	CRS     *ReferenceSystem `json:"verticalCRS,omitempty"`
}

func (v *VerticalExtent) MinimumValue() float64 { return orNaN(v.Minimum) }
func (v *VerticalExtent) MaximumValue() float64 { return orNaN(v.Maximum) }

func (v *VerticalExtent) VerticalCRS() metadata.ReferenceSystem {
	return view[metadata.ReferenceSystem](v.CRS)
}

// TemporalExtent is a decoded temporal extent.
type TemporalExtent struct {
	Extent *TemporalPrimitive `json:"extent"`
}

func (t *TemporalExtent) TemporalElement() metadata.TemporalPrimitive {
	if t.Extent == nil {
		return nil
	}
	return t.Extent.view
}

// TemporalPrimitive is a decoded time instant or period. A position makes
// it an Instant, a begin or end position a Period.
type TemporalPrimitive struct {
	temporalPrimitive
	view metadata.TemporalPrimitive
}

type temporalPrimitive struct {
	Label         string `json:"label,omitempty"`
	Position      *Date  `json:"position,omitempty"`
	BeginPosition *Date  `json:"beginPosition,omitempty"`
	EndPosition   *Date  `json:"endPosition,omitempty"`
}

// UnmarshalJSON decodes the primitive and selects its capabilities.
func (t *TemporalPrimitive) UnmarshalJSON(b []byte) error {
	if err := strict(b, &t.temporalPrimitive); err != nil {
		return err
	}
	p := &t.temporalPrimitive
	instant := p.Position != nil
	period := p.BeginPosition != nil || p.EndPosition != nil
	switch {
	case instant && period:
		t.view = &instantPeriod{primitive{p}}
	case instant:
		t.view = &instantView{primitive{p}}
	case period:
		t.view = &periodView{primitive{p}}
	default:
		t.view = &primitive{p}
	}
	return nil
}

type primitive struct{ p *temporalPrimitive }

func (v *primitive) TemporalLabel() string { return v.p.Label }

type instantView struct{ primitive }

func (v *instantView) Position() time.Time { return v.p.Position.value() }

type periodView struct{ primitive }

func (v *periodView) Beginning() time.Time { return v.p.BeginPosition.value() }
func (v *periodView) Ending() time.Time    { return v.p.EndPosition.value() }

type instantPeriod struct{ primitive }

func (v *instantPeriod) Position() time.Time  { return v.p.Position.value() }
func (v *instantPeriod) Beginning() time.Time { return v.p.BeginPosition.value() }
func (v *instantPeriod) Ending() time.Time    { return v.p.EndPosition.value() }
