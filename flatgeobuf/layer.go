package flatgeobuf

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/text/language"

	"github.com/opengeospatial/geoapi-conformance/document"
	"github.com/opengeospatial/geoapi-conformance/metadata"
)

// NamespaceLayer is the UUID namespace of layer identifiers.
var NamespaceLayer = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://www.opengis.net/def/flatgeobuf/layer"))

// Capabilities listed in the kind property.
const (
	kindBox         = "box"
	kindPolygon     = "polygon"
	kindDescription = "description"
)

// Layer is a FlatGeobuf layer read in full and viewed as a metadata record.
// FlatGeobuf has no slot for an identifier, so the metadata identifier is a
// UUID derived from the layer name.
type Layer struct {
	header   Header
	features []*geojson.Feature

	id             uuid.UUID
	identifier     metadata.Identifier
	scopes         []metadata.MetadataScope
	crs            []metadata.ReferenceSystem
	identification *identification
}

func newLayer(h Header) *Layer {
	l := &Layer{
		header: h,
		id:     uuid.NewSHA1(NamespaceLayer, []byte(h.Name)),
		scopes: []metadata.MetadataScope{&document.MetadataScope{Scope: metadata.ScopeDataset}},
	}
	l.identifier = document.NewIdentifier("urn:uuid", l.id.String())
	if h.CRS != nil && h.CRS.Code > 0 {
		l.crs = []metadata.ReferenceSystem{document.NewReferenceSystem(h.CRS.authority(), strconv.Itoa(h.CRS.Code))}
	}
	return l
}

// Header returns the layer header.
func (l *Layer) Header() Header { return l.header }

// ID returns the identifier derived from the layer name.
func (l *Layer) ID() uuid.UUID { return l.id }

func (l *Layer) MetadataIdentifier() metadata.Identifier         { return l.identifier }
func (l *Layer) DefaultLocale() language.Tag                     { return language.Und }
func (l *Layer) ParentMetadata() metadata.Citation               { return nil }
func (l *Layer) MetadataScopes() []metadata.MetadataScope        { return l.scopes }
func (l *Layer) Contacts() []metadata.Responsibility             { return nil }
func (l *Layer) DateInfo() []metadata.CitationDate               { return nil }
func (l *Layer) MetadataStandards() []metadata.Citation          { return nil }
func (l *Layer) ReferenceSystemInfo() []metadata.ReferenceSystem { return l.crs }
func (l *Layer) DataQualityInfo() []metadata.DataQuality         { return nil }

func (l *Layer) MetadataMaintenance() metadata.MaintenanceInformation { return nil }

func (l *Layer) IdentificationInfo() []metadata.Identification {
	return []metadata.Identification{l.identification}
}

// identify builds the resource identification: an envelope extent from the
// header and one extent holding an element per feature.
func (l *Layer) identify() *identification {
	id := &identification{
		citation: &citation{identifiers: []metadata.Identifier{l.identifier}},
	}
	if l.header.Name != "" {
		id.citation.title = document.NewText(l.header.Name)
	}
	if l.header.Description != "" {
		id.abstract = document.NewText(l.header.Description)
	}
	if env := l.header.Envelope; env != nil {
		box := document.NewGeographicExtent(nil, &document.Bounds{
			West: env[0], South: env[1], East: env[2], North: env[3],
		}, nil, nil)
		id.extents = append(id.extents, &extent{
			description: document.NewText("Layer envelope"),
			elements:    []metadata.GeographicExtent{box},
		})
	}
	if len(l.features) > 0 {
		elements := make([]metadata.GeographicExtent, len(l.features))
		for i, f := range l.features {
			elements[i] = element(f)
		}
		id.extents = append(id.extents, &extent{elements: elements})
	}
	return id
}

// element converts a feature to a geographic extent. Features without a
// kind property are bounding polygons.
func element(f *geojson.Feature) metadata.GeographicExtent {
	props := f.Properties
	kind, ok := props[PropKind].(string)
	if !ok {
		kind = kindPolygon
	}
	var box, poly, desc bool
	for _, k := range strings.Split(kind, "+") {
		switch k {
		case kindBox:
			box = true
		case kindPolygon:
			poly = true
		case kindDescription:
			desc = true
		}
	}

	var inclusion *bool
	if b, ok := props[PropInclusion].(bool); ok {
		inclusion = &b
	}
	var bounds *document.Bounds
	if box {
		bounds = &document.Bounds{
			West:  float(props, PropWest),
			East:  float(props, PropEast),
			South: float(props, PropSouth),
			North: float(props, PropNorth),
		}
	}
	var polygons []orb.Geometry
	if poly {
		polygons = members(f.Geometry, props)
	}
	var id metadata.Identifier
	if desc {
		code, _ := props[PropCode].(string)
		codeSpace, _ := props[PropCodeSpace].(string)
		id = document.NewIdentifier(codeSpace, code)
	}
	return document.NewGeographicExtent(inclusion, bounds, polygons, id)
}

// members returns the bounding polygons of a feature. The polygons property
// written by Encode gives their count; without it the geometry is the single
// polygon, or a collection of them.
func members(g orb.Geometry, props geojson.Properties) []orb.Geometry {
	if n, ok := props[PropPolygons].(int64); ok {
		switch n {
		case 0:
			return []orb.Geometry{}
		case 1:
			return []orb.Geometry{g}
		}
	}
	if c, ok := g.(orb.Collection); ok {
		return []orb.Geometry(c)
	}
	return []orb.Geometry{g}
}

type identification struct {
	citation *citation
	abstract metadata.InternationalString
	extents  []metadata.Extent
}

func (i *identification) Citation() metadata.Citation                { return i.citation }
func (i *identification) Abstract() metadata.InternationalString     { return i.abstract }
func (i *identification) Purpose() metadata.InternationalString      { return nil }
func (i *identification) PointsOfContact() []metadata.Responsibility { return nil }
func (i *identification) Extents() []metadata.Extent                 { return i.extents }

// citation cites the layer by its name and identifier.
type citation struct {
	title       metadata.InternationalString
	identifiers []metadata.Identifier
}

func (c *citation) Title() metadata.InternationalString                { return c.title }
func (c *citation) AlternateTitles() []metadata.InternationalString    { return nil }
func (c *citation) Dates() []metadata.CitationDate                     { return nil }
func (c *citation) Edition() metadata.InternationalString              { return nil }
func (c *citation) EditionDate() (t time.Time)                         { return t }
func (c *citation) Identifiers() []metadata.Identifier                 { return c.identifiers }
func (c *citation) CitedResponsibleParties() []metadata.Responsibility { return nil }
func (c *citation) OtherCitationDetails() metadata.InternationalString { return nil }
func (c *citation) ISBN() string                                       { return "" }
func (c *citation) ISSN() string                                       { return "" }
func (c *citation) OnlineResources() []metadata.OnlineResource         { return nil }
func (c *citation) Graphics() []metadata.BrowseGraphic                 { return nil }

type extent struct {
	description metadata.InternationalString
	elements    []metadata.GeographicExtent
}

func (e *extent) ExtentDescription() metadata.InternationalString { return e.description }
func (e *extent) GeographicElements() []metadata.GeographicExtent { return e.elements }
func (e *extent) VerticalElements() []metadata.VerticalExtent     { return nil }
func (e *extent) TemporalElements() []metadata.TemporalExtent     { return nil }
