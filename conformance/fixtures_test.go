package conformance

import (
	"net/url"
	"time"

	"github.com/paulmach/orb"
	"golang.org/x/text/language"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

// Minimal metadata implementations backing the tests.

type text string

func (t text) String() string                { return string(t) }
func (t text) Localized(language.Tag) string { return string(t) }

// badText answers differently for the undetermined language.
type badText struct{ base, und string }

func (t badText) String() string                  { return t.base }
func (t badText) Localized(tag language.Tag) string {
	if tag == language.Und {
		return t.und
	}
	return t.base
}

type identifier struct {
	code        string
	authority   metadata.Citation
	description metadata.InternationalString
}

func (i *identifier) Code() string                                 { return i.code }
func (i *identifier) CodeSpace() string                            { return "" }
func (i *identifier) Version() string                              { return "" }
func (i *identifier) Authority() metadata.Citation                 { return i.authority }
func (i *identifier) Description() metadata.InternationalString    { return i.description }

type citation struct {
	title       metadata.InternationalString
	dates       []metadata.CitationDate
	identifiers []metadata.Identifier
	parties     []metadata.Responsibility
	isbn        string
	resources   []metadata.OnlineResource
	graphics    []metadata.BrowseGraphic
}

func (c *citation) Title() metadata.InternationalString             { return c.title }
func (c *citation) AlternateTitles() []metadata.InternationalString { return nil }
func (c *citation) Dates() []metadata.CitationDate                  { return c.dates }
func (c *citation) Edition() metadata.InternationalString           { return nil }
func (c *citation) EditionDate() time.Time                          { return time.Time{} }
func (c *citation) Identifiers() []metadata.Identifier              { return c.identifiers }
func (c *citation) CitedResponsibleParties() []metadata.Responsibility {
	return c.parties
}
func (c *citation) OtherCitationDetails() metadata.InternationalString { return nil }
func (c *citation) ISBN() string                                      { return c.isbn }
func (c *citation) ISSN() string                                      { return "" }
func (c *citation) OnlineResources() []metadata.OnlineResource        { return c.resources }
func (c *citation) Graphics() []metadata.BrowseGraphic                { return c.graphics }

type citationDate struct {
	at  time.Time
	typ metadata.DateType
}

func (d citationDate) Date() time.Time              { return d.at }
func (d citationDate) DateType() metadata.DateType { return d.typ }

func date(typ metadata.DateType, year int, month time.Month, day int) metadata.CitationDate {
	return citationDate{at: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), typ: typ}
}

type responsibility struct {
	role    metadata.Role
	parties []metadata.Party
}

func (r *responsibility) Role() metadata.Role                     { return r.role }
func (r *responsibility) Parties() []metadata.Party               { return r.parties }
func (r *responsibility) ResponsibilityExtents() []metadata.Extent { return nil }

type party struct {
	name     metadata.InternationalString
	contacts []metadata.Contact
}

func (p *party) Name() metadata.InternationalString     { return p.name }
func (p *party) ContactInfo() []metadata.Contact        { return p.contacts }
func (p *party) PartyIdentifiers() []metadata.Identifier { return nil }

type individual struct {
	party
	position metadata.InternationalString
}

func (i *individual) PositionName() metadata.InternationalString { return i.position }

type organisation struct {
	party
	logos   []metadata.BrowseGraphic
	members []metadata.Individual
}

func (o *organisation) Logos() []metadata.BrowseGraphic    { return o.logos }
func (o *organisation) Individuals() []metadata.Individual { return o.members }

type contact struct {
	phones    []metadata.Telephone
	addresses []metadata.Address
}

func (c *contact) Phones() []metadata.Telephone                      { return c.phones }
func (c *contact) Addresses() []metadata.Address                     { return c.addresses }
func (c *contact) ContactOnlineResources() []metadata.OnlineResource { return nil }
func (c *contact) HoursOfService() []metadata.InternationalString    { return nil }
func (c *contact) ContactInstructions() metadata.InternationalString { return nil }
func (c *contact) ContactType() metadata.InternationalString         { return nil }

type telephone string

func (t telephone) Number() string     { return string(t) }
func (t telephone) NumberType() string { return "voice" }

type address struct {
	emails []string
}

func (a *address) DeliveryPoints() []metadata.InternationalString   { return nil }
func (a *address) City() metadata.InternationalString               { return text("Paris") }
func (a *address) AdministrativeArea() metadata.InternationalString { return nil }
func (a *address) PostalCode() string                               { return "" }
func (a *address) Country() metadata.InternationalString            { return nil }
func (a *address) ElectronicMailAddresses() []string                { return a.emails }

type onlineResource struct {
	link *url.URL
}

func (r *onlineResource) Linkage() *url.URL                                { return r.link }
func (r *onlineResource) Protocol() string                                 { return "https" }
func (r *onlineResource) ApplicationProfile() string                       { return "" }
func (r *onlineResource) ResourceName() metadata.InternationalString       { return nil }
func (r *onlineResource) ResourceDescription() metadata.InternationalString { return nil }

type browseGraphic struct {
	file *url.URL
}

func (g *browseGraphic) FileName() *url.URL                           { return g.file }
func (g *browseGraphic) FileDescription() metadata.InternationalString { return nil }
func (g *browseGraphic) FileType() string                             { return "png" }

func mustURL(s string) *url.URL {
	u, err := url.Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Geographic extents are assembled from method holders so that a single
// value can implement several capabilities.

type geo struct{ inclusion *bool }

func (g geo) InclusionFlag() *bool { return g.inclusion }

type bounds struct{ west, east, south, north float64 }

func (b bounds) WestBoundLongitude() float64 { return b.west }
func (b bounds) EastBoundLongitude() float64 { return b.east }
func (b bounds) SouthBoundLatitude() float64 { return b.south }
func (b bounds) NorthBoundLatitude() float64 { return b.north }

type rings struct{ polygons []orb.Geometry }

func (r rings) Polygons() []orb.Geometry { return r.polygons }

type place struct{ id metadata.Identifier }

func (p place) GeographicIdentifier() metadata.Identifier { return p.id }

type box struct {
	geo
	bounds
}

type polygon struct {
	geo
	rings
}

type boxPolygon struct {
	geo
	bounds
	rings
}

type description struct {
	geo
	place
}

func newBox(west, east, south, north float64) *box {
	return &box{bounds: bounds{west: west, east: east, south: south, north: north}}
}

var square = orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}

type extent struct {
	description metadata.InternationalString
	geographic  []metadata.GeographicExtent
	vertical    []metadata.VerticalExtent
	temporal    []metadata.TemporalExtent
}

func (e *extent) ExtentDescription() metadata.InternationalString { return e.description }
func (e *extent) GeographicElements() []metadata.GeographicExtent { return e.geographic }
func (e *extent) VerticalElements() []metadata.VerticalExtent     { return e.vertical }
func (e *extent) TemporalElements() []metadata.TemporalExtent     { return e.temporal }

type vertical struct {
	lo, hi float64
	crs    metadata.ReferenceSystem
}

func (v *vertical) MinimumValue() float64                  { return v.lo }
func (v *vertical) MaximumValue() float64                  { return v.hi }
func (v *vertical) VerticalCRS() metadata.ReferenceSystem { return v.crs }

type temporal struct{ element metadata.TemporalPrimitive }

func (t *temporal) TemporalElement() metadata.TemporalPrimitive { return t.element }

type period struct{ begin, end time.Time }

func (p *period) TemporalLabel() string { return "" }
func (p *period) Beginning() time.Time  { return p.begin }
func (p *period) Ending() time.Time     { return p.end }

type referenceSystem struct{ id metadata.Identifier }

func (r *referenceSystem) ReferenceSystemIdentifier() metadata.Identifier { return r.id }

type scope struct {
	level        metadata.ScopeCode
	descriptions []metadata.ScopeDescription
}

func (s *scope) Level() metadata.ScopeCode                         { return s.level }
func (s *scope) ScopeExtents() []metadata.Extent                   { return nil }
func (s *scope) LevelDescriptions() []metadata.ScopeDescription    { return s.descriptions }

type scopeDescription struct {
	datasets string
	features []string
	other    string
}

func (d *scopeDescription) Datasets() string             { return d.datasets }
func (d *scopeDescription) Features() []string           { return d.features }
func (d *scopeDescription) Attributes() []string         { return nil }
func (d *scopeDescription) FeatureInstances() []string   { return nil }
func (d *scopeDescription) AttributeInstances() []string { return nil }
func (d *scopeDescription) Other() string                { return d.other }

type maintenance struct {
	dates  []metadata.CitationDate
	scopes []metadata.Scope
}

func (m *maintenance) MaintenanceAndUpdateFrequency() metadata.MaintenanceFrequency {
	return metadata.FrequencyAnnually
}
func (m *maintenance) MaintenanceDates() []metadata.CitationDate        { return m.dates }
func (m *maintenance) MaintenanceScopes() []metadata.Scope              { return m.scopes }
func (m *maintenance) MaintenanceNotes() []metadata.InternationalString { return nil }
func (m *maintenance) MaintenanceContacts() []metadata.Responsibility   { return nil }

type dataQuality struct {
	scope   metadata.Scope
	reports []metadata.Element
}

func (q *dataQuality) QualityScope() metadata.Scope                { return q.scope }
func (q *dataQuality) Reports() []metadata.Element                 { return q.reports }
func (q *dataQuality) StandaloneQualityReport() metadata.Citation { return nil }

type element struct {
	dates   []time.Time
	results []metadata.Result
}

func (e *element) MeasureIdentification() metadata.Identifier                  { return nil }
func (e *element) EvaluationMethodDescription() metadata.InternationalString { return nil }
func (e *element) EvaluationDates() []time.Time                               { return e.dates }
func (e *element) Results() []metadata.Result                                 { return e.results }

type positionalAccuracy struct {
	element
	kind string
}

func (a *positionalAccuracy) PositionalAccuracyKind() string { return a.kind }

type result struct{ scope metadata.Scope }

func (r result) ResultScope() metadata.Scope { return r.scope }
func (r result) ResultDateTime() time.Time   { return time.Time{} }

type conformanceResult struct {
	result
	specification metadata.Citation
	pass          *bool
}

func (r *conformanceResult) Specification() metadata.Citation            { return r.specification }
func (r *conformanceResult) Explanation() metadata.InternationalString { return nil }
func (r *conformanceResult) Pass() *bool                                 { return r.pass }

type descriptiveResult struct {
	result
	statement metadata.InternationalString
}

func (r *descriptiveResult) Statement() metadata.InternationalString { return r.statement }

type quantitativeResult struct {
	result
	values []metadata.Record
}

func (r *quantitativeResult) Values() []metadata.Record { return r.values }
func (r *quantitativeResult) ValueUnit() string         { return "m" }

type record map[string]any

func (r record) Fields() map[string]any { return r }

type metadataScope struct {
	level metadata.ScopeCode
	name  metadata.InternationalString
}

func (s *metadataScope) ResourceScope() metadata.ScopeCode         { return s.level }
func (s *metadataScope) ScopeName() metadata.InternationalString { return s.name }

type identification struct {
	citation metadata.Citation
	abstract metadata.InternationalString
	extents  []metadata.Extent
}

func (i *identification) Citation() metadata.Citation                  { return i.citation }
func (i *identification) Abstract() metadata.InternationalString       { return i.abstract }
func (i *identification) Purpose() metadata.InternationalString        { return nil }
func (i *identification) PointsOfContact() []metadata.Responsibility   { return nil }
func (i *identification) Extents() []metadata.Extent                   { return i.extents }

type md struct {
	id              metadata.Identifier
	scopes          []metadata.MetadataScope
	contacts        []metadata.Responsibility
	dates           []metadata.CitationDate
	systems         []metadata.ReferenceSystem
	identifications []metadata.Identification
	quality         []metadata.DataQuality
	maintenance     metadata.MaintenanceInformation
}

func (m *md) MetadataIdentifier() metadata.Identifier              { return m.id }
func (m *md) DefaultLocale() language.Tag                         { return language.English }
func (m *md) ParentMetadata() metadata.Citation                   { return nil }
func (m *md) MetadataScopes() []metadata.MetadataScope            { return m.scopes }
func (m *md) Contacts() []metadata.Responsibility                 { return m.contacts }
func (m *md) DateInfo() []metadata.CitationDate                   { return m.dates }
func (m *md) MetadataStandards() []metadata.Citation              { return nil }
func (m *md) ReferenceSystemInfo() []metadata.ReferenceSystem     { return m.systems }
func (m *md) IdentificationInfo() []metadata.Identification       { return m.identifications }
func (m *md) DataQualityInfo() []metadata.DataQuality             { return m.quality }
func (m *md) MetadataMaintenance() metadata.MaintenanceInformation { return m.maintenance }

func validCitation() *citation {
	return &citation{
		title: text("Sea surface temperature"),
		dates: []metadata.CitationDate{date(metadata.DateTypeCreation, 2020, 1, 1)},
	}
}

func validResponsibility() *responsibility {
	return &responsibility{
		role:    metadata.RolePointOfContact,
		parties: []metadata.Party{&party{name: text("Ocean Institute")}},
	}
}

func validMetadata() *md {
	return &md{
		id:       &identifier{code: "sst-2020"},
		scopes:   []metadata.MetadataScope{&metadataScope{level: metadata.ScopeDataset}},
		contacts: []metadata.Responsibility{validResponsibility()},
		dates:    []metadata.CitationDate{date(metadata.DateTypeCreation, 2020, 2, 1)},
		systems:  []metadata.ReferenceSystem{&referenceSystem{id: &identifier{code: "4326"}}},
		identifications: []metadata.Identification{&identification{
			citation: validCitation(),
			abstract: text("Monthly sea surface temperature."),
			extents:  []metadata.Extent{&extent{geographic: []metadata.GeographicExtent{newBox(-10, 10, -5, 5)}}},
		}},
	}
}

type coverageResult struct {
	result
	typ            metadata.SpatialRepresentationType
	representation metadata.SpatialRepresentation
	content        []metadata.RangeDimension
	format         metadata.Format
	file           metadata.DataFile
}

func (r *coverageResult) SpatialRepresentationType() metadata.SpatialRepresentationType {
	return r.typ
}

func (r *coverageResult) ResultSpatialRepresentation() metadata.SpatialRepresentation {
	return r.representation
}

func (r *coverageResult) ResultContent() []metadata.RangeDimension { return r.content }
func (r *coverageResult) ResultFormat() metadata.Format            { return r.format }
func (r *coverageResult) ResultFile() metadata.DataFile            { return r.file }

type spatialRepresentation struct{ scope metadata.Scope }

func (s *spatialRepresentation) RepresentationScope() metadata.Scope { return s.scope }

type rangeDimension struct{ description metadata.InternationalString }

func (d *rangeDimension) SequenceIdentifier() string                          { return "band1" }
func (d *rangeDimension) DimensionDescription() metadata.InternationalString { return d.description }

type dataFormat struct{ specification metadata.Citation }

func (f *dataFormat) FormatSpecification() metadata.Citation { return f.specification }

type dataFile struct {
	name   *url.URL
	format metadata.Format
}

func (f *dataFile) DataFileName() *url.URL          { return f.name }
func (f *dataFile) DataFileFormat() metadata.Format { return f.format }
