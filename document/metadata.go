package document

import (
	"golang.org/x/text/language"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

// Metadata is a decoded metadata record.
type Metadata struct{ metadataRecord }

type metadataRecord struct {
	MetadataIdentifier  *Identifier             `json:"metadataIdentifier,omitempty"`
	DefaultLocale       language.Tag            `json:"defaultLocale,omitempty"`
	ParentMetadata      *Citation               `json:"parentMetadata,omitempty"`
	MetadataScope       []*MetadataScope        `json:"metadataScope,omitempty"`
	Contact             []*Responsibility       `json:"contact"`
	DateInfo            []*CitationDate         `json:"dateInfo"`
	MetadataStandard    []*Citation             `json:"metadataStandard,omitempty"`
	ReferenceSystemInfo []*ReferenceSystem      `json:"referenceSystemInfo,omitempty"`
	IdentificationInfo  []*Identification       `json:"identificationInfo"`
	DataQualityInfo     []*DataQuality          `json:"dataQualityInfo,omitempty"`
	MetadataMaintenance *MaintenanceInformation `json:"metadataMaintenance,omitempty"`
}

func (m *Metadata) MetadataIdentifier() metadata.Identifier {
	return view[metadata.Identifier](m.metadataRecord.MetadataIdentifier)
}

func (m *Metadata) DefaultLocale() language.Tag { return m.metadataRecord.DefaultLocale }

func (m *Metadata) ParentMetadata() metadata.Citation {
	return view[metadata.Citation](m.metadataRecord.ParentMetadata)
}

func (m *Metadata) MetadataScopes() []metadata.MetadataScope {
	return views[metadata.MetadataScope](m.MetadataScope)
}

func (m *Metadata) Contacts() []metadata.Responsibility {
	return views[metadata.Responsibility](m.Contact)
}

func (m *Metadata) DateInfo() []metadata.CitationDate {
	return views[metadata.CitationDate](m.metadataRecord.DateInfo)
}

func (m *Metadata) MetadataStandards() []metadata.Citation {
	return views[metadata.Citation](m.MetadataStandard)
}

func (m *Metadata) ReferenceSystemInfo() []metadata.ReferenceSystem {
	return views[metadata.ReferenceSystem](m.metadataRecord.ReferenceSystemInfo)
}

func (m *Metadata) IdentificationInfo() []metadata.Identification {
	return views[metadata.Identification](m.metadataRecord.IdentificationInfo)
}

func (m *Metadata) DataQualityInfo() []metadata.DataQuality {
	return views[metadata.DataQuality](m.metadataRecord.DataQualityInfo)
}

func (m *Metadata) MetadataMaintenance() metadata.MaintenanceInformation {
	return view[metadata.MaintenanceInformation](m.metadataRecord.MetadataMaintenance)
}

// MetadataScope is a decoded metadata scope.
type MetadataScope struct {
	Scope metadata.ScopeCode `json:"resourceScope"`
	Name  *Text              `json:"name,omitempty"`
}

func (s *MetadataScope) ResourceScope() metadata.ScopeCode        { return s.Scope }
func (s *MetadataScope) ScopeName() metadata.InternationalString { return text(s.Name) }

// Identification is decoded resource identification.
type Identification struct{ identification }

type identification struct {
	Citation       *Citation         `json:"citation"`
	Abstract       *Text             `json:"abstract"`
	Purpose        *Text             `json:"purpose,omitempty"`
	PointOfContact []*Responsibility `json:"pointOfContact,omitempty"`
	Extent         []*Extent         `json:"extent,omitempty"`
}

func (i *Identification) Citation() metadata.Citation {
	return view[metadata.Citation](i.identification.Citation)
}

func (i *Identification) Abstract() metadata.InternationalString {
	return text(i.identification.Abstract)
}

func (i *Identification) Purpose() metadata.InternationalString {
	return text(i.identification.Purpose)
}

func (i *Identification) PointsOfContact() []metadata.Responsibility {
	return views[metadata.Responsibility](i.PointOfContact)
}

func (i *Identification) Extents() []metadata.Extent {
	return views[metadata.Extent](i.Extent)
}

// ReferenceSystem is a decoded reference system.
type ReferenceSystem struct {
	Identifier *Identifier `json:"referenceSystemIdentifier"`
}

// NewReferenceSystem returns a reference system identified by code in the
// given code space.
func NewReferenceSystem(codeSpace, code string) *ReferenceSystem {
	return &ReferenceSystem{Identifier: NewIdentifier(codeSpace, code)}
}

func (r *ReferenceSystem) ReferenceSystemIdentifier() metadata.Identifier {
	return view[metadata.Identifier](r.Identifier)
}
