package metadata

import "golang.org/x/text/language"

// Metadata is the root entity which defines metadata about a resource.
type Metadata interface {
	MetadataIdentifier() Identifier
	DefaultLocale() language.Tag
	ParentMetadata() Citation
	MetadataScopes() []MetadataScope
	// Contacts are the parties responsible for the metadata. At least one.
	Contacts() []Responsibility
	// DateInfo are the dates of the metadata record. At least one.
	DateInfo() []CitationDate
	MetadataStandards() []Citation
	ReferenceSystemInfo() []ReferenceSystem
	// IdentificationInfo identifies the resources described. At least one.
	IdentificationInfo() []Identification
	DataQualityInfo() []DataQuality
	MetadataMaintenance() MaintenanceInformation
}

// MetadataScope is the resource scope of a metadata record.
type MetadataScope interface {
	ResourceScope() ScopeCode
	// ScopeName is mandatory unless the resource scope is a dataset.
	ScopeName() InternationalString
}

// Identification is the basic information required to identify a resource.
type Identification interface {
	Citation() Citation
	Abstract() InternationalString
	Purpose() InternationalString
	PointsOfContact() []Responsibility
	Extents() []Extent
}

// ReferenceSystem is the description of the spatial and temporal reference
// system used.
type ReferenceSystem interface {
	ReferenceSystemIdentifier() Identifier
}
