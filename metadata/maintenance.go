package metadata

// MaintenanceInformation describes the scope and frequency of updates.
type MaintenanceInformation interface {
	MaintenanceAndUpdateFrequency() MaintenanceFrequency
	MaintenanceDates() []CitationDate
	MaintenanceScopes() []Scope
	MaintenanceNotes() []InternationalString
	MaintenanceContacts() []Responsibility
}

// Scope is the target resource and physical extent of a description.
type Scope interface {
	// Level is the hierarchical level of the data. Mandatory.
	Level() ScopeCode
	ScopeExtents() []Extent
	LevelDescriptions() []ScopeDescription
}

// ScopeDescription names the instances to which information applies.
// Exactly one of the properties shall be provided.
type ScopeDescription interface {
	Datasets() string
	Features() []string
	Attributes() []string
	FeatureInstances() []string
	AttributeInstances() []string
	Other() string
}
