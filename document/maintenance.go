package document

import "github.com/opengeospatial/geoapi-conformance/metadata"

// MaintenanceInformation is decoded maintenance information.
type MaintenanceInformation struct {
	Frequency metadata.MaintenanceFrequency `json:"maintenanceAndUpdateFrequency,omitempty"`
	Date      []*CitationDate               `json:"maintenanceDate,omitempty"`
	Scope     []*Scope                      `json:"maintenanceScope,omitempty"`
	Note      []*Text                       `json:"maintenanceNote,omitempty"`
	Contact   []*Responsibility             `json:"contact,omitempty"`
}

func (m *MaintenanceInformation) MaintenanceAndUpdateFrequency() metadata.MaintenanceFrequency {
	return m.Frequency
}

func (m *MaintenanceInformation) MaintenanceDates() []metadata.CitationDate {
	return views[metadata.CitationDate](m.Date)
}

func (m *MaintenanceInformation) MaintenanceScopes() []metadata.Scope {
	return views[metadata.Scope](m.Scope)
}

func (m *MaintenanceInformation) MaintenanceNotes() []metadata.InternationalString {
	return texts(m.Note)
}

func (m *MaintenanceInformation) MaintenanceContacts() []metadata.Responsibility {
	return views[metadata.Responsibility](m.Contact)
}

// Scope is a decoded scope.
type Scope struct{ scope }

type scope struct {
	Level            metadata.ScopeCode  `json:"level"`
	Extent           []*Extent           `json:"extent,omitempty"`
	LevelDescription []*ScopeDescription `json:"levelDescription,omitempty"`
}

// NewScope returns a scope of the given level.
func NewScope(level metadata.ScopeCode) *Scope {
	return &Scope{scope{Level: level}}
}

func (s *Scope) Level() metadata.ScopeCode { return s.scope.Level }

func (s *Scope) ScopeExtents() []metadata.Extent {
	return views[metadata.Extent](s.Extent)
}

func (s *Scope) LevelDescriptions() []metadata.ScopeDescription {
	return views[metadata.ScopeDescription](s.LevelDescription)
}

// ScopeDescription is a decoded scope description.
type ScopeDescription struct{ scopeDescription }

type scopeDescription struct {
	Dataset           string   `json:"dataset,omitempty"`
	Features          []string `json:"features,omitempty"`
	Attributes        []string `json:"attributes,omitempty"`
	FeatureInstances  []string `json:"featureInstances,omitempty"`
	AttributeInstance []string `json:"attributeInstances,omitempty"`
	Other             string   `json:"other,omitempty"`
}

func (d *ScopeDescription) Datasets() string             { return d.Dataset }
func (d *ScopeDescription) Features() []string           { return d.scopeDescription.Features }
func (d *ScopeDescription) Attributes() []string         { return d.scopeDescription.Attributes }
func (d *ScopeDescription) FeatureInstances() []string   { return d.scopeDescription.FeatureInstances }
func (d *ScopeDescription) AttributeInstances() []string { return d.AttributeInstance }
func (d *ScopeDescription) Other() string                { return d.scopeDescription.Other }
