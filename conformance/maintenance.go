package conformance

import (
	"github.com/opengeospatial/geoapi-conformance/metadata"
)

const maintenanceName = "maintenance"

// MaintenanceValidator validates maintenance information and scopes.
type MaintenanceValidator struct {
	c *Container
}

// Validate validates maintenance information. A nil value is valid.
func (v *MaintenanceValidator) Validate(obj metadata.MaintenanceInformation) error {
	return v.maintenance(v.c.newPass(), obj)
}

// ValidateScope validates a scope and its level descriptions.
func (v *MaintenanceValidator) ValidateScope(obj metadata.Scope) error {
	return v.scope(v.c.newPass(), obj)
}

// ValidateScopeDescription checks that exactly one property of the
// description is set.
func (v *MaintenanceValidator) ValidateScopeDescription(obj metadata.ScopeDescription) error {
	return v.scopeDescription(v.c.newPass(), obj)
}

func (v *MaintenanceValidator) maintenance(p *pass, obj metadata.MaintenanceInformation) error {
	if !p.enter(obj) {
		return nil
	}
	dates, err := collect[metadata.CitationDate](p, "MaintenanceInformation: dates", obj.MaintenanceDates())
	if err != nil {
		return err
	}
	if err := p.c.Citation.dates(p, dates...); err != nil {
		return err
	}
	scopes, err := collect[metadata.Scope](p, "MaintenanceInformation: scopes", obj.MaintenanceScopes())
	if err != nil {
		return err
	}
	for _, s := range scopes {
		if err := v.scope(p, s); err != nil {
			return err
		}
	}
	if err := p.texts("MaintenanceInformation: notes", obj.MaintenanceNotes()); err != nil {
		return err
	}
	return p.responsibilities("MaintenanceInformation: contacts", obj.MaintenanceContacts())
}

func (v *MaintenanceValidator) scope(p *pass, obj metadata.Scope) error {
	if !p.enter(obj) {
		return nil
	}
	if obj.Level() == 0 {
		return p.missing(maintenanceName, "Scope: shall have a level.")
	}
	if err := p.extents("Scope: extents", obj.ScopeExtents()); err != nil {
		return err
	}
	descriptions, err := collect[metadata.ScopeDescription](p, "Scope: level descriptions", obj.LevelDescriptions())
	if err != nil {
		return err
	}
	for _, d := range descriptions {
		if err := v.scopeDescription(p, d); err != nil {
			return err
		}
	}
	return nil
}

func (v *MaintenanceValidator) scopeDescription(p *pass, obj metadata.ScopeDescription) error {
	if !p.enter(obj) {
		return nil
	}
	n := 0
	for _, set := range []bool{
		!blank(obj.Datasets()),
		len(obj.Features()) != 0,
		len(obj.Attributes()) != 0,
		len(obj.FeatureInstances()) != 0,
		len(obj.AttributeInstances()) != 0,
		!blank(obj.Other()),
	} {
		if set {
			n++
		}
	}
	if err := p.require(maintenanceName, n, "ScopeDescription: shall have exactly one property."); err != nil {
		return err
	}
	if n > 1 && p.cfg().EnforceForbiddenAttributes {
		return p.violation(maintenanceName, "ScopeDescription: shall have exactly one property, got %d.", n)
	}
	return nil
}
