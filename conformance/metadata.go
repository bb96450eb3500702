package conformance

import (
	"golang.org/x/text/language"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

const metadataName = "metadata"

// MetadataBaseValidator validates metadata roots, identification, reference
// systems, identifiers and international strings.
type MetadataBaseValidator struct {
	c *Container
}

// Validate validates a metadata root and everything reachable from it.
// A nil metadata is valid.
func (v *MetadataBaseValidator) Validate(obj metadata.Metadata) error {
	return v.metadata(v.c.newPass(), obj)
}

// ValidateIdentification validates an identification.
func (v *MetadataBaseValidator) ValidateIdentification(obj metadata.Identification) error {
	return v.identification(v.c.newPass(), obj)
}

// ValidateIdentifier validates an identifier and its authority. An authority
// that leads back to the identifier is validated once.
func (v *MetadataBaseValidator) ValidateIdentifier(obj metadata.Identifier) error {
	return v.identifier(v.c.newPass(), obj)
}

// ValidateText validates an international string: the unlocalized text shall
// not be blank and shall equal the text for the undetermined language.
func (v *MetadataBaseValidator) ValidateText(obj metadata.InternationalString) error {
	return v.text(v.c.newPass(), obj)
}

func (v *MetadataBaseValidator) metadata(p *pass, obj metadata.Metadata) error {
	if !p.enter(obj) {
		return nil
	}
	if err := v.identifier(p, obj.MetadataIdentifier()); err != nil {
		return err
	}
	if err := p.c.Citation.citation(p, obj.ParentMetadata()); err != nil {
		return err
	}
	scopes, err := collect[metadata.MetadataScope](p, "Metadata: scopes", obj.MetadataScopes())
	if err != nil {
		return err
	}
	for _, s := range scopes {
		if err := v.metadataScope(p, s); err != nil {
			return err
		}
	}
	contacts, err := collect[metadata.Responsibility](p, "Metadata: contacts", obj.Contacts())
	if err != nil {
		return err
	}
	if err := p.require(metadataName, len(contacts), "Metadata: shall have at least one contact."); err != nil {
		return err
	}
	for _, r := range contacts {
		if err := p.c.Citation.responsibility(p, r); err != nil {
			return err
		}
	}
	dates, err := collect[metadata.CitationDate](p, "Metadata: date info", obj.DateInfo())
	if err != nil {
		return err
	}
	if err := p.require(metadataName, len(dates), "Metadata: shall have at least one date."); err != nil {
		return err
	}
	if err := p.c.Citation.dates(p, dates...); err != nil {
		return err
	}
	standards, err := collect[metadata.Citation](p, "Metadata: metadata standards", obj.MetadataStandards())
	if err != nil {
		return err
	}
	for _, c := range standards {
		if err := p.c.Citation.citation(p, c); err != nil {
			return err
		}
	}
	systems, err := collect[metadata.ReferenceSystem](p, "Metadata: reference system info", obj.ReferenceSystemInfo())
	if err != nil {
		return err
	}
	for _, rs := range systems {
		if err := v.referenceSystem(p, rs); err != nil {
			return err
		}
	}
	identifications, err := collect[metadata.Identification](p, "Metadata: identification info", obj.IdentificationInfo())
	if err != nil {
		return err
	}
	if err := p.require(metadataName, len(identifications),
		"Metadata: shall have at least one identification info."); err != nil {
		return err
	}
	for _, id := range identifications {
		if err := v.identification(p, id); err != nil {
			return err
		}
	}
	quality, err := collect[metadata.DataQuality](p, "Metadata: data quality info", obj.DataQualityInfo())
	if err != nil {
		return err
	}
	for _, dq := range quality {
		if err := p.c.Quality.dataQuality(p, dq); err != nil {
			return err
		}
	}
	return p.c.Maintenance.maintenance(p, obj.MetadataMaintenance())
}

func (v *MetadataBaseValidator) metadataScope(p *pass, obj metadata.MetadataScope) error {
	if !p.enter(obj) {
		return nil
	}
	level := obj.ResourceScope()
	if level == 0 {
		return p.missing(metadataName, "MetadataScope: shall have a resource scope.")
	}
	name := obj.ScopeName()
	if level != metadata.ScopeDataset {
		return p.mandatoryText(metadataName, name,
			"MetadataScope: shall have a name when the resource scope is not a dataset.")
	}
	return p.text(name)
}

func (v *MetadataBaseValidator) identification(p *pass, obj metadata.Identification) error {
	if !p.enter(obj) {
		return nil
	}
	citation := obj.Citation()
	if isNil(citation) {
		return p.missing(metadataName, "Identification: shall have a citation.")
	}
	if err := p.c.Citation.citation(p, citation); err != nil {
		return err
	}
	if err := p.mandatoryText(metadataName, obj.Abstract(), "Identification: shall have an abstract."); err != nil {
		return err
	}
	if err := p.text(obj.Purpose()); err != nil {
		return err
	}
	if err := p.responsibilities("Identification: points of contact", obj.PointsOfContact()); err != nil {
		return err
	}
	return p.extents("Identification: extents", obj.Extents())
}

func (v *MetadataBaseValidator) referenceSystem(p *pass, obj metadata.ReferenceSystem) error {
	if !p.enter(obj) {
		return nil
	}
	id := obj.ReferenceSystemIdentifier()
	if isNil(id) {
		return p.missing(metadataName, "ReferenceSystem: shall have an identifier.")
	}
	return v.identifier(p, id)
}

func (v *MetadataBaseValidator) identifier(p *pass, obj metadata.Identifier) error {
	if !p.enter(obj) {
		return nil
	}
	if blank(obj.Code()) {
		return p.missing(metadataName, "Identifier: shall have a code.")
	}
	if err := v.text(p, obj.Description()); err != nil {
		return err
	}
	return p.c.Citation.citation(p, obj.Authority())
}

func (v *MetadataBaseValidator) text(p *pass, obj metadata.InternationalString) error {
	if !p.enter(obj) {
		return nil
	}
	s := obj.String()
	if blank(s) {
		return p.violation(metadataName, "InternationalString: shall not be empty.")
	}
	if und := obj.Localized(language.Und); und != s {
		return p.violation(metadataName,
			"InternationalString: text for the undetermined language %q shall equal the unlocalized text %q.", und, s)
	}
	return nil
}
