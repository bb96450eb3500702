package conformance

import (
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

const citationName = "citation"

// CitationValidator validates citations and the responsibility tree:
// responsibilities, parties, contacts and their addresses.
type CitationValidator struct {
	c *Container
}

var fieldValidate = validator.New(validator.WithRequiredStructEnabled())

// Validate validates a citation. A nil citation is valid.
func (v *CitationValidator) Validate(obj metadata.Citation) error {
	return v.citation(v.c.newPass(), obj)
}

// ValidateDates checks every date of the sequence and their chronological
// ordering, in iteration order:
//   - any date whose type is at most DISTRIBUTION shall not precede the most
//     recently seen CREATION date;
//   - NEXT_UPDATE shall not precede the most recently seen LAST_UPDATE;
//   - VALIDITY_EXPIRES shall not precede the most recently seen VALIDITY_BEGINS.
//
// Nil entries are ignored.
func (v *CitationValidator) ValidateDates(dates ...metadata.CitationDate) error {
	return v.dates(v.c.newPass(), dates...)
}

// ValidateResponsibility validates a responsibility and its parties.
func (v *CitationValidator) ValidateResponsibility(obj metadata.Responsibility) error {
	return v.responsibility(v.c.newPass(), obj)
}

// DispatchParty validates a party against every capability it implements
// (Individual, Organisation) and returns how many matched. A party matching
// none is checked against the generic party rules.
func (v *CitationValidator) DispatchParty(obj metadata.Party) (int, error) {
	return v.dispatchParty(v.c.newPass(), obj)
}

// ValidateIndividual validates an individual.
func (v *CitationValidator) ValidateIndividual(obj metadata.Individual) error {
	p := v.c.newPass()
	if !p.enter(obj) {
		return nil
	}
	return v.individual(p, obj)
}

// ValidateOrganisation validates an organisation and its individuals.
func (v *CitationValidator) ValidateOrganisation(obj metadata.Organisation) error {
	p := v.c.newPass()
	if !p.enter(obj) {
		return nil
	}
	return v.organisation(p, obj)
}

// ValidateContact validates contact information.
func (v *CitationValidator) ValidateContact(obj metadata.Contact) error {
	return v.contact(v.c.newPass(), obj)
}

// ValidateTelephone validates a telephone number.
func (v *CitationValidator) ValidateTelephone(obj metadata.Telephone) error {
	return v.telephone(v.c.newPass(), obj)
}

// ValidateAddress validates a postal and electronic address.
func (v *CitationValidator) ValidateAddress(obj metadata.Address) error {
	return v.address(v.c.newPass(), obj)
}

// ValidateOnlineResource validates an online resource.
func (v *CitationValidator) ValidateOnlineResource(obj metadata.OnlineResource) error {
	return v.onlineResource(v.c.newPass(), obj)
}

// ValidateBrowseGraphic validates a graphic overview.
func (v *CitationValidator) ValidateBrowseGraphic(obj metadata.BrowseGraphic) error {
	return v.browseGraphic(v.c.newPass(), obj)
}

func (v *CitationValidator) citation(p *pass, obj metadata.Citation) error {
	if !p.enter(obj) {
		return nil
	}
	if err := p.mandatoryText(citationName, obj.Title(), "Citation: shall have a title."); err != nil {
		return err
	}
	if err := p.texts("Citation: alternate titles", obj.AlternateTitles()); err != nil {
		return err
	}
	dates, err := collect[metadata.CitationDate](p, "Citation: dates", obj.Dates())
	if err != nil {
		return err
	}
	if err := v.dates(p, dates...); err != nil {
		return err
	}
	if err := p.text(obj.Edition()); err != nil {
		return err
	}
	if err := p.identifiers("Citation: identifiers", obj.Identifiers()); err != nil {
		return err
	}
	if err := p.responsibilities("Citation: cited responsible parties", obj.CitedResponsibleParties()); err != nil {
		return err
	}
	if err := p.text(obj.OtherCitationDetails()); err != nil {
		return err
	}
	if isbn := obj.ISBN(); isbn != "" && blank(isbn) {
		return p.violation(citationName, "Citation: ISBN shall not be blank.")
	}
	if issn := obj.ISSN(); issn != "" && blank(issn) {
		return p.violation(citationName, "Citation: ISSN shall not be blank.")
	}
	resources, err := collect[metadata.OnlineResource](p, "Citation: online resources", obj.OnlineResources())
	if err != nil {
		return err
	}
	for _, r := range resources {
		if err := v.onlineResource(p, r); err != nil {
			return err
		}
	}
	graphics, err := collect[metadata.BrowseGraphic](p, "Citation: graphics", obj.Graphics())
	if err != nil {
		return err
	}
	for _, g := range graphics {
		if err := v.browseGraphic(p, g); err != nil {
			return err
		}
	}
	return nil
}

func (v *CitationValidator) dates(p *pass, dates ...metadata.CitationDate) error {
	var creation, lastUpdate, validityBegins time.Time
	for _, d := range dates {
		if isNil(d) {
			continue
		}
		typ, at := d.DateType(), d.Date()
		if typ == 0 {
			return p.missing(citationName, "CitationDate: shall have a date type.")
		}
		if at.IsZero() {
			return p.missing(citationName, "CitationDate: shall have a timestamp.")
		}
		if typ <= metadata.DateTypeDistribution && !creation.IsZero() {
			if err := v.ordered(p, metadata.DateTypeCreation, creation, typ, at); err != nil {
				return err
			}
		}
		switch typ {
		case metadata.DateTypeCreation:
			creation = at
		case metadata.DateTypeLastUpdate:
			lastUpdate = at
		case metadata.DateTypeNextUpdate:
			if !lastUpdate.IsZero() {
				if err := v.ordered(p, metadata.DateTypeLastUpdate, lastUpdate, typ, at); err != nil {
					return err
				}
			}
		case metadata.DateTypeValidityBegins:
			validityBegins = at
		case metadata.DateTypeValidityExpires:
			if !validityBegins.IsZero() {
				if err := v.ordered(p, metadata.DateTypeValidityBegins, validityBegins, typ, at); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (v *CitationValidator) ordered(p *pass, beforeType metadata.DateType, before time.Time, afterType metadata.DateType, after time.Time) error {
	if after.Before(before) {
		return p.violation(citationName, "CitationDate: the %s date (%s) shall not be before the %s date (%s).",
			afterType, after.Format(time.RFC3339), beforeType, before.Format(time.RFC3339))
	}
	return nil
}

func (v *CitationValidator) responsibility(p *pass, obj metadata.Responsibility) error {
	if !p.enter(obj) {
		return nil
	}
	if obj.Role() == 0 {
		return p.missing(citationName, "Responsibility: shall have a role.")
	}
	parties, err := collect[metadata.Party](p, "Responsibility: parties", obj.Parties())
	if err != nil {
		return err
	}
	if err := p.require(citationName, len(parties), "Responsibility: shall have at least one party."); err != nil {
		return err
	}
	for _, party := range parties {
		if _, err := v.dispatchParty(p, party); err != nil {
			return err
		}
	}
	return p.extents("Responsibility: extents", obj.ResponsibilityExtents())
}

func (v *CitationValidator) dispatchParty(p *pass, obj metadata.Party) (int, error) {
	if !p.enter(obj) {
		return 0, nil
	}
	n := 0
	if o, ok := obj.(metadata.Individual); ok {
		if err := v.individual(p, o); err != nil {
			return n, err
		}
		n++
	}
	if o, ok := obj.(metadata.Organisation); ok {
		if err := v.organisation(p, o); err != nil {
			return n, err
		}
		n++
	}
	if n == 0 {
		if err := v.party(p, obj); err != nil {
			return n, err
		}
	}
	p.c.logger.Debug("party dispatched", slog.Int("matches", n))
	return n, nil
}

// party checks the attributes shared by every kind of party.
func (v *CitationValidator) party(p *pass, obj metadata.Party) error {
	name := obj.Name()
	if isNil(name) || blank(name.String()) {
		if !hasSubstituteName(obj) {
			return p.missing(citationName,
				"Party: shall have a name, unless it is an individual with a position name or an organisation with a logo.")
		}
	} else if err := p.text(name); err != nil {
		return err
	}
	contacts, err := collect[metadata.Contact](p, "Party: contact information", obj.ContactInfo())
	if err != nil {
		return err
	}
	for _, c := range contacts {
		if err := v.contact(p, c); err != nil {
			return err
		}
	}
	return p.identifiers("Party: identifiers", obj.PartyIdentifiers())
}

func hasSubstituteName(obj metadata.Party) bool {
	if o, ok := obj.(metadata.Individual); ok {
		if pos := o.PositionName(); !isNil(pos) && !blank(pos.String()) {
			return true
		}
	}
	if o, ok := obj.(metadata.Organisation); ok && len(o.Logos()) > 0 {
		return true
	}
	return false
}

func (v *CitationValidator) individual(p *pass, obj metadata.Individual) error {
	if err := v.party(p, obj); err != nil {
		return err
	}
	return p.text(obj.PositionName())
}

func (v *CitationValidator) organisation(p *pass, obj metadata.Organisation) error {
	if err := v.party(p, obj); err != nil {
		return err
	}
	logos, err := collect[metadata.BrowseGraphic](p, "Organisation: logos", obj.Logos())
	if err != nil {
		return err
	}
	for _, g := range logos {
		if err := v.browseGraphic(p, g); err != nil {
			return err
		}
	}
	members, err := collect[metadata.Individual](p, "Organisation: individuals", obj.Individuals())
	if err != nil {
		return err
	}
	for _, m := range members {
		if _, err := v.dispatchParty(p, m); err != nil {
			return err
		}
	}
	return nil
}

func (v *CitationValidator) contact(p *pass, obj metadata.Contact) error {
	if !p.enter(obj) {
		return nil
	}
	phones, err := collect[metadata.Telephone](p, "Contact: phones", obj.Phones())
	if err != nil {
		return err
	}
	for _, t := range phones {
		if err := v.telephone(p, t); err != nil {
			return err
		}
	}
	addresses, err := collect[metadata.Address](p, "Contact: addresses", obj.Addresses())
	if err != nil {
		return err
	}
	for _, a := range addresses {
		if err := v.address(p, a); err != nil {
			return err
		}
	}
	resources, err := collect[metadata.OnlineResource](p, "Contact: online resources", obj.ContactOnlineResources())
	if err != nil {
		return err
	}
	for _, r := range resources {
		if err := v.onlineResource(p, r); err != nil {
			return err
		}
	}
	if err := p.texts("Contact: hours of service", obj.HoursOfService()); err != nil {
		return err
	}
	if err := p.text(obj.ContactInstructions()); err != nil {
		return err
	}
	return p.text(obj.ContactType())
}

func (v *CitationValidator) telephone(p *pass, obj metadata.Telephone) error {
	if !p.enter(obj) {
		return nil
	}
	if blank(obj.Number()) {
		return p.missing(citationName, "Telephone: shall have a number.")
	}
	return nil
}

func (v *CitationValidator) address(p *pass, obj metadata.Address) error {
	if !p.enter(obj) {
		return nil
	}
	if err := p.texts("Address: delivery points", obj.DeliveryPoints()); err != nil {
		return err
	}
	for _, s := range []metadata.InternationalString{obj.City(), obj.AdministrativeArea(), obj.Country()} {
		if err := p.text(s); err != nil {
			return err
		}
	}
	for _, mail := range obj.ElectronicMailAddresses() {
		if blank(mail) {
			return p.violation(citationName, "Address: electronic mail address shall not be blank.")
		}
		if err := fieldValidate.Var(mail, "email"); err != nil {
			return p.violation(citationName, "Address: %q is not a valid electronic mail address.", mail)
		}
	}
	return nil
}

func (v *CitationValidator) onlineResource(p *pass, obj metadata.OnlineResource) error {
	if !p.enter(obj) {
		return nil
	}
	link := obj.Linkage()
	if link == nil {
		return p.missing(citationName, "OnlineResource: shall have a linkage.")
	}
	if !link.IsAbs() {
		return p.violation(citationName, "OnlineResource: linkage %q shall be an absolute URI.", link.String())
	}
	if err := p.text(obj.ResourceName()); err != nil {
		return err
	}
	return p.text(obj.ResourceDescription())
}

func (v *CitationValidator) browseGraphic(p *pass, obj metadata.BrowseGraphic) error {
	if !p.enter(obj) {
		return nil
	}
	if obj.FileName() == nil {
		return p.missing(citationName, "BrowseGraphic: shall have a file name.")
	}
	return p.text(obj.FileDescription())
}
