package document

import (
	"bytes"
	"encoding/json"
	"net/url"
	"time"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

// strict decodes b into v, rejecting unknown properties.
func strict(b []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Identifier is a decoded identifier.
type Identifier struct{ identifier }

type identifier struct {
	Code        string    `json:"code"`
	CodeSpace   string    `json:"codeSpace,omitempty"`
	Version     string    `json:"version,omitempty"`
	Authority   *Citation `json:"authority,omitempty"`
	Description *Text     `json:"description,omitempty"`
}

// NewIdentifier returns an identifier of code in the given code space.
func NewIdentifier(codeSpace, code string) *Identifier {
	return &Identifier{identifier{Code: code, CodeSpace: codeSpace}}
}

func (i *Identifier) Code() string      { return i.identifier.Code }
func (i *Identifier) CodeSpace() string { return i.identifier.CodeSpace }
func (i *Identifier) Version() string   { return i.identifier.Version }

func (i *Identifier) Authority() metadata.Citation {
	return view[metadata.Citation](i.identifier.Authority)
}

func (i *Identifier) Description() metadata.InternationalString {
	return text(i.identifier.Description)
}

// Citation is a decoded citation.
type Citation struct{ citation }

type citation struct {
	Title                 *Text             `json:"title"`
	AlternateTitle        []*Text           `json:"alternateTitle,omitempty"`
	Date                  []*CitationDate   `json:"date,omitempty"`
	Edition               *Text             `json:"edition,omitempty"`
	EditionDate           *Date             `json:"editionDate,omitempty"`
	Identifier            []*Identifier     `json:"identifier,omitempty"`
	CitedResponsibleParty []*Responsibility `json:"citedResponsibleParty,omitempty"`
	OtherCitationDetails  *Text             `json:"otherCitationDetails,omitempty"`
	ISBN                  string            `json:"ISBN,omitempty"`
	ISSN                  string            `json:"ISSN,omitempty"`
	OnlineResource        []*OnlineResource `json:"onlineResource,omitempty"`
	Graphic               []*BrowseGraphic  `json:"graphic,omitempty"`
}

func (c *Citation) Title() metadata.InternationalString { return text(c.citation.Title) }

func (c *Citation) AlternateTitles() []metadata.InternationalString {
	return texts(c.citation.AlternateTitle)
}

func (c *Citation) Dates() []metadata.CitationDate {
	return views[metadata.CitationDate](c.citation.Date)
}

func (c *Citation) Edition() metadata.InternationalString { return text(c.citation.Edition) }
func (c *Citation) EditionDate() time.Time                { return c.citation.EditionDate.value() }

func (c *Citation) Identifiers() []metadata.Identifier {
	return views[metadata.Identifier](c.citation.Identifier)
}

func (c *Citation) CitedResponsibleParties() []metadata.Responsibility {
	return views[metadata.Responsibility](c.citation.CitedResponsibleParty)
}

func (c *Citation) OtherCitationDetails() metadata.InternationalString {
	return text(c.citation.OtherCitationDetails)
}

func (c *Citation) ISBN() string { return c.citation.ISBN }
func (c *Citation) ISSN() string { return c.citation.ISSN }

func (c *Citation) OnlineResources() []metadata.OnlineResource {
	return views[metadata.OnlineResource](c.citation.OnlineResource)
}

func (c *Citation) Graphics() []metadata.BrowseGraphic {
	return views[metadata.BrowseGraphic](c.citation.Graphic)
}

// CitationDate is a typed reference date.
type CitationDate struct {
	When *Date             `json:"date"`
	Type metadata.DateType `json:"dateType"`
}

func (d *CitationDate) Date() time.Time             { return d.When.value() }
func (d *CitationDate) DateType() metadata.DateType { return d.Type }

// Responsibility is a decoded responsibility.
type Responsibility struct{ responsibility }

type responsibility struct {
	Role   metadata.Role `json:"role"`
	Party  []*Party      `json:"party,omitempty"`
	Extent []*Extent     `json:"extent,omitempty"`
}

func (r *Responsibility) Role() metadata.Role { return r.responsibility.Role }

func (r *Responsibility) Parties() []metadata.Party {
	if r.Party == nil {
		return nil
	}
	out := make([]metadata.Party, len(r.Party))
	for i, p := range r.Party {
		if p != nil {
			out[i] = p.view
		}
	}
	return out
}

func (r *Responsibility) ResponsibilityExtents() []metadata.Extent {
	return views[metadata.Extent](r.Extent)
}

// Party is a decoded party. A party with a position name is an Individual,
// a party with logos or individuals is an Organisation.
type Party struct {
	party
	view metadata.Party
}

type party struct {
	Name            *Text            `json:"name,omitempty"`
	ContactInfo     []*Contact       `json:"contactInfo,omitempty"`
	PartyIdentifier []*Identifier    `json:"partyIdentifier,omitempty"`
	PositionName    *Text            `json:"positionName,omitempty"`
	Logo            []*BrowseGraphic `json:"logo,omitempty"`
	Individual      []*Party         `json:"individual,omitempty"`
}

// UnmarshalJSON decodes the party and selects its capabilities.
func (p *Party) UnmarshalJSON(b []byte) error {
	if err := strict(b, &p.party); err != nil {
		return err
	}
	p.view = p.party.capabilities()
	return nil
}

// View returns the party as the metadata interface matching its capabilities.
func (p *Party) View() metadata.Party { return p.view }

func (p *party) capabilities() metadata.Party {
	individual := p.PositionName != nil
	organisation := p.Logo != nil || p.Individual != nil
	switch {
	case individual && organisation:
		return &individualOrganisation{partyView{p}}
	case individual:
		return &individualView{partyView{p}}
	case organisation:
		return &organisationView{partyView{p}}
	}
	return &partyView{p}
}

type partyView struct{ p *party }

func (v *partyView) Name() metadata.InternationalString { return text(v.p.Name) }

func (v *partyView) ContactInfo() []metadata.Contact {
	return views[metadata.Contact](v.p.ContactInfo)
}

func (v *partyView) PartyIdentifiers() []metadata.Identifier {
	return views[metadata.Identifier](v.p.PartyIdentifier)
}

// members returns the individuals of an organisation. Members decoded
// without a position name are still exposed as individuals.
func (p *party) members() []metadata.Individual {
	if p.Individual == nil {
		return nil
	}
	out := make([]metadata.Individual, len(p.Individual))
	for i, m := range p.Individual {
		if m == nil {
			continue
		}
		if ind, ok := m.view.(metadata.Individual); ok {
			out[i] = ind
		} else {
			out[i] = &individualView{partyView{&m.party}}
		}
	}
	return out
}

type individualView struct{ partyView }

func (v *individualView) PositionName() metadata.InternationalString { return text(v.p.PositionName) }

type organisationView struct{ partyView }

func (v *organisationView) Logos() []metadata.BrowseGraphic {
	return views[metadata.BrowseGraphic](v.p.Logo)
}

func (v *organisationView) Individuals() []metadata.Individual { return v.p.members() }

type individualOrganisation struct{ partyView }

func (v *individualOrganisation) PositionName() metadata.InternationalString {
	return text(v.p.PositionName)
}

func (v *individualOrganisation) Logos() []metadata.BrowseGraphic {
	return views[metadata.BrowseGraphic](v.p.Logo)
}

func (v *individualOrganisation) Individuals() []metadata.Individual { return v.p.members() }

// Contact is decoded contact information.
type Contact struct{ contact }

type contact struct {
	Phone               []*Telephone      `json:"phone,omitempty"`
	Address             []*Address        `json:"address,omitempty"`
	OnlineResource      []*OnlineResource `json:"onlineResource,omitempty"`
	HoursOfService      []*Text           `json:"hoursOfService,omitempty"`
	ContactInstructions *Text             `json:"contactInstructions,omitempty"`
	ContactType         *Text             `json:"contactType,omitempty"`
}

func (c *Contact) Phones() []metadata.Telephone { return views[metadata.Telephone](c.Phone) }
func (c *Contact) Addresses() []metadata.Address { return views[metadata.Address](c.Address) }

func (c *Contact) ContactOnlineResources() []metadata.OnlineResource {
	return views[metadata.OnlineResource](c.OnlineResource)
}

func (c *Contact) HoursOfService() []metadata.InternationalString {
	return texts(c.contact.HoursOfService)
}

func (c *Contact) ContactInstructions() metadata.InternationalString {
	return text(c.contact.ContactInstructions)
}

func (c *Contact) ContactType() metadata.InternationalString { return text(c.contact.ContactType) }

// Telephone is a decoded telephone number.
type Telephone struct {
	Digits string `json:"number"`
	Kind   string `json:"numberType,omitempty"`
}

func (t *Telephone) Number() string     { return t.Digits }
func (t *Telephone) NumberType() string { return t.Kind }

// Address is a decoded postal and electronic address.
type Address struct{ address }

type address struct {
	DeliveryPoint         []*Text  `json:"deliveryPoint,omitempty"`
	City                  *Text    `json:"city,omitempty"`
	AdministrativeArea    *Text    `json:"administrativeArea,omitempty"`
	PostalCode            string   `json:"postalCode,omitempty"`
	Country               *Text    `json:"country,omitempty"`
	ElectronicMailAddress []string `json:"electronicMailAddress,omitempty"`
}

func (a *Address) DeliveryPoints() []metadata.InternationalString {
	return texts(a.DeliveryPoint)
}

func (a *Address) City() metadata.InternationalString { return text(a.address.City) }

func (a *Address) AdministrativeArea() metadata.InternationalString {
	return text(a.address.AdministrativeArea)
}

func (a *Address) PostalCode() string                    { return a.address.PostalCode }
func (a *Address) Country() metadata.InternationalString { return text(a.address.Country) }
func (a *Address) ElectronicMailAddresses() []string     { return a.ElectronicMailAddress }

// OnlineResource is a decoded online resource.
type OnlineResource struct{ onlineResource }

type onlineResource struct {
	Linkage            *URL   `json:"linkage"`
	Protocol           string `json:"protocol,omitempty"`
	ApplicationProfile string `json:"applicationProfile,omitempty"`
	Name               *Text  `json:"name,omitempty"`
	Description        *Text  `json:"description,omitempty"`
}

func (r *OnlineResource) Linkage() *url.URL          { return r.onlineResource.Linkage.value() }
func (r *OnlineResource) Protocol() string           { return r.onlineResource.Protocol }
func (r *OnlineResource) ApplicationProfile() string { return r.onlineResource.ApplicationProfile }

func (r *OnlineResource) ResourceName() metadata.InternationalString { return text(r.Name) }

func (r *OnlineResource) ResourceDescription() metadata.InternationalString {
	return text(r.Description)
}

// BrowseGraphic is a decoded graphic overview.
type BrowseGraphic struct {
	File        *URL   `json:"fileName"`
	Description *Text  `json:"fileDescription,omitempty"`
	Type        string `json:"fileType,omitempty"`
}

func (g *BrowseGraphic) FileName() *url.URL                           { return g.File.value() }
func (g *BrowseGraphic) FileDescription() metadata.InternationalString { return text(g.Description) }
func (g *BrowseGraphic) FileType() string                             { return g.Type }
