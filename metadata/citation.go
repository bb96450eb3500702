package metadata

import (
	"net/url"
	"time"
)

// Identifier is a value uniquely identifying an object within a namespace.
type Identifier interface {
	// Code is the alphanumeric value identifying an instance in the namespace. Mandatory.
	Code() string
	CodeSpace() string
	Version() string
	// Authority is the organization or party responsible for the namespace.
	Authority() Citation
	Description() InternationalString
}

// Citation is a standardized resource reference.
type Citation interface {
	// Title is the name by which the cited resource is known. Mandatory.
	Title() InternationalString
	AlternateTitles() []InternationalString
	// Dates are reference dates for the cited resource, in the order supplied
	// by the implementation.
	Dates() []CitationDate
	Edition() InternationalString
	EditionDate() time.Time
	Identifiers() []Identifier
	CitedResponsibleParties() []Responsibility
	OtherCitationDetails() InternationalString
	ISBN() string
	ISSN() string
	OnlineResources() []OnlineResource
	Graphics() []BrowseGraphic
}

// CitationDate is a reference date and the event it refers to.
type CitationDate interface {
	Date() time.Time
	DateType() DateType
}

// Responsibility binds a role to the parties that fulfil it.
type Responsibility interface {
	Role() Role
	Parties() []Party
	ResponsibilityExtents() []Extent
}

// Party is an individual or organisation. Implementations normally also
// implement Individual or Organisation.
type Party interface {
	Name() InternationalString
	ContactInfo() []Contact
	PartyIdentifiers() []Identifier
}

// Individual is a person associated with a resource.
type Individual interface {
	Party
	// PositionName identifies the individual by role when the name is unknown.
	PositionName() InternationalString
}

// Organisation is an organisation associated with a resource.
type Organisation interface {
	Party
	Logos() []BrowseGraphic
	Individuals() []Individual
}

// Contact is the information required to reach a party.
type Contact interface {
	Phones() []Telephone
	Addresses() []Address
	ContactOnlineResources() []OnlineResource
	HoursOfService() []InternationalString
	ContactInstructions() InternationalString
	ContactType() InternationalString
}

// Telephone is a telephone number by which a party can be contacted.
type Telephone interface {
	// Number is the telephone number. Mandatory.
	Number() string
	NumberType() string
}

// Address is the location of a party.
type Address interface {
	DeliveryPoints() []InternationalString
	City() InternationalString
	AdministrativeArea() InternationalString
	PostalCode() string
	Country() InternationalString
	ElectronicMailAddresses() []string
}

// OnlineResource is an online resource from which data can be obtained.
type OnlineResource interface {
	// Linkage is the location of the resource. Mandatory.
	Linkage() *url.URL
	Protocol() string
	ApplicationProfile() string
	ResourceName() InternationalString
	ResourceDescription() InternationalString
}

// BrowseGraphic is a graphic that provides an illustration of a resource.
type BrowseGraphic interface {
	// FileName is the name of the file containing the graphic. Mandatory.
	FileName() *url.URL
	FileDescription() InternationalString
	FileType() string
}
