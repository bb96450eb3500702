package metadata

import (
	"fmt"
	"strings"
	"unicode"
)

// DateType identifies the event a CitationDate refers to.
// Well-known values are declared in ISO 19115 order; values greater than
// DateTypeDistribution are user-defined extensions.
type DateType int

// Well-known date types.
const (
	DateTypeCreation DateType = iota + 1
	DateTypePublication
	DateTypeRevision
	DateTypeExpiry
	DateTypeLastUpdate
	DateTypeLastRevision
	DateTypeNextUpdate
	DateTypeUnavailable
	DateTypeInForce
	DateTypeAdopted
	DateTypeDeprecated
	DateTypeSuperseded
	DateTypeValidityBegins
	DateTypeValidityExpires
	DateTypeReleased
	DateTypeDistribution
)

var dateTypeNames = []string{
	"CREATION", "PUBLICATION", "REVISION", "EXPIRY", "LAST_UPDATE",
	"LAST_REVISION", "NEXT_UPDATE", "UNAVAILABLE", "IN_FORCE", "ADOPTED",
	"DEPRECATED", "SUPERSEDED", "VALIDITY_BEGINS", "VALIDITY_EXPIRES",
	"RELEASED", "DISTRIBUTION",
}

// Role is the function performed by a responsible party.
type Role int

// Well-known roles.
const (
	RoleResourceProvider Role = iota + 1
	RoleCustodian
	RoleOwner
	RoleUser
	RoleDistributor
	RoleOriginator
	RolePointOfContact
	RolePrincipalInvestigator
	RoleProcessor
	RolePublisher
	RoleAuthor
	RoleSponsor
	RoleCoAuthor
	RoleCollaborator
	RoleEditor
	RoleMediator
	RoleRightsHolder
	RoleContributor
	RoleFunder
	RoleStakeholder
)

var roleNames = []string{
	"RESOURCE_PROVIDER", "CUSTODIAN", "OWNER", "USER", "DISTRIBUTOR",
	"ORIGINATOR", "POINT_OF_CONTACT", "PRINCIPAL_INVESTIGATOR", "PROCESSOR",
	"PUBLISHER", "AUTHOR", "SPONSOR", "CO_AUTHOR", "COLLABORATOR", "EDITOR",
	"MEDIATOR", "RIGHTS_HOLDER", "CONTRIBUTOR", "FUNDER", "STAKEHOLDER",
}

// ScopeCode is the class of information to which the referencing entity applies.
type ScopeCode int

// Well-known scope codes.
const (
	ScopeAttribute ScopeCode = iota + 1
	ScopeAttributeType
	ScopeCollectionHardware
	ScopeCollectionSession
	ScopeDataset
	ScopeSeries
	ScopeNonGeographicDataset
	ScopeDimensionGroup
	ScopeFeature
	ScopeFeatureType
	ScopePropertyType
	ScopeFieldSession
	ScopeSoftware
	ScopeService
	ScopeModel
	ScopeTile
	ScopeMetadata
	ScopeInitiative
	ScopeSample
	ScopeDocument
	ScopeRepository
	ScopeAggregate
	ScopeProduct
	ScopeCollection
	ScopeCoverage
	ScopeApplication
)

var scopeCodeNames = []string{
	"ATTRIBUTE", "ATTRIBUTE_TYPE", "COLLECTION_HARDWARE", "COLLECTION_SESSION",
	"DATASET", "SERIES", "NON_GEOGRAPHIC_DATASET", "DIMENSION_GROUP", "FEATURE",
	"FEATURE_TYPE", "PROPERTY_TYPE", "FIELD_SESSION", "SOFTWARE", "SERVICE",
	"MODEL", "TILE", "METADATA", "INITIATIVE", "SAMPLE", "DOCUMENT",
	"REPOSITORY", "AGGREGATE", "PRODUCT", "COLLECTION", "COVERAGE", "APPLICATION",
}

// SpatialRepresentationType is the method used to represent geographic information.
type SpatialRepresentationType int

// Well-known spatial representation types.
const (
	SpatialVector SpatialRepresentationType = iota + 1
	SpatialGrid
	SpatialTextTable
	SpatialTIN
	SpatialStereoModel
	SpatialVideo
)

var spatialRepresentationTypeNames = []string{
	"VECTOR", "GRID", "TEXT_TABLE", "TIN", "STEREO_MODEL", "VIDEO",
}

// MaintenanceFrequency is the frequency with which modifications are made.
type MaintenanceFrequency int

// Well-known maintenance frequencies.
const (
	FrequencyContinual MaintenanceFrequency = iota + 1
	FrequencyDaily
	FrequencyWeekly
	FrequencyFortnightly
	FrequencyMonthly
	FrequencyQuarterly
	FrequencyBiannually
	FrequencyAnnually
	FrequencyAsNeeded
	FrequencyIrregular
	FrequencyNotPlanned
	FrequencyUnknown
	FrequencyPeriodic
	FrequencySemimonthly
	FrequencyBiennially
)

var maintenanceFrequencyNames = []string{
	"CONTINUAL", "DAILY", "WEEKLY", "FORTNIGHTLY", "MONTHLY", "QUARTERLY",
	"BIANNUALLY", "ANNUALLY", "AS_NEEDED", "IRREGULAR", "NOT_PLANNED",
	"UNKNOWN", "PERIODIC", "SEMIMONTHLY", "BIENNIALLY",
}

func (t DateType) String() string { return codeString(dateTypeNames, int(t)) }

// MarshalText encodes the date type by its ISO name.
func (t DateType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText decodes an ISO name such as "lastUpdate" or "LAST_UPDATE".
func (t *DateType) UnmarshalText(b []byte) error {
	return unmarshalCode("DateType", dateTypeNames, b, (*int)(t))
}

// ParseDateType returns the well-known date type with the given name.
func ParseDateType(name string) (DateType, error) {
	var t DateType
	err := t.UnmarshalText([]byte(name))
	return t, err
}

func (r Role) String() string { return codeString(roleNames, int(r)) }

// MarshalText encodes the role by its ISO name.
func (r Role) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText decodes an ISO role name.
func (r *Role) UnmarshalText(b []byte) error {
	return unmarshalCode("Role", roleNames, b, (*int)(r))
}

// ParseRole returns the well-known role with the given name.
func ParseRole(name string) (Role, error) {
	var r Role
	err := r.UnmarshalText([]byte(name))
	return r, err
}

func (s ScopeCode) String() string { return codeString(scopeCodeNames, int(s)) }

// MarshalText encodes the scope code by its ISO name.
func (s ScopeCode) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes an ISO scope code name.
func (s *ScopeCode) UnmarshalText(b []byte) error {
	return unmarshalCode("ScopeCode", scopeCodeNames, b, (*int)(s))
}

// ParseScopeCode returns the well-known scope code with the given name.
func ParseScopeCode(name string) (ScopeCode, error) {
	var s ScopeCode
	err := s.UnmarshalText([]byte(name))
	return s, err
}

func (s SpatialRepresentationType) String() string {
	return codeString(spatialRepresentationTypeNames, int(s))
}

// MarshalText encodes the representation type by its ISO name.
func (s SpatialRepresentationType) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes an ISO spatial representation type name.
func (s *SpatialRepresentationType) UnmarshalText(b []byte) error {
	return unmarshalCode("SpatialRepresentationType", spatialRepresentationTypeNames, b, (*int)(s))
}

// ParseSpatialRepresentationType returns the well-known type with the given name.
func ParseSpatialRepresentationType(name string) (SpatialRepresentationType, error) {
	var s SpatialRepresentationType
	err := s.UnmarshalText([]byte(name))
	return s, err
}

func (f MaintenanceFrequency) String() string {
	return codeString(maintenanceFrequencyNames, int(f))
}

// MarshalText encodes the frequency by its ISO name.
func (f MaintenanceFrequency) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText decodes an ISO maintenance frequency name.
func (f *MaintenanceFrequency) UnmarshalText(b []byte) error {
	return unmarshalCode("MaintenanceFrequency", maintenanceFrequencyNames, b, (*int)(f))
}

// ParseMaintenanceFrequency returns the well-known frequency with the given name.
func ParseMaintenanceFrequency(name string) (MaintenanceFrequency, error) {
	var f MaintenanceFrequency
	err := f.UnmarshalText([]byte(name))
	return f, err
}

// codeString returns the ISO name of a 1-based code value. Zero is the unset
// value and user extensions print with their numeric value.
func codeString(names []string, v int) string {
	switch {
	case v <= 0:
		return ""
	case v > len(names):
		return fmt.Sprintf("CODE_%d", v)
	default:
		return names[v-1]
	}
}

func unmarshalCode(list string, names []string, b []byte, out *int) error {
	key := foldCode(string(b))
	if key == "" {
		*out = 0
		return nil
	}
	for i, name := range names {
		if foldCode(name) == key {
			*out = i + 1
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q", ErrUnknownCode, list, string(b))
}

// foldCode makes "lastUpdate", "LAST_UPDATE" and "last-update" compare equal.
func foldCode(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}
