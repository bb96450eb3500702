package conformance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

func TestMetadataBaseValidator_Validate(t *testing.T) {
	v := NewContainer(nil).Metadata

	tests := []struct {
		name    string
		mutate  func(*md)
		wantErr error
	}{
		{name: "valid metadata", mutate: func(*md) {}},
		{name: "no contact", mutate: func(m *md) { m.contacts = nil }, wantErr: ErrMandatory},
		{name: "no date", mutate: func(m *md) { m.dates = nil }, wantErr: ErrMandatory},
		{name: "no identification", mutate: func(m *md) { m.identifications = nil }, wantErr: ErrMandatory},
		{
			name: "identification without abstract",
			mutate: func(m *md) {
				m.identifications = []metadata.Identification{&identification{citation: validCitation()}}
			},
			wantErr: ErrMandatory,
		},
		{
			name: "identification without citation",
			mutate: func(m *md) {
				m.identifications = []metadata.Identification{&identification{abstract: text("Abstract.")}}
			},
			wantErr: ErrMandatory,
		},
		{
			name: "reference system without identifier",
			mutate: func(m *md) {
				m.systems = []metadata.ReferenceSystem{&referenceSystem{}}
			},
			wantErr: ErrMandatory,
		},
		{
			name: "non-dataset scope without name",
			mutate: func(m *md) {
				m.scopes = []metadata.MetadataScope{&metadataScope{level: metadata.ScopeSeries}}
			},
			wantErr: ErrMandatory,
		},
		{
			name: "non-dataset scope with name",
			mutate: func(m *md) {
				m.scopes = []metadata.MetadataScope{&metadataScope{level: metadata.ScopeSeries, name: text("SST series")}}
			},
		},
		{
			name: "scope without resource scope",
			mutate: func(m *md) {
				m.scopes = []metadata.MetadataScope{&metadataScope{}}
			},
			wantErr: ErrMandatory,
		},
		{
			name: "quality report",
			mutate: func(m *md) {
				m.quality = []metadata.DataQuality{&dataQuality{
					scope:   &scope{level: metadata.ScopeDataset},
					reports: []metadata.Element{&element{results: []metadata.Result{passResult(metadata.Bool(true))}}},
				}}
			},
		},
		{
			name: "invalid maintenance",
			mutate: func(m *md) {
				m.maintenance = &maintenance{scopes: []metadata.Scope{&scope{}}}
			},
			wantErr: ErrMandatory,
		},
		{
			name: "creation date of metadata before revision",
			mutate: func(m *md) {
				m.dates = append(m.dates, date(metadata.DateTypeRevision, 2019, 1, 1))
			},
			wantErr: ErrConstraint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMetadata()
			tt.mutate(m)
			err := v.Validate(m)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestMetadataBaseValidator_Lenient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RequireMandatoryAttributes = false
	m := validMetadata()
	m.contacts = nil
	m.dates = nil

	assert.NoError(t, NewContainer(cfg).Metadata.Validate(m))
}

func TestMetadataBaseValidator_IdentifierAuthorityCycle(t *testing.T) {
	v := NewContainer(nil).Metadata

	authority := &citation{title: text("EPSG Geodetic Parameter Dataset")}
	id := &identifier{code: "EPSG", authority: authority}
	authority.identifiers = []metadata.Identifier{id}

	require.NoError(t, v.ValidateIdentifier(id))

	self := &identifier{code: "self"}
	self.authority = &citation{title: text("Registry"), identifiers: []metadata.Identifier{self}}
	require.NoError(t, v.ValidateIdentifier(self))

	broken := &citation{identifiers: []metadata.Identifier{id}}
	id.authority = broken
	assert.ErrorIs(t, v.ValidateIdentifier(id), ErrMandatory)
}

func TestMetadataBaseValidator_Text(t *testing.T) {
	v := NewContainer(nil).Metadata

	tests := []struct {
		name    string
		text    metadata.InternationalString
		wantErr error
	}{
		{name: "plain text", text: text("Sea surface temperature")},
		{name: "nil text", text: nil},
		{name: "empty text", text: text(""), wantErr: ErrConstraint},
		{name: "undetermined language differs", text: badText{base: "Title", und: "Titre"}, wantErr: ErrConstraint},
		{name: "undetermined language matches", text: badText{base: "Title", und: "Title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateText(tt.text)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
