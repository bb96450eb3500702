package conformance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

func TestMaintenanceValidator_ScopeDescription(t *testing.T) {
	tests := []struct {
		name        string
		description *scopeDescription
		cfg         func(*Config)
		wantErr     error
	}{
		{name: "datasets only", description: &scopeDescription{datasets: "sst-2020"}},
		{name: "features only", description: &scopeDescription{features: []string{"buoy"}}},
		{name: "no property", description: &scopeDescription{}, wantErr: ErrMandatory},
		{
			name:        "no property when lenient",
			description: &scopeDescription{},
			cfg:         func(c *Config) { c.RequireMandatoryAttributes = false },
		},
		{
			name:        "two properties",
			description: &scopeDescription{datasets: "sst-2020", other: "buoys"},
			wantErr:     ErrConstraint,
		},
		{
			name:        "two properties when forbidden attributes are allowed",
			description: &scopeDescription{datasets: "sst-2020", other: "buoys"},
			cfg:         func(c *Config) { c.EnforceForbiddenAttributes = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tt.cfg != nil {
				tt.cfg(cfg)
			}
			err := NewContainer(cfg).Maintenance.ValidateScopeDescription(tt.description)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestMaintenanceValidator_Validate(t *testing.T) {
	v := NewContainer(nil).Maintenance

	tests := []struct {
		name        string
		maintenance *maintenance
		wantErr     error
	}{
		{
			name: "valid maintenance",
			maintenance: &maintenance{
				dates: []metadata.CitationDate{
					date(metadata.DateTypeLastUpdate, 2024, 1, 1),
					date(metadata.DateTypeNextUpdate, 2025, 1, 1),
				},
				scopes: []metadata.Scope{&scope{
					level:        metadata.ScopeDataset,
					descriptions: []metadata.ScopeDescription{&scopeDescription{datasets: "sst"}},
				}},
			},
		},
		{
			name: "next update before last update",
			maintenance: &maintenance{dates: []metadata.CitationDate{
				date(metadata.DateTypeLastUpdate, 2024, 1, 1),
				date(metadata.DateTypeNextUpdate, 2023, 1, 1),
			}},
			wantErr: ErrConstraint,
		},
		{
			name:        "scope without level",
			maintenance: &maintenance{scopes: []metadata.Scope{&scope{}}},
			wantErr:     ErrMandatory,
		},
		{
			name: "scope with invalid description",
			maintenance: &maintenance{scopes: []metadata.Scope{&scope{
				level:        metadata.ScopeFeature,
				descriptions: []metadata.ScopeDescription{&scopeDescription{}},
			}}},
			wantErr: ErrMandatory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.maintenance)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
