package conformance

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// Config holds the behaviour switches shared by every validator of a container.
type Config struct {
	// RequireMandatoryAttributes fails collections that are empty where the
	// standard requires at least one element. Disable it to accept metadata
	// that is still being written.
	RequireMandatoryAttributes bool `env:"GEOAPI_REQUIRE_MANDATORY_ATTRIBUTES" envDefault:"true"`

	// EnforceForbiddenAttributes fails attributes that are present where the
	// standard forbids them, for example two properties in a ScopeDescription.
	EnforceForbiddenAttributes bool `env:"GEOAPI_ENFORCE_FORBIDDEN_ATTRIBUTES" envDefault:"true"`

	// ValidateGeometry checks the geometries of bounding polygons.
	ValidateGeometry bool `env:"GEOAPI_VALIDATE_GEOMETRY" envDefault:"true"`
}

// DefaultConfig returns the strict configuration.
func DefaultConfig() *Config {
	return &Config{
		RequireMandatoryAttributes: true,
		EnforceForbiddenAttributes: true,
		ValidateGeometry:           true,
	}
}

// LoadConfig reads the configuration from GEOAPI_* environment variables.
// Unset variables keep their DefaultConfig value.
func LoadConfig() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return &cfg, nil
}
