package conformance

import (
	"fmt"
	"log/slog"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

// Container owns one validator per metadata domain and dispatches arbitrary
// objects to them. Validators reach each other through the container when
// they recurse into nested objects.
type Container struct {
	Citation    *CitationValidator
	Extent      *ExtentValidator
	Quality     *QualityValidator
	Maintenance *MaintenanceValidator
	Metadata    *MetadataBaseValidator

	cfg    Config
	logger *slog.Logger
}

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger receiving debug records for dispatch decisions
// and failures. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewContainer creates a container with the given configuration.
// A nil configuration selects DefaultConfig.
func NewContainer(cfg *Config, opts ...Option) *Container {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := &Container{
		cfg:    *cfg,
		logger: slog.New(slog.DiscardHandler),
	}
	c.Citation = &CitationValidator{c: c}
	c.Extent = &ExtentValidator{c: c}
	c.Quality = &QualityValidator{c: c}
	c.Maintenance = &MaintenanceValidator{c: c}
	c.Metadata = &MetadataBaseValidator{c: c}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns a copy of the container configuration.
func (c *Container) Config() Config {
	return c.cfg
}

var defaultContainer = NewContainer(nil)

// Validate validates obj with a container using the default configuration.
func Validate(obj any) error {
	return defaultContainer.Validate(obj)
}

// Validate routes obj to the validator of its most specific metadata type.
// A nil object is valid. Objects that are not metadata types are ignored.
func (c *Container) Validate(obj any) error {
	if isNil(obj) {
		return nil
	}
	p := c.newPass()
	err := p.dispatch(obj)
	if err != nil {
		c.logger.Debug("validation failed", slog.String("type", fmt.Sprintf("%T", obj)), slog.Any("error", err))
	}
	return err
}

// dispatch checks the sub-capabilities before the interfaces they embed.
func (p *pass) dispatch(obj any) error {
	c := p.c
	switch o := obj.(type) {
	case metadata.Metadata:
		return c.Metadata.metadata(p, o)
	case metadata.Identification:
		return c.Metadata.identification(p, o)
	case metadata.MetadataScope:
		return c.Metadata.metadataScope(p, o)
	case metadata.ReferenceSystem:
		return c.Metadata.referenceSystem(p, o)
	case metadata.Identifier:
		return c.Metadata.identifier(p, o)
	case metadata.InternationalString:
		return c.Metadata.text(p, o)

	case metadata.Citation:
		return c.Citation.citation(p, o)
	case metadata.CitationDate:
		return c.Citation.dates(p, o)
	case metadata.Responsibility:
		return c.Citation.responsibility(p, o)
	case metadata.Party:
		_, err := c.Citation.dispatchParty(p, o)
		return err
	case metadata.Contact:
		return c.Citation.contact(p, o)
	case metadata.Telephone:
		return c.Citation.telephone(p, o)
	case metadata.Address:
		return c.Citation.address(p, o)
	case metadata.OnlineResource:
		return c.Citation.onlineResource(p, o)
	case metadata.BrowseGraphic:
		return c.Citation.browseGraphic(p, o)

	case metadata.Extent:
		return c.Extent.extent(p, o)
	case metadata.VerticalExtent:
		return c.Extent.vertical(p, o)
	case metadata.TemporalExtent:
		return c.Extent.temporal(p, o)
	case metadata.TemporalPrimitive:
		return c.Extent.temporalPrimitive(p, o)
	case metadata.GeographicExtent:
		_, err := c.Extent.dispatch(p, o)
		return err

	case metadata.DataQuality:
		return c.Quality.dataQuality(p, o)
	case metadata.Element:
		_, err := c.Quality.dispatchElement(p, o)
		return err
	case metadata.Result:
		_, err := c.Quality.dispatchResult(p, o)
		return err
	case metadata.SpatialRepresentation:
		return c.Quality.spatialRepresentation(p, o)
	case metadata.RangeDimension:
		return c.Quality.rangeDimension(p, o)
	case metadata.Format:
		return c.Quality.format(p, o)
	case metadata.DataFile:
		return c.Quality.dataFile(p, o)

	case metadata.MaintenanceInformation:
		return c.Maintenance.maintenance(p, o)
	case metadata.Scope:
		return c.Maintenance.scope(p, o)
	case metadata.ScopeDescription:
		return c.Maintenance.scopeDescription(p, o)
	}
	p.c.logger.Debug("not a metadata type", slog.String("type", fmt.Sprintf("%T", obj)))
	return nil
}
