package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/opengeospatial/geoapi-conformance/conformance"
	"github.com/opengeospatial/geoapi-conformance/document"
	"github.com/opengeospatial/geoapi-conformance/flatgeobuf"
	"github.com/opengeospatial/geoapi-conformance/metadata"
)

// errNotConformant is returned when at least one file fails validation. The
// failures have already been rendered.
var errNotConformant = errors.New("one or more files are not conformant")

const formatFGB = "fgb"

// options are the flags of the root command.
type options struct {
	Files      []string `validate:"min=1,dive,required"`
	Format     string   `validate:"omitempty,oneof=yaml yml json toml fgb"`
	EnvFile    string
	Lenient    bool
	NoGeometry bool
	Verbose    bool
}

var flagValidate = validator.New(validator.WithRequiredStructEnabled())

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "geoapi-validate [flags] FILE...",
		Short: "Check metadata records against the GeoAPI conformance rules",
		Long: titleStyle.Render("geoapi-validate") + subtitleStyle.Render(" - GeoAPI metadata conformance checker") + `

Reads ISO 19115 metadata documents (YAML, JSON or TOML) or FlatGeobuf layers
and reports the first conformance failure of each file.

` + subtitleStyle.Render("Environment:") + `
  GEOAPI_REQUIRE_MANDATORY_ATTRIBUTES  fail empty mandatory collections (default true)
  GEOAPI_ENFORCE_FORBIDDEN_ATTRIBUTES  fail forbidden attribute combinations (default true)
  GEOAPI_VALIDATE_GEOMETRY             check bounding polygon geometries (default true)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Files = args
			return runValidate(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.Lenient, "lenient", false, "accept empty mandatory collections")
	flags.BoolVar(&opts.NoGeometry, "no-geometry", false, "skip bounding polygon geometry checks")
	flags.StringVarP(&opts.Format, "format", "f", "", "input format: yaml, json, toml or fgb (default: from extension)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log dispatch decisions and show failure details")

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "file of GEOAPI_* defaults")

	cmd.AddCommand(newConvertCmd())
	return cmd
}

// config resolves the validator configuration: the env file, then the
// environment, then the flags.
func (o *options) config() (*conformance.Config, error) {
	if err := godotenv.Load(o.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", o.EnvFile, err)
	}
	cfg, err := conformance.LoadConfig()
	if err != nil {
		return nil, err
	}
	if o.Lenient {
		cfg.RequireMandatoryAttributes = false
	}
	if o.NoGeometry {
		cfg.ValidateGeometry = false
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix:          "geoapi-validate",
		Level:           level,
		ReportTimestamp: verbose,
	})
	return slog.New(handler)
}

func runValidate(cmd *cobra.Command, opts *options) error {
	if err := flagValidate.Struct(opts); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	cfg, err := opts.config()
	if err != nil {
		return err
	}
	logger := newLogger(cmd, opts.Verbose)
	logger.Debug("configuration",
		slog.Bool("requireMandatoryAttributes", cfg.RequireMandatoryAttributes),
		slog.Bool("enforceForbiddenAttributes", cfg.EnforceForbiddenAttributes),
		slog.Bool("validateGeometry", cfg.ValidateGeometry))

	container := conformance.NewContainer(cfg, conformance.WithLogger(logger))
	results := make([]result, 0, len(opts.Files))
	for _, path := range opts.Files {
		r := result{Path: path}
		md, err := load(path, opts.Format)
		if err != nil {
			r.LoadErr = err
		} else {
			r.Err = container.Validate(md)
		}
		logger.Info("file checked", slog.String("path", path), slog.Bool("ok", r.ok()))
		results = append(results, r)
	}

	fmt.Fprint(cmd.OutOrStdout(), render(results, opts.Verbose))
	for _, r := range results {
		if !r.ok() {
			return errNotConformant
		}
	}
	return nil
}

// load reads path as a FlatGeobuf layer or a metadata document. An empty
// format is inferred from the extension.
func load(path, format string) (metadata.Metadata, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	if format == formatFGB {
		return flatgeobuf.Open(path)
	}
	f, err := document.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return loadDocument(path, f)
}

func loadDocument(path string, format document.Format) (*document.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return document.Decode(f, format)
}
