package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opengeospatial/geoapi-conformance/document"
	"github.com/opengeospatial/geoapi-conformance/flatgeobuf"
)

// convertOptions are the flags of the convert command.
type convertOptions struct {
	Input       string `validate:"required"`
	Output      string `validate:"required,endswith=.fgb"`
	Name        string
	Description string
	EPSG        int `validate:"gte=0"`
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert [flags] DOCUMENT OUTPUT.fgb",
		Short: "Write the geographic extents of a metadata document as a FlatGeobuf layer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input, opts.Output = args[0], args[1]
			return runConvert(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Name, "name", "", "layer name (default: citation title)")
	flags.StringVar(&opts.Description, "description", "", "layer description (default: abstract)")
	flags.IntVar(&opts.EPSG, "epsg", 4326, "EPSG code of the layer CRS, 0 for none")
	return cmd
}

func runConvert(cmd *cobra.Command, opts *convertOptions) error {
	if err := flagValidate.Struct(opts); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	md, err := document.Load(opts.Input)
	if err != nil {
		return err
	}

	fgbOpts := &flatgeobuf.Options{Name: opts.Name, Description: opts.Description}
	switch opts.EPSG {
	case 0:
	case 4326:
		fgbOpts.CRS = flatgeobuf.WGS84()
	default:
		fgbOpts.CRS = &flatgeobuf.CRS{Org: "EPSG", Code: opts.EPSG}
	}

	var buf bytes.Buffer
	if err := flatgeobuf.Encode(&buf, md, fgbOpts); err != nil {
		return fmt.Errorf("encode %s: %w", opts.Input, err)
	}
	if err := os.WriteFile(opts.Output, buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d bytes)\n", passStyle.Render("Wrote"), opts.Output, buf.Len())
	return nil
}
