// Package flatgeobuf exposes FlatGeobuf layers as metadata records and
// writes the geographic extents of a metadata record as a FlatGeobuf layer.
//
// A decoded Layer implements metadata.Metadata: the layer name is the
// resource title, the layer description its abstract, the header envelope a
// geographic bounding box and every feature one geographic element.
package flatgeobuf

import (
	"errors"
	"strconv"
)

// Common errors returned by this package.
var (
	ErrInvalidData     = errors.New("flatgeobuf: invalid data")
	ErrNoIndex         = errors.New("flatgeobuf: file has no spatial index")
	ErrNoExtent        = errors.New("flatgeobuf: metadata has no geographic extent")
	ErrUnsupportedType = errors.New("flatgeobuf: unsupported geometry type")
)

// CRS represents a coordinate reference system.
type CRS struct {
	Org         string // Authority, EPSG when empty
	Code        int    // Code assigned by the authority
	Name        string // CRS name
	Description string // CRS description
}

// WGS84 returns the standard WGS84 CRS (EPSG:4326).
func WGS84() *CRS {
	return &CRS{
		Org:  "EPSG",
		Code: 4326,
		Name: "WGS 84",
	}
}

func (c *CRS) authority() string {
	if c.Org == "" {
		return "EPSG"
	}
	return c.Org
}

// String returns the CRS as "ORG:CODE".
func (c *CRS) String() string {
	return c.authority() + ":" + strconv.Itoa(c.Code)
}

// Options configures Encode.
type Options struct {
	Name        string // Layer name, the first resource title when empty
	Description string // Layer description, the first abstract when empty
	CRS         *CRS   // Coordinate reference system (optional)
}

// DefaultOptions returns options writing WGS84 layers named after the
// described resource.
func DefaultOptions() *Options {
	return &Options{
		CRS: WGS84(),
	}
}

// ColumnInfo describes a property column in a FlatGeobuf file.
type ColumnInfo struct {
	Name        string // Column name
	Type        string // Column type ("Bool", "Long", "Double", "String", "Json", etc.)
	Title       string // Column title (human-readable)
	Description string // Column description
	Nullable    bool   // Whether the column can contain null values
}

// Header contains metadata about a FlatGeobuf file.
type Header struct {
	Name          string       // Layer name
	Description   string       // Layer description
	GeometryType  string       // Geometry type ("Point", "Polygon", "Unknown", etc.)
	FeaturesCount uint64       // Number of features in the file
	Envelope      []float64    // Bounding box [minX, minY, maxX, maxY], nil when absent
	CRS           *CRS         // Coordinate reference system
	HasIndex      bool         // Whether the file has a spatial index
	Columns       []ColumnInfo // Property column schema
}
