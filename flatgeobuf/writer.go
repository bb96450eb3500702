package flatgeobuf

import (
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"

	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/paulmach/orb"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

// world is the footprint of elements with no geometry of their own.
var world = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// Encode writes the geographic elements of every identification extent of
// md as the features of one FlatGeobuf layer. Each feature carries the
// capabilities of its element in the fixed property schema; its geometry is
// the element polygons, else its bounding box, else the whole world.
// A spatial index is always written so the layer can be read back in full.
func Encode(w io.Writer, md metadata.Metadata, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if absent(md) {
		return ErrNoExtent
	}

	var (
		features   []encoded
		geometries []orb.Geometry
		title      string
		abstract   string
	)
	for _, id := range md.IdentificationInfo() {
		if absent(id) {
			continue
		}
		if title == "" {
			if c := id.Citation(); !absent(c) {
				title = str(c.Title())
			}
		}
		if abstract == "" {
			abstract = str(id.Abstract())
		}
		for _, ext := range id.Extents() {
			if absent(ext) {
				continue
			}
			for _, g := range ext.GeographicElements() {
				if absent(g) {
					continue
				}
				f, err := encodeElement(g, int64(len(features)))
				if err != nil {
					return err
				}
				features = append(features, f)
				geometries = append(geometries, f.geometry)
			}
		}
	}
	if len(features) == 0 {
		return ErrNoExtent
	}

	builder := flatbuffers.NewBuilder(4096)
	header := writer.NewHeader(builder)
	header.SetGeometryType(layerType(geometries))
	if name := firstOf(opts.Name, title); name != "" {
		header.SetName(name)
	}
	if d := firstOf(opts.Description, abstract); d != "" {
		header.SetDescription(d)
	}
	header.SetColumns(schemaColumns(builder))
	if opts.CRS != nil {
		crs := writer.NewCrs(builder)
		crs.SetOrg(opts.CRS.authority())
		if opts.CRS.Code > 0 {
			crs.SetCode(int32(opts.CRS.Code))
		}
		if opts.CRS.Name != "" {
			crs.SetName(opts.CRS.Name)
		}
		if opts.CRS.Description != "" {
			crs.SetDescription(opts.CRS.Description)
		}
		header.SetCrs(crs)
	}

	_, err := writer.NewWriter(header, true, &generator{features: features}, nil).Write(w)
	return err
}

// encoded is a geographic element ready to be written.
type encoded struct {
	geometry orb.Geometry
	props    []byte
}

func encodeElement(g metadata.GeographicExtent, ordinal int64) (encoded, error) {
	values := make([]any, len(schema))
	values[idxOrdinal] = ordinal
	if flag := g.InclusionFlag(); flag != nil {
		values[idxInclusion] = *flag
	}

	var kinds []string
	var geom orb.Geometry
	if b, ok := g.(metadata.GeographicBoundingBox); ok {
		kinds = append(kinds, kindBox)
		values[idxWest] = nullable(b.WestBoundLongitude())
		values[idxEast] = nullable(b.EastBoundLongitude())
		values[idxSouth] = nullable(b.SouthBoundLatitude())
		values[idxNorth] = nullable(b.NorthBoundLatitude())
		geom = footprint(b)
	}
	if p, ok := g.(metadata.BoundingPolygon); ok {
		kinds = append(kinds, kindPolygon)
		polygons := p.Polygons()
		for _, poly := range polygons {
			if absent(poly) {
				return encoded{}, fmt.Errorf("%w: null bounding polygon geometry", ErrInvalidData)
			}
		}
		values[idxPolygons] = int64(len(polygons))
		switch len(polygons) {
		case 0:
		case 1:
			geom = polygons[0]
		default:
			geom = orb.Collection(polygons)
		}
	}
	if d, ok := g.(metadata.GeographicDescription); ok {
		kinds = append(kinds, kindDescription)
		if id := d.GeographicIdentifier(); !absent(id) {
			values[idxCode] = id.Code()
			if cs := id.CodeSpace(); cs != "" {
				values[idxCodeSpace] = cs
			}
		}
	}
	values[idxKind] = strings.Join(kinds, "+")
	if geom == nil {
		geom = world.ToPolygon()
	}
	if geometryType(geom) == flattypes.GeometryTypeUnknown {
		return encoded{}, fmt.Errorf("%w: %T", ErrUnsupportedType, geom)
	}

	props, err := encodeProperties(values)
	if err != nil {
		return encoded{}, err
	}
	return encoded{geometry: geom, props: props}, nil
}

// footprint returns the area of a bounding box, with unknown limits widened
// to the world. A box whose west bound is east of its east bound crosses the
// anti-meridian and is split in two.
func footprint(b metadata.GeographicBoundingBox) orb.Geometry {
	limit := func(v, fallback float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fallback
		}
		return v
	}
	west := limit(b.WestBoundLongitude(), world.Min[0])
	east := limit(b.EastBoundLongitude(), world.Max[0])
	south := limit(b.SouthBoundLatitude(), world.Min[1])
	north := limit(b.NorthBoundLatitude(), world.Max[1])
	if west <= east {
		return orb.Bound{Min: orb.Point{west, south}, Max: orb.Point{east, north}}.ToPolygon()
	}
	return orb.MultiPolygon{
		orb.Bound{Min: orb.Point{west, south}, Max: orb.Point{world.Max[0], north}}.ToPolygon(),
		orb.Bound{Min: orb.Point{world.Min[0], south}, Max: orb.Point{east, north}}.ToPolygon(),
	}
}

// absent reports whether v is nil or an interface holding a nil pointer.
func absent(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func str(s metadata.InternationalString) string {
	if absent(s) {
		return ""
	}
	return s.String()
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// generator feeds encoded elements to the FlatGeobuf writer.
type generator struct {
	features []encoded
	index    int
}

func (g *generator) Generate() *writer.Feature {
	if g.index >= len(g.features) {
		return nil
	}
	f := g.features[g.index]
	g.index++

	builder := flatbuffers.NewBuilder(1024)
	feature := writer.NewFeature(builder)
	feature.SetGeometry(toFGB(f.geometry, builder))
	if len(f.props) > 0 {
		feature.SetProperties(f.props)
	}
	return feature
}
