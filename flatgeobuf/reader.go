package flatgeobuf

import (
	"cmp"
	"fmt"
	"slices"

	flatgeobuf "github.com/flatgeobuf/flatgeobuf/src/go"
	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Open reads the FlatGeobuf file at path.
func Open(path string) (*Layer, error) {
	fgb, err := flatgeobuf.New(path)
	if err != nil {
		return nil, err
	}
	return read(fgb)
}

// Decode reads a FlatGeobuf layer from data.
func Decode(data []byte) (*Layer, error) {
	fgb, err := flatgeobuf.NewWithData(data)
	if err != nil {
		return nil, err
	}
	return read(fgb)
}

// read loads the header and every feature. Features are found through the
// spatial index over the header envelope, so a layer holding features
// requires both.
func read(fgb *flatgeobuf.FlatGeoBuf) (*Layer, error) {
	h := fgb.Header()
	if h == nil {
		return nil, ErrInvalidData
	}
	l := newLayer(readHeader(h))
	if h.FeaturesCount() == 0 {
		l.identification = l.identify()
		return l, nil
	}
	if h.IndexNodeSize() == 0 {
		return nil, ErrNoIndex
	}
	if h.EnvelopeLength() < 4 {
		return nil, fmt.Errorf("%w: layer with features has no envelope", ErrInvalidData)
	}

	found, err := fgb.Search(h.Envelope(0), h.Envelope(1), h.Envelope(2), h.Envelope(3))
	if err != nil {
		return nil, err
	}
	for _, f := range found {
		feature, err := readFeature(f, h)
		if err != nil {
			return nil, err
		}
		if feature != nil {
			l.features = append(l.features, feature)
		}
	}
	// The index stores features in Hilbert order.
	slices.SortStableFunc(l.features, func(a, b *geojson.Feature) int {
		return cmp.Compare(ordinal(a), ordinal(b))
	})
	l.identification = l.identify()
	return l, nil
}

func readHeader(h *flattypes.Header) Header {
	header := Header{
		Name:          string(h.Name()),
		Description:   string(h.Description()),
		GeometryType:  flattypes.EnumNamesGeometryType[h.GeometryType()],
		FeaturesCount: h.FeaturesCount(),
		HasIndex:      h.IndexNodeSize() > 0,
	}
	if h.EnvelopeLength() >= 4 {
		header.Envelope = []float64{h.Envelope(0), h.Envelope(1), h.Envelope(2), h.Envelope(3)}
	}

	var crs flattypes.Crs
	if h.Crs(&crs) != nil {
		header.CRS = &CRS{
			Org:         string(crs.Org()),
			Code:        int(crs.Code()),
			Name:        string(crs.Name()),
			Description: string(crs.Description()),
		}
	}

	for i := 0; i < h.ColumnsLength(); i++ {
		var col flattypes.Column
		if h.Columns(&col, i) {
			header.Columns = append(header.Columns, ColumnInfo{
				Name:        string(col.Name()),
				Type:        flattypes.EnumNamesColumnType[col.Type()],
				Title:       string(col.Title()),
				Description: string(col.Description()),
				Nullable:    col.Nullable(),
			})
		}
	}
	return header
}

// readFeature converts a FlatGeobuf feature. Features without a geometry
// are skipped.
func readFeature(f *flattypes.Feature, h *flattypes.Header) (*geojson.Feature, error) {
	if f == nil {
		return nil, nil
	}
	var g flattypes.Geometry
	geom := fromFGB(f.Geometry(&g))
	if geom == nil {
		return nil, nil
	}
	feature := geojson.NewFeature(geom)
	if n := f.PropertiesLength(); n > 0 {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(f.Properties(i))
		}
		props, err := decodeProperties(data, h)
		if err != nil {
			return nil, err
		}
		feature.Properties = props
	}
	return feature, nil
}

// ordinal returns the position written by Encode, or -1 for foreign features.
func ordinal(f *geojson.Feature) int64 {
	if n, ok := f.Properties[PropOrdinal].(int64); ok {
		return n
	}
	return -1
}

// Features returns the features of the layer as a feature collection.
func (l *Layer) Features() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.Features = append(fc.Features, l.features...)
	return fc
}

// Search returns the features whose bounds intersect b.
func (l *Layer) Search(b orb.Bound) []*geojson.Feature {
	var out []*geojson.Feature
	for _, f := range l.features {
		if intersects(f.Geometry, b) {
			out = append(out, f)
		}
	}
	return out
}

// intersects tests the parts of multi-geometries one by one, so a box split
// at the anti-meridian does not match the longitudes between its halves.
func intersects(g orb.Geometry, b orb.Bound) bool {
	switch v := g.(type) {
	case orb.MultiPolygon:
		for _, p := range v {
			if p.Bound().Intersects(b) {
				return true
			}
		}
		return false
	case orb.Collection:
		for _, child := range v {
			if intersects(child, b) {
				return true
			}
		}
		return false
	}
	return g.Bound().Intersects(b)
}
