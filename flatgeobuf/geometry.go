package flatgeobuf

import (
	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/paulmach/orb"
)

// geometryType returns the FlatGeobuf type of geom.
func geometryType(geom orb.Geometry) flattypes.GeometryType {
	switch geom.(type) {
	case orb.Point:
		return flattypes.GeometryTypePoint
	case orb.MultiPoint:
		return flattypes.GeometryTypeMultiPoint
	case orb.LineString:
		return flattypes.GeometryTypeLineString
	case orb.MultiLineString:
		return flattypes.GeometryTypeMultiLineString
	case orb.Ring, orb.Polygon, orb.Bound:
		return flattypes.GeometryTypePolygon
	case orb.MultiPolygon:
		return flattypes.GeometryTypeMultiPolygon
	case orb.Collection:
		return flattypes.GeometryTypeGeometryCollection
	default:
		return flattypes.GeometryTypeUnknown
	}
}

// layerType returns the common type of geometries, or Unknown when they differ.
func layerType(geometries []orb.Geometry) flattypes.GeometryType {
	if len(geometries) == 0 {
		return flattypes.GeometryTypeUnknown
	}
	t := geometryType(geometries[0])
	for _, g := range geometries[1:] {
		if geometryType(g) != t {
			return flattypes.GeometryTypeUnknown
		}
	}
	return t
}

// toFGB converts geom to a FlatGeobuf geometry. It returns nil for nil and
// unsupported geometries.
func toFGB(geom orb.Geometry, builder *flatbuffers.Builder) *writer.Geometry {
	if geom == nil {
		return nil
	}

	g := writer.NewGeometry(builder)
	switch v := geom.(type) {
	case orb.Point:
		g.SetType(flattypes.GeometryTypePoint)
		g.SetXY([]float64{v[0], v[1]})

	case orb.MultiPoint:
		g.SetType(flattypes.GeometryTypeMultiPoint)
		g.SetXY(flatten(v))

	case orb.LineString:
		g.SetType(flattypes.GeometryTypeLineString)
		g.SetXY(flatten(v))

	case orb.MultiLineString:
		g.SetType(flattypes.GeometryTypeMultiLineString)
		xy, ends := flattenParts(v)
		g.SetXY(xy)
		g.SetEnds(ends)

	case orb.Ring:
		return toFGB(orb.Polygon{v}, builder)

	case orb.Bound:
		return toFGB(v.ToPolygon(), builder)

	case orb.Polygon:
		g.SetType(flattypes.GeometryTypePolygon)
		xy, ends := flattenParts(v)
		g.SetXY(xy)
		g.SetEnds(ends)

	case orb.MultiPolygon:
		g.SetType(flattypes.GeometryTypeMultiPolygon)
		parts := make([]writer.Geometry, 0, len(v))
		for _, poly := range v {
			parts = append(parts, *toFGB(poly, builder))
		}
		g.SetParts(parts)

	case orb.Collection:
		g.SetType(flattypes.GeometryTypeGeometryCollection)
		parts := make([]writer.Geometry, 0, len(v))
		for _, child := range v {
			if part := toFGB(child, builder); part != nil {
				parts = append(parts, *part)
			}
		}
		g.SetParts(parts)

	default:
		return nil
	}
	return g
}

// fromFGB converts a FlatGeobuf geometry to an orb geometry.
func fromFGB(g *flattypes.Geometry) orb.Geometry {
	if g == nil {
		return nil
	}

	switch g.Type() {
	case flattypes.GeometryTypePoint:
		if g.XyLength() < 2 {
			return orb.Point{}
		}
		return orb.Point{g.Xy(0), g.Xy(1)}

	case flattypes.GeometryTypeMultiPoint:
		return orb.MultiPoint(points(g, 0, g.XyLength()/2))

	case flattypes.GeometryTypeLineString:
		return orb.LineString(points(g, 0, g.XyLength()/2))

	case flattypes.GeometryTypeMultiLineString:
		var mls orb.MultiLineString
		for _, part := range split(g) {
			mls = append(mls, orb.LineString(part))
		}
		return mls

	case flattypes.GeometryTypePolygon:
		return polygon(g)

	case flattypes.GeometryTypeMultiPolygon:
		if g.PartsLength() == 0 {
			return orb.MultiPolygon{polygon(g)}
		}
		mp := make(orb.MultiPolygon, 0, g.PartsLength())
		for i := 0; i < g.PartsLength(); i++ {
			var part flattypes.Geometry
			if g.Parts(&part, i) {
				mp = append(mp, polygon(&part))
			}
		}
		return mp

	case flattypes.GeometryTypeGeometryCollection:
		coll := make(orb.Collection, 0, g.PartsLength())
		for i := 0; i < g.PartsLength(); i++ {
			var part flattypes.Geometry
			if !g.Parts(&part, i) {
				continue
			}
			if child := fromFGB(&part); child != nil {
				coll = append(coll, child)
			}
		}
		return coll

	default:
		return nil
	}
}

func polygon(g *flattypes.Geometry) orb.Polygon {
	parts := split(g)
	poly := make(orb.Polygon, 0, len(parts))
	for _, part := range parts {
		poly = append(poly, orb.Ring(part))
	}
	return poly
}

// flatten interleaves the coordinates of pts.
func flatten[P ~[]orb.Point](pts P) []float64 {
	xy := make([]float64, 0, len(pts)*2)
	for _, p := range pts {
		xy = append(xy, p[0], p[1])
	}
	return xy
}

// flattenParts interleaves the coordinates of every part and returns the
// cumulative point count at the end of each part.
func flattenParts[L ~[]P, P ~[]orb.Point](parts L) ([]float64, []uint32) {
	var xy []float64
	ends := make([]uint32, 0, len(parts))
	for _, part := range parts {
		xy = append(xy, flatten(part)...)
		ends = append(ends, uint32(len(xy)/2))
	}
	return xy, ends
}

// points reads the points [from, to) of g.
func points(g *flattypes.Geometry, from, to int) []orb.Point {
	pts := make([]orb.Point, 0, max(to-from, 0))
	for i := from; i < to && 2*i+1 < g.XyLength(); i++ {
		pts = append(pts, orb.Point{g.Xy(2 * i), g.Xy(2*i + 1)})
	}
	return pts
}

// split cuts the points of g at its ends. Without ends all points form one part.
func split(g *flattypes.Geometry) [][]orb.Point {
	n := g.XyLength() / 2
	if n == 0 {
		return nil
	}
	if g.EndsLength() == 0 {
		return [][]orb.Point{points(g, 0, n)}
	}
	parts := make([][]orb.Point, 0, g.EndsLength())
	start := 0
	for i := 0; i < g.EndsLength(); i++ {
		end := int(g.Ends(i))
		parts = append(parts, points(g, start, end))
		start = end
	}
	return parts
}
