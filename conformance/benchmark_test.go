package conformance

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

// =============================================================================
// Test Data Generators
// =============================================================================

// generatePolygons creates n polygons approximating circles within the given bounds.
func generatePolygons(r *rand.Rand, n, vertices int, minX, maxX, minY, maxY float64) []orb.Geometry {
	polys := make([]orb.Geometry, n)
	for i := 0; i < n; i++ {
		cx := minX + r.Float64()*(maxX-minX)
		cy := minY + r.Float64()*(maxY-minY)
		radius := 0.01 + r.Float64()*0.05

		ring := make(orb.Ring, vertices+1)
		for j := 0; j < vertices; j++ {
			angle := 2 * math.Pi * float64(j) / float64(vertices)
			ring[j] = orb.Point{cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)}
		}
		ring[vertices] = ring[0]
		polys[i] = orb.Polygon{ring}
	}
	return polys
}

// generateMetadata creates a metadata record with n identifications, each
// carrying a bounding box and a bounding polygon of the given complexity.
func generateMetadata(r *rand.Rand, n, polygons, vertices int) *md {
	m := validMetadata()
	m.identifications = make([]metadata.Identification, n)
	for i := 0; i < n; i++ {
		west := -170 + r.Float64()*160
		south := -80 + r.Float64()*70
		geographic := &boxPolygon{
			bounds: bounds{west: west, east: west + 10, south: south, north: south + 10},
			rings:  rings{polygons: generatePolygons(r, polygons, vertices, west, west+10, south, south+10)},
		}
		m.identifications[i] = &identification{
			citation: &citation{
				title: text(fmt.Sprintf("Tile %d", i)),
				dates: []metadata.CitationDate{
					date(metadata.DateTypeCreation, 2020, 1, 1),
					date(metadata.DateTypeRevision, 2021, 1, 1),
				},
				identifiers: []metadata.Identifier{&identifier{code: fmt.Sprintf("tile-%d", i)}},
			},
			abstract: text("Generated tile."),
			extents:  []metadata.Extent{&extent{geographic: []metadata.GeographicExtent{geographic}}},
		}
	}
	return m
}

// =============================================================================
// Validation Benchmarks
// =============================================================================

func BenchmarkValidate_Metadata_10(b *testing.B) {
	benchmarkValidate(b, 10, 1, 32, true)
}

func BenchmarkValidate_Metadata_100(b *testing.B) {
	benchmarkValidate(b, 100, 1, 32, true)
}

func BenchmarkValidate_Metadata_1000(b *testing.B) {
	benchmarkValidate(b, 1000, 1, 32, true)
}

func BenchmarkValidate_ComplexPolygons_100(b *testing.B) {
	benchmarkValidate(b, 100, 10, 256, true)
}

func BenchmarkValidate_ComplexPolygonsNoGeometry_100(b *testing.B) {
	benchmarkValidate(b, 100, 10, 256, false)
}

func benchmarkValidate(b *testing.B, n, polygons, vertices int, geometry bool) {
	r := rand.New(rand.NewSource(42))
	m := generateMetadata(r, n, polygons, vertices)
	cfg := DefaultConfig()
	cfg.ValidateGeometry = geometry
	c := NewContainer(cfg)

	if err := c.Validate(m); err != nil {
		b.Fatalf("generated metadata is invalid: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.Validate(m); err != nil {
			b.Fatal(err)
		}
	}
}

// =============================================================================
// Materializer Benchmarks
// =============================================================================

func BenchmarkMaterialize_Slice_1000(b *testing.B) {
	ids := make([]metadata.Identifier, 1000)
	for i := range ids {
		ids[i] = &identifier{code: fmt.Sprintf("id-%d", i)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Materialize[metadata.Identifier](ids); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDispatch_BoundingBox(b *testing.B) {
	v := NewContainer(nil).Extent
	box := newBox(-10, 10, -5, 5)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.Dispatch(box); err != nil {
			b.Fatal(err)
		}
	}
}
