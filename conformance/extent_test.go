package conformance

import (
	"math"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

func TestExtentValidator_BoundingBox(t *testing.T) {
	v := NewContainer(nil).Extent
	nan := math.NaN()

	tests := []struct {
		name    string
		box     *box
		wantErr error
	}{
		{name: "valid box", box: newBox(-10, 10, -5, 5)},
		{name: "NaN west bound", box: newBox(nan, 10, -5, 5)},
		{name: "all bounds NaN", box: newBox(nan, nan, nan, nan)},
		{name: "west equals east at -180", box: newBox(-180, -180, 0, 0)},
		{name: "west greater than east", box: newBox(170, -170, -5, 5)},
		{name: "west out of range", box: newBox(200, 10, -5, 5), wantErr: ErrConstraint},
		{name: "east out of range", box: newBox(-10, -181, -5, 5), wantErr: ErrConstraint},
		{name: "north out of range", box: newBox(-10, 10, -5, 91), wantErr: ErrConstraint},
		{name: "infinite south bound", box: newBox(-10, 10, math.Inf(-1), 5), wantErr: ErrConstraint},
		{name: "south greater than north", box: newBox(-10, 10, 10, 5), wantErr: ErrConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBoundingBox(tt.box)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestExtentValidator_Dispatch(t *testing.T) {
	v := NewContainer(nil).Extent
	france := place{id: &identifier{code: "FR"}}

	tests := []struct {
		name      string
		extent    metadata.GeographicExtent
		wantCount int
		wantErr   error
	}{
		{name: "bounding box", extent: newBox(-10, 10, -5, 5), wantCount: 1},
		{name: "bounding polygon", extent: &polygon{rings: rings{polygons: []orb.Geometry{square}}}, wantCount: 1},
		{name: "description", extent: &description{place: france}, wantCount: 1},
		{
			name: "box and polygon",
			extent: &boxPolygon{
				bounds: bounds{west: -10, east: 10, south: -5, north: 5},
				rings:  rings{polygons: []orb.Geometry{square}},
			},
			wantCount: 2,
		},
		{name: "no capability", extent: &geo{inclusion: metadata.Bool(true)}, wantCount: 0},
		{name: "nil extent", extent: nil, wantCount: 0},
		{
			name:      "invalid box stops dispatch",
			extent:    &boxPolygon{bounds: bounds{west: 200}, rings: rings{polygons: []orb.Geometry{square}}},
			wantCount: 0,
			wantErr:   ErrConstraint,
		},
		{name: "description without identifier", extent: &description{}, wantCount: 0, wantErr: ErrMandatory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := v.Dispatch(tt.extent)
			assert.Equal(t, tt.wantCount, n)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestExtentValidator_BoundingPolygon(t *testing.T) {
	open := orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}
	short := orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {0, 0}}}
	infinite := orb.Polygon{orb.Ring{{0, 0}, {math.Inf(1), 0}, {1, 1}, {0, 0}}}

	tests := []struct {
		name     string
		polygons []orb.Geometry
		geometry bool
		wantErr  error
	}{
		{name: "closed square", polygons: []orb.Geometry{square}, geometry: true},
		{name: "multi polygon", polygons: []orb.Geometry{orb.MultiPolygon{square, square}}, geometry: true},
		{name: "open ring", polygons: []orb.Geometry{open}, geometry: true, wantErr: ErrConstraint},
		{name: "short ring", polygons: []orb.Geometry{short}, geometry: true, wantErr: ErrConstraint},
		{name: "infinite coordinate", polygons: []orb.Geometry{infinite}, geometry: true, wantErr: ErrConstraint},
		{name: "open ring without geometry checks", polygons: []orb.Geometry{open}, geometry: false},
		{name: "no polygon", polygons: nil, geometry: true, wantErr: ErrMandatory},
		{name: "null polygon", polygons: []orb.Geometry{nil}, geometry: true, wantErr: ErrConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ValidateGeometry = tt.geometry
			err := NewContainer(cfg).Extent.ValidateBoundingPolygon(&polygon{rings: rings{polygons: tt.polygons}})
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestExtentValidator_Validate(t *testing.T) {
	v := NewContainer(nil).Extent
	begin := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		extent  *extent
		wantErr error
	}{
		{name: "description only", extent: &extent{description: text("North Atlantic")}},
		{name: "empty extent", extent: &extent{}, wantErr: ErrMandatory},
		{
			name:   "vertical extent",
			extent: &extent{vertical: []metadata.VerticalExtent{&vertical{lo: -100, hi: 0}}},
		},
		{
			name:    "vertical minimum above maximum",
			extent:  &extent{vertical: []metadata.VerticalExtent{&vertical{lo: 10, hi: 0}}},
			wantErr: ErrConstraint,
		},
		{
			name:    "vertical without minimum",
			extent:  &extent{vertical: []metadata.VerticalExtent{&vertical{lo: math.NaN(), hi: 0}}},
			wantErr: ErrMandatory,
		},
		{
			name: "vertical CRS without identifier",
			extent: &extent{vertical: []metadata.VerticalExtent{
				&vertical{lo: 0, hi: 1, crs: &referenceSystem{}},
			}},
			wantErr: ErrMandatory,
		},
		{
			name: "temporal period",
			extent: &extent{temporal: []metadata.TemporalExtent{
				&temporal{element: &period{begin: begin, end: begin.AddDate(1, 0, 0)}},
			}},
		},
		{
			name: "temporal period ending before beginning",
			extent: &extent{temporal: []metadata.TemporalExtent{
				&temporal{element: &period{begin: begin, end: begin.AddDate(-1, 0, 0)}},
			}},
			wantErr: ErrConstraint,
		},
		{
			name:    "temporal extent without element",
			extent:  &extent{temporal: []metadata.TemporalExtent{&temporal{}}},
			wantErr: ErrMandatory,
		},
		{
			name:    "invalid geographic element",
			extent:  &extent{geographic: []metadata.GeographicExtent{newBox(0, 0, 50, 10)}},
			wantErr: ErrConstraint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.extent)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestExtentValidator_SharedElementValidatedOnce(t *testing.T) {
	shared := newBox(-10, 10, -5, 5)
	e := &extent{geographic: []metadata.GeographicExtent{shared, shared}}

	require.NoError(t, NewContainer(nil).Extent.Validate(e))

	items, err := Materialize[metadata.GeographicExtent](e.GeographicElements())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
