package conformance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

func passResult(pass *bool) *conformanceResult {
	return &conformanceResult{specification: validCitation(), pass: pass}
}

func TestQualityValidator_ConformanceResult(t *testing.T) {
	v := NewContainer(nil).Quality

	tests := []struct {
		name    string
		result  *conformanceResult
		wantErr error
	}{
		{name: "passed", result: passResult(metadata.Bool(true))},
		{name: "failed is still a valid result", result: passResult(metadata.Bool(false))},
		{name: "absent Boolean", result: passResult(nil), wantErr: ErrMandatory},
		{name: "absent specification", result: &conformanceResult{pass: metadata.Bool(true)}, wantErr: ErrMandatory},
		{
			name:    "scope without level",
			result:  &conformanceResult{result: result{scope: &scope{}}, specification: validCitation(), pass: metadata.Bool(true)},
			wantErr: ErrMandatory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateConformanceResult(tt.result)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// multiResult implements both the conformance and the descriptive capabilities.
type multiResult struct {
	conformanceResult
	statement metadata.InternationalString
}

func (r *multiResult) Statement() metadata.InternationalString { return r.statement }

func TestQualityValidator_DispatchResult(t *testing.T) {
	v := NewContainer(nil).Quality

	tests := []struct {
		name      string
		result    metadata.Result
		wantCount int
		wantErr   error
	}{
		{name: "plain result", result: result{}, wantCount: 0},
		{name: "conformance", result: passResult(metadata.Bool(false)), wantCount: 1},
		{name: "descriptive", result: &descriptiveResult{statement: text("Complete.")}, wantCount: 1},
		{name: "descriptive without statement", result: &descriptiveResult{}, wantCount: 0, wantErr: ErrMandatory},
		{name: "quantitative", result: &quantitativeResult{values: []metadata.Record{record{"rmse": 0.5}}}, wantCount: 1},
		{name: "quantitative without value", result: &quantitativeResult{}, wantCount: 0, wantErr: ErrMandatory},
		{
			name: "conformance and descriptive",
			result: &multiResult{
				conformanceResult: *passResult(metadata.Bool(true)),
				statement:         text("Conformant."),
			},
			wantCount: 2,
		},
		{name: "nil result", result: nil, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := v.DispatchResult(tt.result)
			assert.Equal(t, tt.wantCount, n)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestQualityValidator_DispatchElement(t *testing.T) {
	v := NewContainer(nil).Quality
	results := []metadata.Result{passResult(metadata.Bool(true))}
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name      string
		element   metadata.Element
		wantCount int
		wantErr   error
	}{
		{name: "generic element", element: &element{results: results}, wantCount: 0},
		{
			name:      "positional accuracy",
			element:   &positionalAccuracy{element: element{results: results}, kind: "absolute"},
			wantCount: 1,
		},
		{
			name:      "blank positional accuracy kind",
			element:   &positionalAccuracy{element: element{results: results}, kind: " "},
			wantCount: 0,
			wantErr:   ErrConstraint,
		},
		{name: "element without result", element: &element{}, wantCount: 0, wantErr: ErrMandatory},
		{
			name:      "evaluation dates in order",
			element:   &element{dates: []time.Time{day(1), day(2)}, results: results},
			wantCount: 0,
		},
		{
			name:      "evaluation dates out of order",
			element:   &element{dates: []time.Time{day(2), day(1)}, results: results},
			wantCount: 0,
			wantErr:   ErrConstraint,
		},
		{
			name:      "null result",
			element:   &element{results: []metadata.Result{nil}},
			wantCount: 0,
			wantErr:   ErrConstraint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := v.DispatchElement(tt.element)
			assert.Equal(t, tt.wantCount, n)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestQualityValidator_Validate(t *testing.T) {
	v := NewContainer(nil).Quality
	report := &element{results: []metadata.Result{passResult(metadata.Bool(true))}}

	t.Run("valid report", func(t *testing.T) {
		dq := &dataQuality{scope: &scope{level: metadata.ScopeDataset}, reports: []metadata.Element{report}}
		assert.NoError(t, v.Validate(dq))
	})

	t.Run("missing scope", func(t *testing.T) {
		dq := &dataQuality{reports: []metadata.Element{report}}
		assert.ErrorIs(t, v.Validate(dq), ErrMandatory)
	})

	t.Run("missing report", func(t *testing.T) {
		dq := &dataQuality{scope: &scope{level: metadata.ScopeDataset}}
		assert.ErrorIs(t, v.Validate(dq), ErrMandatory)
	})

	t.Run("missing report when lenient", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.RequireMandatoryAttributes = false
		dq := &dataQuality{scope: &scope{level: metadata.ScopeDataset}}
		assert.NoError(t, NewContainer(cfg).Quality.Validate(dq))
	})
}

func TestQualityValidator_CoverageResult(t *testing.T) {
	representation := &spatialRepresentation{scope: &scope{level: metadata.ScopeDataset}}
	format := &dataFormat{specification: validCitation()}
	coverage := func(c *coverageResult) *coverageResult {
		c.typ = metadata.SpatialGrid
		c.representation = representation
		return c
	}

	tests := []struct {
		name    string
		result  *coverageResult
		lenient bool
		wantErr error
	}{
		{name: "with content", result: coverage(&coverageResult{content: []metadata.RangeDimension{&rangeDimension{description: text("Temperature")}}})},
		{name: "format only", result: coverage(&coverageResult{format: format})},
		{name: "file only", result: coverage(&coverageResult{file: &dataFile{name: mustURL("https://example.org/sst.tif"), format: format}})},
		{name: "no content, format or file", result: coverage(&coverageResult{}), wantErr: ErrMandatory},
		{name: "no content, format or file when lenient", result: coverage(&coverageResult{}), lenient: true},
		{
			name:    "missing spatial representation type",
			result:  &coverageResult{representation: representation, format: format},
			wantErr: ErrMandatory,
		},
		{
			name:    "missing result spatial representation",
			result:  &coverageResult{typ: metadata.SpatialGrid, format: format},
			wantErr: ErrMandatory,
		},
		{
			name:    "format without specification",
			result:  coverage(&coverageResult{format: &dataFormat{}}),
			wantErr: ErrMandatory,
		},
		{
			name:    "file without format",
			result:  coverage(&coverageResult{file: &dataFile{name: mustURL("https://example.org/sst.tif")}}),
			wantErr: ErrMandatory,
		},
		{
			name:    "null range dimension",
			result:  coverage(&coverageResult{content: []metadata.RangeDimension{nil}}),
			wantErr: ErrConstraint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.RequireMandatoryAttributes = !tt.lenient
			err := NewContainer(cfg).Quality.ValidateCoverageResult(tt.result)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	t.Run("dispatch counts one capability", func(t *testing.T) {
		n, err := NewContainer(nil).Quality.DispatchResult(coverage(&coverageResult{format: format}))
		assert.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}
