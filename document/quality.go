package document

import (
	"errors"
	"net/url"
	"time"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

// ErrMixedResult is returned for a result carrying the properties of more
// than one result kind.
var ErrMixedResult = errors.New("document: result mixes properties of several result kinds")

// DataQuality is a decoded data quality report.
type DataQuality struct {
	Scope      *Scope     `json:"scope"`
	Report     []*Element `json:"report,omitempty"`
	Standalone *Citation  `json:"standaloneQualityReport,omitempty"`
}

func (q *DataQuality) QualityScope() metadata.Scope { return view[metadata.Scope](q.Scope) }

func (q *DataQuality) Reports() []metadata.Element {
	if q.Report == nil {
		return nil
	}
	out := make([]metadata.Element, len(q.Report))
	for i, e := range q.Report {
		if e != nil {
			out[i] = e.view
		}
	}
	return out
}

func (q *DataQuality) StandaloneQualityReport() metadata.Citation {
	return view[metadata.Citation](q.Standalone)
}

// Element is a decoded quality element. A positional accuracy kind makes it
// a PositionalAccuracy.
type Element struct {
	element
	view metadata.Element
}

type element struct {
	MeasureIdentification       *Identifier `json:"measureIdentification,omitempty"`
	EvaluationMethodDescription *Text       `json:"evaluationMethodDescription,omitempty"`
	DateTime                    []*Date     `json:"dateTime,omitempty"`
	Result                      []*Result   `json:"result,omitempty"`
	PositionalAccuracy          string      `json:"positionalAccuracy,omitempty"`
}

// UnmarshalJSON decodes the element and selects its capabilities.
func (e *Element) UnmarshalJSON(b []byte) error {
	if err := strict(b, &e.element); err != nil {
		return err
	}
	if e.element.PositionalAccuracy != "" {
		e.view = &positionalAccuracyView{elementView{&e.element}}
	} else {
		e.view = &elementView{&e.element}
	}
	return nil
}

type elementView struct{ e *element }

func (v *elementView) MeasureIdentification() metadata.Identifier {
	return view[metadata.Identifier](v.e.MeasureIdentification)
}

func (v *elementView) EvaluationMethodDescription() metadata.InternationalString {
	return text(v.e.EvaluationMethodDescription)
}

func (v *elementView) EvaluationDates() []time.Time {
	if v.e.DateTime == nil {
		return nil
	}
	out := make([]time.Time, len(v.e.DateTime))
	for i, d := range v.e.DateTime {
		out[i] = d.value()
	}
	return out
}

func (v *elementView) Results() []metadata.Result {
	if v.e.Result == nil {
		return nil
	}
	out := make([]metadata.Result, len(v.e.Result))
	for i, r := range v.e.Result {
		if r != nil {
			out[i] = r.view
		}
	}
	return out
}

type positionalAccuracyView struct{ elementView }

func (v *positionalAccuracyView) PositionalAccuracyKind() string { return v.e.PositionalAccuracy }

// Result is a decoded evaluation result. Its kind is recognised from its
// properties: a statement makes a DescriptiveResult, a specification or pass
// flag a ConformanceResult, values a QuantitativeResult and a spatial
// representation a CoverageResult. A result without any of them only carries
// the common properties.
type Result struct {
	result
	view metadata.Result
}

type result struct {
	ResultScope *Scope `json:"resultScope,omitempty"`
	DateTime    *Date  `json:"dateTime,omitempty"`

	Statement *Text `json:"statement,omitempty"`

	Specification *Citation `json:"specification,omitempty"`
	Explanation   *Text     `json:"explanation,omitempty"`
	Pass          *bool     `json:"pass,omitempty"`

	Value     []map[string]any `json:"value,omitempty"`
	ValueUnit string           `json:"valueUnit,omitempty"`

	SpatialRepresentationType   metadata.SpatialRepresentationType `json:"spatialRepresentationType,omitempty"`
	ResultSpatialRepresentation *SpatialRepresentation             `json:"resultSpatialRepresentation,omitempty"`
	ResultContent               []*RangeDimension                  `json:"resultContent,omitempty"`
	ResultFormat                *DataFormat                        `json:"resultFormat,omitempty"`
	ResultFile                  *DataFile                          `json:"resultFile,omitempty"`
}

// UnmarshalJSON decodes the result and selects its kind.
func (r *Result) UnmarshalJSON(b []byte) error {
	if err := strict(b, &r.result); err != nil {
		return err
	}
	d := &r.result
	base := resultView{d}
	var kinds []metadata.Result
	if d.Statement != nil {
		kinds = append(kinds, &descriptiveView{base})
	}
	if d.Specification != nil || d.Explanation != nil || d.Pass != nil {
		kinds = append(kinds, &conformanceView{base})
	}
	if d.Value != nil || d.ValueUnit != "" {
		kinds = append(kinds, &quantitativeView{base})
	}
	if d.SpatialRepresentationType != 0 || d.ResultSpatialRepresentation != nil ||
		d.ResultContent != nil || d.ResultFormat != nil || d.ResultFile != nil {
		kinds = append(kinds, &coverageView{base})
	}
	switch len(kinds) {
	case 0:
		r.view = &base
	case 1:
		r.view = kinds[0]
	default:
		return ErrMixedResult
	}
	return nil
}

type resultView struct{ r *result }

func (v *resultView) ResultScope() metadata.Scope { return view[metadata.Scope](v.r.ResultScope) }
func (v *resultView) ResultDateTime() time.Time   { return v.r.DateTime.value() }

type descriptiveView struct{ resultView }

func (v *descriptiveView) Statement() metadata.InternationalString { return text(v.r.Statement) }

type conformanceView struct{ resultView }

func (v *conformanceView) Specification() metadata.Citation {
	return view[metadata.Citation](v.r.Specification)
}

func (v *conformanceView) Explanation() metadata.InternationalString { return text(v.r.Explanation) }
func (v *conformanceView) Pass() *bool                                 { return v.r.Pass }

type quantitativeView struct{ resultView }

func (v *quantitativeView) Values() []metadata.Record {
	if v.r.Value == nil {
		return nil
	}
	out := make([]metadata.Record, len(v.r.Value))
	for i, m := range v.r.Value {
		if m != nil {
			out[i] = record(m)
		}
	}
	return out
}

func (v *quantitativeView) ValueUnit() string { return v.r.ValueUnit }

type coverageView struct{ resultView }

func (v *coverageView) SpatialRepresentationType() metadata.SpatialRepresentationType {
	return v.r.SpatialRepresentationType
}

func (v *coverageView) ResultSpatialRepresentation() metadata.SpatialRepresentation {
	return view[metadata.SpatialRepresentation](v.r.ResultSpatialRepresentation)
}

func (v *coverageView) ResultContent() []metadata.RangeDimension {
	return views[metadata.RangeDimension](v.r.ResultContent)
}

func (v *coverageView) ResultFormat() metadata.Format { return view[metadata.Format](v.r.ResultFormat) }
func (v *coverageView) ResultFile() metadata.DataFile { return view[metadata.DataFile](v.r.ResultFile) }

type record map[string]any

func (r record) Fields() map[string]any { return r }

// SpatialRepresentation is a decoded spatial representation.
type SpatialRepresentation struct {
	Scope *Scope `json:"scope,omitempty"`
}

func (s *SpatialRepresentation) RepresentationScope() metadata.Scope {
	return view[metadata.Scope](s.Scope)
}

// RangeDimension is a decoded range dimension.
type RangeDimension struct {
	Sequence    string `json:"sequenceIdentifier,omitempty"`
	Description *Text  `json:"description,omitempty"`
}

func (d *RangeDimension) SequenceIdentifier() string { return d.Sequence }

func (d *RangeDimension) DimensionDescription() metadata.InternationalString {
	return text(d.Description)
}

// DataFormat is a decoded format description.
type DataFormat struct {
	Specification *Citation `json:"formatSpecificationCitation"`
}

func (f *DataFormat) FormatSpecification() metadata.Citation {
	return view[metadata.Citation](f.Specification)
}

// DataFile is a decoded data file reference.
type DataFile struct {
	Name   *URL        `json:"fileName"`
	Format *DataFormat `json:"fileFormat"`
}

func (f *DataFile) DataFileName() *url.URL          { return f.Name.value() }
func (f *DataFile) DataFileFormat() metadata.Format { return view[metadata.Format](f.Format) }
