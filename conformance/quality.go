package conformance

import (
	"log/slog"
	"time"

	"github.com/opengeospatial/geoapi-conformance/metadata"
)

const qualityName = "quality"

// QualityValidator validates data quality reports, their elements and
// evaluation results.
type QualityValidator struct {
	c *Container
}

// Validate validates a data quality report. A nil report is valid.
func (v *QualityValidator) Validate(obj metadata.DataQuality) error {
	return v.dataQuality(v.c.newPass(), obj)
}

// DispatchElement validates a quality element against every capability it
// implements and returns how many matched. An element matching none is
// checked against the generic element rules.
func (v *QualityValidator) DispatchElement(obj metadata.Element) (int, error) {
	return v.dispatchElement(v.c.newPass(), obj)
}

// DispatchResult validates a result against every capability it implements
// (descriptive, conformance, quantitative, coverage) and returns how many
// matched. A result matching none is checked against the generic result rules.
func (v *QualityValidator) DispatchResult(obj metadata.Result) (int, error) {
	return v.dispatchResult(v.c.newPass(), obj)
}

// ValidateConformanceResult validates a conformance result. The pass flag is
// mandatory: a false flag is a valid result, an absent flag is not.
func (v *QualityValidator) ValidateConformanceResult(obj metadata.ConformanceResult) error {
	p := v.c.newPass()
	if !p.enter(obj) {
		return nil
	}
	return v.conformanceResult(p, obj)
}

// ValidateCoverageResult validates a coverage result.
func (v *QualityValidator) ValidateCoverageResult(obj metadata.CoverageResult) error {
	p := v.c.newPass()
	if !p.enter(obj) {
		return nil
	}
	return v.coverageResult(p, obj)
}

func (v *QualityValidator) dataQuality(p *pass, obj metadata.DataQuality) error {
	if !p.enter(obj) {
		return nil
	}
	scope := obj.QualityScope()
	if isNil(scope) {
		return p.missing(qualityName, "DataQuality: shall have a scope.")
	}
	if err := p.c.Maintenance.scope(p, scope); err != nil {
		return err
	}
	reports, err := collect[metadata.Element](p, "DataQuality: reports", obj.Reports())
	if err != nil {
		return err
	}
	if err := p.require(qualityName, len(reports), "DataQuality: shall have at least one report."); err != nil {
		return err
	}
	for _, e := range reports {
		if _, err := v.dispatchElement(p, e); err != nil {
			return err
		}
	}
	return p.c.Citation.citation(p, obj.StandaloneQualityReport())
}

func (v *QualityValidator) dispatchElement(p *pass, obj metadata.Element) (int, error) {
	if !p.enter(obj) {
		return 0, nil
	}
	n := 0
	if o, ok := obj.(metadata.PositionalAccuracy); ok {
		if err := v.positionalAccuracy(p, o); err != nil {
			return n, err
		}
		n++
	}
	if n == 0 {
		if err := v.element(p, obj); err != nil {
			return n, err
		}
	}
	p.c.logger.Debug("quality element dispatched", slog.Int("matches", n))
	return n, nil
}

// element checks the attributes shared by every kind of quality element.
func (v *QualityValidator) element(p *pass, obj metadata.Element) error {
	if id := obj.MeasureIdentification(); !isNil(id) {
		if err := p.c.Metadata.identifier(p, id); err != nil {
			return err
		}
	}
	if err := p.text(obj.EvaluationMethodDescription()); err != nil {
		return err
	}
	var previous time.Time
	for i, at := range obj.EvaluationDates() {
		if at.IsZero() {
			return p.violation(qualityName, "Element: evaluation date %d shall be set.", i)
		}
		if at.Before(previous) {
			return p.violation(qualityName, "Element: evaluation dates shall be in chronological order, %s is before %s.",
				at.Format(time.RFC3339), previous.Format(time.RFC3339))
		}
		previous = at
	}
	results, err := collect[metadata.Result](p, "Element: results", obj.Results())
	if err != nil {
		return err
	}
	if err := p.require(qualityName, len(results), "Element: shall have at least one result."); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := v.dispatchResult(p, r); err != nil {
			return err
		}
	}
	return nil
}

func (v *QualityValidator) positionalAccuracy(p *pass, obj metadata.PositionalAccuracy) error {
	if err := v.element(p, obj); err != nil {
		return err
	}
	if kind := obj.PositionalAccuracyKind(); kind != "" && blank(kind) {
		return p.violation(qualityName, "PositionalAccuracy: kind shall not be blank.")
	}
	return nil
}

func (v *QualityValidator) dispatchResult(p *pass, obj metadata.Result) (int, error) {
	if !p.enter(obj) {
		return 0, nil
	}
	n := 0
	if o, ok := obj.(metadata.DescriptiveResult); ok {
		if err := v.descriptiveResult(p, o); err != nil {
			return n, err
		}
		n++
	}
	if o, ok := obj.(metadata.ConformanceResult); ok {
		if err := v.conformanceResult(p, o); err != nil {
			return n, err
		}
		n++
	}
	if o, ok := obj.(metadata.QuantitativeResult); ok {
		if err := v.quantitativeResult(p, o); err != nil {
			return n, err
		}
		n++
	}
	if o, ok := obj.(metadata.CoverageResult); ok {
		if err := v.coverageResult(p, o); err != nil {
			return n, err
		}
		n++
	}
	if n == 0 {
		if err := v.result(p, obj); err != nil {
			return n, err
		}
	}
	p.c.logger.Debug("quality result dispatched", slog.Int("matches", n))
	return n, nil
}

// result checks the attributes shared by every kind of result.
func (v *QualityValidator) result(p *pass, obj metadata.Result) error {
	return p.c.Maintenance.scope(p, obj.ResultScope())
}

func (v *QualityValidator) descriptiveResult(p *pass, obj metadata.DescriptiveResult) error {
	if err := v.result(p, obj); err != nil {
		return err
	}
	return p.mandatoryText(qualityName, obj.Statement(), "DescriptiveResult: shall have a statement.")
}

func (v *QualityValidator) conformanceResult(p *pass, obj metadata.ConformanceResult) error {
	if err := v.result(p, obj); err != nil {
		return err
	}
	spec := obj.Specification()
	if isNil(spec) {
		return p.missing(qualityName, "ConformanceResult: shall have a specification.")
	}
	if err := p.c.Citation.citation(p, spec); err != nil {
		return err
	}
	if err := p.text(obj.Explanation()); err != nil {
		return err
	}
	if obj.Pass() == nil {
		return p.missing(qualityName, "ConformanceResult: shall have a Boolean.")
	}
	return nil
}

func (v *QualityValidator) quantitativeResult(p *pass, obj metadata.QuantitativeResult) error {
	if err := v.result(p, obj); err != nil {
		return err
	}
	values, err := collect[metadata.Record](p, "QuantitativeResult: values", obj.Values())
	if err != nil {
		return err
	}
	return p.require(qualityName, len(values), "QuantitativeResult: shall have at least one value.")
}

func (v *QualityValidator) coverageResult(p *pass, obj metadata.CoverageResult) error {
	if err := v.result(p, obj); err != nil {
		return err
	}
	if obj.SpatialRepresentationType() == 0 {
		return p.missing(qualityName, "CoverageResult: shall have a spatial representation type.")
	}
	representation := obj.ResultSpatialRepresentation()
	if isNil(representation) {
		return p.missing(qualityName, "CoverageResult: shall have a result spatial representation.")
	}
	if err := v.spatialRepresentation(p, representation); err != nil {
		return err
	}
	content, err := collect[metadata.RangeDimension](p, "CoverageResult: result content", obj.ResultContent())
	if err != nil {
		return err
	}
	for _, d := range content {
		if err := v.rangeDimension(p, d); err != nil {
			return err
		}
	}
	format, file := obj.ResultFormat(), obj.ResultFile()
	if isNil(format) && isNil(file) {
		if err := p.require(qualityName, len(content),
			"CoverageResult: shall have a result content, format or file."); err != nil {
			return err
		}
	}
	if err := v.format(p, format); err != nil {
		return err
	}
	return v.dataFile(p, file)
}

func (v *QualityValidator) spatialRepresentation(p *pass, obj metadata.SpatialRepresentation) error {
	if !p.enter(obj) {
		return nil
	}
	return p.c.Maintenance.scope(p, obj.RepresentationScope())
}

func (v *QualityValidator) rangeDimension(p *pass, obj metadata.RangeDimension) error {
	if !p.enter(obj) {
		return nil
	}
	return p.text(obj.DimensionDescription())
}

func (v *QualityValidator) format(p *pass, obj metadata.Format) error {
	if !p.enter(obj) {
		return nil
	}
	spec := obj.FormatSpecification()
	if isNil(spec) {
		return p.missing(qualityName, "Format: shall have a format specification citation.")
	}
	return p.c.Citation.citation(p, spec)
}

func (v *QualityValidator) dataFile(p *pass, obj metadata.DataFile) error {
	if !p.enter(obj) {
		return nil
	}
	if obj.DataFileName() == nil {
		return p.missing(qualityName, "DataFile: shall have a file name.")
	}
	format := obj.DataFileFormat()
	if isNil(format) {
		return p.missing(qualityName, "DataFile: shall have a file format.")
	}
	return v.format(p, format)
}
