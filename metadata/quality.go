package metadata

import (
	"net/url"
	"time"
)

// DataQuality is the quality information for the data specified by a scope.
type DataQuality interface {
	// QualityScope is the data to which the quality information applies. Mandatory.
	QualityScope() Scope
	Reports() []Element
	StandaloneQualityReport() Citation
}

// Element is a data quality measurement. Implementations may also implement
// PositionalAccuracy or other refinements.
type Element interface {
	MeasureIdentification() Identifier
	EvaluationMethodDescription() InternationalString
	// EvaluationDates are the date or range of dates of the evaluation.
	EvaluationDates() []time.Time
	Results() []Result
}

// PositionalAccuracy is the closeness of reported coordinates to true values.
type PositionalAccuracy interface {
	Element
	// PositionalAccuracyKind distinguishes absolute, relative and gridded accuracy.
	PositionalAccuracyKind() string
}

// Result is the value obtained from applying a data quality measure.
// Implementations may implement several of the result refinements.
type Result interface {
	ResultScope() Scope
	ResultDateTime() time.Time
}

// DescriptiveResult is a subjective quality result.
type DescriptiveResult interface {
	Result
	// Statement is the textual expression of the result. Mandatory.
	Statement() InternationalString
}

// ConformanceResult is the outcome of evaluating a value against a specification.
type ConformanceResult interface {
	Result
	// Specification cites the requirement the data is evaluated against. Mandatory.
	Specification() Citation
	Explanation() InternationalString
	// Pass reports whether the data conforms. Mandatory; nil is not false.
	Pass() *bool
}

// QuantitativeResult is the quantitative value of a data quality measure.
type QuantitativeResult interface {
	Result
	Values() []Record
	ValueUnit() string
}

// CoverageResult is a quality result expressed as a coverage.
type CoverageResult interface {
	Result
	SpatialRepresentationType() SpatialRepresentationType
	ResultSpatialRepresentation() SpatialRepresentation
	ResultContent() []RangeDimension
	ResultFormat() Format
	ResultFile() DataFile
}

// SpatialRepresentation describes the digital representation of a resource.
type SpatialRepresentation interface {
	RepresentationScope() Scope
}

// RangeDimension describes one attribute of a coverage range.
type RangeDimension interface {
	SequenceIdentifier() string
	DimensionDescription() InternationalString
}

// Format is the description of a computer language construct.
type Format interface {
	FormatSpecification() Citation
}

// DataFile is the description of a transfer data file.
type DataFile interface {
	DataFileName() *url.URL
	DataFileFormat() Format
}
