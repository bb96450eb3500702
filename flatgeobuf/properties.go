package flatgeobuf

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/paulmach/orb/geojson"
)

// Property columns written by Encode.
const (
	PropOrdinal   = "ordinal"            // Position of the element in the metadata record
	PropKind      = "kind"               // Capabilities, e.g. "box+polygon"
	PropInclusion = "inclusion"          // Inclusion flag, null when unknown
	PropCode      = "code"               // Geographic identifier code
	PropCodeSpace = "codeSpace"          // Geographic identifier code space
	PropWest      = "westBoundLongitude" // Bounding box limits, null when unknown
	PropEast      = "eastBoundLongitude"
	PropSouth     = "southBoundLatitude"
	PropNorth     = "northBoundLatitude"
	PropPolygons  = "polygons" // Bounding polygon count, null when not a polygon
)

// Positions of the properties in schema.
const (
	idxOrdinal = iota
	idxKind
	idxInclusion
	idxCode
	idxCodeSpace
	idxWest
	idxEast
	idxSouth
	idxNorth
	idxPolygons
)

type column struct {
	name  string
	typ   flattypes.ColumnType
	title string
}

var schema = []column{
	{PropOrdinal, flattypes.ColumnTypeLong, "Element position"},
	{PropKind, flattypes.ColumnTypeString, "Geographic extent kind"},
	{PropInclusion, flattypes.ColumnTypeBool, "Inclusion flag"},
	{PropCode, flattypes.ColumnTypeString, "Geographic identifier"},
	{PropCodeSpace, flattypes.ColumnTypeString, "Geographic identifier code space"},
	{PropWest, flattypes.ColumnTypeDouble, "West bound longitude"},
	{PropEast, flattypes.ColumnTypeDouble, "East bound longitude"},
	{PropSouth, flattypes.ColumnTypeDouble, "South bound latitude"},
	{PropNorth, flattypes.ColumnTypeDouble, "North bound latitude"},
	{PropPolygons, flattypes.ColumnTypeLong, "Bounding polygon count"},
}

// schemaColumns builds the header columns of schema.
func schemaColumns(builder *flatbuffers.Builder) []*writer.Column {
	columns := make([]*writer.Column, 0, len(schema))
	for _, c := range schema {
		col := writer.NewColumn(builder)
		col.SetName(c.name)
		col.SetTitle(c.title)
		col.SetType(c.typ)
		col.SetNullable(c.name != PropOrdinal && c.name != PropKind)
		columns = append(columns, col)
	}
	return columns
}

// encodeProperties encodes values, indexed like schema, as a FlatGeobuf
// property buffer: a uint16 column index followed by the value, for every
// non-null value.
func encodeProperties(values []any) ([]byte, error) {
	var buf []byte
	for i, v := range values {
		if v == nil {
			continue
		}
		buf = put(buf, 2, func(b []byte) { flatbuffers.WriteUint16(b, uint16(i)) })
		var err error
		if buf, err = appendValue(buf, schema[i].typ, v); err != nil {
			return nil, fmt.Errorf("column %s: %w", schema[i].name, err)
		}
	}
	return buf, nil
}

func appendValue(buf []byte, t flattypes.ColumnType, v any) ([]byte, error) {
	switch t {
	case flattypes.ColumnTypeBool:
		if b, ok := v.(bool); ok {
			return put(buf, 1, func(p []byte) { flatbuffers.WriteBool(p, b) }), nil
		}
	case flattypes.ColumnTypeLong:
		if n, ok := v.(int64); ok {
			return put(buf, 8, func(p []byte) { flatbuffers.WriteInt64(p, n) }), nil
		}
	case flattypes.ColumnTypeDouble:
		if f, ok := v.(float64); ok {
			return put(buf, 8, func(p []byte) { flatbuffers.WriteFloat64(p, f) }), nil
		}
	case flattypes.ColumnTypeString:
		if s, ok := v.(string); ok {
			buf = put(buf, 4, func(p []byte) { flatbuffers.WriteUint32(p, uint32(len(s))) })
			return append(buf, s...), nil
		}
	}
	return nil, fmt.Errorf("%w: %T for %s column", ErrInvalidData, v, flattypes.EnumNamesColumnType[t])
}

// put grows buf by n bytes filled by write.
func put(buf []byte, n int, write func([]byte)) []byte {
	buf = append(buf, make([]byte, n)...)
	write(buf[len(buf)-n:])
	return buf
}

// decodeProperties decodes a FlatGeobuf property buffer using the columns
// of header.
func decodeProperties(data []byte, header *flattypes.Header) (geojson.Properties, error) {
	props := make(geojson.Properties)
	for offset := 0; offset < len(data); {
		if offset+2 > len(data) {
			return nil, fmt.Errorf("%w: truncated column index", ErrInvalidData)
		}
		index := int(flatbuffers.GetUint16(data[offset:]))
		offset += 2

		var col flattypes.Column
		if index >= header.ColumnsLength() || !header.Columns(&col, index) {
			return nil, fmt.Errorf("%w: column %d out of range", ErrInvalidData, index)
		}
		value, n, err := readValue(data[offset:], col.Type())
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col.Name(), err)
		}
		offset += n
		props[string(col.Name())] = value
	}
	return props, nil
}

var fixedSize = map[flattypes.ColumnType]int{
	flattypes.ColumnTypeBool:   1,
	flattypes.ColumnTypeByte:   1,
	flattypes.ColumnTypeUByte:  1,
	flattypes.ColumnTypeShort:  2,
	flattypes.ColumnTypeUShort: 2,
	flattypes.ColumnTypeInt:    4,
	flattypes.ColumnTypeUInt:   4,
	flattypes.ColumnTypeLong:   8,
	flattypes.ColumnTypeULong:  8,
	flattypes.ColumnTypeFloat:  4,
	flattypes.ColumnTypeDouble: 8,
}

// readValue reads one value of type t and returns it with the number of
// bytes consumed.
func readValue(data []byte, t flattypes.ColumnType) (any, int, error) {
	if size, ok := fixedSize[t]; ok {
		if len(data) < size {
			return nil, 0, fmt.Errorf("%w: truncated %s value", ErrInvalidData, flattypes.EnumNamesColumnType[t])
		}
		return fixedValue(data, t), size, nil
	}

	if len(data) < 4 {
		return nil, 0, fmt.Errorf("%w: truncated length", ErrInvalidData)
	}
	length := int(flatbuffers.GetUint32(data))
	if length > len(data)-4 {
		return nil, 0, fmt.Errorf("%w: %d bytes announced, %d left", ErrInvalidData, length, len(data)-4)
	}
	raw := data[4 : 4+length]
	switch t {
	case flattypes.ColumnTypeString, flattypes.ColumnTypeDateTime:
		return string(raw), 4 + length, nil
	case flattypes.ColumnTypeJson:
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrInvalidData, err)
		}
		return v, 4 + length, nil
	case flattypes.ColumnTypeBinary:
		return append([]byte(nil), raw...), 4 + length, nil
	}
	return nil, 0, fmt.Errorf("%w: column type %d", ErrInvalidData, t)
}

func fixedValue(data []byte, t flattypes.ColumnType) any {
	switch t {
	case flattypes.ColumnTypeBool:
		return flatbuffers.GetBool(data)
	case flattypes.ColumnTypeByte:
		return flatbuffers.GetInt8(data)
	case flattypes.ColumnTypeUByte:
		return flatbuffers.GetUint8(data)
	case flattypes.ColumnTypeShort:
		return flatbuffers.GetInt16(data)
	case flattypes.ColumnTypeUShort:
		return flatbuffers.GetUint16(data)
	case flattypes.ColumnTypeInt:
		return flatbuffers.GetInt32(data)
	case flattypes.ColumnTypeUInt:
		return flatbuffers.GetUint32(data)
	case flattypes.ColumnTypeLong:
		return flatbuffers.GetInt64(data)
	case flattypes.ColumnTypeULong:
		return flatbuffers.GetUint64(data)
	case flattypes.ColumnTypeFloat:
		return flatbuffers.GetFloat32(data)
	default:
		return flatbuffers.GetFloat64(data)
	}
}

// nullable returns nil for NaN so the column is written as null.
func nullable(f float64) any {
	if math.IsNaN(f) {
		return nil
	}
	return f
}

// float reads a numeric property, NaN when absent.
func float(props geojson.Properties, name string) float64 {
	switch v := props[name].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	}
	return math.NaN()
}
