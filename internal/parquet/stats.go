package parquet

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/parquet-go/parquet-go/format"
)

// maxStatLen caps the rendered length of string min/max values.
const maxStatLen = 64

// ColumnStats aggregates the footer statistics of one column across all row
// groups. Min and Max are empty when no row group recorded bounds for the
// column. DistinctCount is only reported for single row group files since
// per-group counts cannot be combined.
type ColumnStats struct {
	Name          string `json:"name" yaml:"name"`
	PhysicalType  string `json:"type" yaml:"type"`
	NumValues     int64  `json:"num_values" yaml:"num_values"`
	NullCount     int64  `json:"null_count" yaml:"null_count"`
	DistinctCount int64  `json:"distinct_count,omitempty" yaml:"distinct_count,omitempty"`
	Min           string `json:"min,omitempty" yaml:"min,omitempty"`
	Max           string `json:"max,omitempty" yaml:"max,omitempty"`
}

// ColumnStats decodes and aggregates per-column statistics from the footer.
// The result is empty when the file has no row groups.
func (r *Reader) ColumnStats() []ColumnStats {
	if len(r.meta.RowGroups) == 0 {
		return nil
	}

	first := r.meta.RowGroups[0]
	stats := make([]ColumnStats, len(first.Columns))

	for j := range first.Columns {
		md := &first.Columns[j].MetaData
		cs := ColumnStats{
			Name:         ColumnChunk{meta: md}.Name(),
			PhysicalType: md.Type.String(),
		}

		var minV, maxV any
		for i := range r.meta.RowGroups {
			col := &r.meta.RowGroups[i].Columns[j].MetaData
			cs.NumValues += col.NumValues
			cs.NullCount += col.Statistics.NullCount

			rawMin, rawMax := statBounds(&col.Statistics)
			if v, ok := decodeStat(col.Type, rawMin); ok {
				if minV == nil || lessValue(col.Type, v, minV) {
					minV = v
				}
			}
			if v, ok := decodeStat(col.Type, rawMax); ok {
				if maxV == nil || lessValue(col.Type, maxV, v) {
					maxV = v
				}
			}
		}
		if len(r.meta.RowGroups) == 1 {
			cs.DistinctCount = first.Columns[j].MetaData.Statistics.DistinctCount
		}

		cs.Min = formatStat(minV)
		cs.Max = formatStat(maxV)
		stats[j] = cs
	}
	return stats
}

// statBounds picks the min/max byte encodings from a statistics block,
// preferring the modern MinValue/MaxValue fields over the deprecated ones.
func statBounds(s *format.Statistics) (rawMin, rawMax []byte) {
	rawMin, rawMax = s.MinValue, s.MaxValue
	if rawMin == nil {
		rawMin = s.Min
	}
	if rawMax == nil {
		rawMax = s.Max
	}
	return rawMin, rawMax
}

// decodeStat decodes a plain-encoded statistics value for the given physical
// type. Byte array types pass through as raw bytes.
func decodeStat(t format.Type, raw []byte) (any, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	switch t {
	case format.Boolean:
		return raw[0] != 0, true
	case format.Int32:
		if len(raw) < 4 {
			return nil, false
		}
		return int32(binary.LittleEndian.Uint32(raw)), true
	case format.Int64:
		if len(raw) < 8 {
			return nil, false
		}
		return int64(binary.LittleEndian.Uint64(raw)), true
	case format.Float:
		if len(raw) < 4 {
			return nil, false
		}
		return math.Float32frombits(binary.LittleEndian.Uint32(raw)), true
	case format.Double:
		if len(raw) < 8 {
			return nil, false
		}
		return math.Float64frombits(binary.LittleEndian.Uint64(raw)), true
	default:
		return append([]byte(nil), raw...), true
	}
}

func lessValue(t format.Type, a, b any) bool {
	switch t {
	case format.Boolean:
		return !a.(bool) && b.(bool)
	case format.Int32:
		return a.(int32) < b.(int32)
	case format.Int64:
		return a.(int64) < b.(int64)
	case format.Float:
		return a.(float32) < b.(float32)
	case format.Double:
		return a.(float64) < b.(float64)
	default:
		return bytes.Compare(a.([]byte), b.([]byte)) < 0
	}
}

func formatStat(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case []byte:
		if utf8.Valid(x) {
			return truncate(string(x), maxStatLen)
		}
		return hex.EncodeToString(x)
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
