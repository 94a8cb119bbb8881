package parquet

import (
	"strings"

	"github.com/parquet-go/parquet-go/format"
)

// Sizes holds the compressed and uncompressed byte totals of a row group.
type Sizes struct {
	Compressed   int64 `json:"compressed" yaml:"compressed"`
	Uncompressed int64 `json:"uncompressed" yaml:"uncompressed"`
}

// RowGroup wraps the footer metadata of a single row group.
type RowGroup struct {
	meta *format.RowGroup
}

// NumRows returns the number of rows in the row group.
func (g RowGroup) NumRows() int64 {
	return g.meta.NumRows
}

// NumColumns returns the number of column chunks in the row group.
func (g RowGroup) NumColumns() int {
	return len(g.meta.Columns)
}

// TotalByteSize returns the uncompressed data size recorded in the footer.
func (g RowGroup) TotalByteSize() int64 {
	return g.meta.TotalByteSize
}

// Column returns the chunk wrapper for column j.
func (g RowGroup) Column(j int) ColumnChunk {
	return ColumnChunk{meta: &g.meta.Columns[j].MetaData}
}

// Compressed reports whether any column chunk in the group uses a
// compression codec.
func (g RowGroup) Compressed() bool {
	for j := range g.meta.Columns {
		if g.meta.Columns[j].MetaData.Codec != format.Uncompressed {
			return true
		}
	}
	return false
}

// Sizes returns the compressed and uncompressed byte totals across all
// column chunks in the group.
func (g RowGroup) Sizes() Sizes {
	var s Sizes
	for j := range g.meta.Columns {
		s.Compressed += g.meta.Columns[j].MetaData.TotalCompressedSize
		s.Uncompressed += g.meta.Columns[j].MetaData.TotalUncompressedSize
	}
	return s
}

// ColumnChunk wraps the footer metadata of one column chunk.
type ColumnChunk struct {
	meta *format.ColumnMetaData
}

// Name returns the dotted column path within the schema.
func (c ColumnChunk) Name() string {
	return strings.Join(c.meta.PathInSchema, ".")
}

// PhysicalType returns the Parquet physical type name, e.g. "INT64".
func (c ColumnChunk) PhysicalType() string {
	return c.meta.Type.String()
}

// Compression returns the codec name, e.g. "SNAPPY" or "UNCOMPRESSED".
func (c ColumnChunk) Compression() string {
	return c.meta.Codec.String()
}

// CompressedSize returns the total compressed size of the chunk in bytes.
func (c ColumnChunk) CompressedSize() int64 {
	return c.meta.TotalCompressedSize
}

// UncompressedSize returns the total uncompressed size of the chunk in bytes.
func (c ColumnChunk) UncompressedSize() int64 {
	return c.meta.TotalUncompressedSize
}

// NumValues returns the number of values in the chunk, nulls included.
func (c ColumnChunk) NumValues() int64 {
	return c.meta.NumValues
}

// DataPageOffset returns the file offset of the first data page.
func (c ColumnChunk) DataPageOffset() int64 {
	return c.meta.DataPageOffset
}
