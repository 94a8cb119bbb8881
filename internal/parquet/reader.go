// Package parquet reads the physical anatomy of Parquet files: header and
// footer framing, row groups, column chunks, page indexes and the footer
// metadata block.
package parquet

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	pq "github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/format"
)

// ErrNotParquet reports content that fails the structural magic checks or
// footer decoding. Match with errors.Is.
var ErrNotParquet = errors.New("does not appear to be a Parquet file")

const (
	// Magic is the 4-byte marker at both ends of every Parquet file.
	Magic = "PAR1"
	// MagicSize is the length of the magic marker in bytes.
	MagicSize = 4
	// FooterLengthSize is the length of the little-endian footer length
	// field that sits between the metadata block and the trailing magic.
	FooterLengthSize = 4

	// A file needs the leading magic, the footer length field and the
	// trailing magic to be structurally valid.
	minFileSize = 2*MagicSize + FooterLengthSize
)

// Reader exposes the anatomy of a single Parquet file. The whole file is
// held in memory, which keeps one code path for local and remote sources and
// gives direct access to the raw trailer bytes.
type Reader struct {
	file *pq.File
	meta *format.FileMetaData
	name string
	data []byte
}

// Open reads a Parquet file from the local filesystem.
func Open(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewReader(path, data)
}

// NewReader parses an in-memory Parquet file. The name is used in error
// messages and display output; for remote sources pass the object URI.
func NewReader(name string, data []byte) (*Reader, error) {
	if len(data) < minFileSize ||
		string(data[:MagicSize]) != Magic ||
		string(data[len(data)-MagicSize:]) != Magic {
		return nil, fmt.Errorf("%s %w", name, ErrNotParquet)
	}

	f, err := pq.OpenFile(bytes.NewReader(data), int64(len(data)),
		pq.SkipPageIndex(true),
		pq.SkipBloomFilters(true),
	)
	if err != nil {
		return nil, fmt.Errorf("%s %w: %v", name, ErrNotParquet, err)
	}

	return &Reader{
		file: f,
		meta: f.Metadata(),
		name: name,
		data: data,
	}, nil
}

// Name returns the path or URI the file was opened from.
func (r *Reader) Name() string {
	return r.name
}

// FileSize returns the total file size in bytes.
func (r *Reader) FileSize() int64 {
	return int64(len(r.data))
}

// NumRows returns the total number of rows across all row groups.
func (r *Reader) NumRows() int64 {
	return r.meta.NumRows
}

// NumRowGroups returns the number of row groups in the file.
func (r *Reader) NumRowGroups() int {
	return len(r.meta.RowGroups)
}

// NumColumns returns the number of leaf columns in the schema.
func (r *Reader) NumColumns() int {
	return len(r.Columns())
}

// CreatedBy returns the writer identification string from the footer.
func (r *Reader) CreatedBy() string {
	return r.meta.CreatedBy
}

// FormatVersion returns the Parquet format version recorded in the footer.
func (r *Reader) FormatVersion() int32 {
	return r.meta.Version
}

// KeyValue is one application metadata pair from the footer.
type KeyValue struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// KeyValueMetadata returns the application key/value pairs from the footer.
func (r *Reader) KeyValueMetadata() []KeyValue {
	if len(r.meta.KeyValueMetadata) == 0 {
		return nil
	}
	pairs := make([]KeyValue, 0, len(r.meta.KeyValueMetadata))
	for _, kv := range r.meta.KeyValueMetadata {
		pairs = append(pairs, KeyValue{Key: kv.Key, Value: kv.Value})
	}
	return pairs
}

// MetadataSize returns the size in bytes of the serialized footer metadata,
// read from the 4-byte length field before the trailing magic.
func (r *Reader) MetadataSize() int64 {
	n := len(r.data)
	return int64(binary.LittleEndian.Uint32(r.data[n-MagicSize-FooterLengthSize : n-MagicSize]))
}

// PageIndexSize returns the combined size in bytes of the column and offset
// indexes. Page indexes are written between the last column chunk and the
// footer metadata, so the size is the gap between the two.
func (r *Reader) PageIndexSize() int64 {
	if len(r.meta.RowGroups) == 0 {
		return 0
	}

	last := &r.meta.RowGroups[len(r.meta.RowGroups)-1]
	col := &last.Columns[len(last.Columns)-1].MetaData
	start := col.DataPageOffset
	if col.DictionaryPageOffset > 0 && col.DictionaryPageOffset < start {
		start = col.DictionaryPageOffset
	}
	dataEnd := start + col.TotalCompressedSize

	footerStart := r.FileSize() - r.MetadataSize() - FooterLengthSize - MagicSize
	if size := footerStart - dataEnd; size > 0 {
		return size
	}
	return 0
}

// RowGroup returns the metadata wrapper for row group i.
func (r *Reader) RowGroup(i int) RowGroup {
	return RowGroup{meta: &r.meta.RowGroups[i]}
}

// RowGroups returns wrappers for every row group in file order.
func (r *Reader) RowGroups() []RowGroup {
	groups := make([]RowGroup, len(r.meta.RowGroups))
	for i := range r.meta.RowGroups {
		groups[i] = RowGroup{meta: &r.meta.RowGroups[i]}
	}
	return groups
}
