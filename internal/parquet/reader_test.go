package parquet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenLocalFile(t *testing.T) {
	data := writeSimpleFile(t, 5)
	path := filepath.Join(t.TempDir(), "simple.parquet")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	r, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, path, r.Name())
	assert.Equal(t, int64(len(data)), r.FileSize())
	assert.Equal(t, int64(5), r.NumRows())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.parquet"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestNewReaderRejectsInvalidContent(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"too short", []byte("PAR1")},
		{"text content", []byte("This is not a Parquet file, just plain text content.")},
		{"bad trailing magic", append([]byte("PAR1"), make([]byte, 20)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader("bad.parquet", tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotParquet)
			assert.Contains(t, err.Error(), "does not appear to be a Parquet file")
		})
	}
}

func TestNewReaderRejectsTruncatedFile(t *testing.T) {
	data := writeSimpleFile(t, 5)
	_, err := NewReader("cut.parquet", data[:len(data)-4])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not appear to be a Parquet file")
}

func TestReaderAnatomy(t *testing.T) {
	data := writeSimpleFile(t, 5)
	r, err := NewReader("simple.parquet", data)
	require.NoError(t, err)

	assert.Equal(t, int64(5), r.NumRows())
	assert.Equal(t, 1, r.NumRowGroups())
	assert.Equal(t, 4, r.NumColumns())
	assert.Equal(t, []string{"id", "name", "score", "ts"}, r.Columns())
	assert.Contains(t, r.CreatedBy(), "parquet-go")
	assert.GreaterOrEqual(t, r.FormatVersion(), int32(1))

	// The metadata block plus framing must fit inside the file.
	assert.Greater(t, r.MetadataSize(), int64(0))
	assert.Less(t, r.MetadataSize()+int64(MagicSize+FooterLengthSize), r.FileSize())
	assert.GreaterOrEqual(t, r.PageIndexSize(), int64(0))
}

func TestReaderRowGroups(t *testing.T) {
	data := writeMultiGroupFile(t, 10000, 2000)
	r, err := NewReader("multi.parquet", data)
	require.NoError(t, err)

	require.Equal(t, 5, r.NumRowGroups())
	assert.Equal(t, int64(10000), r.NumRows())

	for _, g := range r.RowGroups() {
		assert.Equal(t, int64(2000), g.NumRows())
		assert.Equal(t, 2, g.NumColumns())
		assert.False(t, g.Compressed())

		sizes := g.Sizes()
		assert.Greater(t, sizes.Compressed, int64(0))
		assert.Greater(t, sizes.Uncompressed, int64(0))
		assert.GreaterOrEqual(t, sizes.Uncompressed, sizes.Compressed)
		assert.Greater(t, g.TotalByteSize(), int64(0))
	}
}

func TestRowGroupCompressionFlag(t *testing.T) {
	data := writeSimpleFile(t, 5)
	r, err := NewReader("simple.parquet", data)
	require.NoError(t, err)

	g := r.RowGroup(0)
	assert.True(t, g.Compressed())

	byName := map[string]ColumnChunk{}
	for j := 0; j < g.NumColumns(); j++ {
		c := g.Column(j)
		byName[c.Name()] = c
	}
	assert.Equal(t, "SNAPPY", byName["name"].Compression())
	assert.Equal(t, "UNCOMPRESSED", byName["id"].Compression())
	assert.Equal(t, "INT64", byName["id"].PhysicalType())
	assert.Equal(t, "BYTE_ARRAY", byName["name"].PhysicalType())
	assert.Equal(t, "DOUBLE", byName["score"].PhysicalType())
	assert.Equal(t, int64(5), byName["id"].NumValues())
	assert.Greater(t, byName["id"].CompressedSize(), int64(0))
}

func TestEmptyFile(t *testing.T) {
	data := writeEmptyFile(t)
	r, err := NewReader("empty.parquet", data)
	require.NoError(t, err)

	assert.Equal(t, int64(0), r.NumRows())
	assert.Equal(t, 2, r.NumColumns())
	assert.Equal(t, []string{"id", "name"}, r.Columns())

	p, err := r.Preview(10)
	require.NoError(t, err)
	assert.Empty(t, p.Rows)
	assert.Equal(t, []string{"id", "name"}, p.Columns)
}

func TestSchemaFieldsNested(t *testing.T) {
	data := writeNestedFile(t, 3)
	r, err := NewReader("nested.parquet", data)
	require.NoError(t, err)

	fields := r.SchemaFields()
	byPath := map[string]SchemaField{}
	for _, f := range fields {
		byPath[f.Path] = f
	}

	require.Contains(t, byPath, "id")
	require.Contains(t, byPath, "location")
	require.Contains(t, byPath, "location.lat")
	require.Contains(t, byPath, "location.lon")

	assert.False(t, byPath["id"].Group)
	assert.Equal(t, 0, byPath["id"].Depth)
	assert.True(t, byPath["location"].Group)
	assert.Equal(t, "group", byPath["location"].Type)
	assert.Equal(t, 1, byPath["location.lat"].Depth)
	assert.Equal(t, "lat", byPath["location.lat"].Name)
	assert.Equal(t, "required", byPath["id"].Repetition)

	assert.Equal(t, []string{"id", "location.lat", "location.lon"}, r.Columns())
}

func TestSchemaText(t *testing.T) {
	data := writeSimpleFile(t, 2)
	r, err := NewReader("simple.parquet", data)
	require.NoError(t, err)

	text := r.SchemaText()
	assert.True(t, strings.HasPrefix(text, "message"))
	assert.Contains(t, text, "id")
	assert.Contains(t, text, "name")
}

func TestKeyValueMetadata(t *testing.T) {
	data := writeTaggedFile(t)
	r, err := NewReader("tagged.parquet", data)
	require.NoError(t, err)

	pairs := r.KeyValueMetadata()
	found := false
	for _, kv := range pairs {
		if kv.Key == "origin" && kv.Value == "unit-test" {
			found = true
		}
	}
	assert.True(t, found, "expected origin=unit-test pair, got %v", pairs)
}

func TestSummary(t *testing.T) {
	data := writeSimpleFile(t, 5)
	r, err := NewReader("simple.parquet", data)
	require.NoError(t, err)

	s := r.Summary()
	assert.Equal(t, "simple.parquet", s.File)
	assert.Equal(t, int64(len(data)), s.FileSize)
	assert.Equal(t, int64(5), s.NumRows)
	assert.Equal(t, 1, s.NumRowGroups)
	assert.Equal(t, 4, s.NumColumns)
	assert.Equal(t, r.MetadataSize(), s.MetadataSize)

	require.Len(t, s.RowGroups, 1)
	rg := s.RowGroups[0]
	assert.Equal(t, int64(5), rg.NumRows)
	assert.True(t, rg.Compressed)
	require.Len(t, rg.Columns, 4)
	assert.Equal(t, "id", rg.Columns[0].Name)
	assert.Equal(t, "INT64", rg.Columns[0].Type)
}
