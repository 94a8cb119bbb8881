package parquet

// Summary is the serializable anatomy of a Parquet file.
type Summary struct {
	File          string            `json:"file" yaml:"file"`
	FileSize      int64             `json:"file_size" yaml:"file_size"`
	NumRows       int64             `json:"num_rows" yaml:"num_rows"`
	NumRowGroups  int               `json:"num_row_groups" yaml:"num_row_groups"`
	NumColumns    int               `json:"num_columns" yaml:"num_columns"`
	MetadataSize  int64             `json:"metadata_size" yaml:"metadata_size"`
	PageIndexSize int64             `json:"page_index_size" yaml:"page_index_size"`
	FormatVersion int32             `json:"format_version" yaml:"format_version"`
	CreatedBy     string            `json:"created_by,omitempty" yaml:"created_by,omitempty"`
	Schema        []SchemaField     `json:"schema" yaml:"schema"`
	RowGroups     []RowGroupSummary `json:"row_groups" yaml:"row_groups"`
	KeyValueMeta  []KeyValue        `json:"key_value_metadata,omitempty" yaml:"key_value_metadata,omitempty"`
}

// RowGroupSummary is the serializable anatomy of one row group.
type RowGroupSummary struct {
	Index      int             `json:"index" yaml:"index"`
	NumRows    int64           `json:"num_rows" yaml:"num_rows"`
	NumColumns int             `json:"num_columns" yaml:"num_columns"`
	Compressed bool            `json:"compressed" yaml:"compressed"`
	Sizes      Sizes           `json:"sizes" yaml:"sizes"`
	Columns    []ColumnSummary `json:"columns" yaml:"columns"`
}

// ColumnSummary is the serializable anatomy of one column chunk.
type ColumnSummary struct {
	Name             string `json:"name" yaml:"name"`
	Type             string `json:"type" yaml:"type"`
	Compression      string `json:"compression" yaml:"compression"`
	CompressedSize   int64  `json:"compressed_size" yaml:"compressed_size"`
	UncompressedSize int64  `json:"uncompressed_size" yaml:"uncompressed_size"`
	NumValues        int64  `json:"num_values" yaml:"num_values"`
}

// Summary collects the full anatomy into a serializable form.
func (r *Reader) Summary() *Summary {
	s := &Summary{
		File:          r.name,
		FileSize:      r.FileSize(),
		NumRows:       r.NumRows(),
		NumRowGroups:  r.NumRowGroups(),
		NumColumns:    r.NumColumns(),
		MetadataSize:  r.MetadataSize(),
		PageIndexSize: r.PageIndexSize(),
		FormatVersion: r.FormatVersion(),
		CreatedBy:     r.CreatedBy(),
		Schema:        r.SchemaFields(),
		KeyValueMeta:  r.KeyValueMetadata(),
	}

	s.RowGroups = make([]RowGroupSummary, r.NumRowGroups())
	for i := range s.RowGroups {
		g := r.RowGroup(i)
		rg := RowGroupSummary{
			Index:      i,
			NumRows:    g.NumRows(),
			NumColumns: g.NumColumns(),
			Compressed: g.Compressed(),
			Sizes:      g.Sizes(),
			Columns:    make([]ColumnSummary, g.NumColumns()),
		}
		for j := range rg.Columns {
			c := g.Column(j)
			rg.Columns[j] = ColumnSummary{
				Name:             c.Name(),
				Type:             c.PhysicalType(),
				Compression:      c.Compression(),
				CompressedSize:   c.CompressedSize(),
				UncompressedSize: c.UncompressedSize(),
				NumValues:        c.NumValues(),
			}
		}
		s.RowGroups[i] = rg
	}
	return s
}
