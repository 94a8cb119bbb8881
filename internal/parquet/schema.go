package parquet

import (
	"strings"

	pq "github.com/parquet-go/parquet-go"
)

// SchemaField describes one field of the logical schema. Nested fields are
// flattened in declaration order with Depth recording the nesting level.
type SchemaField struct {
	Name       string `json:"name" yaml:"name"`
	Path       string `json:"path" yaml:"path"`
	Type       string `json:"type" yaml:"type"`
	Repetition string `json:"repetition" yaml:"repetition"`
	Depth      int    `json:"-" yaml:"-"`
	Group      bool   `json:"-" yaml:"-"`
}

// SchemaFields returns the flattened logical schema.
func (r *Reader) SchemaFields() []SchemaField {
	var fields []SchemaField
	walkFields(r.file.Schema().Fields(), nil, 0, &fields)
	return fields
}

// Columns returns the dotted paths of all leaf columns in schema order.
func (r *Reader) Columns() []string {
	var paths []string
	for _, f := range r.SchemaFields() {
		if !f.Group {
			paths = append(paths, f.Path)
		}
	}
	return paths
}

// SchemaText returns the schema in Parquet message format.
func (r *Reader) SchemaText() string {
	return r.file.Schema().String()
}

func walkFields(fields []pq.Field, prefix []string, depth int, out *[]SchemaField) {
	for _, f := range fields {
		path := make([]string, 0, len(prefix)+1)
		path = append(path, prefix...)
		path = append(path, f.Name())

		sf := SchemaField{
			Name:       f.Name(),
			Path:       strings.Join(path, "."),
			Repetition: repetition(f),
			Depth:      depth,
		}
		if f.Leaf() {
			sf.Type = f.Type().String()
			*out = append(*out, sf)
			continue
		}
		sf.Type = "group"
		sf.Group = true
		*out = append(*out, sf)
		walkFields(f.Fields(), path, depth+1, out)
	}
}

func repetition(f pq.Field) string {
	switch {
	case f.Repeated():
		return "repeated"
	case f.Optional():
		return "optional"
	default:
		return "required"
	}
}
