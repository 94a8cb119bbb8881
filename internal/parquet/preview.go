package parquet

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	pq "github.com/parquet-go/parquet-go"
)

// maxCellLen caps the rendered length of a single preview cell.
const maxCellLen = 80

// previewBatchSize is the number of rows decoded per ReadRows call.
const previewBatchSize = 64

// Preview holds the first rows of a file decoded into display strings.
type Preview struct {
	Columns   []string   `json:"columns" yaml:"columns"`
	Rows      [][]string `json:"rows" yaml:"rows"`
	TotalRows int64      `json:"total_rows" yaml:"total_rows"`
}

// Preview decodes up to limit rows from the start of the file. Values of
// repeated fields are joined into a single cell.
func (r *Reader) Preview(limit int) (*Preview, error) {
	p := &Preview{
		Columns:   r.Columns(),
		TotalRows: r.NumRows(),
	}
	if limit <= 0 || r.NumRows() == 0 {
		return p, nil
	}

	buf := make([]pq.Row, previewBatchSize)
	for _, rg := range r.file.RowGroups() {
		rows := rg.Rows()
		err := readGroupRows(rows, buf, limit, p)
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("reading rows from %s: %w", r.name, err)
		}
		if len(p.Rows) >= limit {
			break
		}
	}
	return p, nil
}

func readGroupRows(rows pq.Rows, buf []pq.Row, limit int, p *Preview) error {
	for len(p.Rows) < limit {
		n, err := rows.ReadRows(buf)
		for _, row := range buf[:n] {
			if len(p.Rows) >= limit {
				break
			}
			p.Rows = append(p.Rows, formatRow(row, len(p.Columns)))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
	}
	return nil
}

// formatRow flattens one row into a cell per leaf column. Repeated values
// for the same column are comma-joined.
func formatRow(row pq.Row, numColumns int) []string {
	cells := make([]string, numColumns)
	for _, v := range row {
		i := v.Column()
		if i < 0 || i >= numColumns {
			continue
		}
		s := formatValue(v)
		if cells[i] == "" {
			cells[i] = s
		} else {
			cells[i] += ", " + s
		}
	}
	return cells
}

func formatValue(v pq.Value) string {
	if v.IsNull() {
		return "NULL"
	}
	switch v.Kind() {
	case pq.Boolean:
		return strconv.FormatBool(v.Boolean())
	case pq.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case pq.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case pq.Float:
		return strconv.FormatFloat(float64(v.Float()), 'g', -1, 32)
	case pq.Double:
		return strconv.FormatFloat(v.Double(), 'g', -1, 64)
	case pq.ByteArray, pq.FixedLenByteArray:
		b := v.ByteArray()
		if utf8.Valid(b) {
			return truncate(string(b), maxCellLen)
		}
		return hex.EncodeToString(b)
	default:
		return v.String()
	}
}
