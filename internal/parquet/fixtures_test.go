package parquet

import (
	"bytes"
	"fmt"
	"testing"

	pq "github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

type simpleRow struct {
	ID    int64   `parquet:"id"`
	Name  string  `parquet:"name,snappy"`
	Score float64 `parquet:"score"`
	TS    int64   `parquet:"ts"`
}

type metricRow struct {
	ID    int64   `parquet:"id"`
	Value float64 `parquet:"value"`
}

type emptyRow struct {
	ID   int64  `parquet:"id"`
	Name string `parquet:"name"`
}

type nestedRow struct {
	ID       int64 `parquet:"id"`
	Location struct {
		Lat float64 `parquet:"lat"`
		Lon float64 `parquet:"lon"`
	} `parquet:"location"`
}

type noteRow struct {
	ID   int64   `parquet:"id"`
	Note *string `parquet:"note,optional"`
}

// writeSimpleFile builds a single row group file with four columns, one of
// them snappy-compressed.
func writeSimpleFile(t *testing.T, rows int) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := pq.NewGenericWriter[simpleRow](&buf)
	batch := make([]simpleRow, rows)
	for i := range batch {
		batch[i] = simpleRow{
			ID:    int64(i),
			Name:  fmt.Sprintf("name-%d", i),
			Score: float64(i) * 1.5,
			TS:    1700000000000 + int64(i),
		}
	}
	_, err := w.Write(batch)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// writeMultiGroupFile builds an uncompressed file with total rows split into
// row groups of perGroup rows each.
func writeMultiGroupFile(t *testing.T, total, perGroup int) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := pq.NewGenericWriter[metricRow](&buf)
	for start := 0; start < total; start += perGroup {
		n := perGroup
		if start+n > total {
			n = total - start
		}
		batch := make([]metricRow, n)
		for i := range batch {
			batch[i] = metricRow{ID: int64(start + i), Value: float64(start+i) / 10}
		}
		_, err := w.Write(batch)
		require.NoError(t, err)
		require.NoError(t, w.Flush())
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// writeEmptyFile builds a file with a two column schema and no rows.
func writeEmptyFile(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := pq.NewGenericWriter[emptyRow](&buf)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// writeNestedFile builds a file with a nested location group.
func writeNestedFile(t *testing.T, rows int) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := pq.NewGenericWriter[nestedRow](&buf)
	batch := make([]nestedRow, rows)
	for i := range batch {
		batch[i].ID = int64(i)
		batch[i].Location.Lat = 47.0 + float64(i)/100
		batch[i].Location.Lon = 8.0 + float64(i)/100
	}
	_, err := w.Write(batch)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// writeTaggedFile builds a small file carrying application key/value pairs
// in the footer.
func writeTaggedFile(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := pq.NewGenericWriter[emptyRow](&buf, pq.KeyValueMetadata("origin", "unit-test"))
	_, err := w.Write([]emptyRow{{ID: 1, Name: "a"}})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// writeNullsFile builds a file whose optional note column is null for every
// odd row.
func writeNullsFile(t *testing.T, rows int) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := pq.NewGenericWriter[noteRow](&buf)
	batch := make([]noteRow, rows)
	for i := range batch {
		batch[i].ID = int64(i)
		if i%2 == 0 {
			note := fmt.Sprintf("note-%d", i)
			batch[i].Note = &note
		}
	}
	_, err := w.Write(batch)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}
