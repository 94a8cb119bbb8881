package cmd

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/datanomy/datanomy/internal/parquet"
	"github.com/datanomy/datanomy/internal/util"
)

var inspectFormat string
var inspectOutput string

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Print the anatomy of a Parquet file without the interactive UI",
	Long: `Inspect reads a Parquet file from a local path or an S3 URI and prints
its anatomy: file summary, schema, row group layout and column statistics.

The default text format is meant for humans; json and yaml carry the same
report for scripts and pipelines.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	setupOutputFlags(inspectCmd, &inspectFormat, &inspectOutput)
}

// InspectReport is the output for the inspect command
type InspectReport struct {
	Summary *parquet.Summary      `json:"summary" yaml:"summary"`
	Stats   []parquet.ColumnStats `json:"column_stats,omitempty" yaml:"column_stats,omitempty"`
}

func (r *InspectReport) ToJSON() interface{} {
	return r
}

func (r *InspectReport) ToText(w io.Writer) {
	s := r.Summary

	fmt.Fprintln(w, text.FgCyan.Sprint("File"))
	fmt.Fprintf(w, "  Name:            %s\n", s.File)
	fmt.Fprintf(w, "  Size:            %s\n", util.FormatSize(s.FileSize))
	fmt.Fprintf(w, "  Rows:            %s\n", util.FormatCount(s.NumRows))
	fmt.Fprintf(w, "  Row Groups:      %d\n", s.NumRowGroups)
	fmt.Fprintf(w, "  Columns:         %d\n", s.NumColumns)
	fmt.Fprintf(w, "  Metadata:        %s\n", util.FormatSize(s.MetadataSize))
	if s.PageIndexSize > 0 {
		fmt.Fprintf(w, "  Page Index:      %s\n", util.FormatSize(s.PageIndexSize))
	}
	fmt.Fprintf(w, "  Format Version:  %d\n", s.FormatVersion)
	if s.CreatedBy != "" {
		fmt.Fprintf(w, "  Created By:      %s\n", s.CreatedBy)
	}

	fmt.Fprintln(w, "\n"+text.FgCyan.Sprint("Schema"))
	writeSchemaTable(w, s.Schema)

	for _, g := range s.RowGroups {
		heading := fmt.Sprintf("Row Group %d  (%s rows, %s)", g.Index,
			util.FormatCount(g.NumRows), util.FormatSize(g.Sizes.Compressed))
		fmt.Fprintln(w, "\n"+text.FgGreen.Sprint(heading))
		writeRowGroupTable(w, g)
	}

	if len(r.Stats) > 0 {
		fmt.Fprintln(w, "\n"+text.FgMagenta.Sprint("Column Statistics"))
		writeStatsTable(w, r.Stats)
	}
}

func writeSchemaTable(w io.Writer, fields []parquet.SchemaField) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Field", "Type", "Repetition"})

	for i, f := range fields {
		t.AppendRow(table.Row{i + 1, f.Path, f.Type, f.Repetition})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func writeRowGroupTable(w io.Writer, g parquet.RowGroupSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Column", "Type", "Compression", "Compressed", "Uncompressed", "Values"})

	for _, c := range g.Columns {
		t.AppendRow(table.Row{
			c.Name,
			c.Type,
			c.Compression,
			util.FormatSize(c.CompressedSize),
			util.FormatSize(c.UncompressedSize),
			util.FormatCount(c.NumValues),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func writeStatsTable(w io.Writer, stats []parquet.ColumnStats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Column", "Type", "Values", "Nulls", "Min", "Max"})

	for _, cs := range stats {
		t.AppendRow(table.Row{
			cs.Name,
			cs.PhysicalType,
			util.FormatCount(cs.NumValues),
			util.FormatCount(cs.NullCount),
			orDash(cs.Min),
			orDash(cs.Max),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func runInspect(cmd *cobra.Command, args []string) error {
	logger := settings.ConfigureLogger()

	reader, source, err := openSource(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	recordInspection(cmd.Context(), reader, source, logger)

	report := &InspectReport{
		Summary: reader.Summary(),
		Stats:   reader.ColumnStats(),
	}
	OutputToFile(report, inspectFormat, inspectOutput)
	return nil
}
