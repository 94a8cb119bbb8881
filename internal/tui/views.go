// internal/tui/views.go
//
// Per-tab renderers. Each returns a plain string sized for its viewport;
// the structure view mirrors the physical file layout from header magic to
// footer magic.

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/datanomy/datanomy/internal/parquet"
	"github.com/datanomy/datanomy/internal/util"
)

// maxStructureColumns caps the column chunk grid of one row group.
const maxStructureColumns = 20

// columnsPerRow is the width of the column chunk grid.
const columnsPerRow = 3

// maxMetadataValueLen caps rendered key/value metadata values. Writers like
// pandas store whole schema documents here.
const maxMetadataValueLen = 200

// panel renders a titled, bordered box in the given color.
func panel(title, body string, color lipgloss.Color, width int) string {
	head := lipgloss.NewStyle().Bold(true).Foreground(color).Render(title)
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(head + "\n" + body)
}

func renderStructure(r *parquet.Reader, width int) string {
	bold := lipgloss.NewStyle().Bold(true)
	yellow := lipgloss.NewStyle().Foreground(colorYellow)

	info := bold.Render("File: ") + r.Name() + "\n" +
		bold.Render("Size: ") + util.FormatSize(r.FileSize())

	header := panel("Header",
		yellow.Render("Magic Number: PAR1")+"\nSize: 4 bytes",
		colorYellow, width)

	sections := []string{info, header}
	for i := 0; i < r.NumRowGroups(); i++ {
		sections = append(sections, renderRowGroup(r.RowGroup(i), i, width))
	}

	if size := r.PageIndexSize(); size > 0 {
		sections = append(sections,
			panel("Column Index",
				"Per-page statistics for filtering\nCombined size: "+util.FormatSize(size),
				colorMagenta, width),
			panel("Offset Index",
				"Page locations for random access\n(included in combined size above)",
				colorMagenta, width))
	}

	footer := fmt.Sprintf("Total Rows: %s\nRow Groups: %d\nMetadata: %s\nFooter Size Field: 4 bytes\n%s (4 bytes)",
		util.FormatCount(r.NumRows()),
		r.NumRowGroups(),
		util.FormatSize(r.MetadataSize()),
		yellow.Render("Magic Number: PAR1"))
	sections = append(sections, panel("Footer", footer, colorBlue, width))

	return strings.Join(sections, "\n")
}

func renderRowGroup(rg parquet.RowGroup, index, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rows: %s\n", util.FormatCount(rg.NumRows()))
	fmt.Fprintf(&b, "Size: %s\n", util.FormatSize(rg.TotalByteSize()))
	fmt.Fprintf(&b, "Columns: %d\n", rg.NumColumns())

	shown := rg.NumColumns()
	if shown > maxStructureColumns {
		shown = maxStructureColumns
	}
	innerWidth := 0
	if width > 8 {
		innerWidth = (width - 8) / columnsPerRow
	}

	dim := lipgloss.NewStyle().Foreground(colorDim)
	var grid []string
	for start := 0; start < shown; start += columnsPerRow {
		end := start + columnsPerRow
		if end > shown {
			end = shown
		}
		row := make([]string, 0, columnsPerRow)
		for j := start; j < end; j++ {
			col := rg.Column(j)
			body := dim.Render(fmt.Sprintf("Size: %s\nType: %s",
				util.FormatSize(col.CompressedSize()), col.PhysicalType()))
			row = append(row, columnPanel(col.Name(), body, innerWidth))
		}
		grid = append(grid, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	if rg.NumColumns() > maxStructureColumns {
		grid = append(grid, dim.Italic(true).
			Render(fmt.Sprintf("... and %d more columns", rg.NumColumns()-maxStructureColumns)))
	}

	body := b.String()
	if len(grid) > 0 {
		body += "\n" + strings.Join(grid, "\n")
	}
	return panel(fmt.Sprintf("Row Group %d", index), body, colorGreen, width)
}

// columnPanel renders one column chunk cell of the structure grid.
func columnPanel(name, body string, width int) string {
	head := lipgloss.NewStyle().Foreground(colorCyan).Render(name)
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorDim).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(head + "\n" + body)
}

func renderSchema(r *parquet.Reader, width int) string {
	fields := r.SchemaFields()
	green := lipgloss.NewStyle().Foreground(colorGreen)
	lines := make([]string, 0, len(fields))
	for i, f := range fields {
		indent := strings.Repeat("  ", f.Depth)
		lines = append(lines, fmt.Sprintf("%3d. %s%s: %s", i+1, indent, green.Render(f.Name), f.Type))
	}

	// Viewports do not expand tab stops, so the raw message schema is
	// re-indented with spaces.
	schemaText := strings.ReplaceAll(r.SchemaText(), "\t", "    ")

	return panel("Fields", strings.Join(lines, "\n"), colorCyan, width) + "\n" +
		panel("Parquet Schema", schemaText, colorYellow, width)
}

func renderMetadata(r *parquet.Reader, width int) string {
	bold := lipgloss.NewStyle().Bold(true)

	createdBy := r.CreatedBy()
	if createdBy == "" {
		createdBy = "(not recorded)"
	}
	var b strings.Builder
	b.WriteString(bold.Render("Created By: ") + createdBy + "\n")
	b.WriteString(bold.Render("Format Version: ") + strconv.Itoa(int(r.FormatVersion())) + "\n")
	b.WriteString(bold.Render("Total Rows: ") + util.FormatCount(r.NumRows()) + "\n")
	b.WriteString(bold.Render("Row Groups: ") + strconv.Itoa(r.NumRowGroups()) + "\n")
	b.WriteString(bold.Render("Columns: ") + strconv.Itoa(r.NumColumns()) + "\n")
	b.WriteString(bold.Render("Metadata Size: ") + util.FormatSize(r.MetadataSize()))
	filePanel := panel("File Metadata", b.String(), colorCyan, width)

	kvs := r.KeyValueMetadata()
	var kvBody string
	if len(kvs) == 0 {
		kvBody = lipgloss.NewStyle().Foreground(colorDim).Render("No key/value metadata")
	} else {
		green := lipgloss.NewStyle().Foreground(colorGreen)
		pairs := make([]string, 0, len(kvs))
		for _, kv := range kvs {
			value := kv.Value
			if len(value) > maxMetadataValueLen {
				value = value[:maxMetadataValueLen] + "..."
			}
			pairs = append(pairs, green.Render(kv.Key)+" = "+value)
		}
		kvBody = strings.Join(pairs, "\n")
	}

	return filePanel + "\n" + panel("Key/Value Metadata", kvBody, colorYellow, width)
}

func renderStats(r *parquet.Reader) string {
	stats := r.ColumnStats()
	if len(stats) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Render("No column statistics available")
	}

	headers := []string{"Column", "Type", "Values", "Nulls", "Min", "Max"}
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Name,
			s.PhysicalType,
			util.FormatCount(s.NumValues),
			util.FormatCount(s.NullCount),
			orDash(s.Min),
			orDash(s.Max),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	bold := lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	for i, h := range headers {
		b.WriteString(bold.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	for _, row := range rows {
		b.WriteString("\n")
		for i, cell := range row {
			b.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
