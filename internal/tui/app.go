// internal/tui/app.go
//
// Interactive Parquet anatomy explorer built on bubbletea, which follows
// The Elm Architecture: App holds all state, Update reacts to key and
// resize messages, View renders the active tab into the terminal.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/datanomy/datanomy/internal/parquet"
	"github.com/datanomy/datanomy/internal/util"
)

// tab identifies one of the explorer views.
type tab int

const (
	tabStructure tab = iota
	tabSchema
	tabData
	tabMetadata
	tabStats
	tabCount
)

var tabTitles = [tabCount]string{"Structure", "Schema", "Data", "Metadata", "Stats"}

// Panel colors follow the anatomy scheme: header yellow, row groups green,
// page indexes magenta, footer blue, column names cyan.
var (
	colorYellow  = lipgloss.Color("3")
	colorGreen   = lipgloss.Color("2")
	colorBlue    = lipgloss.Color("4")
	colorMagenta = lipgloss.Color("5")
	colorCyan    = lipgloss.Color("6")
	colorDim     = lipgloss.Color("8")
)

// maxDataColWidth caps a single column of the data preview table.
const maxDataColWidth = 32

// App is the root bubbletea model. Each text tab owns a viewport so scroll
// positions survive tab switches; the Data tab owns a table instead.
type App struct {
	reader  *parquet.Reader
	preview *parquet.Preview

	active tab
	width  int
	height int
	ready  bool

	views   [tabCount]viewport.Model
	data    table.Model
	dataErr string
}

// NewApp builds the explorer model for an opened file. previewRows bounds
// how many rows the Data tab decodes.
func NewApp(reader *parquet.Reader, previewRows int) *App {
	a := &App{reader: reader}
	preview, err := reader.Preview(previewRows)
	if err != nil {
		a.dataErr = err.Error()
		a.data = table.New()
		return a
	}
	a.preview = preview
	a.data = buildDataTable(preview)
	return a
}

// Run opens the explorer in the alternate screen and blocks until the user
// quits.
func Run(reader *parquet.Reader, previewRows int) error {
	program := tea.NewProgram(NewApp(reader, previewRows), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Init is called once when the program starts. All content is rendered
// lazily on the first resize, so there is nothing to kick off.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "tab", "right", "l":
			a.active = (a.active + 1) % tabCount
			return a, nil
		case "shift+tab", "left", "h":
			a.active = (a.active + tabCount - 1) % tabCount
			return a, nil
		}
	}

	// Remaining keys scroll the active view.
	var cmd tea.Cmd
	if a.active == tabData {
		a.data, cmd = a.data.Update(msg)
	} else {
		a.views[a.active], cmd = a.views[a.active].Update(msg)
	}
	return a, cmd
}

// layout sizes every view for the current window and re-renders tab content.
func (a *App) layout() {
	w := max(20, a.width-4)
	h := max(5, a.height-7)
	for t := tab(0); t < tabCount; t++ {
		if t == tabData {
			continue
		}
		if !a.ready {
			a.views[t] = viewport.New(w, h)
		} else {
			a.views[t].Width = w
			a.views[t].Height = h
		}
		// Panels draw a 2 cell border, so content renders slightly narrower
		// than the viewport.
		a.views[t].SetContent(a.renderTab(t, w-2))
	}
	a.data.SetWidth(w)
	a.data.SetHeight(max(3, h-1))
	a.ready = true
}

func (a *App) renderTab(t tab, width int) string {
	switch t {
	case tabStructure:
		return renderStructure(a.reader, width)
	case tabSchema:
		return renderSchema(a.reader, width)
	case tabMetadata:
		return renderMetadata(a.reader, width)
	case tabStats:
		return renderStats(a.reader)
	}
	return ""
}

// View renders the current state to a string.
func (a *App) View() string {
	if !a.ready {
		return "Loading file anatomy..."
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorCyan).
		MarginBottom(1).
		Render("DATANOMY · " + a.reader.Name())

	var body string
	if a.active == tabData {
		body = a.renderDataTab()
	} else {
		body = a.views[a.active].View()
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorDim).
		Padding(0, 1).
		Render(body)

	hints := lipgloss.NewStyle().
		Foreground(colorDim).
		MarginTop(1).
		Render("tab/h/l → switch tabs    j/k → scroll    q → quit")

	return strings.Join([]string{title, a.renderTabBar(), box, hints}, "\n")
}

func (a *App) renderTabBar() string {
	items := make([]string, 0, int(tabCount))
	for t := tab(0); t < tabCount; t++ {
		style := lipgloss.NewStyle().Foreground(colorDim)
		if t == a.active {
			style = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
		}
		items = append(items, style.Render(tabTitles[t]))
	}
	return " " + strings.Join(items, "  ")
}

func (a *App) renderDataTab() string {
	if a.dataErr != "" {
		return lipgloss.NewStyle().Foreground(colorDim).Render("Data preview unavailable: " + a.dataErr)
	}
	if a.preview == nil || len(a.preview.Rows) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Render("No rows to display")
	}
	status := fmt.Sprintf("Showing %d of %s rows", len(a.preview.Rows), util.FormatCount(a.preview.TotalRows))
	return a.data.View() + "\n" + lipgloss.NewStyle().Foreground(colorDim).Render(status)
}

// buildDataTable turns a decoded preview into a scrollable table. Column
// widths follow the widest cell up to a cap.
func buildDataTable(p *parquet.Preview) table.Model {
	if p == nil || len(p.Columns) == 0 {
		return table.New()
	}

	cols := make([]table.Column, len(p.Columns))
	for i, name := range p.Columns {
		w := lipgloss.Width(name)
		for _, row := range p.Rows {
			if i >= len(row) {
				continue
			}
			if cw := lipgloss.Width(row[i]); cw > w {
				w = cw
			}
		}
		if w > maxDataColWidth {
			w = maxDataColWidth
		}
		if w < 4 {
			w = 4
		}
		cols[i] = table.Column{Title: name, Width: w}
	}

	rows := make([]table.Row, len(p.Rows))
	for i, r := range p.Rows {
		rows[i] = table.Row(r)
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorDim).
		BorderBottom(true).
		Bold(true).
		Foreground(colorCyan)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}
