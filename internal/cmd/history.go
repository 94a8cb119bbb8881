package cmd

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/datanomy/datanomy/internal/history"
	"github.com/datanomy/datanomy/internal/util"
)

var historyFormat string
var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent inspections",
	Long: `History lists the most recent inspections recorded in the local
history database, newest first.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	setupFormatFlag(historyCmd, &historyFormat)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of entries to list")
}

// HistoryResult is the output for the history command
type HistoryResult struct {
	Entries []history.Entry `json:"entries" yaml:"entries"`
}

func (r *HistoryResult) ToJSON() interface{} {
	return r
}

func (r *HistoryResult) ToText(w io.Writer) {
	if len(r.Entries) == 0 {
		fmt.Fprintln(w, "No inspections recorded yet")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"When", "File", "Source", "Size", "Rows", "Version"})

	for _, e := range r.Entries {
		t.AppendRow(table.Row{
			e.InspectedAt.Format("2006-01-02 15:04"),
			e.File,
			e.Source,
			util.FormatSize(e.FileSize),
			util.FormatCount(e.NumRows),
			e.AppVersion,
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func runHistory(cmd *cobra.Command, args []string) error {
	svc, err := history.NewService(settings.HistoryFile)
	if err != nil {
		return err
	}
	defer svc.Close()

	entries, err := svc.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	Output(&HistoryResult{Entries: entries}, historyFormat)
	return nil
}
