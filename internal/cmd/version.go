package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/datanomy/datanomy/internal/version"
)

var versionFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	setupFormatFlag(versionCmd, &versionFormat)
}

// VersionResult is the output for the version command
type VersionResult struct {
	Info version.Info `json:"version" yaml:"version"`
}

func (r *VersionResult) ToJSON() interface{} {
	return r.Info
}

func (r *VersionResult) ToText(w io.Writer) {
	fmt.Fprintln(w, r.Info.String())
}

func runVersion(cmd *cobra.Command, args []string) error {
	Output(&VersionResult{Info: version.Get()}, versionFormat)
	return nil
}
