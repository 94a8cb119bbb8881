package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/datanomy/datanomy/internal/config"
	"github.com/datanomy/datanomy/internal/tui"
	"github.com/datanomy/datanomy/internal/version"
)

var settings *config.Settings

// sourceFlags carries the S3 and history options shared by the root command
// and inspect.
type sourceFlags struct {
	AccessKeyID     string
	SecretAccessKey string
	EndpointURL     string
	Region          string
	Profile         string
	NoHistory       bool
}

var srcFlags sourceFlags

var rootCmd = &cobra.Command{
	Use:   "datanomy [file]",
	Short: "Explore the anatomy of Parquet files",
	Long: `Datanomy opens a Parquet file and presents its anatomy in a tabbed
terminal UI: physical structure, schema, data preview, footer metadata
and column statistics.

The file is either a local path or an S3 URI (s3://bucket/file.parquet).
For S3, credentials come from the flags below, a storage profile in
~/.config/datanomy/config.yaml, or ambient AWS configuration.`,
	Version:       version.Version,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runExplore,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Initialize settings with defaults and environment variables
	settings = config.LoadSettings()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&srcFlags.AccessKeyID, "access-key-id", "", "AWS access key ID for S3")
	flags.StringVar(&srcFlags.SecretAccessKey, "secret-access-key", "", "AWS secret access key for S3")
	flags.StringVar(&srcFlags.EndpointURL, "endpoint-url", "", "S3 endpoint URL for S3-compatible storage")
	flags.StringVar(&srcFlags.Region, "region", "", "AWS region for S3")
	flags.StringVar(&srcFlags.Profile, "profile", "", "Storage profile from the config file")
	flags.BoolVar(&srcFlags.NoHistory, "no-history", settings.NoHistory, "Do not record the inspection in history")
}

func runExplore(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	logger := settings.ConfigureLogger()

	// The TUI needs the terminal to itself.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("stdout is not a terminal; use `datanomy inspect %s` for non-interactive output", args[0])
	}

	reader, source, err := openSource(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	recordInspection(cmd.Context(), reader, source, logger)

	return tui.Run(reader, settings.PreviewRows)
}
