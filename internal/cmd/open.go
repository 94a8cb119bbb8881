package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/datanomy/datanomy/internal/config"
	"github.com/datanomy/datanomy/internal/history"
	"github.com/datanomy/datanomy/internal/parquet"
	"github.com/datanomy/datanomy/internal/progress"
	"github.com/datanomy/datanomy/internal/s3"
	"github.com/datanomy/datanomy/internal/version"
)

// openSource opens a local path or an S3 URI and reports which kind of
// source it was for the history record.
func openSource(ctx context.Context, path string) (*parquet.Reader, string, error) {
	if s3.IsURI(path) {
		reader, err := openS3(ctx, path)
		return reader, history.SourceS3, err
	}
	reader, err := parquet.Open(path)
	return reader, history.SourceLocal, err
}

func openS3(ctx context.Context, uri string) (*parquet.Reader, error) {
	opts, err := resolveS3Options()
	if err != nil {
		return nil, err
	}
	cfg, err := s3.LoadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}
	svc := s3.NewService(cfg, opts)

	spin := progress.New(isatty.IsTerminal(os.Stderr.Fd()), os.Stderr)
	spin.Start(fmt.Sprintf("Fetching %s", uri))
	data, err := svc.Fetch(ctx, uri)
	spin.Stop()
	if err != nil {
		return nil, err
	}

	return parquet.NewReader(uri, data)
}

// resolveS3Options merges command-line flags over the selected storage
// profile.
func resolveS3Options() (s3.Options, error) {
	file, err := config.LoadFile("")
	if err != nil {
		return s3.Options{}, err
	}
	profile, err := file.Resolve(srcFlags.Profile)
	if err != nil {
		return s3.Options{}, err
	}

	opts := s3.Options{
		AccessKeyID:     srcFlags.AccessKeyID,
		SecretAccessKey: srcFlags.SecretAccessKey,
		EndpointURL:     srcFlags.EndpointURL,
		Region:          srcFlags.Region,
	}
	return mergeProfile(opts, profile), nil
}

// mergeProfile fills empty option fields from the profile. Flags win
// wherever both supply a value.
func mergeProfile(opts s3.Options, p config.Profile) s3.Options {
	if opts.AccessKeyID == "" {
		opts.AccessKeyID = p.AccessKeyID
	}
	if opts.SecretAccessKey == "" {
		opts.SecretAccessKey = p.SecretAccessKey
	}
	if opts.EndpointURL == "" {
		opts.EndpointURL = p.EndpointURL
	}
	if opts.Region == "" {
		opts.Region = p.Region
	}
	opts.PathStyle = p.PathStyle
	return opts
}

// recordInspection appends the inspection to the history database. History
// failures are logged and swallowed; they never fail the command itself.
func recordInspection(ctx context.Context, r *parquet.Reader, source string, logger *slog.Logger) {
	if srcFlags.NoHistory {
		return
	}

	svc, err := history.NewService(settings.HistoryFile)
	if err != nil {
		logger.Error("opening history database", "error", err)
		return
	}
	defer svc.Close()

	_, err = svc.Record(ctx, history.Entry{
		File:       r.Name(),
		Source:     source,
		FileSize:   r.FileSize(),
		NumRows:    r.NumRows(),
		RowGroups:  r.NumRowGroups(),
		Columns:    r.NumColumns(),
		AppVersion: version.Version,
	})
	if err != nil {
		logger.Error("recording inspection", "error", err)
	}
}
