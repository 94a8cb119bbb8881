// Package history records inspected files in a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultDBPath = "~/.local/share/datanomy/history.db"

// Source kinds recorded per entry.
const (
	SourceLocal = "local"
	SourceS3    = "s3"
)

// Entry is one recorded inspection.
type Entry struct {
	ID          int64     `json:"id" yaml:"id"`
	File        string    `json:"file" yaml:"file"`
	Source      string    `json:"source" yaml:"source"`
	FileSize    int64     `json:"file_size" yaml:"file_size"`
	NumRows     int64     `json:"num_rows" yaml:"num_rows"`
	RowGroups   int       `json:"row_groups" yaml:"row_groups"`
	Columns     int       `json:"columns" yaml:"columns"`
	AppVersion  string    `json:"app_version,omitempty" yaml:"app_version,omitempty"`
	InspectedAt time.Time `json:"inspected_at" yaml:"inspected_at"`
}

// Service records and lists inspections.
type Service interface {
	Record(ctx context.Context, e Entry) (int64, error)
	Recent(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}

// NewService opens the SQLite store at dbPath, creating the file and its
// directory as needed. An empty path uses the default per-user location.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db, dbPath: resolved}, nil
}

type service struct {
	db     *sql.DB
	dbPath string
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p), nil
}

// Record inserts one inspection. A zero InspectedAt is set to now.
func (s *service) Record(ctx context.Context, e Entry) (int64, error) {
	if e.File == "" {
		return 0, fmt.Errorf("file is required")
	}
	if e.Source == "" {
		e.Source = SourceLocal
	}
	if e.InspectedAt.IsZero() {
		e.InspectedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO inspections (
			file, source, file_size, num_rows, row_groups, columns,
			app_version, inspected_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.File, e.Source, e.FileSize, e.NumRows, e.RowGroups, e.Columns,
		e.AppVersion, e.InspectedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Recent returns the latest inspections, newest first.
func (s *service) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT inspection_id, file, source, file_size, num_rows, row_groups,
		       columns, app_version, inspected_at
		FROM inspections
		ORDER BY inspected_at DESC, inspection_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var appVersion sql.NullString
		var when string
		if err := rows.Scan(&e.ID, &e.File, &e.Source, &e.FileSize, &e.NumRows,
			&e.RowGroups, &e.Columns, &appVersion, &when); err != nil {
			return nil, err
		}
		e.AppVersion = appVersion.String
		if ts, err := time.Parse(time.RFC3339, when); err == nil {
			e.InspectedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database handle.
func (s *service) Close() error {
	return s.db.Close()
}
