package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestHelpOutput(t *testing.T) {
	cases := [][]string{
		{"--help"},
		{"inspect", "--help"},
		{"history", "--help"},
		{"version", "--help"},
	}

	for _, args := range cases {
		out, err := execute(t, args...)
		require.NoError(t, err, "args: %v", args)
		assert.Contains(t, out, "Usage:")
		assert.Contains(t, out, "datanomy")
	}
}

func TestRootHelpListsSourceFlags(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)

	for _, flag := range []string{"--access-key-id", "--secret-access-key", "--endpoint-url", "--region", "--profile", "--no-history"} {
		assert.Contains(t, out, flag)
	}
}

func TestFormatValidation(t *testing.T) {
	defer func() { versionFormat = "text" }()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr bool
	}{
		{"lowercase passes", "json", "json", false},
		{"uppercase normalized", "TEXT", "text", false},
		{"unknown rejected", "bogus", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			versionFormat = tt.format
			err := versionCmd.PreRunE(versionCmd, nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, versionFormat)
		})
	}
}
