// Package version holds the release version and build metadata.
//
// Version below is the committed release version: cutting a release edits
// it here, commits, and tags the commit v<Version>. Build pipelines stamp
// the remaining variables with:
//
//	go build -ldflags "-X github.com/datanomy/datanomy/internal/version.Commit=... "
//
// Snapshot builds may override Version the same way.
package version

import (
	"fmt"

	"golang.org/x/mod/semver"
)

var (
	// Version is the semantic version of this release without the "v"
	// prefix. Edited as part of the release procedure, see RELEASING.md.
	Version = "0.1.0"
	// Commit is the git SHA of the build.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// Info bundles the build metadata for display and serialization.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

// Get returns the build metadata of the running binary.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// Tag returns the git tag corresponding to the current version. Tags carry a
// "v" prefix while the version itself does not, so "0.3.1" maps to "v0.3.1".
func Tag() string {
	return "v" + Version
}

// IsRelease reports whether the binary was built from a tagged release
// rather than from a development checkout.
func IsRelease() bool {
	return Version != "dev" && semver.IsValid(Tag())
}

func (i Info) String() string {
	return fmt.Sprintf("datanomy %s (commit %s, built %s)", i.Version, i.Commit, i.Date)
}
