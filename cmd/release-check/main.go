package main

import (
	"errors"
	"flag"
	"log"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/mod/semver"

	"github.com/datanomy/datanomy/internal/git"
	"github.com/datanomy/datanomy/internal/version"
)

// Checker runs the pre-release verification steps against a repository.
// Each check logs its outcome and counts failures; the process exits
// non-zero when any check failed.
type Checker struct {
	repoDir  string
	distDir  string
	patterns []string
	failures int
}

// NewChecker creates a checker for the given repository root
func NewChecker(repoDir, distDir string, patterns []string) *Checker {
	return &Checker{
		repoDir:  repoDir,
		distDir:  distDir,
		patterns: patterns,
	}
}

// Failures returns the number of failed checks so far
func (c *Checker) Failures() int {
	return c.failures
}

func (c *Checker) ok(format string, args ...interface{}) {
	log.Printf("✓ "+format, args...)
}

func (c *Checker) fail(format string, args ...interface{}) {
	c.failures++
	log.Printf("✗ "+format, args...)
}

// CheckVersion verifies the committed version string and its tag form
func (c *Checker) CheckVersion() {
	v := version.Version

	if v == "dev" || v == "" {
		c.fail("version is %q; edit internal/version/version.go before releasing", v)
		return
	}
	if strings.HasPrefix(v, "v") {
		c.fail("version %q must not carry the v prefix; the tag adds it", v)
		return
	}
	if !semver.IsValid(version.Tag()) {
		c.fail("version %q is not valid semver", v)
		return
	}

	c.ok("version %s is valid semver (tag %s)", v, version.Tag())
}

// CheckGit verifies that HEAD carries the release tag and the worktree is clean
func (c *Checker) CheckGit() {
	repo, err := git.Open(c.repoDir)
	if err != nil {
		c.fail("opening repository at %s: %v", c.repoDir, err)
		return
	}

	head, err := repo.Head()
	if err != nil {
		c.fail("resolving HEAD: %v", err)
		return
	}

	tagName := version.Tag()
	tagged, err := repo.TagCommit(tagName)
	switch {
	case errors.Is(err, git.ErrTagNotFound):
		c.fail("tag %s not found; tag the release commit first", tagName)
	case err != nil:
		c.fail("resolving tag %s: %v", tagName, err)
	case tagged != head:
		c.fail("tag %s points at %s, but HEAD is %s", tagName, tagged[:7], head[:7])
	default:
		c.ok("tag %s points at HEAD (%s)", tagName, head[:7])
	}

	clean, err := repo.IsClean()
	if err != nil {
		c.fail("reading worktree status: %v", err)
		return
	}
	if !clean {
		c.fail("worktree has uncommitted changes; release from a clean checkout")
		return
	}
	c.ok("worktree is clean")
}

// CheckArtifacts verifies that every artifact glob matches under dist/
func (c *Checker) CheckArtifacts() {
	for _, pattern := range c.patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		matches, err := doublestar.FilepathGlob(filepath.Join(c.distDir, pattern))
		if err != nil {
			c.fail("bad artifact pattern %q: %v", pattern, err)
			continue
		}
		if len(matches) == 0 {
			c.fail("no artifacts match %s under %s", pattern, c.distDir)
			continue
		}

		for _, m := range matches {
			c.ok("artifact %s", m)
		}
	}
}

// SmokeTest runs a built binary with --help and requires a clean exit
// with non-empty output.
func (c *Checker) SmokeTest(binary string) {
	out, err := exec.Command(binary, "--help").CombinedOutput()
	if err != nil {
		c.fail("%s --help: %v", binary, err)
		return
	}
	if len(strings.TrimSpace(string(out))) == 0 {
		c.fail("%s --help produced no output", binary)
		return
	}
	c.ok("%s --help exits 0 with output", binary)
}

func main() {
	var (
		repoDir   = flag.String("repo", ".", "Repository root to check")
		distDir   = flag.String("dist", "dist", "Directory holding release artifacts")
		artifacts = flag.String("artifacts", "datanomy_*.tar.gz", "Comma-separated artifact globs required under the dist directory")
		smoke     = flag.String("smoke", "", "Built binary to smoke test with --help")
		skipGit   = flag.Bool("skip-git", false, "Skip the git tag and worktree checks")
		skipDist  = flag.Bool("skip-dist", false, "Skip the dist artifact checks")
	)
	flag.Parse()

	log.Printf("Datanomy release check")
	log.Printf("Version: %s", version.Version)

	checker := NewChecker(*repoDir, *distDir, strings.Split(*artifacts, ","))
	checker.CheckVersion()
	if !*skipGit {
		checker.CheckGit()
	}
	if !*skipDist {
		checker.CheckArtifacts()
	}
	if *smoke != "" {
		checker.SmokeTest(*smoke)
	}

	if n := checker.Failures(); n > 0 {
		log.Fatalf("Release check failed: %d problem(s)", n)
	}
	log.Printf("Release check passed")
}
