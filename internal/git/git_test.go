package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSignature() *object.Signature {
	return &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()}
}

func initRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	return dir, repo
}

func commitFile(t *testing.T, dir string, repo *gogit.Repository, name, content string) plumbing.Hash {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(name)
	require.NoError(t, err)

	hash, err := wt.Commit("add "+name, &gogit.CommitOptions{Author: testSignature()})
	require.NoError(t, err)
	return hash
}

func TestOpenMissingRepository(t *testing.T) {
	_, err := Open(t.TempDir())
	assert.Error(t, err)
}

func TestHead(t *testing.T) {
	dir, raw := initRepo(t)
	hash := commitFile(t, dir, raw, "file.txt", "content")

	repo, err := Open(dir)
	require.NoError(t, err)

	head, err := repo.Head()
	require.NoError(t, err)
	assert.Equal(t, hash.String(), head)
}

func TestTagCommitLightweight(t *testing.T) {
	dir, raw := initRepo(t)
	hash := commitFile(t, dir, raw, "file.txt", "content")
	_, err := raw.CreateTag("v1.0.0", hash, nil)
	require.NoError(t, err)

	repo, err := Open(dir)
	require.NoError(t, err)

	got, err := repo.TagCommit("v1.0.0")
	require.NoError(t, err)
	assert.Equal(t, hash.String(), got)
}

func TestTagCommitAnnotated(t *testing.T) {
	dir, raw := initRepo(t)
	hash := commitFile(t, dir, raw, "file.txt", "content")
	_, err := raw.CreateTag("v1.1.0", hash, &gogit.CreateTagOptions{
		Tagger:  testSignature(),
		Message: "release v1.1.0",
	})
	require.NoError(t, err)

	repo, err := Open(dir)
	require.NoError(t, err)

	// The annotated tag object must resolve to its target commit.
	got, err := repo.TagCommit("v1.1.0")
	require.NoError(t, err)
	assert.Equal(t, hash.String(), got)
}

func TestTagCommitMissing(t *testing.T) {
	dir, raw := initRepo(t)
	commitFile(t, dir, raw, "file.txt", "content")

	repo, err := Open(dir)
	require.NoError(t, err)

	_, err = repo.TagCommit("v9.9.9")
	assert.ErrorIs(t, err, ErrTagNotFound)
}

func TestIsClean(t *testing.T) {
	dir, raw := initRepo(t)
	commitFile(t, dir, raw, "file.txt", "content")

	repo, err := Open(dir)
	require.NoError(t, err)

	clean, err := repo.IsClean()
	require.NoError(t, err)
	assert.True(t, clean)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "stray.txt"), []byte("x"), 0644))

	clean, err = repo.IsClean()
	require.NoError(t, err)
	assert.False(t, clean)
}
