// Package git inspects the repository state the release procedure verifies:
// the commit a tag points at, and whether the worktree is clean.
package git

import (
	"github.com/go-git/go-git/v5"
)

// ErrTagNotFound reports a tag name with no reference in the repository.
var ErrTagNotFound = git.ErrTagNotFound

// Repo wraps an opened repository for release-state queries.
type Repo struct {
	repo *git.Repository
}

// Open opens the repository at path.
func Open(path string) (*Repo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, err
	}
	return &Repo{repo: repo}, nil
}

// Head returns the full hash of the current HEAD commit.
func (r *Repo) Head() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", err
	}
	return head.Hash().String(), nil
}

// TagCommit resolves the named tag to the hash of the commit it points at.
// Annotated tags resolve through the tag object to their target; lightweight
// tags point at the commit directly.
func (r *Repo) TagCommit(name string) (string, error) {
	ref, err := r.repo.Tag(name)
	if err != nil {
		return "", err
	}

	hash := ref.Hash()
	if tagObj, err := r.repo.TagObject(hash); err == nil {
		hash = tagObj.Target
	}
	return hash.String(), nil
}

// IsClean reports whether the worktree has no uncommitted or untracked
// changes. Status computation walks the whole worktree, so this is the
// expensive call of the package.
func (r *Repo) IsClean() (bool, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return false, err
	}
	status, err := worktree.Status()
	if err != nil {
		return false, err
	}
	return status.IsClean(), nil
}
