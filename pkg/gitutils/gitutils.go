// Package gitutils computes the git badge shown in a panel title.
package gitutils

import (
	"context"
	"errors"
	"fmt"

	"github.com/dumbcommander/dumbcommander/pkg/logs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

var log = logs.Logger("gitutils")

var (
	openRepo = func(dir string) (*git.Repository, error) {
		return git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	}
	headRef = func(repo *git.Repository) (*plumbing.Reference, error) {
		return repo.Head()
	}
	worktreeStatus = func(wt *git.Worktree) (git.Status, error) {
		return wt.Status()
	}
)

type RepoStatus struct {
	Root         string
	Branch       string
	FilesChanged int
	ignore       *dirIgnore
}

// Ignored reports whether git ignores the child name of the directory the
// status was computed for.
func (s *RepoStatus) Ignored(name string, isDir bool) bool {
	if s == nil {
		return false
	}
	return s.ignore.match(name, isDir)
}

// String renders the badge with tview color tags.
func (s *RepoStatus) String() string {
	if s == nil {
		return ""
	}
	badge := fmt.Sprintf("[gray]┆[-][darkgray]%s[-]", s.Branch)
	if s.FilesChanged > 0 {
		badge += fmt.Sprintf("[yellow]ƒ%d[-]", s.FilesChanged)
	}
	return badge
}

// GetRepoStatus returns the branch and the number of changed files of the
// repository containing dir, or nil when dir is not inside a work tree.
// A cancelled ctx skips the status scan, which is the slow part.
func GetRepoStatus(ctx context.Context, dir string) *RepoStatus {
	repo, err := openRepo(dir)
	if err != nil {
		if !errors.Is(err, git.ErrRepositoryNotExists) {
			log.Debugw("failed to open repository", "dir", dir, "err", err)
		}
		return nil
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil
	}
	root := wt.Filesystem.Root()
	res := &RepoStatus{
		Root:   root,
		Branch: branchLabel(repo),
		ignore: loadDirIgnore(root, dir),
	}
	if ctx.Err() != nil {
		return res
	}
	status, err := worktreeStatus(wt)
	if err != nil {
		log.Debugw("failed to get worktree status", "dir", res.Root, "err", err)
		return res
	}
	for _, fs := range status {
		if fs.Worktree != git.Unmodified || fs.Staging != git.Unmodified {
			res.FilesChanged++
		}
	}
	return res
}

// branchLabel names the checked out branch, or the abbreviated commit for a
// detached HEAD. A repository without commits reports the branch HEAD points to.
func branchLabel(repo *git.Repository) string {
	head, err := headRef(repo)
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		if ref, refErr := repo.Reference(plumbing.HEAD, false); refErr == nil && ref.Type() == plumbing.SymbolicReference {
			return ref.Target().Short()
		}
		return "master"
	case err != nil:
		return "unknown"
	case head.Name().IsBranch():
		return head.Name().Short()
	}
	return head.Hash().String()[:7]
}
