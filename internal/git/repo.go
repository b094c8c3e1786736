// Package git locates the Git repository a workspace belongs to and reads
// its ignore rules.
package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// ErrNotRepository is returned when a path is not inside a Git worktree.
var ErrNotRepository = errors.New("not inside a Git repository")

// RepoInfo holds information about the repository enclosing a workspace.
type RepoInfo struct {
	// Root is the worktree root directory.
	Root string
	// CommitHash is the current HEAD commit hash. Empty before the first commit.
	CommitHash string
	// Branch is the current branch name.
	Branch string
}

// ShortHash returns the first seven characters of CommitHash.
func (r *RepoInfo) ShortHash() string {
	if len(r.CommitHash) > 7 {
		return r.CommitHash[:7]
	}
	return r.CommitHash
}

// open finds the repository path belongs to, seeking upwards if necessary.
func open(path string) (*git.Repository, string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, "", fmt.Errorf("%w: %s", ErrNotRepository, path)
		}
		return nil, "", fmt.Errorf("failed to open Git repository for %q: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get worktree for repository %q: %w", path, err)
	}

	return repo, worktree.Filesystem.Root(), nil
}

// GetRepoInfo describes the repository enclosing path.
func GetRepoInfo(path string) (*RepoInfo, error) {
	repo, root, err := open(path)
	if err != nil {
		return nil, err
	}

	info := &RepoInfo{Root: root}

	headRef, err := repo.Head()
	if err != nil {
		// A freshly initialized repository has no HEAD commit yet.
		return info, nil
	}
	info.CommitHash = headRef.Hash().String()
	if headRef.Name().IsBranch() {
		info.Branch = headRef.Name().Short()
	}

	return info, nil
}
