package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// IgnoreMatcher reports whether paths are excluded by .gitignore rules.
type IgnoreMatcher struct {
	root    string
	matcher gitignore.Matcher
}

// NewIgnoreMatcher reads the ignore rules that apply to dir. Inside a
// repository the rules of the whole worktree are read, including
// .git/info/exclude; otherwise only .gitignore files below dir are used.
func NewIgnoreMatcher(dir string) (*IgnoreMatcher, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}

	_, worktreeRoot, err := open(root)
	switch {
	case err == nil:
		root = worktreeRoot
	case errors.Is(err, ErrNotRepository):
		// Outside a repository the rules below dir still apply.
	default:
		return nil, err
	}

	patterns, err := gitignore.ReadPatterns(osfs.New(root), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read ignore patterns under %s: %w", root, err)
	}

	return &IgnoreMatcher{root: root, matcher: gitignore.NewMatcher(patterns)}, nil
}

// Ignored reports whether the absolute path is ignored. Paths outside the
// matcher's root are never ignored.
func (m *IgnoreMatcher) Ignored(path string, isDir bool) bool {
	rel, err := filepath.Rel(m.root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return m.matcher.Match(strings.Split(filepath.ToSlash(rel), "/"), isDir)
}
