package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "tsconfig.json"), []byte(`{}`), 0o644))
	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("tsconfig.json")
	require.NoError(t, err)
	_, err = worktree.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir
}

func TestGetRepoInfo(t *testing.T) {
	dir := initRepo(t)
	sub := filepath.Join(dir, "packages", "app")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	info, err := GetRepoInfo(sub)
	require.NoError(t, err)

	assert.Equal(t, dir, info.Root)
	assert.Len(t, info.CommitHash, 40)
	assert.Len(t, info.ShortHash(), 7)
	assert.NotEmpty(t, info.Branch)
}

func TestGetRepoInfoOutsideRepository(t *testing.T) {
	_, err := GetRepoInfo(t.TempDir())
	assert.ErrorIs(t, err, ErrNotRepository)
}

func TestIgnoreMatcher(t *testing.T) {
	write := func(t *testing.T, path, content string) {
		t.Helper()
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	check := func(t *testing.T, root string) {
		m, err := NewIgnoreMatcher(root)
		require.NoError(t, err)

		assert.True(t, m.Ignored(filepath.Join(root, "generated"), true))
		assert.True(t, m.Ignored(filepath.Join(root, "generated", "api.ts"), false))
		assert.True(t, m.Ignored(filepath.Join(root, "src", "schema.gen.ts"), false))
		assert.True(t, m.Ignored(filepath.Join(root, "src", "legacy", "old.ts"), false))
		assert.False(t, m.Ignored(filepath.Join(root, "src", "index.ts"), false))
		assert.False(t, m.Ignored(root, true))
		assert.False(t, m.Ignored(filepath.Dir(root), true))
	}

	setup := func(t *testing.T, root string) {
		write(t, filepath.Join(root, ".gitignore"), "# build output\ngenerated/\n*.gen.ts\n")
		write(t, filepath.Join(root, "src", ".gitignore"), "legacy/\n")
	}

	t.Run("plain directory", func(t *testing.T) {
		root := t.TempDir()
		setup(t, root)
		check(t, root)
	})

	t.Run("repository subdirectory uses worktree rules", func(t *testing.T) {
		root := initRepo(t)
		setup(t, root)
		check(t, root)

		m, err := NewIgnoreMatcher(filepath.Join(root, "src"))
		require.NoError(t, err)
		assert.True(t, m.Ignored(filepath.Join(root, "src", "a.gen.ts"), false))
	})
}
