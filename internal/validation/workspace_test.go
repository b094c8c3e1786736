package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nauticalab/tsconfig-engine/internal/extends"
	"github.com/nauticalab/tsconfig-engine/pkg/tsconfig"
)

func writeConfig(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newValidator(t *testing.T, root string) *WorkspaceValidator {
	t.Helper()
	resolver, err := extends.NewResolver(extends.Options{})
	require.NoError(t, err)
	return NewWorkspaceValidator(root, resolver)
}

func errorTypes(result *ValidationResult) []string {
	types := []string{}
	for _, err := range result.Errors {
		types = append(types, err.Type)
	}
	return types
}

func TestValidateAllValidWorkspace(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "tsconfig.base.json", `{
		// shared options
		"compilerOptions": {"strict": true, "target": "es2022"},
	}`)
	writeConfig(t, root, "tsconfig.json", `{"files": [], "references": [{"path": "./packages/core"}, {"path": "./packages/app/tsconfig.build.json"}]}`)
	writeConfig(t, root, "packages/core/tsconfig.json", `{"extends": "../../tsconfig.base.json", "compilerOptions": {"composite": true}}`)
	writeConfig(t, root, "packages/app/tsconfig.build.json", `{"extends": "../../tsconfig.base", "references": [{"path": "../core"}]}`)
	writeConfig(t, root, "node_modules/dep/tsconfig.json", `{"compilerOptions": {"jsx": "bogus"}}`)

	result, err := newValidator(t, root).ValidateAll()
	require.NoError(t, err)

	assert.True(t, result.IsValid, "unexpected errors: %+v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Len(t, result.Files, 4, "node_modules is not scanned")
}

func TestValidateAllReportsProblems(t *testing.T) {
	root := t.TempDir()
	broken := writeConfig(t, root, "broken/tsconfig.json", `{"compilerOptions": {"moduleResolution": "classicish"}}`)
	orphan := writeConfig(t, root, "orphan/tsconfig.json", `{"extends": "./missing.json"}`)
	refs := writeConfig(t, root, "refs/tsconfig.json", `{"references": [{"path": "../nowhere"}]}`)
	legacy := writeConfig(t, root, "legacy/jsconfig.json", `{"compilerOptions": {"out": "bundle.js"}}`)

	result, err := newValidator(t, root).ValidateAll()
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 3)

	assert.Equal(t, ErrorInvalid, result.Errors[0].Type)
	assert.Equal(t, broken, result.Errors[0].FilePath)
	assert.Equal(t, tsconfig.CategoryInvalidEnum, result.Errors[0].Category)
	assert.Equal(t, "compilerOptions.moduleResolution", result.Errors[0].Field)

	assert.Equal(t, ErrorUnresolvedExtends, result.Errors[1].Type)
	assert.Equal(t, orphan, result.Errors[1].FilePath)

	assert.Equal(t, ErrorMissingReference, result.Errors[2].Type)
	assert.Equal(t, refs, result.Errors[2].FilePath)
	assert.Equal(t, "references[0].path", result.Errors[2].Field)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, WarningDeprecated, result.Warnings[0].Type)
	assert.Equal(t, legacy, result.Warnings[0].FilePath)
	assert.Equal(t, "compilerOptions.out", result.Warnings[0].Field)
}

func TestValidateAllReferenceCycle(t *testing.T) {
	root := t.TempDir()
	a := writeConfig(t, root, "a/tsconfig.json", `{"references": [{"path": "../b"}]}`)
	b := writeConfig(t, root, "b/tsconfig.json", `{"references": [{"path": "../c/tsconfig.json"}]}`)
	c := writeConfig(t, root, "c/tsconfig.json", `{"references": [{"path": "../a"}]}`)
	writeConfig(t, root, "d/tsconfig.json", `{"references": [{"path": "../a"}]}`)

	result, err := newValidator(t, root).ValidateAll()
	require.NoError(t, err)

	assert.Equal(t, []string{ErrorReferenceCycle}, errorTypes(result))
	assert.Equal(t, []string{a, b, c}, result.Errors[0].Files)
	assert.Contains(t, result.Errors[0].Message, "cycle")
}

func TestValidateAllEmptyWorkspace(t *testing.T) {
	result, err := newValidator(t, t.TempDir()).ValidateAll()
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, WarningNoConfigs, result.Warnings[0].Type)
}

func TestValidateSingle(t *testing.T) {
	root := t.TempDir()
	good := writeConfig(t, root, "good/tsconfig.json", `{"compilerOptions": {"strict": true}}`)
	bad := writeConfig(t, root, "bad/tsconfig.json", `{"include": "src"}`)
	a := writeConfig(t, root, "a/tsconfig.json", `{"references": [{"path": "../b"}]}`)
	writeConfig(t, root, "b/tsconfig.json", `{"references": [{"path": "../a"}]}`)

	v := newValidator(t, root)

	t.Run("valid file", func(t *testing.T) {
		result, err := v.ValidateSingle(good)
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Equal(t, []string{good}, result.Files)
	})

	t.Run("invalid file", func(t *testing.T) {
		result, err := v.ValidateSingle(bad)
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, []string{ErrorInvalid}, errorTypes(result))
		assert.Equal(t, tsconfig.CategoryKindMismatch, result.Errors[0].Category)
	})

	t.Run("cycle member", func(t *testing.T) {
		result, err := v.ValidateSingle(a)
		require.NoError(t, err)
		assert.Equal(t, []string{ErrorReferenceCycle}, errorTypes(result))
	})

	t.Run("unknown file", func(t *testing.T) {
		_, err := v.ValidateSingle(filepath.Join(root, "nope", "tsconfig.json"))
		assert.Error(t, err)
	})
}

func TestIsConfigName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"tsconfig.json", true},
		{"jsconfig.json", true},
		{"tsconfig.build.json", true},
		{"tsconfig.app.spec.json", true},
		{"tsconfig..json", false},
		{"tsconfig.base.yaml", false},
		{"package.json", false},
		{"my-tsconfig.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConfigName(tt.name))
		})
	}
}

func TestFindCycles(t *testing.T) {
	graph := map[string][]string{
		"a": {"b"},
		"b": {"a", "c"},
		"c": {"c"},
		"d": {"a"},
	}

	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, findCycles(graph))
}
