package extends

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nauticalab/tsconfig-engine/pkg/tsconfig"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver(Options{})
	require.NoError(t, err)
	return r
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "configs", "base.json"), `{}`)
	writeFile(t, filepath.Join(root, "configs", "strict"), `{}`)
	writeFile(t, filepath.Join(root, "node_modules", "@tsconfig", "node20", "tsconfig.json"), `{}`)
	writeFile(t, filepath.Join(root, "node_modules", "shared-config.json"), `{}`)
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "tsconfig.lib.json"), `{}`)

	project := filepath.Join(root, "packages", "app")
	require.NoError(t, os.MkdirAll(project, 0o755))

	r := newResolver(t)

	cases := []struct {
		name      string
		specifier string
		fromDir   string
		want      string
	}{
		{"relative with extension", "./configs/base.json", root, filepath.Join(root, "configs", "base.json")},
		{"relative without extension", "./configs/base", root, filepath.Join(root, "configs", "base.json")},
		{"exact name wins over .json", "./configs/strict", root, filepath.Join(root, "configs", "strict")},
		{"parent relative", "../../configs/base.json", project, filepath.Join(root, "configs", "base.json")},
		{"absolute", filepath.Join(root, "configs", "base.json"), project, filepath.Join(root, "configs", "base.json")},
		{"package directory", "@tsconfig/node20", project, filepath.Join(root, "node_modules", "@tsconfig", "node20", "tsconfig.json")},
		{"package file without extension", "shared-config", project, filepath.Join(root, "node_modules", "shared-config.json")},
		{"package subpath", "pkg/tsconfig.lib.json", project, filepath.Join(root, "node_modules", "pkg", "tsconfig.lib.json")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Resolve(tc.specifier, tc.fromDir)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := r.Resolve("./nope", root)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = r.Resolve("@missing/config", project)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = r.Resolve("  ", project)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLoadChain(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "node_modules", "@org", "base", "tsconfig.json"), `{
		// shared defaults
		"compilerOptions": {"target": "es2019", "strict": true, "lib": ["dom"], "out": "x.js"},
	}`)
	writeFile(t, filepath.Join(root, "tsconfig.base.json"), `{
		"extends": "@org/base",
		"compilerOptions": {"target": "es2022", "outDir": "dist", "charset": "utf8"},
		"include": ["src"],
		"references": [{"path": "./shared"}]
	}`)
	app := writeFile(t, filepath.Join(root, "apps", "web", "tsconfig.json"), `{
		"extends": "../../tsconfig.base.json",
		"compilerOptions": {"jsx": "react-jsx", "lib": []}
	}`)

	chain, err := newResolver(t).LoadChain(app)
	require.NoError(t, err)

	require.Len(t, chain.Links, 3)
	assert.Equal(t, app, chain.Links[0].Path)
	assert.Equal(t, filepath.Join(root, "tsconfig.base.json"), chain.Links[1].Path)
	assert.Equal(t, filepath.Join(root, "node_modules", "@org", "base", "tsconfig.json"), chain.Links[2].Path)

	merged := chain.Merged
	require.NotNil(t, merged.CompilerOptions)
	assert.Nil(t, merged.Extends)
	assert.Nil(t, merged.References, "references are not inherited")
	assert.Equal(t, tsconfig.TargetES2022, *merged.CompilerOptions.Target)
	assert.True(t, *merged.CompilerOptions.Strict)
	assert.Equal(t, tsconfig.JsxReactJSX, *merged.CompilerOptions.Jsx)
	assert.Equal(t, []tsconfig.Lib{}, merged.CompilerOptions.Lib, "present empty list overrides")
	assert.Equal(t, "../../dist", *merged.CompilerOptions.OutDir)
	assert.Equal(t, []string{"../../src"}, merged.Include)

	require.Len(t, chain.Deprecations, 2)
	assert.Equal(t, filepath.Join(root, "tsconfig.base.json"), chain.Deprecations[0].File)
	assert.Equal(t, "compilerOptions.charset", chain.Deprecations[0].Field)
	assert.Equal(t, "compilerOptions.out", chain.Deprecations[1].Field)

	// Cached documents are not modified by merging.
	base := chain.Links[1].Document
	assert.Equal(t, "dist", *base.CompilerOptions.OutDir)
	assert.NotNil(t, base.Extends)
}

func TestLoadChainWithoutExtends(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "tsconfig.json"), `{"references": true, "compilerOptions": {"strict": true}}`)

	chain, err := newResolver(t).LoadChain(path)
	require.NoError(t, err)

	require.Len(t, chain.Links, 1)
	assert.NotNil(t, chain.Deprecations)
	assert.Empty(t, chain.Deprecations)
	assert.True(t, *chain.Merged.CompilerOptions.Strict)
	flag, ok := chain.Merged.References.Flag()
	assert.True(t, ok)
	assert.True(t, flag)
}

func TestLoadChainCycle(t *testing.T) {
	root := t.TempDir()
	a := writeFile(t, filepath.Join(root, "a.json"), `{"extends": "./b.json"}`)
	writeFile(t, filepath.Join(root, "b.json"), `{"extends": "./a"}`)

	_, err := newResolver(t).LoadChain(a)
	require.Error(t, err)

	var cycle *CycleError
	require.True(t, errors.As(err, &cycle))
	assert.Equal(t, []string{a, filepath.Join(root, "b.json"), a}, cycle.Chain)
	assert.Contains(t, err.Error(), "extends cycle")
}

func TestLoadChainErrors(t *testing.T) {
	root := t.TempDir()

	t.Run("unresolved extends", func(t *testing.T) {
		path := writeFile(t, filepath.Join(root, "unresolved.json"), `{"extends": "./missing.json"}`)
		_, err := newResolver(t).LoadChain(path)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("parse error keeps its category", func(t *testing.T) {
		writeFile(t, filepath.Join(root, "broken.json"), `{"compilerOptions": {"jsx": "React"}}`)
		path := writeFile(t, filepath.Join(root, "child.json"), `{"extends": "./broken.json"}`)

		_, err := newResolver(t).LoadChain(path)
		require.Error(t, err)
		assert.True(t, tsconfig.IsCategory(err, tsconfig.CategoryInvalidEnum))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := newResolver(t).LoadChain(filepath.Join(root, "nope.json"))
		assert.Error(t, err)
	})
}

func TestLoadReloadsChangedFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tsconfig.json")
	writeFile(t, path, `{"include": ["a"]}`)

	r := newResolver(t)
	doc, _, err := r.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, doc.Include)

	again, _, err := r.Load(path)
	require.NoError(t, err)
	assert.Same(t, doc, again, "unchanged file is served from cache")

	writeFile(t, path, `{"include": ["a", "b"]}`)
	changed, _, err := r.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, changed.Include)
}

func TestLoadUsesParserOptions(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "tsconfig.json"), `{"include": ["src",]}`)

	_, _, err := newResolver(t).Load(path)
	assert.True(t, tsconfig.IsCategory(err, tsconfig.CategorySyntax))

	lenient, err := NewResolver(Options{Parser: tsconfig.Options{TrailingCommas: tsconfig.TrailingCommasAll}})
	require.NoError(t, err)
	doc, _, err := lenient.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"src"}, doc.Include)
}
