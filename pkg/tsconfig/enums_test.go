package tsconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	cases := []struct {
		token        string
		want         Target
		unrecognized bool
	}{
		{"ES2020", TargetES2020, false},
		{"es2020", TargetES2020, false},
		{"Es2020", TargetES2020, false},
		{"esnext", TargetESNext, false},
		{"es3", TargetES3, false},
		{"ES2099", Target("ES2099"), true},
		{"", Target(""), true},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			got := ParseTarget(tc.token)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.unrecognized, got.Unrecognized())
		})
	}
}

func TestUnrecognizedRequiresCanonicalSpelling(t *testing.T) {
	// A value built by hand in a non-canonical spelling is not a known token.
	assert.True(t, Target("es2020").Unrecognized())
	assert.False(t, ParseTarget("es2020").Unrecognized())
}

func TestParseLib(t *testing.T) {
	assert.Equal(t, LibDOMIterable, ParseLib("dom.iterable"))
	assert.Equal(t, LibES2015Promise, ParseLib("ES2015.PROMISE"))
	assert.Equal(t, LibDecoratorsLegacy, ParseLib("decorators.legacy"))
	assert.Equal(t, Lib("dom-iterable"), ParseLib("dom-iterable"))
	assert.True(t, ParseLib("dom-iterable").Unrecognized())
}

func TestParseModule(t *testing.T) {
	assert.Equal(t, ModuleCommonJS, ParseModule("commonjs"))
	assert.Equal(t, ModuleNodeNext, ParseModule("NODENEXT"))
	assert.Equal(t, ModuleNone, ParseModule("none"))
	assert.Equal(t, Module("Node20"), ParseModule("Node20"))
	assert.True(t, ParseModule("Node20").Unrecognized())
}

func TestParseModuleResolution(t *testing.T) {
	got, err := ParseModuleResolution("node16")
	require.NoError(t, err)
	assert.Equal(t, ModuleResolutionNode16, got)

	got, err = ParseModuleResolution("Node")
	require.NoError(t, err)
	assert.Equal(t, ModuleResolutionNode, got)

	_, err = ParseModuleResolution("yarn")
	require.Error(t, err)
	assert.True(t, IsCategory(err, CategoryInvalidEnum))
	assert.Contains(t, err.Error(), `"yarn"`)
}

func TestParseJsx(t *testing.T) {
	for _, mode := range KnownJsxModes() {
		got, err := ParseJsx(string(mode))
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	for _, token := range []string{"React", "REACT-JSX", "react_jsx", ""} {
		_, err := ParseJsx(token)
		assert.True(t, IsCategory(err, CategoryInvalidEnum), "token %q", token)
	}
}

func TestKnownVocabulariesAreCopies(t *testing.T) {
	targets := KnownTargets()
	targets[0] = "mutated"
	assert.Equal(t, TargetES3, KnownTargets()[0])
}

func TestVocabularies(t *testing.T) {
	vocab := Vocabularies()
	require.Len(t, vocab, 5)

	byDomain := make(map[string]Vocabulary, len(vocab))
	for _, v := range vocab {
		byDomain[v.Domain] = v
	}

	assert.True(t, byDomain["target"].Open)
	assert.True(t, byDomain["lib"].Open)
	assert.True(t, byDomain["module"].Open)
	assert.False(t, byDomain["moduleResolution"].Open)
	assert.False(t, byDomain["jsx"].Open)
	assert.True(t, byDomain["jsx"].CaseSensitive)
	assert.Contains(t, byDomain["lib"].Tokens, "DOM.Iterable")
	assert.Contains(t, byDomain["moduleResolution"].Tokens, "Bundler")
}
