package tsconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocess(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		policy TrailingCommaPolicy
		want   string
	}{
		{
			name:  "line comment",
			input: "{\"a\": 1 // note\n}",
			want:  "{\"a\": 1        \n}",
		},
		{
			name:  "block comment keeps newlines",
			input: "{/* one\ntwo */\"a\": 1}",
			want:  "{      \n      \"a\": 1}",
		},
		{
			name:  "comment markers inside strings are kept",
			input: `{"url": "http://example.com/*x*/"}`,
			want:  `{"url": "http://example.com/*x*/"}`,
		},
		{
			name:  "escaped quote does not end string",
			input: `{"a": "\" // not a comment"}`,
			want:  `{"a": "\" // not a comment"}`,
		},
		{
			name:  "trailing comma before brace",
			input: `{"a": 1,}`,
			want:  `{"a": 1 }`,
		},
		{
			name:  "trailing comma before brace across whitespace",
			input: "{\"a\": {\"b\": true,\n  },\n}",
			want:  "{\"a\": {\"b\": true \n  } \n}",
		},
		{
			name:  "trailing comma before bracket is kept",
			input: `{"a": [1, 2,]}`,
			want:  `{"a": [1, 2,]}`,
		},
		{
			name:  "comma inside string is kept",
			input: `{"a": ",}"}`,
			want:  `{"a": ",}"}`,
		},
		{
			name:  "comment between comma and brace",
			input: "{\"a\": 1, // last\n}",
			want:  "{\"a\": 1         \n}",
		},
		{
			name:  "unterminated block comment is left for the decoder",
			input: `{"a": 1 /* open`,
			want:  `{"a": 1 /* open`,
		},
		{
			name:  "byte order mark",
			input: "\ufeff{}",
			want:  "   {}",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Preprocess(tc.input, tc.policy)
			assert.Equal(t, tc.want, got)
			assert.Len(t, got, len(tc.input), "byte offsets must be preserved")
		})
	}
}

func TestPreprocessAllTrailingCommas(t *testing.T) {
	input := "{\n  \"include\": [\"src\", /* c */ \"test\",],\n  \"strict\": true, // x\n}"

	got := Preprocess(input, TrailingCommasAll)
	assert.True(t, json.Valid([]byte(got)), "expected valid JSON, got %q", got)

	var v map[string]any
	assert.NoError(t, json.Unmarshal([]byte(got), &v))
	assert.Equal(t, []any{"src", "test"}, v["include"])
	assert.Equal(t, true, v["strict"])
}

func TestTrailingCommaPolicyValid(t *testing.T) {
	assert.True(t, TrailingCommaPolicy("").Valid())
	assert.True(t, TrailingCommasObjects.Valid())
	assert.True(t, TrailingCommasAll.Valid())
	assert.False(t, TrailingCommaPolicy("arrays").Valid())
}
