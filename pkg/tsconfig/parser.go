package tsconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Options configures a Parser.
type Options struct {
	// TrailingCommas selects the trailing comma policy. The zero value means
	// TrailingCommasObjects.
	TrailingCommas TrailingCommaPolicy `json:"trailingCommas,omitempty" yaml:"trailingCommas,omitempty"`
}

// Parser parses tsconfig text. A Parser holds no mutable state and is safe
// for concurrent use.
type Parser struct {
	opts Options
}

// NewParser returns a Parser configured with opts.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Result is the outcome of a successful parse.
type Result struct {
	Document *Document `json:"document"`
	// Deprecations lists obsolete fields and tokens in schema order. It is
	// empty, not nil, when nothing was flagged.
	Deprecations []Deprecation `json:"deprecations"`
}

var defaultParser = NewParser(Options{})

// Parse parses text with the default options and returns the Document.
func Parse(text string) (*Document, error) {
	result, err := defaultParser.Parse(text)
	if err != nil {
		return nil, err
	}
	return result.Document, nil
}

// Parse runs text through comment and trailing comma removal, strict JSON
// decoding, and the mapping onto Document. The first failure aborts the
// parse and is returned as an *Error; no partial Document is produced.
func (p *Parser) Parse(text string) (*Result, error) {
	if !p.opts.TrailingCommas.Valid() {
		return nil, fmt.Errorf("unknown trailing comma policy %q", p.opts.TrailingCommas)
	}

	clean := Preprocess(text, p.opts.TrailingCommas)

	root, err := decodeJSON(text, clean)
	if err != nil {
		return nil, err
	}

	doc, deprecations, err := decodeDocument(root)
	if err != nil {
		return nil, err
	}
	if deprecations == nil {
		deprecations = []Deprecation{}
	}

	return &Result{Document: doc, Deprecations: deprecations}, nil
}

// decodeJSON decodes exactly one JSON value from clean. Positions in syntax
// errors are reported against original, which has the same byte layout.
func decodeJSON(original, clean string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(clean))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, translateSyntaxError(original, clean, err)
	}

	offset := int(dec.InputOffset())
	for offset < len(clean) && isJSONSpace(clean[offset]) {
		offset++
	}
	if offset < len(clean) {
		line, column := position(original, offset)
		return nil, syntaxError(line, column, "unexpected content after top-level value", nil)
	}

	return root, nil
}

func translateSyntaxError(original, clean string, err error) error {
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		offset := int(syntaxErr.Offset)
		if offset > 0 {
			offset--
		}
		line, column := position(original, offset)
		return syntaxError(line, column, syntaxErr.Error(), err)

	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		line, column := position(original, len(clean))
		detail := "unexpected end of input"
		if strings.TrimSpace(clean) == "" {
			detail = "empty document"
		}
		return syntaxError(line, column, detail, err)

	default:
		return syntaxError(1, 1, err.Error(), err)
	}
}

// position converts a byte offset into a 1-based line and column. Columns
// count runes.
func position(text string, offset int) (line, column int) {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}

	prefix := text[:offset]
	line = strings.Count(prefix, "\n") + 1
	lineStart := strings.LastIndexByte(prefix, '\n') + 1
	column = utf8.RuneCountInString(prefix[lineStart:]) + 1
	return line, column
}
