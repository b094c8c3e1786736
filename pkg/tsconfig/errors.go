package tsconfig

import (
	"errors"
	"fmt"
	"strings"
)

// Category is a stable classification of parse failures.
//
// Callers should branch on Category rather than matching error strings;
// Error() text is meant for humans and may change.
type Category string

const (
	// CategorySyntax means the text is not valid JSON once comments and
	// trailing commas have been removed.
	CategorySyntax Category = "syntax"
	// CategoryKindMismatch means a present key holds a JSON value of the
	// wrong kind for its field (e.g. a string where an array is expected).
	CategoryKindMismatch Category = "kind-mismatch"
	// CategoryInvalidEnum means a token is outside a closed enum domain.
	CategoryInvalidEnum Category = "invalid-enum"
	// CategoryShapeMismatch means a polymorphic field matches none of its
	// permitted shapes.
	CategoryShapeMismatch Category = "shape-mismatch"
)

// Error is the structured error returned by the parser.
type Error struct {
	Category Category
	// Field is the dotted path of the offending field, e.g.
	// "compilerOptions.lib[2]". Empty for document-level failures.
	Field string
	// Token is the offending enum token (CategoryInvalidEnum only).
	Token string
	// Expected lists the accepted kinds, shapes or tokens.
	Expected []string
	// Line and Column locate syntax errors in the original input (1-based).
	Line   int
	Column int
	// Message is the human readable description.
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// IsCategory reports whether err is (or wraps) an *Error of the given category.
func IsCategory(err error, category Category) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Category == category
}

// CategoryOf returns the category of a structured error, or "" if err is not one.
func CategoryOf(err error) Category {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Category
}

func syntaxError(line, column int, detail string, cause error) error {
	return &Error{
		Category: CategorySyntax,
		Line:     line,
		Column:   column,
		Message:  fmt.Sprintf("syntax error at line %d, column %d: %s", line, column, detail),
		Cause:    cause,
	}
}

func kindMismatch(field, expected, actual string) error {
	return &Error{
		Category: CategoryKindMismatch,
		Field:    field,
		Expected: []string{expected},
		Message:  fmt.Sprintf("%s: expected %s, got %s", displayField(field), expected, actual),
	}
}

func invalidEnum(field, domain, token string, expected []string) error {
	return &Error{
		Category: CategoryInvalidEnum,
		Field:    field,
		Token:    token,
		Expected: expected,
		Message: fmt.Sprintf("%s: invalid %s value %q (expected one of: %s)",
			displayField(field), domain, token, strings.Join(expected, ", ")),
	}
}

func shapeMismatch(field string, expected []string, actual string) error {
	return &Error{
		Category: CategoryShapeMismatch,
		Field:    field,
		Expected: expected,
		Message: fmt.Sprintf("%s: expected %s, got %s",
			displayField(field), strings.Join(expected, " or "), actual),
	}
}

func missingField(field, name string) error {
	return &Error{
		Category: CategoryShapeMismatch,
		Field:    field,
		Expected: []string{name},
		Message:  fmt.Sprintf("%s: missing required field %q", displayField(field), name),
	}
}

func displayField(field string) string {
	if field == "" {
		return "document"
	}
	return field
}
