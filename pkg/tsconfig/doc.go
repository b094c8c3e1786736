// Package tsconfig parses TypeScript project configuration files
// (tsconfig.json and jsconfig.json) into a typed document model.
//
// The input dialect is JSON extended with // and /* */ comments and trailing
// commas. Parsing runs in four stages: comment and trailing comma removal,
// strict JSON decoding, mapping onto the typed model, and resolution of the
// enum and polymorphic fields. The first failure stops the parse.
//
// # Basic Usage
//
// The main entry point is [Parse]:
//
//	doc, err := tsconfig.Parse(text)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if opts := doc.CompilerOptions; opts != nil && opts.Target != nil {
//	    fmt.Println(*opts.Target) // "ES2020"
//	}
//
// Use a [Parser] to pick a trailing comma policy or to collect the
// deprecated fields a document uses:
//
//	p := tsconfig.NewParser(tsconfig.Options{TrailingCommas: tsconfig.TrailingCommasAll})
//	result, err := p.Parse(text)
//	for _, d := range result.Deprecations {
//	    fmt.Printf("%s: %s\n", d.Field, d.Message)
//	}
//
// # Absent Versus Empty
//
// Every field is optional. A nil pointer or nil slice means the key was
// missing or held null. A present empty array maps to a non-nil empty slice,
// so callers can tell "include": [] apart from no include at all.
//
// # Enum Domains
//
// target, lib and module are open: tokens are matched ignoring case and
// canonicalized ("es2020" becomes [TargetES2020]); unknown tokens are kept
// verbatim and report Unrecognized. moduleResolution is closed and matched
// ignoring case. jsx is closed and matched exactly. Unknown tokens in a
// closed domain fail with [CategoryInvalidEnum].
//
// # Polymorphic Fields
//
// references is a boolean or an array of {path, prepend} objects.
// typeAcquisition is a boolean or an {enable, include, exclude} object.
// Both try the boolean form first. A value matching neither form fails with
// [CategoryShapeMismatch], as does a structured form missing a required key.
//
// # Error Handling
//
// All parse failures are *[Error] values carrying a [Category]:
//
//	_, err := tsconfig.Parse(`{"compilerOptions": {"jsx": "React"}}`)
//	if tsconfig.IsCategory(err, tsconfig.CategoryInvalidEnum) {
//	    var perr *tsconfig.Error
//	    errors.As(err, &perr)
//	    fmt.Println(perr.Field, perr.Token) // compilerOptions.jsx React
//	}
//
// Syntax errors carry the line and column of the failure in the original
// text; comment removal preserves byte offsets.
//
// # Thread Safety
//
// [Parse] and [Parser.Parse] keep no shared mutable state and may be called
// from multiple goroutines.
package tsconfig
