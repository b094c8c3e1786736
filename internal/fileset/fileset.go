// Package fileset expands the files, include and exclude settings of a
// tsconfig document into the list of input files on disk.
package fileset

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/nauticalab/tsconfig-engine/internal/git"
	"github.com/nauticalab/tsconfig-engine/pkg/tsconfig"
)

var (
	tsExtensions = []string{".ts", ".tsx", ".mts", ".cts"}
	jsExtensions = []string{".js", ".jsx", ".mjs", ".cjs"}

	// packageFolders are never entered by wildcards and are excluded by default.
	packageFolders = []string{"node_modules", "bower_components", "jspm_packages"}
)

// Options configures Expand.
type Options struct {
	// RespectGitignore drops files matched by .gitignore rules. Entries of
	// files are kept regardless.
	RespectGitignore bool
}

// Result is an expanded file set.
type Result struct {
	// Files are the selected input files relative to the root, with forward
	// slashes, sorted.
	Files []string `json:"files" yaml:"files"`
	// Missing lists entries of files that do not exist.
	Missing []string `json:"missing" yaml:"missing"`
}

// Expand lists the input files doc selects. Patterns are relative to root,
// the directory containing the configuration.
//
// Without files and include every supported file below root is selected.
// Without exclude the package folders and outDir are excluded. Entries of
// files are always selected, even when an exclude pattern matches them.
func Expand(root string, doc *tsconfig.Document, opts Options) (*Result, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", root, err)
	}
	if doc == nil {
		doc = &tsconfig.Document{}
	}
	compilerOptions := doc.CompilerOptions
	if compilerOptions == nil {
		compilerOptions = &tsconfig.CompilerOptions{}
	}

	e := &expander{
		root:       absRoot,
		extensions: supportedExtensions(compilerOptions),
		selected:   make(map[string]bool),
	}
	for _, pattern := range excludePatterns(doc) {
		e.excludes = append(e.excludes, e.relPattern(pattern))
	}
	if opts.RespectGitignore {
		e.ignore, err = git.NewIgnoreMatcher(absRoot)
		if err != nil {
			return nil, err
		}
	}

	result := &Result{Missing: []string{}}
	for _, file := range doc.Files {
		abs := e.absPath(file)
		info, err := os.Stat(abs)
		if err != nil || info.IsDir() {
			result.Missing = append(result.Missing, file)
			continue
		}
		e.add(abs)
	}

	allowJSON := compilerOptions.ResolveJSONModule != nil && *compilerOptions.ResolveJSONModule
	for _, pattern := range includePatterns(doc) {
		if err := e.include(pattern, allowJSON && strings.HasSuffix(pattern, ".json")); err != nil {
			return nil, err
		}
	}

	result.Files = e.sorted()
	return result, nil
}

func includePatterns(doc *tsconfig.Document) []string {
	switch {
	case doc.Include != nil:
		return doc.Include
	case doc.Files != nil:
		return nil
	default:
		return []string{"**/*"}
	}
}

func excludePatterns(doc *tsconfig.Document) []string {
	if doc.Exclude != nil {
		return doc.Exclude
	}
	excludes := append([]string(nil), packageFolders...)
	if doc.CompilerOptions != nil && doc.CompilerOptions.OutDir != nil {
		excludes = append(excludes, *doc.CompilerOptions.OutDir)
	}
	return excludes
}

func supportedExtensions(opts *tsconfig.CompilerOptions) []string {
	extensions := append([]string(nil), tsExtensions...)
	if opts.AllowJs != nil && *opts.AllowJs {
		extensions = append(extensions, jsExtensions...)
	}
	return extensions
}

type expander struct {
	root       string // absolute
	extensions []string
	excludes   []string // root-relative doublestar patterns, forward slashes
	ignore     *git.IgnoreMatcher
	selected   map[string]bool
}

// absPath anchors a pattern or file name at the root.
func (e *expander) absPath(pattern string) string {
	if filepath.IsAbs(pattern) {
		return filepath.Clean(pattern)
	}
	return filepath.Join(e.root, filepath.FromSlash(pattern))
}

// relPattern turns a tsconfig pattern into a doublestar pattern relative to
// the root. Only *, ? and ** keep a special meaning.
func (e *expander) relPattern(pattern string) string {
	p := path.Clean(filepath.ToSlash(pattern))
	if filepath.IsAbs(pattern) {
		literal, rest := splitPattern(p)
		rel, err := filepath.Rel(e.root, filepath.FromSlash(literal))
		if err == nil {
			p = path.Join(filepath.ToSlash(rel), rest)
		}
	}
	return escapeMeta(p)
}

// relPath returns full relative to the root with forward slashes.
func (e *expander) relPath(full string) string {
	rel, err := filepath.Rel(e.root, full)
	if err != nil {
		return filepath.ToSlash(full)
	}
	return filepath.ToSlash(rel)
}

func (e *expander) include(pattern string, allowJSON bool) error {
	literal, rest := splitPattern(filepath.ToSlash(e.absPath(pattern)))
	baseDir := filepath.FromSlash(literal)
	explicitPackage := mentionsPackageFolder(pattern)

	if rest == "" {
		// Without wildcards the pattern names a directory or a single file.
		info, err := os.Stat(baseDir)
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			if e.wanted(baseDir, filepath.Base(baseDir), explicitPackage, allowJSON) {
				e.add(baseDir)
			}
			return nil
		}
		rest = "**"
	}
	if rest == "**/*" {
		// A trailing ** hands directories to the callback before descending,
		// so skipped directories are never read.
		rest = "**"
	}

	if info, err := os.Stat(baseDir); err != nil || !info.IsDir() {
		return nil
	}

	err := doublestar.GlobWalk(os.DirFS(baseDir), escapeMeta(rest), func(match string, d fs.DirEntry) error {
		if match == "." {
			return nil
		}
		full := filepath.Join(baseDir, filepath.FromSlash(match))

		if d.IsDir() {
			if e.skipDirectory(full, d.Name(), explicitPackage) {
				return doublestar.SkipDir
			}
			return nil
		}

		if !e.wanted(full, match, explicitPackage, allowJSON) {
			return nil
		}
		e.add(full)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to expand include pattern %q: %w", pattern, err)
	}
	return nil
}

func (e *expander) skipDirectory(full, name string, explicitPackage bool) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if !explicitPackage && isPackageFolder(name) {
		return true
	}
	if e.excluded(full) {
		return true
	}
	return e.ignore != nil && e.ignore.Ignored(full, true)
}

func (e *expander) wanted(full, match string, explicitPackage, allowJSON bool) bool {
	// Directories reached through a literal prefix never pass skipDirectory.
	for _, segment := range strings.Split(match, "/") {
		if strings.HasPrefix(segment, ".") || (!explicitPackage && isPackageFolder(segment)) {
			return false
		}
	}

	if !hasExtension(full, e.extensions) && !(allowJSON && strings.HasSuffix(full, ".json")) {
		return false
	}
	if e.excluded(full) {
		return false
	}
	return e.ignore == nil || !e.ignore.Ignored(full, false)
}

// excluded reports whether full, or a directory containing it, matches an
// exclude pattern.
func (e *expander) excluded(full string) bool {
	rel := e.relPath(full)
	for _, pattern := range e.excludes {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern+"/**", rel); ok {
			return true
		}
	}
	return false
}

func (e *expander) add(full string) {
	e.selected[e.relPath(full)] = true
}

func (e *expander) sorted() []string {
	files := make([]string, 0, len(e.selected))
	for f := range e.selected {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// splitPattern separates the leading literal segments of a slash-separated
// pattern from the rest, which starts at the first segment holding * or ?.
func splitPattern(p string) (literal, rest string) {
	segments := strings.Split(p, "/")
	for i, segment := range segments {
		if strings.ContainsAny(segment, "*?") {
			literal = strings.Join(segments[:i], "/")
			if literal == "" && strings.HasPrefix(p, "/") {
				literal = "/"
			}
			return literal, strings.Join(segments[i:], "/")
		}
	}
	return p, ""
}

// escapeMeta escapes the characters doublestar treats as syntax but
// tsconfig patterns take literally.
func escapeMeta(p string) string {
	var b strings.Builder
	for _, r := range p {
		switch r {
		case '\\', '[', ']', '{', '}':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func mentionsPackageFolder(pattern string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(pattern), "/") {
		if isPackageFolder(segment) {
			return true
		}
	}
	return false
}

func isPackageFolder(name string) bool {
	for _, folder := range packageFolders {
		if name == folder {
			return true
		}
	}
	return false
}

func hasExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
