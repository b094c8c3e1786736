package extends

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/nauticalab/tsconfig-engine/pkg/tsconfig"
)

// configDirTemplate is substituted by the compiler with the directory of the
// final configuration, so paths using it are never rebased.
const configDirTemplate = "${configDir}"

// Merge overlays child onto parent and returns the effective document of
// child. parentDir and childDir are the directories of the two files;
// relative paths inherited from parent are rebased from parentDir to
// childDir. Neither input is modified. A nil parent yields a copy of child.
//
// Merge rules:
//   - files, include, exclude and typeAcquisition: child replaces parent when set
//   - compilerOptions: merged option by option, child's set options win
//   - compilerOptions.paths: replaced as a whole, never merged key by key
//   - references: taken from child only
//   - extends: always cleared
func Merge(parent, child *tsconfig.Document, parentDir, childDir string) *tsconfig.Document {
	if child == nil {
		child = &tsconfig.Document{}
	}

	result := &tsconfig.Document{
		Files:           child.Files,
		Include:         child.Include,
		Exclude:         child.Exclude,
		TypeAcquisition: child.TypeAcquisition,
		References:      child.References,
		CompilerOptions: child.CompilerOptions,
	}
	if parent == nil {
		result.CompilerOptions = cloneCompilerOptions(child.CompilerOptions)
		return result
	}

	rb := rebaser{from: parentDir, to: childDir}

	// Override fields fall back to the parent's value.
	if result.Files == nil {
		result.Files = rb.list(parent.Files)
	}
	if result.Include == nil {
		result.Include = rb.list(parent.Include)
	}
	if result.Exclude == nil {
		result.Exclude = rb.list(parent.Exclude)
	}
	if result.TypeAcquisition == nil {
		result.TypeAcquisition = parent.TypeAcquisition
	}

	result.CompilerOptions = mergeCompilerOptions(rb.compilerOptions(parent.CompilerOptions), child.CompilerOptions)
	return result
}

// mergeCompilerOptions returns a new CompilerOptions with every option set
// in child taken from child and every other option from parent.
func mergeCompilerOptions(parent, child *tsconfig.CompilerOptions) *tsconfig.CompilerOptions {
	switch {
	case parent == nil:
		return cloneCompilerOptions(child)
	case child == nil:
		return parent
	}

	merged := *parent
	dst := reflect.ValueOf(&merged).Elem()
	src := reflect.ValueOf(child).Elem()
	for i := 0; i < src.NumField(); i++ {
		if !src.Field(i).IsZero() {
			dst.Field(i).Set(src.Field(i))
		}
	}
	return &merged
}

func cloneCompilerOptions(opts *tsconfig.CompilerOptions) *tsconfig.CompilerOptions {
	if opts == nil {
		return nil
	}
	clone := *opts
	return &clone
}

// rebaser rewrites relative paths written in one directory so they resolve
// to the same location from another.
type rebaser struct {
	from string
	to   string
}

func (rb rebaser) path(p string) string {
	if p == "" || rb.from == rb.to || filepath.IsAbs(p) || strings.HasPrefix(p, configDirTemplate) {
		return p
	}

	target := filepath.Join(rb.from, filepath.FromSlash(p))
	rel, err := filepath.Rel(rb.to, target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}

func (rb rebaser) pathPtr(p *string) *string {
	if p == nil {
		return nil
	}
	rebased := rb.path(*p)
	return &rebased
}

func (rb rebaser) list(paths []string) []string {
	if paths == nil {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = rb.path(p)
	}
	return out
}

// compilerOptions returns a copy of opts with its path-valued options
// rebased. paths entries are relative to baseUrl when it is set, and to the
// declaring file otherwise; only the latter are rebased.
func (rb rebaser) compilerOptions(opts *tsconfig.CompilerOptions) *tsconfig.CompilerOptions {
	if opts == nil {
		return nil
	}

	out := *opts
	out.BaseURL = rb.pathPtr(opts.BaseURL)
	out.OutDir = rb.pathPtr(opts.OutDir)
	out.RootDir = rb.pathPtr(opts.RootDir)
	out.DeclarationDir = rb.pathPtr(opts.DeclarationDir)
	out.OutFile = rb.pathPtr(opts.OutFile)
	out.TsBuildInfoFile = rb.pathPtr(opts.TsBuildInfoFile)
	out.RootDirs = rb.list(opts.RootDirs)
	out.TypeRoots = rb.list(opts.TypeRoots)

	if opts.BaseURL == nil && opts.Paths != nil {
		out.Paths = make(map[string][]string, len(opts.Paths))
		for key, targets := range opts.Paths {
			out.Paths[key] = rb.list(targets)
		}
	}

	return &out
}
