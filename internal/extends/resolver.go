// Package extends follows the "extends" field of tsconfig files and merges
// each configuration onto the one it inherits from.
package extends

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/nauticalab/tsconfig-engine/pkg/tsconfig"
)

// DefaultCacheSize is the number of parsed files a Resolver keeps.
const DefaultCacheSize = 128

// ErrNotFound is returned when an extends specifier names no file.
var ErrNotFound = errors.New("extended configuration not found")

// CycleError reports a chain of extends that returns to a file already visited.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return "extends cycle: " + strings.Join(e.Chain, " -> ")
}

// Options configures a Resolver.
type Options struct {
	// CacheSize bounds the parsed-file cache. Zero means DefaultCacheSize.
	CacheSize int
	// Parser options used for every file in a chain.
	Parser tsconfig.Options
}

// Resolver loads tsconfig files and their extends chains. It is safe for
// concurrent use.
type Resolver struct {
	parser *tsconfig.Parser
	cache  *lru.Cache[string, *cachedFile]
}

type cachedFile struct {
	modTime      time.Time
	size         int64
	document     *tsconfig.Document
	deprecations []tsconfig.Deprecation
}

// NewResolver creates a Resolver.
func NewResolver(opts Options) (*Resolver, error) {
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[string, *cachedFile](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create document cache: %w", err)
	}

	return &Resolver{
		parser: tsconfig.NewParser(opts.Parser),
		cache:  cache,
	}, nil
}

// Link is one file of an extends chain.
type Link struct {
	Path         string                 `json:"path"`
	Document     *tsconfig.Document     `json:"document"`
	Deprecations []tsconfig.Deprecation `json:"deprecations"`
}

// Deprecation is a deprecation found in one file of a chain.
type Deprecation struct {
	File string `json:"file" yaml:"file"`
	tsconfig.Deprecation
}

// Chain is a loaded extends chain.
type Chain struct {
	// Links starts with the requested file, followed by each file it extends.
	Links []Link
	// Merged is the effective configuration of the requested file.
	Merged *tsconfig.Document
	// Deprecations collects the deprecations of every link.
	Deprecations []Deprecation
}

// Resolve locates the file an extends specifier names, relative to fromDir,
// the directory of the extending file.
//
// Relative and absolute specifiers name a file, with ".json" appended when
// the bare name does not exist. Other specifiers are package names looked up
// in node_modules directories from fromDir upward.
func (r *Resolver) Resolve(specifier, fromDir string) (string, error) {
	spec := strings.TrimSpace(specifier)
	if spec == "" {
		return "", fmt.Errorf("%w: empty specifier", ErrNotFound)
	}

	var candidates []string
	if isPathSpecifier(spec) {
		p := spec
		if !filepath.IsAbs(p) {
			p = filepath.Join(fromDir, p)
		}
		candidates = append(candidates, p)
		if !strings.HasSuffix(p, ".json") {
			candidates = append(candidates, p+".json")
		}
	} else {
		for dir := fromDir; ; {
			base := filepath.Join(dir, "node_modules", spec)
			candidates = append(candidates, base, base+".json", filepath.Join(base, "tsconfig.json"))

			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return filepath.Clean(candidate), nil
		}
	}

	return "", fmt.Errorf("%w: %q from %s", ErrNotFound, specifier, fromDir)
}

func isPathSpecifier(spec string) bool {
	return filepath.IsAbs(spec) ||
		spec == "." || spec == ".." ||
		strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") ||
		strings.HasPrefix(spec, `.\`) || strings.HasPrefix(spec, `..\`)
}

// Load reads and parses one file. Parsed files are cached by absolute path
// and reloaded when their size or modification time changes.
func (r *Resolver) Load(path string) (*tsconfig.Document, []tsconfig.Deprecation, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if cached, ok := r.cache.Get(abs); ok && cached.size == info.Size() && cached.modTime.Equal(info.ModTime()) {
		return cached.document, cached.deprecations, nil
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	result, err := r.parser.Parse(string(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	r.cache.Add(abs, &cachedFile{
		modTime:      info.ModTime(),
		size:         info.Size(),
		document:     result.Document,
		deprecations: result.Deprecations,
	})
	return result.Document, result.Deprecations, nil
}

// LoadChain loads path and every file it transitively extends, then merges
// the chain from the furthest ancestor down to path.
func (r *Resolver) LoadChain(path string) (*Chain, error) {
	current, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	chain := &Chain{Deprecations: []Deprecation{}}
	seen := make(map[string]bool)
	for {
		if seen[current] {
			visited := make([]string, 0, len(chain.Links)+1)
			for _, link := range chain.Links {
				visited = append(visited, link.Path)
			}
			return nil, &CycleError{Chain: append(visited, current)}
		}
		seen[current] = true

		doc, deprecations, err := r.Load(current)
		if err != nil {
			return nil, err
		}
		chain.Links = append(chain.Links, Link{Path: current, Document: doc, Deprecations: deprecations})
		for _, d := range deprecations {
			chain.Deprecations = append(chain.Deprecations, Deprecation{File: current, Deprecation: d})
		}

		if doc.Extends == nil || strings.TrimSpace(*doc.Extends) == "" {
			break
		}

		next, err := r.Resolve(*doc.Extends, filepath.Dir(current))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve extends of %s: %w", current, err)
		}
		current = next
	}

	last := len(chain.Links) - 1
	merged := Merge(nil, chain.Links[last].Document, "", "")
	mergedDir := filepath.Dir(chain.Links[last].Path)
	for i := last - 1; i >= 0; i-- {
		dir := filepath.Dir(chain.Links[i].Path)
		merged = Merge(merged, chain.Links[i].Document, mergedDir, dir)
		mergedDir = dir
	}
	chain.Merged = merged

	return chain, nil
}
