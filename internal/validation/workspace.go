// Package validation checks every tsconfig file of a workspace: each file
// must parse, its extends chain must resolve, and its project references must
// point at existing configurations without forming a cycle.
package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nauticalab/tsconfig-engine/internal/extends"
	"github.com/nauticalab/tsconfig-engine/pkg/tsconfig"
)

// Error types
const (
	ErrorInvalid           = "invalid"
	ErrorUnresolvedExtends = "unresolved_extends"
	ErrorMissingReference  = "missing_reference"
	ErrorReferenceCycle    = "reference_cycle"
)

// Warning types
const (
	WarningDeprecated = "deprecated"
	WarningNoConfigs  = "no_configs"
)

// numWorkers is the number of files parsed concurrently.
const numWorkers = 4

// WorkspaceValidator validates the tsconfig files below a directory.
type WorkspaceValidator struct {
	// rootDir is the directory scanned for configuration files
	rootDir  string
	resolver *extends.Resolver
}

// ValidationResult contains all validation results
type ValidationResult struct {
	// Errors is a list of fatal validation errors
	Errors []ValidationError `json:"errors"`
	// Warnings is a list of non-fatal validation warnings
	Warnings []ValidationWarning `json:"warnings"`
	// Files lists the configuration files that were checked
	Files []string `json:"files"`
	// IsValid indicates if the validation passed (no errors)
	IsValid bool `json:"isValid"`
}

// ValidationError represents a validation failure
type ValidationError struct {
	// Type is the kind of error (e.g., "invalid", "missing_reference")
	Type string `json:"type"`
	// Category is the parse error category for "invalid" errors
	Category tsconfig.Category `json:"category,omitempty"`
	// Field is the offending field, when known
	Field string `json:"field,omitempty"`
	// Files lists every configuration involved in the error
	Files []string `json:"files"`
	// Message is a human-readable error description
	Message string `json:"message"`
	// FilePath is the configuration file reporting the error
	FilePath string `json:"filePath"`
}

// ValidationWarning represents a non-fatal validation issue
type ValidationWarning struct {
	// Type is the kind of warning
	Type string `json:"type"`
	// Field is the field the warning is about, when known
	Field string `json:"field,omitempty"`
	// Message is a human-readable warning description
	Message string `json:"message"`
	// FilePath is the configuration file the warning is about
	FilePath string `json:"filePath,omitempty"`
}

// NewWorkspaceValidator creates a validator for the workspace at rootDir.
func NewWorkspaceValidator(rootDir string, resolver *extends.Resolver) *WorkspaceValidator {
	return &WorkspaceValidator{rootDir: rootDir, resolver: resolver}
}

// fileReport is the outcome of checking one configuration file.
type fileReport struct {
	path       string
	errors     []ValidationError
	warnings   []ValidationWarning
	references []string // resolved configuration paths
}

// ValidateAll scans the workspace and validates every configuration file.
func (wv *WorkspaceValidator) ValidateAll() (*ValidationResult, error) {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationWarning{},
		Files:    []string{},
		IsValid:  true,
	}

	configs, err := FindConfigs(wv.rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan workspace %s: %w", wv.rootDir, err)
	}
	if len(configs) == 0 {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Type:    WarningNoConfigs,
			Message: fmt.Sprintf("No tsconfig files found in %s", wv.rootDir),
		})
		return result, nil
	}
	result.Files = configs

	jobs := make(chan string, len(configs))
	reports := make(chan fileReport, len(configs))

	for i := 0; i < numWorkers; i++ {
		go wv.worker(jobs, reports)
	}
	for _, path := range configs {
		jobs <- path
	}
	close(jobs)

	references := make(map[string][]string, len(configs))
	for range configs {
		report := <-reports
		result.Errors = append(result.Errors, report.errors...)
		result.Warnings = append(result.Warnings, report.warnings...)
		references[report.path] = report.references
	}

	for _, cycle := range findCycles(references) {
		result.Errors = append(result.Errors, ValidationError{
			Type:     ErrorReferenceCycle,
			Files:    cycle,
			Message:  fmt.Sprintf("Project references form a cycle: %s", strings.Join(append(cycle, cycle[0]), " -> ")),
			FilePath: cycle[0],
		})
	}

	sortResult(result)
	result.IsValid = len(result.Errors) == 0
	return result, nil
}

// ValidateSingle validates one file by running full validation and filtering
// the results to those involving it.
func (wv *WorkspaceValidator) ValidateSingle(path string) (*ValidationResult, error) {
	fullResult, err := wv.ValidateAll()
	if err != nil {
		return nil, err
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationWarning{},
		Files:    []string{},
		IsValid:  true,
	}

	for _, file := range fullResult.Files {
		if file == target {
			result.Files = append(result.Files, file)
		}
	}
	if len(result.Files) == 0 {
		return nil, fmt.Errorf("%s is not a configuration file in workspace %s", path, wv.rootDir)
	}

	for _, err := range fullResult.Errors {
		if errorInvolvesFile(err, target) {
			result.Errors = append(result.Errors, err)
			result.IsValid = false
		}
	}

	for _, warning := range fullResult.Warnings {
		if warning.FilePath == target {
			result.Warnings = append(result.Warnings, warning)
		}
	}

	return result, nil
}

func errorInvolvesFile(err ValidationError, target string) bool {
	if err.FilePath == target {
		return true
	}
	for _, file := range err.Files {
		if file == target {
			return true
		}
	}
	return false
}

func (wv *WorkspaceValidator) worker(jobs <-chan string, reports chan<- fileReport) {
	for path := range jobs {
		reports <- wv.validateFile(path)
	}
}

func (wv *WorkspaceValidator) validateFile(path string) fileReport {
	report := fileReport{path: path}

	doc, deprecations, err := wv.resolver.Load(path)
	if err != nil {
		verr := ValidationError{
			Type:     ErrorInvalid,
			Files:    []string{path},
			Message:  fmt.Sprintf("Failed to parse %s: %v", path, unwrapParseError(err)),
			FilePath: path,
		}
		var perr *tsconfig.Error
		if errors.As(err, &perr) {
			verr.Category = perr.Category
			verr.Field = perr.Field
		}
		report.errors = append(report.errors, verr)
		return report
	}

	for _, d := range deprecations {
		report.warnings = append(report.warnings, ValidationWarning{
			Type:     WarningDeprecated,
			Field:    d.Field,
			Message:  fmt.Sprintf("%s in %s: %s", d.Field, path, d.Message),
			FilePath: path,
		})
	}

	if doc.Extends != nil {
		if _, err := wv.resolver.LoadChain(path); err != nil {
			report.errors = append(report.errors, ValidationError{
				Type:     ErrorUnresolvedExtends,
				Field:    "extends",
				Files:    []string{path},
				Message:  fmt.Sprintf("Cannot load extends %q of %s: %v", *doc.Extends, path, err),
				FilePath: path,
			})
		}
	}

	if doc.References == nil {
		return report
	}
	refs, _ := doc.References.List()
	for i, ref := range refs {
		target, ok := resolveReference(filepath.Dir(path), ref.Path)
		if !ok {
			report.errors = append(report.errors, ValidationError{
				Type:     ErrorMissingReference,
				Field:    fmt.Sprintf("references[%d].path", i),
				Files:    []string{path},
				Message:  fmt.Sprintf("Reference %q in %s does not point at a tsconfig file", ref.Path, path),
				FilePath: path,
			})
			continue
		}
		report.references = append(report.references, target)
	}

	return report
}

// unwrapParseError drops the "failed to parse <file>" wrapping added by the
// resolver, since the message already names the file.
func unwrapParseError(err error) error {
	var perr *tsconfig.Error
	if errors.As(err, &perr) {
		return perr
	}
	return err
}

// resolveReference finds the configuration a project reference names: a
// directory containing tsconfig.json, or a configuration file.
func resolveReference(fromDir, refPath string) (string, bool) {
	target := refPath
	if !filepath.IsAbs(target) {
		target = filepath.Join(fromDir, target)
	}

	info, err := os.Stat(target)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		target = filepath.Join(target, "tsconfig.json")
		if info, err = os.Stat(target); err != nil || info.IsDir() {
			return "", false
		}
	}
	return filepath.Clean(target), true
}

// FindConfigs returns the absolute paths of tsconfig.json, tsconfig.*.json
// and jsconfig.json files below rootDir, sorted. node_modules and hidden
// directories are skipped.
func FindConfigs(rootDir string) ([]string, error) {
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", rootDir, err)
	}

	var configs []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (d.Name() == "node_modules" || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsConfigName(d.Name()) {
			configs = append(configs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(configs)
	return configs, nil
}

// IsConfigName reports whether a file name is a TypeScript project
// configuration name.
func IsConfigName(name string) bool {
	if name == "tsconfig.json" || name == "jsconfig.json" {
		return true
	}
	return strings.HasPrefix(name, "tsconfig.") && strings.HasSuffix(name, ".json") && len(name) > len("tsconfig..json")
}

// findCycles returns each cycle in the reference graph once, starting at its
// smallest path.
func findCycles(graph map[string][]string) [][]string {
	const (
		unvisited = iota
		inProgress
		done
	)

	state := make(map[string]int, len(graph))
	seen := make(map[string]bool)
	var cycles [][]string
	var stack []string

	var visit func(node string)
	visit = func(node string) {
		state[node] = inProgress
		stack = append(stack, node)

		for _, next := range graph[node] {
			switch state[next] {
			case unvisited:
				visit(next)
			case inProgress:
				start := 0
				for i, n := range stack {
					if n == next {
						start = i
						break
					}
				}
				cycle := canonicalCycle(stack[start:])
				key := strings.Join(cycle, "\x00")
				if !seen[key] {
					seen[key] = true
					cycles = append(cycles, cycle)
				}
			}
		}

		stack = stack[:len(stack)-1]
		state[node] = done
	}

	nodes := make([]string, 0, len(graph))
	for node := range graph {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	for _, node := range nodes {
		if state[node] == unvisited {
			visit(node)
		}
	}
	return cycles
}

// canonicalCycle rotates a cycle to start at its smallest element.
func canonicalCycle(cycle []string) []string {
	start := 0
	for i, n := range cycle {
		if n < cycle[start] {
			start = i
		}
	}
	out := make([]string, 0, len(cycle))
	out = append(out, cycle[start:]...)
	out = append(out, cycle[:start]...)
	return out
}

func sortResult(result *ValidationResult) {
	sort.SliceStable(result.Errors, func(i, j int) bool {
		a, b := result.Errors[i], result.Errors[j]
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Message < b.Message
	})
	sort.SliceStable(result.Warnings, func(i, j int) bool {
		a, b := result.Warnings[i], result.Warnings[j]
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		return a.Message < b.Message
	})
}
