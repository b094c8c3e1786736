package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nauticalab/tsconfig-engine/internal/git"
	"github.com/nauticalab/tsconfig-engine/internal/validation"
)

// ValidateOptions holds configuration for the validate command
type ValidateOptions struct {
	Dir     string
	Verbose bool
}

// ValidateRunAll validates every configuration in the workspace
func ValidateRunAll(cfg *CLIConfig, opts ValidateOptions) {
	fmt.Printf("🔍 Validating all tsconfig files in %s...\n", opts.Dir)
	if opts.Verbose {
		printRepoInfo(os.Stdout, opts.Dir)
	}

	validator, err := newWorkspaceValidator(cfg, opts.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Validation failed: %v\n", err)
		os.Exit(1)
	}

	result, err := validator.ValidateAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Validation failed: %v\n", err)
		os.Exit(1)
	}

	printValidationResult(os.Stdout, result, opts.Dir, "", opts.Verbose)

	if !result.IsValid {
		os.Exit(1)
	}
}

// ValidateRunSingle validates one configuration, including the workspace
// problems it takes part in
func ValidateRunSingle(cfg *CLIConfig, path string, opts ValidateOptions) {
	fmt.Printf("🔍 Validating %s\n", path)

	validator, err := newWorkspaceValidator(cfg, opts.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Validation failed: %v\n", err)
		os.Exit(1)
	}

	result, err := validator.ValidateSingle(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Validation failed: %v\n", err)
		os.Exit(1)
	}

	printValidationResult(os.Stdout, result, opts.Dir, path, opts.Verbose)

	if !result.IsValid {
		os.Exit(1)
	}
}

func newWorkspaceValidator(cfg *CLIConfig, dir string) (*validation.WorkspaceValidator, error) {
	resolver, err := cfg.NewResolver()
	if err != nil {
		return nil, err
	}
	return validation.NewWorkspaceValidator(dir, resolver), nil
}

// printRepoInfo prints the repository enclosing dir, if any.
func printRepoInfo(w io.Writer, dir string) {
	info, err := git.GetRepoInfo(dir)
	if err != nil {
		return
	}
	if info.Branch != "" {
		fmt.Fprintf(w, "   Repository: %s (%s @ %s)\n", info.Root, info.Branch, info.ShortHash())
	} else {
		fmt.Fprintf(w, "   Repository: %s\n", info.Root)
	}
}

// printValidationResult prints the validation results in a user-friendly format
func printValidationResult(w io.Writer, result *validation.ValidationResult, rootDir, target string, verbose bool) {
	rel := func(path string) string {
		root, err := filepath.Abs(rootDir)
		if err != nil {
			return path
		}
		if r, err := filepath.Rel(root, path); err == nil {
			return r
		}
		return path
	}

	if verbose {
		for _, file := range result.Files {
			fmt.Fprintf(w, "   Checked: %s\n", rel(file))
		}
	}

	// Print warnings first
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "⚠️  Warning: %s\n", warning.Message)
		if warning.FilePath != "" && verbose {
			fmt.Fprintf(w, "   File: %s\n", rel(warning.FilePath))
		}
	}

	// Print errors with context-specific messaging
	for _, err := range result.Errors {
		switch err.Type {
		case validation.ErrorInvalid:
			fmt.Fprintf(w, "❌ Configuration Error [%s]: %s\n", err.Category, err.Message)
		case validation.ErrorUnresolvedExtends:
			fmt.Fprintf(w, "❌ Unresolved Extends: %s\n", err.Message)
		case validation.ErrorMissingReference:
			fmt.Fprintf(w, "❌ Missing Reference: %s\n", err.Message)
		case validation.ErrorReferenceCycle:
			fmt.Fprintf(w, "❌ Reference Cycle: %s\n", err.Message)
			if verbose {
				for _, file := range err.Files {
					fmt.Fprintf(w, "   Member: %s\n", rel(file))
				}
			}
			continue
		default:
			fmt.Fprintf(w, "❌ Error: %s\n", err.Message)
		}
		if verbose && err.Field != "" {
			fmt.Fprintf(w, "   Field: %s\n", err.Field)
		}
	}

	// Print summary
	if len(result.Errors) == 0 && len(result.Warnings) == 0 {
		if target != "" {
			fmt.Fprintf(w, "✅ %s is valid!\n", target)
		} else {
			fmt.Fprintf(w, "✅ All %d configurations are valid!\n", len(result.Files))
		}
	} else if result.IsValid {
		if target != "" {
			fmt.Fprintf(w, "✅ %s is valid (%d warnings)\n", target, len(result.Warnings))
		} else {
			fmt.Fprintf(w, "✅ All %d configurations are valid (%d warnings)\n", len(result.Files), len(result.Warnings))
		}
	} else {
		fmt.Fprintf(w, "❌ Validation failed with %d errors and %d warnings\n", len(result.Errors), len(result.Warnings))

		// Provide helpful suggestions
		fmt.Fprintln(w, "\n💡 Suggestions:")
		seen := make(map[string]bool)
		for _, err := range result.Errors {
			if seen[err.Type] {
				continue
			}
			seen[err.Type] = true

			switch err.Type {
			case validation.ErrorInvalid:
				fmt.Fprintln(w, "   • Run 'tsconfig enums' to list the accepted enum tokens")
			case validation.ErrorUnresolvedExtends:
				fmt.Fprintln(w, "   • Check that extended packages are installed in node_modules")
			case validation.ErrorMissingReference:
				fmt.Fprintln(w, "   • Point each reference at a project directory containing tsconfig.json")
			case validation.ErrorReferenceCycle:
				fmt.Fprintln(w, "   • Remove one reference from each cycle; project references must form a DAG")
			}
		}
	}
}
