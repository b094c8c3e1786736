package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nauticalab/tsconfig-engine/internal/fileset"
	"github.com/nauticalab/tsconfig-engine/pkg/tsconfig"
)

// FilesOptions holds configuration for the files command
type FilesOptions struct {
	RespectGitignore bool
	ResolveExtends   bool
	Verbose          bool
}

// FilesRun prints the input files a configuration selects
func FilesRun(cfg *CLIConfig, path string, opts FilesOptions) {
	if err := listFiles(os.Stdout, os.Stderr, cfg, path, opts); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		printParseHint(os.Stderr, err)
		os.Exit(1)
	}
}

func listFiles(stdout, stderr io.Writer, cfg *CLIConfig, path string, opts FilesOptions) error {
	resolver, err := cfg.NewResolver()
	if err != nil {
		return err
	}

	var doc *tsconfig.Document
	if opts.ResolveExtends {
		chain, err := resolver.LoadChain(path)
		if err != nil {
			return err
		}
		doc = chain.Merged
	} else {
		doc, _, err = resolver.Load(path)
		if err != nil {
			return err
		}
	}

	root := filepath.Dir(path)
	result, err := fileset.Expand(root, doc, fileset.Options{RespectGitignore: opts.RespectGitignore})
	if err != nil {
		return err
	}

	for _, file := range result.Files {
		fmt.Fprintln(stdout, file)
	}
	for _, missing := range result.Missing {
		fmt.Fprintf(stderr, "⚠️  Missing: %s is listed in files but does not exist\n", missing)
	}
	if opts.Verbose {
		fmt.Fprintf(stderr, "🔍 %d files selected from %s\n", len(result.Files), root)
	}
	return nil
}
