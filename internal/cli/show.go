package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nauticalab/tsconfig-engine/internal/extends"
	"github.com/nauticalab/tsconfig-engine/internal/templates"
	"github.com/nauticalab/tsconfig-engine/pkg/tsconfig"
)

// Output formats of the show command
const (
	OutputJSON    = "json"
	OutputYAML    = "yaml"
	OutputSummary = "summary"
)

// ShowOptions holds configuration for the show command
type ShowOptions struct {
	Output         string
	ResolveExtends bool
	Verbose        bool
}

// ShowRun prints one parsed configuration
func ShowRun(cfg *CLIConfig, path string, opts ShowOptions) {
	if err := show(os.Stdout, os.Stderr, cfg, path, opts); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		printParseHint(os.Stderr, err)
		os.Exit(1)
	}
}

func show(stdout, stderr io.Writer, cfg *CLIConfig, path string, opts ShowOptions) error {
	resolver, err := cfg.NewResolver()
	if err != nil {
		return err
	}

	var (
		doc   *tsconfig.Document
		chain []string
		notes []templates.DeprecationNote
	)

	if opts.ResolveExtends {
		loaded, err := resolver.LoadChain(path)
		if err != nil {
			return err
		}
		doc = loaded.Merged
		for _, link := range loaded.Links[1:] {
			chain = append(chain, link.Path)
		}
		for _, d := range loaded.Deprecations {
			notes = append(notes, templates.DeprecationNote{File: d.File, Deprecation: d.Deprecation})
		}
	} else {
		parsed, deprecations, err := resolver.Load(path)
		if err != nil {
			return err
		}
		doc = parsed
		for _, d := range deprecations {
			notes = append(notes, templates.DeprecationNote{Deprecation: d})
		}
	}

	if opts.Verbose && len(chain) > 0 {
		fmt.Fprintf(stderr, "🔍 Merged %d extended configurations\n", len(chain))
	}

	switch opts.Output {
	case OutputJSON, "":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", path, err)
		}
		fmt.Fprintln(stdout, string(data))
	case OutputYAML:
		data, err := documentYAML(doc)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", path, err)
		}
		fmt.Fprint(stdout, string(data))
	case OutputSummary:
		renderer, err := templates.NewRenderer()
		if err != nil {
			return err
		}
		summary, err := templates.NewSummary(path, doc, chain, notes)
		if err != nil {
			return err
		}
		// The summary lists deprecations itself.
		return renderer.RenderSummary(stdout, summary)
	default:
		return fmt.Errorf("unknown output format %q (expected json, yaml or summary)", opts.Output)
	}

	for _, note := range notes {
		fmt.Fprintf(stderr, "⚠️  Deprecated: %s\n", note)
	}
	return nil
}

// documentYAML renders doc as block-style YAML, keeping the field order of
// its JSON encoding.
func documentYAML(doc *tsconfig.Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	clearStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// clearStyle drops the flow and quoting styles taken from the JSON input.
// The encoder re-quotes strings that would otherwise read as another type.
func clearStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		clearStyle(child)
	}
}

// printParseHint prints a suggestion for classified parse failures.
func printParseHint(w io.Writer, err error) {
	switch tsconfig.CategoryOf(err) {
	case tsconfig.CategorySyntax:
		if unexpectedCloseBracket(err) {
			fmt.Fprintln(w, "💡 A trailing comma before ']' is accepted with --trailing-commas all")
		}
	case tsconfig.CategoryInvalidEnum:
		fmt.Fprintln(w, "💡 Run 'tsconfig enums' to list the accepted tokens")
	}
	var cycle *extends.CycleError
	if errors.As(err, &cycle) {
		fmt.Fprintln(w, "💡 Break the cycle by removing one of the extends fields")
	}
}

// unexpectedCloseBracket reports whether the JSON decoder stopped at a ']'
// where a value was expected, as it does after a trailing comma.
func unexpectedCloseBracket(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr) && strings.Contains(syntaxErr.Error(), "invalid character ']'")
}
