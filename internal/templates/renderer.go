// Package templates renders human-readable views of parsed configurations
// from embedded text templates.
package templates

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/nauticalab/tsconfig-engine/pkg/tsconfig"
)

// Embed all templates at compile time
//
//go:embed *.tmpl
var templates embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
}

// Renderer handles template operations
type Renderer struct {
	cache map[string]*template.Template
}

// NewRenderer creates a new template renderer with every embedded template
// parsed up front.
func NewRenderer() (*Renderer, error) {
	entries, err := templates.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	r := &Renderer{cache: make(map[string]*template.Template, len(entries))}
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".tmpl")

		content, err := templates.ReadFile(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", name, err)
		}

		tmpl, err := template.New(name).Funcs(funcs).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.cache[name] = tmpl
	}
	return r, nil
}

// RenderTemplate executes the named template with data into w.
func (r *Renderer) RenderTemplate(w io.Writer, templateName string, data any) error {
	tmpl, ok := r.cache[templateName]
	if !ok {
		return fmt.Errorf("unknown template %s", templateName)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render template %s: %w", templateName, err)
	}
	return nil
}

// RenderSummary renders the "summary" template for s.
func (r *Renderer) RenderSummary(w io.Writer, s *Summary) error {
	return r.RenderTemplate(w, "summary", s)
}

// Summary is the view of a document rendered by the summary template.
type Summary struct {
	Path            string
	Chain           []string
	Files           []string
	Include         []string
	Exclude         []string
	References      string
	TypeAcquisition string
	Options         []Option
	Deprecations    []string
}

// Option is one set compiler option.
type Option struct {
	Name  string
	Value string
}

// DeprecationNote is a deprecation as shown in a summary.
type DeprecationNote struct {
	File string
	tsconfig.Deprecation
}

func (d DeprecationNote) String() string {
	if d.File == "" {
		return fmt.Sprintf("%s: %s", d.Field, d.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", d.Field, d.Message, d.File)
}

// NewSummary builds a Summary of doc, the configuration read from path.
// chain lists the files doc was merged from, excluding path itself.
func NewSummary(path string, doc *tsconfig.Document, chain []string, deprecations []DeprecationNote) (*Summary, error) {
	s := &Summary{Path: path, Chain: chain}
	for _, d := range deprecations {
		s.Deprecations = append(s.Deprecations, d.String())
	}
	if doc == nil {
		return s, nil
	}

	s.Files = doc.Files
	s.Include = doc.Include
	s.Exclude = doc.Exclude
	s.References = describeReferences(doc.References)
	s.TypeAcquisition = describeTypeAcquisition(doc.TypeAcquisition)

	options, err := setOptions(doc.CompilerOptions)
	if err != nil {
		return nil, err
	}
	s.Options = options
	return s, nil
}

func describeReferences(refs *tsconfig.References) string {
	if refs == nil {
		return ""
	}
	if flag, ok := refs.Flag(); ok {
		return fmt.Sprintf("%t", flag)
	}
	list, _ := refs.List()
	paths := make([]string, len(list))
	for i, ref := range list {
		paths[i] = ref.Path
	}
	return fmt.Sprintf("[%s]", strings.Join(paths, ", "))
}

func describeTypeAcquisition(ta *tsconfig.TypeAcquisition) string {
	if ta == nil {
		return ""
	}
	if flag, ok := ta.Flag(); ok {
		return fmt.Sprintf("%t", flag)
	}
	opts, _ := ta.Options()
	desc := fmt.Sprintf("enable=%t", opts.Enable)
	if len(opts.Include) > 0 {
		desc += " include=" + strings.Join(opts.Include, ",")
	}
	if len(opts.Exclude) > 0 {
		desc += " exclude=" + strings.Join(opts.Exclude, ",")
	}
	return desc
}

// setOptions lists the set compiler options by their JSON names, sorted.
func setOptions(opts *tsconfig.CompilerOptions) ([]Option, error) {
	if opts == nil {
		return nil, nil
	}

	data, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode compiler options: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode compiler options: %w", err)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	options := make([]Option, len(names))
	for i, name := range names {
		options[i] = Option{Name: name, Value: string(fields[name])}
	}
	return options, nil
}
