package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/contextguard/contextguard/internal/templates"
	"github.com/contextguard/contextguard/internal/version"
	"go.yaml.in/yaml/v3"
)

// Field stamped into every generated config.
const (
	GeneratedAtKey   = "generated_at"
	GeneratedAtValue = "auto-init"
)

// MinVersionKey optionally declares the oldest CLI version a template supports.
const MinVersionKey = "min_cli_version"

var (
	// ErrTemplateNotFound is returned when neither the requested nor the
	// fallback template exists. It is always joined with fs.ErrNotExist.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrMalformedTemplate is returned when a template is not a YAML mapping.
	ErrMalformedTemplate = errors.New("malformed template")
)

// Generator renders templates from a single directory.
type Generator struct {
	TemplateDir string
	// CLIVersion is compared against a template's min_cli_version. Non-semver
	// values such as "dev" disable the check.
	CLIVersion string
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Result describes a completed generation.
type Result struct {
	ProjectType  string
	TemplatePath string
	OutputPath   string
	FellBack     bool
	Warnings     []string
}

// New returns a Generator reading templates from templateDir.
func New(templateDir string) *Generator {
	return &Generator{TemplateDir: templateDir}
}

// TemplatePath returns the template file used for projectType. When
// <type>-project.yaml is absent it returns the general template path with
// fellBack set; the fallback itself is not checked here.
func (g *Generator) TemplatePath(projectType string) (path string, fellBack bool) {
	path = filepath.Join(g.TemplateDir, templates.FileName(projectType))
	if _, err := os.Stat(path); err == nil {
		return path, false
	}
	return filepath.Join(g.TemplateDir, templates.FallbackFileName()), true
}

// Generate renders the template for projectType into outputPath, replacing
// any existing file. A confirmation line is written to Stdout.
func (g *Generator) Generate(projectType, outputPath string) (*Result, error) {
	templatePath, fellBack := g.TemplatePath(projectType)

	data, err := os.ReadFile(templatePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrTemplateNotFound, templatePath, err)
		}
		return nil, fmt.Errorf("reading template %s: %w", templatePath, err)
	}

	out, minVersion, err := Render(data)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", templatePath, err)
	}

	result := &Result{
		ProjectType:  projectType,
		TemplatePath: templatePath,
		OutputPath:   outputPath,
		FellBack:     fellBack,
	}

	if w := g.checkMinVersion(minVersion); w != "" {
		result.Warnings = append(result.Warnings, w)
		fmt.Fprintf(g.stderr(), "Warning: %s\n", w)
	}

	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return nil, fmt.Errorf("writing config %s: %w", outputPath, err)
	}

	fmt.Fprintf(g.stdout(), "Generated config for %s at %s\n", projectType, outputPath)
	return result, nil
}

// Render parses a template, stamps generated_at, and returns the serialized
// config together with the template's min_cli_version, if any.
func Render(data []byte) (out []byte, minVersion string, err error) {
	root, doc, err := parseMapping(data)
	if err != nil {
		return nil, "", err
	}

	if v := lookup(root, MinVersionKey); v != nil && v.Kind == yaml.ScalarNode {
		minVersion = v.Value
	}

	setString(root, GeneratedAtKey, GeneratedAtValue)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, "", fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, "", fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), minVersion, nil
}

// decodeDocument decodes a single-document YAML stream. It rejects anything
// a plain unmarshal into a map would reject, such as duplicate keys, and any
// stream holding more than one document.
func decodeDocument(data []byte) (*yaml.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrMalformedTemplate)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedTemplate, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: document is empty", ErrMalformedTemplate)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedTemplate, err)
		}
		return nil, fmt.Errorf("%w: expected a single document", ErrMalformedTemplate)
	}

	var strict interface{}
	if err := doc.Decode(&strict); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTemplate, err)
	}
	return &doc, nil
}

// parseMapping decodes data and returns its top-level mapping node along with
// the enclosing document node.
func parseMapping(data []byte) (*yaml.Node, *yaml.Node, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, nil, err
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("%w: top level must be a mapping, got %s", ErrMalformedTemplate, kindName(root.Kind))
	}
	return root, doc, nil
}

// lookup returns the value node for key in a mapping node.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// setString overwrites key in a mapping node, appending it when absent.
func setString(mapping *yaml.Node, key, value string) {
	v := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			v.LineComment = mapping.Content[i+1].LineComment
			mapping.Content[i+1] = v
			return
		}
	}
	k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	mapping.Content = append(mapping.Content, k, v)
}

func (g *Generator) checkMinVersion(minVersion string) string {
	if minVersion == "" || !version.IsRelease(g.CLIVersion) {
		return ""
	}
	ok, err := version.Satisfies(g.CLIVersion, minVersion)
	if err != nil {
		return fmt.Sprintf("ignoring %s: %v", MinVersionKey, err)
	}
	if !ok {
		return fmt.Sprintf("template requires CLI %s or newer (running %s)", minVersion, g.CLIVersion)
	}
	return ""
}

func (g *Generator) stdout() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Generator) stderr() io.Writer {
	if g.Stderr == nil {
		return os.Stderr
	}
	return g.Stderr
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
