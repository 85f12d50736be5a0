package generator

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/template.schema.json
var templateSchema []byte

const schemaURL = "template.schema.json"

var (
	loadSchema = sync.OnceValues(compileTemplateSchema)
	english    = message.NewPrinter(language.English)
)

// ValidationResult reports whether a template satisfied the schema.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one schema violation, located by JSON pointer.
type ValidationIssue struct {
	Path    string
	Message string
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func compileTemplateSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(templateSchema))
	if err != nil {
		return nil, fmt.Errorf("reading template schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("registering template schema: %w", err)
	}
	return c.Compile(schemaURL)
}

// ValidateTemplate checks template bytes against the embedded schema. Input
// that Generate would refuse to parse is returned as ErrMalformedTemplate;
// schema violations are reported through the result instead.
func ValidateTemplate(data []byte) (*ValidationResult, error) {
	schema, err := loadSchema()
	if err != nil {
		return nil, err
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}
	var value interface{}
	if err := doc.Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTemplate, err)
	}

	// The schema library only accepts values shaped like decoded JSON.
	encoded, err := json.Marshal(normalizeYAML(value))
	if err != nil {
		return nil, fmt.Errorf("encoding template as JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("decoding template JSON: %w", err)
	}

	var verr *jsonschema.ValidationError
	switch err := schema.Validate(inst); {
	case err == nil:
		return &ValidationResult{Valid: true}, nil
	case errors.As(err, &verr):
		return &ValidationResult{Issues: leafIssues(verr, nil)}, nil
	default:
		return nil, err
	}
}

// ValidateTemplateFile is ValidateTemplate over the contents of path.
func ValidateTemplateFile(path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	return ValidateTemplate(data)
}

// leafIssues flattens the cause tree, keeping only the innermost errors.
func leafIssues(verr *jsonschema.ValidationError, acc []ValidationIssue) []ValidationIssue {
	if len(verr.Causes) > 0 {
		for _, cause := range verr.Causes {
			acc = leafIssues(cause, acc)
		}
		return acc
	}

	issue := ValidationIssue{Message: verr.Error()}
	if len(verr.InstanceLocation) > 0 {
		issue.Path = "/" + strings.Join(verr.InstanceLocation, "/")
	}
	if verr.ErrorKind != nil {
		issue.Message = verr.ErrorKind.LocalizedString(english)
	}
	return append(acc, issue)
}

// normalizeYAML rewrites decoded YAML into JSON-compatible values. Mappings
// with non-string keys are re-keyed by their printed form.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, v := range val {
			a[i] = normalizeYAML(v)
		}
		return a
	default:
		return val
	}
}
