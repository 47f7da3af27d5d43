// Package validation checks JSON documents against the embedded JSON schemas.
package validation

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// SaveSchema is the schema of a current-version save document.
const SaveSchema = "schemas/save.schema.json"

// SchemaValidator validates JSON data against one compiled schema
type SchemaValidator interface {
	ValidateBytes(data []byte) error
}

// SchemaError lists every violation found in a document.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return "schema validation failed:\n" + strings.Join(e.Violations, "\n")
}

type validator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles the embedded schema at name.
func NewSchemaValidator(name string) (SchemaValidator, error) {
	raw, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", name, err)
	}
	return compile(name, raw)
}

// NewSaveValidator compiles SaveSchema.
func NewSaveValidator() (SchemaValidator, error) {
	return NewSchemaValidator(SaveSchema)
}

func compile(name string, raw []byte) (*validator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", name, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &validator{schema: schema}, nil
}

// ValidateBytes validates a JSON document. Violations are returned as a
// *SchemaError; malformed JSON is reported as a plain error.
func (v *validator) ValidateBytes(data []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := v.schema.Validate(inst); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			se := &SchemaError{}
			collectErrors(verr, &se.Violations)
			return se
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// collectErrors walks the leaves of the error tree; inner nodes only group causes.
func collectErrors(err *jsonschema.ValidationError, out *[]string) {
	if len(err.Causes) == 0 {
		*out = append(*out, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, out)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")

	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	if keywords == "" {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}
	return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
}
