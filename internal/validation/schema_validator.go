package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Schema names bundled with the service
const (
	SchemaFeatureFlags = "feature_flags"
	SchemaPlayerUpdate = "player_update"
)

// SchemaValidator validates JSON documents against the bundled schemas
type SchemaValidator interface {
	// ValidateBytes checks raw JSON against the named schema
	ValidateBytes(data []byte, schemaName string) error
	// Decode validates raw JSON and then unmarshals it into dst
	Decode(data []byte, schemaName string, dst any) error
	// Has reports whether a schema with the given name is bundled
	Has(schemaName string) bool
}

type validator struct {
	schemas map[string]*jsonschema.Schema
}

// NewSchemaValidator compiles every bundled schema up front, so the returned
// validator is read-only and safe for concurrent use
func NewSchemaValidator() (SchemaValidator, error) {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSchemasFailed, err)
	}

	compiler := jsonschema.NewCompiler()
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))

		raw, err := schemaFS.ReadFile(path.Join("schemas", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf(ErrMsgReadSchemaFailed, name, err)
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf(ErrMsgParseSchemaFailed, name, err)
		}

		if err := compiler.AddResource(schemaURL(name), doc); err != nil {
			return nil, fmt.Errorf(ErrMsgAddSchemaFailed, name, err)
		}
		names = append(names, name)
	}

	v := &validator{schemas: make(map[string]*jsonschema.Schema, len(names))}
	for _, name := range names {
		schema, err := compiler.Compile(schemaURL(name))
		if err != nil {
			return nil, fmt.Errorf(ErrMsgCompileSchemaFailed, name, err)
		}
		v.schemas[name] = schema
	}

	return v, nil
}

func schemaURL(name string) string {
	return "schema://ace-arena/" + name + ".json"
}

// Has reports whether a schema with the given name is bundled
func (v *validator) Has(schemaName string) bool {
	_, ok := v.schemas[schemaName]
	return ok
}

// ValidateBytes validates JSON data bytes against a bundled schema
func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	schema, ok := v.schemas[schemaName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, schemaName)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// Decode validates data and unmarshals it into dst only when it conforms
func (v *validator) Decode(data []byte, schemaName string, dst any) error {
	if err := v.ValidateBytes(data, schemaName); err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", schemaName, err)
	}
	return nil
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var msgs []string
		collectErrors(validationErr, &msgs)
		return fmt.Errorf("%w:\n%s", ErrSchemaViolation, strings.Join(msgs, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors walks the cause tree, reporting leaves only
func collectErrors(err *jsonschema.ValidationError, msgs *[]string) {
	if len(err.Causes) == 0 {
		*msgs = append(*msgs, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, msgs)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")
	if len(err.InstanceLocation) == 0 {
		location = "(root)"
	}

	if err.ErrorKind != nil {
		if keywords := err.ErrorKind.KeywordPath(); len(keywords) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(keywords, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
