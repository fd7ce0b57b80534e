package validation

import "errors"

// Error message templates
const (
	ErrMsgReadSchemasFailed   = "failed to read bundled schemas: %w"
	ErrMsgReadSchemaFailed    = "failed to read schema %s: %w"
	ErrMsgParseSchemaFailed   = "failed to parse schema %s: %w"
	ErrMsgAddSchemaFailed     = "failed to add schema resource %s: %w"
	ErrMsgCompileSchemaFailed = "failed to compile schema %s: %w"
)

var (
	// ErrUnknownSchema is returned when no bundled schema has the requested name
	ErrUnknownSchema = errors.New("unknown schema")

	// ErrSchemaViolation is returned when a document does not conform to its schema
	ErrSchemaViolation = errors.New("schema validation failed")
)
