package config

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/daybook-cli/daybook/internal/utils"
)

// configSchema is the embedded settings schema.
const configSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Daybook Settings",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "work_dir": { "type": "string", "minLength": 1 },
    "slack": {
      "type": "object",
      "additionalProperties": false,
      "required": ["token", "channel"],
      "properties": {
        "token": { "type": "string", "minLength": 1 },
        "channel": { "type": "string", "minLength": 1 },
        "rewrites": {
          "type": "array",
          "items": {
            "type": "object",
            "additionalProperties": false,
            "required": ["from", "to"],
            "properties": {
              "from": { "type": "string" },
              "to": { "type": "string" }
            }
          }
        }
      }
    },
    "log_level": { "type": "string", "enum": ["debug", "info", "warn", "error", "fatal"] },
    "log_format": { "type": "string", "enum": ["text", "json", "logfmt"] },
    "log_timestamps": { "type": "boolean" }
  }
}`

// ValidationError reports a settings document that violates the schema.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid config: %v", e.Err)
	}
	return fmt.Sprintf("invalid config at %s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// validateSchema checks a raw settings document against the bundled schema.
func validateSchema(data []byte) error {
	schema, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return mapSchemaError(err)
	}
	return nil
}

// mapSchemaError converts a jsonschema ValidationError into a ValidationError
// carrying the failing property path in dot notation.
func mapSchemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &ValidationError{Err: err}
	}

	var result error
	collectSchemaErrors(ve, &result)
	if result != nil {
		return result
	}
	return &ValidationError{Err: err}
}

// collectSchemaErrors walks the cause tree and keeps the first leaf error.
func collectSchemaErrors(err *jsonschema.ValidationError, result *error) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		*result = &ValidationError{
			Path: utils.JSONPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		}
		return
	}

	for _, cause := range err.Causes {
		if *result == nil {
			collectSchemaErrors(cause, result)
		}
	}
}
