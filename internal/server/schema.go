package server

import (
	_ "embed"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed request_schema.json
var requestSchemaJSON string

var requestSchema = jsonschema.MustCompileString("request_schema.json", requestSchemaJSON)

// validateRequestBytes checks a raw generate payload against the request
// schema. Style names are not constrained here: the formatter owns that
// decision and reports unknown styles itself.
func validateRequestBytes(body []byte) error {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("invalid JSON payload: %w", err)
	}
	if err := requestSchema.Validate(v); err != nil {
		return fmt.Errorf("request schema validation failed: %w", err)
	}
	return nil
}
