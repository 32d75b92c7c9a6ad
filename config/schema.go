package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for the hook configuration
// document by reflecting the Config struct. The committed embedded schema in
// the schema package is produced from this via tools/schema-generator.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Repo and hook blocks are closed objects; the runner rejects
		// unknown hook fields.
		AllowAdditionalProperties: false,
		// Expand struct references instead of using $ref for a flatter schema.
		ExpandedStruct: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	schema := r.Reflect(&Config{})
	schema.Title = "Pre-commit Hook Configuration"
	schema.Description = "Schema for .pre-commit-config.yaml hook registration documents."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	// The document object stays open so unknown top-level blocks (ci, ...)
	// keep validating and round-tripping. Repo and hook blocks remain
	// closed.
	schema.AdditionalProperties = jsonschema.TrueSchema

	return json.MarshalIndent(schema, "", "  ")
}
