package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// exportSchema constrains the viewer document. The export is the module's
// public data contract, so it is validated before being handed out.
const exportSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["nodes", "edges", "stats"],
  "additionalProperties": false,
  "properties": {
    "nodes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "key", "label", "type", "in_degree", "out_degree", "degree"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string", "format": "uuid"},
          "key": {"type": "string"},
          "label": {"type": "string"},
          "type": {"enum": ["article", "url"]},
          "in_degree": {"type": "integer", "minimum": 0},
          "out_degree": {"type": "integer", "minimum": 0},
          "degree": {"type": "integer", "minimum": 0}
        }
      }
    },
    "edges": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["source", "target"],
        "additionalProperties": false,
        "properties": {
          "source": {"type": "string", "format": "uuid"},
          "target": {"type": "string", "format": "uuid"}
        }
      }
    },
    "stats": {
      "type": "object",
      "required": ["articles", "urls", "nodes", "edges"],
      "additionalProperties": false,
      "properties": {
        "articles": {"type": "integer", "minimum": 0},
        "urls": {"type": "integer", "minimum": 0},
        "nodes": {"type": "integer", "minimum": 0},
        "edges": {"type": "integer", "minimum": 0}
      }
    }
  }
}`

var compiledExportSchema = mustCompileExportSchema()

func mustCompileExportSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("graph-export.json", strings.NewReader(exportSchema)); err != nil {
		panic(fmt.Sprintf("graph: add export schema: %v", err))
	}
	schema, err := compiler.Compile("graph-export.json")
	if err != nil {
		panic(fmt.Sprintf("graph: compile export schema: %v", err))
	}
	return schema
}

// MarshalExport serializes the document and validates the result against the
// export schema before returning it.
func MarshalExport(doc Document) ([]byte, error) {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("graph: encode export: %w", err)
	}
	if err := ValidateExport(encoded); err != nil {
		return nil, err
	}
	return encoded, nil
}

// ValidateExport checks serialized export JSON against the schema.
func ValidateExport(encoded []byte) error {
	var payload any
	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return fmt.Errorf("graph: decode export: %w", err)
	}
	if err := compiledExportSchema.Validate(payload); err != nil {
		return fmt.Errorf("graph: export schema validation: %w", err)
	}
	return nil
}
