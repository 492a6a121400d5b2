package gtasks

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// exportSchema is the embedded JSON Schema for a Takeout tasks export.
// It constrains shape only: content-level anomalies (duplicate IDs,
// unknown statuses, unparseable dates) are the Validator's business and
// must not be fatal here.
const exportSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Google Tasks Takeout Export",
  "type": "object",
  "required": ["items"],
  "properties": {
    "kind": { "type": "string" },
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "kind": { "type": "string" },
          "id": { "type": "string" },
          "title": { "type": "string" },
          "updated": { "type": "string" },
          "items": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["id"],
              "properties": {
                "kind": { "type": "string" },
                "id": { "type": "string" },
                "title": { "type": "string" },
                "notes": { "type": "string" },
                "status": { "type": "string" },
                "due": { "type": "string" },
                "completed": { "type": "string" },
                "updated": { "type": "string" },
                "parent": { "type": "string" },
                "position": { "type": "string" },
                "deleted": { "type": "boolean" },
                "hidden": { "type": "boolean" }
              }
            }
          }
        }
      }
    }
  }
}`

var (
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
	compileOnce       sync.Once
)

func compiledExportSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("takeout-export.schema.json", strings.NewReader(exportSchema)); err != nil {
			compiledSchemaErr = err
			return
		}
		compiledSchema, compiledSchemaErr = compiler.Compile("takeout-export.schema.json")
	})
	return compiledSchema, compiledSchemaErr
}

// CheckStructure validates raw export JSON against the embedded schema.
// A violation is returned as *StructuralError with the JSON path of the
// first failing location. When the schema cannot be compiled it falls
// back to minimal hand-rolled shape checks.
func CheckStructure(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return &StructuralError{Path: "$", Err: err}
	}

	schema, err := compiledExportSchema()
	if err != nil {
		return checkStructureMinimal(doc)
	}

	if err := schema.Validate(doc); err != nil {
		return mapSchemaError(err)
	}
	return nil
}

// mapSchemaError converts a jsonschema ValidationError into a
// StructuralError pointing at the deepest failing location.
func mapSchemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &StructuralError{Path: "$", Err: err}
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	path := "$"
	if leaf.InstanceLocation != "" {
		path = leaf.InstanceLocation
	}
	return &StructuralError{Path: path, Err: fmt.Errorf("%s", leaf.Message)}
}

// checkStructureMinimal performs minimal shape checks without JSON Schema.
func checkStructureMinimal(doc interface{}) error {
	obj, ok := doc.(map[string]interface{})
	if !ok {
		return &StructuralError{Path: "$", Err: fmt.Errorf("expected object, got %T", doc)}
	}

	rawItems, ok := obj["items"]
	if !ok {
		return &StructuralError{Path: "/items", Err: fmt.Errorf("missing required field")}
	}
	lists, ok := rawItems.([]interface{})
	if !ok {
		return &StructuralError{Path: "/items", Err: fmt.Errorf("expected array, got %T", rawItems)}
	}

	for i, rawList := range lists {
		listPath := fmt.Sprintf("/items/%d", i)
		list, ok := rawList.(map[string]interface{})
		if !ok {
			return &StructuralError{Path: listPath, Err: fmt.Errorf("expected object, got %T", rawList)}
		}
		if _, ok := list["id"].(string); !ok {
			return &StructuralError{Path: listPath + "/id", Err: fmt.Errorf("missing or non-string id")}
		}
		rawTasks, ok := list["items"]
		if !ok {
			continue
		}
		tasks, ok := rawTasks.([]interface{})
		if !ok {
			return &StructuralError{Path: listPath + "/items", Err: fmt.Errorf("expected array, got %T", rawTasks)}
		}
		for j, rawTask := range tasks {
			taskPath := fmt.Sprintf("%s/items/%d", listPath, j)
			task, ok := rawTask.(map[string]interface{})
			if !ok {
				return &StructuralError{Path: taskPath, Err: fmt.Errorf("expected object, got %T", rawTask)}
			}
			if _, ok := task["id"].(string); !ok {
				return &StructuralError{Path: taskPath + "/id", Err: fmt.Errorf("missing or non-string id")}
			}
		}
	}
	return nil
}
