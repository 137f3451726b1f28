// Package jsonutil bridges JSON fixtures and CSV tables, and validates
// JSON documents against JSON Schema.
package jsonutil

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"

	"github.com/testkit-dev/testkit/packages/csv"
)

// TableFromJSON converts a JSON array of flat objects into a table.
// Column order follows first appearance across the array; non-string
// values are rendered with their JSON representation (numbers stay
// unquoted, nested values stay as raw JSON). A JSON object is treated as
// a single-row array.
func TableFromJSON(data []byte) (*csv.Table, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid json")
	}

	parsed := gjson.ParseBytes(data)
	if parsed.IsObject() {
		parsed = gjson.Parse("[" + parsed.Raw + "]")
	}
	if !parsed.IsArray() {
		return nil, fmt.Errorf("expected a json array of objects, got %s", parsed.Type)
	}

	table := &csv.Table{}
	seen := make(map[string]bool)
	var convErr error

	parsed.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			convErr = fmt.Errorf("expected array elements to be objects, got %s", item.Type)
			return false
		}
		row := csv.Row{}
		item.ForEach(func(key, value gjson.Result) bool {
			col := key.String()
			if !seen[col] {
				seen[col] = true
				table.Columns = append(table.Columns, col)
			}
			row[col] = cellValue(value)
			return true
		})
		table.Append(row)
		return true
	})
	if convErr != nil {
		return nil, convErr
	}
	return table, nil
}

// cellValue renders a JSON value as a CSV cell. Strings keep their
// content; null becomes ""; everything else keeps its raw JSON text.
func cellValue(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.String()
	case gjson.Null:
		return ""
	default:
		return v.Raw
	}
}

// TableToJSON renders a table as an indented JSON array of string-valued
// objects, preserving column order within each object.
func TableToJSON(table *csv.Table) ([]byte, error) {
	out := make([]json.RawMessage, 0, table.Len())
	for _, row := range table.Rows {
		// Build the object by hand so keys keep column order; the
		// stdlib marshals maps with sorted keys.
		obj := []byte{'{'}
		for i, col := range table.Columns {
			if i > 0 {
				obj = append(obj, ',')
			}
			key, _ := json.Marshal(col)
			val, _ := json.Marshal(row[col])
			obj = append(obj, key...)
			obj = append(obj, ':')
			obj = append(obj, val...)
		}
		obj = append(obj, '}')
		out = append(out, obj)
	}
	return json.MarshalIndent(out, "", "  ")
}

// SchemaResult reports the outcome of a schema validation with every
// violation accumulated.
type SchemaResult struct {
	Valid  bool
	Errors []string
}

// ValidateSchema checks a JSON document against a JSON Schema. Schema or
// document problems surface through the error return; violations land in
// the result.
func ValidateSchema(document, schema []byte) (*SchemaResult, error) {
	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	out := &SchemaResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, desc.String())
	}
	return out, nil
}
