package tabulator

import (
	"github.com/tidwall/gjson"
)

// Record is a single JSON object from the source, with its fields in document order.
type Record struct {
	fields []string
	values map[string]any
}

// Fields returns the field names in the order they appear in the source document.
func (r Record) Fields() []string {
	return r.fields
}

// Get returns the value for a field. Missing fields return (nil, false).
func (r Record) Get(field string) (any, bool) {
	v, ok := r.values[field]

	return v, ok
}

// Parse decodes a JSON document into a list of records. The document must be a non-empty
// JSON array and the first element must be an object with at least one field, since the
// column headers are taken from it. Elements after the first are not validated: anything
// that is not an object is treated as a record with no fields.
func Parse(body []byte) ([]Record, error) {
	if !gjson.ValidBytes(body) {
		return nil, parseError("invalid JSON in response (%v bytes)", len(body))
	}

	document := gjson.ParseBytes(body)
	if !document.IsArray() {
		return nil, shapeError("expected a JSON array, got %v", describe(document))
	}

	items := document.Array()
	if len(items) == 0 {
		return nil, shapeError("empty JSON array")
	}

	if !items[0].IsObject() {
		return nil, shapeError("expected a JSON object as the first record, got %v", describe(items[0]))
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, makeRecord(item))
	}

	if len(records[0].fields) == 0 {
		return nil, shapeError("first record has no fields")
	}

	return records, nil
}

func makeRecord(item gjson.Result) Record {
	record := Record{
		fields: []string{},
		values: map[string]any{},
	}

	if !item.IsObject() {
		return record
	}

	item.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if _, ok := record.values[k]; !ok {
			record.fields = append(record.fields, k)
		}

		record.values[k] = cell(value)

		return true
	})

	return record
}

// cell converts a JSON value to a spreadsheet cell value. Nested objects and arrays are
// kept as their JSON text.
func cell(v gjson.Result) any {
	switch v.Type {
	case gjson.Null:
		return nil

	case gjson.False:
		return false

	case gjson.True:
		return true

	case gjson.Number:
		return v.Num

	case gjson.String:
		return v.Str

	default:
		return v.Raw
	}
}

func describe(v gjson.Result) string {
	switch {
	case v.IsObject():
		return "object"

	case v.IsArray():
		return "array"

	case v.Type == gjson.String:
		return "string"

	case v.Type == gjson.Number:
		return "number"

	case v.Type == gjson.True, v.Type == gjson.False:
		return "boolean"

	case v.Type == gjson.Null:
		return "null"

	default:
		return "unknown"
	}
}
