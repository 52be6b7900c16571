package redact

import (
	"encoding/json"
	"math"
	"reflect"
)

const (
	groupRequired = "required"
	groupOptional = "optional"
)

// Metadata describes one field. Only the "sensitive" and "type" keys are
// read here; anything else is carried along untouched.
type Metadata map[string]any

// Schema maps field names to Metadata. A raw schema may instead hold the two
// groups "required" and "optional", each a field-name to Metadata mapping.
type Schema map[string]any

// FieldIsSensitive reports whether meta marks its field as sensitive, either
// with a truthy "sensitive" flag or with type "password".
func FieldIsSensitive(meta Metadata) bool {
	if truthy(meta["sensitive"]) {
		return true
	}
	t, ok := meta["type"].(string)
	return ok && t == "password"
}

// NormalizeSchema flattens a grouped schema into field name -> Metadata and
// injects a boolean "required" into every entry. A flat schema is returned
// as is.
//
// When a name appears in both groups the optional entry wins.
func NormalizeSchema(raw Schema) Schema {
	if !IsGrouped(raw) {
		return raw
	}
	flat := make(Schema)
	for name, v := range asMapping(raw[groupRequired]) {
		flat[name] = withRequired(metadataOf(v), true)
	}
	for name, v := range asMapping(raw[groupOptional]) {
		flat[name] = withRequired(metadataOf(v), false)
	}
	return flat
}

// IsGrouped reports whether raw holds only "required" and "optional" groups.
func IsGrouped(raw Schema) bool {
	if len(raw) == 0 {
		return false
	}
	for k := range raw {
		if k != groupRequired && k != groupOptional {
			return false
		}
	}
	return true
}

// withRequired copies meta over a record holding only "required", so a
// "required" key already present in meta takes precedence.
func withRequired(meta Metadata, required bool) Metadata {
	out := make(Metadata, len(meta)+1)
	out[groupRequired] = required
	for k, v := range meta {
		out[k] = v
	}
	return out
}

// metadataOf returns v as Metadata, or an empty record when v is not a
// mapping.
func metadataOf(v any) Metadata {
	return Metadata(asMapping(v))
}

func asMapping(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case Metadata:
		return m
	case Schema:
		return m
	default:
		return nil
	}
}

// truthy treats zero and NaN as false for every numeric kind.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case json.Number:
		f, err := t.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	default:
		return true
	}
}
