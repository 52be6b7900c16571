package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLWriter outputs the document as YAML.
type YAMLWriter struct {
	Indent int
}

func (y *YAMLWriter) Write(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	if y.Indent > 0 {
		enc.SetIndent(y.Indent)
	}
	if err := enc.Encode(yamlNumbers(v)); err != nil {
		return fmt.Errorf("writing YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("writing YAML: %w", err)
	}
	return nil
}

// yamlNumbers returns a copy of v with every json.Number replaced by a
// plain YAML number node, keeping the original digits. yaml.v3 would
// otherwise quote them as strings.
func yamlNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(t.String(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: t.String()}
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			out[k] = yamlNumbers(elem)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			out[i] = yamlNumbers(elem)
		}
		return out
	case nil:
		return nil
	}

	// Named map and slice types, such as redact.Schema and redact.Metadata.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = yamlNumbers(iter.Value().Interface())
		}
		return out
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 || rv.IsNil() {
			return v
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = yamlNumbers(rv.Index(i).Interface())
		}
		return out
	default:
		return v
	}
}
