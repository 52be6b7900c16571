package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names an input encoding.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrEmpty is returned for input that holds nothing but whitespace.
	ErrEmpty = errors.New("empty document")
	// ErrNotMapping is returned by DecodeMapping when the top-level value
	// is not a mapping.
	ErrNotMapping = errors.New("document is not a mapping")
)

// ParseFormat validates a format name. The empty string means auto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported input format: %s", s)
	}
}

// DetectFormat picks a format from a file extension. Unknown extensions,
// including none at all, resolve to auto.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatAuto
	}
}

// Decode parses data in the given format.
func Decode(data []byte, f Format) (any, error) {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))
	if len(trimmed) == 0 {
		return nil, ErrEmpty
	}
	if f == FormatAuto || f == "" {
		f = sniff(trimmed)
	}
	switch f {
	case FormatJSON:
		return decodeJSON(trimmed)
	case FormatYAML:
		return decodeYAML(trimmed)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", f)
	}
}

// DecodeMapping parses data and requires a top-level mapping.
func DecodeMapping(data []byte, f Format) (map[string]any, error) {
	v, err := Decode(data, f)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w (got %s)", ErrNotMapping, kind(v))
	}
	return m, nil
}

func sniff(data []byte) Format {
	switch data[0] {
	case '{', '[':
		return FormatJSON
	default:
		return FormatYAML
	}
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("parsing JSON: unexpected data after top-level value")
	}
	return v, nil
}

func decodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return stringKeys(v), nil
}

// stringKeys rewrites map[any]any nodes, which yaml.v3 produces for
// mappings with non-string keys, into map[string]any.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, elem := range t {
			t[k] = stringKeys(elem)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			out[fmt.Sprint(k)] = stringKeys(elem)
		}
		return out
	case []any:
		for i, elem := range t {
			t[i] = stringKeys(elem)
		}
		return t
	default:
		return v
	}
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "sequence"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, int, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
