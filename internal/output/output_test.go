package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleDoc() map[string]any {
	return map[string]any{
		"user":  map[string]any{"name": "a", "password": "***REDACTED***"},
		"count": json.Number("12345678901234567890"),
		"port":  json.Number("8080"),
		"ratio": json.Number("1.5"),
		"tags":  []any{"x", "y"},
	}
}

func TestGetWriter(t *testing.T) {
	w, err := GetWriter("json", 2)
	require.NoError(t, err)
	assert.IsType(t, &JSONWriter{}, w)

	w, err = GetWriter("", 0)
	require.NoError(t, err)
	assert.IsType(t, &JSONWriter{}, w)

	w, err = GetWriter("yaml", 4)
	require.NoError(t, err)
	assert.Equal(t, &YAMLWriter{Indent: 4}, w)

	_, err = GetWriter("sarif", 2)
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{Indent: 2}
	require.NoError(t, w.Write(&buf, sampleDoc()))

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed), "output is not valid JSON")
	assert.Equal(t, "***REDACTED***", parsed["user"].(map[string]any)["password"])
	assert.Contains(t, buf.String(), "12345678901234567890")
	assert.Contains(t, buf.String(), "\n  \"tags\"")
}

func TestJSONWriter_Compact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONWriter{}).Write(&buf, map[string]any{"a": "<b>"}))
	assert.Equal(t, "{\"a\":\"<b>\"}\n", buf.String())
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&YAMLWriter{Indent: 2}).Write(&buf, sampleDoc()))

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &parsed), "output is not valid YAML")
	assert.Equal(t, "***REDACTED***", parsed["user"].(map[string]any)["password"])
	assert.Equal(t, []any{"x", "y"}, parsed["tags"])
	assert.Equal(t, 8080, parsed["port"])
	assert.Equal(t, 1.5, parsed["ratio"])
	assert.Contains(t, buf.String(), "count: 12345678901234567890\n")
}

func TestYAMLWriter_NumbersInNamedTypes(t *testing.T) {
	type record map[string]any
	doc := record{
		"limits": []record{{"max": json.Number("10")}},
		"id":     json.Number("7"),
	}

	var buf bytes.Buffer
	require.NoError(t, (&YAMLWriter{Indent: 2}).Write(&buf, doc))

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, 7, parsed["id"])
	assert.Equal(t, 10, parsed["limits"].([]any)[0].(map[string]any)["max"])
	// The input keeps its json.Number values.
	assert.Equal(t, json.Number("7"), doc["id"])
}

func TestWriteTo_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteTo(nil, path, "json", 0, map[string]any{"token": "***REDACTED***"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token": "***REDACTED***"}`, string(data))
}

func TestWriteTo_Stream(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, "", "json", 0, map[string]any{"a": 1}, []any{"b"}))
	assert.Equal(t, "{\"a\":1}\n[\"b\"]\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteTo(&buf, "", "yaml", 2, map[string]any{"a": 1}, map[string]any{"b": 2}))
	assert.Equal(t, "a: 1\n---\nb: 2\n", buf.String())
}

func TestWriteTo_BadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	assert.Error(t, WriteTo(nil, path, "xml", 0, map[string]any{}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no file should be created for an unsupported format")
}
