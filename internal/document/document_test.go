package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"toml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("config/app.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("values.YML"))
	assert.Equal(t, FormatJSON, DetectFormat("payload.json"))
	assert.Equal(t, FormatAuto, DetectFormat("-"))
	assert.Equal(t, FormatAuto, DetectFormat("payload.txt"))
}

func TestDecode_JSON(t *testing.T) {
	v, err := Decode([]byte(`{"id": 9007199254740993, "tags": ["a"], "ok": true}`), FormatJSON)
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("9007199254740993"), m["id"])
	assert.Equal(t, []any{"a"}, m["tags"])
	assert.Equal(t, true, m["ok"])
}

func TestDecode_JSONTrailingData(t *testing.T) {
	_, err := Decode([]byte(`{"a": 1} {"b": 2}`), FormatJSON)
	assert.Error(t, err)
}

func TestDecode_JSONInvalid(t *testing.T) {
	_, err := Decode([]byte(`{"a": `), FormatJSON)
	assert.ErrorContains(t, err, "parsing JSON")
}

func TestDecode_YAML(t *testing.T) {
	data := []byte(`
database:
  host: db1
  password: hunter2
ports:
  - 5432
  - 6432
1: numeric key
`)
	v, err := Decode(data, FormatYAML)
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok, "top level should be map[string]any, got %T", v)
	db, ok := m["database"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hunter2", db["password"])
	assert.Equal(t, []any{5432, 6432}, m["ports"])
	assert.Equal(t, "numeric key", m["1"])
}

func TestDecode_YAMLNestedNonStringKeys(t *testing.T) {
	v, err := Decode([]byte("outer:\n  - {1: one, true: yes}\n"), FormatYAML)
	require.NoError(t, err)

	list := v.(map[string]any)["outer"].([]any)
	inner, ok := list[0].(map[string]any)
	require.True(t, ok, "nested mapping should be map[string]any, got %T", list[0])
	assert.Equal(t, "one", inner["1"])
	assert.Equal(t, "yes", inner["true"])
}

func TestDecode_Auto(t *testing.T) {
	v, err := Decode([]byte("  [1, 2]"), FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []any{json.Number("1"), json.Number("2")}, v)

	v, err = Decode([]byte("name: a\n"), FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "a"}, v)
}

func TestDecode_Empty(t *testing.T) {
	for _, f := range []Format{FormatAuto, FormatJSON, FormatYAML} {
		_, err := Decode([]byte(" \n\t"), f)
		assert.ErrorIs(t, err, ErrEmpty, string(f))
	}
}

func TestDecode_ByteOrderMark(t *testing.T) {
	v, err := Decode([]byte("\xef\xbb\xbf{\"a\": \"b\"}"), FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "b"}, v)
}

func TestDecodeMapping(t *testing.T) {
	m, err := DecodeMapping([]byte(`{"token": "t"}`), FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, "t", m["token"])

	_, err = DecodeMapping([]byte(`["a"]`), FormatAuto)
	assert.ErrorIs(t, err, ErrNotMapping)
	assert.ErrorContains(t, err, "sequence")

	_, err = DecodeMapping([]byte(`"just a string"`), FormatJSON)
	assert.ErrorIs(t, err, ErrNotMapping)
}
