package redact

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFields_SchemaPrecedence(t *testing.T) {
	schema := Schema{"pwd": map[string]any{"sensitive": true}}
	got := Fields(map[string]any{"pwd": "hunter2"}, schema)

	want := map[string]any{"pwd": Placeholder}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFields(t *testing.T) {
	schema := Schema{
		"pin":      map[string]any{"type": "password"},
		"region":   map[string]any{"type": "string"},
		"apiKey":   map[string]any{"sensitive": false},
		"settings": map[string]any{},
	}
	input := map[string]any{
		"pin":      "1234",
		"region":   "eu-west-1",
		"apiKey":   "k",
		"token":    "t",
		"settings": map[string]any{"password": "nested"},
		"count":    float64(2),
	}
	want := map[string]any{
		"pin":      Placeholder,
		"region":   "eu-west-1",
		"apiKey":   Placeholder,
		"token":    Placeholder,
		"settings": map[string]any{"password": "nested"},
		"count":    float64(2),
	}
	if diff := cmp.Diff(want, Fields(input, schema)); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFields_Empty(t *testing.T) {
	for _, in := range []map[string]any{nil, {}} {
		got := Fields(in, Schema{"a": map[string]any{"sensitive": true}})
		if got == nil {
			t.Fatal("Fields returned nil")
		}
		if len(got) != 0 {
			t.Errorf("Fields(%v) = %v, want empty", in, got)
		}
	}
}

func TestFields_NilSchema(t *testing.T) {
	got := Fields(map[string]any{"secret": "s", "name": "n"}, nil)
	want := map[string]any{"secret": Placeholder, "name": "n"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFields_NonMappingMetadata(t *testing.T) {
	schema := Schema{"name": "sensitive", "id": []any{true}}
	got := Fields(map[string]any{"name": "n", "id": "1"}, schema)
	want := map[string]any{"name": "n", "id": "1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFields_NormalizedSchema(t *testing.T) {
	schema := NormalizeSchema(Schema{
		"required": map[string]any{"username": map[string]any{}},
		"optional": map[string]any{"otp": map[string]any{"sensitive": true}},
	})
	got := Fields(map[string]any{"username": "u", "otp": "000000"}, schema)
	want := map[string]any{"username": "u", "otp": Placeholder}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFields_DoesNotMutate(t *testing.T) {
	input := map[string]any{"password": "p"}
	_ = Fields(input, nil)
	if input["password"] != "p" {
		t.Error("input mutated")
	}
}
