package redact

// Fields redacts a flat set of named inputs against schema. A field is
// sensitive when its schema entry says so (see FieldIsSensitive) or when
// its name matches a built-in pattern. Sensitive values become Placeholder;
// the rest are returned unchanged, without descending into them.
//
// The result is never nil.
func Fields(input map[string]any, schema Schema) map[string]any {
	out := make(map[string]any, len(input))
	for name, value := range input {
		if FieldIsSensitive(metadataOf(schema[name])) || IsSensitiveName(name) {
			out[name] = Placeholder
			continue
		}
		out[name] = value
	}
	return out
}
