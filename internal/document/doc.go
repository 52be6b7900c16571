// Package document decodes JSON and YAML input into the plain value shapes
// the redactor walks: map[string]any, []any and scalars.
//
// JSON numbers are kept as [encoding/json.Number] so large integers are not
// rounded through float64. YAML mappings with non-string keys are converted
// to map[string]any with the keys formatted as strings.
package document
