package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// JSONWriter outputs the document as JSON.
type JSONWriter struct {
	Indent int
}

func (j *JSONWriter) Write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	// Keep <, > and & literal.
	enc.SetEscapeHTML(false)
	if j.Indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", j.Indent))
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}
