package output

import (
	"fmt"
	"io"
	"os"
)

// Writer writes a document in a specific format.
type Writer interface {
	Write(w io.Writer, v any) error
}

// GetWriter returns a writer for the specified format. indent is the number
// of spaces per nesting level; zero selects compact JSON and the YAML
// encoder's default.
func GetWriter(format string, indent int) (Writer, error) {
	switch format {
	case "json", "":
		return &JSONWriter{Indent: indent}, nil
	case "yaml", "yml":
		return &YAMLWriter{Indent: indent}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteTo writes docs to outPath, or to stdout when outPath is empty.
// Multiple JSON documents form a stream of values; multiple YAML documents
// are separated by "---".
func WriteTo(stdout io.Writer, outPath, format string, indent int, docs ...any) error {
	writer, err := GetWriter(format, indent)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = stdout
	}

	_, isYAML := writer.(*YAMLWriter)
	for i, doc := range docs {
		if i > 0 && isYAML {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return fmt.Errorf("writing YAML: %w", err)
			}
		}
		if err := writer.Write(w, doc); err != nil {
			return err
		}
	}
	return nil
}
