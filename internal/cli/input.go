package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/veil/internal/config"
	"github.com/dshills/veil/internal/document"
)

const stdinName = "-"

// source is one input document, read but not yet decoded.
type source struct {
	name   string
	data   []byte
	format document.Format
}

// readSources reads every named file, or stdin when names is empty. A name
// of "-" also means stdin.
func readSources(names []string, stdin io.Reader, cfg config.Config) ([]source, error) {
	if len(names) == 0 {
		names = []string{stdinName}
	}
	forced, err := document.ParseFormat(cfg.InputFormat)
	if err != nil {
		return nil, err
	}

	sources := make([]source, 0, len(names))
	readStdin := false
	for _, name := range names {
		var data []byte
		if name == stdinName {
			if readStdin {
				return nil, fmt.Errorf("stdin given more than once")
			}
			readStdin = true
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", displayName(name), err)
		}
		format := forced
		if format == document.FormatAuto {
			format = document.DetectFormat(name)
		}
		sources = append(sources, source{name: name, data: data, format: format})
	}
	return sources, nil
}

// readSource reads exactly one document from name, or stdin when name is
// empty.
func readSource(name string, stdin io.Reader, cfg config.Config) (source, error) {
	var names []string
	if name != "" {
		names = []string{name}
	}
	sources, err := readSources(names, stdin, cfg)
	if err != nil {
		return source{}, err
	}
	return sources[0], nil
}

func displayName(name string) string {
	if name == stdinName {
		return "stdin"
	}
	return name
}

// inputError marks failures caused by the user's documents rather than by
// veil itself.
type inputError struct {
	err error
}

func (e *inputError) Error() string { return e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }
