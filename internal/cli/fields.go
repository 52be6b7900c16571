package cli

import (
	"fmt"

	"github.com/dshills/veil/internal/config"
	"github.com/dshills/veil/internal/document"
	"github.com/dshills/veil/internal/output"
	"github.com/dshills/veil/internal/redact"
	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields [file]",
	Short: "Redact a flat set of named input fields using a field schema",
	Long: "Fields treats the document as a mapping of field names to values and redacts each " +
		"top-level field the schema marks sensitive (sensitive: true or type: password) or whose " +
		"name looks sensitive. Nested values are not inspected.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFields(cmd, args)
	},
}

func runFields(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if len(cfg.ExtraPatterns) > 0 {
		logger.Debug("extra patterns do not apply to field redaction", "patterns", cfg.ExtraPatterns)
	}

	var schema redact.Schema
	if cfg.SchemaFile != "" {
		schema, err = loadSchema(cfg.SchemaFile, cfg)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exitCode = ExitInputError
			return nil
		}
		logger.Debug("loaded schema", "path", cfg.SchemaFile, "fields", len(schema))
	}

	src, err := readSource(firstArg(args), cmd.InOrStdin(), cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		exitCode = ExitInputError
		return nil
	}
	input, err := document.DecodeMapping(src.data, src.format)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s: %v\n", displayName(src.name), err)
		exitCode = ExitInputError
		return nil
	}

	if err := output.WriteTo(cmd.OutOrStdout(), flagOut, cfg.Format, cfg.Indent, redact.Fields(input, schema)); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
	}
	return nil
}

// loadSchema reads a schema file and flattens it if it is grouped.
func loadSchema(path string, cfg config.Config) (redact.Schema, error) {
	if path == stdinName {
		return nil, fmt.Errorf("schema cannot be read from stdin")
	}
	src, err := readSource(path, nil, cfg)
	if err != nil {
		return nil, err
	}
	raw, err := document.DecodeMapping(src.data, src.format)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	return redact.NormalizeSchema(raw), nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func init() {
	addDocumentFlags(fieldsCmd)
	fieldsCmd.Flags().StringVarP(&flagSchema, "schema", "s", "", "Field schema file (JSON or YAML, flat or grouped)")
}
