package cli

import (
	"fmt"

	"github.com/dshills/veil/internal/config"
	"github.com/dshills/veil/internal/document"
	"github.com/dshills/veil/internal/output"
	"github.com/dshills/veil/internal/redact"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Work with field schemas",
}

var schemaNormalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Flatten a grouped (required/optional) schema",
	Long: "Normalize prints the schema as a flat mapping of field name to metadata. A schema " +
		"holding only \"required\" and \"optional\" groups is flattened with a required flag " +
		"added to every field; any other schema is printed unchanged.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSchemaNormalize(cmd, args)
	},
}

func runSchemaNormalize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	src, err := readSource(firstArg(args), cmd.InOrStdin(), cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		exitCode = ExitInputError
		return nil
	}
	raw, err := document.DecodeMapping(src.data, src.format)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s: %v\n", displayName(src.name), err)
		exitCode = ExitInputError
		return nil
	}

	shape := "flat"
	if redact.IsGrouped(raw) {
		shape = "grouped"
	}
	logger.Debug("normalizing schema", "source", displayName(src.name), "shape", shape)

	if err := output.WriteTo(cmd.OutOrStdout(), flagOut, cfg.Format, cfg.Indent, redact.NormalizeSchema(raw)); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
	}
	return nil
}

func init() {
	addDocumentFlags(schemaNormalizeCmd)
	schemaCmd.AddCommand(schemaNormalizeCmd)
}
