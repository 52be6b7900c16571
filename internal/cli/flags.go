package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// Shared flags
var (
	flagFormat      string
	flagInputFormat string
	flagIndent      int
	flagExtra       []string
	flagSchema      string
	flagOut         string
	flagLogLevel    string
)

func addDocumentFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (json, yaml)")
	cmd.Flags().StringVar(&flagInputFormat, "input-format", "", "Input format (auto, json, yaml)")
	cmd.Flags().IntVar(&flagIndent, "indent", -1, "Spaces per indent level (0 for compact JSON)")
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file path (default: stdout)")
}

func addExtraFlag(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&flagExtra, "extra", "e", nil, "Additional sensitive name patterns (case-insensitive regular expressions)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagInputFormat != "" {
		m["inputFormat"] = flagInputFormat
	}
	if flagIndent >= 0 {
		m["indent"] = strconv.Itoa(flagIndent)
	}
	if len(flagExtra) > 0 {
		m["extraPatterns"] = strings.Join(flagExtra, ",")
	}
	if flagSchema != "" {
		m["schemaFile"] = flagSchema
	}
	if flagLogLevel != "" {
		m["logLevel"] = flagLogLevel
	}
	return m
}
