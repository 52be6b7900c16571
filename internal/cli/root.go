package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitSensitive    = 1
	ExitUsageError   = 2
	ExitInputError   = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:           "veil",
	Short:         "Mask secrets in structured data",
	Long:          "Veil replaces credentials, tokens and other sensitive values in JSON and YAML documents with a fixed placeholder before they are displayed or logged.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Run executes the root command and returns an exit code.
func Run() int {
	return execute(rootCmd)
}

func execute(cmd *cobra.Command) int {
	exitCode = ExitSuccess
	if err := cmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}
	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print veil version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "veil version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(redactCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
