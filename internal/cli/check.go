package cli

import (
	"fmt"

	"github.com/dshills/veil/internal/config"
	"github.com/dshills/veil/internal/redact"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <name>...",
	Short: "Report whether field names would be redacted",
	Long:  "Check classifies each field name. It exits with status 1 when any name is sensitive.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args)
	},
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	warnLiteralPatterns(logger, cfg.ExtraPatterns)

	c := redact.NewClassifier(cfg.ExtraPatterns...)
	w := cmd.OutOrStdout()
	for _, name := range args {
		verdict := "clear"
		if c.Match(name) {
			verdict = "sensitive"
			exitCode = ExitSensitive
		}
		fmt.Fprintf(w, "%s\t%s\n", name, verdict)
	}
	return nil
}

func init() {
	addExtraFlag(checkCmd)
}
