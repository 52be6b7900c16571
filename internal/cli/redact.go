package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dshills/veil/internal/config"
	"github.com/dshills/veil/internal/document"
	"github.com/dshills/veil/internal/output"
	"github.com/dshills/veil/internal/redact"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var redactCmd = &cobra.Command{
	Use:   "redact [file...]",
	Short: "Redact sensitive keys anywhere in JSON or YAML documents",
	Long: "Redact walks each document (or stdin) and replaces the value of every key whose name " +
		"looks sensitive with " + redact.Placeholder + ". Nesting deeper than the redaction " +
		"depth bound is passed through unchanged.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRedact(cmd, args)
	},
}

func runRedact(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	warnLiteralPatterns(logger, cfg.ExtraPatterns)

	sources, err := readSources(args, cmd.InOrStdin(), cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		exitCode = ExitInputError
		return nil
	}

	docs, err := redactSources(cmd.Context(), logger, sources, cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		exitCode = codeFor(err)
		return nil
	}

	if err := output.WriteTo(cmd.OutOrStdout(), flagOut, cfg.Format, cfg.Indent, docs...); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
	}
	return nil
}

// redactSources decodes and redacts every source, at most cfg.Concurrency at
// a time. Results keep the order of sources.
func redactSources(ctx context.Context, logger *slog.Logger, sources []source, cfg config.Config) ([]any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	docs := make([]any, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := document.Decode(src.data, src.format)
			if err != nil {
				return &inputError{fmt.Errorf("%s: %w", displayName(src.name), err)}
			}
			docs[i] = redact.Tree(v, cfg.ExtraPatterns...)
			logger.Debug("redacted document", "source", displayName(src.name), "format", string(src.format), "bytes", len(src.data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func warnLiteralPatterns(logger *slog.Logger, patterns []string) {
	for _, p := range patterns {
		if err := redact.ValidExtra(p); err != nil {
			logger.Warn("extra pattern is not a valid regular expression, matching it literally", "pattern", p, "err", err)
		}
	}
}

func codeFor(err error) int {
	var ie *inputError
	if errors.As(err, &ie) {
		return ExitInputError
	}
	return ExitRuntimeError
}

func init() {
	addDocumentFlags(redactCmd)
	addExtraFlag(redactCmd)
}
