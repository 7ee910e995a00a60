// Package batch classifies many requirement rows, optionally in parallel.
package batch

import (
	"context"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"earslint/internal/analyzer"
	"earslint/internal/core"
	"earslint/pkg/schema"
)

// Options control a batch run.
type Options struct {
	Workers       int // Values below 1 run sequentially
	MaxTextLength int // Rows longer than this (in runes) get the sentinel verdict; 0 disables
}

// Runner classifies rows with a shared analyzer.
type Runner struct {
	analyzer *analyzer.Analyzer
	opts     Options
	logger   core.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(a *analyzer.Analyzer, opts Options, logger core.Logger) *Runner {
	if logger == nil {
		logger = core.NewNopLogger()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Runner{
		analyzer: a,
		opts:     opts,
		logger:   logger,
	}
}

// Run returns one verdict per row, in row order. Rows are independent, so
// the worker count never changes the result. The only error is ctx's.
func (r *Runner) Run(ctx context.Context, rows []schema.Row) ([]schema.Verdict, error) {
	verdicts := make([]schema.Verdict, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	for i := range rows {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			verdicts[i] = r.analyzeRow(rows[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.logger.Debug("Batch classified", "rows", len(rows), "workers", r.opts.Workers)
	return verdicts, nil
}

func (r *Runner) analyzeRow(row schema.Row) schema.Verdict {
	if r.opts.MaxTextLength > 0 && row.Text != nil {
		if n := utf8.RuneCountInString(*row.Text); n > r.opts.MaxTextLength {
			r.logger.Warn("Requirement text exceeds length cap",
				"name", row.Name,
				"length", n,
				"max", r.opts.MaxTextLength,
			)
			return analyzer.Unreadable(row.Name)
		}
	}

	v := r.analyzer.AnalyzeRow(row)
	if v.Punctuation == schema.PunctuationNA {
		r.logger.Debug("Row has no requirement text", "name", row.Name)
	}
	return v
}
