package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"earslint/internal/analyzer"
	"earslint/internal/batch"
	"earslint/internal/render"
	"earslint/internal/tabular"
	"earslint/pkg/schema"
)

type classifyOptions struct {
	sheet     string
	format    string
	output    string
	export    bool
	issues    bool
	strict    bool
	workers   int
	maxLength int
	width     int
}

func newClassifyCmd(a *app) *cobra.Command {
	opts := &classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify <file>",
		Short: "Classify every requirement in a CSV or XLSX file",
		Long: `Reads a table whose first row is a header, takes column 1 as the
requirement name and column 2 as its text, and classifies every row.

With --export (or --output) the original table is written back with
"EARS Category" and "Punctuation Check" columns appended.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, a, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "XLSX worksheet to read (overrides EARSLINT_SHEET)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format: table, json or yaml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Export path (.csv or .xlsx); implies --export")
	cmd.Flags().BoolVar(&opts.export, "export", false, "Write <file>_EARS_classified next to the input")
	cmd.Flags().BoolVar(&opts.issues, "issues", false, "Add an Issues column to the export")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit non-zero if any requirement does not meet EARS or has punctuation issues")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Parallel workers (overrides EARSLINT_WORKERS)")
	cmd.Flags().IntVar(&opts.maxLength, "max-length", 0, "Longest text analyzed in characters (overrides EARSLINT_MAX_TEXT_LENGTH)")
	cmd.Flags().IntVar(&opts.width, "width", 60, "Wrap the requirement column of the table; 0 disables")

	return cmd
}

func runClassify(cmd *cobra.Command, a *app, opts *classifyOptions, path string) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	sheetName := a.cfg.Sheet
	if cmd.Flags().Changed("sheet") {
		sheetName = opts.sheet
	}
	batchOpts := batch.Options{
		Workers:       a.cfg.Workers,
		MaxTextLength: a.cfg.MaxTextLength,
	}
	if cmd.Flags().Changed("workers") {
		batchOpts.Workers = opts.workers
	}
	if cmd.Flags().Changed("max-length") {
		batchOpts.MaxTextLength = opts.maxLength
	}

	sheet, err := tabular.Read(path, sheetName)
	if err != nil {
		return err
	}
	a.logger.Info("Read requirements", "path", path, "sheet", sheet.Name, "rows", len(sheet.Records))

	runner := batch.NewRunner(analyzer.New(), batchOpts, a.logger)
	verdicts, err := runner.Run(cmd.Context(), sheet.Rows())
	if err != nil {
		return fmt.Errorf("classify %s: %w", path, err)
	}

	report, err := schema.NewReport(path, verdicts)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	if err := render.Report(cmd.OutOrStdout(), report, format, opts.width); err != nil {
		return err
	}

	if opts.export || opts.output != "" {
		out := opts.output
		if out == "" {
			out = tabular.ExportPath(path)
		}
		if err := tabular.Export(out, sheet, verdicts, tabular.ExportOptions{IncludeIssues: opts.issues}); err != nil {
			return err
		}
		a.logger.Info("Exported classification", "path", out, "report", report.ID)
	}

	if opts.strict && (report.Summary.DoesNotMeet > 0 || report.Summary.PunctuationIssues > 0) {
		return fmt.Errorf("%w: %d do not meet EARS, %d have punctuation issues",
			errNonConforming, report.Summary.DoesNotMeet, report.Summary.PunctuationIssues)
	}

	return nil
}
