package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"earslint/internal/analyzer"
	"earslint/internal/render"
	"earslint/pkg/schema"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		name   string
		format string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "check <sentence>...",
		Short: "Classify a single requirement sentence",
		Example: `  earslint check "When the user clicks submit, the system shall validate the form."
  earslint check --format json The system shall log all transactions.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			v := analyzer.Analyze(name, strings.Join(args, " "))
			a.logger.Debug("Checked requirement", "name", v.Name, "category", v.Category)

			report, err := schema.NewReport("", []schema.Verdict{v})
			if err != nil {
				return fmt.Errorf("build report: %w", err)
			}

			out := cmd.OutOrStdout()
			if err := render.Report(out, report, f, 0); err != nil {
				return err
			}
			if f == render.FormatTable {
				fmt.Fprintln(out, analyzer.DescribeCategory(v.Category))
			}

			if strict && (!v.Label.Conforming() || v.Punctuation != schema.PunctuationOK) {
				return fmt.Errorf("%w: %s, %s", errNonConforming, v.Category, v.Punctuation)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", schema.DefaultRowName(1), "Requirement name shown in the output")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json or yaml")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero unless the sentence conforms with clean punctuation")

	return cmd
}
