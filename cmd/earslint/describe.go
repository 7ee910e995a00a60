package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"earslint/internal/analyzer"
	"earslint/pkg/schema"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [category]",
		Short: "Explain EARS categories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				_, err := fmt.Fprintln(out, analyzer.DescribeCategory(args[0]))
				return err
			}

			for _, label := range schema.Labels() {
				desc := strings.ReplaceAll(analyzer.DescribeCategory(label.String()), "\n", "\n  ")
				if _, err := fmt.Fprintf(out, "%s\n  %s\n\n", label, desc); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "earslint", version)
		},
	}
}
