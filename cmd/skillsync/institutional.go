package main

import (
	"github.com/jonathan/skillsync/internal/institutional"
	"github.com/jonathan/skillsync/internal/observability"
	"github.com/spf13/cobra"
)

var institutionalCmd = &cobra.Command{
	Use:   "institutional",
	Short: "Show institution-wide career analytics",
	RunE:  runInstitutional,
}

var institutionalJSON bool

func init() {
	institutionalCmd.Flags().BoolVar(&institutionalJSON, "json", false, "Print the report as JSON")
	rootCmd.AddCommand(institutionalCmd)
}

func runInstitutional(cmd *cobra.Command, _ []string) error {
	report := institutional.Build()
	return render(cmd, institutionalJSON, report, func(pr *observability.Printer) {
		pr.PrintInstitutional(&report)
	})
}
