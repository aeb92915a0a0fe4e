package main

import (
	"fmt"

	"github.com/jonathan/skillsync/internal/observability"
	"github.com/jonathan/skillsync/internal/portfolio"
	"github.com/spf13/cobra"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Show guided portfolio projects",
	Long:  "Lists the guided portfolio projects next to the profile's own projects. Use --steps to show the steps of one project.",
	RunE:  runPortfolio,
}

var (
	portfolioProfile  string
	portfolioComplete []string
	portfolioSteps    string
	portfolioCategory string
	portfolioJSON     bool
)

func init() {
	portfolioCmd.Flags().StringVarP(&portfolioProfile, "profile", "p", "", "Path to profile JSON file (defaults to config profile)")
	portfolioCmd.Flags().StringSliceVar(&portfolioComplete, "complete", nil, "Project ids to mark as completed")
	portfolioCmd.Flags().StringVar(&portfolioSteps, "steps", "", "Print the steps of the project with this id")
	portfolioCmd.Flags().StringVar(&portfolioCategory, "category", "", "Only show projects in this category")
	portfolioCmd.Flags().BoolVar(&portfolioJSON, "json", false, "Print the board as JSON")

	rootCmd.AddCommand(portfolioCmd)
}

func runPortfolio(cmd *cobra.Command, _ []string) error {
	cfg := appConfig
	p, err := loadProfile(profilePath(portfolioProfile, cfg))
	if err != nil {
		return err
	}

	projects := portfolio.Templates()
	for _, id := range portfolioComplete {
		next, err := portfolio.Toggle(projects, id)
		if err != nil {
			return err
		}
		projects = next
	}

	if portfolioSteps != "" {
		steps, err := portfolio.Steps(projects, portfolioSteps)
		if err != nil {
			return err
		}
		for i, step := range steps {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, step)
		}
		return nil
	}

	board := portfolio.Build(p, portfolio.ByCategory(projects, portfolioCategory))
	return render(cmd, portfolioJSON, board, func(pr *observability.Printer) {
		pr.PrintPortfolio(&board)
	})
}
