package main

import (
	"fmt"

	"github.com/jonathan/skillsync/internal/dashboard"
	"github.com/jonathan/skillsync/internal/observability"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the student dashboard for a profile",
	RunE:  runDashboard,
}

var (
	dashboardProfile string
	dashboardJSON    bool
)

func init() {
	dashboardCmd.Flags().StringVarP(&dashboardProfile, "profile", "p", "", "Path to profile JSON file (defaults to config profile)")
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "Print the dashboard as JSON")

	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	cfg := appConfig

	path := profilePath(dashboardProfile, cfg)
	if path == "" {
		return fmt.Errorf("--profile is required")
	}
	p, err := loadProfile(path)
	if err != nil {
		return err
	}
	if !p.IsFinalized() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: profile %s has not been classified yet; run skillsync classify first\n", path)
	}

	view := dashboard.Build(p)
	return render(cmd, dashboardJSON, view, func(pr *observability.Printer) {
		pr.PrintDashboard(&view)
	})
}
