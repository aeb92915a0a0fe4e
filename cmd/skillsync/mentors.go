package main

import (
	"github.com/jonathan/skillsync/internal/mentorship"
	"github.com/jonathan/skillsync/internal/observability"
	"github.com/spf13/cobra"
)

var mentorsCmd = &cobra.Command{
	Use:   "mentors",
	Short: "Show recommended mentors",
	Long:  "Lists mentors by match score. Mentors named with --connect are shown as connected and drop out of the recommended list.",
	RunE:  runMentors,
}

var (
	mentorsConnect []string
	mentorsJSON    bool
)

func init() {
	mentorsCmd.Flags().StringSliceVar(&mentorsConnect, "connect", nil, "Mentor ids to connect with")
	mentorsCmd.Flags().BoolVar(&mentorsJSON, "json", false, "Print the mentors as JSON")

	rootCmd.AddCommand(mentorsCmd)
}

func runMentors(cmd *cobra.Command, _ []string) error {
	mentors := mentorship.Directory()
	for _, id := range mentorsConnect {
		next, err := mentorship.Connect(mentors, id)
		if err != nil {
			return err
		}
		mentors = next
	}

	recommended := mentorship.Recommended(mentors)
	stats := mentorship.ComputeStats(mentors)
	shown := append(mentorship.Connected(mentors), recommended...)

	return render(cmd, mentorsJSON, map[string]any{
		"recommended": recommended,
		"connected":   mentorship.Connected(mentors),
		"stats":       stats,
	}, func(pr *observability.Printer) {
		pr.PrintMentors(shown, stats)
	})
}

