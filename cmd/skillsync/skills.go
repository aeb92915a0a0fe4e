package main

import (
	"github.com/jonathan/skillsync/internal/observability"
	"github.com/jonathan/skillsync/internal/skills"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Show the skill development pathway",
	Long:  "Shows the recommended skills with completion seeded from the profile's skills, high-demand priorities and the six-month roadmap.",
	RunE:  runSkills,
}

var (
	skillsProfile string
	skillsToggle  []string
	skillsJSON    bool
)

func init() {
	skillsCmd.Flags().StringVarP(&skillsProfile, "profile", "p", "", "Path to profile JSON file (defaults to config profile)")
	skillsCmd.Flags().StringSliceVar(&skillsToggle, "toggle", nil, "Pathway skill names whose completion to flip")
	skillsCmd.Flags().BoolVar(&skillsJSON, "json", false, "Print the pathway as JSON")

	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, _ []string) error {
	cfg := appConfig
	p, err := loadProfile(profilePath(skillsProfile, cfg))
	if err != nil {
		return err
	}

	var profileSkills []string
	if p != nil {
		profileSkills = p.Skills
	}
	state := skills.Seed(profileSkills)
	for _, name := range skillsToggle {
		next, err := skills.Toggle(state, name)
		if err != nil {
			return err
		}
		state = next
	}

	pathway := skills.Build(p, state)
	return render(cmd, skillsJSON, pathway, func(pr *observability.Printer) {
		pr.PrintPathway(&pathway)
	})
}
