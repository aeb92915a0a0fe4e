package main

import (
	"github.com/jonathan/skillsync/internal/observability"
	"github.com/jonathan/skillsync/internal/simulator"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Try workplace scenarios in the career simulator",
	Long:  "Without flags, lists the scenarios. With --scenario, shows one scenario; adding --option scores that choice.",
	RunE:  runSimulate,
}

var (
	simulateScenario string
	simulateOption   string
	simulateJSON     bool
)

func init() {
	simulateCmd.Flags().StringVarP(&simulateScenario, "scenario", "s", "", "Scenario id")
	simulateCmd.Flags().StringVarP(&simulateOption, "option", "o", "", "Option id (a-d) to submit")
	simulateCmd.Flags().BoolVar(&simulateJSON, "json", false, "Print JSON")

	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	switch {
	case simulateScenario == "":
		scenarios := simulator.Scenarios()
		return render(cmd, simulateJSON, scenarios, func(pr *observability.Printer) {
			for _, s := range scenarios {
				pr.PrintScenario(s)
			}
		})
	case simulateOption == "":
		scenario, err := simulator.Get(simulateScenario)
		if err != nil {
			return err
		}
		return render(cmd, simulateJSON, scenario, func(pr *observability.Printer) {
			pr.PrintScenario(scenario)
		})
	default:
		result, err := simulator.Submit(simulateScenario, simulateOption)
		if err != nil {
			return err
		}
		return render(cmd, simulateJSON, result, func(pr *observability.Printer) {
			pr.PrintSimulationResult(&result)
		})
	}
}
