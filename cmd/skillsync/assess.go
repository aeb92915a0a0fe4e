package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/skillsync/internal/assessment"
	"github.com/jonathan/skillsync/internal/observability"
	"github.com/jonathan/skillsync/internal/profile"
	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score the psychometric assessment",
	Long: `Scores the eight-question psychometric assessment, either from an answers JSON file ({"0": "A", ...}) or interactively.

When a profile is given, its personality type and career matches are replaced by the assessment result. A profile that was never classified is validated and classified first.`,
	RunE: runAssess,
}

var (
	assessProfile     string
	assessAnswers     string
	assessInteractive bool
	assessOutput      string
	assessJSON        bool
)

func init() {
	assessCmd.Flags().StringVarP(&assessProfile, "profile", "p", "", "Path to profile JSON file to update (defaults to config profile)")
	assessCmd.Flags().StringVarP(&assessAnswers, "answers", "a", "", "Path to answers JSON file (mutually exclusive with --interactive)")
	assessCmd.Flags().BoolVarP(&assessInteractive, "interactive", "i", false, "Answer the questions at the prompt")
	assessCmd.Flags().StringVarP(&assessOutput, "out", "o", "", "Path to write the updated profile JSON")
	assessCmd.Flags().BoolVar(&assessJSON, "json", false, "Print the result as JSON")

	assessCmd.MarkFlagsMutuallyExclusive("answers", "interactive")
	assessCmd.MarkFlagsOneRequired("answers", "interactive")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, _ []string) error {
	cfg := appConfig

	p, err := loadProfile(profilePath(assessProfile, cfg))
	if err != nil {
		return err
	}

	var answers map[int]string
	if assessInteractive {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		answers, err = askQuestions(cmd.InOrStdin(), cmd.OutOrStdout(), printer)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Analyzing your responses...")
		select {
		case <-time.After(cfg.RevealDelay()):
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		}
	} else {
		answers, err = assessment.LoadAnswers(assessAnswers)
		if err != nil {
			return fmt.Errorf("failed to load answers: %w", err)
		}
	}

	result := assessment.Tally(answers)

	if p != nil {
		if !p.IsFinalized() {
			if err := profile.Validate(p); err != nil {
				return err
			}
			profile.Finalize(p)
		}
		if err := profile.ApplyAssessment(p, result); err != nil {
			return err
		}
		if assessOutput != "" {
			if err := writeJSON(assessOutput, p); err != nil {
				return err
			}
		}
	} else if assessOutput != "" {
		if err := writeJSON(assessOutput, result); err != nil {
			return err
		}
	}

	return render(cmd, assessJSON, result, func(pr *observability.Printer) {
		pr.PrintAssessment(&result)
	})
}

// askQuestions prompts for each question in order until a valid letter is
// given. Input ending early leaves the remaining questions unanswered.
func askQuestions(in io.Reader, out io.Writer, printer *observability.Printer) (map[int]string, error) {
	scanner := bufio.NewScanner(in)
	answers := make(map[int]string)

	for i, q := range assessment.Questions() {
		printer.PrintQuestion(q, assessment.Progress(answers))
		for {
			fmt.Fprint(out, "Your answer (A-D): ")
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return nil, fmt.Errorf("failed to read answer: %w", err)
				}
				return answers, nil
			}

			parsed, err := assessment.ParseAnswers(map[string]string{fmt.Sprint(i): strings.TrimSpace(scanner.Text())})
			if err != nil {
				fmt.Fprintln(out, "Please choose one of A, B, C or D.")
				continue
			}
			answers[i] = parsed[i]
			break
		}
	}
	return answers, nil
}
