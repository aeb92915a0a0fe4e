package main

import (
	"fmt"

	"github.com/jonathan/skillsync/internal/classifier"
	"github.com/jonathan/skillsync/internal/observability"
	"github.com/jonathan/skillsync/internal/profile"
	"github.com/jonathan/skillsync/internal/resume"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a student profile into a career field",
	Long:  "Loads a profile JSON document, optionally imports resume text from a .txt, .md, .html, .pdf or .docx file, assigns a career field, personality label and role matches, and writes the finalized profile.",
	RunE:  runClassify,
}

var (
	classifyProfile string
	classifyResume  string
	classifyOutput  string
	classifyJSON    bool
)

func init() {
	classifyCmd.Flags().StringVarP(&classifyProfile, "profile", "p", "", "Path to input profile JSON file (defaults to config profile)")
	classifyCmd.Flags().StringVarP(&classifyResume, "resume", "r", "", "Path to a resume file whose text feeds the classifier")
	classifyCmd.Flags().StringVarP(&classifyOutput, "out", "o", "", "Path to write the finalized profile JSON")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Print the analysis as JSON")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, _ []string) error {
	cfg := appConfig

	path := profilePath(classifyProfile, cfg)
	if path == "" {
		return fmt.Errorf("--profile is required")
	}
	p, err := loadProfile(path)
	if err != nil {
		return err
	}

	if classifyResume != "" {
		text, err := resume.ExtractFile(classifyResume)
		if err != nil {
			return fmt.Errorf("failed to import resume: %w", err)
		}
		p.ResumeText = text
		if cfg.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "Imported %d characters of resume text from %s\n", len(text), classifyResume)
		}
	}

	if err := profile.Validate(p); err != nil {
		return err
	}

	analysis := profile.Finalize(p)

	if classifyOutput != "" {
		if err := writeJSON(classifyOutput, p); err != nil {
			return err
		}
		if cfg.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote finalized profile to %s\n", classifyOutput)
		}
	}

	return render(cmd, classifyJSON, analysis, func(pr *observability.Printer) {
		var scores = classifier.ScoreCategories(classifier.FromProfile(p))
		if !cfg.Verbose {
			scores = nil
		}
		pr.PrintAnalysis(&analysis, scores)
	})
}
