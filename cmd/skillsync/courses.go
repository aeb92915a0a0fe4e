package main

import (
	"github.com/jonathan/skillsync/internal/courses"
	"github.com/jonathan/skillsync/internal/observability"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Search recommended courses",
	Long:  "Lists catalog courses matching --search (title or skill) and --type (all, online, offline, hybrid), best match first.",
	RunE:  runCourses,
}

var (
	coursesSearch string
	coursesType   string
	coursesJSON   bool
)

func init() {
	coursesCmd.Flags().StringVarP(&coursesSearch, "search", "s", "", "Text matched against course titles and skills")
	coursesCmd.Flags().StringVarP(&coursesType, "type", "t", "all", "Delivery type: all, online, offline or hybrid")
	coursesCmd.Flags().BoolVar(&coursesJSON, "json", false, "Print the courses as JSON")

	rootCmd.AddCommand(coursesCmd)
}

func runCourses(cmd *cobra.Command, _ []string) error {
	courseType, err := courses.ParseType(coursesType)
	if err != nil {
		return err
	}

	found := courses.Search(courses.Query{Search: coursesSearch, Type: courseType})
	stats := courses.CatalogStats()

	return render(cmd, coursesJSON, found, func(pr *observability.Printer) {
		pr.PrintCourses(found, stats)
	})
}
