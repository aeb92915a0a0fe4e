package main

import (
	"github.com/jonathan/skillsync/internal/mcptools"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve skillsync tools over MCP stdio",
	Long:  "Runs a Model Context Protocol server on stdin/stdout exposing classify_profile, score_assessment, search_courses, recommend_mentors, skill_pathway and simulate_scenario.",
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcptools.ServeStdio(version)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
