// Package main provides the skillsync CLI: career guidance for students from
// the terminal, a local API for the web client, and an MCP tool server.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/skillsync/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is reported by --version and announced to MCP clients
const version = "0.1.0"

var (
	configPath string
	verbose    bool

	// appConfig is resolved before any subcommand runs
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:     "skillsync",
	Short:   "Career guidance for students",
	Long:    "skillsync classifies a student profile into a career field, scores a psychometric assessment and builds learning views: courses, mentors, a skill pathway, portfolio projects and career simulations.",
	Version: version,

	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by flags and SKILLSYNC_* env vars)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed output")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
