package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/skillsync/internal/config"
	"github.com/jonathan/skillsync/internal/observability"
	"github.com/jonathan/skillsync/internal/profile"
	"github.com/jonathan/skillsync/internal/types"
	"github.com/spf13/cobra"
)

// loadConfig resolves configuration in order: defaults, --config file,
// SKILLSYNC_* environment, then the --verbose flag.
func loadConfig() (config.Config, error) {
	cfg := config.Defaults()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded.MergeWithDefaults(cfg)
	}
	cfg.ApplyEnv()
	if verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// profilePath prefers the command's --profile flag over the config default.
func profilePath(flagValue string, cfg config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.Profile
}

// loadProfile loads the profile at path. An empty path yields nil.
func loadProfile(path string) (*types.Profile, error) {
	if path == "" {
		return nil, nil
	}
	p, err := profile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return p, nil
}

// writeJSON writes v as indented JSON to path, creating parent directories.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// render prints v as JSON when asJSON is set, otherwise through the boxed printer.
func render(cmd *cobra.Command, asJSON bool, v any, pretty func(*observability.Printer)) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}
	pretty(observability.NewPrinter(cmd.OutOrStdout()))
	return nil
}
