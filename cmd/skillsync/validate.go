package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/skillsync/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON document against a schema",
	Long:  "Validates --json against --schema, which is either a built-in schema name (profile, answers, config) or a path to a schema file.",
	RunE:  runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Schema name or path (required)")
	validateCmd.Flags().StringVarP(&validateJSON, "json", "j", "", "Path to JSON file to validate (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var err error
	if _, statErr := os.Stat(validateSchema); statErr == nil {
		err = schemas.ValidateJSON(validateSchema, validateJSON)
	} else {
		name := validateSchema
		if !strings.HasSuffix(name, ".schema.json") {
			name += ".schema.json"
		}
		err = schemas.ValidateFile(name, validateJSON)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Validation passed: %s\n", validateJSON)
	return nil
}
