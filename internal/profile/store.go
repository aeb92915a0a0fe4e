package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/skillsync/internal/schemas"
	"github.com/jonathan/skillsync/internal/types"
)

// Load reads a profile document from a JSON file and checks it against the
// profile schema.
func Load(path string) (*types.Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	p := New()
	if err := json.Unmarshal(content, p); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}
	if err := schemas.ValidateDocument(schemas.ProfileSchema, content); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("profile %s does not match schema", path),
			Cause:   err,
		}
	}
	return p, nil
}

// Save writes p as indented JSON to path
func Save(path string, p *types.Profile) error {
	content, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return &LoadError{
			Message: "failed to marshal JSON",
			Cause:   err,
		}
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return &LoadError{
			Message: fmt.Sprintf("failed to write file %s", path),
			Cause:   err,
		}
	}
	return nil
}
