package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/job-tailor/internal/types"
)

// Load reads a profile document from a YAML file and validates it. The loaded
// profile is read-only for the rest of the invocation.
func Load(path string) (*types.Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var p types.Profile
	if err := yaml.Unmarshal(content, &p); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal YAML",
			Cause:   err,
		}
	}

	if err := p.Validate(); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("invalid profile document %s", path),
			Cause:   err,
		}
	}

	return &p, nil
}
