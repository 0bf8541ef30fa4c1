package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a line spec from a YAML file.
func Load(path string) (*LineSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	var spec LineSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	return &spec, nil
}

// LoadProject loads a line spec from a project directory.
// It looks for line.yaml in the given directory.
func LoadProject(projectDir string) (*LineSpec, error) {
	specPath := filepath.Join(projectDir, "line.yaml")
	return Load(specPath)
}
