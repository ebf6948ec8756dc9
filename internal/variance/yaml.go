package variance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SaveToYAML saves the report to a YAML file
func (r RunReport) SaveToYAML(path string) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}

	return nil
}
