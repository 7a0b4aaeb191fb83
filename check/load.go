package check

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRules loads a rule set from a file.
// The format is detected by file extension (.json, .yaml, .yml).
// It validates that all rules have required fields and unique names;
// expressions are compiled later, when a runner is built over the set.
func LoadRules(path string) (*RuleSet, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("rule file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}

	ext := filepath.Ext(path)
	var set RuleSet

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("failed to parse JSON rules: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("failed to parse YAML rules: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported rule format: %s (supported: .json, .yaml, .yml)", ext)
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("rule validation failed: %w", err)
	}

	return &set, nil
}
