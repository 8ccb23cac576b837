package config

import (
	"fmt"
	"os"

	"github.com/finucity/finucity-calc/tax"
	"gopkg.in/yaml.v3"
)

// LoadRules overlays a YAML rules file on the built-in statutory tables.
// Keys absent from the file keep their defaults; lists such as slab bands
// are replaced wholesale. An empty path returns the defaults.
func LoadRules(path string) (tax.Rules, error) {
	rules := tax.DefaultRules()

	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return tax.Rules{}, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &rules); err != nil {
		return tax.Rules{}, fmt.Errorf("failed to parse rules YAML: %w", err)
	}

	if err := rules.Validate(); err != nil {
		return tax.Rules{}, fmt.Errorf("rules validation failed: %w", err)
	}

	return rules, nil
}
