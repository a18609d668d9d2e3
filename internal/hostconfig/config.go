// Package hostconfig loads a project's interpreter configuration — today,
// just its module search roots (spec §4.F/§6 "Module paths") — from a
// YAML project file, the concrete form of what spec.md leaves as "the CLI
// supplies the root list."
//
// Grounded on the teacher's internal/ext/config.go (a YAML project file
// parsed with gopkg.in/yaml.v3 into a tagged Config struct), trimmed to
// the one concern this spec actually needs: Funxy's Config addresses Go
// dependency binding and code generation, which has no counterpart here.
package hostconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level shape of a snek.yaml project file.
type Config struct {
	// Roots is the ordered list of directories searched, in order, to
	// resolve a non-relative import specifier (spec §4.F/§6).
	Roots []string `yaml:"roots"`
}

// Load reads and parses a snek.yaml project file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hostconfig: cannot read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("hostconfig: cannot parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Default returns the configuration used when no project file is present:
// a single root, the current directory.
func Default() *Config {
	return &Config{Roots: []string{"."}}
}
