package gen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config overrides the built-in corpus shape. Zero values mean "keep the
// default": a zero seed falls back to wall-clock seeding and an absent
// target keeps the registry count.
type Config struct {
	Seed    int64          `yaml:"seed"`
	Targets map[string]int `yaml:"targets"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyTargets replaces registry targets with configured overrides. A
// target naming an unknown category is an authoring error, not a silent
// no-op.
func ApplyTargets(categories []Category, targets map[string]int) ([]Category, error) {
	if len(targets) == 0 {
		return categories, nil
	}
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.Name] = true
	}
	for name := range targets {
		if !known[name] {
			return nil, fmt.Errorf("unknown category %q in targets", name)
		}
	}
	out := make([]Category, len(categories))
	copy(out, categories)
	for i := range out {
		if t, ok := targets[out[i].Name]; ok {
			out[i].Target = t
		}
	}
	return out, nil
}
