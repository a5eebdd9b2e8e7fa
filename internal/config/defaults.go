package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/frogger.yaml
var defaultYAML []byte

// DefaultGameConfig returns the built-in configuration. It prefers the
// embedded YAML so the shipped defaults live in exactly one place.
func DefaultGameConfig() GameConfig {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultYAML, &cfg); err == nil {
		return cfg
	}
	// Embed never fails in a correct build; the zero value still maps
	// onto the engine defaults through Params.
	return GameConfig{}
}
