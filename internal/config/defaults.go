package config

import (
	_ "embed"
)

//go:embed defaults/kitchen.yaml
var defaultKitchenYAML []byte

// DefaultYAML returns the embedded default YAML, for writing starter configs.
func DefaultYAML() []byte {
	return defaultKitchenYAML
}
