package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func parseYAML(data []byte) (Properties, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	return flatten(doc)
}
