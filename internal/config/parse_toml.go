package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

func parseTOML(data []byte) (Properties, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	return flatten(doc)
}
