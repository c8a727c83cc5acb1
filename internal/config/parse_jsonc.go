package config

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
)

// parseJSONC accepts plain JSON and JSON with comments and trailing commas.
func parseJSONC(data []byte) (Properties, error) {
	var doc any
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	return flatten(doc)
}
