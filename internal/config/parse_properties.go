package config

import (
	"fmt"

	"github.com/magiconair/properties"
)

// parseProperties reads a Java-style .properties file as ISO-8859-1, with
// \uXXXX escapes for anything outside Latin-1. The library's own ${...}
// expansion is disabled; placeholders are left to the launcher's engine.
func parseProperties(data []byte) (Properties, error) {
	l := &properties.Loader{Encoding: properties.ISO_8859_1, DisableExpansion: true}
	p, err := l.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	return Properties(p.Map()), nil
}
