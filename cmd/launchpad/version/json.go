package version

import (
	"encoding/json"
	"io"
)

// encodeJSON writes the version report as indented JSON.
func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
