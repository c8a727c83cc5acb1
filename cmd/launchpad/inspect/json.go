package inspect

import (
	"encoding/json"
	"io"
)

// encodeJSON writes v as indented JSON. HTML escaping is off so plan
// arguments such as "<arg>" or "a&b" print as they are passed to java.
func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
