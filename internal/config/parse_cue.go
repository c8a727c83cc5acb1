package config

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// parseCUE compiles a CUE document. Every field must be concrete.
func parseCUE(data []byte) (Properties, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	var doc map[string]any
	if err := v.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	return flatten(doc)
}
