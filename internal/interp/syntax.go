package interp

import (
	"fmt"
	"strings"
)

// EscapeMode controls which characters the escape character neutralizes.
type EscapeMode int

const (
	// EscapeNone never treats the escape character specially.
	EscapeNone EscapeMode = iota
	// EscapeStrict consumes the escape character only in front of one of
	// the four syntax characters; any other escaped character keeps it.
	EscapeStrict
	// EscapeAll always consumes the escape character and emits the next
	// character literally.
	EscapeAll
)

func (m EscapeMode) String() string {
	switch m {
	case EscapeNone:
		return "none"
	case EscapeStrict:
		return "strict"
	case EscapeAll:
		return "all"
	}
	return fmt.Sprintf("EscapeMode(%d)", int(m))
}

// ParseEscapeMode maps "none", "strict" or "all" (case-insensitive) to a mode.
func ParseEscapeMode(s string) (EscapeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return EscapeNone, nil
	case "strict", "":
		return EscapeStrict, nil
	case "all":
		return EscapeAll, nil
	}
	return EscapeStrict, fmt.Errorf("invalid escape mode: %q (expected none, strict or all)", s)
}

// Syntax describes the placeholder delimiters. It is a plain value: an
// Engine copies it at construction.
type Syntax struct {
	Marker       rune
	OpeningBrace rune
	ClosingBrace rune
	Escape       rune
	EscapeMode   EscapeMode
}

// DefaultSyntax returns the "${name}" syntax with a backslash escape in
// strict mode.
func DefaultSyntax() Syntax {
	return Syntax{
		Marker:       '$',
		OpeningBrace: '{',
		ClosingBrace: '}',
		Escape:       '\\',
		EscapeMode:   EscapeStrict,
	}
}

// Validate reports syntax values that make placeholders unrecognizable.
// The engine itself accepts any syntax.
func (s Syntax) Validate() error {
	chars := []struct {
		name string
		r    rune
	}{
		{"marker", s.Marker},
		{"opening brace", s.OpeningBrace},
		{"closing brace", s.ClosingBrace},
		{"escape", s.Escape},
	}
	for i, c := range chars {
		if c.r == 0 {
			return fmt.Errorf("invalid syntax: %s character is unset", c.name)
		}
		for _, o := range chars[:i] {
			if o.r == c.r {
				return fmt.Errorf("invalid syntax: %s and %s share %q", o.name, c.name, c.r)
			}
		}
	}
	if s.EscapeMode < EscapeNone || s.EscapeMode > EscapeAll {
		return fmt.Errorf("invalid syntax: unknown %v", s.EscapeMode)
	}
	return nil
}

func (s Syntax) isSpecial(r rune) bool {
	return r == s.Marker || r == s.OpeningBrace || r == s.ClosingBrace || r == s.Escape
}
