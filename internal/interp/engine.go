// Package interp expands ${name} placeholders in configuration strings.
//
// Placeholder names may themselves contain placeholders ("${${KEY}}"): the
// inner one is resolved first and its value becomes part of the outer name.
// Substituted values are inserted verbatim and never scanned again.
// Malformed input is never an error; unterminated placeholders are written
// back as they appeared. Bytes that are not valid UTF-8 are copied through
// unchanged.
package interp

import (
	"strings"
	"unicode/utf8"
)

type scanState int

const (
	expectMarker scanState = iota
	expectOpenBrace
	expectCloseBrace
)

// Engine translates strings for one Syntax. An Engine has no mutable state
// and can be shared between goroutines as long as the Resolver passed to
// Translate is safe for concurrent use.
type Engine struct {
	syntax Syntax
}

// New returns an engine for the given syntax.
func New(s Syntax) *Engine {
	return &Engine{syntax: s}
}

// Default returns an engine for DefaultSyntax.
func Default() *Engine {
	return New(DefaultSyntax())
}

// Syntax returns the engine's syntax.
func (e *Engine) Syntax() Syntax { return e.syntax }

// WithSyntax returns a new engine using s; e is unchanged.
func (e *Engine) WithSyntax(s Syntax) *Engine {
	return New(s)
}

// Translate expands every placeholder in value using r. The resolver is
// called exactly once per closed placeholder, innermost first. A nil
// resolver resolves nothing.
func (e *Engine) Translate(value string, r Resolver) string {
	if !e.needsScan(value) {
		return value
	}
	sx := e.syntax
	out := newBufferStack(len(value))
	state := expectMarker
	escaping := false

	for i := 0; i < len(value); {
		c, size := utf8.DecodeRuneInString(value[i:])
		lit := value[i : i+size]
		i += size
		if c == utf8.RuneError && size == 1 {
			// Invalid byte: copied as is, never a syntax character.
			c = -1
		}

		if escaping {
			escaping = false
			if state == expectCloseBrace || sx.EscapeMode == EscapeAll || sx.isSpecial(c) {
				out.appendString(lit)
			} else {
				out.appendRune(sx.Escape)
				out.appendString(lit)
			}
			continue
		}

		if (state == expectMarker || state == expectCloseBrace) && c == sx.Marker {
			state = expectOpenBrace
			continue
		}

		if state == expectCloseBrace && c == sx.ClosingBrace {
			name := out.pop()
			if r != nil {
				if v, ok := r.Lookup(name); ok {
					out.appendString(v)
				}
			}
			state = restingState(out)
			continue
		}

		if state == expectOpenBrace {
			if c == sx.OpeningBrace {
				out.push()
				state = expectCloseBrace
				continue
			}
			// Lone marker: keep it and treat c as ordinary input.
			out.appendRune(sx.Marker)
			state = restingState(out)
		}

		if c == sx.Escape && sx.EscapeMode != EscapeNone {
			escaping = true
			continue
		}
		out.appendString(lit)
	}

	e.unwind(out, state, escaping)
	return out.String()
}

// TranslateOptional is Translate for an optional value: nil stays nil and
// the resolver is not consulted.
func (e *Engine) TranslateOptional(value *string, r Resolver) *string {
	if value == nil {
		return nil
	}
	s := e.Translate(*value, r)
	return &s
}

// needsScan reports whether value holds any character the scanner would
// treat specially.
func (e *Engine) needsScan(value string) bool {
	if strings.ContainsRune(value, e.syntax.Marker) {
		return true
	}
	return e.syntax.EscapeMode != EscapeNone && strings.ContainsRune(value, e.syntax.Escape)
}

// unwind writes back whatever was still pending when the input ended: a
// dangling escape, a marker not followed by a brace, and every unclosed
// placeholder as marker, opening brace and accumulated name.
func (e *Engine) unwind(out *bufferStack, state scanState, escaping bool) {
	sx := e.syntax
	if escaping {
		out.appendRune(sx.Escape)
	}
	if state == expectOpenBrace {
		out.appendRune(sx.Marker)
	}
	for out.nested() {
		name := out.pop()
		out.appendRune(sx.Marker)
		out.appendRune(sx.OpeningBrace)
		out.appendString(name)
	}
}

func restingState(out *bufferStack) scanState {
	if out.nested() {
		return expectCloseBrace
	}
	return expectMarker
}

var defaultEngine = Default()

// Translate expands value with the default syntax.
func Translate(value string, r Resolver) string {
	return defaultEngine.Translate(value, r)
}
