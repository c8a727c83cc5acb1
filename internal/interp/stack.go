package interp

import "unicode/utf8"

// bufferStack holds the output buffer of every nesting level. Level 0 is
// the top-level output; level depth is the buffer currently written to.
// Popped levels keep their backing arrays for reuse by later pushes.
type bufferStack struct {
	levels [][]byte
	depth  int
}

func newBufferStack(capacity int) *bufferStack {
	return &bufferStack{levels: [][]byte{make([]byte, 0, capacity)}}
}

// nested reports whether a placeholder is currently open.
func (s *bufferStack) nested() bool { return s.depth > 0 }

func (s *bufferStack) appendRune(r rune) {
	s.levels[s.depth] = utf8.AppendRune(s.levels[s.depth], r)
}

func (s *bufferStack) appendString(v string) {
	s.levels[s.depth] = append(s.levels[s.depth], v...)
}

// push opens a new, empty level.
func (s *bufferStack) push() {
	s.depth++
	if s.depth < len(s.levels) {
		s.levels[s.depth] = s.levels[s.depth][:0]
		return
	}
	s.levels = append(s.levels, make([]byte, 0, 32))
}

// pop closes the current level and returns its text. The enclosing level
// becomes current.
func (s *bufferStack) pop() string {
	text := string(s.levels[s.depth])
	s.depth--
	return text
}

func (s *bufferStack) String() string {
	return string(s.levels[0])
}
