package interp

import (
	"strings"
	"testing"
)

func TestDefaultSyntax(t *testing.T) {
	s := DefaultSyntax()
	if s.Marker != '$' || s.OpeningBrace != '{' || s.ClosingBrace != '}' || s.Escape != '\\' {
		t.Fatalf("unexpected default syntax: %+v", s)
	}
	if s.EscapeMode != EscapeStrict {
		t.Fatalf("unexpected default escape mode: %v", s.EscapeMode)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("default syntax invalid: %v", err)
	}
}

func TestSyntaxValidate_DuplicateChar(t *testing.T) {
	s := DefaultSyntax()
	s.ClosingBrace = '{'
	err := s.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "opening brace and closing brace") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSyntaxValidate_UnsetChar(t *testing.T) {
	s := DefaultSyntax()
	s.Escape = 0
	if err := s.Validate(); err == nil || err.Error() != "invalid syntax: escape character is unset" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSyntaxValidate_UnknownMode(t *testing.T) {
	s := DefaultSyntax()
	s.EscapeMode = EscapeMode(9)
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestParseEscapeMode(t *testing.T) {
	cases := map[string]EscapeMode{
		"none":   EscapeNone,
		"Strict": EscapeStrict,
		"":       EscapeStrict,
		" ALL ":  EscapeAll,
	}
	for in, want := range cases {
		got, err := ParseEscapeMode(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: want %v, got %v", in, want, got)
		}
	}
	if _, err := ParseEscapeMode("sometimes"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestEscapeModeString(t *testing.T) {
	if EscapeAll.String() != "all" || EscapeNone.String() != "none" || EscapeStrict.String() != "strict" {
		t.Fatalf("unexpected names")
	}
	if EscapeMode(7).String() != "EscapeMode(7)" {
		t.Fatalf("unexpected fallback: %s", EscapeMode(7))
	}
}
