package main

import (
	"os"
	"strings"

	"github.com/flarebyte/launchpad/cmd/launchpad/root"
)

type exitCoder interface {
	ExitCode() int
}

type silentError interface {
	Silent() bool
}

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		code := 1
		if ec, ok := err.(exitCoder); ok {
			if c := ec.ExitCode(); c != 0 {
				code = c
			}
		}
		// The child already reported its own failure.
		if se, ok := err.(silentError); ok && se.Silent() {
			os.Exit(code)
		}
		// Print a short, single-line error to stderr on failures.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg == "" {
			msg = "error"
		}
		_, _ = os.Stderr.WriteString(msg + "\n")
		os.Exit(code)
	}
}
