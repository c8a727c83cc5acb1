package launch

import "fmt"

const (
	exitCodeFailure  = 1
	exitCodeNotFound = 127
	exitCodeSignaled = 128
)

// ExitError carries the process exit code for a failed launch. An empty
// Msg means the failure was already reported, typically by the child
// process itself.
type ExitError struct {
	Code int
	Msg  string
}

func (e ExitError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Msg
}

func (e ExitError) ExitCode() int { return e.Code }

// Silent reports whether the error should be printed.
func (e ExitError) Silent() bool { return e.Msg == "" }
