package config

import (
	"fmt"

	"github.com/flarebyte/launchpad/internal/classpath"
)

// Parameters holds the launcher options given on the command line.
type Parameters struct {
	MainClass  string
	Libraries  []string
	Classpath  []string
	AppDir     string
	ConfigFile string
	// ParsedArgs is the number of leading arguments consumed by the
	// launcher; the rest belong to the application.
	ParsedArgs int
}

// ArgumentError reports a launcher flag given without its value.
type ArgumentError struct {
	Flag string
}

func (e ArgumentError) Error() string {
	return fmt.Sprintf("argument parse error: '%s' needs a parameter", e.Flag)
}

// ParseParameters scans launcher flags from the front of args. Scanning
// stops at "--", which is consumed, or at the first unrecognized argument,
// which is not.
func ParseParameters(args []string) (Parameters, error) {
	p := Parameters{Libraries: []string{}, Classpath: []string{}}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-main", "-lib", "-cp", "-classpath", "-appdir", "-config":
		case "--":
			p.ParsedArgs = i + 1
			return p, nil
		default:
			p.ParsedArgs = i
			return p, nil
		}

		i++
		if i == len(args) {
			return Parameters{}, ArgumentError{Flag: arg}
		}
		value := args[i]
		switch arg {
		case "-main":
			p.MainClass = value
		case "-lib":
			p.Libraries = append(p.Libraries, classpath.SplitPathList(value, classpath.OSSeparator)...)
		case "-cp", "-classpath":
			p.Classpath = append(p.Classpath, classpath.SplitPathList(value, classpath.OSSeparator)...)
		case "-appdir":
			p.AppDir = value
		case "-config":
			p.ConfigFile = value
		}
	}
	p.ParsedArgs = len(args)
	return p, nil
}

// AppArgs returns the arguments left for the application.
func (p Parameters) AppArgs(args []string) []string {
	if p.ParsedArgs >= len(args) {
		return []string{}
	}
	return append([]string(nil), args[p.ParsedArgs:]...)
}
