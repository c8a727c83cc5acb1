// Package classpath turns configured classpath and library entries into
// the list of files handed to the JVM.
package classpath

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigSeparator separates entries in configuration files regardless of
// the platform.
const ConfigSeparator = ":"

// OSSeparator separates entries given on the command line.
var OSSeparator = string(os.PathListSeparator)

// SplitPathList splits s on any of the characters in separators and drops
// empty entries. An empty s yields an empty, non-nil slice.
func SplitPathList(s, separators string) []string {
	out := []string{}
	if s == "" {
		return out
	}
	return append(out, strings.FieldsFunc(s, func(r rune) bool { return strings.ContainsRune(separators, r) })...)
}

// Join joins entries with the platform list separator.
func Join(entries []string) string {
	return strings.Join(entries, OSSeparator)
}

// Resolve returns p unchanged when absolute, otherwise joined to base.
func Resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
