package classpath

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Archive suffixes picked up from library directories.
const (
	JarSuffix = ".jar"
	ZipSuffix = ".zip"
)

// IgnoreFileName holds gitignore-style patterns excluding archives of the
// directory it sits in.
const IgnoreFileName = ".launchpadignore"

// IsArchive reports whether name ends with .jar or .zip, ignoring case.
func IsArchive(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, JarSuffix) || strings.HasSuffix(lower, ZipSuffix)
}

// readIgnorePatterns reads IgnoreFileName from dir. Missing or unreadable
// files yield no patterns.
func readIgnorePatterns(dir string) []gitignore.Pattern {
	b, err := os.ReadFile(filepath.Join(dir, IgnoreFileName))
	if err != nil {
		return nil
	}
	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns
}

// archiveFilter accepts archive names not excluded by the directory's
// ignore file.
type archiveFilter struct {
	matcher gitignore.Matcher
}

func newArchiveFilter(dir string) archiveFilter {
	patterns := readIgnorePatterns(dir)
	if len(patterns) == 0 {
		return archiveFilter{}
	}
	return archiveFilter{matcher: gitignore.NewMatcher(patterns)}
}

func (f archiveFilter) accept(name string) bool {
	if !IsArchive(name) {
		return false
	}
	if f.matcher == nil {
		return true
	}
	return !f.matcher.Match([]string{name}, false)
}
