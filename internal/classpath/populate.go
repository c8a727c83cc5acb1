package classpath

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/flarebyte/launchpad/internal/ctxlog"
)

// Libraries lists the archives of every library directory, each resolved
// against appDir. Archives of one directory are sorted by name;
// directories keep their configured order. Unlistable directories are
// skipped with a debug log.
func Libraries(ctx context.Context, dirs []string, appDir string) []string {
	logger := ctxlog.FromContext(ctx)
	result := []string{}
	for _, d := range dirs {
		dir := Resolve(appDir, d)
		entries, err := os.ReadDir(dir)
		if err != nil {
			logger.Debug("library directory skipped", "dir", dir, "error", err)
			continue
		}
		filter := newArchiveFilter(dir)
		var names []string
		for _, ent := range entries {
			if !isRegular(dir, ent) || !filter.accept(ent.Name()) {
				continue
			}
			names = append(names, ent.Name())
		}
		sort.Strings(names)
		for _, n := range names {
			result = append(result, filepath.Join(dir, n))
		}
	}
	return result
}

// Entries resolves classpath entries against appDir and keeps those that
// exist and can be opened for reading. Others are logged and dropped.
func Entries(ctx context.Context, paths []string, appDir string) []string {
	logger := ctxlog.FromContext(ctx)
	result := make([]string, 0, len(paths))
	for _, p := range paths {
		full := Resolve(appDir, p)
		if !readable(full) {
			logger.Warn("invalid entry, ignoring", "path", full)
			continue
		}
		result = append(result, full)
	}
	return result
}

// Assemble returns the classpath entries followed by the library archives.
func Assemble(ctx context.Context, classpath, libraries []string, appDir string) []string {
	out := Entries(ctx, classpath, appDir)
	return append(out, Libraries(ctx, libraries, appDir)...)
}

// isRegular follows symlinks so linked archives are accepted.
func isRegular(dir string, ent os.DirEntry) bool {
	if ent.Type().IsRegular() {
		return true
	}
	if ent.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, ent.Name()))
	return err == nil && info.Mode().IsRegular()
}

func readable(p string) bool {
	f, err := os.Open(p)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
