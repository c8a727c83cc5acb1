// Package launch turns a built configuration into a JVM command line and
// runs it as a child process.
package launch

import (
	"context"
	"os"
	"path/filepath"

	"github.com/flarebyte/launchpad/internal/ctxlog"
)

var executable = os.Executable

// AppDir returns the application directory: override when set, else the
// directory holding the resolved launchpad executable, else ".".
func AppDir(ctx context.Context, override string) string {
	logger := ctxlog.FromContext(ctx)
	if override != "" {
		if abs, err := filepath.Abs(override); err == nil {
			return abs
		}
		return override
	}
	exe, err := executable()
	if err == nil {
		if resolved, rerr := filepath.EvalSymlinks(exe); rerr == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	logger.Warn("cannot locate executable, using current directory", "error", err)
	if wd, werr := os.Getwd(); werr == nil {
		return wd
	}
	return "."
}
