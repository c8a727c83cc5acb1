// Package buildinfo exposes version metadata for the launcher. Values can
// be set at build time via -ldflags, either here or in the cli package.
// Binaries built with `go install` fall back to the module version and VCS
// stamp recorded by the toolchain.
package buildinfo

import (
	"runtime/debug"
	"strings"

	"github.com/flarebyte/launchpad/cli"
)

var (
	// Version is the semantic version or custom string.
	Version = "dev"
	Commit  = ""
	// Date is the build time in RFC3339 or similar.
	Date    = ""
	BuiltBy = ""
)

var readBuildInfo = debug.ReadBuildInfo

// Summary returns a concise single-line version string.
func Summary() string {
	v, c, d := resolve()

	parts := make([]string, 0, 2)
	if c != "" {
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if d != "" {
		parts = append(parts, "date="+d)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}

// resolve picks version, commit and date from ldflags, then cli, then the
// toolchain's build info.
func resolve() (version, commit, date string) {
	version, commit, date = Version, Commit, Date
	if version == "" || version == "dev" {
		if cli.Version != "" {
			version = cli.Version
		}
	}
	if commit == "" {
		commit = cli.Commit
	}
	if date == "" {
		date = cli.Date
	}
	if bi, ok := readBuildInfo(); ok && bi != nil {
		if (version == "" || version == "dev") && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "":
				commit = s.Value
			case s.Key == "vcs.time" && date == "":
				date = s.Value
			}
		}
	}
	if version == "" {
		version = "dev"
	}
	return version, commit, date
}
