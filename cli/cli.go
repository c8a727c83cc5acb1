// Package cli holds build stamps for the launchpad binary. Release builds
// set them with ldflags, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/launchpad/cli.Version=1.2.3' -X 'github.com/flarebyte/launchpad/cli.Commit=abc1234' -X 'github.com/flarebyte/launchpad/cli.Date=2026-02-09'"
//
// Empty stamps are filled in by the buildinfo package from the toolchain's
// VCS data.
package cli

var (
	Version string
	Commit  string
	Date    string
)
