package version

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/flarebyte/launchpad/internal/buildinfo"
)

var (
	flagShort bool
	flagJSON  bool
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the launcher version",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if flagShort || !flagJSON {
			// Exactly one line.
			if _, err := fmt.Fprintf(out, "launchpad %s\n", buildinfo.Summary()); err != nil {
				return err
			}
			return nil
		}

		// JSON goes to stdout, a human friendly line to stderr.
		_, _ = fmt.Fprintf(os.Stderr, "launchpad version: %s\n", buildinfo.Summary())
		info := map[string]any{
			"version":   buildinfo.Version,
			"commit":    buildinfo.Commit,
			"date":      buildinfo.Date,
			"built_by":  buildinfo.BuiltBy,
			"go":        runtime.Version(),
			"go_os":     runtime.GOOS,
			"go_arch":   runtime.GOARCH,
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		}
		return encodeJSON(out, info)
	},
}

func init() {
	VersionCmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	VersionCmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
}
