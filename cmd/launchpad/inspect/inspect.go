package inspect

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/flarebyte/launchpad/internal/launch"
)

type report struct {
	ConfigFile string `json:"configFile"`
	*launch.Plan
	Command []string `json:"command"`
}

// Cmd implements `launchpad inspect`: resolve everything `run` would and
// print the plan as JSON instead of starting the JVM.
var Cmd = &cobra.Command{
	Use:                "inspect [-main class] [-lib dirs] [-cp entries] [-appdir dir] [-config file] [--] [app-args...]",
	Short:              "Print the resolved launch plan as JSON",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		prep, err := launch.Prepare(ctx, args)
		if err != nil {
			return err
		}
		return encodeJSON(cmd.OutOrStdout(), report{
			ConfigFile: prep.ConfigFile,
			Plan:       prep.Plan,
			Command:    prep.Plan.Command(),
		})
	},
}
