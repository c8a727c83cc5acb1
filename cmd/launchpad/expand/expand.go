package expand

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flarebyte/launchpad/internal/config"
	"github.com/flarebyte/launchpad/internal/launch"
)

var (
	flagMarker       string
	flagOpeningBrace string
	flagClosingBrace string
	flagEscape       string
	flagEscapeMode   string
	flagAppDir       string
	flagEnvFile      string
	flagScriptFile   string
)

// Cmd implements `launchpad expand`: translate each argument with the
// launcher's resolvers and print one result per line.
var Cmd = &cobra.Command{
	Use:           "expand [flags] TEXT...",
	Short:         "Expand ${...} placeholders in the given text",
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		p := properties(cmd)
		engine, err := config.EngineFor(p)
		if err != nil {
			return err
		}
		appDir := launch.AppDir(ctx, flagAppDir)
		res, err := config.NewResolver(ctx, p, engine, config.BuildOptions{AppDir: appDir})
		if err != nil {
			return err
		}
		defer res.Close()

		out := cmd.OutOrStdout()
		for _, a := range args {
			if _, err := fmt.Fprintln(out, engine.Translate(a, res)); err != nil {
				return err
			}
		}
		return nil
	},
}

// properties maps the flags that were set onto configuration keys.
func properties(cmd *cobra.Command) config.Properties {
	p := config.Properties{}
	set := func(flag, key, value string) {
		if cmd.Flags().Changed(flag) {
			p[key] = value
		}
	}
	set("marker", config.KeyInterpolationMarker, flagMarker)
	set("opening-brace", config.KeyInterpolationOpeningBrace, flagOpeningBrace)
	set("closing-brace", config.KeyInterpolationClosingBrace, flagClosingBrace)
	set("escape", config.KeyInterpolationEscape, flagEscape)
	set("escape-mode", config.KeyInterpolationEscapeMode, flagEscapeMode)
	set("env-file", config.KeyEnvFile, flagEnvFile)
	set("lookup-script-file", config.KeyLookupScriptFile, flagScriptFile)
	return p
}

func init() {
	Cmd.Flags().StringVar(&flagMarker, "marker", "$", "Placeholder marker character")
	Cmd.Flags().StringVar(&flagOpeningBrace, "opening-brace", "{", "Opening brace character")
	Cmd.Flags().StringVar(&flagClosingBrace, "closing-brace", "}", "Closing brace character")
	Cmd.Flags().StringVar(&flagEscape, "escape", "\\", "Escape character")
	Cmd.Flags().StringVar(&flagEscapeMode, "escape-mode", "strict", "Escape mode: none, strict or all")
	Cmd.Flags().StringVar(&flagAppDir, "appdir", "", "Application directory (defaults to the executable's directory)")
	Cmd.Flags().StringVar(&flagEnvFile, "env-file", "", "Env file read after the process environment (default .env in the application directory)")
	Cmd.Flags().StringVar(&flagScriptFile, "lookup-script-file", "", "Lua script defining lookup(name)")
}
