package root

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flarebyte/launchpad/cmd/launchpad/expand"
	"github.com/flarebyte/launchpad/cmd/launchpad/inspect"
	"github.com/flarebyte/launchpad/cmd/launchpad/run"
	"github.com/flarebyte/launchpad/cmd/launchpad/version"
	"github.com/flarebyte/launchpad/internal/config"
	"github.com/flarebyte/launchpad/internal/ctxlog"
)

// NewRootCmd creates the root command for launchpad.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launchpad",
		Short: "Start a JVM application from its directory layout and a launcher configuration",
		Long: "Start a JVM application from its directory layout and a launcher configuration.\n\n" +
			"The configuration is read from launchpad.<ext> in the application directory, " +
			"trying " + strings.Join(config.SupportedExtensions(), ", ") + " in that order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(run.Cmd)
	cmd.AddCommand(inspect.Cmd)
	cmd.AddCommand(expand.Cmd)

	return cmd
}

// Execute runs the root command with provided args. The logger is
// configured from LAUNCHPAD_LOG_LEVEL and LAUNCHPAD_LOG_FORMAT.
func Execute(args []string) error {
	logger, level := ctxlog.FromEnv(os.Getenv)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	ctx = ctxlog.WithLevel(ctx, level)

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
