package run

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/flarebyte/launchpad/internal/launch"
)

// Cmd represents the `launchpad run` command. Flags are parsed by the
// launcher itself so application arguments pass through untouched.
var Cmd = &cobra.Command{
	Use:                "run [-main class] [-lib dirs] [-cp entries] [-appdir dir] [-config file] [--] [app-args...]",
	Short:              "Launch the application",
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

		// SIGHUP terminates the child; SIGTERM is forwarded, SIGINT too
		// when the child has its own process group.
		ctx, stop := signal.NotifyContext(ctx, syscall.SIGHUP)
		defer stop()
		code, err := launch.Execute(ctx, prep.Plan, launch.ExecOptions{
			Stdin:        os.Stdin,
			Stdout:       os.Stdout,
			Stderr:       os.Stderr,
			ProcessGroup: ownProcessGroup(os.Stdin),
		})
		if err != nil {
			return err
		}
		if code != 0 {
			return launch.ExitError{Code: code}
		}
		return nil
	},
}

// ownProcessGroup reports whether the child should get its own process
// group. Such a child cannot read from the controlling terminal.
func ownProcessGroup(stdin *os.File) bool {
	return !term.IsTerminal(int(stdin.Fd()))
}
