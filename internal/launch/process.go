package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/flarebyte/launchpad/internal/ctxlog"
)

// EnvAppDir is set in the child environment to the application directory.
const EnvAppDir = "LAUNCHPAD_APP_DIR"

const defaultTermGrace = 5 * time.Second

// ExecOptions configures Execute.
type ExecOptions struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Env is overlaid on the launchpad environment.
	Env map[string]string
	Dir string
	// ProcessGroup starts the child in its own process group; signals are
	// then delivered to the whole group.
	ProcessGroup bool
	// TermGrace is the delay between SIGTERM and SIGKILL once ctx is done.
	TermGrace time.Duration
}

// Execute runs the plan and waits for it. SIGTERM received meanwhile is
// forwarded to the child, and so is SIGINT when the child has its own
// process group. When ctx is done the child gets
// SIGTERM, then SIGKILL after TermGrace. The returned code is the child's
// exit status, or 128+n when it was killed by signal n.
func Execute(ctx context.Context, p *Plan, opts ExecOptions) (int, error) {
	logger := ctxlog.FromContext(ctx)
	if opts.TermGrace <= 0 {
		opts.TermGrace = defaultTermGrace
	}

	cmd := exec.Command(p.Java, p.Args()...)
	cmd.Dir = opts.Dir
	env := map[string]string{EnvAppDir: p.AppDir}
	for k, v := range opts.Env {
		env[k] = v
	}
	cmd.Env = applyEnvOverlay(os.Environ(), env)
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	if opts.ProcessGroup {
		cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	if err := cmd.Start(); err != nil {
		var ee *exec.Error
		if errors.As(err, &ee) || errors.Is(err, fs.ErrNotExist) {
			return exitCodeNotFound, ExitError{Code: exitCodeNotFound, Msg: fmt.Sprintf("program %s not found", p.Java)}
		}
		return exitCodeFailure, fmt.Errorf("program %s start failed: %w", p.Java, err)
	}
	logger.Debug("child started", "pid", cmd.Process.Pid, "java", p.Java)

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	var runErr error
wait:
	for {
		select {
		case runErr = <-done:
			break wait
		case sig := <-sigs:
			if s, ok := sig.(syscall.Signal); ok && shouldForward(s, opts.ProcessGroup) {
				logger.Debug("forwarding signal", "signal", s.String())
				signalProcess(cmd, opts.ProcessGroup, s)
			}
		case <-ctx.Done():
			signalProcess(cmd, opts.ProcessGroup, syscall.SIGTERM)
			grace := time.NewTimer(opts.TermGrace)
			select {
			case runErr = <-done:
				grace.Stop()
			case <-grace.C:
				logger.Warn("child ignored SIGTERM, killing", "pid", cmd.Process.Pid)
				signalProcess(cmd, opts.ProcessGroup, syscall.SIGKILL)
				runErr = <-done
			}
			break wait
		}
	}

	if runErr == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if !errors.As(runErr, &exitErr) {
		return exitCodeFailure, fmt.Errorf("program %s execution failed: %w", p.Java, runErr)
	}
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return exitCodeSignaled + int(status.Signal()), nil
	}
	return exitErr.ExitCode(), nil
}

// shouldForward reports whether sig must be relayed to the child. A child
// sharing launchpad's process group gets terminal SIGINT directly.
func shouldForward(sig syscall.Signal, group bool) bool {
	return group || sig != syscall.SIGINT
}

func signalProcess(cmd *exec.Cmd, group bool, sig syscall.Signal) {
	if cmd == nil || cmd.Process == nil {
		return
	}
	pid := cmd.Process.Pid
	if group && pid > 0 {
		if err := syscall.Kill(-pid, sig); err == nil {
			return
		}
	}
	_ = cmd.Process.Signal(sig)
}

// applyEnvOverlay returns base with overlay applied, sorted by name.
func applyEnvOverlay(base []string, overlay map[string]string) []string {
	m := map[string]string{}
	for _, kv := range base {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		m[k] = v
	}
	for k, v := range overlay {
		m[k] = v
	}
	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
