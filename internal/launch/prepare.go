package launch

import (
	"context"
	"os"

	"github.com/flarebyte/launchpad/internal/config"
	"github.com/flarebyte/launchpad/internal/ctxlog"
)

// Prepared is everything resolved before the JVM is started.
type Prepared struct {
	Params     config.Parameters
	ConfigFile string
	Config     *config.Configuration
	Plan       *Plan
}

// Prepare parses launcher flags from the front of args, loads and builds
// the configuration and resolves the plan. A configuration with debug
// enabled lowers the context's log level before the plan is resolved.
func Prepare(ctx context.Context, args []string) (*Prepared, error) {
	logger := ctxlog.FromContext(ctx)
	params, err := config.ParseParameters(args)
	if err != nil {
		return nil, err
	}
	appDir := AppDir(ctx, params.AppDir)
	props, path, err := config.LoadForApp(appDir, params.ConfigFile)
	if err != nil {
		return nil, err
	}
	if path == "" {
		logger.Debug("no configuration file", "appDir", appDir)
	} else {
		logger.Debug("configuration loaded", "path", path, "keys", len(props))
	}

	cfg, err := config.Build(ctx, props, params, config.BuildOptions{AppDir: appDir})
	if err != nil {
		return nil, err
	}
	if cfg.Settings.Debug {
		ctxlog.EnableDebug(ctx)
	}
	plan, err := NewPlan(ctx, cfg, PlanOptions{
		AppDir:  appDir,
		AppArgs: params.AppArgs(args),
		Getenv:  os.Getenv,
	})
	if err != nil {
		return nil, err
	}
	return &Prepared{Params: params, ConfigFile: path, Config: cfg, Plan: plan}, nil
}
