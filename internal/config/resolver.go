package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/flarebyte/launchpad/internal/classpath"
	"github.com/flarebyte/launchpad/internal/ctxlog"
	"github.com/flarebyte/launchpad/internal/interp"
	"github.com/flarebyte/launchpad/internal/lookup"
)

// Keys configuring placeholder resolution.
const (
	KeyEnvFile                   = "env-file"
	KeyLookupScript              = "lookup-script"
	KeyLookupScriptFile          = "lookup-script-file"
	KeyLookupScriptTimeoutMs     = "lookup-script-timeout-ms"
	KeyInterpolationMarker       = "interpolation.marker"
	KeyInterpolationOpeningBrace = "interpolation.opening-brace"
	KeyInterpolationClosingBrace = "interpolation.closing-brace"
	KeyInterpolationEscape       = "interpolation.escape"
	KeyInterpolationEscapeMode   = "interpolation.escape-mode"
)

// Resolver is the launcher's resolver chain: application environment,
// then the env file, then the lookup script.
type Resolver struct {
	interp.Chain
	script *lookup.LuaScript
}

// Close releases the lookup script, if any.
func (r *Resolver) Close() {
	if r.script != nil {
		r.script.Close()
	}
}

// NewResolver builds the resolver chain for p. The env file and script
// file names are expanded against the application environment only and
// resolved relative to the application directory.
func NewResolver(ctx context.Context, p Properties, engine *interp.Engine, opts BuildOptions) (*Resolver, error) {
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}
	env := lookup.NewEnvironment(opts.AppDir)
	env.LookupEnv = opts.LookupEnv
	logger := ctxlog.FromContext(ctx)

	envFile := classpath.Resolve(env.AppDir, engine.Translate(p.String(KeyEnvFile, lookup.DefaultDotEnvFile), env))
	dot, err := lookup.LoadDotEnv(envFile)
	if err != nil {
		return nil, err
	}
	if len(dot) > 0 {
		logger.Debug("env file loaded", "path", envFile, "entries", len(dot))
	}

	res := &Resolver{Chain: interp.Chain{env, dot}}

	code, err := lookupScriptSource(p, engine, env)
	if err != nil {
		return nil, err
	}
	if code == "" {
		return res, nil
	}
	timeout := time.Duration(0)
	if v, ok := p[KeyLookupScriptTimeoutMs]; ok {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("invalid %s: %q", KeyLookupScriptTimeoutMs, v)
		}
		timeout = time.Duration(ms) * time.Millisecond
	}
	script, err := lookup.NewLuaScript(code, lookup.LuaOptions{
		AppDir:    env.AppDir,
		Timeout:   timeout,
		LookupEnv: opts.LookupEnv,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	res.script = script
	res.Chain = append(res.Chain, script)
	return res, nil
}

func lookupScriptSource(p Properties, engine *interp.Engine, env lookup.Environment) (string, error) {
	if code, ok := p[KeyLookupScript]; ok {
		return code, nil
	}
	file, ok := p[KeyLookupScriptFile]
	if !ok || file == "" {
		return "", nil
	}
	path := classpath.Resolve(env.AppDir, engine.Translate(file, env))
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read lookup script: %w", err)
	}
	return string(b), nil
}
