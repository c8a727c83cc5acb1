package launch

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/flarebyte/launchpad/internal/classpath"
	"github.com/flarebyte/launchpad/internal/config"
	"github.com/flarebyte/launchpad/internal/ctxlog"
)

// SecurityManagerProperty is dropped from the command line when the
// configuration asks to uninstall the security manager.
const SecurityManagerProperty = "java.security.manager"

const defaultJava = "java"

// Plan is a fully resolved JVM invocation.
type Plan struct {
	AppDir           string            `json:"appDir"`
	Java             string            `json:"java"`
	JVMOptions       []string          `json:"jvmOptions"`
	SystemProperties map[string]string `json:"systemProperties"`
	Classpath        []string          `json:"classpath"`
	MainClass        string            `json:"mainClass"`
	AppArgs          []string          `json:"appArgs"`
}

// PlanOptions configures NewPlan.
type PlanOptions struct {
	AppDir  string
	AppArgs []string
	// Getenv replaces os.Getenv for JAVA_HOME, mainly for tests.
	Getenv func(string) string
}

// NewPlan resolves cfg into a Plan. Classpath entries that cannot be read
// are dropped with a warning; an empty main class is an error.
func NewPlan(ctx context.Context, cfg *config.Configuration, opts PlanOptions) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)
	main := cfg.MainClass()
	if main == "" {
		return nil, ExitError{
			Code: exitCodeFailure,
			Msg:  fmt.Sprintf("invalid main-class entry, cannot proceed (app dir: %s)", opts.AppDir),
		}
	}

	props := make(map[string]string, len(cfg.Settings.SystemProperties))
	for name, v := range cfg.Settings.SystemProperties {
		props[name] = v
	}
	if cfg.Settings.UninstallSecurityManager {
		if _, ok := props[SecurityManagerProperty]; ok {
			delete(props, SecurityManagerProperty)
			logger.Debug("security manager property dropped")
		}
	}

	cp := classpath.Assemble(ctx, cfg.Classpath(), cfg.Libraries(), opts.AppDir)
	logger.Debug("application directory", "dir", opts.AppDir)
	for i, entry := range cp {
		logger.Debug("classpath", fmt.Sprintf("ClassPath[%d]", i), entry)
	}

	appArgs := opts.AppArgs
	if appArgs == nil {
		appArgs = []string{}
	}
	return &Plan{
		AppDir:           opts.AppDir,
		Java:             javaExecutable(cfg.Settings.Java, opts.Getenv),
		JVMOptions:       append([]string{}, cfg.Settings.JVMOptions...),
		SystemProperties: props,
		Classpath:        cp,
		MainClass:        main,
		AppArgs:          appArgs,
	}, nil
}

func javaExecutable(configured string, getenv func(string) string) string {
	if configured != "" {
		return configured
	}
	if getenv != nil {
		if home := getenv("JAVA_HOME"); home != "" {
			return filepath.Join(home, "bin", defaultJava)
		}
	}
	return defaultJava
}

// Args returns the JVM arguments: options, system properties, classpath,
// main class and application arguments, in that order.
func (p *Plan) Args() []string {
	names := make([]string, 0, len(p.SystemProperties))
	for name := range p.SystemProperties {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]string, 0, len(p.JVMOptions)+len(names)+len(p.AppArgs)+3)
	args = append(args, p.JVMOptions...)
	for _, name := range names {
		args = append(args, "-D"+name+"="+p.SystemProperties[name])
	}
	if len(p.Classpath) > 0 {
		args = append(args, "-cp", classpath.Join(p.Classpath))
	}
	args = append(args, p.MainClass)
	return append(args, p.AppArgs...)
}

// Command returns the executable followed by Args.
func (p *Plan) Command() []string {
	return append([]string{p.Java}, p.Args()...)
}
