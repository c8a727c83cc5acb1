// Package config parses launcher parameters, loads the launcher
// configuration file in any supported format and assembles the effective
// Configuration, expanding ${...} placeholders in its values.
package config

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/flarebyte/launchpad/internal/classpath"
	"github.com/flarebyte/launchpad/internal/ctxlog"
	"github.com/flarebyte/launchpad/internal/interp"
)

// Recognized configuration keys.
const (
	KeyConfigVersion            = "config-version"
	KeyMain                     = "main"
	KeyDebug                    = "debug"
	KeyLibraries                = "libraries"
	KeyClasspath                = "classpath"
	KeySystemPropertyPrefix     = "system-property."
	KeyUninstallSecurityManager = "uninstall-security-manager"
	KeyJava                     = "java"
	KeyJVMOptions               = "jvm-options"
)

// Settings are the values read from the configuration file.
type Settings struct {
	MainClass                string
	Debug                    bool
	Libraries                []string
	Classpath                []string
	SystemProperties         map[string]string
	UninstallSecurityManager bool
	Java                     string
	JVMOptions               []string
}

// Configuration combines command-line parameters with file settings.
type Configuration struct {
	Params   Parameters
	Settings Settings
}

// Classpath returns the parameter entries followed by the configured ones.
func (c *Configuration) Classpath() []string {
	return concat(c.Params.Classpath, c.Settings.Classpath)
}

// Libraries returns the parameter entries followed by the configured ones.
func (c *Configuration) Libraries() []string {
	return concat(c.Params.Libraries, c.Settings.Libraries)
}

// MainClass prefers the command-line main class over the configured one.
func (c *Configuration) MainClass() string {
	if c.Params.MainClass != "" {
		return c.Params.MainClass
	}
	return c.Settings.MainClass
}

// SystemPropertyNames returns the system property names in sorted order.
func (c *Configuration) SystemPropertyNames() []string {
	names := make([]string, 0, len(c.Settings.SystemProperties))
	for k := range c.Settings.SystemProperties {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func concat(first, second []string) []string {
	out := make([]string, 0, len(first)+len(second))
	out = append(out, first...)
	return append(out, second...)
}

// BuildOptions configures Build.
type BuildOptions struct {
	AppDir string
	// LookupEnv replaces os.LookupEnv, mainly for tests.
	LookupEnv func(string) (string, bool)
}

// Build reads Settings from p. System property values, the main class,
// the java executable, JVM options, libraries and classpath entries are
// expanded with the resolver chain described by p (see NewResolver).
// System properties that expand to an empty string are dropped.
func Build(ctx context.Context, p Properties, params Parameters, opts BuildOptions) (*Configuration, error) {
	if p == nil {
		p = Properties{}
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}
	engine, err := EngineFor(p)
	if err != nil {
		return nil, err
	}
	res, err := NewResolver(ctx, p, engine, opts)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	b := builder{p: p, engine: engine, res: res}
	s := Settings{
		MainClass:                b.translate(p[KeyMain]),
		Debug:                    p.Bool(KeyDebug),
		Libraries:                b.pathList(KeyLibraries),
		Classpath:                b.pathList(KeyClasspath),
		SystemProperties:         map[string]string{},
		UninstallSecurityManager: p.Bool(KeyUninstallSecurityManager),
		Java:                     b.translate(p[KeyJava]),
		JVMOptions:               b.optionList(KeyJVMOptions),
	}
	for name, raw := range p.WithPrefix(KeySystemPropertyPrefix) {
		if v := b.translate(raw); v != "" {
			s.SystemProperties[name] = v
		}
	}

	ctxlog.FromContext(ctx).Debug("configuration built",
		"main", s.MainClass,
		"systemProperties", len(s.SystemProperties),
		"libraries", len(s.Libraries),
		"classpath", len(s.Classpath))
	return &Configuration{Params: params, Settings: s}, nil
}

type builder struct {
	p      Properties
	engine *interp.Engine
	res    interp.Resolver
}

func (b builder) translate(v string) string {
	return b.engine.Translate(v, b.res)
}

// pathList expands a ':'-separated scalar as a whole before splitting, so
// placeholders such as ${SYS:APP_DIR} survive. List items are expanded
// one by one and never split.
func (b builder) pathList(key string) []string {
	if v, ok := b.p[key]; ok {
		return classpath.SplitPathList(b.translate(v), classpath.ConfigSeparator)
	}
	return b.items(key)
}

// optionList is pathList for whitespace-separated options.
func (b builder) optionList(key string) []string {
	if v, ok := b.p[key]; ok {
		return classpath.SplitPathList(b.translate(v), " \t\r\n")
	}
	return b.items(key)
}

func (b builder) items(key string) []string {
	out := []string{}
	for _, it := range b.p.Items(key) {
		if v := b.translate(it); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// EngineFor returns the interpolation engine described by the
// interpolation.* keys, defaulting to ${name} with a strict backslash
// escape.
func EngineFor(p Properties) (*interp.Engine, error) {
	s, err := syntaxFrom(p)
	if err != nil {
		return nil, err
	}
	return interp.New(s), nil
}

func syntaxFrom(p Properties) (interp.Syntax, error) {
	s := interp.DefaultSyntax()
	chars := []struct {
		key string
		dst *rune
	}{
		{KeyInterpolationMarker, &s.Marker},
		{KeyInterpolationOpeningBrace, &s.OpeningBrace},
		{KeyInterpolationClosingBrace, &s.ClosingBrace},
		{KeyInterpolationEscape, &s.Escape},
	}
	for _, c := range chars {
		v, ok := p[c.key]
		if !ok {
			continue
		}
		r := []rune(v)
		if len(r) != 1 {
			return interp.Syntax{}, fmt.Errorf("invalid %s: %q must be a single character", c.key, v)
		}
		*c.dst = r[0]
	}
	if v, ok := p[KeyInterpolationEscapeMode]; ok {
		mode, err := interp.ParseEscapeMode(v)
		if err != nil {
			return interp.Syntax{}, fmt.Errorf("invalid %s: %w", KeyInterpolationEscapeMode, err)
		}
		s.EscapeMode = mode
	}
	if err := s.Validate(); err != nil {
		return interp.Syntax{}, err
	}
	return s, nil
}
