package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

const (
	defaultLuaTimeout = time.Second
	luaLookupFunction = "lookup"
)

// LuaOptions configures a LuaScript.
type LuaOptions struct {
	// AppDir is exposed to the script as the global app_dir.
	AppDir string
	// Timeout bounds loading the script and each lookup call.
	Timeout time.Duration
	// LookupEnv backs the getenv(name) helper. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	Logger    *slog.Logger
}

// LuaScript resolves names by calling lookup(name) in a sandboxed Lua
// state. A nil or false result, a table, or a runtime error means the name
// has no value. Calls are serialized because an LState is not safe for
// concurrent use.
type LuaScript struct {
	mu      sync.Mutex
	L       *lua.LState
	fn      *lua.LFunction
	timeout time.Duration
	logger  *slog.Logger
}

// NewLuaScript runs code once and keeps its lookup function.
func NewLuaScript(code string, opts LuaOptions) (*LuaScript, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultLuaTimeout
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	L := newSandboxState(opts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()
	L.SetContext(ctx)
	err := L.DoString(code)
	L.RemoveContext()
	if err != nil {
		L.Close()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, errors.New("lookup script: timeout")
		}
		return nil, fmt.Errorf("lookup script: %v", err)
	}
	fn, ok := L.GetGlobal(luaLookupFunction).(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, errors.New("lookup script must define a lookup(name) function")
	}
	return &LuaScript{L: L, fn: fn, timeout: opts.Timeout, logger: opts.Logger}, nil
}

// Lookup implements interp.Resolver.
func (s *LuaScript) Lookup(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.L == nil {
		return "", false
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	if err := s.L.CallByParam(lua.P{Fn: s.fn, NRet: 1, Protect: true}, lua.LString(name)); err != nil {
		s.logger.Debug("lookup script failed", "name", name, "error", err)
		return "", false
	}
	ret := s.L.Get(-1)
	s.L.Pop(1)
	switch v := ret.(type) {
	case lua.LString:
		return string(v), true
	case lua.LNumber:
		return v.String(), true
	case lua.LBool:
		if !bool(v) {
			return "", false
		}
		return v.String(), true
	default:
		return "", false
	}
}

// Close releases the Lua state.
func (s *LuaScript) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.L != nil {
		s.L.Close()
		s.L = nil
	}
}

// newSandboxState opens only the base, string, table and math libraries,
// drops the file loaders from base and installs getenv and app_dir.
func newSandboxState(opts LuaOptions) *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:    true,
		RegistrySize:    256,
		RegistryMaxSize: 4096,
	})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib(lua.BaseLibName, lua.OpenBase)
	openLib(lua.StringLibName, lua.OpenString)
	openLib(lua.TabLibName, lua.OpenTable)
	openLib(lua.MathLibName, lua.OpenMath)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "module", "require"} {
		L.SetGlobal(name, lua.LNil)
	}

	lookupEnv := opts.LookupEnv
	L.SetGlobal("getenv", L.NewFunction(func(L *lua.LState) int {
		v, ok := lookupEnv(L.CheckString(1))
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LString(v))
		return 1
	}))
	L.SetGlobal("app_dir", lua.LString(opts.AppDir))
	return L
}
