package lookup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/flarebyte/launchpad/internal/interp"
)

func fakeEnv(values map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := values[name]
		return v, ok
	}
}

func TestEnvironment_AppDirAndEnv(t *testing.T) {
	e := Environment{AppDir: "/opt/app", LookupEnv: fakeEnv(map[string]string{"HOME": "/home/u"})}
	if v, ok := e.Lookup(AppDirName); !ok || v != "/opt/app" {
		t.Fatalf("app dir: %q %v", v, ok)
	}
	if v, ok := e.Lookup("HOME"); !ok || v != "/home/u" {
		t.Fatalf("HOME: %q %v", v, ok)
	}
	if _, ok := e.Lookup("MISSING"); ok {
		t.Fatalf("expected miss")
	}
}

func TestNewEnvironment_AbsoluteAppDir(t *testing.T) {
	e := NewEnvironment(".")
	if !filepath.IsAbs(e.AppDir) {
		t.Fatalf("expected absolute dir, got %q", e.AppDir)
	}
	t.Setenv("LAUNCHPAD_TEST_VAR", "x1")
	if v, ok := e.Lookup("LAUNCHPAD_TEST_VAR"); !ok || v != "x1" {
		t.Fatalf("env: %q %v", v, ok)
	}
}

func TestEnvironment_DrivesEngine(t *testing.T) {
	e := Environment{AppDir: "/opt/app", LookupEnv: fakeEnv(map[string]string{"LOGS": "logs"})}
	got := interp.Translate("${SYS:APP_DIR}/${LOGS}/out.log", e)
	if got != "/opt/app/logs/out.log" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, ".env")
	if err := os.WriteFile(p, []byte("# comment\nDB_HOST=db.local\nexport PORT=5432\nQUOTED=\"a b\"\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	r, err := LoadDotEnv(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for k, want := range map[string]string{"DB_HOST": "db.local", "PORT": "5432", "QUOTED": "a b"} {
		if v, ok := r.Lookup(k); !ok || v != want {
			t.Fatalf("%s: want %q, got %q %v", k, want, v, ok)
		}
	}
	if _, present := os.LookupEnv("DB_HOST"); present {
		t.Fatalf("process environment was modified")
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	r, err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r) != 0 {
		t.Fatalf("expected empty resolver")
	}
	r, err = LoadDotEnv("")
	if err != nil || len(r) != 0 {
		t.Fatalf("unexpected result for empty path: %v %v", r, err)
	}
}

func TestLuaScript_Lookup(t *testing.T) {
	code := `
function lookup(name)
  if name == "greeting" then return "hello " .. (getenv("WHO") or "nobody") end
  if name == "answer" then return 42 end
  if name == "root" then return app_dir end
  if name == "boom" then error("bad") end
  if string.sub(name, 1, 4) == "upr:" then return string.upper(string.sub(name, 5)) end
  return nil
end`
	s, err := NewLuaScript(code, LuaOptions{AppDir: "/srv/app", LookupEnv: fakeEnv(map[string]string{"WHO": "world"})})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer s.Close()

	cases := map[string]string{
		"greeting": "hello world",
		"answer":   "42",
		"root":     "/srv/app",
		"upr:abc":  "ABC",
	}
	for name, want := range cases {
		if v, ok := s.Lookup(name); !ok || v != want {
			t.Fatalf("%s: want %q, got %q %v", name, want, v, ok)
		}
	}
	for _, name := range []string{"other", "boom"} {
		if v, ok := s.Lookup(name); ok {
			t.Fatalf("%s: expected miss, got %q", name, v)
		}
	}
}

func TestLuaScript_MissingFunction(t *testing.T) {
	_, err := NewLuaScript(`x = 1`, LuaOptions{})
	if err == nil || err.Error() != "lookup script must define a lookup(name) function" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLuaScript_SyntaxError(t *testing.T) {
	_, err := NewLuaScript(`function lookup(`, LuaOptions{})
	if err == nil || !strings.HasPrefix(err.Error(), "lookup script:") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLuaScript_SandboxHasNoOS(t *testing.T) {
	s, err := NewLuaScript(`function lookup(name) return os.getenv(name) end`, LuaOptions{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer s.Close()
	if _, ok := s.Lookup("HOME"); ok {
		t.Fatalf("os library should not be reachable")
	}
	if _, err := NewLuaScript(`dofile("/etc/passwd") function lookup(n) end`, LuaOptions{}); err == nil {
		t.Fatalf("expected dofile to be unavailable")
	}
}

func TestLuaScript_Timeout(t *testing.T) {
	s, err := NewLuaScript(`function lookup(name) while true do end end`, LuaOptions{Timeout: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer s.Close()
	if _, ok := s.Lookup("x"); ok {
		t.Fatalf("expected miss on timeout")
	}
}

func TestLuaScript_ClosedIsMiss(t *testing.T) {
	s, err := NewLuaScript(`function lookup(name) return "v" end`, LuaOptions{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	s.Close()
	if _, ok := s.Lookup("x"); ok {
		t.Fatalf("expected miss after close")
	}
}
