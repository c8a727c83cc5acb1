package expand

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func runExpand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	Cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	if args == nil {
		args = []string{}
	}
	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetArgs(args)
	err := Cmd.Execute()
	return out.String(), err
}

func TestExpand_DefaultSyntax(t *testing.T) {
	t.Setenv("LAUNCHPAD_EXPAND_TEST", "value")
	appDir := t.TempDir()
	got, err := runExpand(t, "--appdir", appDir,
		"${LAUNCHPAD_EXPAND_TEST}",
		`\${LAUNCHPAD_EXPAND_TEST}`,
		"${SYS:APP_DIR}/lib",
		"${unterminated")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "value\n${LAUNCHPAD_EXPAND_TEST}\n" + appDir + "/lib\n${unterminated\n"
	if got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
}

func TestExpand_CustomSyntax(t *testing.T) {
	t.Setenv("LAUNCHPAD_EXPAND_TEST", "value")
	got, err := runExpand(t, "--appdir", t.TempDir(), "--marker", "%", "--opening-brace", "(", "--closing-brace", ")",
		"%(LAUNCHPAD_EXPAND_TEST) ${LAUNCHPAD_EXPAND_TEST}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "value ${LAUNCHPAD_EXPAND_TEST}\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestExpand_InvalidEscapeMode(t *testing.T) {
	_, err := runExpand(t, "--escape-mode", "sometimes", "x")
	if err == nil || !strings.HasPrefix(err.Error(), "invalid interpolation.escape-mode") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExpand_RequiresText(t *testing.T) {
	if _, err := runExpand(t); err == nil {
		t.Fatalf("expected error without arguments")
	}
}
