package inspect

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/flarebyte/launchpad/internal/testutil"
)

func TestInspect_PrintsPlan(t *testing.T) {
	appDir := t.TempDir()
	err := testutil.WriteTree(appDir, map[string]string{
		"launchpad.properties": "main=org.example.Main\njava=/opt/jdk/bin/java\nsystem-property.app.home=${SYS:APP_DIR}\n",
	})
	if err != nil {
		t.Fatalf("write tree: %v", err)
	}

	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetArgs([]string{"-appdir", appDir, "--", "<arg>"})
	if err := Cmd.Execute(); err != nil {
		t.Fatalf("inspect: %v", err)
	}

	var got struct {
		ConfigFile       string            `json:"configFile"`
		MainClass        string            `json:"mainClass"`
		SystemProperties map[string]string `json:"systemProperties"`
		AppArgs          []string          `json:"appArgs"`
		Command          []string          `json:"command"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out.String())
	}
	if got.ConfigFile != filepath.Join(appDir, "launchpad.properties") || got.MainClass != "org.example.Main" {
		t.Fatalf("unexpected report: %+v", got)
	}
	want := []string{"/opt/jdk/bin/java", "-Dapp.home=" + appDir, "org.example.Main", "<arg>"}
	if diff := cmp.Diff(want, got.Command); diff != "" {
		t.Fatalf("command mismatch (-want +got):\n%s", diff)
	}
	if !bytes.Contains(out.Bytes(), []byte(`"<arg>"`)) {
		t.Fatalf("html escaping should be off:\n%s", out.String())
	}
}
