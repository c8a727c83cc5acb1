package run

import (
	"os"
	"testing"
)

func TestOwnProcessGroup_PipedStdin(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()
	if !ownProcessGroup(r) {
		t.Fatalf("piped stdin should get its own process group")
	}
}
