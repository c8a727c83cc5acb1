package testutil

import (
	"os"
	"path/filepath"
	"sort"
)

// WriteTree creates files under root. Keys are slash-separated relative
// paths; a key ending in "/" creates an empty directory.
func WriteTree(root string, files map[string]string) error {
	keys := make([]string, 0, len(files))
	for k := range files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, rel := range keys {
		out := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			if err := os.MkdirAll(out, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(out, []byte(files[rel]), 0o644); err != nil {
			return err
		}
	}
	return nil
}
