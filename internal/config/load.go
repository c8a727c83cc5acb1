package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultBaseName is the configuration file name, without extension,
// looked up in the application directory.
const DefaultBaseName = "launchpad"

// discoveryExtensions lists the extensions tried, in order.
var discoveryExtensions = []string{".cue", ".yaml", ".yml", ".toml", ".jsonc", ".json", ".properties"}

var parsers = map[string]func([]byte) (Properties, error){
	".cue":        parseCUE,
	".yaml":       parseYAML,
	".yml":        parseYAML,
	".toml":       parseTOML,
	".jsonc":      parseJSONC,
	".json":       parseJSONC,
	".properties": parseProperties,
}

// SupportedExtensions returns the recognized configuration extensions.
func SupportedExtensions() []string {
	return append([]string(nil), discoveryExtensions...)
}

// Load reads the configuration file at path, choosing the decoder by
// extension, and checks its config-version.
func Load(path string) (Properties, error) {
	ext := strings.ToLower(filepath.Ext(path))
	parse, ok := parsers[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported config format: %q (expected one of %s)", ext, strings.Join(discoveryExtensions, ", "))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	p, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := checkConfigVersion(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Discover returns the first launchpad.<ext> file present in dir.
func Discover(dir string) (string, bool) {
	for _, ext := range discoveryExtensions {
		p := filepath.Join(dir, DefaultBaseName+ext)
		info, err := os.Stat(p)
		if err == nil && info.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}

// LoadForApp loads explicit when set, otherwise the file discovered in
// appDir. With nothing to load it returns empty properties and an empty
// path.
func LoadForApp(appDir, explicit string) (Properties, string, error) {
	path := explicit
	if path == "" {
		found, ok := Discover(appDir)
		if !ok {
			return Properties{}, "", nil
		}
		path = found
	} else if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("config file not found: %s", path)
	}
	p, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return p, path, nil
}
