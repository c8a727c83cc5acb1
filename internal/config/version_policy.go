package config

import (
	"fmt"
	"strings"
)

const CurrentConfigVersion = "1"

var SupportedConfigVersions = []string{CurrentConfigVersion}

func IsSupportedConfigVersion(v string) bool {
	for _, s := range SupportedConfigVersions {
		if v == s {
			return true
		}
	}
	return false
}

func SupportedConfigVersionsCSV() string {
	return strings.Join(SupportedConfigVersions, ", ")
}

// checkConfigVersion accepts a missing config-version key.
func checkConfigVersion(p Properties) error {
	v, ok := p[KeyConfigVersion]
	if !ok {
		return nil
	}
	if !IsSupportedConfigVersion(strings.TrimSpace(v)) {
		return fmt.Errorf("unsupported config-version: %q (supported: %s)", v, SupportedConfigVersionsCSV())
	}
	return nil
}
