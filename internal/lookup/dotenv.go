package lookup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/flarebyte/launchpad/internal/interp"
)

// DefaultDotEnvFile is read from the application directory when the
// configuration names no env file.
const DefaultDotEnvFile = ".env"

// LoadDotEnv reads KEY=VALUE pairs from path without touching the process
// environment. A missing file yields an empty resolver.
func LoadDotEnv(path string) (interp.MapResolver, error) {
	if path == "" {
		return interp.MapResolver{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return interp.MapResolver{}, nil
		}
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("invalid env file %s: %w", path, err)
	}
	return interp.MapResolver(values), nil
}
