// Package lookup provides the resolvers the launcher feeds to the
// interpolation engine: the application environment, a dotenv file layer
// and an optional Lua lookup script.
package lookup

import (
	"os"
	"path/filepath"

	"github.com/flarebyte/launchpad/internal/interp"
)

// AppDirName is the reserved placeholder name that resolves to the
// absolute application directory.
const AppDirName = "SYS:APP_DIR"

// Environment resolves AppDirName to the application directory and every
// other name from the process environment.
type Environment struct {
	AppDir    string
	LookupEnv func(string) (string, bool)
}

// NewEnvironment returns an Environment rooted at appDir, made absolute
// when possible, backed by os.LookupEnv.
func NewEnvironment(appDir string) Environment {
	if abs, err := filepath.Abs(appDir); err == nil {
		appDir = abs
	}
	return Environment{AppDir: appDir, LookupEnv: os.LookupEnv}
}

// Lookup implements interp.Resolver.
func (e Environment) Lookup(name string) (string, bool) {
	if name == AppDirName {
		return e.AppDir, true
	}
	if e.LookupEnv == nil {
		return "", false
	}
	return e.LookupEnv(name)
}

var _ interp.Resolver = Environment{}
