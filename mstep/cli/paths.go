package cli

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// AppPaths is an interface to determine application specific paths for configuration
// and logging/tracing.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return appPaths{tag: appTag}, err
	}
	return appPaths{tag: appTag, home: home}, nil
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		if a.home == "" {
			return ""
		}
		c = filepath.Join(a.home, ".config")
	}
	return filepath.Join(c, a.dirname())
}

func (a appPaths) LogDir() string {
	switch runtime.GOOS {
	case "darwin":
		if a.home != "" {
			return filepath.Join(a.home, "Library", "Logs", a.tag)
		}
	case "windows":
		if c, err := os.UserCacheDir(); err == nil {
			return filepath.Join(c, a.tag, "Logs")
		}
	}
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, "logs", a.dirname())
}

// Mac and Windows keep the application's capitalization, others use
// lowercase directory names.
func (a appPaths) dirname() string {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		return a.tag
	}
	return strings.ToLower(a.tag)
}
