package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// Paths contains standard filesystem paths for daprgen.
type Paths struct {
	// ConfigFile is the path to the config file (~/.daprgen/config.yaml).
	ConfigFile string

	// HomeDir is the daprgen home directory (~/.daprgen).
	HomeDir string
}

// DefaultPaths returns the default paths for daprgen.
func DefaultPaths() (*Paths, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".daprgen")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// GetConfigFile returns the config file path.
// If DAPRGEN_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// EnsureHomeDir creates the daprgen home directory if it doesn't exist.
func EnsureHomeDir() error {
	paths, err := DefaultPaths()
	if err != nil {
		return err
	}

	return os.MkdirAll(paths.HomeDir, 0o755)
}

// ExpandPath expands a leading ~ to the user's home directory.
// ~username is not supported and is returned unchanged.
func ExpandPath(path string) (string, error) {
	if len(path) > 1 && path[0] == '~' && path[1] != '/' && path[1] != filepath.Separator {
		return path, nil
	}
	return homedir.Expand(path)
}
