// Package config loads txcat's configuration and resolves its file locations.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName names the per-user directories txcat reads from.
const AppName = "txcat"

// ModelFileName is the classifier artifact looked up in DataDir.
const ModelFileName = "tx_model.bayes"

// ConfigDir returns where config.yaml is searched for:
// $XDG_CONFIG_HOME/txcat, falling back to ~/.config/txcat.
func ConfigDir() string {
	return userDir("XDG_CONFIG_HOME", ".config")
}

// DataDir returns where the classifier artifact lives by default:
// $XDG_DATA_HOME/txcat, falling back to ~/.local/share/txcat.
func DataDir() string {
	return userDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

// DefaultModelPath is the model artifact used when model.path is unset.
func DefaultModelPath() string {
	return filepath.Join(DataDir(), ModelFileName)
}

func userDir(xdgVar, homeRelative string) string {
	if base := os.Getenv(xdgVar); base != "" {
		return filepath.Join(ExpandPath(base), AppName)
	}
	return filepath.Join(ExpandPath("~"), homeRelative, AppName)
}

// ExpandPath resolves a leading ~ and $VAR references in a rule file,
// rule store or model path. Empty stays empty so an unset source is still
// recognizable.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}

	rest, hasTilde := strings.CutPrefix(path, "~")
	if hasTilde && (rest == "" || rest[0] == '/') {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + rest
		}
	}
	return os.ExpandEnv(path)
}
