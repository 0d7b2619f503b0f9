// Package appdir locates the per-user directory holding the tool's
// configuration.
package appdir

import (
	"os"
	"path"
)

var appDirCache string

// AppDir returns ~/.snuffle, creating nothing. Falls back to the
// working directory when the home directory cannot be resolved.
func AppDir() string {
	if appDirCache == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			appDirCache = "."
		} else {
			appDirCache = path.Join(home, ".snuffle")
		}
	}
	return appDirCache
}
