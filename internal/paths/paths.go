// Package paths converts between the "~" shorthand users type and the
// absolute paths the file system needs.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const homeMarker = "~"

// Resolver expands and shortens paths relative to a fixed home directory.
type Resolver struct {
	Home string
}

// NewResolver returns a Resolver for the current user's home directory.
func NewResolver() Resolver {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return Resolver{Home: home}
}

// Expand replaces a leading "~" with the home directory. "~user" forms and
// every other input are returned unchanged.
func (r Resolver) Expand(path string) string {
	if r.Home == "" || !strings.HasPrefix(path, homeMarker) {
		return path
	}
	if len(path) == 1 {
		return r.Home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(r.Home, path[2:])
	}
	return path
}

// Display substitutes "~" back in for paths inside the home directory.
func (r Resolver) Display(path string) string {
	if r.Home == "" {
		return path
	}
	home := strings.TrimSuffix(r.Home, string(filepath.Separator))
	if path == home || path == r.Home {
		return homeMarker
	}
	prefix := home + string(filepath.Separator)
	if strings.HasPrefix(path, prefix) {
		return homeMarker + string(filepath.Separator) + path[len(prefix):]
	}
	return path
}
