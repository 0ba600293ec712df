package app

import (
	"fmt"

	appErrors "copyto/internal/errors"
	"copyto/internal/logging"
)

// Ensurer makes sure the destination directory exists before copying.
type Ensurer struct {
	FS       FileSystem
	Notifier Notifier
	Logger   logging.Logger
}

// Ensure returns true when dir exists or was created. On failure the reason
// has already been shown to the user.
func (e Ensurer) Ensure(dir string) bool {
	if info, err := e.FS.Stat(dir); err == nil {
		if info.IsDir() {
			return true
		}
		e.Notifier.Error(msgCreateFailed(fmt.Sprintf("%s is not a directory", dir)))
		return false
	}

	e.Logger.Verbosef("Creating destination %s", dir)
	if err := e.FS.MkdirAll(dir, 0o755); err != nil {
		e.Logger.Warnf(err, "Creating destination %s failed", dir)
		e.Notifier.Error(msgCreateFailed(appErrors.Reason(err)))
		return false
	}
	return true
}
