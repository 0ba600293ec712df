package app

import (
	"context"
	"io/fs"

	"copyto/internal/domain"
)

type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	// Copy copies src to dst, replacing whatever is at dst.
	Copy(src, dst string) error
}

// DestinationPicker asks the user for a destination folder. ok is false when
// the user dismissed the picker.
type DestinationPicker interface {
	PickFolder(ctx context.Context) (path string, ok bool, err error)
}

type ConflictPrompter interface {
	Resolve(ctx context.Context, fileName, destDisplay string) (domain.Decision, error)
}

// Notifier surfaces messages to the user.
type Notifier interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
