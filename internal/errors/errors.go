package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

type Kind string

const (
	InvalidConfig Kind = "invalid_config"
	IOFailure     Kind = "io_failure"
	Internal      Kind = "internal"
)

type AppError struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

func UserMessage(err error) string {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return err.Error()
	}
	switch appErr.Kind {
	case InvalidConfig:
		return fmt.Sprintf("Invalid configuration: %v", appErr.Err)
	case IOFailure:
		reason := Reason(appErr.Err)
		if appErr.Path == "" || strings.Contains(reason, appErr.Path) {
			return fmt.Sprintf("I/O error: %s", reason)
		}
		return fmt.Sprintf("I/O error: %s: %s", appErr.Path, reason)
	default:
		return fmt.Sprintf("Unexpected error: %v", appErr.Err)
	}
}

// Reason returns the text users see after "Failed to ...:" messages. It is
// the first OS path error in the chain, which names the file involved, or
// the innermost error when there is none.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	for {
		switch err.(type) {
		case *fs.PathError, *os.LinkError:
			return err.Error()
		}
		next := stderrors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
