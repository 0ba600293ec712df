package app

import (
	"fmt"

	"copyto/internal/domain"
)

const msgNoSelection = "No files or folders selected."

func msgCreateFailed(reason string) string {
	return fmt.Sprintf("Failed to create destination directory: %s", reason)
}

func msgCopyFailed(fileName, reason string) string {
	return fmt.Sprintf("Failed to copy \"%s\": %s", fileName, reason)
}

func msgCancelled(s domain.Summary) string {
	return fmt.Sprintf("Cancelled. Copied %d item(s), skipped %d.", s.Copied, s.Skipped)
}

// summaryMessage returns the closing message of a completed batch, or "" when
// there is nothing to report.
func summaryMessage(s domain.Summary) string {
	switch {
	case s.Copied > 0:
		msg := fmt.Sprintf("Copied %d item(s) to %s.", s.Copied, s.DisplayDestination)
		if s.Skipped > 0 {
			msg += fmt.Sprintf(" Skipped %d.", s.Skipped)
		}
		return msg
	case s.Skipped > 0:
		return fmt.Sprintf("All %d item(s) were skipped.", s.Skipped)
	default:
		return ""
	}
}

// ConflictMessage is the question shown when a copy target already exists.
func ConflictMessage(fileName, destDisplay string) string {
	return fmt.Sprintf("\"%s\" already exists in %s. What would you like to do?", fileName, destDisplay)
}
