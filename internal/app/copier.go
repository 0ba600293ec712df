package app

import (
	"context"
	"path/filepath"

	"copyto/internal/domain"
	appErrors "copyto/internal/errors"
	"copyto/internal/logging"
)

// Copier copies a single source entry into the destination, asking the user
// what to do when the target already exists.
type Copier struct {
	FS       FileSystem
	Prompter ConflictPrompter
	Notifier Notifier
	Logger   logging.Logger
}

// CopyItem copies source into destDir. destDisplay is the destination as shown
// to the user. Copy failures are reported and count as skipped.
func (c Copier) CopyItem(ctx context.Context, source, destDir, destDisplay string) domain.Outcome {
	name := filepath.Base(source)
	target := filepath.Join(destDir, name)

	exists, err := c.FS.Exists(target)
	if err != nil {
		c.fail(name, err)
		return domain.OutcomeSkipped
	}

	if exists {
		decision := c.resolve(ctx, name, destDisplay)
		c.Logger.Verbosef("Conflict on %s resolved as %s", target, decision)
		switch decision {
		case domain.DecisionCancel:
			return domain.OutcomeCancelled
		case domain.DecisionSkip:
			return domain.OutcomeSkipped
		}
	}

	if err := c.FS.Copy(source, target); err != nil {
		c.fail(name, err)
		return domain.OutcomeSkipped
	}
	c.Logger.Verbosef("Copied %s to %s", source, target)
	return domain.OutcomeSuccess
}

// resolve maps every way of leaving the prompt without an answer to cancel.
func (c Copier) resolve(ctx context.Context, name, destDisplay string) domain.Decision {
	if c.Prompter == nil {
		return domain.DecisionCancel
	}
	decision, err := c.Prompter.Resolve(ctx, name, destDisplay)
	if err != nil {
		c.Logger.Warnf(err, "Conflict prompt for %s failed", name)
		return domain.DecisionCancel
	}
	return decision
}

func (c Copier) fail(name string, err error) {
	c.Logger.Warnf(err, "Copying %s failed", name)
	c.Notifier.Error(msgCopyFailed(name, appErrors.Reason(err)))
}
