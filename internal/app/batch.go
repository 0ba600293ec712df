package app

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"copyto/internal/domain"
	"copyto/internal/logging"
	"copyto/internal/paths"
)

// Batch copies an ordered list of sources into one destination.
type Batch struct {
	FS         FileSystem
	Picker     DestinationPicker
	Prompter   ConflictPrompter
	Notifier   Notifier
	Configured string
	Paths      paths.Resolver
	Logger     logging.Logger
}

// Invoke is the entry point for a user action. An empty selection only
// produces a warning.
func (b Batch) Invoke(ctx context.Context, sources []string) (domain.Summary, error) {
	if err := b.validate(); err != nil {
		return domain.Summary{}, err
	}
	if len(sources) == 0 {
		b.Notifier.Warning(msgNoSelection)
		return domain.Summary{}, nil
	}
	return b.Run(ctx, sources)
}

// Run resolves the destination, makes sure it exists, and copies each source
// in order. A cancel answer stops the batch; copies made before it are kept.
func (b Batch) Run(ctx context.Context, sources []string) (domain.Summary, error) {
	if err := b.validate(); err != nil {
		return domain.Summary{}, err
	}

	logger := b.Logger.With("run_id", uuid.NewString())
	stop := logger.Measure("Copy batch")
	defer stop()

	destinations := Destinations{
		Configured: b.Configured,
		Picker:     b.Picker,
		Paths:      b.Paths,
		Logger:     logger,
	}
	dest, ok := destinations.Resolve(ctx)
	if !ok {
		return domain.Summary{}, nil
	}

	ensurer := Ensurer{FS: b.FS, Notifier: b.Notifier, Logger: logger}
	if !ensurer.Ensure(dest) {
		return domain.Summary{Destination: dest}, nil
	}

	summary := domain.Summary{
		Destination:        dest,
		DisplayDestination: b.Paths.Display(dest),
	}
	copier := Copier{
		FS:       b.FS,
		Prompter: b.Prompter,
		Notifier: b.Notifier,
		Logger:   logger,
	}

	logger.Verbosef("Copying %d item(s) to %s", len(sources), dest)
	for _, source := range sources {
		outcome := domain.OutcomeCancelled
		if ctx.Err() == nil {
			outcome = copier.CopyItem(ctx, source, dest, summary.DisplayDestination)
		}
		summary = summary.Add(outcome)
		if summary.Cancelled {
			logger.Verbosef("Cancelled at %s", source)
			logBatch(logger, summary, len(sources))
			b.Notifier.Info(msgCancelled(summary))
			return summary, nil
		}
	}

	logBatch(logger, summary, len(sources))
	if msg := summaryMessage(summary); msg != "" {
		b.Notifier.Info(msg)
	}
	return summary, nil
}

func logBatch(logger logging.Logger, summary domain.Summary, requested int) {
	logger.Infof("Batch finished: %d of %d item(s) processed, %d copied, %d skipped",
		summary.Total(), requested, summary.Copied, summary.Skipped)
}

func (b Batch) validate() error {
	if b.FS == nil || b.Notifier == nil {
		return errors.New("batch requires FS and Notifier")
	}
	return nil
}
