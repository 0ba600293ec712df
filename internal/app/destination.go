package app

import (
	"context"
	"strings"

	"copyto/internal/logging"
	"copyto/internal/paths"
)

// Destinations decides where a batch copies to: the configured path when one
// is set, otherwise whatever folder the user picks.
type Destinations struct {
	Configured string
	Picker     DestinationPicker
	Paths      paths.Resolver
	Logger     logging.Logger
}

// Resolve returns the destination directory. ok is false when no destination
// is configured and the user dismissed the picker. The configured path is not
// checked for existence here.
func (d Destinations) Resolve(ctx context.Context) (string, bool) {
	if configured := strings.TrimSpace(d.Configured); configured != "" {
		dest := d.Paths.Expand(configured)
		d.Logger.Verbosef("Using configured destination %s", dest)
		return dest, true
	}

	if d.Picker == nil {
		d.Logger.Verbosef("No destination configured and no picker available")
		return "", false
	}

	dest, ok, err := d.Picker.PickFolder(ctx)
	if err != nil {
		d.Logger.Warnf(err, "Folder picker failed")
		return "", false
	}
	if !ok || dest == "" {
		d.Logger.Verbosef("Folder picker dismissed")
		return "", false
	}
	d.Logger.Verbosef("Picked destination %s", dest)
	return dest, true
}
