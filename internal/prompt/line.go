// Package prompt asks questions on plain line-oriented streams. It is used
// when no terminal is attached or the TUI is disabled.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"copyto/internal/app"
	"copyto/internal/domain"
	"copyto/internal/paths"
)

// Line reads answers one line at a time. A single goroutine owns the reader
// so a prompt can give up on cancellation without losing later lines.
type Line struct {
	reader *bufio.Reader
	out    io.Writer
	paths  paths.Resolver

	start sync.Once
	lines chan string
}

func NewLine(in io.Reader, out io.Writer, resolver paths.Resolver) *Line {
	return &Line{
		reader: bufio.NewReader(in),
		out:    out,
		paths:  resolver,
	}
}

// Resolve asks until it gets a recognised answer. End of input or a
// cancelled context cancels.
func (l *Line) Resolve(ctx context.Context, fileName, destDisplay string) (domain.Decision, error) {
	for {
		fmt.Fprintf(l.out, "%s [o]verwrite/[s]kip/[c]ancel: ", app.ConflictMessage(fileName, destDisplay))
		answer, err := l.readLine(ctx)
		if err != nil {
			return domain.DecisionCancel, nil
		}
		if decision, ok := parseDecision(answer); ok {
			return decision, nil
		}
	}
}

// PickFolder reads a folder path. An empty answer or end of input dismisses.
func (l *Line) PickFolder(ctx context.Context) (string, bool, error) {
	fmt.Fprint(l.out, "Destination folder (empty to cancel): ")
	answer, err := l.readLine(ctx)
	if err != nil || answer == "" {
		return "", false, nil
	}
	abs, err := filepath.Abs(l.paths.Expand(answer))
	if err != nil {
		return "", false, err
	}
	return abs, true, nil
}

func (l *Line) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	l.start.Do(func() {
		l.lines = make(chan string)
		go l.pump()
	})
	select {
	case <-ctx.Done():
		fmt.Fprintln(l.out)
		return "", ctx.Err()
	case line, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

// pump feeds lines from the reader until it fails, then closes the channel.
func (l *Line) pump() {
	defer close(l.lines)
	for {
		line, err := l.reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return
		}
		l.lines <- strings.TrimSpace(line)
		if err != nil {
			return
		}
	}
}

func parseDecision(answer string) (domain.Decision, bool) {
	switch strings.ToLower(answer) {
	case "o", "overwrite":
		return domain.DecisionOverwrite, true
	case "s", "skip":
		return domain.DecisionSkip, true
	case "c", "cancel":
		return domain.DecisionCancel, true
	default:
		return domain.DecisionCancel, false
	}
}
