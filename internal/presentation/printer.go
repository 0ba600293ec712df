package presentation

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#85DCB0"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F6AE2D"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E85D75")).Bold(true)

	iconInfo    = "✓"
	iconWarning = "⚠"
	iconError   = "✗"
)

// Printer shows user-facing messages. Info goes to Writer, warnings and
// errors to ErrWriter.
type Printer struct {
	Writer    io.Writer
	ErrWriter io.Writer
}

func (p Printer) Info(msg string) {
	fmt.Fprintln(p.Writer, infoStyle.Render(iconInfo+" "+msg))
}

func (p Printer) Warning(msg string) {
	fmt.Fprintln(p.errWriter(), warningStyle.Render(iconWarning+" "+msg))
}

func (p Printer) Error(msg string) {
	fmt.Fprintln(p.errWriter(), errorStyle.Render(iconError+" "+msg))
}

// Value prints a bare value, such as a setting, with no decoration.
func (p Printer) Value(value string) {
	fmt.Fprintln(p.Writer, value)
}

func (p Printer) errWriter() io.Writer {
	if p.ErrWriter == nil {
		return p.Writer
	}
	return p.ErrWriter
}
