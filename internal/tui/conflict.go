package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"copyto/internal/app"
	"copyto/internal/domain"
)

type conflictKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Confirm   key.Binding
	Overwrite key.Binding
	Skip      key.Binding
	Cancel    key.Binding
}

var conflictKeys = conflictKeyMap{
	Left:      key.NewBinding(key.WithKeys("left", "h", "shift+tab")),
	Right:     key.NewBinding(key.WithKeys("right", "l", "tab")),
	Confirm:   key.NewBinding(key.WithKeys("enter", " ")),
	Overwrite: key.NewBinding(key.WithKeys("o", "O")),
	Skip:      key.NewBinding(key.WithKeys("s", "S")),
	Cancel:    key.NewBinding(key.WithKeys("c", "C", "esc", "q", "ctrl+c")),
}

type choice struct {
	label    string
	decision domain.Decision
	active   lipgloss.Style
}

var conflictChoices = []choice{
	{label: "Overwrite", decision: domain.DecisionOverwrite, active: overwriteActiveStyle},
	{label: "Skip", decision: domain.DecisionSkip, active: skipActiveStyle},
	{label: "Cancel", decision: domain.DecisionCancel, active: activeButtonStyle},
}

// ConflictModel is a modal Overwrite/Skip/Cancel dialog. Leaving it without
// an answer means cancel.
type ConflictModel struct {
	FileName    string
	DestDisplay string
	Decision    domain.Decision
	Done        bool
	cursor      int
}

func NewConflictModel(fileName, destDisplay string) ConflictModel {
	return ConflictModel{
		FileName:    fileName,
		DestDisplay: destDisplay,
		Decision:    domain.DecisionCancel,
		cursor:      1, // Skip
	}
}

func (m ConflictModel) Init() tea.Cmd {
	return nil
}

func (m ConflictModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, conflictKeys.Overwrite):
		return m.decide(domain.DecisionOverwrite)
	case key.Matches(keyMsg, conflictKeys.Skip):
		return m.decide(domain.DecisionSkip)
	case key.Matches(keyMsg, conflictKeys.Cancel):
		return m.decide(domain.DecisionCancel)
	case key.Matches(keyMsg, conflictKeys.Left):
		m.cursor = (m.cursor + len(conflictChoices) - 1) % len(conflictChoices)
	case key.Matches(keyMsg, conflictKeys.Right):
		m.cursor = (m.cursor + 1) % len(conflictChoices)
	case key.Matches(keyMsg, conflictKeys.Confirm):
		return m.decide(conflictChoices[m.cursor].decision)
	}
	return m, nil
}

func (m ConflictModel) decide(decision domain.Decision) (tea.Model, tea.Cmd) {
	m.Decision = decision
	m.Done = true
	return m, tea.Quit
}

func (m ConflictModel) View() string {
	if m.Done {
		return ""
	}

	buttons := make([]string, 0, len(conflictChoices)*2)
	for i, c := range conflictChoices {
		style := buttonStyle
		if i == m.cursor {
			style = c.active
		}
		if i > 0 {
			buttons = append(buttons, " ")
		}
		buttons = append(buttons, style.Render(c.label))
	}

	var b strings.Builder
	b.WriteString(questionStyle.Render(iconOverride + " " + app.ConflictMessage(m.FileName, m.DestDisplay)))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, buttons...))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("← → to select • Enter to confirm • o/s/c shortcuts • Esc to cancel"))
	b.WriteString("\n")
	return b.String()
}

// Prompter runs the conflict dialog as a bubbletea program. A nil In reads
// from the controlling terminal.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

func (p Prompter) Resolve(ctx context.Context, fileName, destDisplay string) (domain.Decision, error) {
	program := tea.NewProgram(NewConflictModel(fileName, destDisplay), programOptions(ctx, p.In, p.Out)...)
	final, err := program.Run()
	if err != nil {
		return domain.DecisionCancel, err
	}
	m, ok := final.(ConflictModel)
	if !ok || !m.Done {
		return domain.DecisionCancel, nil
	}
	return m.Decision, nil
}

func programOptions(ctx context.Context, in io.Reader, out io.Writer) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	} else {
		opts = append(opts, tea.WithInputTTY())
	}
	return opts
}
