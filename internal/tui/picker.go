package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"copyto/internal/paths"
)

type folderKeyMap struct {
	Here key.Binding
	Quit key.Binding
}

var folderKeys = folderKeyMap{
	Here: key.NewBinding(key.WithKeys(".")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

// FolderModel lets the user browse to a folder. Only folders can be
// selected, one at a time.
type FolderModel struct {
	Selected  string
	Done      bool
	Dismissed bool
	picker    filepicker.Model
	paths     paths.Resolver
}

func NewFolderModel(start string, resolver paths.Resolver) FolderModel {
	fp := filepicker.New()
	fp.CurrentDirectory = start
	fp.DirAllowed = true
	fp.FileAllowed = false
	return FolderModel{picker: fp, paths: resolver}
}

func (m FolderModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m FolderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, folderKeys.Quit):
			m.Dismissed = true
			return m, tea.Quit
		case key.Matches(keyMsg, folderKeys.Here):
			return m.choose(m.picker.CurrentDirectory)
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m.choose(path)
	}
	return m, cmd
}

func (m FolderModel) choose(path string) (tea.Model, tea.Cmd) {
	m.Selected = path
	m.Done = true
	return m, tea.Quit
}

func (m FolderModel) View() string {
	if m.Done || m.Dismissed {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Choose a destination folder"))
	b.WriteString("\n")
	b.WriteString(pathStyle.Render(fmt.Sprintf("%s %s", iconFolder, m.paths.Display(m.picker.CurrentDirectory))))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑ ↓ to move • → to open • Enter to choose folder • . to choose current • q to cancel"))
	b.WriteString("\n")
	return b.String()
}

// FolderPicker runs the folder browser as a bubbletea program. Start defaults
// to the working directory. A nil In reads from the controlling terminal.
type FolderPicker struct {
	In    io.Reader
	Out   io.Writer
	Start string
	Paths paths.Resolver
}

func (p FolderPicker) PickFolder(ctx context.Context) (string, bool, error) {
	start := p.Start
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = p.Paths.Home
		}
		start = wd
	}

	program := tea.NewProgram(NewFolderModel(start, p.Paths), programOptions(ctx, p.In, p.Out)...)
	final, err := program.Run()
	if err != nil {
		return "", false, err
	}
	m, ok := final.(FolderModel)
	if !ok || !m.Done {
		return "", false, nil
	}
	return m.Selected, true, nil
}
