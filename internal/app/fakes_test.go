package app

import (
	"context"
	"io/fs"
	"path/filepath"
	"time"

	"copyto/internal/domain"
)

type mockFS struct {
	dirs     map[string]bool
	files    map[string]string
	mkdirErr error
	existErr error
	copyErrs map[string]error
	mkdirs   []string
	copied   []string
}

func newMockFS() *mockFS {
	return &mockFS{
		dirs:     map[string]bool{},
		files:    map[string]string{},
		copyErrs: map[string]error{},
	}
}

func (m *mockFS) Stat(path string) (fs.FileInfo, error) {
	if m.dirs[path] {
		return mockFileInfo{name: filepath.Base(path), isDir: true}, nil
	}
	if _, ok := m.files[path]; ok {
		return mockFileInfo{name: filepath.Base(path)}, nil
	}
	return nil, fs.ErrNotExist
}

func (m *mockFS) Exists(path string) (bool, error) {
	if m.existErr != nil {
		return false, m.existErr
	}
	_, isFile := m.files[path]
	return isFile || m.dirs[path], nil
}

func (m *mockFS) MkdirAll(path string, perm fs.FileMode) error {
	if m.mkdirErr != nil {
		return m.mkdirErr
	}
	m.mkdirs = append(m.mkdirs, path)
	m.dirs[path] = true
	return nil
}

func (m *mockFS) Copy(src, dst string) error {
	if err := m.copyErrs[src]; err != nil {
		return err
	}
	m.copied = append(m.copied, src)
	m.files[dst] = m.files[src]
	return nil
}

type mockFileInfo struct {
	name  string
	isDir bool
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return 0 }
func (m mockFileInfo) Mode() fs.FileMode  { return 0 }
func (m mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m mockFileInfo) IsDir() bool        { return m.isDir }
func (m mockFileInfo) Sys() interface{}   { return nil }

type mockPicker struct {
	path  string
	ok    bool
	err   error
	calls int
}

func (m *mockPicker) PickFolder(ctx context.Context) (string, bool, error) {
	m.calls++
	return m.path, m.ok, m.err
}

type conflictCall struct {
	fileName    string
	destDisplay string
}

// mockPrompter answers conflicts in order; once answers run out it cancels.
type mockPrompter struct {
	answers []domain.Decision
	err     error
	calls   []conflictCall
}

func (m *mockPrompter) Resolve(ctx context.Context, fileName, destDisplay string) (domain.Decision, error) {
	m.calls = append(m.calls, conflictCall{fileName: fileName, destDisplay: destDisplay})
	if m.err != nil {
		return domain.DecisionOverwrite, m.err
	}
	if len(m.answers) == 0 {
		return domain.DecisionCancel, nil
	}
	answer := m.answers[0]
	m.answers = m.answers[1:]
	return answer, nil
}

type message struct {
	level string
	text  string
}

type recordingNotifier struct {
	messages []message
}

func (r *recordingNotifier) Info(msg string)    { r.messages = append(r.messages, message{"info", msg}) }
func (r *recordingNotifier) Warning(msg string) { r.messages = append(r.messages, message{"warning", msg}) }
func (r *recordingNotifier) Error(msg string)   { r.messages = append(r.messages, message{"error", msg}) }
