package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"copyto/internal/domain"
	"copyto/internal/logging"
	"copyto/internal/paths"
)

const home = "/home/ada"

type batchEnv struct {
	fs       *mockFS
	picker   *mockPicker
	prompter *mockPrompter
	notifier *recordingNotifier
	batch    Batch
}

func newBatchEnv(configured string) *batchEnv {
	env := &batchEnv{
		fs:       newMockFS(),
		picker:   &mockPicker{},
		prompter: &mockPrompter{},
		notifier: &recordingNotifier{},
	}
	env.fs.files["/src/a.txt"] = "a"
	env.fs.files["/src/b.txt"] = "b"
	env.fs.files["/src/c.txt"] = "c"
	env.batch = Batch{
		FS:         env.fs,
		Picker:     env.picker,
		Prompter:   env.prompter,
		Notifier:   env.notifier,
		Configured: configured,
		Paths:      paths.Resolver{Home: home},
		Logger:     logging.Nop(),
	}
	return env
}

func TestBatchCopiesEverySourceWithoutConflicts(t *testing.T) {
	env := newBatchEnv("~/utils")

	summary, err := env.batch.Run(context.Background(), []string{"/src/a.txt", "/src/b.txt"})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Copied)
	assert.Equal(t, 0, summary.Skipped)
	assert.False(t, summary.Cancelled)
	assert.Equal(t, "/home/ada/utils", summary.Destination)
	assert.Equal(t, []string{"/home/ada/utils"}, env.fs.mkdirs)
	assert.Equal(t, "a", env.fs.files["/home/ada/utils/a.txt"])
	assert.Equal(t, "b", env.fs.files["/home/ada/utils/b.txt"])
	assert.Zero(t, env.picker.calls, "configured destination must not open the picker")
	assert.Equal(t, []message{{"info", "Copied 2 item(s) to ~/utils."}}, env.notifier.messages)
}

func TestBatchAbortsSilentlyWhenPickerDismissed(t *testing.T) {
	env := newBatchEnv("")

	summary, err := env.batch.Run(context.Background(), []string{"/src/a.txt"})
	require.NoError(t, err)

	assert.Equal(t, domain.Summary{}, summary)
	assert.Equal(t, 1, env.picker.calls)
	assert.Empty(t, env.fs.mkdirs)
	assert.Empty(t, env.fs.copied)
	assert.Empty(t, env.notifier.messages)
}

func TestBatchTreatsPickerErrorAsDismissal(t *testing.T) {
	env := newBatchEnv("   ")
	env.picker.err = errors.New("no terminal")

	_, err := env.batch.Run(context.Background(), []string{"/src/a.txt"})
	require.NoError(t, err)

	assert.Empty(t, env.fs.copied)
	assert.Empty(t, env.notifier.messages)
}

func TestBatchUsesPickedFolder(t *testing.T) {
	env := newBatchEnv("")
	env.picker.path = "/mnt/backup"
	env.picker.ok = true
	env.fs.dirs["/mnt/backup"] = true

	summary, err := env.batch.Run(context.Background(), []string{"/src/a.txt"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Copied)
	assert.Empty(t, env.fs.mkdirs, "existing destination must not be recreated")
	assert.Equal(t, []message{{"info", "Copied 1 item(s) to /mnt/backup."}}, env.notifier.messages)
}

func TestBatchSkipLeavesExistingTargetUntouched(t *testing.T) {
	env := newBatchEnv("/dest")
	env.fs.dirs["/dest"] = true
	env.fs.files["/dest/a.txt"] = "original"
	env.prompter.answers = []domain.Decision{domain.DecisionSkip}

	summary, err := env.batch.Run(context.Background(), []string{"/src/a.txt"})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Copied)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, "original", env.fs.files["/dest/a.txt"])
	assert.Equal(t, []conflictCall{{fileName: "a.txt", destDisplay: "/dest"}}, env.prompter.calls)
	assert.Equal(t, []message{{"info", "All 1 item(s) were skipped."}}, env.notifier.messages)
}

func TestBatchOverwriteReplacesTarget(t *testing.T) {
	env := newBatchEnv("~/utils")
	env.fs.dirs["/home/ada/utils"] = true
	env.fs.files["/home/ada/utils/a.txt"] = "original"
	env.prompter.answers = []domain.Decision{domain.DecisionOverwrite}

	summary, err := env.batch.Run(context.Background(), []string{"/src/a.txt"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Copied)
	assert.Equal(t, "a", env.fs.files["/home/ada/utils/a.txt"])
	assert.Equal(t, []conflictCall{{fileName: "a.txt", destDisplay: "~/utils"}}, env.prompter.calls)
}

func TestBatchCancelStopsRemainingItems(t *testing.T) {
	env := newBatchEnv("/dest")
	env.fs.dirs["/dest"] = true
	env.fs.files["/dest/b.txt"] = "original"
	env.prompter.answers = []domain.Decision{domain.DecisionCancel}

	summary, err := env.batch.Run(context.Background(), []string{"/src/a.txt", "/src/b.txt", "/src/c.txt"})
	require.NoError(t, err)

	assert.True(t, summary.Cancelled)
	assert.Equal(t, 1, summary.Copied)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, []string{"/src/a.txt"}, env.fs.copied, "items after the cancel must not be attempted")
	assert.Equal(t, "original", env.fs.files["/dest/b.txt"])
	assert.Equal(t, "a", env.fs.files["/dest/a.txt"], "completed copies are not rolled back")
	assert.Equal(t, []message{{"info", "Cancelled. Copied 1 item(s), skipped 0."}}, env.notifier.messages)
}

func TestBatchPrompterErrorCancels(t *testing.T) {
	env := newBatchEnv("/dest")
	env.fs.dirs["/dest"] = true
	env.fs.files["/dest/a.txt"] = "original"
	env.prompter.err = errors.New("terminal closed")

	summary, err := env.batch.Run(context.Background(), []string{"/src/a.txt", "/src/b.txt"})
	require.NoError(t, err)

	assert.True(t, summary.Cancelled)
	assert.Empty(t, env.fs.copied)
	assert.Equal(t, "original", env.fs.files["/dest/a.txt"])
}

func TestBatchCopyFailureCountsAsSkip(t *testing.T) {
	env := newBatchEnv("/dest")
	env.fs.dirs["/dest"] = true
	env.fs.copyErrs["/src/b.txt"] = errors.New("disk full")

	summary, err := env.batch.Run(context.Background(), []string{"/src/a.txt", "/src/b.txt", "/src/c.txt"})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Copied)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, []message{
		{"error", `Failed to copy "b.txt": disk full`},
		{"info", "Copied 2 item(s) to /dest. Skipped 1."},
	}, env.notifier.messages)
}

func TestBatchCopyFailureNamesTheFailingFile(t *testing.T) {
	env := newBatchEnv("/dest")
	env.fs.dirs["/dest"] = true
	pathErr := &fs.PathError{Op: "open", Path: "/dest/a.txt", Err: errors.New("permission denied")}
	env.fs.copyErrs["/src/a.txt"] = fmt.Errorf("copying a.txt: %w", pathErr)

	_, err := env.batch.Run(context.Background(), []string{"/src/a.txt"})
	require.NoError(t, err)

	require.NotEmpty(t, env.notifier.messages)
	assert.Equal(t, message{"error", `Failed to copy "a.txt": open /dest/a.txt: permission denied`}, env.notifier.messages[0])
}

func TestBatchExistenceCheckFailureCountsAsSkip(t *testing.T) {
	env := newBatchEnv("/dest")
	env.fs.dirs["/dest"] = true
	env.fs.existErr = errors.New("input/output error")

	summary, err := env.batch.Run(context.Background(), []string{"/src/a.txt"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Skipped)
	assert.Empty(t, env.fs.copied)
	assert.Equal(t, []message{
		{"error", `Failed to copy "a.txt": input/output error`},
		{"info", "All 1 item(s) were skipped."},
	}, env.notifier.messages)
}

func TestBatchDirectoryCreationFailureAbortsBatch(t *testing.T) {
	env := newBatchEnv("/dest")
	env.fs.mkdirErr = errors.New("read-only file system")

	summary, err := env.batch.Run(context.Background(), []string{"/src/a.txt"})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Total())
	assert.Empty(t, env.fs.copied)
	assert.Equal(t, []message{
		{"error", "Failed to create destination directory: read-only file system"},
	}, env.notifier.messages)
}

func TestBatchContextCancelledBeforeFirstItem(t *testing.T) {
	env := newBatchEnv("/dest")
	env.fs.dirs["/dest"] = true
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := env.batch.Run(ctx, []string{"/src/a.txt", "/src/b.txt"})
	require.NoError(t, err)

	assert.True(t, summary.Cancelled)
	assert.Empty(t, env.fs.copied)
	assert.Equal(t, []message{{"info", "Cancelled. Copied 0 item(s), skipped 0."}}, env.notifier.messages)
}

func TestBatchEmptyRunIsSilent(t *testing.T) {
	env := newBatchEnv("/dest")

	summary, err := env.batch.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Total())
	assert.Empty(t, env.notifier.messages)
}

func TestInvokeWarnsOnEmptySelection(t *testing.T) {
	env := newBatchEnv("/dest")

	_, err := env.batch.Invoke(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, []message{{"warning", "No files or folders selected."}}, env.notifier.messages)
	assert.Empty(t, env.fs.mkdirs)
	assert.Zero(t, env.picker.calls)
}

func TestInvokeRunsBatch(t *testing.T) {
	env := newBatchEnv("/dest")

	summary, err := env.batch.Invoke(context.Background(), []string{"/src/a.txt"})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Copied)
}

func TestBatchRequiresFSAndNotifier(t *testing.T) {
	_, err := Batch{}.Run(context.Background(), []string{"/src/a.txt"})
	require.Error(t, err)
}

func TestBatchLogsProgressWhenVerbose(t *testing.T) {
	env := newBatchEnv("/dest")
	env.fs.dirs["/dest"] = true
	env.fs.files["/dest/b.txt"] = "original"
	env.prompter.answers = []domain.Decision{domain.DecisionCancel}
	var logs bytes.Buffer
	env.batch.Logger = logging.New(&logs, true)

	_, err := env.batch.Run(context.Background(), []string{"/src/a.txt", "/src/b.txt", "/src/c.txt"})
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, "Batch finished: 1 of 3 item(s) processed, 1 copied, 0 skipped")
	assert.Contains(t, out, "run_id=")
}
