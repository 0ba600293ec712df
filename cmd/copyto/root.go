package main

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"copyto/internal/app"
	"copyto/internal/config"
	appErrors "copyto/internal/errors"
	"copyto/internal/infra/fs"
	"copyto/internal/logging"
	"copyto/internal/paths"
	"copyto/internal/presentation"
	"copyto/internal/prompt"
	"copyto/internal/tui"
)

type streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func newRootCmd(s streams) *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "copyto [paths...]",
		Short: "Copy files and folders to a configured destination",
		Long: `Copy the given files and folders into one destination folder.

The destination comes from --dest, COPYTO_DESTINATION, or the settings file
(see "copyto config"). When none is set you are asked to pick a folder.
Existing entries with the same name prompt for Overwrite, Skip or Cancel.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags)
			if err != nil {
				return err
			}
			return runCopy(cmd, s, cfg, args)
		},
	}

	cmd.Flags().StringVarP(&flags.Destination, "dest", "d", "", "Destination folder for this run (overrides the setting)")
	cmd.Flags().BoolVar(&flags.NoTUI, "no-tui", false, "Ask questions as plain text prompts")
	cmd.Flags().BoolVar(&flags.ReadStdin, "stdin", false, "Also read newline-separated paths from stdin")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Verbose logging")
	cmd.PersistentFlags().StringVar(&flags.SettingsPath, "config", "", "Settings file (default $XDG_CONFIG_HOME/copyto/config.toml)")

	cmd.AddCommand(newConfigCmd(s, &flags))
	return cmd
}

func runCopy(cmd *cobra.Command, s streams, cfg config.Config, args []string) error {
	logger := logging.New(s.Err, cfg.Verbose)
	resolver := paths.NewResolver()

	sources, err := collectSources(args, s.In, cfg.ReadStdin)
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "sources", "", err)
	}

	batch := app.Batch{
		FS:         fs.OSFS{Exclude: cfg.Exclude},
		Notifier:   presentation.Printer{Writer: s.Out, ErrWriter: s.Err},
		Configured: cfg.Destination,
		Paths:      resolver,
		Logger:     logger,
	}
	batch.Picker, batch.Prompter = prompts(s, cfg, resolver)

	_, err = batch.Invoke(cmd.Context(), sources)
	return err
}

// prompts picks the terminal UI when stderr is a terminal and plain line
// prompts otherwise. With --stdin the TUI reads keys from the terminal
// device since stdin carries the paths.
func prompts(s streams, cfg config.Config, resolver paths.Resolver) (app.DestinationPicker, app.ConflictPrompter) {
	if cfg.NoTUI || !logging.IsTerminal(s.Err) {
		line := prompt.NewLine(s.In, s.Err, resolver)
		return line, line
	}

	var in io.Reader
	if !cfg.ReadStdin && logging.IsTerminal(s.In) {
		in = s.In
	}
	return tui.FolderPicker{In: in, Out: s.Err, Paths: resolver},
		tui.Prompter{In: in, Out: s.Err}
}

// collectSources returns the absolute source paths in the order given:
// arguments first, then stdin lines. Duplicates are kept.
func collectSources(args []string, in io.Reader, readStdin bool) ([]string, error) {
	raw := append([]string(nil), args...)
	if readStdin && in != nil {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				raw = append(raw, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	sources := make([]string, 0, len(raw))
	for _, path := range raw {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, abs)
	}
	return sources, nil
}
