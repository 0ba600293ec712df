package main

import (
	"strings"

	"github.com/spf13/cobra"

	"copyto/internal/config"
	appErrors "copyto/internal/errors"
	"copyto/internal/presentation"
)

func newConfigCmd(s streams, flags *config.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the saved destination",
	}

	settingsPath := func() string {
		if path := strings.TrimSpace(flags.SettingsPath); path != "" {
			return path
		}
		return config.DefaultSettingsPath()
	}
	printer := presentation.Printer{Writer: s.Out, ErrWriter: s.Err}

	update := func(change func(*config.Settings)) error {
		path := settingsPath()
		settings, err := config.LoadSettings(path)
		if err != nil {
			return appErrors.Wrap(appErrors.InvalidConfig, "settings", path, err)
		}
		change(&settings)
		if err := config.SaveSettings(path, settings); err != nil {
			return appErrors.Wrap(appErrors.IOFailure, "save", path, err)
		}
		return nil
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the saved destination (empty when unset)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path := settingsPath()
				settings, err := config.LoadSettings(path)
				if err != nil {
					return appErrors.Wrap(appErrors.InvalidConfig, "settings", path, err)
				}
				printer.Value(settings.Destination.Path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <path>",
			Short: "Save the destination, e.g. ~/utils",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				dest := strings.TrimSpace(args[0])
				if err := update(func(s *config.Settings) { s.Destination.Path = dest }); err != nil {
					return err
				}
				printer.Info("Destination set to " + dest + ".")
				return nil
			},
		},
		&cobra.Command{
			Use:   "unset",
			Short: "Clear the destination so every run asks for one",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := update(func(s *config.Settings) { s.Destination.Path = "" }); err != nil {
					return err
				}
				printer.Info("Destination cleared.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the settings file location",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				printer.Value(settingsPath())
			},
		},
	)
	return cmd
}
