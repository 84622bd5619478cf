package main

import (
	"github.com/spf13/cobra"

	"github.com/chrysplusplus/albumtag/internal/config"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "albumtag",
		Short:         "Apply metadata to multiple audio files from a single source",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newTagCommand(&configFlag))
	rootCmd.AddCommand(newPrintCommand(&configFlag))

	return rootCmd
}

// loadSettings loads the settings file named by the --config flag, or the
// default XDG location when the flag is empty. A missing file yields the
// defaults.
func loadSettings(configFlag string) (*config.Settings, error) {
	path := configFlag
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.DefaultSettings(), nil
		}
	}
	return config.Load(path)
}
