package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chrysplusplus/albumtag/internal/fileutil"
	"github.com/chrysplusplus/albumtag/internal/tags"
)

func newPrintCommand(configFlag *string) *cobra.Command {
	var (
		formatFlag    string
		recursiveFlag bool
	)

	cmd := &cobra.Command{
		Use:   "print <file-or-dir>",
		Short: "Print the stored tags of audio files",
		Long: `Print reads the stored tags of one audio file, or of every audio file in
a directory, and prints them through a format string. Placeholders like
{title}, {artist}, {album}, {albumartist} and {tracknumber} are replaced
with the stored values; unset tags render empty. Never writes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(*configFlag)
			if err != nil {
				return err
			}

			format := settings.PrintFormat
			if cmd.Flags().Changed("format") {
				format = formatFlag
			}
			// Shells pass \n literally; turn it into a real newline.
			format = strings.ReplaceAll(format, `\n`, "\n")

			info, err := os.Stat(args[0])
			if err != nil {
				return err
			}

			store := tags.NewStore()

			if !info.IsDir() {
				return printFile(store, args[0], format)
			}

			files, err := fileutil.FindAudio(args[0], settings.Extensions, recursiveFlag)
			if err != nil {
				return err
			}
			for _, file := range files {
				fmt.Println(file)
				if err := printFile(store, file, format); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", `Format string, e.g. "{title} (#{tracknumber})"`)
	cmd.Flags().BoolVarP(&recursiveFlag, "recursive", "r", false, "Scan subdirectories too")

	return cmd
}

func printFile(store *tags.Store, path, format string) error {
	values, err := store.Read(path)
	if err != nil {
		return err
	}
	fmt.Println(tags.Expand(values, format))
	return nil
}
