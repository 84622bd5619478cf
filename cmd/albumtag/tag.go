package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chrysplusplus/albumtag/internal/console"
	"github.com/chrysplusplus/albumtag/internal/plan"
	"github.com/chrysplusplus/albumtag/internal/review"
	"github.com/chrysplusplus/albumtag/internal/tagging"
	"github.com/chrysplusplus/albumtag/internal/tags"
)

func newTagCommand(configFlag *string) *cobra.Command {
	var (
		dirFlag       string
		recursiveFlag bool
		playlistFlag  bool
		verboseFlag   bool
	)

	cmd := &cobra.Command{
		Use:   "tag <album-sheet>",
		Short: "Match audio files against an album sheet and write their tags",
		Long: `Tag matches the audio files in a directory against the tracklist of an
album sheet, shows the matches for interactive correction, and then writes
only the tag fields whose value actually differs. Files without a resolved
title are left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(*configFlag)
			if err != nil {
				return err
			}
			if playlistFlag {
				settings.CreatePlaylist = true
			}

			sheetPath := args[0]
			dir := dirFlag
			if dir == "" {
				dir = filepath.Dir(sheetPath)
			}

			options, err := fieldOptions(cmd)
			if err != nil {
				return err
			}

			c := console.New(os.Stdin, os.Stdout, console.ColorEnabled(settings.ColorMode, os.Stdout))
			c.SetVerbose(verboseFlag)

			manager := tagging.NewManager(settings, tags.NewStore(), c.Progress)
			if err := manager.Initialize(sheetPath, dir, recursiveFlag); err != nil {
				return err
			}

			if c.RunReview(manager.Session()) == review.OutcomeAborted {
				c.Println("Quitting...")
				c.Println("No changes were made to the files.")
				return nil
			}

			summary := manager.Apply(options)
			switch {
			case summary.Changed == 0 && summary.Failed == 0:
				c.Println("No changes were made to the files")
			case summary.Failed > 0:
				c.Printf("Changed %d file(s), %d unchanged, %d failed\n",
					summary.Changed, summary.Unchanged, summary.Failed)
			default:
				c.Println("Changes saved to files!")
				c.Printf("Changed %d file(s), %d unchanged\n", summary.Changed, summary.Unchanged)
			}
			c.Println(console.Farewell())
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Directory of the files to tag (defaults to the sheet's directory)")
	cmd.Flags().BoolVarP(&recursiveFlag, "recursive", "r", false, "Scan subdirectories too")
	cmd.Flags().BoolVarP(&playlistFlag, "playlist", "p", false, "Write an M3U playlist of the matched files")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show verbose output")

	for _, tag := range []string{"artist", "album-artist", "album"} {
		cmd.Flags().String(tag, "", fmt.Sprintf("Set the %s tag to a fixed value", tag))
		cmd.Flags().Bool(tag+"-from-parent", false, fmt.Sprintf("Set the %s tag to each file's parent directory name", tag))
		cmd.Flags().Bool("remove-"+tag, false, fmt.Sprintf("Remove the %s tag", tag))
		cmd.MarkFlagsMutuallyExclusive(tag, tag+"-from-parent", "remove-"+tag)
	}

	return cmd
}

// fieldOptions builds the per-tag directives from the override flags.
// Unset flags leave the option unset so the album defaults apply.
func fieldOptions(cmd *cobra.Command) (plan.Options, error) {
	var options plan.Options

	for _, entry := range []struct {
		flag   string
		option *plan.FieldOption
	}{
		{"artist", &options.Artist},
		{"album-artist", &options.AlbumArtist},
		{"album", &options.Album},
	} {
		switch {
		case cmd.Flags().Changed(entry.flag):
			value, err := cmd.Flags().GetString(entry.flag)
			if err != nil {
				return options, err
			}
			*entry.option = plan.Literal(value)
		case cmd.Flags().Changed(entry.flag + "-from-parent"):
			*entry.option = plan.FromParent()
		case cmd.Flags().Changed("remove-" + entry.flag):
			*entry.option = plan.Remove()
		}
	}

	return options, nil
}
