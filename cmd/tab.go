package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/tonal/constants"
	"github.com/jsphweid/tonal/tab"
	"github.com/spf13/cobra"
)

var tuningName string

func init() {
	tabCmd.Flags().StringVar(&tuningName, "tuning", constants.GetTuning(), "guitar tuning")
	rootCmd.AddCommand(tabCmd)
}

var tabCmd = &cobra.Command{
	Use:   "tab <frets>...",
	Short: "Names the chords of a guitar fingering",
	Long: `Names the chords of a six string guitar fingering, lowest string first,
e.g. "x 3 2 0 1 0" or "0-2-2-1-0-0". x mutes a string.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tuning, err := tab.TuningByName(tuningName)
		if err != nil {
			return err
		}
		text := strings.Join(args, " ")
		frets, err := tab.ParseFingerPositions(text)
		if err != nil {
			return err
		}
		pitches := tuning.Pitches(frets)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", tuning.Name, tuning.Notation(preferFlats))
		printIdentified(out, pitches, identify(pitches, -1, false))
		return nil
	},
}
