package cmd

import (
	"fmt"

	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(intervalCmd)
}

var intervalCmd = &cobra.Command{
	Use:   "interval <name> | <from> <to>",
	Short: "Measures intervals",
	Long: `With one argument, looks up an interval name such as "minor third". With
two notes, prints the interval from the first up to the second.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var i interval.Interval
		if len(args) == 1 {
			var err error
			if i, err = interval.FromName(args[0]); err != nil {
				return err
			}
		} else {
			from, err := note.FromNotation(args[0])
			if err != nil {
				return err
			}
			to, err := note.FromNotation(args[1])
			if err != nil {
				return err
			}
			if from.IsPitchClass() || to.IsPitchClass() {
				i = interval.FromSemitones(note.RelativeDistance(from, to))
			} else if i, err = interval.FromNotes(from, to); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d semitones)\n", i.Name(), i.Semitones())
		return nil
	},
}
