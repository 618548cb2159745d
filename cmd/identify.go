package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/logger"
	"github.com/jsphweid/tonal/note"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	inversion  int
	withScales bool
)

func init() {
	identifyCmd.Flags().IntVarP(&inversion, "inversion", "i", -1, "only try the pitch at this rank as tonic (0 is the lowest), -1 tries every pitch")
	identifyCmd.Flags().BoolVarP(&withScales, "scales", "s", false, "match scales instead of chords")
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify <pitch>...",
	Short: "Names the chords a set of pitches spells",
	Long: `Names the chords a set of pitches spells. Pitches are either absolute
pitch numbers (C0 is 0, middle C is 48) or note notations such as "E4".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pitches, err := parsePitches(args)
		if err != nil {
			return err
		}
		printIdentified(cmd.OutOrStdout(), pitches, identify(pitches, inversion, withScales))
		return nil
	},
}

func parsePitches(args []string) ([]int, error) {
	pitches := make([]int, len(args))
	for i, arg := range args {
		if p, err := strconv.Atoi(arg); err == nil {
			pitches[i] = p
			continue
		}
		n, err := note.FromNotation(arg)
		if err != nil {
			return nil, err
		}
		pitches[i] = n.Pos()
	}
	return pitches, nil
}

func identify(pitches []int, inversion int, scales bool) []chord.Chord {
	var res []chord.Chord
	switch {
	case scales && inversion < 0:
		res = chord.ScalesFromNotes(pitches)
	case scales:
		res = chord.ScalesFromNotesInversion(pitches, inversion)
	case inversion < 0:
		res = chord.FromNotes(pitches)
	default:
		res = chord.FromNotesInversion(pitches, inversion)
	}
	logger.GetProjectLogger().
		WithFields(logrus.Fields{"key": chord.CreateChordKey(pitches), "inversion": inversion}).
		Debugf("%d matches", len(res))
	return res
}

func printIdentified(w io.Writer, pitches []int, res []chord.Chord) {
	if len(res) == 0 {
		fmt.Fprintf(w, "no match for %v\n", pitches)
		return
	}
	for _, c := range res {
		fmt.Fprintf(w, "%s (%s)\n", c.Notation(preferFlats), c.LongNotation(preferFlats))
	}
}
