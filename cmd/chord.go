package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/interval"
	"github.com/spf13/cobra"
)

var transpose int

func init() {
	chordCmd.Flags().IntVarP(&transpose, "transpose", "t", 0, "semitones to transpose by")
	scaleCmd.Flags().IntVarP(&transpose, "transpose", "t", 0, "semitones to transpose by")
	rootCmd.AddCommand(chordCmd)
	rootCmd.AddCommand(scaleCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <notation>",
	Short: "Describes a chord",
	Long:  `Describes a chord such as "C", "F#m7" or "Bb maj 7".`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return describeNotation(cmd.OutOrStdout(), strings.Join(args, " "), chord.KindChord)
	},
}

var scaleCmd = &cobra.Command{
	Use:   "scale <notation>",
	Short: "Describes a scale",
	Long:  `Describes a scale such as "A minor", "D dorian" or "Eb blues".`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return describeNotation(cmd.OutOrStdout(), strings.Join(args, " "), chord.KindScale)
	},
}

func describeNotation(w io.Writer, text string, kind chord.Kind) error {
	c, err := chord.FromNotationKind(text, kind)
	if err != nil {
		return err
	}
	if transpose != 0 {
		c = c.Transpose(interval.FromSemitones(transpose))
	}
	printChord(w, c)
	return nil
}

func printChord(w io.Writer, c chord.Chord) {
	fmt.Fprintf(w, "%s (%s)\n", c.Notation(preferFlats), c.LongNotation(preferFlats))

	notes := c.Notes()
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.Notation(preferFlats)
	}
	fmt.Fprintf(w, "  notes: %s\n", strings.Join(names, " "))
	fmt.Fprintf(w, "  pitches: %v\n", c.Pitches())
}
