package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/tonal/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(noteCmd)
}

var noteCmd = &cobra.Command{
	Use:   "note <notation>...",
	Short: "Describes notes",
	Long: `Describes notes such as "C", "F#4" or "Bbb2". Notes with an octave also
show their MIDI number and frequency.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			n, err := note.FromNotation(arg)
			if err != nil {
				return err
			}
			printNote(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

func printNote(w io.Writer, n note.Note) {
	fmt.Fprintln(w, n.Notation(preferFlats))
	fmt.Fprintf(w, "  pos: %d\n", n.Pos())
	if midi, err := n.MIDI(); err == nil {
		fmt.Fprintf(w, "  midi: %d\n", midi)
	}
	if freq, err := n.Frequency(); err == nil {
		fmt.Fprintf(w, "  frequency: %.2f Hz\n", freq)
	}
	fmt.Fprintf(w, "  signature: %d\n", n.Signature())
	fmt.Fprintf(w, "  solfege: %s\n", n.Solfege())
}
