package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/templates"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Checks that every template round-trips",
	Long: `Checks every chord and scale template: each of its names must parse back
to it, and its pitches in root position must be identified as it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		var failed int
		for _, kind := range []chord.Kind{chord.KindChord, chord.KindScale} {
			r := analyzeTemplates(kind)
			printReport(out, kind, r)
			failed += len(r.failures)
		}
		if failed > 0 {
			return errors.Errorf("%d templates failed", failed)
		}
		return nil
	},
}

type templatesReport struct {
	numTemplates int
	numNames     int
	numOptional  int
	failures     []string
}

func analyzeTemplates(kind chord.Kind) templatesReport {
	var report templatesReport
	for _, tpl := range kind.Table().Templates() {
		report.numTemplates += 1
		if tpl.HasOptional() {
			report.numOptional += 1
		}

		for _, name := range tpl.DisplayNames() {
			report.numNames += 1
			c, err := chord.FromNotationKind("C "+name, kind)
			if err != nil || c.Template() != tpl {
				report.failures = append(report.failures, fmt.Sprintf("name %q does not parse back", name))
			}
		}

		if !identifies(kind, tpl) {
			report.failures = append(report.failures, fmt.Sprintf("%s is not identified from its pitches", tpl.Name()))
		}
	}
	return report
}

func identifies(kind chord.Kind, tpl *templates.Template) bool {
	var pitches []int
	for _, off := range tpl.Offsets() {
		pitches = append(pitches, 48+off)
	}

	var res []chord.Chord
	if kind == chord.KindScale {
		res = chord.ScalesFromNotes(pitches)
	} else {
		res = chord.FromNotesInversion(pitches, 0)
	}
	for _, c := range res {
		if c.Template() == tpl {
			return true
		}
	}
	return false
}

func printReport(w io.Writer, kind chord.Kind, r templatesReport) {
	fmt.Fprintf(w, "%v templates: %v\n", kind, r.numTemplates)
	fmt.Fprintf(w, "%v names: %v\n", kind, r.numNames)
	fmt.Fprintf(w, "%v templates with optional notes: %v\n", kind, r.numOptional)
	for _, f := range r.failures {
		fmt.Fprintf(w, "  FAIL %s\n", f)
	}
}
