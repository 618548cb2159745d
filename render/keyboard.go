// Package render draws pitches for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/constants"
	"github.com/jsphweid/tonal/match"
	"github.com/jsphweid/tonal/note"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/slices"
)

// Highlighter shows a set of pitches, e.g. on a keyboard or fretboard.
type Highlighter interface {
	Highlight(notes []note.Note) string
}

var blackKeys = []int{1, 3, 6, 8, 10}

var (
	whiteKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Padding(0, 1)
	blackKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
	litKeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Bold(true).Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

// Keyboard draws one octave, C to B, with the given pitch classes lit. Lit
// keys are coloured by their place on the circle of fifths so that related
// keys get neighbouring hues. Plain drops styling and brackets lit keys.
type Keyboard struct {
	PreferFlats bool
	Plain       bool
}

func (k Keyboard) Highlight(notes []note.Note) string {
	lit := make(map[int]bool)
	for _, n := range notes {
		lit[n.Class()] = true
	}

	cells := make([]string, constants.SemitonesPerOctave)
	for class := range cells {
		label := note.PitchClass(class).SimpleNotation(k.PreferFlats)
		switch {
		case k.Plain && lit[class]:
			cells[class] = "[" + label + "]"
		case k.Plain:
			cells[class] = " " + label + " "
		case lit[class]:
			cells[class] = litKeyStyle.Background(hue(class)).Render(label)
		case isBlack(class):
			cells[class] = blackKeyStyle.Render(label)
		default:
			cells[class] = whiteKeyStyle.Render(label)
		}
	}

	if k.Plain {
		return strings.Join(cells, "")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func hue(class int) lipgloss.Color {
	cof := note.PitchClass(class).CofPosition()
	return lipgloss.Color(colorful.Hsv(float64(cof)*30, 0.55, 0.95).Hex())
}

func isBlack(class int) bool {
	return slices.Contains(blackKeys, class)
}

// Match renders a title line for m followed by its pitches on h.
func Match(h Highlighter, m match.Match, preferFlats bool, plain bool) string {
	var title string
	var notes []note.Note
	switch m.Kind {
	case match.KindNote:
		title = m.Note.Notation(preferFlats)
		notes = []note.Note{*m.Note}
	default:
		title = describe(*m.Chord, preferFlats)
		notes = m.Chord.Notes()
	}
	if !plain {
		title = titleStyle.Render(title)
	}
	return title + "\n" + h.Highlight(notes)
}

func describe(c chord.Chord, preferFlats bool) string {
	short, long := c.Notation(preferFlats), c.LongNotation(preferFlats)
	if c.Kind() == chord.KindScale || short == long {
		return long
	}
	return short + " (" + long + ")"
}
