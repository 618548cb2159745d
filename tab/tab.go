// Package tab reads six string guitar tabs and turns them into pitches and
// chords.
package tab

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/note"
	"github.com/jsphweid/tonal/notation"
	"github.com/pkg/errors"
)

const Strings = 6

// Fret is the fret held down on one string, Muted when it is not played.
type Fret int

const Muted Fret = -1

var (
	ErrParse         = errors.New("invalid finger positions")
	ErrUnknownTuning = errors.New("unknown tuning")
)

// Tuning lists the open string pitches, lowest string first.
type Tuning struct {
	Name    string
	Strings [Strings]int
}

var tunings = []Tuning{
	mustTuning("standard", "E2 A2 D3 G3 B3 E4"),
	mustTuning("drop d", "D2 A2 D3 G3 B3 E4"),
	mustTuning("open g", "D2 G2 D3 G3 B3 D4"),
	mustTuning("open d", "D2 A2 D3 F#3 A3 D4"),
	mustTuning("dadgad", "D2 A2 D3 G3 A3 D4"),
	mustTuning("fourths", "E2 A2 D3 G3 C4 F4"),
}

func mustTuning(name string, notes string) Tuning {
	t := Tuning{Name: name}
	for i, text := range strings.Fields(notes) {
		t.Strings[i] = note.MustFromNotation(text).Pos()
	}
	return t
}

func Tunings() []Tuning {
	res := make([]Tuning, len(tunings))
	copy(res, tunings)
	return res
}

// TuningByName looks a tuning up case-insensitively.
func TuningByName(name string) (Tuning, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range tunings {
		if t.Name == name {
			return t, nil
		}
	}
	return Tuning{}, errors.Wrapf(ErrUnknownTuning, "%q", name)
}

// ParseFingerPositions reads "x 3 2 0 1 0" or "0-2-2-1-0-0", lowest string
// first. x marks a muted string.
func ParseFingerPositions(text string) ([Strings]Fret, error) {
	var frets [Strings]Fret
	tokens, ok := notation.Default().ParseFingerPositions(text)
	if !ok {
		return frets, errors.Wrapf(ErrParse, "%q", text)
	}
	for i, tok := range tokens {
		if strings.EqualFold(tok, "x") {
			frets[i] = Muted
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return frets, errors.Wrapf(ErrParse, "%q: fret %q", text, tok)
		}
		frets[i] = Fret(n)
	}
	return frets, nil
}

// Pitches returns the sounding pitches of the played strings in ascending
// order.
func (t Tuning) Pitches(frets [Strings]Fret) []int {
	var res []int
	for i, f := range frets {
		if f == Muted {
			continue
		}
		res = append(res, t.Strings[i]+int(f))
	}
	sort.Ints(res)
	return res
}

// Chords names every chord the fingering could spell.
func (t Tuning) Chords(text string) ([]chord.Chord, error) {
	frets, err := ParseFingerPositions(text)
	if err != nil {
		return nil, err
	}
	return chord.FromNotes(t.Pitches(frets)), nil
}

// Notation writes the open strings, e.g. "E A D G B E".
func (t Tuning) Notation(preferFlats bool) string {
	names := make([]string, Strings)
	for i, pos := range t.Strings {
		names[i] = note.FromPos(pos).SimpleNotation(preferFlats)
	}
	return strings.Join(names, " ")
}
