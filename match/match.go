// Package match classifies free text as a note, chord or scale notation.
package match

import (
	"fmt"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/note"
)

type Kind int

const (
	KindNote Kind = iota
	KindChord
	KindScale
)

func (k Kind) String() string {
	switch k {
	case KindNote:
		return "note"
	case KindChord:
		return "chord"
	case KindScale:
		return "scale"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Match holds exactly one of Note or Chord, picked by Kind. Scales are
// carried in Chord with chord.KindScale.
type Match struct {
	Kind  Kind
	Note  *note.Note
	Chord *chord.Chord
}

func (m Match) String() string {
	if m.Kind == KindNote {
		return m.Note.String()
	}
	return m.Chord.String()
}

// Find collects every reading of text: as a note, then a chord, then a scale.
// "C" is all three, "E5" a note and a power chord. Anything unparseable
// yields nil.
func Find(text string) []Match {
	var res []Match
	if n, err := note.FromNotation(text); err == nil {
		res = append(res, Match{Kind: KindNote, Note: &n})
	}
	if c, err := chord.FromNotation(text); err == nil {
		res = append(res, Match{Kind: KindChord, Chord: &c})
	}
	if s, err := chord.ScaleFromNotation(text); err == nil {
		res = append(res, Match{Kind: KindScale, Chord: &s})
	}
	return res
}
