package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/tonal/constants"
	"github.com/jsphweid/tonal/notation"
	"github.com/jsphweid/tonal/note"
	"github.com/jsphweid/tonal/templates"
	"github.com/jsphweid/tonal/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var ErrNotFound = errors.New("no matching template")

type Kind int

const (
	KindChord Kind = iota
	KindScale
)

func (k Kind) String() string {
	switch k {
	case KindChord:
		return templates.CategoryChord
	case KindScale:
		return templates.CategoryScale
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Table is the template table a kind resolves against.
func (k Kind) Table() *templates.Table {
	if k == KindScale {
		return templates.Scales()
	}
	return templates.Chords()
}

// Chord is a template bound to a tonic, or an abstract shape when it has no
// tonic. Scales use the same type with KindScale. Chords are values: every
// operation returns a new one.
type Chord struct {
	template *templates.Template
	tonic    note.Note
	abstract bool
	pitches  []int
	kind     Kind
}

// New binds a template to a tonic with an explicit voicing.
func New(tpl *templates.Template, tonic note.Note, pitches []int, kind Kind) Chord {
	return Chord{
		template: tpl,
		tonic:    tonic,
		pitches:  slices.Clone(pitches),
		kind:     kind,
	}
}

// Abstract is the bare shape of a template, e.g. "a major triad". Its
// pitches are the template offsets.
func Abstract(tpl *templates.Template, kind Kind) Chord {
	return Chord{
		template: tpl,
		abstract: true,
		pitches:  tpl.Offsets(),
		kind:     kind,
	}
}

// FromNotation parses a chord name such as "C", "F#m7" or "Bb maj 7".
func FromNotation(text string) (Chord, error) {
	return FromNotationKind(text, KindChord)
}

// ScaleFromNotation parses a scale name such as "A minor" or "Ebdorian".
func ScaleFromNotation(text string) (Chord, error) {
	return FromNotationKind(text, KindScale)
}

func FromNotationKind(text string, kind Kind) (Chord, error) {
	g := notation.Default()
	var parts notation.NameParts
	var ok bool
	if kind == KindScale {
		parts, ok = g.ParseScale(text)
	} else {
		parts, ok = g.ParseChord(text)
	}
	if !ok {
		return Chord{}, errors.Wrapf(ErrNotFound, "%v %q", kind, text)
	}

	tonic, err := note.FromParts(parts.Letter, parts.Accidentals, "")
	if err != nil {
		return Chord{}, errors.Wrapf(ErrNotFound, "%v %q: %v", kind, text, err)
	}
	tpl, ok := kind.Table().Resolve(parts.Name)
	if !ok {
		return Chord{}, errors.Wrapf(ErrNotFound, "%v %q", kind, text)
	}

	offsets := tpl.Offsets()
	pitches := make([]int, len(offsets))
	for i, off := range offsets {
		pitches[i] = util.Mod(off+tonic.Pos(), constants.SemitonesPerOctave)
	}
	return New(tpl, tonic, pitches, kind), nil
}

// MustFromNotation is FromNotation for literals known to be valid.
func MustFromNotation(text string) Chord {
	c, err := FromNotation(text)
	if err != nil {
		panic(err)
	}
	return c
}

// IsValid reports whether text parses as a chord notation.
func IsValid(text string) bool {
	return notation.Default().IsChord(text)
}

// IsValidScale reports whether text parses as a scale notation.
func IsValidScale(text string) bool {
	return notation.Default().IsScale(text)
}

func (c Chord) Template() *templates.Template {
	return c.template
}

func (c Chord) Kind() Kind {
	return c.kind
}

// Tonic returns the tonic, false for abstract chords.
func (c Chord) Tonic() (note.Note, bool) {
	return c.tonic, !c.abstract
}

func (c Chord) IsAbstract() bool {
	return c.abstract
}

func (c Chord) Pitches() []int {
	return slices.Clone(c.pitches)
}

// Notes returns the pitches as notes, pitch classes when the tonic is one.
func (c Chord) Notes() []note.Note {
	res := make([]note.Note, len(c.pitches))
	for i, p := range c.pitches {
		res[i] = note.New(p, !c.abstract && c.tonic.IsPitchClass(), 0)
	}
	return res
}

func (c Chord) Name() string {
	return c.template.Name()
}

// Transpose returns a new chord moved by the interval.
func (c Chord) Transpose(i note.Semitoner) Chord {
	semitones := i.Semitones()
	res := c
	res.pitches = make([]int, len(c.pitches))
	for j, p := range c.pitches {
		p += semitones
		if !c.abstract && c.tonic.IsPitchClass() {
			p = util.Mod(p, constants.SemitonesPerOctave)
		}
		res.pitches[j] = p
	}
	if !c.abstract {
		res.tonic = c.tonic.TransposeBy(semitones)
	}
	return res
}

// Notation is the short name, e.g. "C♯m7". Scales separate the tonic from the
// name with a space.
func (c Chord) Notation(preferFlats bool) string {
	name := notation.Pretty(c.template.Name())
	if c.abstract {
		return name
	}
	sep := ""
	if c.kind == KindScale {
		sep = " "
	}
	return c.tonic.SimpleNotation(preferFlats) + sep + name
}

// LongNotation is the readable name, e.g. "C♯ minor 7th".
func (c Chord) LongNotation(preferFlats bool) string {
	name := notation.Pretty(c.template.LongName())
	if c.abstract {
		return name
	}
	return c.tonic.SimpleNotation(preferFlats) + " " + name
}

func (c Chord) String() string {
	return c.Notation(false)
}

// ContainsPitch compares pitch classes, so any octave of a member counts.
func (c Chord) ContainsPitch(n note.Note) bool {
	for _, p := range c.pitches {
		if util.Mod(p, constants.SemitonesPerOctave) == n.Class() {
			return true
		}
	}
	return false
}

// HasName reports whether text names this chord: same tonic pitch class and
// same template. Abstract chords only compare the template.
func (c Chord) HasName(text string) bool {
	other, err := FromNotationKind(text, c.kind)
	if err != nil {
		return false
	}
	if other.template != c.template {
		return false
	}
	return c.abstract || other.tonic.Class() == c.tonic.Class()
}

// MinPitches drops the pitches that play optional template members.
func (c Chord) MinPitches() []int {
	root := 0
	if !c.abstract {
		root = c.tonic.Class()
	}
	var optional []int
	for _, off := range c.template.Optional() {
		optional = append(optional, util.Mod(root+off, constants.SemitonesPerOctave))
	}

	var res []int
	for _, p := range c.pitches {
		if !slices.Contains(optional, util.Mod(p, constants.SemitonesPerOctave)) {
			res = append(res, p)
		}
	}
	return res
}

// PitchEqual compares chords by template, tonic pitch and pitches, ignoring
// how the tonic was spelled.
func (c Chord) PitchEqual(other Chord) bool {
	if c.template != other.template || c.kind != other.kind || c.abstract != other.abstract {
		return false
	}
	if !c.abstract && !c.tonic.Equal(other.tonic) {
		return false
	}
	return slices.Equal(c.pitches, other.pitches)
}

// Key identifies the chord and its voicing, e.g. "chord:maj@0:0-4-7".
func (c Chord) Key() string {
	var sb strings.Builder
	sb.WriteString(c.kind.String())
	sb.WriteString(":")
	sb.WriteString(c.template.Name())
	if !c.abstract {
		sb.WriteString(fmt.Sprintf("@%d", c.tonic.Pos()))
	}
	sb.WriteString(":")
	sb.WriteString(CreateChordKey(c.pitches))
	return sb.String()
}
