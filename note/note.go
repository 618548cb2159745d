// Package note implements pitches in 12 tone equal temperament.
//
// A Note is either absolute (it has an octave, position 0 is C0) or a pitch
// class (position in [0,12)). The accidental count only records how the note
// was spelled and never takes part in arithmetic.
package note

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/jsphweid/tonal/constants"
	"github.com/jsphweid/tonal/model"
	"github.com/jsphweid/tonal/notation"
	"github.com/jsphweid/tonal/util"
	"github.com/pkg/errors"
)

var (
	ErrParse            = errors.New("notation does not match the grammar")
	ErrInvalidOperation = errors.New("operation needs an absolute note")
)

// Semitoner is anything measured in semitones, an interval.Interval for one.
type Semitoner interface {
	Semitones() int
}

type Note struct {
	pos      int
	relative bool
	acc      int
}

// New builds a note. Pitch classes are folded into [0,12) and the accidental
// count is clamped to [-3,3].
func New(pos int, relative bool, acc int) Note {
	if relative {
		pos = util.Mod(pos, constants.SemitonesPerOctave)
	}
	if acc > constants.MaxAccidentals {
		acc = constants.MaxAccidentals
	}
	if acc < -constants.MaxAccidentals {
		acc = -constants.MaxAccidentals
	}
	return Note{pos: pos, relative: relative, acc: acc}
}

// FromPos builds an absolute note.
func FromPos(pos int) Note {
	return New(pos, false, 0)
}

// PitchClass builds a pitch class note.
func PitchClass(pos int) Note {
	return New(pos, true, 0)
}

func FromObject(o model.Note) Note {
	return New(o.Pos, o.Relative, o.Acc)
}

// FromNotation parses notations such as "C", "f#", "Bbb3" or "E♭0". Without
// octave digits the result is a pitch class; any octave, 0 included, makes it
// absolute.
func FromNotation(text string) (Note, error) {
	parts, ok := notation.Default().ParseNote(text)
	if !ok {
		return Note{}, errors.Wrapf(ErrParse, "note %q", text)
	}
	return FromParts(parts.Letter, parts.Accidentals, parts.Octave)
}

// MustFromNotation is FromNotation for literals known to be valid.
func MustFromNotation(text string) Note {
	n, err := FromNotation(text)
	if err != nil {
		panic(err)
	}
	return n
}

// FromParts assembles a note from the pieces the grammar captures.
func FromParts(letter string, accidentals string, octave string) (Note, error) {
	if len(letter) != 1 {
		return Note{}, errors.Wrapf(ErrParse, "letter %q", letter)
	}
	offset, ok := letterOffsets[strings.ToUpper(letter)[0]]
	if !ok {
		return Note{}, errors.Wrapf(ErrParse, "letter %q", letter)
	}

	acc := strings.Count(accidentals, "#") + strings.Count(accidentals, "♯") -
		strings.Count(accidentals, "b") - strings.Count(accidentals, "♭")
	if util.Abs(acc) > constants.MaxAccidentals {
		return Note{}, errors.Wrapf(ErrParse, "accidentals %q", accidentals)
	}

	if octave == "" {
		pos := offset + acc
		if pos < 0 {
			pos += constants.SemitonesPerOctave
		}
		return New(pos, true, acc), nil
	}

	oct, err := strconv.Atoi(octave)
	if err != nil {
		return Note{}, errors.Wrapf(ErrParse, "octave %q", octave)
	}
	return New(oct*constants.SemitonesPerOctave+offset+acc, false, acc), nil
}

// IsValid reports whether text is a note notation.
func IsValid(text string) bool {
	return notation.Default().IsNote(text)
}

func (n Note) Pos() int {
	return n.pos
}

func (n Note) IsPitchClass() bool {
	return n.relative
}

func (n Note) Accidentals() int {
	return n.acc
}

// Equal compares pitch, not spelling.
func (n Note) Equal(other Note) bool {
	return n.pos == other.pos && n.relative == other.relative
}

// Class is the position within the octave, 0 to 11.
func (n Note) Class() int {
	return util.Mod(n.pos, constants.SemitonesPerOctave)
}

func (n Note) Octave() int {
	return int(math.Floor(float64(n.pos) / constants.SemitonesPerOctave))
}

func (n Note) ToPitchClass() Note {
	return New(n.Class(), true, n.acc)
}

// ToAbsolute places the pitch class of n in the given octave.
func (n Note) ToAbsolute(octave int) Note {
	return New(n.Class()+octave*constants.SemitonesPerOctave, false, n.acc)
}

// Distance is the signed number of semitones from a to b.
func Distance(a Note, b Note) (int, error) {
	if a.relative || b.relative {
		return 0, errors.Wrapf(ErrInvalidOperation, "distance between %v and %v", a, b)
	}
	return b.pos - a.pos, nil
}

// RelativeDistance is the upward distance from the class of a to the class of
// b, always in [0,12).
func RelativeDistance(a Note, b Note) int {
	return util.Mod(b.Class()-a.Class(), constants.SemitonesPerOctave)
}

func ShortestDistance(a Note, b Note) (int, error) {
	d, err := Distance(a, b)
	if err != nil {
		return 0, err
	}
	return util.Abs(d), nil
}

func ShortestRelativeDistance(a Note, b Note) int {
	return util.Min(RelativeDistance(a, b), RelativeDistance(b, a))
}

func (n Note) Distance(other Note) (int, error) {
	return Distance(n, other)
}

func (n Note) RelativeDistance(other Note) int {
	return RelativeDistance(n, other)
}

// Transpose returns a new note moved by the interval. Pitch classes stay in
// [0,12).
func (n Note) Transpose(i Semitoner) Note {
	return n.TransposeBy(i.Semitones())
}

func (n Note) TransposeBy(semitones int) Note {
	return New(n.pos+semitones, n.relative, n.acc)
}

// MIDI is the MIDI note number of an absolute note (C0 is 12, A4 is 69).
func (n Note) MIDI() (int, error) {
	if n.relative {
		return 0, errors.Wrapf(ErrInvalidOperation, "midi number of %v", n)
	}
	return n.pos + constants.MidiOffset, nil
}

// Frequency in Hz, equal temperament with A4 at 440.
func (n Note) Frequency() (float64, error) {
	if n.relative {
		return 0, errors.Wrapf(ErrInvalidOperation, "frequency of %v", n)
	}
	return constants.ConcertPitchHz * math.Pow(2, float64(n.pos-constants.ConcertPitchPos)/constants.SemitonesPerOctave), nil
}

// Signature is the number of sharps (positive) or flats (negative) of the
// major key built on n.
func (n Note) Signature() int {
	return signatures[n.Class()]
}

// CofPosition is the clockwise position on the circle of fifths, C = 0, G = 1.
func (n Note) CofPosition() int {
	return cofPositions[n.Class()]
}

func (n Note) Solfege() string {
	return solfege[n.Class()]
}

// HasName reports whether text names the same pitch class as n.
func (n Note) HasName(text string) bool {
	other, err := FromNotation(text)
	if err != nil {
		return false
	}
	return other.Class() == n.Class()
}

// SimpleNotation spells n without octave. A note that was spelled with
// accidentals keeps them, otherwise preferFlats picks the table.
func (n Note) SimpleNotation(preferFlats bool) string {
	var name, marks string
	switch {
	case n.acc > 0:
		name = sharpNames[util.Mod(n.Class()-n.acc, constants.SemitonesPerOctave)]
		marks = strings.Repeat("#", n.acc)
	case n.acc < 0:
		name = flatNames[util.Mod(n.Class()-n.acc, constants.SemitonesPerOctave)]
		marks = strings.Repeat("b", -n.acc)
	case preferFlats:
		name = flatNames[n.Class()]
	default:
		name = sharpNames[n.Class()]
	}
	name += marks
	return name[:1] + glyphs(name[1:])
}

// Notation is SimpleNotation plus the octave for absolute notes.
func (n Note) Notation(preferFlats bool) string {
	if n.relative {
		return n.SimpleNotation(preferFlats)
	}
	return n.SimpleNotation(preferFlats) + strconv.Itoa(n.writtenOctave())
}

// writtenOctave is the octave of the letter, which differs from Octave for
// spellings such as Cb or B# that cross the octave boundary.
func (n Note) writtenOctave() int {
	return int(math.Floor(float64(n.pos-n.acc) / constants.SemitonesPerOctave))
}

func (n Note) String() string {
	return n.Notation(false)
}

func glyphs(accidentals string) string {
	accidentals = strings.ReplaceAll(accidentals, "#", "♯")
	return strings.ReplaceAll(accidentals, "b", "♭")
}

func (n Note) ToObject() model.Note {
	return model.Note{Pos: n.pos, Relative: n.relative, Acc: n.acc}
}

func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.ToObject())
}

func (n *Note) UnmarshalJSON(data []byte) error {
	var o model.Note
	if err := json.Unmarshal(data, &o); err != nil {
		return errors.Wrap(err, "decoding note")
	}
	*n = FromObject(o)
	return nil
}
