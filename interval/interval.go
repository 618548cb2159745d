package interval

import (
	"math"

	"github.com/jsphweid/tonal/constants"
	"github.com/jsphweid/tonal/note"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var ErrUnknownName = errors.New("unknown interval name")

// indexed by semitones within the octave, 12 being the octave itself
var names = [13]string{
	"unison",
	"minor second",
	"major second",
	"minor third",
	"major third",
	"fourth",
	"tritone",
	"fifth",
	"minor sixth",
	"major sixth",
	"minor seventh",
	"major seventh",
	"octave",
}

// Interval is a signed distance in semitones.
type Interval struct {
	semitones int
}

func FromSemitones(n int) Interval {
	return Interval{semitones: n}
}

// FromName looks up one of the English interval names exactly.
func FromName(name string) (Interval, error) {
	i := slices.Index(names[:], name)
	if i < 0 {
		return Interval{}, errors.Wrapf(ErrUnknownName, "%q", name)
	}
	return FromSemitones(i), nil
}

// FromNotes is the interval from a up to b. Both notes must be absolute.
func FromNotes(a note.Note, b note.Note) (Interval, error) {
	d, err := note.Distance(a, b)
	if err != nil {
		return Interval{}, err
	}
	return FromSemitones(d), nil
}

func Names() []string {
	return slices.Clone(names[:])
}

func (i Interval) Semitones() int {
	return i.semitones
}

func (i Interval) Octaves() int {
	return int(math.Floor(float64(i.semitones) / constants.SemitonesPerOctave))
}

// WithinOctave is the distance left after removing whole octaves, in [0,12).
func (i Interval) WithinOctave() int {
	return i.semitones - i.Octaves()*constants.SemitonesPerOctave
}

func (i Interval) Name() string {
	return names[i.WithinOctave()]
}

func (i Interval) String() string {
	return i.Name()
}
