package chord

import (
	"fmt"

	"github.com/jsphweid/tonal/constants"
	"github.com/jsphweid/tonal/note"
	"github.com/jsphweid/tonal/templates"
	"github.com/jsphweid/tonal/util"
	"golang.org/x/exp/slices"
)

// Chord offsets of these classes above the first octave stay compound (b9, 9,
// b13, 13) instead of folding onto the 2nd or 6th. Scales fold everything.
var extensionClasses = []int{1, 2, 8, 9}

// InvariantViolation means the offset folding produced an impossible value.
// It is raised as a panic.
type InvariantViolation struct {
	Offset int
}

func (e InvariantViolation) Error() string {
	return fmt.Sprintf("folded offset %d is negative", e.Offset)
}

type entry struct {
	template *templates.Template
	full     []int
	required []int
	optional []int
}

// Matcher finds the templates of one table that a set of pitches spells.
type Matcher struct {
	kind       Kind
	extensions []int
	entries    []entry
}

var (
	chordMatcher = NewMatcher(templates.Chords(), KindChord)
	scaleMatcher = NewMatcher(templates.Scales(), KindScale)
)

// NewMatcher folds every template of t the same way input pitches are folded,
// so compound offsets like the 11th compare equal to what the input yields.
// Only chord matchers keep extensions compound.
func NewMatcher(t *templates.Table, kind Kind) *Matcher {
	m := &Matcher{kind: kind}
	if kind == KindChord {
		m.extensions = extensionClasses
	}
	for _, tpl := range t.Templates() {
		full := foldAll(tpl.Offsets(), m.extensions)
		optional := foldAll(tpl.Optional(), m.extensions)
		m.entries = append(m.entries, entry{
			template: tpl,
			full:     full,
			required: util.Uniq(util.Difference(full, optional)),
			optional: optional,
		})
	}
	return m
}

// FromNotes returns every chord the pitches could spell, trying each distinct
// pitch class as the bass once.
func FromNotes(pitches []int) []Chord {
	return chordMatcher.FromNotes(pitches)
}

// FromNotesInversion returns the chords whose tonic is the pitch at rank
// inversion once sorted, 0 being the lowest.
func FromNotesInversion(pitches []int, inversion int) []Chord {
	return chordMatcher.FromNotesInversion(pitches, inversion)
}

// ScalesFromNotes is FromNotes against the scale table.
func ScalesFromNotes(pitches []int) []Chord {
	return scaleMatcher.FromNotes(pitches)
}

// ScalesFromNotesInversion is FromNotesInversion against the scale table.
func ScalesFromNotesInversion(pitches []int, inversion int) []Chord {
	return scaleMatcher.FromNotesInversion(pitches, inversion)
}

func (m *Matcher) FromNotes(pitches []int) []Chord {
	if distinctClasses(pitches) < 2 {
		return nil
	}

	sorted := slices.Clone(pitches)
	slices.Sort(sorted)

	var res []Chord
	tried := make(map[int]bool)
	for rank, p := range sorted {
		class := util.Mod(p, constants.SemitonesPerOctave)
		if tried[class] {
			continue
		}
		tried[class] = true
		res = append(res, m.FromNotesInversion(pitches, rank)...)
	}
	return res
}

func (m *Matcher) FromNotesInversion(pitches []int, inversion int) []Chord {
	if inversion < 0 || inversion >= len(pitches) || distinctClasses(pitches) < 2 {
		return nil
	}

	sorted := slices.Clone(pitches)
	slices.Sort(sorted)
	tonic := sorted[inversion]

	offsets := make([]int, len(sorted))
	for i, p := range sorted {
		offsets[i] = fold(p-tonic, m.extensions)
	}
	offsets = util.Uniq(offsets)

	var res []Chord
	seen := make(map[*templates.Template]bool)
	for _, e := range m.entries {
		if seen[e.template] || !e.matches(offsets) {
			continue
		}
		seen[e.template] = true
		res = append(res, New(e.template, note.FromPos(tonic), pitches, m.kind))
	}
	return res
}

// matches accepts the full shape, or the shape with any of its optional
// members left out.
func (e entry) matches(offsets []int) bool {
	if slices.Equal(offsets, e.full) {
		return true
	}
	if len(e.optional) == 0 {
		return false
	}
	return slices.Equal(util.Difference(offsets, e.optional), e.required)
}

// fold maps an offset from the tonic into the first octave, keeping the
// given extension classes one octave up.
func fold(offset int, extensions []int) int {
	if offset < 0 {
		offset = util.Mod(offset, constants.SemitonesPerOctave)
	}
	if offset < 0 {
		panic(InvariantViolation{Offset: offset})
	}
	if offset < constants.SemitonesPerOctave {
		return offset
	}
	class := offset % constants.SemitonesPerOctave
	if slices.Contains(extensions, class) {
		return class + constants.SemitonesPerOctave
	}
	return class
}

func foldAll(offsets []int, extensions []int) []int {
	res := make([]int, len(offsets))
	for i, off := range offsets {
		res[i] = fold(off, extensions)
	}
	return util.Uniq(res)
}

func distinctClasses(pitches []int) int {
	classes := make(map[int]bool)
	for _, p := range pitches {
		classes[util.Mod(p, constants.SemitonesPerOctave)] = true
	}
	return len(classes)
}
