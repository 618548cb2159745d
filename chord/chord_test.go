package chord

import (
	"testing"

	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/note"
	"github.com/jsphweid/tonal/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNotationMajorTriad(t *testing.T) {
	t.Parallel()

	c, err := FromNotation("C")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 7}, c.Pitches())
	assert.Equal(t, "maj", c.Name())
	assert.Equal(t, KindChord, c.Kind())

	tonic, ok := c.Tonic()
	require.True(t, ok)
	assert.Equal(t, 0, tonic.Pos())
}

func TestFromNotationIncludesOptionalNotes(t *testing.T) {
	t.Parallel()

	c, err := FromNotation("Cmin7")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 7, 10}, c.Pitches())
	assert.Equal(t, []int{0, 3, 10}, c.MinPitches())
}

func TestFromNotationTransposesToTonic(t *testing.T) {
	t.Parallel()

	c, err := FromNotation("G")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 11, 2}, c.Pitches())

	c, err = FromNotation("Bbmaj9")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 2, 5, 9, 0}, c.Pitches())
}

func TestFromNotationCreatesEveryKnownChord(t *testing.T) {
	t.Parallel()

	for _, tpl := range templates.Chords().Templates() {
		for _, name := range tpl.DisplayNames() {
			t.Run(name, func(t *testing.T) {
				c, err := FromNotation("C" + name)
				require.NoError(t, err)
				assert.Same(t, tpl, c.Template())
				assert.Len(t, c.Pitches(), len(tpl.Offsets()))
				assert.Equal(t, 0, c.Pitches()[0])
			})
		}
	}
}

func TestFromNotationNotFound(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "Cfoo", "H7", "Cdorian"} {
		_, err := FromNotation(text)
		assert.ErrorIs(t, err, ErrNotFound, text)
		assert.False(t, IsValid(text), text)
	}
}

func TestScaleFromNotation(t *testing.T) {
	t.Parallel()

	s, err := ScaleFromNotation("A minor")
	require.NoError(t, err)
	assert.Equal(t, KindScale, s.Kind())
	assert.Equal(t, []int{9, 11, 0, 2, 4, 5, 7}, s.Pitches())
	assert.Equal(t, "A minor", s.Notation(false))
	assert.True(t, IsValidScale("Ebdorian scale"))

	s, err = ScaleFromNotation("C")
	require.NoError(t, err)
	assert.Equal(t, "major", s.Name())
	assert.Len(t, s.Pitches(), 7)

	_, err = ScaleFromNotation("Cmaj7")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNotation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text        string
		flats       bool
		notation    string
		longNoation string
	}{
		{"C", false, "Cmaj", "C major"},
		{"C#m7", true, "C♯m7", "C♯ minor 7th"},
		{"Dbm7", false, "D♭m7", "D♭ minor 7th"},
		{"Bbm7b5", false, "B♭m7♭5", "B♭ half diminished"},
		{"E7#9", false, "E7♯9", "E dominant 7th sharp 9th"},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			ch := MustFromNotation(c.text)
			assert.Equal(t, c.notation, ch.Notation(c.flats))
			assert.Equal(t, c.longNoation, ch.LongNotation(c.flats))
		})
	}
}

func TestNotationFollowsPreferenceForTransposedTonic(t *testing.T) {
	t.Parallel()

	c := MustFromNotation("Cm").Transpose(interval.FromSemitones(3))
	assert.Equal(t, "D♯m", c.Notation(false))
	assert.Equal(t, "E♭m", c.Notation(true))
}

func TestAbstract(t *testing.T) {
	t.Parallel()

	c := Abstract(templates.Chords().MustResolve("m7"), KindChord)
	assert.True(t, c.IsAbstract())
	_, ok := c.Tonic()
	assert.False(t, ok)
	assert.Equal(t, "m7", c.Notation(false))
	assert.Equal(t, "minor 7th", c.LongNotation(false))
	assert.Equal(t, []int{0, 3, 7, 10}, c.Pitches())
	assert.True(t, c.ContainsPitch(note.MustFromNotation("Eb")))
	assert.True(t, c.HasName("Fm7"))
}

func TestTransposeIsPure(t *testing.T) {
	t.Parallel()

	c := MustFromNotation("C")
	f := c.Transpose(interval.FromSemitones(5))

	assert.Equal(t, []int{0, 4, 7}, c.Pitches())
	assert.Equal(t, []int{5, 9, 0}, f.Pitches())
	tonic, _ := f.Tonic()
	assert.Equal(t, 5, tonic.Pos())
	assert.Equal(t, "Fmaj", f.Notation(false))

	original, _ := c.Tonic()
	assert.Equal(t, 0, original.Pos())
}

func TestTransposeVoicing(t *testing.T) {
	t.Parallel()

	c := FromNotes([]int{48, 52, 55})[0]
	up := c.Transpose(interval.FromSemitones(14))
	assert.Equal(t, []int{62, 66, 69}, up.Pitches())
	tonic, _ := up.Tonic()
	assert.Equal(t, 62, tonic.Pos())
}

func TestTransposeByZeroIsIdentity(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"C", "F#m7", "Bb13", "Eb dim7"} {
		c := MustFromNotation(text)
		assert.True(t, c.PitchEqual(c.Transpose(interval.FromSemitones(0))), text)
	}
	v := FromNotes([]int{40, 47, 52, 56})[0]
	assert.True(t, v.PitchEqual(v.Transpose(interval.FromSemitones(0))))
}

func TestPitchEqualIgnoresSpelling(t *testing.T) {
	t.Parallel()

	assert.True(t, MustFromNotation("C#m").PitchEqual(MustFromNotation("Dbm")))
	assert.False(t, MustFromNotation("C#m").PitchEqual(MustFromNotation("C#")))
	assert.False(t, MustFromNotation("C#m").PitchEqual(MustFromNotation("Dm")))
}

func TestContainsPitchUsesPitchClasses(t *testing.T) {
	t.Parallel()

	c := MustFromNotation("C")
	assert.True(t, c.ContainsPitch(note.MustFromNotation("E4")))
	assert.True(t, c.ContainsPitch(note.MustFromNotation("G")))
	assert.True(t, c.ContainsPitch(note.FromPos(-12)))
	assert.False(t, c.ContainsPitch(note.MustFromNotation("D")))

	v := FromNotes([]int{52, 55, 60})[0]
	assert.True(t, v.ContainsPitch(note.MustFromNotation("C0")))
}

func TestHasName(t *testing.T) {
	t.Parallel()

	c := MustFromNotation("Cmaj7")
	assert.True(t, c.HasName("CM7"))
	assert.True(t, c.HasName("B#major 7th"))
	assert.False(t, c.HasName("C#maj7"))
	assert.False(t, c.HasName("C7"))
	assert.False(t, c.HasName("bogus"))
}

func TestNotes(t *testing.T) {
	t.Parallel()

	notes := MustFromNotation("D").Notes()
	require.Len(t, notes, 3)
	assert.True(t, notes[0].IsPitchClass())
	assert.Equal(t, "F♯", notes[1].Notation(false))

	notes = FromNotes([]int{50, 54, 57})[0].Notes()
	assert.False(t, notes[0].IsPitchClass())
	assert.Equal(t, "D4", notes[0].Notation(false))
}

func TestKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "chord:maj@0:0-4-7", MustFromNotation("C").Key())
	assert.Equal(t, "chord:maj@12:4-7-12", FromNotes([]int{12, 7, 4})[0].Key())
	assert.Equal(t, "0-4-7", CreateChordKey([]int{7, 0, 4}))
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "chord", KindChord.String())
	assert.Equal(t, "scale", KindScale.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
	assert.Same(t, templates.Scales(), KindScale.Table())
}

func TestNotationParsesBack(t *testing.T) {
	t.Parallel()

	for _, tpl := range templates.Chords().Templates() {
		for _, tonic := range []string{"C", "F#", "Eb"} {
			c := MustFromNotation(tonic + tpl.Name())
			assert.True(t, c.HasName(c.Notation(false)), c.Notation(false))
			assert.True(t, c.HasName(c.Notation(true)), c.Notation(true))
		}
	}

	for _, tpl := range templates.Scales().Templates() {
		s, err := ScaleFromNotation("Bb " + tpl.Name())
		require.NoError(t, err)
		assert.True(t, s.HasName(s.Notation(false)), s.Notation(false))
	}
}
