package render

import (
	"strings"
	"testing"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/match"
	"github.com/jsphweid/tonal/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyboardPlain(t *testing.T) {
	t.Parallel()

	k := Keyboard{Plain: true}
	out := k.Highlight(chord.MustFromNotation("C").Notes())
	assert.Equal(t, "[C] C♯  D  D♯ [E] F  F♯ [G] G♯  A  A♯  B ", out)
}

func TestKeyboardPlainFlatsAndOctaves(t *testing.T) {
	t.Parallel()

	k := Keyboard{Plain: true, PreferFlats: true}
	out := k.Highlight([]note.Note{note.MustFromNotation("Bb2"), note.MustFromNotation("Eb5")})
	assert.Equal(t, " C  D♭  D [E♭] E  F  G♭  G  A♭  A [B♭] B ", out)
}

func TestKeyboardStyled(t *testing.T) {
	t.Parallel()

	out := Keyboard{}.Highlight([]note.Note{note.MustFromNotation("A")})
	for _, label := range []string{"C", "F♯", "A", "B"} {
		assert.Contains(t, out, label)
	}
}

func TestHueFollowsCircleOfFifths(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, hue(0), hue(7))
	assert.Equal(t, hue(0), hue(0))
	assert.True(t, strings.HasPrefix(string(hue(4)), "#"))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	k := Keyboard{Plain: true}

	res := match.Find("Am7")
	require.Len(t, res, 1)
	out := Match(k, res[0], false, true)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Am7 (A minor 7th)", lines[0])
	assert.Equal(t, "[C] C♯  D  D♯ [E] F  F♯ [G] G♯ [A] A♯  B ", lines[1])

	res = match.Find("E4")
	out = Match(k, res[0], false, true)
	assert.True(t, strings.HasPrefix(out, "E4\n"))
	assert.Contains(t, out, "[E]")

	res = match.Find("D dorian")
	out = Match(k, res[0], false, true)
	assert.True(t, strings.HasPrefix(out, "D dorian\n"))
}
