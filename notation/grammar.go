// Package notation holds the textual grammar for notes, chords, scales and
// guitar finger positions. The chord and scale grammars embed every alias of
// their template table, so a Grammar is compiled once per table pair and
// shared afterwards.
package notation

import (
	"regexp"
	"strings"
	"sync"

	"github.com/jsphweid/tonal/templates"
)

const (
	letterPattern      = `([A-Ga-g])`
	accidentalPattern  = `(#{1,3}|♯{1,3}|b{1,3}|♭{1,3})?`
	octavePattern      = `(-?[0-9])?`
	noteSuffixPattern  = `(?: ?(?:notes|note|not|no|n))?`
	chordSuffixPattern = `(?: ?(?:chord|chor|chrd|cho|ch|c))?`
	scaleSuffixPattern = `(?: ?(?:scale|scal|sca|sc|s))?`
	fretPattern        = `(?:x|X|[0-9]{1,2})`
)

// DefaultName is used when a chord or scale notation carries no name.
const DefaultName = "major"

// NoteParts is a parsed note notation. Octave is empty for pitch classes.
type NoteParts struct {
	Letter      string
	Accidentals string
	Octave      string
}

// NameParts is a parsed chord or scale notation.
type NameParts struct {
	Letter      string
	Accidentals string
	Name        string
}

type Grammar struct {
	chords *templates.Table
	scales *templates.Table

	note    *regexp.Regexp
	chord   *regexp.Regexp
	scale   *regexp.Regexp
	fingers *regexp.Regexp
	fretSep *regexp.Regexp
}

var (
	defaultGrammar *Grammar
	once           sync.Once
)

// Default is the grammar over the built-in template tables.
func Default() *Grammar {
	once.Do(func() {
		defaultGrammar = New(templates.Chords(), templates.Scales())
	})
	return defaultGrammar
}

func New(chords *templates.Table, scales *templates.Table) *Grammar {
	return &Grammar{
		chords:  chords,
		scales:  scales,
		note:    regexp.MustCompile("^" + letterPattern + accidentalPattern + octavePattern + noteSuffixPattern + "$"),
		chord:   regexp.MustCompile("^" + letterPattern + accidentalPattern + " ?" + alternation(chords) + chordSuffixPattern + "$"),
		scale:   regexp.MustCompile("^" + letterPattern + accidentalPattern + " ?" + alternation(scales) + scaleSuffixPattern + "$"),
		fingers: regexp.MustCompile("^" + fretPattern + "(?:[ -]+" + fretPattern + "){5}$"),
		fretSep: regexp.MustCompile("[ -]+"),
	}
}

func alternation(t *templates.Table) string {
	aliases := t.Aliases()
	quoted := make([]string, len(aliases))
	for i, a := range aliases {
		quoted[i] = regexp.QuoteMeta(a)
	}
	return "(" + strings.Join(quoted, "|") + ")?"
}

func (g *Grammar) Chords() *templates.Table {
	return g.chords
}

func (g *Grammar) Scales() *templates.Table {
	return g.scales
}

func (g *Grammar) ParseNote(text string) (NoteParts, bool) {
	m := g.note.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return NoteParts{}, false
	}
	return NoteParts{Letter: m[1], Accidentals: m[2], Octave: m[3]}, true
}

func (g *Grammar) ParseChord(text string) (NameParts, bool) {
	return parseName(g.chord, text)
}

func (g *Grammar) ParseScale(text string) (NameParts, bool) {
	return parseName(g.scale, text)
}

// asciiGlyphs undoes Pretty so that printed names parse back.
var asciiGlyphs = strings.NewReplacer("♯", "#", "♭", "b")

func parseName(r *regexp.Regexp, text string) (NameParts, bool) {
	m := r.FindStringSubmatch(asciiGlyphs.Replace(strings.TrimSpace(text)))
	if m == nil {
		return NameParts{}, false
	}
	name := m[3]
	if name == "" {
		name = DefaultName
	}
	return NameParts{Letter: m[1], Accidentals: m[2], Name: name}, true
}

// ParseFingerPositions splits a six string tab such as "x 3 2 0 1 0" or
// "0-2-2-1-0-0" into its tokens.
func (g *Grammar) ParseFingerPositions(text string) ([]string, bool) {
	text = strings.TrimSpace(text)
	if !g.fingers.MatchString(text) {
		return nil, false
	}
	return g.fretSep.Split(text, -1), true
}

func (g *Grammar) IsNote(text string) bool {
	_, ok := g.ParseNote(text)
	return ok
}

func (g *Grammar) IsChord(text string) bool {
	_, ok := g.ParseChord(text)
	return ok
}

func (g *Grammar) IsScale(text string) bool {
	_, ok := g.ParseScale(text)
	return ok
}

var flatBeforeDigit = regexp.MustCompile(`b([0-9])`)

// Pretty swaps ASCII accidentals for the unicode glyphs. A "b" only counts as
// a flat when it precedes a degree number, so names like "blues" survive.
func Pretty(text string) string {
	text = strings.ReplaceAll(text, "#", "♯")
	return flatBeforeDigit.ReplaceAllString(text, "♭$1")
}
