package templates

// Chord shapes. Extensions above the octave (9ths, 11ths, 13ths) keep their
// compound offsets.
var chordDefs = []Template{
	// power chord
	Define([]string{"5", "power"}, "power", []int{0, 7}),

	// triads
	Define([]string{"maj", "M", "ma", "major"}, "major", []int{0, 4, 7}),
	Define([]string{"m", "mi", "min", "minor", "-"}, "minor", []int{0, 3, 7}),
	Define([]string{"dim", "diminished", "o"}, "diminished", []int{0, 3, 6}),
	Define([]string{"aug", "augmented", "a", "+"}, "augmented", []int{0, 4, 8}),

	// suspended
	Define([]string{"sus2"}, "suspended 2nd", []int{0, 2, 7}),
	Define([]string{"sus4", "su", "sus"}, "suspended 4th", []int{0, 5, 7}),

	// sevenths
	Define([]string{"maj7", "M7", "maj 7", "major 7"}, "major 7th", []int{0, 4, 11}, 7),
	Define([]string{"m7", "mi7", "min7", "minor 7", "-7"}, "minor 7th", []int{0, 3, 10}, 7),
	Define([]string{"7", "dom7"}, "dominant 7th", []int{0, 4, 10}, 7),
	Define([]string{"dim7", "dim 7", "o7"}, "diminished 7th", []int{0, 3, 6, 9}),
	Define([]string{"m7b5", "ø7", "-7b5", "m7(b5)"}, "half diminished", []int{0, 3, 6, 10}),
	Define([]string{"mM7", "m(maj7)"}, "minor major 7th", []int{0, 3, 11}, 7),

	// sixths
	Define([]string{"6", "maj6"}, "major 6th", []int{0, 4, 9}, 7),
	Define([]string{"m6", "min6"}, "minor 6th", []int{0, 3, 9}, 7),

	// ninths
	Define([]string{"9", "dom9"}, "dominant 9th", []int{0, 4, 10, 14}, 7),
	Define([]string{"maj9", "M9"}, "major 9th", []int{0, 4, 11, 14}, 7),
	Define([]string{"m9", "min9"}, "minor 9th", []int{0, 3, 10, 14}, 7),
	Define([]string{"madd9", "m add9", "min add9"}, "minor add 9th", []int{0, 3, 14}, 7),
	Define([]string{"add9", "Madd9", "maj add9"}, "major add 9th", []int{0, 4, 14}, 7),
	Define([]string{"6/9", "69"}, "six nine", []int{0, 4, 9, 14}, 7),
	Define([]string{"Mb9", "maj b9"}, "major flat 9th", []int{0, 4, 11, 13}, 7),
	Define([]string{"7b9", "7 b9"}, "dominant 7th flat 9th", []int{0, 4, 10, 13}, 7),
	Define([]string{"7#9", "7 #9", "hendrix", "7alt"}, "dominant 7th sharp 9th", []int{0, 3, 4, 10}, 7),
	Define([]string{"M#9", "maj #9", "add#9"}, "sharp 9th", []int{0, 4, 15}, 7),

	// elevenths
	Define([]string{"maj11", "M11"}, "major 11th", []int{0, 4, 11, 17}, 7),
	Define([]string{"m11", "min11"}, "minor 11th", []int{0, 3, 17}, 7, 10),
	Define([]string{"11", "dom11"}, "dominant 11th", []int{0, 4, 17}, 7, 10),

	// thirteenths
	Define([]string{"maj13", "M13"}, "major 13th", []int{0, 4, 11, 21}, 7),
	Define([]string{"m13", "min13"}, "minor 13th", []int{0, 3, 10, 21}, 7),
	Define([]string{"13", "dom13"}, "dominant 13th", []int{0, 4, 10, 21}, 7),
	Define([]string{"7b13"}, "flat 13th", []int{0, 4, 10, 20}, 7),
}

var scaleDefs = []Template{
	Define([]string{"chromatic", "chro"}, "chromatic", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}),
	Define([]string{"major"}, "major", []int{0, 2, 4, 5, 7, 9, 11}),
	Define([]string{"minor"}, "minor", []int{0, 2, 3, 5, 7, 8, 10}),

	// pentatonic
	Define([]string{"major pentatonic", "pentatonic"}, "major pentatonic", []int{0, 2, 4, 7, 9}),
	Define([]string{"minor pentatonic", "relative minor pentatonic"}, "minor pentatonic", []int{0, 3, 5, 7, 10}),

	// blues, with the blue note added
	Define([]string{"major blues", "blues major", "blues", "hexatonic"}, "major blues", []int{0, 2, 4, 6, 7, 9}),
	Define([]string{"minor blues", "blues minor", "m blues"}, "minor blues", []int{0, 3, 5, 6, 7, 10}),

	// modes
	Define([]string{"ionian"}, "ionian", []int{0, 2, 4, 5, 7, 9, 11}),
	Define([]string{"dorian"}, "dorian", []int{0, 2, 3, 5, 7, 9, 10}),
	Define([]string{"phrygian"}, "phrygian", []int{0, 1, 3, 5, 7, 8, 10}),
	Define([]string{"lydian"}, "lydian", []int{0, 2, 4, 6, 7, 9, 11}),
	Define([]string{"mixolydian"}, "mixolydian", []int{0, 2, 4, 5, 7, 9, 10}),
	Define([]string{"aeolian", "natural minor"}, "aeolian", []int{0, 2, 3, 5, 7, 8, 10}),
	Define([]string{"locrian"}, "locrian", []int{0, 1, 3, 5, 6, 8, 10}),
}

const (
	CategoryChord = "chord"
	CategoryScale = "scale"
)

// Built once at start-up and only read afterwards.
var (
	chordTable = NewTable(CategoryChord, chordDefs)
	scaleTable = NewTable(CategoryScale, scaleDefs)
)

// Chords is the process-wide chord table.
func Chords() *Table {
	return chordTable
}

// Scales is the process-wide scale table.
func Scales() *Table {
	return scaleTable
}
