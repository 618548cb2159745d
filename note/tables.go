package note

// semitone offset of every natural note letter from C
var letterOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// position on the circle of fifths, clockwise from C
var cofPositions = [12]int{0, 7, 2, 9, 4, 11, 6, 1, 8, 3, 10, 5}

// sharps (positive) or flats (negative) of the major key on each pitch class
var signatures = [12]int{0, -5, 2, -3, 4, -1, 6, 1, -4, 3, -2, 5}

var solfege = [12]string{"do", "di", "re", "me", "mi", "fa", "se", "sol", "le", "la", "te", "ti"}

// SharpNames returns the sharp spelling of each pitch class.
func SharpNames() [12]string {
	return sharpNames
}

// FlatNames returns the flat spelling of each pitch class.
func FlatNames() [12]string {
	return flatNames
}
