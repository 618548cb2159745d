package chord

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// CreateChordKey renders a set of pitches in ascending order, e.g. "0-4-7".
func CreateChordKey(pitches []int) string {
	sorted := slices.Clone(pitches)
	slices.Sort(sorted)
	parts := make([]string, len(sorted))
	for i, p := range sorted {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, "-")
}
