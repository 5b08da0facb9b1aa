package line

import (
	"strings"

	"github.com/featdiibs/simple-chord-transposer/chord"
)

const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)

// ChordLineRatio is the share of words that must parse as chords for a
// line to count as a chord line. Tunable, but changing it changes which
// lines get transposed.
const ChordLineRatio = 0.6

// IsChordLine reports whether most words on the line are chords.
func IsChordLine(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}

	var chordCount int
	for _, w := range words {
		w = strings.TrimLeft(w, OpenBrackets)
		w = strings.TrimRight(w, CloseBrackets)
		if chord.IsChord(w) {
			chordCount++
		}
	}
	return float64(chordCount)/float64(len(words)) >= ChordLineRatio
}

// HasBracketSpan reports whether an opening bracket is followed somewhere
// later on the line by a closing one. The two need not be the same kind.
func HasBracketSpan(line string) bool {
	open := strings.IndexAny(line, OpenBrackets)
	if open < 0 {
		return false
	}
	return strings.ContainsAny(line[open+1:], CloseBrackets)
}

// IsEligible reports whether the line should be scanned for chords at all.
func IsEligible(line string) bool {
	return IsChordLine(line) || HasBracketSpan(line)
}
