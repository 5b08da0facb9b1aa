package key

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/featdiibs/simple-chord-transposer/chord"
	"github.com/featdiibs/simple-chord-transposer/line"
	"github.com/featdiibs/simple-chord-transposer/pitch"
)

const rightBounds = "/,)]}"

func boundedAfter(l string, i int) bool {
	if i == len(l) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(l[i:])
	return unicode.IsSpace(r) || strings.ContainsRune(rightBounds, r)
}

// Roots returns the root notes on a line that are directly followed by
// whitespace, a slash, a comma, a closing bracket or the end of the line.
// "G" and the "F#" of "D/F#" count, the "A" of "Am" does not. Nothing is
// required before the note, so the "F" of "PDF " counts too.
func Roots(l string) []pitch.PitchClass {
	var res []pitch.PitchClass
	for i := 0; i < len(l); i++ {
		n := chord.RootLen(l[i:])
		if n == 0 || !boundedAfter(l, i+n) {
			continue
		}
		if p, ok := pitch.Resolve(l[i : i+n]); ok {
			res = append(res, p)
		}
		i += n - 1
	}
	return res
}

// Suggest returns the most common root across the chord-bearing lines of
// text, spelled per preferFlats. Ties go to the root seen first. ok is
// false when no root was found.
func Suggest(text string, preferFlats bool) (name string, ok bool) {
	counts := make(map[pitch.PitchClass]int)
	var order []pitch.PitchClass

	for _, l := range strings.Split(text, "\n") {
		if !line.IsEligible(l) {
			continue
		}
		for _, p := range Roots(l) {
			if _, seen := counts[p]; !seen {
				order = append(order, p)
			}
			counts[p]++
		}
	}
	if len(order) == 0 {
		return "", false
	}

	best := order[0]
	for _, p := range order[1:] {
		if counts[p] > counts[best] {
			best = p
		}
	}
	return pitch.Render(best, preferFlats), true
}
