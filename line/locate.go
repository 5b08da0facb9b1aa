package line

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/featdiibs/simple-chord-transposer/chord"
	"github.com/featdiibs/simple-chord-transposer/model"
)

const qualityStops = ",()[]{}/"

func isOpen(b byte) bool {
	return strings.IndexByte(OpenBrackets, b) >= 0
}

func isClose(b byte) bool {
	return strings.IndexByte(CloseBrackets, b) >= 0
}

// qualityEnd returns the index where the quality run starting at i ends.
func qualityEnd(line string, i int) int {
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if unicode.IsSpace(r) || strings.ContainsRune(qualityStops, r) {
			break
		}
		i += size
	}
	return i
}

// scanAt tries to read one chord span starting at i. It returns the span
// and the index to resume scanning from; ok is false when nothing chord
// shaped starts at i.
func scanAt(line string, i int) (m model.ChordMatch, next int, ok bool) {
	j := i
	if isOpen(line[j]) {
		m.OpenBracket = line[j : j+1]
		j++
	}

	n := chord.RootLen(line[j:])
	if n == 0 {
		return model.ChordMatch{}, i + 1, false
	}
	tokenStart := j
	j = qualityEnd(line, j+n)

	if j < len(line) && line[j] == '/' {
		if n = chord.RootLen(line[j+1:]); n > 0 {
			j += 1 + n
		}
	}
	m.Token = line[tokenStart:j]

	if j < len(line) && isClose(line[j]) {
		m.CloseBracket = line[j : j+1]
		j++
	}

	m.Start = i
	m.Length = j - i
	return m, j, true
}

// FindChords scans the line left to right and returns every chord span in
// order. Spans never overlap and each token parses with chord.Parse.
func FindChords(line string) []model.ChordMatch {
	var res []model.ChordMatch
	for i := 0; i < len(line); {
		m, next, ok := scanAt(line, i)
		if next <= i {
			next = i + 1
		}
		i = next
		if !ok || !chord.IsChord(m.Token) {
			continue
		}
		res = append(res, m)
	}
	return res
}
