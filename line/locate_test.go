package line

import (
	"testing"

	"github.com/featdiibs/simple-chord-transposer/model"
	"github.com/stretchr/testify/assert"
)

func tokens(matches []model.ChordMatch) []string {
	res := make([]string, 0, len(matches))
	for _, m := range matches {
		res = append(res, m.Token)
	}
	return res
}

func TestFindChordsSimpleLine(t *testing.T) {
	matches := FindChords("C G Am F")
	assert.Equal(t, []model.ChordMatch{
		{Start: 0, Length: 1, Token: "C"},
		{Start: 2, Length: 1, Token: "G"},
		{Start: 4, Length: 2, Token: "Am"},
		{Start: 7, Length: 1, Token: "F"},
	}, matches)
}

func TestFindChordsBrackets(t *testing.T) {
	matches := FindChords("Hello [C]world [G]now")
	assert.Equal(t, []model.ChordMatch{
		{Start: 6, Length: 3, OpenBracket: "[", Token: "C", CloseBracket: "]"},
		{Start: 15, Length: 3, OpenBracket: "[", Token: "G", CloseBracket: "]"},
	}, matches)
}

func TestFindChordsUnbalancedBrackets(t *testing.T) {
	assert := assert.New(t)

	matches := FindChords("(Am G)")
	assert.Equal([]model.ChordMatch{
		{Start: 0, Length: 3, OpenBracket: "(", Token: "Am"},
		{Start: 4, Length: 2, Token: "G", CloseBracket: ")"},
	}, matches)

	matches = FindChords("[C)")
	assert.Equal([]model.ChordMatch{
		{Start: 0, Length: 3, OpenBracket: "[", Token: "C", CloseBracket: ")"},
	}, matches)
}

func TestFindChordsSlashAndPunctuation(t *testing.T) {
	for _, tc := range []struct {
		line     string
		expected []string
	}{
		{"C5/B", []string{"C5/B"}},
		{"D/F#", []string{"D/F#"}},
		{"C/x", []string{"C"}},
		{"C/Bb7", []string{"C/Bb"}},
		{"G.", []string{"G."}},
		{"G, C", []string{"G", "C"}},
		{"Am7b5 E7#9", []string{"Am7b5", "E7#9"}},
		{"H7 C", []string{"C"}},
		{"([C]", []string{"C"}},
		{"", []string{}},
		{"no chords here", []string{}},
	} {
		t.Run(tc.line, func(t *testing.T) {
			assert.Equal(t, tc.expected, tokens(FindChords(tc.line)))
		})
	}
}

func TestFindChordsOrderedAndNonOverlapping(t *testing.T) {
	line := "[C] G/B (Am7) {Fmaj7} Dsus4/F# x E"
	matches := FindChords(line)
	assert.NotEmpty(t, matches)

	prevEnd := 0
	for _, m := range matches {
		assert.GreaterOrEqual(t, m.Start, prevEnd)
		assert.Equal(t, line[m.Start:m.End()], m.OpenBracket+m.Token+m.CloseBracket)
		prevEnd = m.End()
	}
}
