package model

type ParsedChord struct {
	Root string
	// Suffix is the chord quality, carried through untouched.
	Suffix string
	// Bass is empty when the chord has no slash bass.
	Bass string
}

func (c ParsedChord) HasBass() bool {
	return c.Bass != ""
}

func (c ParsedChord) String() string {
	res := c.Root + c.Suffix
	if c.HasBass() {
		res += "/" + c.Bass
	}
	return res
}

// ChordMatch is one located chord within a line. Offsets are byte offsets.
type ChordMatch struct {
	Start        int
	Length       int
	OpenBracket  string
	Token        string
	CloseBracket string
}

func (m ChordMatch) End() int {
	return m.Start + m.Length
}
