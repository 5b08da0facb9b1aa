package chord

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/featdiibs/simple-chord-transposer/model"
	"github.com/featdiibs/simple-chord-transposer/pitch"
)

func IsRootLetter(b byte) bool {
	return b >= 'A' && b <= 'G'
}

func IsAccidental(b byte) bool {
	return b == '#' || b == 'b'
}

// RootLen returns the length of the root note at the start of s
// (a letter A-G and an optional # or b), or 0 if there is none.
func RootLen(s string) int {
	if len(s) == 0 || !IsRootLetter(s[0]) {
		return 0
	}
	if len(s) > 1 && IsAccidental(s[1]) {
		return 2
	}
	return 1
}

// suffixLen returns how many bytes of s belong to the suffix, stopping at
// a slash or any whitespace.
func suffixLen(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == '/' || unicode.IsSpace(r) {
			return i
		}
		i += size
	}
	return len(s)
}

// Parse splits a token of the form <root><suffix>(/<bass>)? into its parts.
// ok is false when the token is not chord-shaped. The root is not checked
// against the pitch table here.
func Parse(token string) (c model.ParsedChord, ok bool) {
	n := RootLen(token)
	if n == 0 {
		return c, false
	}
	c.Root = token[:n]
	rest := token[n:]

	n = suffixLen(rest)
	c.Suffix = rest[:n]
	rest = rest[n:]
	if rest == "" {
		return c, true
	}

	if !strings.HasPrefix(rest, "/") {
		return model.ParsedChord{}, false
	}
	bass := rest[1:]
	if n = RootLen(bass); n == 0 || n != len(bass) {
		return model.ParsedChord{}, false
	}
	c.Bass = bass
	return c, true
}

func IsChord(token string) bool {
	_, ok := Parse(token)
	return ok
}

func transposeNote(note string, shift int, preferFlats bool) (string, bool) {
	p, ok := pitch.Resolve(note)
	if !ok {
		return note, false
	}
	return pitch.Render(p.Shift(shift), preferFlats), true
}

// Transpose moves the root and bass of token by shift semitones. Tokens
// that don't parse, or whose root is unknown, come back unchanged. An
// unknown bass is kept as written.
func Transpose(token string, shift int, preferFlats bool) string {
	c, ok := Parse(token)
	if !ok {
		return token
	}
	root, ok := transposeNote(c.Root, shift, preferFlats)
	if !ok {
		return token
	}
	c.Root = root
	if c.HasBass() {
		c.Bass, _ = transposeNote(c.Bass, shift, preferFlats)
	}
	return c.String()
}
