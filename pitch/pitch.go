package pitch

import (
	"errors"
	"fmt"

	"github.com/featdiibs/simple-chord-transposer/util"
)

// PitchClass is one of the 12 pitch classes, 0 = C.
type PitchClass int

// ErrUnknownKey is returned when a key name is not a note spelling.
var ErrUnknownKey = errors.New("unknown key")

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var noteToPitch = map[string]PitchClass{
	"C": 0, "B#": 0,
	"C#": 1, "Db": 1,
	"D": 2,
	"D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"F": 5, "E#": 5,
	"F#": 6, "Gb": 6,
	"G": 7,
	"G#": 8, "Ab": 8,
	"A": 9,
	"A#": 10, "Bb": 10,
	"B": 11, "Cb": 11,
}

// KeyNames is the fixed list of keys offered for selection.
var KeyNames = []string{"C", "C#", "Db", "D", "D#", "Eb", "E", "F", "F#", "Gb", "G", "G#", "Ab", "A", "A#", "Bb", "B"}

// Normalize reduces n to a pitch class in [0, 12).
func Normalize(n int) PitchClass {
	return PitchClass(util.Mod(n, 12))
}

// Resolve maps a note spelling to its pitch class. ok is false for
// anything that is not a known note name.
func Resolve(spelling string) (p PitchClass, ok bool) {
	p, ok = noteToPitch[spelling]
	return
}

// Render spells a pitch class using sharps or flats. Out of range
// values are reduced mod 12 first.
func Render(p PitchClass, preferFlats bool) string {
	i := util.Mod(int(p), 12)
	if preferFlats {
		return flatNames[i]
	}
	return sharpNames[i]
}

// Shift moves p by n semitones. n is reduced first so any int is safe.
func (p PitchClass) Shift(n int) PitchClass {
	return Normalize(util.Mod(int(p), 12) + util.Mod(n, 12))
}

func resolveKey(name string) (PitchClass, error) {
	p, ok := Resolve(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return p, nil
}

// ShiftBetween returns the upward distance in semitones from one key to another, in [0, 12).
func ShiftBetween(from, to string) (int, error) {
	fromVal, err := resolveKey(from)
	if err != nil {
		return 0, err
	}
	toVal, err := resolveKey(to)
	if err != nil {
		return 0, err
	}
	return util.Mod(int(toVal)-int(fromVal), 12), nil
}

// TargetKey returns the key reached by moving from by shift semitones,
// picked from KeyNames.
func TargetKey(from string, shift int, preferFlats bool) (string, error) {
	fromVal, err := resolveKey(from)
	if err != nil {
		return "", err
	}
	target := fromVal.Shift(shift)
	name := Render(target, preferFlats)
	if util.Contains(KeyNames, name) {
		return name, nil
	}
	for _, k := range KeyNames {
		if v, _ := Resolve(k); v == target {
			return k, nil
		}
	}
	return name, nil
}
