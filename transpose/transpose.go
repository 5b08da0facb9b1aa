package transpose

import (
	"strings"

	"github.com/featdiibs/simple-chord-transposer/chord"
	"github.com/featdiibs/simple-chord-transposer/line"
	"github.com/featdiibs/simple-chord-transposer/model"
	"github.com/featdiibs/simple-chord-transposer/util"
)

// Line transposes the chords on a single line. Lines that are neither chord
// lines nor bracket annotated are returned as they are. A shift that is a
// multiple of 12 keeps every chord as written, so no chord is respelled;
// chords are still marked in the annotated rendering.
func Line(l string, opts model.Options, ann Annotator) model.TransposedLine {
	verbatim := model.TransposedLine{Plain: l, Annotated: ann.Verbatim(l)}
	if !line.IsEligible(l) {
		return verbatim
	}

	matches := line.FindChords(l)
	if len(matches) == 0 {
		return verbatim
	}

	identity := util.Mod(opts.Shift, 12) == 0

	var plain, annotated strings.Builder
	var cursor int
	for _, m := range matches {
		if m.Start > cursor {
			before := l[cursor:m.Start]
			plain.WriteString(before)
			annotated.WriteString(ann.Verbatim(before))
		}
		transposed := m.Token
		if !identity {
			transposed = chord.Transpose(m.Token, opts.Shift, opts.PreferFlats)
		}
		plain.WriteString(m.OpenBracket + transposed + m.CloseBracket)
		annotated.WriteString(ann.Verbatim(m.OpenBracket))
		annotated.WriteString(ann.Chord(transposed))
		annotated.WriteString(ann.Verbatim(m.CloseBracket))
		cursor = m.End()
	}
	if cursor < len(l) {
		rest := l[cursor:]
		plain.WriteString(rest)
		annotated.WriteString(ann.Verbatim(rest))
	}

	return model.TransposedLine{Plain: plain.String(), Annotated: annotated.String()}
}

// DocumentWith transposes every line of text, keeping line count, order and
// all non-chord text exactly as given.
func DocumentWith(text string, opts model.Options, ann Annotator) model.TransposedLine {
	lines := strings.Split(text, "\n")
	plain := make([]string, len(lines))
	annotated := make([]string, len(lines))
	for i, l := range lines {
		res := Line(l, opts, ann)
		plain[i] = res.Plain
		annotated[i] = res.Annotated
	}
	return model.TransposedLine{
		Plain:     strings.Join(plain, "\n"),
		Annotated: strings.Join(annotated, "\n"),
	}
}

// Document transposes text with HTML annotation.
func Document(text string, opts model.Options) model.TransposedLine {
	return DocumentWith(text, opts, HTMLAnnotator{})
}
