package transpose

import (
	"html"
	"regexp"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Annotator decorates the annotated rendering of a document. Verbatim is
// applied to text copied from the input, Chord to each transposed chord.
type Annotator interface {
	Verbatim(s string) string
	Chord(s string) string
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// HTMLAnnotator wraps chords in <span class="chord"> and escapes &, < and >.
type HTMLAnnotator struct{}

func (HTMLAnnotator) Verbatim(s string) string {
	return htmlEscaper.Replace(s)
}

func (HTMLAnnotator) Chord(s string) string {
	return `<span class="chord">` + htmlEscaper.Replace(s) + `</span>`
}

// StripMarkup undoes HTMLAnnotator: it drops tags and unescapes entities.
func StripMarkup(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>' && inTag:
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return html.UnescapeString(b.String())
}

// ANSIAnnotator highlights chords with terminal colors.
type ANSIAnnotator struct {
	au aurora.Aurora
}

func NewANSIAnnotator(colors bool) ANSIAnnotator {
	return ANSIAnnotator{au: aurora.NewAurora(colors)}
}

func (a ANSIAnnotator) Verbatim(s string) string {
	return s
}

func (a ANSIAnnotator) Chord(s string) string {
	return a.au.Bold(a.au.Cyan(s)).String()
}

var ansiSequence = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func StripANSI(s string) string {
	return ansiSequence.ReplaceAllString(s, "")
}

// PlainAnnotator adds nothing; its annotated output equals the plain one.
type PlainAnnotator struct{}

func (PlainAnnotator) Verbatim(s string) string { return s }
func (PlainAnnotator) Chord(s string) string    { return s }

// AnnotatorByName maps the names accepted on the command line to annotators.
func AnnotatorByName(name string, colors bool) (Annotator, bool) {
	switch strings.ToLower(name) {
	case "html":
		return HTMLAnnotator{}, true
	case "ansi", "color":
		return NewANSIAnnotator(colors), true
	case "none", "plain", "":
		return PlainAnnotator{}, true
	}
	return nil, false
}
