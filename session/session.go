package session

import (
	"github.com/featdiibs/simple-chord-transposer/key"
	"github.com/featdiibs/simple-chord-transposer/model"
	"github.com/featdiibs/simple-chord-transposer/pitch"
	"github.com/featdiibs/simple-chord-transposer/transpose"
	"github.com/featdiibs/simple-chord-transposer/util"
)

// Session is the state a front end keeps between transpositions: the
// original key, the target key, the shift between them and the spelling
// preference. Changing one re-derives the others.
type Session struct {
	From        string
	To          string
	Shift       int
	PreferFlats bool
}

func New() *Session {
	return &Session{From: "C", To: "C"}
}

func (s *Session) Options() model.Options {
	return model.Options{Shift: s.Shift, PreferFlats: s.PreferFlats}
}

func (s *Session) syncShiftFromKeys() {
	shift, err := pitch.ShiftBetween(s.From, s.To)
	if err != nil {
		return
	}
	s.Shift = shift
}

func (s *Session) syncTargetFromShift() {
	to, err := pitch.TargetKey(s.From, s.Shift, s.PreferFlats)
	if err != nil {
		return
	}
	s.To = to
}

func (s *Session) SetFrom(k string) error {
	if _, err := pitch.ShiftBetween(k, k); err != nil {
		return err
	}
	s.From = k
	s.syncShiftFromKeys()
	s.syncTargetFromShift()
	return nil
}

func (s *Session) SetTo(k string) error {
	if _, err := pitch.ShiftBetween(k, k); err != nil {
		return err
	}
	s.To = k
	s.syncShiftFromKeys()
	return nil
}

func (s *Session) SetShift(n int) {
	s.Shift = util.Mod(n, 12)
	s.syncTargetFromShift()
}

func (s *Session) Up() {
	s.SetShift(s.Shift + 1)
}

func (s *Session) Down() {
	s.SetShift(s.Shift - 1)
}

func (s *Session) SetFlats(preferFlats bool) {
	s.PreferFlats = preferFlats
	s.syncTargetFromShift()
}

// Detect sets From to the key suggested for text, keeping To and moving
// the shift to match. ok is false when nothing could be suggested.
func (s *Session) Detect(text string) (string, bool) {
	k, ok := key.Suggest(text, s.PreferFlats)
	if !ok {
		return "", false
	}
	s.From = k
	s.syncShiftFromKeys()
	return k, true
}

func (s *Session) Transpose(text string, ann transpose.Annotator) model.TransposedLine {
	return transpose.DocumentWith(text, s.Options(), ann)
}
