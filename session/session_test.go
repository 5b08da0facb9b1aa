package session

import (
	"testing"

	"github.com/featdiibs/simple-chord-transposer/pitch"
	"github.com/featdiibs/simple-chord-transposer/transpose"
	"github.com/stretchr/testify/assert"
)

func TestNewSession(t *testing.T) {
	s := New()
	assert.Equal(t, &Session{From: "C", To: "C"}, s)
}

func TestSetToDerivesShift(t *testing.T) {
	assert := assert.New(t)
	s := New()

	assert.NoError(s.SetTo("D"))
	assert.Equal(2, s.Shift)

	assert.NoError(s.SetTo("Bb"))
	assert.Equal(10, s.Shift)

	assert.ErrorIs(s.SetTo("H"), pitch.ErrUnknownKey)
	assert.Equal("Bb", s.To)
}

func TestSetFromKeepsTarget(t *testing.T) {
	assert := assert.New(t)
	s := New()
	assert.NoError(s.SetTo("E"))

	assert.NoError(s.SetFrom("D"))
	assert.Equal(2, s.Shift)
	assert.Equal("E", s.To)

	assert.ErrorIs(s.SetFrom("X"), pitch.ErrUnknownKey)
	assert.Equal("D", s.From)
}

func TestUpDownWrap(t *testing.T) {
	assert := assert.New(t)
	s := New()

	s.Down()
	assert.Equal(11, s.Shift)
	assert.Equal("B", s.To)

	s.Up()
	s.Up()
	assert.Equal(1, s.Shift)
	assert.Equal("C#", s.To)

	s.SetShift(-14)
	assert.Equal(10, s.Shift)
	assert.Equal("A#", s.To)
}

func TestSetFlatsRespellsTarget(t *testing.T) {
	assert := assert.New(t)
	s := New()
	s.SetShift(3)
	assert.Equal("D#", s.To)

	s.SetFlats(true)
	assert.Equal("Eb", s.To)
	assert.Equal(3, s.Shift)
}

func TestDetect(t *testing.T) {
	assert := assert.New(t)
	s := New()
	assert.NoError(s.SetTo("A"))

	k, ok := s.Detect("G C G D\nG D G")
	assert.True(ok)
	assert.Equal("G", k)
	assert.Equal("G", s.From)
	assert.Equal(2, s.Shift)

	_, ok = s.Detect("no chords at all")
	assert.False(ok)
	assert.Equal("G", s.From)
}

func TestSessionTranspose(t *testing.T) {
	s := New()
	assert.NoError(t, s.SetTo("D"))
	res := s.Transpose("C G Am F", transpose.PlainAnnotator{})
	assert.Equal(t, "D A Bm G", res.Plain)
	assert.Equal(t, res.Plain, res.Annotated)
}
