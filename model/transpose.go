package model

type Options struct {
	Shift       int
	PreferFlats bool
}

// TransposedLine holds the same content twice: Plain for copying and
// Annotated for display, with chord spans marked up.
type TransposedLine struct {
	Plain     string
	Annotated string
}
