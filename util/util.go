package util

import "golang.org/x/exp/constraints"

// Mod returns a modulo m, always in [0, m) even for negative a.
func Mod[A constraints.Integer](a A, m A) A {
	return ((a % m) + m) % m
}

func Contains[A comparable](items []A, item A) bool {
	for _, v := range items {
		if v == item {
			return true
		}
	}
	return false
}
