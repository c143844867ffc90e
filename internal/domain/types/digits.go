package types

import (
	"sort"

	"intergalactic/internal/roman"
)

// DigitSet is the set of Roman digits already bound to a word.
type DigitSet map[roman.Digit]struct{}

// Has reports whether d is in the set.
func (s DigitSet) Has(d roman.Digit) bool {
	_, ok := s[d]
	return ok
}

// Add inserts d into the set.
func (s DigitSet) Add(d roman.Digit) { s[d] = struct{}{} }

// Sorted returns the digits ordered by value.
func (s DigitSet) Sorted() []roman.Digit {
	out := make([]roman.Digit, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value() < out[j].Value() })
	return out
}
