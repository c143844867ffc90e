package types

// Word is a lowercase token of the intergalactic numeral dialect, e.g. "glob".
type Word string

// String returns the string form of the word.
func (w Word) String() string { return string(w) }

// Item names a traded good. Items always start with an uppercase letter.
type Item string

// String returns the string form of the item.
func (i Item) String() string { return string(i) }

// Fingerprint is a short digest of session state presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
