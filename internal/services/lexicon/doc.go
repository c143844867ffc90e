// Package lexicon maps intergalactic words to Roman digits and translates
// whole phrases into validated Roman numerals.
package lexicon
