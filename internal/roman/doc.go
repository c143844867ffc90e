// Package roman validates and decodes canonical Roman numerals.
//
// Only the seven classic digits are supported, so the largest expressible
// value is MMMCMXCIX (3999). A Numeral can only be obtained through Parse,
// which rejects anything outside the canonical grammar.
package roman
