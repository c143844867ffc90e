package roman

import (
	"errors"
	"regexp"
)

// ErrInvalid is returned when a string is not a canonical Roman numeral.
var ErrInvalid = errors.New("string is not a valid roman numeral")

var canonical = regexp.MustCompile(`^M{0,3}(C[MD]|D?C{0,3})(X[CL]|L?X{0,3})(I[XV]|V?I{0,3})$`)

// Numeral is a validated, non-empty canonical Roman numeral.
type Numeral struct {
	value string
}

// Parse validates text against the canonical grammar.
func Parse(text string) (Numeral, error) {
	if text == "" || !canonical.MatchString(text) {
		return Numeral{}, ErrInvalid
	}
	return Numeral{value: text}, nil
}

// String returns the numeral's digits.
func (n Numeral) String() string { return n.value }

// Value decodes n with a single left-to-right pass.
//
// A pending digit is held while it may still pair with its successor:
//   - an equal successor adds both and clears the pending digit;
//   - a larger successor adds the difference and clears it;
//   - a smaller successor flushes the pending digit and becomes pending.
//
// Only I, X and C start out pending; any digit still pending at the end is
// added as is.
func (n Numeral) Value() uint32 {
	var (
		acc     uint32
		pending Digit
		held    bool
	)
	for _, r := range n.value {
		cur := Digit(r)
		if !held {
			if cur.subtractive() {
				pending, held = cur, true
			} else {
				acc += cur.Value()
			}
			continue
		}
		switch {
		case cur == pending:
			acc += pending.Value() + cur.Value()
			held = false
		case pending.Value() < cur.Value():
			acc += cur.Value() - pending.Value()
			held = false
		default:
			acc += pending.Value()
			pending = cur
		}
	}
	if held {
		acc += pending.Value()
	}
	return acc
}
