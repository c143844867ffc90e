package roman

// Digit is one of the seven Roman digit characters.
type Digit rune

const (
	I Digit = 'I'
	V Digit = 'V'
	X Digit = 'X'
	L Digit = 'L'
	C Digit = 'C'
	D Digit = 'D'
	M Digit = 'M'
)

// ParseDigit reports whether r is a Roman digit and returns it as a Digit.
func ParseDigit(r rune) (Digit, bool) {
	d := Digit(r)
	return d, d.Value() != 0
}

// Value returns the integer weight of d, or 0 for a non-digit.
func (d Digit) Value() uint32 {
	switch d {
	case I:
		return 1
	case V:
		return 5
	case X:
		return 10
	case L:
		return 50
	case C:
		return 100
	case D:
		return 500
	case M:
		return 1000
	default:
		return 0
	}
}

// subtractive reports whether d may precede a larger digit.
func (d Digit) subtractive() bool {
	return d == I || d == X || d == C
}

// String returns the digit as a one-character string.
func (d Digit) String() string { return string(rune(d)) }
