package domain

import (
	"errors"
	"fmt"

	"intergalactic/internal/roman"
)

// Query failures. Each aborts a single query and leaves session state as it
// was. Errors carrying a word, item or line are *QueryError values that
// unwrap to one of these.
var (
	ErrInvalidRomanNumeral = roman.ErrInvalid
	ErrUnrecognizedWord    = errors.New("unrecognized word")
	ErrUnrecognizedQuery   = errors.New("unrecognized query")
	ErrUnrecognizedItem    = errors.New("unrecognized item")
	ErrWordAlreadyExists   = errors.New("word already exists")
	ErrDigitAlreadyExists  = errors.New("digit already exists")
	ErrItemAlreadyExists   = errors.New("item already exists")
)

// QueryError attaches the offending input to a taxonomy error.
type QueryError struct {
	Kind    error
	Subject string
}

func (e *QueryError) Error() string { return fmt.Sprintf("%v: %q", e.Kind, e.Subject) }

func (e *QueryError) Unwrap() error { return e.Kind }

// UnrecognizedWord reports a dialect word missing from the dictionary.
func UnrecognizedWord(w Word) error {
	return &QueryError{Kind: ErrUnrecognizedWord, Subject: w.String()}
}

// UnrecognizedQuery reports a line that matches no sentence form.
func UnrecognizedQuery(line string) error {
	return &QueryError{Kind: ErrUnrecognizedQuery, Subject: line}
}

// UnrecognizedItem reports a price query for an item that was never priced.
func UnrecognizedItem(item Item) error {
	return &QueryError{Kind: ErrUnrecognizedItem, Subject: item.String()}
}

// WordAlreadyExists reports an attempt to rebind a word.
func WordAlreadyExists(w Word) error {
	return &QueryError{Kind: ErrWordAlreadyExists, Subject: w.String()}
}

// DigitAlreadyExists reports an attempt to bind a digit to a second word.
func DigitAlreadyExists(d roman.Digit) error {
	return &QueryError{Kind: ErrDigitAlreadyExists, Subject: d.String()}
}

// ItemAlreadyExists reports an attempt to reprice an item.
func ItemAlreadyExists(item Item) error {
	return &QueryError{Kind: ErrItemAlreadyExists, Subject: item.String()}
}
