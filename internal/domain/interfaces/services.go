package interfaces

import (
	"github.com/shopspring/decimal"

	"intergalactic/internal/domain/types"
	"intergalactic/internal/roman"
)

// Lexicon maps dialect words to Roman digits and translates phrases.
//
// Insert overwrites unconditionally; keeping words and digits unique is the
// query engine's job.
type Lexicon interface {
	Translate(phrase string) (roman.Numeral, error)
	Contains(word types.Word) bool
	KnownDigits() types.DigitSet
	Insert(word types.Word, digit roman.Digit)
	Entries() []types.WordEntry
}

// PriceBook stores the unit price of each item. Prices are never replaced.
type PriceBook interface {
	Get(item types.Item) (decimal.Decimal, bool)
	InsertIfAbsent(item types.Item, price decimal.Decimal) bool
	Entries() []types.PriceEntry
}

// QueryEngine answers one line of input at a time.
//
// ok is false when the line was a definition that produced no reply.
type QueryEngine interface {
	Query(line string) (reply string, ok bool, err error)
}
