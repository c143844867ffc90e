package types

import (
	"bytes"

	"github.com/shopspring/decimal"

	"intergalactic/internal/roman"
)

// WordEntry is one dictionary binding.
type WordEntry struct {
	Word  Word
	Digit roman.Digit
}

// PriceEntry is one price book row.
type PriceEntry struct {
	Item      Item
	UnitPrice decimal.Decimal
}

// Snapshot is a read-only, sorted view of a session's dictionary and prices.
type Snapshot struct {
	Words  []WordEntry
	Prices []PriceEntry
}

// Canonical encodes s as stable line-oriented bytes suitable for hashing.
//
// Prices are written in their normalised decimal form so equal values always
// encode the same way.
func (s Snapshot) Canonical() []byte {
	var b bytes.Buffer
	for _, w := range s.Words {
		b.WriteString("word ")
		b.WriteString(string(w.Word))
		b.WriteByte('=')
		b.WriteString(w.Digit.String())
		b.WriteByte('\n')
	}
	for _, p := range s.Prices {
		b.WriteString("item ")
		b.WriteString(string(p.Item))
		b.WriteByte('=')
		b.WriteString(p.UnitPrice.String())
		b.WriteByte('\n')
	}
	return b.Bytes()
}
