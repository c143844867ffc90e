package domain

import (
	interfaces "intergalactic/internal/domain/interfaces"
	types "intergalactic/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Word        = types.Word
	Item        = types.Item
	Fingerprint = types.Fingerprint
	DigitSet    = types.DigitSet
	WordEntry   = types.WordEntry
	PriceEntry  = types.PriceEntry
	Snapshot    = types.Snapshot
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Lexicon     = interfaces.Lexicon
	PriceBook   = interfaces.PriceBook
	QueryEngine = interfaces.QueryEngine
)
