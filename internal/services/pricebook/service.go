package pricebook

import (
	"sort"

	"github.com/shopspring/decimal"

	"intergalactic/internal/domain"
)

// Service is an in-memory, insert-only price book.
type Service struct {
	prices map[domain.Item]decimal.Decimal
}

// New returns an empty price book.
func New() *Service {
	return &Service{prices: make(map[domain.Item]decimal.Decimal)}
}

// NewWith returns a price book seeded with prices. The map is copied.
func NewWith(prices map[domain.Item]decimal.Decimal) *Service {
	s := New()
	for item, p := range prices {
		s.prices[item] = p
	}
	return s
}

// Get returns the unit price of item.
func (s *Service) Get(item domain.Item) (decimal.Decimal, bool) {
	p, ok := s.prices[item]
	return p, ok
}

// InsertIfAbsent stores price for item unless it is already priced. It
// reports whether the price was stored.
func (s *Service) InsertIfAbsent(item domain.Item, price decimal.Decimal) bool {
	if _, ok := s.prices[item]; ok {
		return false
	}
	s.prices[item] = price
	return true
}

// Entries returns all prices ordered by item name.
func (s *Service) Entries() []domain.PriceEntry {
	out := make([]domain.PriceEntry, 0, len(s.prices))
	for item, p := range s.prices {
		out = append(out, domain.PriceEntry{Item: item, UnitPrice: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item < out[j].Item })
	return out
}

// Compile-time assertion that Service implements domain.PriceBook.
var _ domain.PriceBook = (*Service)(nil)
