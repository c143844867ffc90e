package lexicon

import (
	"sort"
	"strings"

	"intergalactic/internal/domain"
	"intergalactic/internal/roman"
)

// Service is an in-memory word-to-digit dictionary.
type Service struct {
	words map[domain.Word]roman.Digit
}

// New returns an empty dictionary.
func New() *Service {
	return &Service{words: make(map[domain.Word]roman.Digit)}
}

// NewWith returns a dictionary seeded with words. The map is copied.
func NewWith(words map[domain.Word]roman.Digit) *Service {
	s := New()
	for w, d := range words {
		s.words[w] = d
	}
	return s
}

// Translate converts a whitespace-separated phrase into a Roman numeral.
//
// Words are mapped in order and their digits concatenated. The first unknown
// word fails the whole phrase; a concatenation outside the canonical grammar
// fails with domain.ErrInvalidRomanNumeral.
func (s *Service) Translate(phrase string) (roman.Numeral, error) {
	var b strings.Builder
	for _, field := range strings.Fields(phrase) {
		d, ok := s.words[domain.Word(field)]
		if !ok {
			return roman.Numeral{}, domain.UnrecognizedWord(domain.Word(field))
		}
		b.WriteRune(rune(d))
	}
	return roman.Parse(b.String())
}

// Contains reports whether word has a digit.
func (s *Service) Contains(word domain.Word) bool {
	_, ok := s.words[word]
	return ok
}

// KnownDigits returns a copy of the digits currently bound to some word.
func (s *Service) KnownDigits() domain.DigitSet {
	out := make(domain.DigitSet, len(s.words))
	for _, d := range s.words {
		out.Add(d)
	}
	return out
}

// Insert binds word to digit, replacing any previous binding.
func (s *Service) Insert(word domain.Word, digit roman.Digit) {
	s.words[word] = digit
}

// Entries returns all bindings ordered by digit value, then word.
func (s *Service) Entries() []domain.WordEntry {
	out := make([]domain.WordEntry, 0, len(s.words))
	for w, d := range s.words {
		out = append(out, domain.WordEntry{Word: w, Digit: d})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Digit.Value() != out[j].Digit.Value() {
			return out[i].Digit.Value() < out[j].Digit.Value()
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// Compile-time assertion that Service implements domain.Lexicon.
var _ domain.Lexicon = (*Service)(nil)
