package engine

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"intergalactic/internal/domain"
	"intergalactic/internal/roman"
)

// unitScale is the number of fractional digits kept for a unit price that
// does not divide evenly.
const unitScale = 28

// Engine holds one session's dictionary and price book.
//
// It is not safe for concurrent use; callers feed it one line at a time.
type Engine struct {
	lex    domain.Lexicon
	prices domain.PriceBook
	used   domain.DigitSet
	log    zerolog.Logger
}

// New returns an engine over lex and prices. Digits already bound in lex are
// treated as taken.
func New(lex domain.Lexicon, prices domain.PriceBook, log zerolog.Logger) *Engine {
	return &Engine{
		lex:    lex,
		prices: prices,
		used:   lex.KnownDigits(),
		log:    log.With().Str("component", "engine").Logger(),
	}
}

// Query answers a single line of input.
//
// Definitions return ok=false and no reply. Questions return the rendered
// answer with ok=true. A line matching no form fails with
// domain.ErrUnrecognizedQuery.
func (e *Engine) Query(line string) (string, bool, error) {
	text := strings.TrimSpace(line)
	for _, f := range forms {
		m := f.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		e.log.Debug().Str("form", f.name).Str("line", text).Msg("query matched")
		return f.handle(e, line, m)
	}
	return "", false, domain.UnrecognizedQuery(line)
}

// Snapshot returns the current dictionary and price book, sorted.
func (e *Engine) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Words:  e.lex.Entries(),
		Prices: e.prices.Entries(),
	}
}

func (e *Engine) defineDigit(_ string, m []string) (string, bool, error) {
	word := domain.Word(m[1])
	// The pattern only admits IVXLCDM here.
	digit, _ := roman.ParseDigit(rune(m[2][0]))

	if e.lex.Contains(word) {
		return "", false, domain.WordAlreadyExists(word)
	}
	if e.used.Has(digit) {
		return "", false, domain.DigitAlreadyExists(digit)
	}

	e.lex.Insert(word, digit)
	e.used.Add(digit)
	e.log.Debug().Str("word", word.String()).Str("digit", digit.String()).Msg("word defined")
	return "", false, nil
}

func (e *Engine) definePrice(line string, m []string) (string, bool, error) {
	phrase := strings.TrimSpace(m[1])
	item := domain.Item(strings.TrimSpace(m[2]))

	credits, err := decimal.NewFromString(m[3])
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", domain.UnrecognizedQuery(line), err)
	}
	numeral, err := e.lex.Translate(phrase)
	if err != nil {
		return "", false, fmt.Errorf("price %s: %w", item, err)
	}
	count := numeral.Value()
	if count == 0 {
		return "", false, domain.UnrecognizedQuery(line)
	}
	if _, ok := e.prices.Get(item); ok {
		return "", false, domain.ItemAlreadyExists(item)
	}

	unit := credits.DivRound(decimal.NewFromInt(int64(count)), unitScale)
	if !e.prices.InsertIfAbsent(item, unit) {
		return "", false, domain.ItemAlreadyExists(item)
	}
	e.log.Debug().Str("item", item.String()).Str("unit_price", unit.String()).Msg("item priced")
	return "", false, nil
}

func (e *Engine) queryNumeral(_ string, m []string) (string, bool, error) {
	phrase := strings.TrimSpace(m[1])
	numeral, err := e.lex.Translate(phrase)
	if err != nil {
		return "", false, fmt.Errorf("how much: %w", err)
	}
	return fmt.Sprintf("%s is %d", phrase, numeral.Value()), true, nil
}

func (e *Engine) queryPrice(_ string, m []string) (string, bool, error) {
	phrase := strings.TrimSpace(m[1])
	item := domain.Item(strings.TrimSpace(m[2]))

	numeral, err := e.lex.Translate(phrase)
	if err != nil {
		return "", false, fmt.Errorf("how many credits: %w", err)
	}
	unit, ok := e.prices.Get(item)
	if !ok {
		return "", false, domain.UnrecognizedItem(item)
	}

	// String drops trailing fractional zeros; no other rounding is applied.
	total := decimal.NewFromInt(int64(numeral.Value())).Mul(unit)
	return fmt.Sprintf("%s %s is %s Credits", phrase, item, total.String()), true, nil
}

// Compile-time assertion that Engine implements domain.QueryEngine.
var _ domain.QueryEngine = (*Engine)(nil)
