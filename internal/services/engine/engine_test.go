package engine_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"intergalactic/internal/domain"
	"intergalactic/internal/roman"
	"intergalactic/internal/services/engine"
	"intergalactic/internal/services/lexicon"
	"intergalactic/internal/services/pricebook"
)

func newEngine() *engine.Engine {
	return engine.New(lexicon.New(), pricebook.New(), zerolog.Nop())
}

// run feeds definitions that must succeed silently.
func run(t *testing.T, e *engine.Engine, lines ...string) {
	t.Helper()
	for _, line := range lines {
		reply, ok, err := e.Query(line)
		if err != nil {
			t.Fatalf("Query(%q): %v", line, err)
		}
		if ok {
			t.Fatalf("Query(%q): unexpected reply %q", line, reply)
		}
	}
}

// ask expects a reply.
func ask(t *testing.T, e *engine.Engine, line, want string) {
	t.Helper()
	reply, ok, err := e.Query(line)
	if err != nil {
		t.Fatalf("Query(%q): %v", line, err)
	}
	if !ok || reply != want {
		t.Fatalf("Query(%q): want %q, got %q (ok=%v)", line, want, reply, ok)
	}
}

// fail expects an error matching kind.
func fail(t *testing.T, e *engine.Engine, line string, kind error) *domain.QueryError {
	t.Helper()
	_, _, err := e.Query(line)
	if !errors.Is(err, kind) {
		t.Fatalf("Query(%q): want %v, got %v", line, kind, err)
	}
	var qe *domain.QueryError
	errors.As(err, &qe)
	return qe
}

func defineNumerals(t *testing.T, e *engine.Engine) {
	t.Helper()
	run(t, e, "glob is I", "prok is V", "pish is X", "tegj is L")
}

func TestQuery_SeededSession(t *testing.T) {
	lex := lexicon.NewWith(map[domain.Word]roman.Digit{
		"glob": roman.I,
		"prok": roman.V,
		"pish": roman.X,
		"tegj": roman.L,
	})
	prices := pricebook.NewWith(map[domain.Item]decimal.Decimal{
		"Gold":   decimal.NewFromInt(10),
		"Silver": decimal.NewFromInt(5),
		"Iron":   decimal.NewFromInt(1),
	})
	e := engine.New(lex, prices, zerolog.Nop())

	ask(t, e, "How much is pish tegj glob glob?", "pish tegj glob glob is 42")
	ask(t, e, "How many credits is glob glob Gold?", "glob glob Gold is 20 Credits")

	fail(t, e, "How much is foo bar?", domain.ErrUnrecognizedWord)
	fail(t, e, "What is pish tegj glob glob?", domain.ErrUnrecognizedQuery)
	fail(t, e, "How many credits is glob glob Copper?", domain.ErrUnrecognizedItem)
	fail(t, e, "How many credits is glob glob glob glob Gold?", domain.ErrInvalidRomanNumeral)

	// Digits bound before the engine existed are still taken.
	fail(t, e, "blarg is I", domain.ErrDigitAlreadyExists)
}

func TestDefineDigit_Uniqueness(t *testing.T) {
	e := newEngine()
	run(t, e, "glob is I")

	qe := fail(t, e, "glob is V", domain.ErrWordAlreadyExists)
	if qe == nil || qe.Subject != "glob" {
		t.Fatalf("want subject glob, got %+v", qe)
	}
	qe = fail(t, e, "prok is I", domain.ErrDigitAlreadyExists)
	if qe == nil || qe.Subject != "I" {
		t.Fatalf("want subject I, got %+v", qe)
	}

	// Neither failure bound anything.
	run(t, e, "prok is V")
	ask(t, e, "how much is prok glob?", "prok glob is 6")
}

func TestDefineDigit_Forms(t *testing.T) {
	e := newEngine()
	run(t, e, "glob IS I", "  prok   is   V  ")
	ask(t, e, "how much is glob prok?", "glob prok is 4")

	fail(t, e, "glob2 is X", domain.ErrUnrecognizedQuery)
	fail(t, e, "pish is x", domain.ErrUnrecognizedQuery)
	fail(t, e, "pish is XX", domain.ErrUnrecognizedQuery)
	fail(t, e, "Pish is X", domain.ErrUnrecognizedQuery)
}

func TestDefinePrice_UnitPrice(t *testing.T) {
	e := newEngine()
	defineNumerals(t, e)
	run(t, e, "glob glob Silver is 34 Credits")

	prices := e.Snapshot().Prices
	if len(prices) != 1 || prices[0].Item != "Silver" || !prices[0].UnitPrice.Equal(decimal.NewFromInt(17)) {
		t.Fatalf("unexpected prices %+v", prices)
	}

	ask(t, e, "how many credits is prok glob Silver?", "prok glob Silver is 102 Credits")
	ask(t, e, "how many credits is glob prok Silver?", "glob prok Silver is 68 Credits")
}

func TestDefinePrice_AlreadyExists(t *testing.T) {
	e := newEngine()
	defineNumerals(t, e)
	run(t, e, "glob glob Silver is 34 Credits")

	qe := fail(t, e, "glob Silver is 1 Credits", domain.ErrItemAlreadyExists)
	if qe == nil || qe.Subject != "Silver" {
		t.Fatalf("want subject Silver, got %+v", qe)
	}
	ask(t, e, "how many credits is glob Silver?", "glob Silver is 17 Credits")
}

func TestDefinePrice_FailureLeavesNoState(t *testing.T) {
	e := newEngine()
	defineNumerals(t, e)

	fail(t, e, "glob blub Gold is 10 credits", domain.ErrUnrecognizedWord)
	fail(t, e, "glob glob glob glob Gold is 10 credits", domain.ErrInvalidRomanNumeral)
	fail(t, e, "how many credits is glob Gold?", domain.ErrUnrecognizedItem)

	run(t, e, "glob glob Gold is 10 credits")
	ask(t, e, "how many credits is pish Gold?", "pish Gold is 50 Credits")
}

func TestDefinePrice_MultiWordItem(t *testing.T) {
	e := newEngine()
	defineNumerals(t, e)
	run(t, e, "glob prok Moon Dust IS 8 CREDITS")
	ask(t, e, "How many credits is pish Moon Dust ?", "pish Moon Dust is 20 Credits")
}

func TestDefinePrice_InexactDivision(t *testing.T) {
	e := newEngine()
	defineNumerals(t, e)
	run(t, e, "glob glob glob Gold is 10 Credits")

	ask(t, e, "how many credits is glob glob glob Gold?", "glob glob glob Gold is 9.9999999999999999999999999999 Credits")
	ask(t, e, "how many credits is glob Gold?", "glob Gold is 3.3333333333333333333333333333 Credits")
}

func TestDefinePrice_RequiresSpaceBeforeItem(t *testing.T) {
	e := newEngine()
	defineNumerals(t, e)
	before := string(e.Snapshot().Canonical())

	fail(t, e, "globSilver is 3 credits", domain.ErrUnrecognizedQuery)
	if got := string(e.Snapshot().Canonical()); got != before {
		t.Fatalf("rejected definition changed state:\n%s", got)
	}

	// A missing count is a translation failure, not a price.
	fail(t, e, "Silver is 3 credits", domain.ErrInvalidRomanNumeral)
	fail(t, e, "how many credits is glob Silver?", domain.ErrUnrecognizedItem)
}

func TestEndToEnd_Iron(t *testing.T) {
	e := newEngine()
	defineNumerals(t, e)
	run(t, e, "pish pish Iron is 3910 Credits")
	ask(t, e, "how many credits is glob prok Iron?", "glob prok Iron is 782 Credits")
}

func TestQueryNumeral_Idempotent(t *testing.T) {
	e := newEngine()
	defineNumerals(t, e)
	before := e.Snapshot()

	first, _, err := e.Query("how much is pish tegj glob glob ?")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, _, err := e.Query("how much is pish tegj glob glob ?")
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first != second || first != "pish tegj glob glob is 42" {
		t.Fatalf("want identical replies, got %q and %q", first, second)
	}
	if string(before.Canonical()) != string(e.Snapshot().Canonical()) {
		t.Fatal("query mutated state")
	}
}

func TestQuery_Unrecognized(t *testing.T) {
	e := newEngine()
	defineNumerals(t, e)
	for _, line := range []string{
		"",
		"What is pish tegj glob glob?",
		"how much wood could a woodchuck chuck if a woodchuck could chuck wood ?",
		"how much is pish tegj glob glob",
		"how many credits is Silver?",
	} {
		qe := fail(t, e, line, domain.ErrUnrecognizedQuery)
		if qe == nil || qe.Subject != line {
			t.Fatalf("Query(%q): want subject to echo line, got %+v", line, qe)
		}
	}
}
