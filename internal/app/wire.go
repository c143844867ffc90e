package app

import (
	"io"

	"github.com/rs/zerolog"

	"intergalactic/internal/domain"
	"intergalactic/internal/logging"
	"intergalactic/internal/services/engine"
	"intergalactic/internal/services/lexicon"
	"intergalactic/internal/services/pricebook"
)

// Wire bundles the services backing one session.
type Wire struct {
	Lexicon domain.Lexicon
	Prices  domain.PriceBook
	Engine  *engine.Engine
	Log     zerolog.Logger
}

// NewWire constructs an empty session from cfg, logging to logOut.
func NewWire(cfg Config, logOut io.Writer) *Wire {
	log := logging.New("intergalactic", cfg.Log, logOut)

	lex := lexicon.New()
	prices := pricebook.New()

	return &Wire{
		Lexicon: lex,
		Prices:  prices,
		Engine:  engine.New(lex, prices, log),
		Log:     log,
	}
}
