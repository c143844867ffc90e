package app

import (
	"github.com/rs/zerolog"

	"intergalactic/internal/crypto"
	"intergalactic/internal/domain"
)

// App is the resolved configuration plus the live session.
type App struct {
	Config Config
	*Wire
}

// New returns an App for cfg.
func New(cfg Config, wire *Wire) *App {
	return &App{Config: cfg, Wire: wire}
}

// Fingerprint returns the digest of the current dictionary and prices.
func (a *App) Fingerprint() domain.Fingerprint {
	return crypto.SessionFingerprint(a.Engine.Snapshot())
}

// LogSummary writes the session's words, prices and fingerprint. It logs at
// info level even when the configured level is higher.
func (a *App) LogSummary() {
	log := a.Log.Level(zerolog.InfoLevel)
	snap := a.Engine.Snapshot()
	for _, w := range snap.Words {
		log.Info().Str("word", w.Word.String()).Str("digit", w.Digit.String()).Msg("dictionary")
	}
	for _, p := range snap.Prices {
		log.Info().Str("item", p.Item.String()).Str("unit_price", p.UnitPrice.String()).Msg("price")
	}
	log.Info().Str("fingerprint", a.Fingerprint().String()).Msg("session")
}
