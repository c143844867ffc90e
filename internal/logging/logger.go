package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger output. Zero value logs warnings and above with
// colour and no timestamps.
type Config struct {
	Level     string `yaml:"level" env:"LOG_LEVEL"`
	Timestamp bool   `yaml:"timestamp" env:"LOG_TIMESTAMP"`
	NoColor   bool   `yaml:"no_color" env:"LOG_NOCOLOR"`
}

// New returns a console logger writing to w.
func New(app string, cfg Config, w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	if !cfg.Timestamp {
		output.PartsExclude = []string{zerolog.TimestampFieldName}
	}
	lvl, _ := ParseLevel(cfg.Level)
	ctx := zerolog.New(output).Level(lvl).With().Str("app", app)
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown or empty names
// fall back to warn and report false.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.WarnLevel, false
	}
}
