package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"intergalactic/internal/domain"
)

// maxLineBytes caps a single input line in batch mode.
const maxLineBytes = 1 << 20

// Session feeds lines to an engine and renders its answers.
type Session struct {
	Engine   domain.QueryEngine
	Fallback string
	Log      zerolog.Logger
}

// New returns a Session answering with q and printing fallback on failure.
func New(q domain.QueryEngine, fallback string, log zerolog.Logger) *Session {
	return &Session{
		Engine:   q,
		Fallback: fallback,
		Log:      log.With().Str("component", "console").Logger(),
	}
}

// Answer runs one line and returns the text to print, if any.
func (s *Session) Answer(line string) (string, bool) {
	reply, ok, err := s.Engine.Query(line)
	if err != nil {
		s.Log.Debug().Err(err).Str("line", line).Msg("query rejected")
		return s.Fallback, true
	}
	return reply, ok
}

// Batch answers every line of r, writing replies to w. It stops early when
// ctx is cancelled.
func (s *Session) Batch(ctx context.Context, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	bw := bufio.NewWriter(w)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			_ = bw.Flush()
			return err
		}
		if out, ok := s.Answer(sc.Text()); ok {
			if _, err := fmt.Fprintln(bw, out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		_ = bw.Flush()
		return fmt.Errorf("read input: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Interactive runs a prompt loop over rw until end of input.
//
// rw should be a terminal in raw mode; line editing and history come from
// golang.org/x/term. Ctrl-D on an empty line ends the session and echoes
// "^D". x/term reports Ctrl-C as end of input too, so it also echoes "^D".
// Cancelling ctx ends the session after the current line and echoes "^C".
func (s *Session) Interactive(ctx context.Context, rw io.ReadWriter, prompt string) error {
	t := term.NewTerminal(rw, prompt)
	for {
		line, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(t, "^D")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if ctx.Err() != nil {
			_, _ = fmt.Fprintln(t, "^C")
			return nil
		}
		if out, ok := s.Answer(line); ok {
			if _, err := fmt.Fprintln(t, out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}
}
