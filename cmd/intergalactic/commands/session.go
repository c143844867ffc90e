package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"intergalactic/internal/console"
)

// runSession answers FILE (or stdin) in batch mode, or opens a prompt.
func runSession(cmd *cobra.Command, args []string) error {
	sess := console.New(appCtx.Engine, appCtx.Config.Fallback, appCtx.Log)
	if summary {
		defer appCtx.LogSummary()
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	if stdin, ok := cmd.InOrStdin().(*os.File); ok && path == "" && term.IsTerminal(int(stdin.Fd())) {
		return interactive(cmd, sess, stdin)
	}

	in := cmd.InOrStdin()
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	out := cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	return sess.Batch(cmd.Context(), in, out)
}

// interactive puts stdin in raw mode for the duration of the prompt.
func interactive(cmd *cobra.Command, sess *console.Session, stdin *os.File) error {
	fd := int(stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, state) }()

	rw := struct {
		io.Reader
		io.Writer
	}{stdin, cmd.OutOrStdout()}
	return sess.Interactive(cmd.Context(), rw, appCtx.Config.Prompt)
}
