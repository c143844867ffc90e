package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// translate: define words for this run only, then translate a phrase.
func translateCmd() *cobra.Command {
	var defines []string
	cmd := &cobra.Command{
		Use:   "translate PHRASE...",
		Short: "Translate an intergalactic phrase using --define word=DIGIT bindings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, def := range defines {
				word, digit, ok := strings.Cut(def, "=")
				if !ok {
					return fmt.Errorf("--define %q: want word=DIGIT", def)
				}
				line := strings.TrimSpace(word) + " is " + strings.TrimSpace(digit)
				if _, _, err := appCtx.Engine.Query(line); err != nil {
					return fmt.Errorf("--define %q: %w", def, err)
				}
			}

			phrase := strings.Join(args, " ")
			n, err := appCtx.Lexicon.Translate(phrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is %s (%d)\n", phrase, n, n.Value())
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&defines, "define", "d", nil, "word=DIGIT binding, repeatable")
	_ = cmd.MarkFlagRequired("define")
	return cmd
}
