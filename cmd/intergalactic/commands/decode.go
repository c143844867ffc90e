package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"intergalactic/internal/roman"
)

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode NUMERAL...",
		Short: "Print the value of canonical Roman numerals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := roman.Parse(arg)
				if err != nil {
					return fmt.Errorf("%q: %w", arg, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is %d\n", n, n.Value())
			}
			return nil
		},
	}
}
