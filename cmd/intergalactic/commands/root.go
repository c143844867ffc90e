package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"intergalactic/internal/app"
)

var (
	configPath string
	outputPath string
	summary    bool
	appCtx     *app.App
)

// Execute runs the CLI with os.Args, cancelling on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "intergalactic [FILE]",
		Short: "Merchant's guide to the galaxy: intergalactic numerals and prices",
		Long: "Reads definitions such as \"glob is I\" and \"glob glob Silver is 34 Credits\"\n" +
			"and answers questions such as \"how much is glob glob ?\".\n" +
			"FILE may be \"-\" for stdin. Without FILE a prompt opens when stdin is a terminal.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			appCtx = app.New(cfg, app.NewWire(cfg, cmd.ErrOrStderr()))
			return nil
		},
		RunE: runSession,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.Flags().StringVarP(&outputPath, "output", "o", "", "file to write answers to (default stdout; ignored at the prompt)")
	root.Flags().BoolVar(&summary, "summary", false, "log the dictionary, prices and session fingerprint on exit")

	root.AddCommand(decodeCmd(), translateCmd())
	return root
}
