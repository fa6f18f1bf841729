package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/gamestats/internal/config"
	"github.com/mcoot/gamestats/internal/console"
	"github.com/mcoot/gamestats/internal/factory"
)

var (
	opts *Options
	cfg  *config.Config
	app  *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts = DefaultOptions()
	cfg, app = nil, nil

	rootCmd := &cobra.Command{
		Use:   "gamestats",
		Short: "Player accounts and leaderboards for c4 and toot",
		Long: `gamestats manages player accounts and game statistics for Connect-Four (c4)
and TOOT-OTTO (toot).

Run without a subcommand to open the interactive console. The register, delete,
record and leaderboard subcommands perform a single action for scripting.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = opts.LoadConfig()
			if err != nil {
				return err
			}

			logger, err := NewLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			app, err = factory.New(cmd.Context(), cfg, logger)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), console.Config{
				Accounts:     app.AccountService,
				Leaderboards: app.LeaderboardService,
				Storage:      app.Storage,
				Logger:       app.Logger,
				Timeout:      cfg.OperationTimeout,
			})
			return c.Run(cmd.Context())
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "YAML config file (env: GAMESTATS_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&opts.Store, "store", opts.Store, "Store backend: mongo, redis, sqlite, memory (env: GAMESTATS_STORE)")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level: debug, info, warn, error (env: GAMESTATS_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", opts.Output, "Output format for subcommands: text, json")

	// Add subcommands
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newRecordCmd())
	rootCmd.AddCommand(newLeaderboardCmd())

	return rootCmd
}

// Execute runs the root command until it finishes or a signal arrives.
// A second signal falls through to the default handler.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		stop()
	}()

	if err := run(ctx, NewRootCmd()); err != nil {
		stop()
		os.Exit(1)
	}
}

// run executes cmd and releases the store whether or not the command failed.
// Cobra skips post-run hooks after an error, so closing happens here.
func run(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if closeErr := closeApp(context.WithoutCancel(ctx)); err == nil {
		err = closeErr
	}
	return err
}

func closeApp(ctx context.Context) error {
	if app == nil {
		return nil
	}
	err := app.Close(ctx)
	app = nil
	return err
}

// operationContext bounds a single subcommand action by the configured timeout
func operationContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if cfg.OperationTimeout <= 0 {
		return context.WithCancel(cmd.Context())
	}
	return context.WithTimeout(cmd.Context(), cfg.OperationTimeout)
}
