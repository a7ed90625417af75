package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	// A missing .env file is fine; real env vars take precedence anyway.
	_ = godotenv.Load()

	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "auctionclerk",
		Short: "Live assistant for fantasy football auction drafts",
		Long: `auctionclerk tracks a live auction draft from the terminal.

It loads a player salary CSV, suggests prices adjusted for league
inflation, roster needs, and positional scarcity, and keeps an undoable
record of every pick and each team's remaining budget.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "Player salary CSV path (env: AUCTIONCLERK_CSV)")
	rootCmd.PersistentFlags().IntVar(&cfg.Budget, "budget", cfg.Budget, "Per-team auction budget (env: AUCTIONCLERK_BUDGET)")
	rootCmd.PersistentFlags().StringVar(&cfg.MyTeam, "my-team", cfg.MyTeam, "Team to compute roster needs for (env: AUCTIONCLERK_MY_TEAM)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose (debug) logging")

	// Add subcommands
	rootCmd.AddCommand(newDraftCmd())
	rootCmd.AddCommand(newCatalogCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
