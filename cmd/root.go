package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/abhisek/mathsprint/internal/score"
	"github.com/abhisek/mathsprint/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathsprint",
	Short: "Arcade arithmetic practice for kids",
	Long:  "MathSprint — a terminal arcade game of quick arithmetic rounds that adapts to the player.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHSPRINT_DB env var)")
	rootCmd.Flags().Int("problems", 0, "Problems per round (default 20)")
	rootCmd.Flags().Uint64("seed", 0, "Seed for problem generation (0 picks a random seed)")
	rootCmd.Flags().String("log", "", "Write debug logs to this file (overrides MATHSPRINT_LOG env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHSPRINT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openLedger opens the store and loads the player record from it.
func openLedger(cmd *cobra.Command, cfg score.Config) (*store.Store, *score.Ledger, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return st, score.NewLedger(st.KV(), cfg), nil
}

// quietLedgerConfig is for one-shot commands, which check Flush and
// ResetAllData errors themselves instead of relying on logged warnings.
func quietLedgerConfig() score.Config {
	cfg := score.DefaultConfig()
	cfg.Logger = log.New(io.Discard, "", 0)
	return cfg
}
