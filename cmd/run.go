package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/abhisek/mathsprint/internal/app"
	"github.com/abhisek/mathsprint/internal/effects"
	"github.com/abhisek/mathsprint/internal/game"
	"github.com/abhisek/mathsprint/internal/problem"
	"github.com/abhisek/mathsprint/internal/score"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	logger, closeLog, err := setupLogging(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg := game.DefaultConfig()
	if n, _ := cmd.Flags().GetInt("problems"); n > 0 {
		gameCfg.ProblemsPerSession = n
	}
	problemCfg := problem.DefaultConfig()
	if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
		problemCfg.Seed = seed
	}

	opts := app.Options{
		Game:    gameCfg,
		Problem: problemCfg,
		Logger:  logger,
	}

	ledgerCfg := score.DefaultConfig()
	ledgerCfg.Logger = logger

	st, ledger, err := openLedger(cmd, ledgerCfg)
	if err != nil {
		// Scores last for this run only.
		fmt.Fprintln(os.Stderr, "Progress will not be saved:", err)
		ledger = score.NewLedger(score.NewMemoryStorage(), ledgerCfg)
	} else {
		defer st.Close()
		opts.History = st.History()
		opts.Rounds = st.Sessions()
	}
	opts.Ledger = ledger

	soundCfg := effects.LoadConfig()
	var out effects.Output
	if soundCfg.Enabled {
		spk, err := effects.OpenSpeaker(soundCfg)
		if err != nil {
			logger.Printf("warning: sound unavailable: %v", err)
		} else {
			defer spk.Close()
			out = spk
		}
	}
	opts.Effects = effects.NewPlayer(soundCfg, out)

	return app.Run(opts)
}

// setupLogging sends logs to the file named by --log or MATHSPRINT_LOG.
// Without one, logs are discarded so they never draw over the TUI.
func setupLogging(cmd *cobra.Command) (*log.Logger, func(), error) {
	path, _ := cmd.Flags().GetString("log")
	if path == "" {
		path = os.Getenv("MATHSPRINT_LOG")
	}
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}

	f, err := tea.LogToFile(path, "mathsprint")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.Default(), func() { f.Close() }, nil
}
