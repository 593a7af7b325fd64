package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/mathsprint/internal/score"
	"github.com/abhisek/mathsprint/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase the high score, settings and round history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("this erases all saved progress; rerun with --yes to confirm")
		}

		st, ledger, err := openLedger(cmd, quietLedgerConfig())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := resetProgress(context.Background(), ledger, st.Sessions()); err != nil {
			return err
		}

		fmt.Println("All progress erased.")
		return nil
	},
}

// resetProgress drops the player record and the round history.
func resetProgress(ctx context.Context, ledger *score.Ledger, sessions store.SessionRepo) error {
	if err := ledger.ResetAllData(); err != nil {
		return fmt.Errorf("reset player record: %w", err)
	}
	if err := sessions.ClearSessions(ctx); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	return nil
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm erasing all data")
}
