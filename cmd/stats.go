package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/mathsprint/internal/difficulty"
	"github.com/abhisek/mathsprint/internal/score"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the player record and recent rounds",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, ledger, err := openLedger(cmd, score.DefaultConfig())
		if err != nil {
			return err
		}
		defer st.Close()

		rec := ledger.Record()
		fmt.Printf("High score:     %d\n", rec.HighScore)
		fmt.Printf("Rounds played:  %d\n", rec.GamesPlayed)
		fmt.Printf("Accuracy:       %d%% (%d/%d)\n", rec.LifetimeAccuracy(), rec.TotalCorrect, rec.TotalAttempted)
		fmt.Printf("Starting level: %s\n", difficulty.TierName(rec.StartingTier))
		if rec.LastPlayed != nil {
			fmt.Printf("Last played:    %s\n", rec.LastPlayed.Local().Format("2006-01-02 15:04"))
		}

		sessions, err := st.Sessions().RecentSessions(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("\nNo rounds recorded yet.")
			return nil
		}

		// Header.
		fmt.Printf("\n%-16s  %6s  %7s  %6s  %5s  %-15s  %s\n",
			"Ended", "Score", "Solved", "Acc", "Best", "Level", "Time")
		fmt.Println(strings.Repeat("─", 78))

		for _, s := range sessions {
			mark := ""
			if s.NewHighScore {
				mark = " ★"
			}
			level := difficulty.TierName(s.StartTier)
			if s.EndTier != s.StartTier {
				level += "→" + difficulty.TierName(s.EndTier)
			}
			fmt.Printf("%-16s  %6d  %3d/%-3d  %5d%%  %5d  %-15s  %s%s\n",
				s.EndedAt.Local().Format("2006-01-02 15:04"),
				s.Score,
				s.Solved, s.Attempted,
				s.Accuracy,
				s.BestStreak,
				level,
				s.Duration().Round(time.Second),
				mark,
			)
		}

		fmt.Printf("\n%d rounds\n", len(sessions))
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent rounds to show (0 for all)")
}
