package cmd

import (
	"fmt"
	"strconv"

	"github.com/abhisek/mathsprint/internal/difficulty"
	"github.com/abhisek/mathsprint/internal/score"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the saved sound and starting level",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			sound *bool
			level *int
		)
		if cmd.Flags().Changed("sound") {
			v, _ := cmd.Flags().GetString("sound")
			on, err := parseSwitch(v)
			if err != nil {
				return err
			}
			sound = &on
		}
		if cmd.Flags().Changed("level") {
			tier, _ := cmd.Flags().GetInt("level")
			level = &tier
		}

		st, ledger, err := openLedger(cmd, quietLedgerConfig())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := applySettings(ledger, sound, level); err != nil {
			return err
		}

		s := ledger.Settings()
		state := "off"
		if s.SoundEnabled {
			state = "on"
		}
		fmt.Printf("Sound:          %s\n", state)
		fmt.Printf("Starting level: %d (%s)\n", s.StartingTier, difficulty.TierName(s.StartingTier))
		return nil
	},
}

// applySettings validates and stores the given settings. Nil values are
// left alone. A failed save is reported rather than logged.
func applySettings(ledger *score.Ledger, sound *bool, level *int) error {
	if level != nil && (*level < difficulty.MinTier || *level > difficulty.MaxTier) {
		return fmt.Errorf("level must be between %d and %d", difficulty.MinTier, difficulty.MaxTier)
	}
	if sound == nil && level == nil {
		return nil
	}
	if sound != nil {
		ledger.SetSoundEnabled(*sound)
	}
	if level != nil {
		ledger.SetStartingTier(*level)
	}
	if err := ledger.Flush(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// parseSwitch accepts on/off as well as the usual boolean spellings.
func parseSwitch(v string) (bool, error) {
	switch v {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	on, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("sound must be on or off, got %q", v)
	}
	return on, nil
}

func init() {
	settingsCmd.Flags().String("sound", "", "Turn sound on or off")
	settingsCmd.Flags().Int("level", 0, "Starting level: 1 (easy), 2 (medium) or 3 (hard)")
}
