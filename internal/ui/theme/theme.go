package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: arcade brights on a deep navy background.
var (
	Primary      = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary    = lipgloss.Color("#14B8A6") // Teal
	Accent       = lipgloss.Color("#F97316") // Orange
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#F43F5E") // Rose
	ArcadeYellow = lipgloss.Color("#FACC15") // Marquee Yellow
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Neon Cyan
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#0F172A") // Deep Navy
	BgCard       = lipgloss.Color("#1E293B") // Dark Slate
	Border       = lipgloss.Color("#334155") // Slate
)

// TierColor returns the accent color for a difficulty tier.
func TierColor(tier int) color.Color {
	switch {
	case tier <= 1:
		return Success
	case tier == 2:
		return ArcadeYellow
	default:
		return Error
	}
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(ArcadeYellow).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Problem renders the arithmetic problem itself.
	Problem = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Background(BgCard).
		Padding(1, 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Overlay = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ArcadeCyan).
		Padding(1, 4).
		Align(lipgloss.Center)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(ArcadeYellow).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Banners
var (
	BannerCheer = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	BannerGentle = lipgloss.NewStyle().
			Foreground(ArcadeCyan)

	BannerLevel = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(ArcadeYellow).
			Bold(true).
			Padding(0, 2)

	Flame = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)
