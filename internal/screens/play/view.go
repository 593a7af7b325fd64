package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/difficulty"
	"github.com/abhisek/mathsprint/internal/display"
	"github.com/abhisek/mathsprint/internal/problem"
	"github.com/abhisek/mathsprint/internal/score"
	"github.com/abhisek/mathsprint/internal/ui/components"
	"github.com/abhisek/mathsprint/internal/ui/layout"
	"github.com/abhisek/mathsprint/internal/ui/theme"
)

const maxFlames = 8

func (s *PlayScreen) renderGame(width, height int) string {
	v := s.view
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(s.renderStatus(cw))
	b.WriteString("\n")

	idx, total := s.actions.Position()
	b.WriteString(components.NewProgressBar(fmt.Sprintf("%d/%d", idx, total), v.Progress(), false, cw).View())
	b.WriteString("\n\n")

	p, ok := v.Problem()
	if !ok {
		b.WriteString(center.Foreground(theme.TextDim).Render("Get ready..."))
		return layout.Center(b.String(), width, height)
	}

	b.WriteString(center.Render(theme.Problem.Render(p.DisplayText + " = ?")))
	b.WriteString("\n\n")
	b.WriteString(center.Render(s.input.View()))
	b.WriteString("\n\n")

	if fb := v.Feedback(); fb != nil {
		if fb.Correct {
			b.WriteString(center.Render(theme.Correct.Render(fmt.Sprintf("Correct! +%d", fb.Points))))
		} else {
			b.WriteString(center.Render(theme.Incorrect.Render("Not quite")))
			b.WriteString("\n")
			b.WriteString(center.Foreground(theme.TextDim).Render(
				fmt.Sprintf("%s = %s", p.DisplayText, problem.FormatAnswer(fb.CorrectAnswer))))
		}
		b.WriteString("\n")
	}

	if text, kind := v.Banner(); text != "" {
		b.WriteString("\n")
		b.WriteString(center.Render(bannerStyle(kind).Render(text)))
	}

	return layout.Center(b.String(), width, height)
}

func (s *PlayScreen) renderStatus(cw int) string {
	v := s.view
	snap := v.Score()

	left := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render(fmt.Sprintf("SCORE %d", snap.Score))
	level := lipgloss.NewStyle().Foreground(theme.TierColor(v.Tier())).Bold(true).
		Render(strings.ToUpper(difficulty.TierName(v.Tier())))
	right := level
	if flames := components.Flames(v.Flames(), maxFlames); flames != "" {
		right = flames + "  " + level
	}

	gap := max(cw-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func bannerStyle(kind display.BannerKind) lipgloss.Style {
	switch kind {
	case display.BannerLevelUp, display.BannerLevelDown, display.BannerHighScore:
		return theme.BannerLevel
	case display.BannerEncourage:
		return theme.BannerGentle
	default:
		return theme.BannerCheer
	}
}

func renderPause(snap score.Snapshot, width, height int) string {
	body := strings.Join([]string{
		theme.Title.Render("PAUSED"),
		"",
		fmt.Sprintf("Score     %d", snap.Score),
		fmt.Sprintf("Streak    %d", snap.Streak),
		fmt.Sprintf("Accuracy  %d%%", snap.Accuracy),
		"",
		theme.Hint.Render("Esc to resume · Q to end the game"),
	}, "\n")
	return layout.Center(theme.Overlay.Render(body), width, height)
}
