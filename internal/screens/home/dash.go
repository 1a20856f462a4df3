package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/skilylabs/skily/internal/stats"
	"github.com/skilylabs/skily/internal/ui/components"
	"github.com/skilylabs/skily/internal/ui/theme"
)

const dashTitleFull = ` ███████╗██╗  ██╗██╗██╗  ██╗   ██╗
 ██╔════╝██║ ██╔╝██║██║  ╚██╗ ██╔╝
 ███████╗█████╔╝ ██║██║   ╚████╔╝
 ╚════██║██╔═██╗ ██║██║    ╚██╔╝
 ███████║██║  ██╗██║███████╗██║
 ╚══════╝╚═╝  ╚═╝╚═╝╚══════╝╚═╝`

const dashTitleCompact = "S · K · I · L · Y"

func (h *HomeScreen) View(width, height int) string {
	skin := h.skin()

	// height is the content area; estimate the full terminal height to
	// decide on compact rendering.
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(skin, cw, compact))

	if !h.llmReady {
		sections = append(sections, renderLLMBanner(skin, cw))
	}

	if h.stats != nil {
		sections = append(sections, h.renderStatsBento(skin, cw, compact))
	}

	if h.rewardNote != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(skin.Accent).
			Width(cw).
			Align(lipgloss.Center).
			Render(h.rewardNote))
	} else if h.stats != nil && h.stats.CanClaimReward() {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(skin.Accent).
			Bold(true).
			Width(cw).
			Align(lipgloss.Center).
			Render("🎁 Daily reward available! Press C to claim."))
	}

	sections = append(sections, h.renderMenu(skin, cw, compact))

	content := strings.Join(sections, "\n\n")
	return components.DashFrame(skin, content, width, height)
}

func renderTitle(skin theme.Skin, cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(skin.Primary).Bold(true)
	title := dashTitleFull
	if compact {
		title = dashTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBento renders the learner profile as a stat bar plus the
// level and readiness gauges.
func (h *HomeScreen) renderStatsBento(skin theme.Skin, cw int, compact bool) string {
	u := h.stats.Stats()

	streakStyle := lipgloss.NewStyle().Foreground(skin.Accent).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(skin.Secondary).Bold(true)
	testsStyle := lipgloss.NewStyle().Foreground(skin.Text).Bold(true)

	var statLine string
	if compact {
		statLine = fmt.Sprintf("%s %s %s",
			streakStyle.Render(fmt.Sprintf("🔥%d", u.CurrentStreak)),
			scoreStyle.Render(fmt.Sprintf("Ø%d%%", u.AverageScore)),
			testsStyle.Render(fmt.Sprintf("#%d", u.TestsTaken)),
		)
	} else {
		statLine = fmt.Sprintf("%s  %s  %s  %s",
			streakStyle.Render(fmt.Sprintf("🔥 %d DAY STREAK", u.CurrentStreak)),
			scoreStyle.Render(fmt.Sprintf("Ø %d%% AVG", u.AverageScore)),
			testsStyle.Render(fmt.Sprintf("%d TESTS", u.TestsTaken)),
			streakStyle.Render(fmt.Sprintf("BEST %d", u.MaxStreak)),
		)
	}

	bar := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(skin.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(statLine)

	if compact {
		return bar
	}

	xpIn, xpSpan := u.LevelProgress()
	level := components.ProgressBar{
		Label:   fmt.Sprintf("Level %d", u.Level()),
		Percent: float64(xpIn) / float64(xpSpan),
		Width:   cw - 10,
	}
	readiness := components.ProgressBar{
		Label:       "Readiness",
		Percent:     float64(u.Readiness()) / 100,
		ShowPercent: true,
		Width:       cw - 10,
	}

	gauges := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(level.View(skin) + "\n" + readiness.View(skin))

	return bar + "\n" + gauges
}

const buttonWidth = 22

func (h *HomeScreen) renderMenu(skin theme.Skin, cw int, compact bool) string {
	if compact {
		var lines []string
		for i, label := range h.menuLabels {
			item := h.menu.Items[i]
			switch {
			case item.Disabled:
				lines = append(lines, lipgloss.NewStyle().Foreground(skin.TextDim).Render("   "+label))
			case i == h.menu.Selected:
				lines = append(lines, lipgloss.NewStyle().
					Foreground(skin.BgDark).
					Background(skin.Accent).
					Bold(true).
					Render(" ▸ "+label+" "))
			default:
				lines = append(lines, lipgloss.NewStyle().Foreground(skin.Text).Render("   "+label))
			}
		}
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(strings.Join(lines, "\n"))
	}

	var buttons []string
	for i, label := range h.menuLabels {
		if h.menu.Items[i].Disabled {
			buttons = append(buttons, lipgloss.NewStyle().
				Width(buttonWidth).
				Align(lipgloss.Center).
				Foreground(skin.TextDim).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(skin.Border).
				Padding(0, 1).
				Render(label))
			continue
		}
		buttons = append(buttons, components.PanelButton(skin, label, i == h.menu.Selected, buttonWidth))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

func renderLLMBanner(skin theme.Skin, cw int) string {
	return lipgloss.NewStyle().
		Foreground(skin.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to unlock quizzes and the tutor (see skily --help)")
}

func rewardClaimedNote(res stats.RewardResult) string {
	return fmt.Sprintf("🎁 +%d XP! Streak: %d days.", res.XPAwarded, res.Streak)
}
