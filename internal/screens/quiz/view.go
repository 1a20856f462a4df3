package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/skilylabs/skily/internal/quiz"
)

func (q *QuizScreen) View(width, height int) string {
	switch q.session.Phase {
	case sess.PhaseLoading:
		return q.renderLoading(width)
	case sess.PhaseFailed:
		return q.renderFailed(width)
	case sess.PhaseComplete:
		return q.renderComplete(width)
	default:
		return q.renderQuestion(width)
	}
}

func (q *QuizScreen) renderLoading(width int) string {
	skin := q.skin()
	frame := spinnerFrames[q.spinnerTick%len(spinnerFrames)]
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(skin.TextDim).
		Render(fmt.Sprintf("\n\n\n  %s Generating question %d of %d...",
			frame, q.session.Index+1, sess.TargetQuestions))
}

func (q *QuizScreen) renderFailed(width int) string {
	skin := q.skin()
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(skin.Error).
		Bold(true).
		Render("Question generation failed"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(skin.TextDim).
		Render("The question service is unavailable. This run has ended."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(skin.TextDim).
		Render("Press Enter to go back."))
	return b.String()
}

func (q *QuizScreen) renderQuestion(width int) string {
	skin := q.skin()
	question := q.session.Question
	if question == nil {
		return ""
	}

	var b strings.Builder

	// Progress line.
	info := fmt.Sprintf("  %s %s    Question %d/%d    Correct: %d",
		q.topic.Icon, q.topic.Name,
		q.session.Index+1, sess.TargetQuestions, q.session.Correct)
	b.WriteString(lipgloss.NewStyle().Foreground(skin.Secondary).Bold(true).Render(info))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(skin.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	// Question text, with the optional sign description beneath it.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(skin.Text).
		Bold(true).
		Render(question.Text))
	b.WriteString("\n")
	if question.ImageHint != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(skin.TextDim).
			Italic(true).
			Render("[" + question.ImageHint + "]"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Options.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, q.options.View(skin)))

	switch q.session.Phase {
	case sess.PhaseConfirmed:
		frame := spinnerFrames[q.spinnerTick%len(spinnerFrames)]
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(skin.TextDim).
			Render(frame + " Fetching explanation..."))

	case sess.PhaseExplained:
		b.WriteString("\n")
		if q.session.LastCorrect {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(skin.Success).
				Bold(true).
				Render("Correct!"))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(skin.Error).
				Bold(true).
				Render("Not quite"))
		}
		b.WriteString("\n\n")
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(skin.Text).
			Render(q.session.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(skin.TextDim).
			Render("Press any key to continue..."))
	}

	return b.String()
}

func (q *QuizScreen) renderComplete(width int) string {
	skin := q.skin()
	score := q.session.FinalScore()

	var b strings.Builder
	b.WriteString("\n\n")

	headline := "Quiz complete!"
	headStyle := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Bold(true)
	if q.result.Passed {
		b.WriteString(headStyle.Foreground(skin.Success).Render(headline))
	} else {
		b.WriteString(headStyle.Foreground(skin.Accent).Render(headline))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(skin.Text).
		Render(fmt.Sprintf("Score: %d%%    Correct: %d/%d", score, q.session.Correct, sess.TargetQuestions)))
	b.WriteString("\n\n")

	if q.applied {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(skin.Accent).
			Render(fmt.Sprintf("+%d XP", q.result.XPAwarded)))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(skin.TextDim).
			Render(fmt.Sprintf("%s mastery: %d%%    Average score: %d%%",
				q.topic.Name, q.result.NewMastery, q.result.NewAverage)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(skin.TextDim).
		Render("Press Enter to return to the dashboard."))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
