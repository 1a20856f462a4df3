package tutorchat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skilylabs/skily/internal/audio"
	"github.com/skilylabs/skily/internal/screen"
	"github.com/skilylabs/skily/internal/stats"
	"github.com/skilylabs/skily/internal/tutor"
	"github.com/skilylabs/skily/internal/ui/components"
	"github.com/skilylabs/skily/internal/ui/layout"
	"github.com/skilylabs/skily/internal/ui/theme"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// replyMsg is sent when the tutor's answer resolves. Seq matches the
// request that produced it; stale replies are dropped.
type replyMsg struct {
	Seq  int
	Text string
}

type spinnerTickMsg time.Time

// TutorScreen is a free-form chat with the driving instructor persona.
type TutorScreen struct {
	service *tutor.Service
	stats   *stats.Store
	sounds  *audio.Engine

	input       components.ChatInput
	history     []tutor.Message
	waiting     bool
	seq         int
	spinnerTick int
}

var _ screen.Screen = (*TutorScreen)(nil)
var _ screen.KeyHintProvider = (*TutorScreen)(nil)

// New creates a TutorScreen.
func New(service *tutor.Service, statsStore *stats.Store, sounds *audio.Engine) *TutorScreen {
	return &TutorScreen{
		service: service,
		stats:   statsStore,
		sounds:  sounds,
		input:   components.NewChatInput("Ask anything about the theory exam...", 300),
	}
}

func (t *TutorScreen) Title() string {
	return "Tutor"
}

func (t *TutorScreen) Init() tea.Cmd {
	return t.input.Init()
}

func (t *TutorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (t *TutorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		if msg.Seq != t.seq {
			return t, nil
		}
		t.waiting = false
		t.history = append(t.history, tutor.Message{FromLearner: false, Text: msg.Text})
		if t.sounds != nil {
			t.sounds.Play(audio.CueSuccess)
		}
		return t, nil

	case spinnerTickMsg:
		t.spinnerTick++
		if t.waiting {
			return t, spinnerTickCmd()
		}
		return t, nil

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return t, t.send()
		}
	}

	if !t.waiting {
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return t, cmd
	}

	return t, nil
}

// send dispatches the typed question to the tutor service.
func (t *TutorScreen) send() tea.Cmd {
	question := strings.TrimSpace(t.input.Value())
	if question == "" || t.waiting {
		return nil
	}

	t.history = append(t.history, tutor.Message{FromLearner: true, Text: question})
	t.input.Reset()
	t.waiting = true
	t.seq++

	if t.sounds != nil {
		t.sounds.Play(audio.CueClick)
	}

	seq := t.seq
	service := t.service
	history := append([]tutor.Message(nil), t.history[:len(t.history)-1]...)
	return tea.Batch(
		func() tea.Msg {
			return replyMsg{Seq: seq, Text: service.Ask(context.Background(), history, question)}
		},
		spinnerTickCmd(),
	)
}

func (t *TutorScreen) View(width, height int) string {
	skin := t.skin()
	bubbleWidth := min(width-12, 64)

	var b strings.Builder
	b.WriteString("\n")

	if len(t.history) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(skin.TextDim).
			Italic(true).
			Render("Ask the instructor anything: rules, signs, tricky cases."))
		b.WriteString("\n")
	}

	for _, m := range t.history {
		if m.FromLearner {
			bubble := lipgloss.NewStyle().
				Foreground(skin.BgDark).
				Background(skin.Primary).
				Padding(0, 1).
				Width(min(bubbleWidth, lipgloss.Width(m.Text)+2)).
				Render(m.Text)
			b.WriteString(lipgloss.PlaceHorizontal(width-4, lipgloss.Right, bubble))
		} else {
			bubble := lipgloss.NewStyle().
				Foreground(skin.Text).
				Background(skin.BgCard).
				Padding(0, 1).
				Width(bubbleWidth).
				Render(m.Text)
			b.WriteString("  " + bubble)
		}
		b.WriteString("\n\n")
	}

	if t.waiting {
		frame := spinnerFrames[t.spinnerTick%len(spinnerFrames)]
		b.WriteString("  " + skin.Hint().Render(frame+" The instructor is typing..."))
		b.WriteString("\n\n")
	}

	b.WriteString("\n  " + skin.Body().Render("You: ") + t.input.View())

	return b.String()
}

func (t *TutorScreen) skin() theme.Skin {
	if t.stats != nil {
		if s, err := theme.Get(t.stats.Stats().Skin); err == nil {
			return s
		}
	}
	return theme.Default()
}

func spinnerTickCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
