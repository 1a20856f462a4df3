package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skilylabs/skily/internal/audio"
	"github.com/skilylabs/skily/internal/router"
	"github.com/skilylabs/skily/internal/screen"
	"github.com/skilylabs/skily/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const carArt = `        ______
       /|_||_\` + "`" + `.__
      (   _    _ _\
      =` + "`" + `-(_)--(_)-'`

// headlightFrames alternate to suggest blinking indicators.
var headlightFrames = []string{"•", "◦"}

type tickMsg time.Time

// WelcomeScreen shows the splash animation before handing over to the
// dashboard.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	skin         theme.Skin
	sounds       *audio.Engine
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced
// by homeFactory.
func New(homeFactory func() screen.Screen, skin theme.Skin, sounds *audio.Engine) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		skin:        skin,
		sounds:      sounds,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	if w.sounds != nil {
		w.sounds.Play(audio.CueEngineStart)
	}
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// A keypress skips straight past the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(w.skin.Primary).Render(carArt)

	// Phase 2+: blinking indicators beside the car.
	if w.elapsed >= phase1End {
		frame := headlightFrames[w.tickCount%len(headlightFrames)]
		light := lipgloss.NewStyle().Foreground(w.skin.Accent).Render(frame)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 2 {
			lines[2] = light + " " + lines[2] + " " + light
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: banner, tagline and hint.
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(w.skin, width))
		sections = append(sections, "")
		sections = append(sections, w.skin.Body().Bold(true).Render("Pass your driving theory exam!"))
		sections = append(sections, "")
		sections = append(sections, w.skin.Hint().Render("press any key to start"))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
