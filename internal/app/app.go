package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skilylabs/skily/internal/audio"
	"github.com/skilylabs/skily/internal/explain"
	"github.com/skilylabs/skily/internal/quizgen"
	"github.com/skilylabs/skily/internal/router"
	"github.com/skilylabs/skily/internal/screen"
	"github.com/skilylabs/skily/internal/screens/home"
	"github.com/skilylabs/skily/internal/screens/welcome"
	"github.com/skilylabs/skily/internal/stats"
	"github.com/skilylabs/skily/internal/store"
	"github.com/skilylabs/skily/internal/tutor"
	"github.com/skilylabs/skily/internal/ui/layout"
	"github.com/skilylabs/skily/internal/ui/theme"
)

// Options carries the shared services into the TUI. Generator,
// Explainer and Tutor are nil when no LLM API key is configured; the
// app still runs with those features disabled.
type Options struct {
	Stats     *stats.Store
	Generator quizgen.Generator
	Explainer *explain.Service
	Tutor     *tutor.Service
	EventRepo store.EventRepo
	Sounds    *audio.Engine
	Music     *audio.TrackPlayer

	// SkipSplash jumps straight to the dashboard.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	if opts.Stats == nil {
		opts.Stats = stats.NewStore(stats.Seed())
	}

	homeFactory := func() screen.Screen {
		return home.New(opts.Stats, opts.Generator, opts.Explainer, opts.Tutor, opts.EventRepo, opts.Sounds)
	}

	var root screen.Screen
	if opts.SkipSplash {
		root = homeFactory()
	} else {
		root = welcome.New(homeFactory, currentSkin(opts.Stats), opts.Sounds)
	}

	return AppModel{
		router: router.New(root),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	if m.opts.Music != nil && m.opts.Stats.Stats().MusicEnabled {
		m.opts.Music.Play("garage-lofi")
	}
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	m.syncMusic()

	cmd := m.router.Update(msg)
	return m, cmd
}

// syncMusic keeps the track player aligned with the settings toggle.
func (m AppModel) syncMusic() {
	if m.opts.Music == nil || m.opts.Stats == nil {
		return
	}
	enabled := m.opts.Stats.Stats().MusicEnabled
	_, playing := m.opts.Music.Current()
	switch {
	case enabled && !playing:
		m.opts.Music.Resume()
	case !enabled && playing:
		m.opts.Music.Pause()
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	skin := currentSkin(m.opts.Stats)

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(skin, m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The splash renders frameless.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	u := m.opts.Stats.Stats()
	header := layout.RenderHeader(skin, title, layout.HeaderStats{
		Level:  u.Level(),
		XP:     u.XP,
		Streak: u.CurrentStreak,
	}, m.width)

	footer := layout.RenderFooter(skin, m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func currentSkin(st *stats.Store) theme.Skin {
	if st != nil {
		if s, err := theme.Get(st.Stats().Skin); err == nil {
			return s
		}
	}
	return theme.Default()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
