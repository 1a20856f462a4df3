package settings

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/skilylabs/skily/internal/audio"
	"github.com/skilylabs/skily/internal/stats"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestToggleSfxDisablesEngine(t *testing.T) {
	st := stats.NewStore(stats.Seed())
	engine := audio.NewEngine(audio.SilentSink{})
	s := New(st, engine)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if st.Stats().SfxEnabled {
		t.Error("sfx should be off after toggle")
	}
	if engine.Enabled() {
		t.Error("audio engine should follow the sfx setting")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !st.Stats().SfxEnabled || !engine.Enabled() {
		t.Error("second toggle should re-enable sfx")
	}
}

func TestToggleMusic(t *testing.T) {
	st := stats.NewStore(stats.Seed())
	s := New(st, nil)

	s.Update(key('j'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if st.Stats().MusicEnabled {
		t.Error("music should be off after toggle")
	}
}

func TestCycleSkin(t *testing.T) {
	st := stats.NewStore(stats.Seed())
	s := New(st, nil)

	s.Update(key('j'))
	s.Update(key('j'))

	s.Update(key('l'))
	if st.Stats().Skin != "neon" {
		t.Errorf("skin = %q, want neon", st.Stats().Skin)
	}
	s.Update(key('l'))
	if st.Stats().Skin != "carbon" {
		t.Errorf("skin = %q, want carbon", st.Stats().Skin)
	}
	s.Update(key('l'))
	if st.Stats().Skin != "cadet" {
		t.Errorf("skin = %q, want cadet after wrap", st.Stats().Skin)
	}
	s.Update(key('h'))
	if st.Stats().Skin != "carbon" {
		t.Errorf("skin = %q, want carbon going back", st.Stats().Skin)
	}
}
