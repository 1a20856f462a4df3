package audio

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
)

type recordingSink struct {
	mu   sync.Mutex
	cues []Cue
	err  error
}

func (r *recordingSink) Play(cue Cue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, cue)
	return r.err
}

func (r *recordingSink) played() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Cue(nil), r.cues...)
}

func TestEnginePlaysCues(t *testing.T) {
	sink := &recordingSink{}
	e := NewEngine(sink)

	e.Play(CueClick)
	e.Play(CueReward)

	got := sink.played()
	if len(got) != 2 || got[0] != CueClick || got[1] != CueReward {
		t.Fatalf("played %v", got)
	}
}

func TestEngineDisabledIsSilent(t *testing.T) {
	sink := &recordingSink{}
	e := NewEngine(sink)
	e.SetEnabled(false)

	e.Play(CueSuccess)
	if got := sink.played(); len(got) != 0 {
		t.Fatalf("disabled engine played %v", got)
	}
	if e.Enabled() {
		t.Error("Enabled() = true after SetEnabled(false)")
	}
}

func TestEngineSinkFailureWarnsOnce(t *testing.T) {
	sink := &recordingSink{err: errors.New("device busy")}
	var buf bytes.Buffer
	e := NewEngine(sink, WithErrOutput(&buf))

	e.Play(CueError)
	e.Play(CueError)

	out := buf.String()
	if !strings.Contains(out, "device busy") {
		t.Fatalf("warning not written: %q", out)
	}
	if strings.Count(out, "warning:") != 1 {
		t.Errorf("warning repeated: %q", out)
	}
	// Failure never propagates; both plays still reached the sink.
	if got := sink.played(); len(got) != 2 {
		t.Errorf("played %v", got)
	}
}

func TestBellSinkWritesBell(t *testing.T) {
	var buf bytes.Buffer
	if err := (BellSink{W: &buf}).Play(CueClick); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\a" {
		t.Errorf("wrote %q", buf.String())
	}
}

func TestTrackPlayerLifecycle(t *testing.T) {
	sink := &recordingSink{}
	p := NewTrackPlayer(sink)

	if track, playing := p.Current(); track != "" || playing {
		t.Fatalf("new player state %q/%v", track, playing)
	}

	p.Play("garage-lofi")
	if track, playing := p.Current(); track != "garage-lofi" || !playing {
		t.Fatalf("after Play: %q/%v", track, playing)
	}

	p.Pause()
	if _, playing := p.Current(); playing {
		t.Fatal("still playing after Pause")
	}

	p.Resume()
	if track, playing := p.Current(); track != "garage-lofi" || !playing {
		t.Fatalf("after Resume: %q/%v", track, playing)
	}

	p.Play("night-drive")
	if track, _ := p.Current(); track != "night-drive" {
		t.Fatalf("switch kept %q", track)
	}
}

func TestTrackPlayerSinkFailureStaysSilent(t *testing.T) {
	p := NewTrackPlayer(&recordingSink{err: errors.New("no output device")})
	p.Play("garage-lofi")
	if _, playing := p.Current(); playing {
		t.Error("playing reported despite sink failure")
	}
}
