// Package audio provides fire-and-forget interface sound cues and a
// minimal background-track player. Playback failure is never an
// application error: the engine logs a warning and stays silent.
package audio

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Cue names one interface sound effect.
type Cue string

const (
	CueClick       Cue = "click"
	CueHover       Cue = "hover"
	CueSuccess     Cue = "success"
	CueError       Cue = "error"
	CueEngineStart Cue = "engine-start"
	CueTabSwitch   Cue = "tab-switch"
	CueReward      Cue = "reward"
)

// Sink renders a cue. Implementations must be safe for concurrent use.
type Sink interface {
	Play(cue Cue) error
}

// BellSink renders every cue as a terminal bell.
type BellSink struct {
	W io.Writer
}

func (b BellSink) Play(Cue) error {
	w := b.W
	if w == nil {
		w = os.Stdout
	}
	_, err := io.WriteString(w, "\a")
	return err
}

// SilentSink discards every cue.
type SilentSink struct{}

func (SilentSink) Play(Cue) error { return nil }

// Engine routes cues to a sink, honoring an enabled toggle.
type Engine struct {
	mu      sync.Mutex
	sink    Sink
	enabled bool
	errOut  io.Writer
	warned  bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithErrOutput redirects failure warnings, for tests.
func WithErrOutput(w io.Writer) EngineOption {
	return func(e *Engine) { e.errOut = w }
}

// NewEngine creates an enabled engine over the given sink.
func NewEngine(sink Sink, opts ...EngineOption) *Engine {
	e := &Engine{sink: sink, enabled: true, errOut: os.Stderr}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetEnabled toggles cue playback.
func (e *Engine) SetEnabled(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enabled = on
}

// Enabled reports whether cues are currently played.
func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

// Play renders a cue. Disabled engines and sink failures are silent;
// the first failure writes a single warning.
func (e *Engine) Play(cue Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.enabled {
		return
	}
	if err := e.sink.Play(cue); err != nil && !e.warned {
		e.warned = true
		fmt.Fprintf(e.errOut, "warning: audio cue %q failed, muting further warnings: %v\n", cue, err)
	}
}
