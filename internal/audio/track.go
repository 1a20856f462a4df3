package audio

import "sync"

// TrackPlayer is a single-track background music wrapper. Exactly one
// track can be loaded; switching tracks replaces the previous one.
// There is no queueing.
type TrackPlayer struct {
	mu      sync.Mutex
	sink    Sink
	track   string
	playing bool
}

// NewTrackPlayer creates a stopped player over the given sink.
func NewTrackPlayer(sink Sink) *TrackPlayer {
	return &TrackPlayer{sink: sink}
}

// Play starts the named track, replacing any current one. A sink
// failure leaves the player silent without reporting an error.
func (p *TrackPlayer) Play(track string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.track = track
	p.playing = p.sink.Play(Cue("track:"+track)) == nil
}

// Pause stops playback, keeping the current track loaded.
func (p *TrackPlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}

// Resume restarts the loaded track, if any.
func (p *TrackPlayer) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.track != "" {
		p.playing = p.sink.Play(Cue("track:"+p.track)) == nil
	}
}

// Current returns the loaded track name and whether it is playing.
func (p *TrackPlayer) Current() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.track, p.playing
}
