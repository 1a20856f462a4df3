package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/skilylabs/skily/internal/screen"
)

// PushScreenMsg requests that a new screen be pushed onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests that the current screen be popped.
type PopScreenMsg struct{}

// ReplaceScreenMsg requests that the current screen be swapped in
// place, keeping the stack depth.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// PopToRootMsg requests a jump back to the bottom screen, used by
// top-level navigation shortcuts.
type PopToRootMsg struct{}

// Router manages the screen stack. The bottom screen is never removed.
type Router struct {
	stack []screen.Screen
}

// New creates a Router with the given root screen.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push adds a screen on top of the stack and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen. No-op at the root.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	cmd := r.leave(r.Active())
	r.stack = r.stack[:len(r.stack)-1]
	return cmd
}

// Replace swaps the top screen for a new one and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	cmd := r.leave(r.Active())
	r.stack[len(r.stack)-1] = s
	return tea.Batch(cmd, s.Init())
}

// PopToRoot unwinds the stack down to the bottom screen.
func (r *Router) PopToRoot() tea.Cmd {
	var cmds []tea.Cmd
	for len(r.stack) > 1 {
		cmds = append(cmds, r.leave(r.Active()))
		r.stack = r.stack[:len(r.stack)-1]
	}
	return tea.Batch(cmds...)
}

// Active returns the top screen.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update handles navigation messages and forwards everything else to
// the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case PopToRootMsg:
		return r.PopToRoot()
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}

// leave gives a departing screen its cleanup hook.
func (r *Router) leave(s screen.Screen) tea.Cmd {
	if l, ok := s.(screen.Leaver); ok {
		return l.Leave()
	}
	return nil
}
