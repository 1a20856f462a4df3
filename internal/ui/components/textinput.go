package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// ChatInput wraps bubbles/textinput for the tutor chat prompt.
type ChatInput struct {
	Model textinput.Model
}

// NewChatInput creates a focused input with the given placeholder.
func NewChatInput(placeholder string, charLimit int) ChatInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return ChatInput{Model: ti}
}

// Init returns the focus command.
func (c ChatInput) Init() tea.Cmd {
	return c.Model.Focus()
}

// Update forwards messages to the underlying input.
func (c ChatInput) Update(msg tea.Msg) (ChatInput, tea.Cmd) {
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// View renders the input.
func (c ChatInput) View() string {
	return c.Model.View()
}

// Value returns the current text.
func (c ChatInput) Value() string {
	return c.Model.Value()
}

// Reset clears the input.
func (c *ChatInput) Reset() {
	c.Model.Reset()
}
