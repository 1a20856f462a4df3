package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/skilylabs/skily/internal/ui/theme"
)

// OptionList renders the answer choices of a question. Selection and
// confirmation live in the quiz session; this component only tracks
// the cursor and the reveal state it is told about.
type OptionList struct {
	Options []string
	Cursor  int

	revealed   bool
	correctIdx int
	chosenIdx  int
}

// NewOptionList creates an unrevealed option list.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options, correctIdx: -1, chosenIdx: -1}
}

// Update moves the cursor. A revealed list ignores input.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.revealed {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}

	return o, nil
}

// Reveal locks the list and marks the correct and chosen answers.
func (o *OptionList) Reveal(correctIdx, chosenIdx int) {
	o.revealed = true
	o.correctIdx = correctIdx
	o.chosenIdx = chosenIdx
}

// Revealed reports whether the answer has been revealed.
func (o OptionList) Revealed() bool {
	return o.revealed
}

// View renders the options with the given skin.
func (o OptionList) View(skin theme.Skin) string {
	labels := []string{"A", "B", "C", "D"}

	var s string
	for i, opt := range o.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == o.Cursor && !o.revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if o.revealed {
			switch {
			case i == o.correctIdx:
				s += skin.Correct().Render(line) + "\n"
			case i == o.chosenIdx:
				s += skin.Incorrect().Render(line) + "\n"
			default:
				s += skin.Subtitle().Render(line) + "\n"
			}
			continue
		}

		if i == o.Cursor {
			s += skin.Selected().Render(line) + "\n"
		} else {
			s += skin.Unselected().Render(line) + "\n"
		}
	}
	return s
}
