package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/leadline-crm/leadline/internal/tui/themes"
)

// CancelFormMsg asks the root model to close the active form without
// saving.
type CancelFormMsg struct{}

// selectField is a single-choice form field cycled with left/right.
type selectField struct {
	label    string
	options  []string
	idx      int
	optional bool
}

func newSelect(label string, options []string, optional bool) selectField {
	if optional {
		options = append([]string{""}, options...)
	}
	return selectField{label: label, options: options, optional: optional}
}

// setValue positions the cursor on value, appending it when the backend
// sent a value outside the current option set.
func (f *selectField) setValue(value string) {
	for i, opt := range f.options {
		if opt == value {
			f.idx = i
			return
		}
	}
	if value != "" {
		f.options = append(f.options, value)
		f.idx = len(f.options) - 1
	}
}

func (f *selectField) value() string {
	if len(f.options) == 0 {
		return ""
	}
	return f.options[f.idx]
}

func (f *selectField) next() {
	if len(f.options) > 0 {
		f.idx = (f.idx + 1) % len(f.options)
	}
}

func (f *selectField) prev() {
	if len(f.options) > 0 {
		f.idx = (f.idx - 1 + len(f.options)) % len(f.options)
	}
}

func (f selectField) view(theme themes.Theme, focused bool) string {
	display := f.value()
	if display == "" {
		display = "(none)"
	}
	value := fmt.Sprintf("◂ %s ▸", display)
	if focused {
		return theme.Highlighted.Render(f.label+": ") + theme.Selected.Render(value)
	}
	return lipgloss.NewStyle().Foreground(theme.Muted).Render(f.label+": ") + value
}
