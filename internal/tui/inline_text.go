package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	minAreaRows = 3
	maxAreaRows = 12
	// textarea's default prompt ("┃ ") takes two columns.
	areaPromptW = 2
)

type editResult int

const (
	editNone editResult = iota
	editCommitted
	editCanceled
)

// inlineText is a click-to-edit text field. It shows its value in Display state and
// swaps in a textinput (single-line) or textarea (multi-line) while Editing.
//
// value is authoritative; the widget's buffer only becomes the value on commit.
type inlineText struct {
	value       string
	placeholder string
	multiline   bool
	width       int

	editing bool
	// selectAll marks the whole single-line buffer as selected: the next typed
	// rune replaces it, backspace clears it, cursor motion drops the selection.
	selectAll bool

	input textinput.Model
	area  textarea.Model
	keys  fieldKeyMap
}

func newInlineText(value, placeholder string, multiline bool) inlineText {
	t := inlineText{
		value:       value,
		placeholder: placeholder,
		multiline:   multiline,
		width:       40,
		keys:        defaultFieldKeyMap(),
	}
	if multiline {
		t.area = textarea.New()
		t.area.Placeholder = placeholder
		// No caps: SetValue would silently truncate a long value, and commit
		// would save the truncated buffer.
		t.area.CharLimit = 0
		t.area.MaxHeight = 0
		t.area.MaxWidth = 0
		t.area.ShowLineNumbers = false
		t.area.SetValue(value)
	} else {
		t.input = textinput.New()
		t.input.Placeholder = placeholder
		t.input.Prompt = ""
		t.input.CharLimit = 0
		t.input.SetValue(value)
	}
	return t
}

func (t inlineText) Value() string { return t.value }

func (t inlineText) Editing() bool { return t.editing }

func (t inlineText) buffer() string {
	if t.multiline {
		return t.area.Value()
	}
	return t.input.Value()
}

func (t *inlineText) setBuffer(v string) {
	if t.multiline {
		t.area.SetValue(v)
		t.fitArea()
		return
	}
	t.input.SetValue(v)
	t.input.CursorEnd()
}

// withValue applies an external value. In Display state both the shown text and the
// buffer follow it; while Editing the buffer is left alone and is re-synced on the
// next begin.
func (t inlineText) withValue(v string) inlineText {
	t.value = v
	if !t.editing {
		t.setBuffer(v)
	}
	return t
}

// withBuffer replaces the in-progress buffer. Outside Editing it does nothing.
func (t inlineText) withBuffer(v string) inlineText {
	if t.editing {
		t.selectAll = false
		t.setBuffer(v)
	}
	return t
}

func (t inlineText) withWidth(w int) inlineText {
	if w < 8 {
		w = 8
	}
	t.width = w
	if t.multiline {
		t.area.SetWidth(w)
		t.fitArea()
	} else {
		t.input.Width = w - 1
	}
	return t
}

// begin moves Display → Editing.
func (t inlineText) begin() (inlineText, tea.Cmd) {
	if t.editing {
		return t, nil
	}
	t.editing = true
	t.setBuffer(t.value)
	if t.multiline {
		return t, t.area.Focus()
	}
	t.selectAll = t.value != ""
	return t, t.input.Focus()
}

// commit moves Editing → Display, making the buffer the authoritative value.
func (t inlineText) commit() (inlineText, editResult) {
	if !t.editing {
		return t, editNone
	}
	t.value = t.buffer()
	t.stop()
	return t, editCommitted
}

// cancel moves Editing → Display and discards the buffer.
func (t inlineText) cancel() (inlineText, editResult) {
	if !t.editing {
		return t, editNone
	}
	t.stop()
	t.setBuffer(t.value)
	return t, editCanceled
}

func (t *inlineText) stop() {
	t.editing = false
	t.selectAll = false
	if t.multiline {
		t.area.Blur()
	} else {
		t.input.Blur()
	}
}

func (t inlineText) update(msg tea.Msg) (inlineText, editResult, tea.Cmd) {
	if !t.editing {
		return t, editNone, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, t.keys.Cancel):
			next, res := t.cancel()
			return next, res, nil
		case key.Matches(k, t.keys.Blur):
			next, res := t.commit()
			return next, res, nil
		case !t.multiline && key.Matches(k, t.keys.Commit):
			next, res := t.commit()
			return next, res, nil
		case t.multiline && key.Matches(k, t.keys.CommitMultiline):
			next, res := t.commit()
			return next, res, nil
		}

		if t.selectAll {
			t.selectAll = false
			switch k.Type {
			case tea.KeyRunes, tea.KeySpace:
				t.input.SetValue("")
			case tea.KeyBackspace, tea.KeyDelete:
				t.input.SetValue("")
				return t, editNone, nil
			}
		}
	}

	var cmd tea.Cmd
	if t.multiline {
		t.area, cmd = t.area.Update(msg)
		t.fitArea()
	} else {
		t.input, cmd = t.input.Update(msg)
	}
	return t, editNone, cmd
}

// fitArea grows the textarea with its content, between minAreaRows and maxAreaRows.
func (t *inlineText) fitArea() {
	if !t.multiline {
		return
	}
	t.area.SetHeight(areaRows(t.area.Value(), t.width-areaPromptW))
}

func areaRows(v string, w int) int {
	if w < 1 {
		w = 1
	}
	rows := 0
	for _, ln := range strings.Split(v, "\n") {
		n := xansi.StringWidth(ln)
		rows += 1 + n/w
	}
	// Leave a spare row to type into.
	rows++
	if rows < minAreaRows {
		rows = minAreaRows
	}
	if rows > maxAreaRows {
		rows = maxAreaRows
	}
	return rows
}

// lines renders the field at its width. base styles the display text.
func (t inlineText) lines(base lipgloss.Style) []string {
	w := t.width
	if t.editing {
		if t.multiline {
			return strings.Split(t.area.View(), "\n")
		}
		if t.selectAll {
			sel := lipgloss.NewStyle().Reverse(true).Render(xansi.Truncate(t.input.Value(), w-1, "…"))
			return []string{renderInputLine(w, sel)}
		}
		return []string{renderInputLine(w, t.input.View())}
	}

	if t.value == "" {
		return []string{stylePlaceholder().Render(fitWidth(t.placeholder, w))}
	}
	if !t.multiline {
		return []string{base.Render(fitWidth(t.value, w))}
	}
	wrapped := lipgloss.NewStyle().Width(w).Render(t.value)
	out := strings.Split(wrapped, "\n")
	for i := range out {
		out[i] = base.Render(fitWidth(out[i], w))
	}
	return out
}

// height is the number of lines lines() returns.
func (t inlineText) height() int {
	if t.editing && t.multiline {
		return t.area.Height()
	}
	if t.editing || !t.multiline || t.value == "" {
		return 1
	}
	return len(strings.Split(lipgloss.NewStyle().Width(t.width).Render(t.value), "\n"))
}
