package tui

import (
	"strings"
	"time"

	"sectionpad/internal/editor"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxToasts = 3

type toastDoneMsg struct{ seq int }

// toastSink collects notifications raised while the editor runs an operation; the app
// drains it into the toast stack right after.
type toastSink struct {
	pending []editor.Notification
}

func (s *toastSink) Notify(n editor.Notification) { s.pending = append(s.pending, n) }

func (s *toastSink) drain() []editor.Notification {
	out := s.pending
	s.pending = nil
	return out
}

type toast struct {
	seq int
	n   editor.Notification
}

// toastModel is a small stack of transient notifications, each dismissed by its own
// sequence-tagged tick.
type toastModel struct {
	items []toast
	seq   int
	ttl   time.Duration
}

func newToastModel(ttl time.Duration) toastModel {
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	return toastModel{ttl: ttl}
}

func (t toastModel) push(n editor.Notification) (toastModel, tea.Cmd) {
	t.seq++
	seq := t.seq
	t.items = append(append([]toast(nil), t.items...), toast{seq: seq, n: n})
	if len(t.items) > maxToasts {
		t.items = t.items[len(t.items)-maxToasts:]
	}
	return t, tea.Tick(t.ttl, func(time.Time) tea.Msg { return toastDoneMsg{seq: seq} })
}

func (t toastModel) dismiss(seq int) toastModel {
	out := make([]toast, 0, len(t.items))
	for _, it := range t.items {
		if it.seq != seq {
			out = append(out, it)
		}
	}
	t.items = out
	return t
}

func (t toastModel) empty() bool { return len(t.items) == 0 }

func (t toastModel) view(width int) string {
	if len(t.items) == 0 {
		return ""
	}
	if width > 48 {
		width = 48
	}
	var blocks []string
	for _, it := range t.items {
		border := colorAccent
		titleSt := lipgloss.NewStyle().Bold(true)
		if it.n.Variant == editor.VariantDestructive {
			border = colorDestructive
			titleSt = titleSt.Foreground(colorDestructive)
		}
		body := titleSt.Render(it.n.Title)
		if d := strings.TrimSpace(it.n.Description); d != "" {
			body += "\n" + styleMuted().Render(d)
		}
		box := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(border).
			PaddingLeft(1).
			Width(width).
			Render(body)
		blocks = append(blocks, box)
	}
	return strings.Join(blocks, "\n")
}
