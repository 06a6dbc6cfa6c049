package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

type externalEditorDoneMsg struct {
	err error
}

func externalEditorName() string {
	if v := strings.TrimSpace(os.Getenv("VISUAL")); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("EDITOR")); v != "" {
		return v
	}
	return "vi"
}

// editorArgv turns an editor setting such as `code --wait` into argv. Quotes group
// words and a backslash escapes the next rune outside single quotes. An empty or
// blank setting falls back to vi.
func editorArgv(setting string) []string {
	var (
		argv  []string
		word  strings.Builder
		quote rune
		esc   bool
		open  bool
	)
	for _, r := range setting {
		switch {
		case esc:
			word.WriteRune(r)
			esc = false
		case r == '\\' && quote != '\'':
			esc, open = true, true
		case quote != 0 && r == quote:
			quote = 0
		case quote == 0 && (r == '\'' || r == '"'):
			quote, open = r, true
		case quote == 0 && unicode.IsSpace(r):
			if open {
				argv = append(argv, word.String())
				word.Reset()
				open = false
			}
		default:
			word.WriteRune(r)
			open = true
		}
	}
	if open {
		argv = append(argv, word.String())
	}
	if len(argv) == 0 {
		return []string{"vi"}
	}
	return argv
}

// openExternalEditor hands the content buffer being edited to $VISUAL/$EDITOR. The
// field stays in Editing state; the result lands in its buffer, not its value.
func (m *appModel) openExternalEditor() (tea.Cmd, error) {
	if m.active.kind != regionContent {
		return nil, nil
	}
	idx := m.indexOf(m.active.sectionID)
	if idx < 0 {
		return nil, nil
	}
	before := m.items[idx].content.buffer()

	args := editorArgv(externalEditorName())

	f, err := os.CreateTemp("", "sectionpad-*.md")
	if err != nil {
		return nil, err
	}
	path := f.Name()
	if _, err := f.WriteString(before); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, err
	}
	_ = f.Close()

	m.externalEditorPath = path
	m.externalEditorBefore = before
	m.externalEditorTarget = m.active

	cmd := exec.Command(args[0], append(args[1:], path)...)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return externalEditorDoneMsg{err: err}
	}), nil
}

func (m *appModel) applyExternalEditorResult(msg externalEditorDoneMsg) {
	path := m.externalEditorPath
	before := m.externalEditorBefore
	target := m.externalEditorTarget

	m.externalEditorPath = ""
	m.externalEditorBefore = ""
	m.externalEditorTarget = editTarget{}

	if strings.TrimSpace(path) == "" {
		return
	}
	defer func() { _ = os.Remove(path) }()

	if msg.err != nil {
		m.showMinibuffer("Editor failed: " + msg.err.Error())
		return
	}

	b, err := os.ReadFile(path)
	if err != nil {
		m.showMinibuffer("Editor read failed: " + err.Error())
		return
	}

	// The edit may have ended (focus loss) while the editor was open.
	idx := m.indexOf(target.sectionID)
	if idx < 0 || m.active != target {
		m.showMinibuffer("Edit ended; editor result discarded")
		return
	}

	after := strings.TrimRight(string(b), "\n")
	m.items[idx].content = m.items[idx].content.withBuffer(after)

	if after == strings.TrimRight(before, "\n") {
		m.showMinibuffer(fmt.Sprintf("No changes from %s", externalEditorName()))
		return
	}
	m.showMinibuffer(fmt.Sprintf("Updated from %s (ctrl+s to save)", externalEditorName()))
}
