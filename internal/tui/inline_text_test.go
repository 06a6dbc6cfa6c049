package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

func typeInto(t *testing.T, it inlineText, keys ...string) (inlineText, editResult) {
	t.Helper()
	res := editNone
	for _, k := range keys {
		it, res, _ = it.update(keyMsg(k))
	}
	return it, res
}

func TestInlineText_CancelThenReopenShowsValue(t *testing.T) {
	it := newInlineText("Hello", "placeholder", false)
	it, _ = it.begin()
	if !it.Editing() {
		t.Fatalf("expected editing after begin")
	}
	it, res := typeInto(t, it, "x", "esc")
	if res != editCanceled {
		t.Fatalf("expected cancel, got %v", res)
	}
	if it.Value() != "Hello" || it.buffer() != "Hello" {
		t.Fatalf("expected value and buffer restored, got %q / %q", it.Value(), it.buffer())
	}
	it, _ = it.begin()
	if it.buffer() != "Hello" {
		t.Fatalf("expected buffer %q on reopen, got %q", "Hello", it.buffer())
	}
}

func TestInlineText_CommitFiresOnce(t *testing.T) {
	it := newInlineText("Hello", "", false)
	it, _ = it.begin()
	it, res := typeInto(t, it, "x", "enter")
	if res != editCommitted || it.Value() != "x" {
		t.Fatalf("expected commit of %q, got %v %q", "x", res, it.Value())
	}
	// A later blur must not commit again.
	if _, res := it.commit(); res != editNone {
		t.Fatalf("expected no second commit, got %v", res)
	}
	if _, res, _ := it.update(keyMsg("enter")); res != editNone {
		t.Fatalf("expected keys ignored in Display state, got %v", res)
	}
}

func TestInlineText_SelectAllOnBegin(t *testing.T) {
	it := newInlineText("Hello", "", false)

	it, _ = it.begin()
	it, _ = typeInto(t, it, "backspace")
	if it.buffer() != "" {
		t.Fatalf("expected backspace to clear the selection, got %q", it.buffer())
	}

	it = mustCancel(t, it)
	it, _ = it.begin()
	it, _ = typeInto(t, it, "right", "!")
	if it.buffer() != "Hello!" {
		t.Fatalf("expected motion to drop the selection, got %q", it.buffer())
	}

	empty := newInlineText("", "", false)
	empty, _ = empty.begin()
	if empty.selectAll {
		t.Fatalf("expected no selection on an empty value")
	}
}

func mustCancel(t *testing.T, it inlineText) inlineText {
	t.Helper()
	next, res := it.cancel()
	if res != editCanceled {
		t.Fatalf("expected cancel, got %v", res)
	}
	return next
}

func containsPlain(s, sub string) bool {
	return strings.Contains(xansi.Strip(s), sub)
}

func TestInlineText_ExternalValueWhileDisplayed(t *testing.T) {
	it := newInlineText("a", "", false)
	it = it.withValue("b")
	if it.Value() != "b" || it.buffer() != "b" {
		t.Fatalf("expected value and buffer to follow, got %q / %q", it.Value(), it.buffer())
	}

	it, _ = it.begin()
	it, _ = typeInto(t, it, "z")
	it = it.withValue("c")
	if it.buffer() != "z" {
		t.Fatalf("expected buffer untouched while editing, got %q", it.buffer())
	}
	it, _ = typeInto(t, it, "esc")
	if it.Value() != "c" || it.buffer() != "c" {
		t.Fatalf("expected external value after cancel, got %q / %q", it.Value(), it.buffer())
	}
}

func TestInlineText_MultilineKeys(t *testing.T) {
	it := newInlineText("a", "", true)
	it, _ = it.begin()
	if it.selectAll {
		t.Fatalf("expected no select-all in multi-line mode")
	}

	it, res := typeInto(t, it, "enter", "b")
	if res != editNone {
		t.Fatalf("expected enter to insert a newline, got %v", res)
	}
	it, res = typeInto(t, it, "alt+enter")
	if res != editCommitted || it.Value() != "a\nb" {
		t.Fatalf("expected commit of %q, got %v %q", "a\nb", res, it.Value())
	}
}

func TestInlineText_PlaceholderWhenEmpty(t *testing.T) {
	it := newInlineText("", "Enter text...", false).withWidth(20)
	lines := it.lines(styleMuted())
	if len(lines) != 1 || !containsPlain(lines[0], "Enter text...") {
		t.Fatalf("expected placeholder, got %q", lines)
	}
	if it.height() != 1 {
		t.Fatalf("expected height 1, got %d", it.height())
	}
}

func TestInlineText_BlurKeyCommits(t *testing.T) {
	it := newInlineText("v", "", true)
	it, _ = it.begin()
	it, res, _ := it.update(tea.KeyMsg{Type: tea.KeyTab})
	if res != editCommitted || it.Editing() {
		t.Fatalf("expected tab to commit, got %v", res)
	}
}

func TestInlineText_LongValuesSurviveUneditedCommit(t *testing.T) {
	title := strings.Repeat("a", 600)
	it := newInlineText(title, "", false)
	it, _ = it.begin()
	it, res := typeInto(t, it, "enter")
	if res != editCommitted {
		t.Fatalf("expected commit, got %v", res)
	}
	if got := len([]rune(it.Value())); got != 600 {
		t.Fatalf("expected 600 runes kept, got %d", got)
	}

	content := strings.TrimSuffix(strings.Repeat("line\n", 150), "\n")
	area := newInlineText(content, "", true)
	area, _ = area.begin()
	area, res = area.commit()
	if res != editCommitted {
		t.Fatalf("expected commit, got %v", res)
	}
	if area.Value() != content {
		t.Fatalf("expected %d lines kept, got %d", 150, strings.Count(area.Value(), "\n")+1)
	}

	// A long single line in the multi-line field is not capped either.
	wide := strings.Repeat("b", 800)
	area = newInlineText(wide, "", true)
	area, _ = area.begin()
	if area, _ = area.commit(); area.Value() != wide {
		t.Fatalf("expected 800 columns kept, got %d", len(area.Value()))
	}
}

func TestAreaRows(t *testing.T) {
	if got := areaRows("", 10); got != minAreaRows {
		t.Fatalf("expected %d, got %d", minAreaRows, got)
	}
	if got := areaRows("a\nb\nc\nd", 10); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	long := ""
	for i := 0; i < 40; i++ {
		long += "line\n"
	}
	if got := areaRows(long, 10); got != maxAreaRows {
		t.Fatalf("expected cap %d, got %d", maxAreaRows, got)
	}
}
