package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine pads a single-line input view to w columns on the input background.
func renderInputLine(w int, inputView string) string {
	if w < 4 {
		w = 4
	}

	// A single-line field must stay one visual line; stray newlines would make the
	// header wrap and shift every hit region below it.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		w,
		lipgloss.Left,
		inputView,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > w {
		// Terminate ANSI styling so the cut doesn't bleed into the next cell.
		line = xansi.Cut(line, 0, w) + "\x1b[0m"
	}
	return line
}

// fitWidth truncates s to w columns (with an ellipsis) and right-pads it with spaces.
func fitWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) > w {
		s = xansi.Truncate(s, w, "…")
	}
	if pad := w - xansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
