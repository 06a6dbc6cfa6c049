package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestApplyThemePreference(t *testing.T) {
	old := lipgloss.HasDarkBackground()
	t.Cleanup(func() { lipgloss.SetHasDarkBackground(old) })

	applyThemePreference("light")
	if lipgloss.HasDarkBackground() {
		t.Fatalf("expected light background")
	}
	applyThemePreference("dark")
	if !lipgloss.HasDarkBackground() {
		t.Fatalf("expected dark background")
	}

	// auto falls through to COLORFGBG (fg;bg).
	t.Setenv("COLORFGBG", "0;15")
	applyThemePreference("auto")
	if lipgloss.HasDarkBackground() {
		t.Fatalf("expected COLORFGBG to select a light background")
	}
	t.Setenv("COLORFGBG", "15;0")
	applyThemePreference("")
	if !lipgloss.HasDarkBackground() {
		t.Fatalf("expected COLORFGBG to select a dark background")
	}
}

func TestFitWidth(t *testing.T) {
	if got := fitWidth("abc", 5); got != "abc  " {
		t.Fatalf("expected padding, got %q", got)
	}
	if got := fitWidth("abcdef", 4); got != "abc…" {
		t.Fatalf("expected truncation, got %q", got)
	}
	if got := fitWidth("abc", 0); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
