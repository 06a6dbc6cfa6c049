package tui

import (
	"strings"
	"sync"
)

// Terminals can't swap the user's font, so we choose between Unicode and ASCII
// glyph sets for UI affordances (twisties, buttons, brand mark).

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference(v string) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func pick(unicode, ascii string) string {
	if glyphs() == glyphSetASCII {
		return ascii
	}
	return unicode
}

func glyphTwistyCollapsed() string { return pick("▸", ">") }
func glyphTwistyExpanded() string  { return pick("▾", "v") }
func glyphBrand() string           { return pick("★", "*") }
func glyphCopy() string            { return pick("⧉ copy", "+ copy") }
func glyphTrash() string           { return pick("✕ delete", "x delete") }
func glyphPlus() string            { return "+" }
func glyphBullet() string          { return pick("•", "*") }
func glyphSelectedBar() string     { return pick("┃", "|") }
func glyphCursor() string          { return pick("›", ">") }
func glyphHRule() string           { return pick("━", "=") }
