package tui

import "testing"

func TestGlyphs_FromPreference(t *testing.T) {
	setGlyphs(glyphSetUnicode)
	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs by default; got %v", got)
	}

	applyGlyphPreference("ascii")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected ascii glyphs; got %v", got)
	}
	if glyphTwistyCollapsed() != ">" || glyphBrand() != "*" {
		t.Fatalf("expected ascii twisty and brand")
	}

	applyGlyphPreference(" Unicode ")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs; got %v", got)
	}

	// Unknown values should be ignored (keep current).
	setGlyphs(glyphSetASCII)
	applyGlyphPreference("bogus")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected unknown to be ignored; got %v", got)
	}
	setGlyphs(glyphSetUnicode)
}
