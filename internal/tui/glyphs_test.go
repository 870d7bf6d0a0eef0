package tui

import "testing"

func TestApplyGlyphPreference(t *testing.T) {
	t.Cleanup(func() { glyphs = unicodeGlyphs })

	applyGlyphPreference("ascii")
	if glyphs != asciiGlyphs {
		t.Fatalf("expected ascii glyphs; got %v", glyphs)
	}

	applyGlyphPreference("unicode")
	if glyphs != unicodeGlyphs {
		t.Fatalf("expected unicode glyphs; got %v", glyphs)
	}

	// Anything unrecognized falls back to unicode.
	applyGlyphPreference("bogus")
	if glyphs != unicodeGlyphs {
		t.Fatalf("expected unicode fallback; got %v", glyphs)
	}
}
