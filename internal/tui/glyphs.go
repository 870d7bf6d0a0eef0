package tui

// glyphSet bundles the decorative characters the TUI prints. The ascii set
// exists for terminals without reliable unicode/emoji fonts.
type glyphSet struct {
	Liked     string
	Unliked   string
	CheckDone string
	CheckTodo string
	RadioOn   string
	RadioOff  string
	BoxOn     string
	BoxOff    string
	Bullet    string
	Unread    string
	BarFill   string
	BarEmpty  string
}

var unicodeGlyphs = glyphSet{
	Liked:     "♥",
	Unliked:   "♡",
	CheckDone: "☑",
	CheckTodo: "☐",
	RadioOn:   "◉",
	RadioOff:  "○",
	BoxOn:     "☑",
	BoxOff:    "☐",
	Bullet:    "•",
	Unread:    "●",
	BarFill:   "█",
	BarEmpty:  "░",
}

var asciiGlyphs = glyphSet{
	Liked:     "[x]",
	Unliked:   "[ ]",
	CheckDone: "[x]",
	CheckTodo: "[ ]",
	RadioOn:   "(*)",
	RadioOff:  "( )",
	BoxOn:     "[x]",
	BoxOff:    "[ ]",
	Bullet:    "*",
	Unread:    "*",
	BarFill:   "#",
	BarEmpty:  "-",
}

var glyphs = unicodeGlyphs

func applyGlyphPreference(pref string) {
	if pref == "ascii" {
		glyphs = asciiGlyphs
		return
	}
	glyphs = unicodeGlyphs
}
