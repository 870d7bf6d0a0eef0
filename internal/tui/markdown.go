package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Idea descriptions are markdown. Renderers are cached per wrap width; the
// cache resets implicitly on resize because new widths get new entries.
var (
	mdMu        sync.Mutex
	mdRenderers = map[int]*glamour.TermRenderer{}
)

func mdStyle() string {
	if darkBackground {
		return "dark"
	}
	return "light"
}

func renderMarkdown(src string, width int) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	mdMu.Lock()
	r, ok := mdRenderers[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(mdStyle()),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdMu.Unlock()
			return src
		}
		mdRenderers[width] = r
	}
	mdMu.Unlock()

	out, err := r.Render(src)
	if err != nil {
		return src
	}
	// Glamour pads with blank lines top and bottom; the layout adds its own.
	return strings.Trim(out, "\n")
}
