package format

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	rendererMu sync.Mutex
	// Cached by style + wrap width. WithAutoStyle can block on terminal queries,
	// so the style is picked from the environment instead.
	renderers = map[string]*glamour.TermRenderer{}
)

// RenderTerminal renders markdown with glamour for display in a terminal.
func RenderTerminal(md string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	style := terminalStyle()
	key := style + ":" + strconv.Itoa(width)

	rendererMu.Lock()
	defer rendererMu.Unlock()
	r := renderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		renderers[key] = rr
		r = rr
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

// terminalStyle honours SECTIONPAD_MD_STYLE (dark|light|notty|ascii), then NO_COLOR.
func terminalStyle() string {
	switch v := strings.ToLower(strings.TrimSpace(os.Getenv("SECTIONPAD_MD_STYLE"))); v {
	case "dark", "light", "notty", "ascii":
		return v
	}
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return "notty"
	}
	return "dark"
}
