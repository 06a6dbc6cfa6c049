package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	// Header: title strip plus a rule. The body viewport starts right below it.
	headerHeight = 2
	// Brand box (" ★ ") plus two spaces.
	pageTitleX = 5
)

var instructions = []string{
	"Click on any text (or press e/c/t) to edit it directly",
	"Click on a section header (or press enter) to select it and see action buttons",
	"Use the copy button (d) to duplicate the selected section",
	"Use the delete button (x) to delete the selected section",
	"Press enter to save text changes (alt+enter or ctrl+s in content), or esc to cancel",
}

func (m appModel) pageWidth() int {
	w := m.width
	if w > maxContentW {
		w = maxContentW
	}
	if w < minContentW {
		w = minContentW
	}
	return w
}

// refresh reflows every field to the current width and rebuilds the viewport.
func (m *appModel) refresh() {
	w := m.pageWidth()
	m.pageTitle = m.pageTitle.withWidth(w - pageTitleX)
	for i := range m.items {
		m.items[i] = m.items[i].withWidth(w)
	}

	lines, _, tops := m.layoutBody()
	h := m.height - headerHeight - lipgloss.Height(m.footerView())
	if h < 1 {
		h = 1
	}
	m.body.Width = w
	m.body.Height = h
	m.body.SetContent(strings.Join(lines, "\n"))

	if m.scrollToCursor && m.cursor < len(tops) {
		m.ensureVisible(tops[m.cursor], m.items[m.cursor].lineCount())
	}
	m.scrollToCursor = false
}

// ensureVisible scrolls the body so lines [top, top+n) are on screen, preferring the
// top line when they don't fit.
func (m *appModel) ensureVisible(top, n int) {
	switch {
	case top < m.body.YOffset:
		m.body.SetYOffset(top)
	case top+n > m.body.YOffset+m.body.Height:
		off := top + n - m.body.Height
		if off > top {
			off = top
		}
		m.body.SetYOffset(off)
	}
}

// layoutBody renders the scrollable page body. Regions are in body coordinates; tops
// holds each item's first line.
func (m appModel) layoutBody() (lines []string, regions []region, tops []int) {
	w := m.pageWidth()

	lines = append(lines, "")
	for i, it := range m.items {
		top := len(lines)
		ls, rs := it.render(m.ed.IsSelected(it.id()), i == m.cursor)
		tops = append(tops, top)
		for _, r := range rs {
			regions = append(regions, r.shift(top))
		}
		lines = append(lines, ls...)
		lines = append(lines, "")
	}

	label := styleButton(true).Render(glyphPlus() + " Add Section")
	lw := xansi.StringWidth(label)
	x := (w - lw) / 2
	if x < 0 {
		x = 0
	}
	y := len(lines)
	lines = append(lines, strings.Repeat(" ", x)+label)
	regions = append(regions, region{kind: regionAdd, x0: x, y0: y, x1: x + lw, y1: y + 1})

	lines = append(lines, "", lipgloss.NewStyle().Foreground(colorAccent).Render(strings.Repeat(glyphHRule(), w)), "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Instructions:"))
	for _, s := range instructions {
		lines = append(lines, styleMuted().Render(fitWidth(glyphBullet()+" "+s, w)))
	}
	return lines, regions, tops
}

func (m appModel) headerView() string {
	w := m.pageWidth()
	brand := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccentFg).
		Background(colorAccent).
		Render(" " + glyphBrand() + " ")
	title := m.pageTitle.lines(lipgloss.NewStyle().Bold(true).Background(colorAccentSoftBg))[0]
	line := brand + "  " + title
	rule := lipgloss.NewStyle().Foreground(colorAccent).Render(strings.Repeat(glyphHRule(), w))
	return normalizePane(line+"\n"+rule, w, headerHeight)
}

func (m appModel) headerRegions() []region {
	return []region{{kind: regionPageTitle, x0: pageTitleX, y0: 0, x1: pageTitleX + m.pageTitle.width, y1: 1}}
}

func (m appModel) footerView() string {
	w := m.pageWidth()
	var parts []string
	if !m.toasts.empty() {
		parts = append(parts, m.toasts.view(w))
	}
	if s := strings.TrimSpace(m.minibufferText); s != "" {
		parts = append(parts, styleMuted().Render(fitWidth(s, w)))
	}
	h := m.help
	h.Width = w
	if m.active.kind != regionNone {
		fk := m.fieldKeys
		bindings := []key.Binding{fk.Commit, fk.Cancel, fk.Blur}
		if m.active.kind == regionContent {
			bindings = []key.Binding{fk.CommitMultiline, fk.Cancel, fk.Blur, fk.External}
		}
		parts = append(parts, h.ShortHelpView(bindings))
	} else {
		parts = append(parts, h.View(m.keys))
	}
	return strings.Join(parts, "\n")
}

// hitAt resolves a screen cell to a region, accounting for the header and the body's
// scroll offset.
func (m appModel) hitAt(x, y int) (region, bool) {
	if y < headerHeight {
		return hitTest(m.headerRegions(), x, y)
	}
	by := y - headerHeight
	if by >= m.body.Height {
		return region{}, false
	}
	_, regions, _ := m.layoutBody()
	return hitTest(regions, x, by+m.body.YOffset)
}

func (m appModel) View() string {
	w := m.pageWidth()
	body := normalizePane(m.body.View(), w, m.body.Height)
	return m.headerView() + "\n" + body + "\n" + m.footerView()
}

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and height
// lines tall, so hit regions computed from line indexes match the screen.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i, ln := range lines {
		w := xansi.StringWidth(ln)
		if w > width {
			switch {
			case width <= 0:
				ln = ""
			case width == 1:
				ln = xansi.Cut(ln, 0, 1)
			default:
				ln = xansi.Cut(ln, 0, width-1) + "…"
			}
			w = xansi.StringWidth(ln)
		}
		if w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}
