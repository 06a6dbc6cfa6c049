package tui

import (
	"strings"

	"sectionpad/internal/editor"
	"sectionpad/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	titlePlaceholder   = "Enter section title..."
	contentPlaceholder = "Enter section content..."

	// Header layout: bar, space, twisty, space, then the title field.
	headerTitleX = 4
	// Body content is indented under the title.
	bodyContentX = 6
)

type fieldKind int

const (
	fieldTitle fieldKind = iota
	fieldContent
)

// sectionItem renders one section and owns its local UI state: whether the body is
// expanded and the two inline fields. The section data itself belongs to the editor.
type sectionItem struct {
	data    model.Section
	open    bool
	width   int
	title   inlineText
	content inlineText
}

func newSectionItem(s model.Section, width int) sectionItem {
	it := sectionItem{
		data:    s,
		title:   newInlineText(s.Title, titlePlaceholder, false),
		content: newInlineText(s.Content, contentPlaceholder, true),
	}
	return it.withWidth(width)
}

func (it sectionItem) id() string { return it.data.ID }

// sync applies the editor's copy of the section.
func (it sectionItem) sync(s model.Section) sectionItem {
	it.data = s
	it.title = it.title.withValue(s.Title)
	it.content = it.content.withValue(s.Content)
	return it
}

func (it sectionItem) withWidth(w int) sectionItem {
	it.width = w
	it.title = it.title.withWidth(w - headerTitleX - actionsWidth() - 1)
	it.content = it.content.withWidth(w - bodyContentX - 1)
	return it
}

func (it sectionItem) field(f fieldKind) inlineText {
	if f == fieldContent {
		return it.content
	}
	return it.title
}

func (it sectionItem) setField(f fieldKind, t inlineText) sectionItem {
	if f == fieldContent {
		it.content = t
	} else {
		it.title = t
	}
	return it
}

// editing reports which field, if any, is in Editing state.
func (it sectionItem) editing() (fieldKind, bool) {
	if it.title.Editing() {
		return fieldTitle, true
	}
	if it.content.Editing() {
		return fieldContent, true
	}
	return 0, false
}

// activate is the header gesture: it flips expansion and asks for selection.
func (it sectionItem) activate() (sectionItem, editor.Command) {
	it.open = !it.open
	return it, editor.Selected{ID: it.id()}
}

func (it sectionItem) beginEdit(f fieldKind) (sectionItem, tea.Cmd) {
	if f == fieldContent && !it.open {
		return it, nil
	}
	t, cmd := it.field(f).begin()
	return it.setField(f, t), cmd
}

// updateField forwards msg to the field being edited and turns a commit into an
// Updated command.
func (it sectionItem) updateField(f fieldKind, msg tea.Msg) (sectionItem, editor.Command, tea.Cmd) {
	t, res, cmd := it.field(f).update(msg)
	it = it.setField(f, t)
	if res != editCommitted {
		return it, nil, cmd
	}
	return it, it.updated(f, t.Value()), cmd
}

// blurField commits an in-progress edit, as when focus moves elsewhere.
func (it sectionItem) blurField(f fieldKind) (sectionItem, editor.Command) {
	t, res := it.field(f).commit()
	it = it.setField(f, t)
	if res != editCommitted {
		return it, nil
	}
	return it, it.updated(f, t.Value())
}

func (it sectionItem) updated(f fieldKind, v string) editor.Command {
	s := it.data
	if f == fieldContent {
		s.Content = v
	} else {
		s.Title = v
	}
	return editor.Updated{Section: s}
}

// click handles a click already resolved to one of this item's regions. Field and
// button regions consume the click; only bare chrome selects or toggles.
func (it sectionItem) click(kind regionKind) (sectionItem, editor.Command, tea.Cmd) {
	switch kind {
	case regionTitle:
		next, cmd := it.beginEdit(fieldTitle)
		return next, nil, cmd
	case regionContent:
		next, cmd := it.beginEdit(fieldContent)
		return next, nil, cmd
	case regionDuplicate:
		return it, editor.Duplicated{ID: it.id()}, nil
	case regionDelete:
		return it, editor.Deleted{ID: it.id()}, nil
	case regionHeader:
		next, c := it.activate()
		return next, c, nil
	case regionBody:
		return it, editor.Selected{ID: it.id()}, nil
	default:
		return it, nil, nil
	}
}

func actionButtons() (dup, del string) {
	return styleButton(false).Render(glyphCopy()), styleButton(false).Render(glyphTrash())
}

// actionsWidth is the room reserved at the right edge of every header, so the
// title doesn't reflow when selection reveals the buttons.
func actionsWidth() int {
	dup, del := actionButtons()
	return xansi.StringWidth(dup) + 1 + xansi.StringWidth(del)
}

// render returns the item's lines and its regions, with y relative to the item's
// first line. Child regions precede the chrome regions.
func (it sectionItem) render(selected, cursor bool) ([]string, []region) {
	w := it.width
	id := it.id()

	barSt := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	bar := " "
	switch {
	case selected:
		bar = barSt.Render(glyphSelectedBar())
	case cursor:
		bar = barSt.Render(glyphCursor())
	}

	twisty := glyphTwistyCollapsed()
	if it.open {
		twisty = glyphTwistyExpanded()
	}

	titleLines := it.title.lines(lipgloss.NewStyle().Bold(true))
	titleW := it.title.width

	var actions string
	var regions []region
	actW := actionsWidth()
	if selected {
		dup, del := actionButtons()
		actions = dup + " " + del
		dupX := w - actW
		delX := dupX + xansi.StringWidth(dup) + 1
		regions = append(regions,
			region{kind: regionDuplicate, sectionID: id, x0: dupX, y0: 0, x1: delX - 1, y1: 1},
			region{kind: regionDelete, sectionID: id, x0: delX, y0: 0, x1: w, y1: 1},
		)
	}
	regions = append(regions, region{kind: regionTitle, sectionID: id, x0: headerTitleX, y0: 0, x1: headerTitleX + titleW, y1: 1})

	gap := w - headerTitleX - titleW - actW
	if gap < 0 {
		gap = 0
	}
	header := bar + " " + styleMuted().Render(twisty) + " " + titleLines[0] + strings.Repeat(" ", gap) + fitWidth(actions, actW)
	if selected {
		header = lipgloss.NewStyle().Background(colorSelectedBg).Render(header)
	}
	lines := []string{header}

	if it.open {
		contentLines := it.content.lines(styleMuted())
		bodyBar := " "
		if selected {
			bodyBar = barSt.Render(glyphSelectedBar())
		}
		indent := bodyBar + strings.Repeat(" ", bodyContentX-1)
		top := len(lines)
		for _, ln := range contentLines {
			lines = append(lines, indent+ln)
		}
		regions = append(regions, region{
			kind: regionContent, sectionID: id,
			x0: bodyContentX, y0: top, x1: bodyContentX + it.content.width, y1: top + len(contentLines),
		})
		// Bottom padding of the body.
		lines = append(lines, bodyBar)
		regions = append(regions, region{kind: regionBody, sectionID: id, x0: 0, y0: 1, x1: w, y1: len(lines)})
	}

	// Header chrome last: anything not claimed above toggles and selects.
	regions = append(regions, region{kind: regionHeader, sectionID: id, x0: 0, y0: 0, x1: w, y1: 1})
	return lines, regions
}

// lineCount is len(lines) from render without rendering.
func (it sectionItem) lineCount() int {
	if !it.open {
		return 1
	}
	return 1 + it.content.height() + 1
}
