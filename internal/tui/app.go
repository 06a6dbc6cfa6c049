package tui

import (
	"io"
	"log/slog"
	"time"

	"sectionpad/internal/editor"
	"sectionpad/internal/model"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pagePlaceholder = "Enter page title..."

	defaultWidth  = 80
	defaultHeight = 24
	maxContentW   = 96
	minContentW   = 36
)

// Options configures a session.
type Options struct {
	Document      model.Document
	Theme         string
	Glyphs        string
	Mouse         bool
	ToastDuration time.Duration
	Logger        *slog.Logger
}

// editTarget names the field currently in Editing state. kind is regionNone when
// nothing is being edited.
type editTarget struct {
	kind      regionKind
	sectionID string
}

func (t editTarget) matches(r region) bool {
	return t.kind != regionNone && t.kind == r.kind && t.sectionID == r.sectionID
}

func fieldFor(kind regionKind) fieldKind {
	if kind == regionContent {
		return fieldContent
	}
	return fieldTitle
}

func targetFor(f fieldKind, id string) editTarget {
	if f == fieldContent {
		return editTarget{kind: regionContent, sectionID: id}
	}
	return editTarget{kind: regionTitle, sectionID: id}
}

type appModel struct {
	ed     *editor.Editor
	sink   *toastSink
	logger *slog.Logger

	width  int
	height int

	pageTitle inlineText
	items     []sectionItem
	cursor    int
	active    editTarget

	body           viewport.Model
	scrollToCursor bool

	toasts    toastModel
	keys      keyMap
	fieldKeys fieldKeyMap
	help      help.Model

	minibufferText string

	externalEditorPath   string
	externalEditorBefore string
	externalEditorTarget editTarget
}

func newAppModel(opts Options) (appModel, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	sink := &toastSink{}
	ed, err := editor.New(opts.Document,
		editor.WithNotifier(sink),
		editor.WithObserver(func(c editor.Command) {
			logger.Debug("apply", "command", c.Name(), "section", editor.TargetID(c))
		}),
	)
	if err != nil {
		return appModel{}, err
	}

	m := appModel{
		ed:     ed,
		sink:   sink,
		logger: logger,
		width:  defaultWidth,
		height: defaultHeight,
		toasts: newToastModel(opts.ToastDuration),
		keys:      defaultKeyMap(),
		fieldKeys: defaultFieldKeyMap(),
		help:      help.New(),
		body:      viewport.New(defaultWidth, defaultHeight),
	}
	m.pageTitle = newInlineText(ed.Title(), pagePlaceholder, false)
	m.syncItems()
	m.refresh()
	return m, nil
}

// Document returns the editor's current page.
func (m appModel) Document() model.Document { return m.ed.Document() }

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrollToCursor = true

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m, cmd = m.handleMouse(msg)

	case tea.BlurMsg:
		// Terminal lost focus: same as the field losing focus. An open $EDITOR
		// owns the terminal, so its focus changes don't count.
		if m.externalEditorPath == "" {
			m, cmd = m.blurActive()
		}

	case externalEditorDoneMsg:
		m.applyExternalEditorResult(msg)

	case toastDoneMsg:
		m.toasts = m.toasts.dismiss(msg.seq)

	default:
		// Cursor blink and other widget-internal messages.
		if m.active.kind != regionNone {
			m, cmd = m.updateActive(msg)
		}
	}
	m.refresh()
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m, cmd := m.blurActive()
		return m, tea.Sequence(cmd, tea.Quit)
	}
	if m.active.kind == regionContent && key.Matches(msg, m.fieldKeys.External) {
		cmd, err := m.openExternalEditor()
		if err != nil {
			m.showMinibuffer("Editor failed: " + err.Error())
		}
		return m, cmd
	}
	if m.active.kind != regionNone {
		return m.updateActive(msg)
	}

	m.minibufferText = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.scrollToCursor = true

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		m.scrollToCursor = true

	case key.Matches(msg, m.keys.Toggle):
		it, c := m.items[m.cursor].activate()
		m.items[m.cursor] = it
		m.scrollToCursor = true
		return m.apply(c)

	case key.Matches(msg, m.keys.EditTitle):
		return m.beginSectionEdit(m.cursor, fieldTitle)

	case key.Matches(msg, m.keys.EditContent):
		if !m.items[m.cursor].open {
			m.showMinibuffer("Open the section first (enter)")
			return m, nil
		}
		return m.beginSectionEdit(m.cursor, fieldContent)

	case key.Matches(msg, m.keys.EditPageTitle):
		return m.beginPageTitleEdit()

	case key.Matches(msg, m.keys.Add):
		return m.add()

	case key.Matches(msg, m.keys.Duplicate):
		id, ok := m.ed.SelectedID()
		if !ok {
			m.showMinibuffer("Select a section first (enter)")
			return m, nil
		}
		return m.apply(editor.Duplicated{ID: id})

	case key.Matches(msg, m.keys.Delete):
		id, ok := m.ed.SelectedID()
		if !ok {
			m.showMinibuffer("Select a section first (enter)")
			return m, nil
		}
		return m.apply(editor.Deleted{ID: id})

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m appModel) handleMouse(msg tea.MouseMsg) (appModel, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	// Resolve the target against the layout the user is looking at, before a blur
	// commit has a chance to reflow it.
	r, ok := m.hitAt(msg.X, msg.Y)
	if ok && m.active.matches(r) {
		return m, nil
	}
	m, blurCmd := m.blurActive()
	if !ok {
		return m, blurCmd
	}
	m, cmd := m.click(r)
	return m, tea.Batch(blurCmd, cmd)
}

// click dispatches a resolved region. Section regions go to the owning item, which
// decides whether the click is consumed by a field/button or reaches the header.
func (m appModel) click(r region) (appModel, tea.Cmd) {
	switch r.kind {
	case regionPageTitle:
		return m.beginPageTitleEdit()
	case regionAdd:
		return m.add()
	}

	idx := m.indexOf(r.sectionID)
	if idx < 0 {
		return m, nil
	}
	m.cursor = idx
	it, c, cmd := m.items[idx].click(r.kind)
	m.items[idx] = it
	if f, editing := it.editing(); editing {
		m.active = targetFor(f, it.id())
	}
	if c == nil {
		return m, cmd
	}
	m, applyCmd := m.apply(c)
	return m, tea.Batch(cmd, applyCmd)
}

func (m appModel) beginSectionEdit(idx int, f fieldKind) (appModel, tea.Cmd) {
	if idx < 0 || idx >= len(m.items) {
		return m, nil
	}
	it, cmd := m.items[idx].beginEdit(f)
	m.items[idx] = it
	if it.field(f).Editing() {
		m.active = targetFor(f, it.id())
		m.scrollToCursor = true
	}
	return m, cmd
}

func (m appModel) beginPageTitleEdit() (appModel, tea.Cmd) {
	var cmd tea.Cmd
	m.pageTitle, cmd = m.pageTitle.begin()
	m.active = editTarget{kind: regionPageTitle}
	return m, cmd
}

// updateActive feeds msg to the field being edited.
func (m appModel) updateActive(msg tea.Msg) (appModel, tea.Cmd) {
	switch m.active.kind {
	case regionPageTitle:
		t, res, cmd := m.pageTitle.update(msg)
		m.pageTitle = t
		if res != editNone {
			m.active = editTarget{}
		}
		if res == editCommitted {
			m.setTitle(t.Value())
		}
		return m, cmd

	case regionTitle, regionContent:
		idx := m.indexOf(m.active.sectionID)
		if idx < 0 {
			m.active = editTarget{}
			return m, nil
		}
		f := fieldFor(m.active.kind)
		it, c, cmd := m.items[idx].updateField(f, msg)
		m.items[idx] = it
		if !it.field(f).Editing() {
			m.active = editTarget{}
		}
		if c == nil {
			return m, cmd
		}
		m, applyCmd := m.apply(c)
		return m, tea.Batch(cmd, applyCmd)
	}
	return m, nil
}

// blurActive commits whatever field is being edited, as on focus loss.
func (m appModel) blurActive() (appModel, tea.Cmd) {
	target := m.active
	m.active = editTarget{}
	switch target.kind {
	case regionPageTitle:
		t, res := m.pageTitle.commit()
		m.pageTitle = t
		if res == editCommitted {
			m.setTitle(t.Value())
		}
	case regionTitle, regionContent:
		idx := m.indexOf(target.sectionID)
		if idx < 0 {
			return m, nil
		}
		it, c := m.items[idx].blurField(fieldFor(target.kind))
		m.items[idx] = it
		if c != nil {
			return m.apply(c)
		}
	}
	return m, nil
}

func (m *appModel) setTitle(v string) {
	m.ed.SetTitle(v)
	m.logger.Debug("set title", "len", len(v))
}

func (m appModel) add() (appModel, tea.Cmd) {
	s := m.ed.Add()
	m.logger.Debug("add", "section", s.ID)
	m.cursorToSelection()
	return m.afterMutation()
}

func (m appModel) apply(c editor.Command) (appModel, tea.Cmd) {
	m.ed.Apply(c)
	if _, ok := c.(editor.Duplicated); ok {
		m.cursorToSelection()
	}
	return m.afterMutation()
}

// afterMutation re-syncs the section items with the editor and turns pending
// notifications into toasts.
func (m appModel) afterMutation() (appModel, tea.Cmd) {
	m.syncItems()
	var cmds []tea.Cmd
	for _, n := range m.sink.drain() {
		m.logger.Debug("notify", "title", n.Title, "variant", string(n.Variant))
		var cmd tea.Cmd
		m.toasts, cmd = m.toasts.push(n)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// syncItems rebuilds the item list in editor order, keeping each surviving item's
// local state (expansion, edit buffers).
func (m *appModel) syncItems() {
	w := m.pageWidth()
	prev := make(map[string]sectionItem, len(m.items))
	for _, it := range m.items {
		prev[it.id()] = it
	}
	secs := m.ed.Sections()
	items := make([]sectionItem, 0, len(secs))
	for _, s := range secs {
		if it, ok := prev[s.ID]; ok {
			items = append(items, it.sync(s))
			continue
		}
		items = append(items, newSectionItem(s, w))
	}
	m.items = items
	m.pageTitle = m.pageTitle.withValue(m.ed.Title())

	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.active.sectionID != "" && m.indexOf(m.active.sectionID) < 0 {
		m.active = editTarget{}
	}
}

func (m *appModel) cursorToSelection() {
	id, ok := m.ed.SelectedID()
	if !ok {
		return
	}
	for i, s := range m.ed.Sections() {
		if s.ID == id {
			m.cursor = i
			m.scrollToCursor = true
			return
		}
	}
}

func (m appModel) indexOf(id string) int {
	for i := range m.items {
		if m.items[i].id() == id {
			return i
		}
	}
	return -1
}

func (m *appModel) showMinibuffer(s string) {
	m.minibufferText = s
}
