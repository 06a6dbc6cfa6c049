// Package editor holds the page state: the title, the ordered section list and the
// current selection. All operations are synchronous and total; invalid input is a
// silent no-op except for deleting the last section, which is rejected with a
// destructive notification.
package editor

import (
	"sectionpad/internal/model"
)

const (
	copySuffix = " (Copy)"

	DefaultSectionTitle   = "New Section"
	DefaultSectionContent = "Enter your content here..."
)

type Option func(*Editor)

// WithNotifier routes notifications to n.
func WithNotifier(n Notifier) Option {
	return func(e *Editor) {
		if n != nil {
			e.notifier = n
		}
	}
}

// WithIDGenerator overrides the id source (tests use a deterministic one).
func WithIDGenerator(g *IDGenerator) Option {
	return func(e *Editor) {
		if g != nil {
			e.ids = g
		}
	}
}

// WithObserver registers fn to be called after every command applied through Apply.
func WithObserver(fn func(Command)) Option {
	return func(e *Editor) {
		if fn != nil {
			e.observers = append(e.observers, fn)
		}
	}
}

type Editor struct {
	title      string
	sections   []model.Section
	selectedID string

	// used holds every id seen this session so generated ids are never reused,
	// even after the section that carried them was deleted.
	used map[string]struct{}

	ids       *IDGenerator
	notifier  Notifier
	observers []func(Command)
}

// New validates doc and returns an editor seeded with a copy of it.
func New(doc model.Document, opts ...Option) (*Editor, error) {
	if len(doc.Sections) == 0 {
		return nil, ErrNoSections
	}
	e := &Editor{
		title:    doc.Title,
		sections: make([]model.Section, 0, len(doc.Sections)),
		used:     map[string]struct{}{},
		ids:      NewIDGenerator("sec"),
		notifier: discardNotifier{},
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, s := range doc.Sections {
		if s.ID == "" {
			return nil, ErrEmptyID
		}
		if _, ok := e.used[s.ID]; ok {
			return nil, DuplicateIDError{ID: s.ID}
		}
		e.used[s.ID] = struct{}{}
		e.sections = append(e.sections, s)
	}
	return e, nil
}

func (e *Editor) Title() string { return e.title }

func (e *Editor) SetTitle(value string) { e.title = value }

// Sections returns a copy of the ordered section list.
func (e *Editor) Sections() []model.Section {
	return append([]model.Section(nil), e.sections...)
}

func (e *Editor) Len() int { return len(e.sections) }

func (e *Editor) Section(id string) (model.Section, bool) {
	if i := e.indexOf(id); i >= 0 {
		return e.sections[i], true
	}
	return model.Section{}, false
}

// SelectedID returns the selected section id, if any.
func (e *Editor) SelectedID() (string, bool) {
	return e.selectedID, e.selectedID != ""
}

func (e *Editor) IsSelected(id string) bool {
	return id != "" && e.selectedID == id
}

func (e *Editor) Document() model.Document {
	return model.Document{Title: e.title, Sections: e.Sections()}
}

// Update replaces the section carrying s.ID. Unknown ids are ignored.
func (e *Editor) Update(s model.Section) {
	if i := e.indexOf(s.ID); i >= 0 {
		e.sections[i] = s
	}
}

// Duplicate inserts a copy of the section right after it and selects the copy.
func (e *Editor) Duplicate(id string) (model.Section, bool) {
	i := e.indexOf(id)
	if i < 0 {
		return model.Section{}, false
	}
	src := e.sections[i]
	cp := model.Section{
		ID:      e.newID(),
		Title:   src.Title + copySuffix,
		Content: src.Content,
	}
	e.sections = append(e.sections, model.Section{})
	copy(e.sections[i+2:], e.sections[i+1:])
	e.sections[i+1] = cp
	e.selectedID = cp.ID
	e.notifier.Notify(notifyDuplicated)
	return cp, true
}

// Delete removes the section with id. The last remaining section can't be removed.
func (e *Editor) Delete(id string) bool {
	if len(e.sections) <= 1 {
		e.notifier.Notify(notifyCannotDelete)
		return false
	}
	i := e.indexOf(id)
	if i < 0 {
		// Nothing was removed, so no notification.
		return false
	}
	e.sections = append(e.sections[:i], e.sections[i+1:]...)
	if e.selectedID == id {
		e.selectedID = ""
	}
	e.notifier.Notify(notifyDeleted)
	return true
}

// Add appends a placeholder section and selects it.
func (e *Editor) Add() model.Section {
	s := model.Section{
		ID:      e.newID(),
		Title:   DefaultSectionTitle,
		Content: DefaultSectionContent,
	}
	e.sections = append(e.sections, s)
	e.selectedID = s.ID
	e.notifier.Notify(notifyAdded)
	return s
}

// Select toggles selection: selecting the selected section clears it,
// selecting any other section replaces it. Unknown ids are ignored.
func (e *Editor) Select(id string) {
	if e.indexOf(id) < 0 {
		return
	}
	if e.selectedID == id {
		e.selectedID = ""
		return
	}
	e.selectedID = id
}

// Apply dispatches a section command to the matching operation.
func (e *Editor) Apply(c Command) {
	switch c := c.(type) {
	case Updated:
		e.Update(c.Section)
	case Duplicated:
		e.Duplicate(c.ID)
	case Deleted:
		e.Delete(c.ID)
	case Selected:
		e.Select(c.ID)
	default:
		return
	}
	for _, fn := range e.observers {
		fn(c)
	}
}

func (e *Editor) indexOf(id string) int {
	for i := range e.sections {
		if e.sections[i].ID == id {
			return i
		}
	}
	return -1
}

func (e *Editor) newID() string {
	for {
		id := e.ids.Next()
		if _, ok := e.used[id]; ok {
			continue
		}
		e.used[id] = struct{}{}
		return id
	}
}
