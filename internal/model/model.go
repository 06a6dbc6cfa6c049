package model

// Section is one titled, collapsible block of editable text.
type Section struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Document is a snapshot of the whole page: its title plus the ordered sections.
type Document struct {
	Title    string    `json:"title" yaml:"title"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Clone returns a copy that shares no slice storage with d.
func (d Document) Clone() Document {
	out := Document{Title: d.Title}
	if d.Sections != nil {
		out.Sections = append([]Section(nil), d.Sections...)
	}
	return out
}
