package editor

import "sectionpad/internal/model"

// Command is a request emitted by a section component. The set is closed:
// Updated, Duplicated, Deleted and Selected.
type Command interface {
	command()
	// Name is a short stable label, used in logs.
	Name() string
}

type Updated struct{ Section model.Section }

type Duplicated struct{ ID string }

type Deleted struct{ ID string }

type Selected struct{ ID string }

func (Updated) command()    {}
func (Duplicated) command() {}
func (Deleted) command()    {}
func (Selected) command()   {}

func (Updated) Name() string    { return "updated" }
func (Duplicated) Name() string { return "duplicated" }
func (Deleted) Name() string    { return "deleted" }
func (Selected) Name() string   { return "selected" }

// TargetID returns the section id a command refers to.
func TargetID(c Command) string {
	switch c := c.(type) {
	case Updated:
		return c.Section.ID
	case Duplicated:
		return c.ID
	case Deleted:
		return c.ID
	case Selected:
		return c.ID
	default:
		return ""
	}
}
