package editor

// Variant is the severity of a notification.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient user-facing message emitted by an editor operation.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier presents notifications. The editor never waits on it.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

type discardNotifier struct{}

func (discardNotifier) Notify(Notification) {}

var (
	notifyDuplicated = Notification{
		Title:       "Section duplicated",
		Description: "The section has been successfully duplicated.",
		Variant:     VariantDefault,
	}
	notifyDeleted = Notification{
		Title:       "Section deleted",
		Description: "The section has been successfully removed.",
		Variant:     VariantDefault,
	}
	notifyCannotDelete = Notification{
		Title:       "Cannot delete",
		Description: "You must have at least one section.",
		Variant:     VariantDestructive,
	}
	notifyAdded = Notification{
		Title:       "Section added",
		Description: "A new section has been created.",
		Variant:     VariantDefault,
	}
)
