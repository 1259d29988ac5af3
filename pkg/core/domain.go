package core

// EventType represents the type of change observed in the notes directory.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a single note file.
type Event struct {
	Type      EventType
	ID        int
	Title     string
	Filename  string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return string(e.Type) + " " + e.Filename
}
