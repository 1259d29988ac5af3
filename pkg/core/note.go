package core

// Note is the central entity of the domain.
// It is a short text note addressed by a numeric ID.
//
// The Title is the decoded form of the on-disk name and is lossy: it is
// whatever survives sanitization, with underscores shown as spaces.
type Note struct {
	ID       int      `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Body     []string `json:"body,omitempty" yaml:"body,omitempty"`
	Filename string   `json:"filename" yaml:"filename"`
}
