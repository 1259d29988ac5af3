package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/jot/pkg/core"
)

// WriteList prints one "<id>. <title>" line per note.
func WriteList(w io.Writer, notes []core.Note) {
	for _, n := range notes {
		fmt.Fprintf(w, "  %d. %s\n", n.ID, n.Title)
	}
}

// WriteNote prints a note framed by header and footer rules.
func WriteNote(w io.Writer, n core.Note) {
	fmt.Fprintf(w, "----- %s -----\n", n.Title)
	for _, line := range n.Body {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, "----- End -----")
}

// Describe turns expected user errors into a console message.
// ok is false for storage failures and anything unrecognized.
func Describe(err error) (msg string, ok bool) {
	switch {
	case errors.Is(err, core.ErrValidation):
		detail := strings.TrimPrefix(err.Error(), core.ErrValidation.Error()+": ")
		return sentence(detail), true
	case errors.Is(err, core.ErrNotFound), errors.Is(err, core.ErrInvalidID):
		return "No note found with that ID.", true
	}
	return "", false
}

func sentence(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	s = string(unicode.ToUpper(r)) + s[size:]
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
