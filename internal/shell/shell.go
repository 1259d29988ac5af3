// Package shell implements the interactive menu over a jot service.
//
// All console state lives in the Shell value: the input stream is passed in
// explicitly and the core service never sees it.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/jot/pkg/core"
)

// Terminator ends multi-line input when entered alone on a line.
const Terminator = "."

// DoneWord ends the create loop when entered as a title.
const DoneWord = "done"

// Shell is a menu-driven console session.
type Shell struct {
	svc   *core.Service
	in    *bufio.Scanner
	out   io.Writer
	err   io.Writer
	quiet bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithQuiet prints the menu once instead of before every command.
// Useful when input is piped rather than typed.
func WithQuiet(quiet bool) Option {
	return func(s *Shell) {
		s.quiet = quiet
	}
}

// WithErrorOutput sends failure reports to w instead of the main output.
func WithErrorOutput(w io.Writer) Option {
	return func(s *Shell) {
		s.err = w
	}
}

// New creates a Shell reading commands from in and writing to out.
func New(svc *core.Service, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
		err: out,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until the user exits, input ends or ctx is cancelled.
// Errors from individual commands are reported and never end the loop.
func (s *Shell) Run(ctx context.Context) error {
	if s.quiet {
		s.printMenu()
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.quiet {
			s.printMenu()
		}

		choice, ok := s.prompt("Choose an option")
		if !ok {
			return s.in.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.createNotes(ctx)
		case "2":
			s.viewNote(ctx)
		case "3":
			s.editNote(ctx)
		case "4":
			s.deleteNote(ctx)
		case "5":
			s.searchNotes(ctx)
		case "6":
			s.deleteAllNotes(ctx)
		case "7":
			s.listNotes(ctx)
		case "0":
			fmt.Fprintln(s.out, "Exiting...!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
		}
		fmt.Fprintln(s.out)
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, "===== Notes Manager =====")
	fmt.Fprintln(s.out, "1. Create new notes")
	fmt.Fprintln(s.out, "2. View a note (by ID)")
	fmt.Fprintln(s.out, "3. Edit a note (by ID)")
	fmt.Fprintln(s.out, "4. Delete a note (by ID)")
	fmt.Fprintln(s.out, "5. Search notes")
	fmt.Fprintln(s.out, "6. Delete ALL notes")
	fmt.Fprintln(s.out, "7. List notes")
	fmt.Fprintln(s.out, "0. Exit")
}

// prompt prints message and reads one line. ok is false at end of input.
func (s *Shell) prompt(message string) (string, bool) {
	fmt.Fprintf(s.out, "%s: ", message)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return s.in.Text(), true
}

// readLines collects lines until the terminator or end of input.
func (s *Shell) readLines() []string {
	var lines []string
	for s.in.Scan() {
		line := s.in.Text()
		if line == Terminator {
			break
		}
		lines = append(lines, line)
	}
	return lines
}

func (s *Shell) confirm(message string) bool {
	resp, ok := s.prompt(message + " (y/n)")
	if ok && strings.EqualFold(strings.TrimSpace(resp), "y") {
		return true
	}
	fmt.Fprintln(s.out, "Cancelled.")
	return false
}

func (s *Shell) createNotes(ctx context.Context) {
	fmt.Fprintf(s.out, "Enter multiple notes. Type '%s' as the title to stop.\n", DoneWord)
	for {
		title, ok := s.prompt(fmt.Sprintf("Enter note title (or '%s' to finish)", DoneWord))
		if !ok {
			return
		}
		title = strings.TrimSpace(title)
		if strings.EqualFold(title, DoneWord) {
			fmt.Fprintln(s.out, "Finished adding notes.")
			return
		}
		if title == "" {
			fmt.Fprintln(s.out, "Title cannot be empty.")
			continue
		}

		fmt.Fprintf(s.out, "Enter note content. End input with a single '%s' on a new line.\n", Terminator)
		body := s.readLines()

		n, err := s.svc.CreateNote(ctx, title, body)
		if err != nil {
			s.report("Failed to save note", err)
			continue
		}
		fmt.Fprintf(s.out, "Saved note: %s\n", n.Filename)
	}
}

func (s *Shell) listNotes(ctx context.Context) {
	notes, err := s.svc.ListNotes(ctx)
	if err != nil {
		s.report("Failed to list notes", err)
		return
	}
	if len(notes) == 0 {
		fmt.Fprintln(s.out, "No notes found.")
		return
	}
	fmt.Fprintln(s.out, "Notes:")
	WriteList(s.out, notes)
}

// chooseNote lists the notes, asks for an ID and loads that note.
func (s *Shell) chooseNote(ctx context.Context, action string) (core.Note, bool) {
	s.listNotes(ctx)

	input, ok := s.prompt("Enter note ID to " + action)
	if !ok {
		return core.Note{}, false
	}

	id, err := core.ParseID(input)
	if err != nil {
		s.report("Invalid ID", err)
		return core.Note{}, false
	}

	n, err := s.svc.GetNote(ctx, id)
	if err != nil {
		s.report("Failed to read note", err)
		return core.Note{}, false
	}
	return n, true
}

func (s *Shell) viewNote(ctx context.Context) {
	n, ok := s.chooseNote(ctx, "view")
	if !ok {
		return
	}
	WriteNote(s.out, n)
}

func (s *Shell) editNote(ctx context.Context) {
	n, ok := s.chooseNote(ctx, "edit")
	if !ok {
		return
	}

	fmt.Fprintf(s.out, "Enter new content for the note. End input with a single '%s' on a new line.\n", Terminator)
	body := s.readLines()

	updated, err := s.svc.UpdateNote(ctx, n.ID, body)
	if err != nil {
		s.report("Failed to update note", err)
		return
	}
	fmt.Fprintf(s.out, "Note updated: %s\n", updated.Filename)
}

func (s *Shell) deleteNote(ctx context.Context) {
	n, ok := s.chooseNote(ctx, "delete")
	if !ok {
		return
	}
	if !s.confirm(fmt.Sprintf("Are you sure you want to delete '%s'?", n.Title)) {
		return
	}

	if err := s.svc.DeleteNote(ctx, n.ID); err != nil {
		s.report("Failed to delete note", err)
		return
	}
	fmt.Fprintln(s.out, "Deleted.")
}

func (s *Shell) searchNotes(ctx context.Context) {
	keyword, ok := s.prompt("Enter search keyword")
	if !ok {
		return
	}

	matches, err := s.svc.SearchNotes(ctx, keyword)
	if err != nil {
		s.report("Search failed", err)
		return
	}
	if len(matches) == 0 {
		fmt.Fprintf(s.out, "No matches found for '%s'.\n", strings.TrimSpace(keyword))
		return
	}
	fmt.Fprintln(s.out, "Matches:")
	WriteList(s.out, matches)
}

func (s *Shell) deleteAllNotes(ctx context.Context) {
	if !s.confirm("Are you sure you want to delete ALL notes?") {
		return
	}

	count, err := s.svc.DeleteAllNotes(ctx)
	if err != nil {
		s.report("Failed to delete all notes", err)
		return
	}
	if count == 0 {
		fmt.Fprintln(s.out, "No notes to delete.")
		return
	}
	fmt.Fprintf(s.out, "All notes deleted successfully! (%d)\n", count)
}

// report prints a user-facing message for err.
// Unknown and unparseable IDs read the same to the user.
func (s *Shell) report(action string, err error) {
	if msg, ok := Describe(err); ok {
		fmt.Fprintln(s.out, msg)
		return
	}
	fmt.Fprintf(s.err, "%s: %v\n", action, err)
}
