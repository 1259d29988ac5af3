package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Service handles the business logic for notes.
// It validates input before any storage access and delegates persistence
// to the Repository.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new Service. A nil logger discards output.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, logger: logger}
}

// Repository returns the underlying storage adapter.
func (s *Service) Repository() Repository {
	return s.repo
}

// ListNotes returns all notes without their bodies.
func (s *Service) ListNotes(ctx context.Context) ([]Note, error) {
	return s.repo.List(ctx)
}

// CreateNote stores a new note under a freshly allocated ID.
func (s *Service) CreateNote(ctx context.Context, title string, body []string) (Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Note{}, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}

	n, err := s.repo.Create(ctx, title, body)
	if err != nil {
		return Note{}, err
	}
	s.logger.Debug("note created", "id", n.ID, "file", n.Filename)
	return n, nil
}

// GetNote retrieves a note and its body.
func (s *Service) GetNote(ctx context.Context, id int) (Note, error) {
	if id <= 0 {
		return Note{}, ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

// UpdateNote replaces the body of a note.
func (s *Service) UpdateNote(ctx context.Context, id int, body []string) (Note, error) {
	if id <= 0 {
		return Note{}, ErrInvalidID
	}
	n, err := s.repo.Update(ctx, id, body)
	if err != nil {
		return Note{}, err
	}
	s.logger.Debug("note updated", "id", n.ID, "lines", len(body))
	return n, nil
}

// DeleteNote removes a note.
func (s *Service) DeleteNote(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Debug("note deleted", "id", id)
	return nil
}

// DeleteAllNotes removes every note and reports how many existed.
func (s *Service) DeleteAllNotes(ctx context.Context) (int, error) {
	count, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return count, err
	}
	s.logger.Debug("all notes deleted", "count", count)
	return count, nil
}

// SearchNotes returns the notes whose title or body contains keyword,
// ignoring case. Results keep the repository listing order.
func (s *Service) SearchNotes(ctx context.Context, keyword string) ([]Note, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword cannot be empty", ErrValidation)
	}

	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	m := NewMatcher(keyword)
	var matches []Note
	for _, listed := range notes {
		if m.MatchTitle(listed.Title) {
			matches = append(matches, listed)
			continue
		}
		n, err := s.repo.Read(ctx, listed)
		if err != nil {
			return nil, err
		}
		if m.MatchBody(n.Body) {
			matches = append(matches, listed)
		}
	}

	s.logger.Debug("search finished", "keyword", keyword, "scanned", len(notes), "matches", len(matches))
	return matches, nil
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx, pattern)
}

// ParseID converts user input into a note ID.
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}
