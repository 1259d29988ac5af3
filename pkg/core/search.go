package core

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matcher tests notes for a case-insensitive substring.
type Matcher struct {
	fold    cases.Caser
	keyword string
}

// NewMatcher prepares a Matcher for keyword.
func NewMatcher(keyword string) *Matcher {
	fold := cases.Fold()
	return &Matcher{fold: fold, keyword: fold.String(keyword)}
}

// MatchTitle reports whether title contains the keyword.
func (m *Matcher) MatchTitle(title string) bool {
	return strings.Contains(m.fold.String(title), m.keyword)
}

// MatchBody reports whether any line contains the keyword.
func (m *Matcher) MatchBody(lines []string) bool {
	for _, line := range lines {
		if strings.Contains(m.fold.String(line), m.keyword) {
			return true
		}
	}
	return false
}

// Match reports whether the note's title or any body line contains keyword,
// ignoring case.
func Match(n Note, keyword string) bool {
	m := NewMatcher(keyword)
	return m.MatchTitle(n.Title) || m.MatchBody(n.Body)
}
