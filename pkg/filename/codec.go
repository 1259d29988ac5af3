// Package filename maps between a note's (id, title) pair and its on-disk name.
//
// A note file is named "<id>_<title>.txt". The mapping is deliberately lossy:
// reserved path characters and whitespace runs become "_" on the way in, and
// every "_" becomes a space on the way out.
package filename

import (
	"regexp"
	"strconv"
	"strings"
)

// Extension is the suffix carried by every note file.
const Extension = ".txt"

// Separator splits the id prefix from the title.
const Separator = "_"

var (
	reservedChars = regexp.MustCompile(`[\\/:*?"<>|]`)
	// \s in RE2 omits vertical tab.
	whitespaceRun = regexp.MustCompile(`[\s\v]+`)
)

// Sanitize makes a title safe to embed in a filename.
// Reserved characters are replaced with "_" and whitespace runs collapse to a
// single "_". The result is trimmed of surrounding whitespace.
func Sanitize(title string) string {
	s := reservedChars.ReplaceAllString(title, Separator)
	s = whitespaceRun.ReplaceAllString(s, Separator)
	return strings.TrimSpace(s)
}

// Encode builds the filename for a note.
func Encode(id int, title string) string {
	return strconv.Itoa(id) + Separator + Sanitize(title) + Extension
}

// Decode recovers a display title from a filename.
// The id prefix (if any) and extension are dropped and underscores become spaces.
// It is not the inverse of Encode.
func Decode(name string) string {
	name = strings.TrimSuffix(name, Extension)
	if _, ok := IDPrefix(name); ok {
		name = name[strings.Index(name, Separator)+1:]
	}
	return strings.ReplaceAll(name, Separator, " ")
}

// Matches reports whether name looks like a note file.
func Matches(name string) bool {
	return strings.HasSuffix(name, Extension)
}

// IDPrefix parses the positive integer before the first separator.
func IDPrefix(name string) (int, bool) {
	idx := strings.Index(name, Separator)
	if idx <= 0 {
		return 0, false
	}
	prefix := name[:idx]
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(prefix)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
