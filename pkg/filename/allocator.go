package filename

// NextID returns one past the highest id among the note filenames, or 1.
//
// There is no persisted counter: the result depends only on the names given.
// Deleting the highest note frees its id for reuse, deleting any other does not.
func NextID(names []string) int {
	maxID := 0
	for _, name := range names {
		if !Matches(name) {
			continue
		}
		if id, ok := IDPrefix(name); ok && id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
