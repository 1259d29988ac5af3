// Package jot is the Composition Root for the jot note store.
//
// It connects the core business logic (pkg/core) with the filesystem adapter
// (pkg/adapters/fs) and exposes a small functional-options API.
//
// Notes live as plain text files in a single directory, one file per note,
// named "<id>_<title>.txt". The filename is the only index: IDs are derived by
// scanning the directory (highest ID plus one) and titles are decoded from the
// name. Nothing is cached between calls.
//
// Usage:
//
//	svc, err := jot.New("./notes", jot.WithLogger(logger))
//
//	n, err := svc.CreateNote(ctx, "Groceries", []string{"eggs", "milk"})
//	matches, err := svc.SearchNotes(ctx, "milk")
package jot
