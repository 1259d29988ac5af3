package fs

import (
	"os"
	"path/filepath"

	"github.com/aretw0/jot/pkg/core"
)

// TempFilePrefix starts the name of every in-flight write.
// Temp names never carry the note extension, so List and the watcher skip them.
const TempFilePrefix = "jot-tmp-"

// writeFileAtomic replaces the note file at name with data by writing a
// sibling temp file and renaming it over the target. Readers see either the
// old body or the new one.
//
// Failures are reported as *core.IOError. Op names the step that failed and
// Path is always the target note.
func writeFileAtomic(name string, data []byte, perm os.FileMode) error {
	fail := func(op string, err error) error {
		return &core.IOError{Op: op, Path: name, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(name), TempFilePrefix+"*")
	if err != nil {
		return fail("create temp", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fail("sync", err)
	}
	if err := tmp.Close(); err != nil {
		return fail("close", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fail("chmod", err)
	}
	if err := os.Rename(tmpName, name); err != nil {
		return fail("rename", err)
	}

	committed = true
	return nil
}
