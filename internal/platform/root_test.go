package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConfig(t *testing.T) {
	// /tmp/
	//   project/ (.jot.yaml)
	//     subdir/
	//       nested/
	//   empty/
	baseDir := t.TempDir()
	projectDir := filepath.Join(baseDir, "project")
	subDir := filepath.Join(projectDir, "subdir")
	nestedDir := filepath.Join(subDir, "nested")
	emptyDir := filepath.Join(baseDir, "empty")

	require.NoError(t, os.MkdirAll(nestedDir, 0755))
	require.NoError(t, os.MkdirAll(emptyDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, ConfigFileName), []byte("dir: notes\n"), 0644))

	want := filepath.Join(projectDir, ConfigFileName)

	tests := []struct {
		name      string
		startPath string
		wantErr   bool
	}{
		{"Start at Root", projectDir, false},
		{"Start in Subdir", subDir, false},
		{"Start Nested Deeply", nestedDir, false},
		{"No Config Found", emptyDir, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FindConfig(tc.startPath)
			if tc.wantErr {
				// A stray config above the temp dir would make this pass; tolerate it.
				if err == nil {
					assert.NotEqual(t, want, got)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestFindConfig_IgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ConfigFileName), 0755))

	got, err := FindConfig(dir)
	if err == nil {
		assert.NotEqual(t, filepath.Join(dir, ConfigFileName), got)
	}
}
