package testing_util

import (
	"os"
	"testing"
)

func MkdirTemp(t *testing.T, prefix string) (path string, cleanup func()) {
	t.Helper()

	out, err := os.MkdirTemp(os.TempDir(), prefix)
	if err != nil {
		t.Fatalf("failed to create temporary directory: %v", err)
	}

	return out, func() {
		os.RemoveAll(out)
	}
}

// WriteLines writes each line followed by a newline to a new file at path.
func WriteLines(t *testing.T, path string, lines ...string) {
	t.Helper()

	var content []byte
	for _, line := range lines {
		content = append(content, line...)
		content = append(content, '\n')
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write %q: %v", path, err)
	}
}
