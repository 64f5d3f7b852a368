package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/michellab/protopack/internal/adapters/fs"
)

// writeTree creates the given files (relative slash paths) under a temp root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	return root
}

func TestWalk_SortedRelativePaths(t *testing.T) {
	root := writeTree(t, map[string]string{
		"b.txt":     "b",
		"a/one.py":  "1",
		"a/two.py":  "2",
		"z/deep/f":  "f",
		".hidden/x": "x",
	})

	files, err := fs.NewWalker().Walk(root, nil)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	want := []string{".hidden/x", "a/one.py", "a/two.py", "b.txt", "z/deep/f"}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %d: %v", len(want), len(files), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], files[i])
		}
	}
}

func TestWalk_IgnorePatterns(t *testing.T) {
	root := writeTree(t, map[string]string{
		"keep.py":                 "k",
		"mod/__pycache__/a.pyc":   "c",
		"mod/keep.py":             "k",
		"build/out.bin":           "b",
		"nested/build/other.bin":  "b",
		".DS_Store":               "junk",
		"docs/notes/.DS_Store":    "junk",
		"docs/notes/contents.txt": "n",
	})

	files, err := fs.NewWalker().Walk(root, []string{"**/__pycache__", "build", ".DS_Store"})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	want := []string{"docs/notes/contents.txt", "keep.py", "mod/keep.py"}
	if len(files) != len(want) {
		t.Fatalf("expected %v, got %v", want, files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], files[i])
		}
	}
}

func TestWalk_AlwaysPrunesGit(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src.py":       "s",
		".git/objects": "o",
	})

	files, err := fs.NewWalker().Walk(root, nil)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(files) != 1 || files[0] != "src.py" {
		t.Errorf("expected [src.py], got %v", files)
	}
}
