package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/michellab/protopack/internal/adapters/fs"
	"github.com/michellab/protopack/internal/core/domain"
)

func stagedRecipe(t *testing.T) (*domain.Recipe, string) {
	t.Helper()
	src := writeTree(t, map[string]string{
		"setup.py":    "s",
		"pkg/mod.py":  "m",
		"__pycache__": "junk",
	})
	r := &domain.Recipe{
		Package: domain.PackageInfo{
			Name:    domain.NewInternedString("protocaller"),
			Version: domain.NewInternedString("1.0"),
		},
		Source: domain.Source{
			Path:   domain.NewInternedString("."),
			Ignore: []string{"__pycache__"},
		},
		Dir: domain.NewInternedString(src),
	}
	prefix := t.TempDir()

	copier := fs.NewCopier(fs.NewWalker())
	if _, err := copier.CopyTree(context.Background(), r.SourceDir(), r.StageDir(prefix), r.Source.Ignore); err != nil {
		t.Fatalf("CopyTree failed: %v", err)
	}
	return r, prefix
}

func TestVerifyStaged_Matches(t *testing.T) {
	r, prefix := stagedRecipe(t)

	ok, err := fs.NewVerifier(newHasher()).VerifyStaged(r, prefix)
	if err != nil {
		t.Fatalf("VerifyStaged failed: %v", err)
	}
	if !ok {
		t.Error("expected staged tree to match the source")
	}
}

func TestVerifyStaged_DetectsDrift(t *testing.T) {
	r, prefix := stagedRecipe(t)

	tampered := filepath.Join(r.StageDir(prefix), "pkg", "mod.py")
	if err := os.WriteFile(tampered, []byte("changed"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	ok, err := fs.NewVerifier(newHasher()).VerifyStaged(r, prefix)
	if err != nil {
		t.Fatalf("VerifyStaged failed: %v", err)
	}
	if ok {
		t.Error("expected drift to be detected")
	}
}

func TestVerifyStaged_MissingStageDir(t *testing.T) {
	r, _ := stagedRecipe(t)

	ok, err := fs.NewVerifier(newHasher()).VerifyStaged(r, t.TempDir())
	if err != nil {
		t.Fatalf("VerifyStaged failed: %v", err)
	}
	if ok {
		t.Error("expected missing stage dir to report false")
	}
}
