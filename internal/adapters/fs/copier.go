package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/michellab/protopack/internal/core/domain"
)

// Copier stages a source tree into a package directory.
type Copier struct {
	walker *Walker
}

// NewCopier creates a new Copier.
func NewCopier(walker *Walker) *Copier {
	return &Copier{walker: walker}
}

// CopyTree mirrors src into dst. Any existing content at dst is removed
// first, so stale files from a previous build never survive and the result is
// identical to the filtered source tree. Returns the number of files copied.
func (c *Copier) CopyTree(ctx context.Context, src, dst string, ignore []string) (int, error) {
	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, zerr.With(domain.ErrSourceMissing, "source", src)
		}
		return 0, zerr.With(zerr.Wrap(err, "failed to stat source tree"), "source", src)
	}
	if !info.IsDir() {
		return 0, zerr.With(zerr.New("source is not a directory"), "source", src)
	}

	files, err := c.walker.Walk(src, ignore)
	if err != nil {
		return 0, err
	}

	if err := os.RemoveAll(dst); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to clear package directory"), "path", dst)
	}
	if err := os.MkdirAll(dst, 0o755); err != nil { //nolint:gosec // staged trees are world-readable
		return 0, zerr.With(zerr.Wrap(err, "failed to create package directory"), "path", dst)
	}

	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		srcPath := filepath.Join(src, filepath.FromSlash(rel))
		dstPath := filepath.Join(dst, filepath.FromSlash(rel))
		if err := copyFile(srcPath, dstPath); err != nil {
			return 0, err
		}
	}

	return len(files), nil
}

// copyFile copies one regular file, preserving its permission bits.
func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // path comes from the walked source tree
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // best effort close in defer

	info, err := in.Stat()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source file"), "path", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil { //nolint:gosec // staged trees are world-readable
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(dst))
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // dst is inside the prefix
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", dst)
	}
	return nil
}
