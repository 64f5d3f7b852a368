package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/michellab/protopack/internal/core/domain"
)

// TreeHasher computes xxhash content hashes over recipe source trees.
type TreeHasher struct {
	walker *Walker
}

// NewTreeHasher creates a new TreeHasher.
func NewTreeHasher(walker *Walker) *TreeHasher {
	return &TreeHasher{walker: walker}
}

// ComputeFileHash computes the xxhash of one file's content.
func (h *TreeHasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeDirHash computes a single hash over all files under root, excluding
// ignore matches. File contents are hashed in parallel; the combination is
// deterministic because relative paths are folded in sorted order.
func (h *TreeHasher) ComputeDirHash(root string, ignore []string) (string, error) {
	files, err := h.walker.Walk(root, ignore)
	if err != nil {
		return "", err
	}

	fileHashes := make([]uint64, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, rel := range files {
		g.Go(func() error {
			sum, err := h.ComputeFileHash(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				return err
			}
			fileHashes[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	hasher := xxhash.New()
	for i, rel := range files {
		_, _ = hasher.WriteString(rel)
		_, _ = hasher.Write([]byte{0})
		if err := binary.Write(hasher, binary.LittleEndian, fileHashes[i]); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// ComputeTreeHash hashes the recipe definition together with its source tree.
// A change to either the recipe fields or any staged file changes the hash.
func (h *TreeHasher) ComputeTreeHash(r *domain.Recipe) (string, error) {
	dirHash, err := h.ComputeDirHash(r.SourceDir(), r.Source.Ignore)
	if err != nil {
		return "", err
	}

	hasher := xxhash.New()
	hashRecipeDefinition(r, hasher)
	_, _ = hasher.WriteString(dirHash)

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// hashRecipeDefinition folds the identity, build and requirement fields into
// the digest. Requirement sets are already in declaration order from the
// loader; order is part of the definition.
func hashRecipeDefinition(r *domain.Recipe, hasher *xxhash.Digest) {
	writeField := func(s string) {
		_, _ = hasher.WriteString(s)
		_, _ = hasher.Write([]byte{0})
	}

	writeField(r.Package.Name.String())
	writeField(r.Package.Version.String())
	writeField(fmt.Sprintf("%d", r.Build.Number))
	writeField(r.Build.String.String())

	for _, step := range r.Build.Script {
		for _, arg := range step {
			writeField(arg)
		}
		_, _ = hasher.Write([]byte{1})
	}
	_, _ = hasher.Write([]byte{0})

	for _, set := range [][]domain.Dependency{
		r.Requirements.Build, r.Requirements.Run, r.Test.Requires,
	} {
		for _, dep := range set {
			writeField(dep.String())
		}
		_, _ = hasher.Write([]byte{0})
	}

	for _, pattern := range r.Source.Ignore {
		writeField(pattern)
	}
	_, _ = hasher.Write([]byte{0})
}
