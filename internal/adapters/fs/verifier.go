package fs

import (
	"os"

	"go.trai.ch/zerr"

	"github.com/michellab/protopack/internal/core/domain"
	"github.com/michellab/protopack/internal/core/ports"
)

// Verifier checks staged package trees against their source.
type Verifier struct {
	hasher ports.TreeHasher
}

// NewVerifier creates a new Verifier.
func NewVerifier(hasher ports.TreeHasher) *Verifier {
	return &Verifier{hasher: hasher}
}

// VerifyStaged reports whether the package directory staged in prefix is
// byte-identical to the recipe's filtered source tree, by comparing directory
// hashes. The ignore patterns apply to both sides; the staged tree contains
// no ignored files, so matching hashes mean matching bytes.
func (v *Verifier) VerifyStaged(r *domain.Recipe, prefix string) (bool, error) {
	stageDir := r.StageDir(prefix)
	if _, err := os.Stat(stageDir); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat package directory"), "path", stageDir)
	}

	srcHash, err := v.hasher.ComputeDirHash(r.SourceDir(), r.Source.Ignore)
	if err != nil {
		return false, err
	}
	stagedHash, err := v.hasher.ComputeDirHash(stageDir, r.Source.Ignore)
	if err != nil {
		return false, err
	}

	return srcHash == stagedHash, nil
}
