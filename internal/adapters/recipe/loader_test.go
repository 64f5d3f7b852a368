package recipe_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michellab/protopack/internal/adapters/recipe"
	"github.com/michellab/protopack/internal/core/domain"
)

// writeRecipe lays out a recipe directory with a sibling source tree:
//
//	<tmp>/project/setup.py
//	<tmp>/project/recipe/recipe.yaml
func writeRecipe(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "project", "setup.py")
	require.NoError(t, os.MkdirAll(filepath.Dir(srcFile), 0o755))
	require.NoError(t, os.WriteFile(srcFile, []byte("from setuptools import setup\n"), 0o600))

	recipeDir := filepath.Join(tmpDir, "project", "recipe")
	require.NoError(t, os.MkdirAll(recipeDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(recipeDir, "recipe.yaml"), []byte(content), 0o600))
	return recipeDir
}

func TestLoad_Success(t *testing.T) {
	content := `
package:
  name: protocaller
  version: "1.1.0"
source:
  path: ..
  ignore:
    - "**/__pycache__"
    - recipe
build:
  number: 2
  string: py37
  script:
    - [python, setup.py, install]
requirements:
  build:
    - python >=3.6
  run:
    - rdkit >=2019.1
    - parmed
test:
  requires:
    - pytest
about:
  home: https://protocaller.readthedocs.io
  license: GPL-3.0-or-later
  license_file: LICENSE
`
	dir := writeRecipe(t, content)

	r, err := recipe.NewLoader().Load(dir)
	require.NoError(t, err)

	require.Equal(t, "protocaller", r.Package.Name.String())
	require.Equal(t, "1.1.0", r.Package.Version.String())
	require.Equal(t, 2, r.Build.Number)
	require.Equal(t, "py37", r.Build.String.String())
	require.Len(t, r.Build.Script, 1)
	require.Equal(t, []string{"python", "setup.py", "install"}, r.Build.Script[0])
	require.Len(t, r.Requirements.Build, 1)
	require.Len(t, r.Requirements.Run, 2)
	require.Len(t, r.Test.Requires, 1)
	require.Equal(t, "rdkit >=2019.1", r.Requirements.Run[0].String())
	require.Equal(t, "GPL-3.0-or-later", r.About.License.String())
	require.Equal(t, filepath.Dir(dir), r.SourceDir())
}

func TestLoad_SourceDefaultsToRecipeDir(t *testing.T) {
	content := `
package:
  name: tiny
  version: "0.1"
`
	dir := writeRecipe(t, content)

	r, err := recipe.NewLoader().Load(dir)
	require.NoError(t, err)
	require.Equal(t, dir, r.SourceDir())
}

func TestLoad_MissingSource(t *testing.T) {
	content := `
package:
  name: lost
  version: "0.1"
source:
  path: ../does-not-exist
`
	dir := writeRecipe(t, content)

	_, err := recipe.NewLoader().Load(dir)
	require.True(t, errors.Is(err, domain.ErrSourceMissing), "expected ErrSourceMissing, got %v", err)
}

func TestLoad_InvalidPackageName(t *testing.T) {
	content := `
package:
  name: Bad Name
  version: "0.1"
`
	dir := writeRecipe(t, content)

	_, err := recipe.NewLoader().Load(dir)
	require.True(t, errors.Is(err, domain.ErrInvalidPackageName), "expected ErrInvalidPackageName, got %v", err)
}

func TestLoad_InvalidRequirement(t *testing.T) {
	content := `
package:
  name: broken
  version: "0.1"
requirements:
  run:
    - "rdkit >="
`
	dir := writeRecipe(t, content)

	_, err := recipe.NewLoader().Load(dir)
	require.True(t, errors.Is(err, domain.ErrInvalidConstraint), "expected ErrInvalidConstraint, got %v", err)
}

func TestLoad_MissingVersion(t *testing.T) {
	content := `
package:
  name: unversioned
`
	dir := writeRecipe(t, content)

	_, err := recipe.NewLoader().Load(dir)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := recipe.NewLoader().Load(t.TempDir())
	require.Error(t, err)
}
