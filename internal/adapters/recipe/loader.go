// Package recipe provides the YAML recipe loader.
package recipe

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/michellab/protopack/internal/core/domain"
)

// DefaultFilename is the recipe file name looked up inside a recipe directory.
const DefaultFilename = "recipe.yaml"

// Loader implements ports.RecipeLoader using a YAML file per recipe directory.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader reading DefaultFilename.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// Load reads, parses and validates the recipe in the given directory.
func (l *Loader) Load(dir string) (*domain.Recipe, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve recipe directory")
	}

	path := filepath.Join(absDir, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read recipe file"), "path", path)
	}

	var file recipeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse recipe file"), "path", path)
	}

	r, err := buildRecipe(&file, absDir)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return r, nil
}

func buildRecipe(file *recipeFile, dir string) (*domain.Recipe, error) {
	if err := domain.ValidatePackageName(file.Package.Name); err != nil {
		return nil, err
	}
	if file.Package.Version == "" {
		return nil, zerr.With(zerr.New("recipe version is required"), "package", file.Package.Name)
	}
	if file.Build.Number < 0 {
		return nil, zerr.With(zerr.New("build number must not be negative"), "number", file.Build.Number)
	}
	for _, step := range file.Build.Script {
		if len(step) == 0 {
			return nil, zerr.New("empty build script step")
		}
	}

	sourcePath := file.Source.Path
	if sourcePath == "" {
		sourcePath = "."
	}

	r := &domain.Recipe{
		Package: domain.PackageInfo{
			Name:    domain.NewInternedString(file.Package.Name),
			Version: domain.NewInternedString(file.Package.Version),
		},
		Source: domain.Source{
			Path:   domain.NewInternedString(sourcePath),
			Ignore: canonicalizePatterns(file.Source.Ignore),
		},
		Build: domain.BuildSpec{
			Number: file.Build.Number,
			String: domain.NewInternedString(file.Build.String),
			Script: file.Build.Script,
		},
		About: domain.About{
			Home:        domain.NewInternedString(file.About.Home),
			License:     domain.NewInternedString(file.About.License),
			LicenseFile: domain.NewInternedString(file.About.LicenseFile),
		},
		Dir: domain.NewInternedString(dir),
	}

	var err error
	if r.Requirements.Build, err = parseDependencies(file.Requirements.Build); err != nil {
		return nil, zerr.Wrap(err, "invalid build requirement")
	}
	if r.Requirements.Run, err = parseDependencies(file.Requirements.Run); err != nil {
		return nil, zerr.Wrap(err, "invalid run requirement")
	}
	if r.Test.Requires, err = parseDependencies(file.Test.Requires); err != nil {
		return nil, zerr.Wrap(err, "invalid test requirement")
	}

	if _, err := os.Stat(r.SourceDir()); err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(domain.ErrSourceMissing, "source", r.SourceDir())
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat source tree"), "source", r.SourceDir())
	}

	return r, nil
}

func parseDependencies(entries []string) ([]domain.Dependency, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	deps := make([]domain.Dependency, 0, len(entries))
	for _, entry := range entries {
		dep, err := domain.ParseDependency(entry)
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

func canonicalizePatterns(patterns []string) []string {
	if len(patterns) == 0 {
		return nil
	}
	sorted := make([]string, len(patterns))
	copy(sorted, patterns)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
