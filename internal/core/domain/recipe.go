// Package domain contains the core domain models for recipes, dependency
// sets, installed manifests and the recipe build graph.
package domain

import (
	"fmt"
	"path/filepath"
)

// PackageInfo is the identity block of a recipe.
type PackageInfo struct {
	Name    InternedString
	Version InternedString
}

// Source references the project tree a recipe packages. Path is relative to
// the recipe directory. Ignore holds doublestar patterns excluded from the
// copy and the tree hash.
type Source struct {
	Path   InternedString
	Ignore []string
}

// BuildSpec describes the build step: an ordinal build number, an optional
// explicit build string, and optional script steps run after the copy.
type BuildSpec struct {
	Number int
	String InternedString
	Script [][]string
}

// Requirements holds the two declared dependency sets of a recipe.
type Requirements struct {
	Build []Dependency
	Run   []Dependency
}

// TestSpec holds the test-time requirement set.
type TestSpec struct {
	Requires []Dependency
}

// About is the recipe metadata block.
type About struct {
	Home        InternedString
	License     InternedString
	LicenseFile InternedString
}

// Recipe is a fully parsed and validated package recipe.
type Recipe struct {
	Package      PackageInfo
	Source       Source
	Build        BuildSpec
	Requirements Requirements
	Test         TestSpec
	About        About

	// Dir is the absolute path of the recipe directory.
	Dir InternedString
}

// SourceDir returns the absolute path of the source tree this recipe stages.
func (r *Recipe) SourceDir() string {
	return filepath.Clean(filepath.Join(r.Dir.String(), r.Source.Path.String()))
}

// StageDir returns the package directory inside the given installation prefix.
func (r *Recipe) StageDir(prefix string) string {
	return filepath.Join(prefix, r.Package.Name.String())
}

// BuildString returns the final build string: the explicit string if set,
// otherwise "b<number>", with a non-empty suffix appended as "_<suffix>".
func (r *Recipe) BuildString(suffix string) string {
	s := r.Build.String.String()
	if s == "" {
		s = fmt.Sprintf("b%d", r.Build.Number)
	}
	if suffix != "" {
		s += "_" + suffix
	}
	return s
}
