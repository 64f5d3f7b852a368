package domain

import "go.trai.ch/zerr"

var (
	// ErrRecipeAlreadyExists is returned when two recipes in one invocation declare the same package name.
	ErrRecipeAlreadyExists = zerr.New("recipe already exists")

	// ErrCycleDetected is returned when recipe build requirements form a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrRecipeNotFound is returned when a requested recipe is not present in the graph.
	ErrRecipeNotFound = zerr.New("recipe not found")

	// ErrInvalidPackageName is returned when a package or dependency name is not a valid identifier.
	ErrInvalidPackageName = zerr.New("invalid package name")

	// ErrInvalidConstraint is returned when a version constraint cannot be parsed.
	ErrInvalidConstraint = zerr.New("invalid version constraint")

	// ErrSourceMissing is returned when a recipe's source tree does not exist.
	ErrSourceMissing = zerr.New("source tree missing")

	// ErrPrefixNotSet is returned when neither the --prefix flag nor PREFIX provides an installation prefix.
	ErrPrefixNotSet = zerr.New("installation prefix not set")

	// ErrNoRecipesSpecified is returned when a build is requested without any recipe directories.
	ErrNoRecipesSpecified = zerr.New("no recipes specified")

	// ErrBuildFailed is returned by the app when one or more package builds failed.
	ErrBuildFailed = zerr.New("build failed")

	// ErrManifestNotFound is returned when no installed manifest exists for a package.
	ErrManifestNotFound = zerr.New("manifest not found")
)
