// Package ports defines the core interfaces for the application.
package ports

import "github.com/michellab/protopack/internal/core/domain"

// RecipeLoader defines the interface for loading and validating a recipe.
//
//go:generate go run go.uber.org/mock/mockgen -source=recipe_loader.go -destination=mocks/mock_recipe_loader.go -package=mocks
type RecipeLoader interface {
	// Load reads the recipe from the given recipe directory and returns the
	// parsed, validated recipe.
	Load(dir string) (*domain.Recipe, error)
}
