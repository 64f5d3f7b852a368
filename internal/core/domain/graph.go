package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph orders the recipes of one invocation. An edge exists from recipe A to
// recipe B when B's build requirements name A's package. Dependencies on
// packages outside the invocation carry no edge; they are declaration only.
type Graph struct {
	recipes        map[InternedString]*Recipe
	executionOrder []InternedString
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		recipes: make(map[InternedString]*Recipe),
	}
}

// AddRecipe adds a recipe to the graph. Two recipes with the same package
// name cannot coexist in one invocation.
func (g *Graph) AddRecipe(r *Recipe) error {
	if _, exists := g.recipes[r.Package.Name]; exists {
		return zerr.With(ErrRecipeAlreadyExists, "package", r.Package.Name.String())
	}
	g.recipes[r.Package.Name] = r
	return nil
}

// RecipeCount returns the number of recipes in the graph.
func (g *Graph) RecipeCount() int {
	return len(g.recipes)
}

// BuildDeps returns the build requirements of r that name another recipe in
// this graph, i.e. the actual ordering edges.
func (g *Graph) BuildDeps(r *Recipe) []InternedString {
	var deps []InternedString
	for _, dep := range r.Requirements.Build {
		if _, ok := g.recipes[dep.Name]; ok {
			deps = append(deps, dep.Name)
		}
	}
	return deps
}

// Dependents returns the names of recipes whose build requirements include name.
func (g *Graph) Dependents(name InternedString) []InternedString {
	var out []InternedString
	for candidate, r := range g.recipes {
		if slices.Contains(g.BuildDeps(r), name) {
			out = append(out, candidate)
		}
	}
	return out
}

// Validate topologically sorts the graph and fails on cycles. Disconnected
// recipes are visited in sorted name order so the resulting execution order
// is deterministic.
func (g *Graph) Validate() error {
	g.executionOrder = make([]InternedString, 0, len(g.recipes))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		for _, dep := range g.BuildDeps(g.recipes[u]) {
			if visited[dep] == 1 {
				return cycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	names := make([]InternedString, 0, len(g.recipes))
	for name := range g.recipes {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b InternedString) int {
		return strings.Compare(a.String(), b.String())
	})

	for _, name := range names {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

func cycleError(path []InternedString, dep InternedString) error {
	start := slices.Index(path, dep)
	cyclePath := ""
	for i := start; i >= 0 && i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}

// Walk yields recipes in execution order. Validate must have succeeded first.
func (g *Graph) Walk() iter.Seq[*Recipe] {
	return func(yield func(*Recipe) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.recipes[name]) {
				return
			}
		}
	}
}

// Get returns the recipe for the given package name.
func (g *Graph) Get(name InternedString) (*Recipe, error) {
	r, ok := g.recipes[name]
	if !ok {
		return nil, zerr.With(ErrRecipeNotFound, "package", name.String())
	}
	return r, nil
}
