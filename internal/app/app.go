// Package app implements the application layer for protopack.
package app

import (
	"context"
	"errors"
	"runtime"

	"go.trai.ch/zerr"

	"github.com/michellab/protopack/internal/adapters/recipe"
	"github.com/michellab/protopack/internal/core/domain"
	"github.com/michellab/protopack/internal/core/ports"
	"github.com/michellab/protopack/internal/engine/scheduler"
)

// App wires the recipe loader, the scheduler and the stores into the
// operations the CLI exposes.
type App struct {
	loader      ports.RecipeLoader
	scheduler   *scheduler.Scheduler
	store       ports.ManifestStore
	environment ports.Environment
	telemetry   ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.RecipeLoader,
	sched *scheduler.Scheduler,
	store ports.ManifestStore,
	environment ports.Environment,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:      loader,
		scheduler:   sched,
		store:       store,
		environment: environment,
		telemetry:   telemetry,
	}
}

// BuildOptions configures a Build call. Zero values fall back to the process
// environment and machine defaults.
type BuildOptions struct {
	Prefix      string
	Parallelism int
	Force       bool
}

// Build loads the given recipe directories, orders them by their mutual
// build requirements and stages each package into the installation prefix.
func (a *App) Build(ctx context.Context, recipeDirs []string, opts BuildOptions) error {
	if len(recipeDirs) == 0 {
		return domain.ErrNoRecipesSpecified
	}

	prefix, err := a.resolvePrefix(opts.Prefix)
	if err != nil {
		return err
	}

	graph := domain.NewGraph()
	for _, dir := range recipeDirs {
		r, err := a.loader.Load(dir)
		if err != nil {
			return zerr.Wrap(err, "failed to load recipe")
		}
		if err := graph.AddRecipe(r); err != nil {
			return err
		}
	}

	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}

	defer a.telemetry.Close() //nolint:errcheck // best effort flush on exit

	runErr := a.scheduler.Run(ctx, graph, scheduler.Options{
		Prefix:      prefix,
		BuildSuffix: a.environment.BuildSuffix(),
		Parallelism: parallelism,
		Force:       opts.Force,
	})
	if runErr != nil {
		return errors.Join(domain.ErrBuildFailed, runErr)
	}
	return nil
}

// Render loads one recipe and returns its fully resolved YAML form.
func (a *App) Render(_ context.Context, dir string) (string, error) {
	r, err := a.loader.Load(dir)
	if err != nil {
		return "", err
	}
	return recipe.Render(r, a.environment.BuildSuffix())
}

// Lint validates the given recipe directories without building anything.
// All recipes are checked; errors are aggregated.
func (a *App) Lint(_ context.Context, recipeDirs []string) error {
	if len(recipeDirs) == 0 {
		return domain.ErrNoRecipesSpecified
	}

	var errs error
	for _, dir := range recipeDirs {
		if _, err := a.loader.Load(dir); err != nil {
			errs = errors.Join(errs, zerr.With(err, "recipe_dir", dir))
		}
	}
	return errs
}

// List returns the manifests of all packages installed in the prefix.
func (a *App) List(_ context.Context, prefixFlag string) ([]domain.Manifest, error) {
	prefix, err := a.resolvePrefix(prefixFlag)
	if err != nil {
		return nil, err
	}
	return a.store.List(prefix)
}

// resolvePrefix picks the flag value over PREFIX and fails when neither is set.
func (a *App) resolvePrefix(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if p := a.environment.Prefix(); p != "" {
		return p, nil
	}
	return "", domain.ErrPrefixNotSet
}
