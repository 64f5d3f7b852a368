// Package scheduler implements the per-recipe build pipeline and the
// parallel execution of a recipe graph.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/zerr"

	"github.com/michellab/protopack/internal/core/domain"
	"github.com/michellab/protopack/internal/core/ports"
)

// Status represents the build status of one package.
type Status string

const (
	// StatusPending indicates the package is waiting to be built.
	StatusPending Status = "Pending"
	// StatusRunning indicates the package is currently building.
	StatusRunning Status = "Running"
	// StatusCompleted indicates the package was staged successfully.
	StatusCompleted Status = "Completed"
	// StatusFailed indicates the build failed.
	StatusFailed Status = "Failed"
	// StatusCached indicates the package was already installed with an
	// identical tree hash and the build was skipped.
	StatusCached Status = "Cached"
)

// Options configures one scheduler run.
type Options struct {
	// Prefix is the installation prefix. Required.
	Prefix string
	// BuildSuffix is appended to each recipe's build string.
	BuildSuffix string
	// Parallelism caps the number of concurrently building packages.
	Parallelism int
	// Force rebuilds packages even when the stored manifest matches.
	Force bool
}

// Scheduler builds the recipes of a graph in dependency order.
type Scheduler struct {
	executor  ports.Executor
	store     ports.ManifestStore
	hasher    ports.TreeHasher
	copier    ports.Copier
	verifier  ports.Verifier
	telemetry ports.Telemetry
	logger    ports.Logger

	mu     sync.RWMutex
	status map[domain.InternedString]Status
}

// NewScheduler creates a new Scheduler.
func NewScheduler(
	executor ports.Executor,
	store ports.ManifestStore,
	hasher ports.TreeHasher,
	copier ports.Copier,
	verifier ports.Verifier,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		executor:  executor,
		store:     store,
		hasher:    hasher,
		copier:    copier,
		verifier:  verifier,
		telemetry: telemetry,
		logger:    logger,
		status:    make(map[domain.InternedString]Status),
	}
}

// Status returns the current status of a package.
func (s *Scheduler) Status(name domain.InternedString) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status[name]
}

func (s *Scheduler) updateStatus(name domain.InternedString, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[name] = status
}

// Run builds all recipes in the graph. Recipes whose build requirements name
// other recipes in the graph wait for those to complete; independent recipes
// build concurrently up to opts.Parallelism. The first failure does not stop
// unrelated packages, but dependents of a failed package are never started.
func (s *Scheduler) Run(ctx context.Context, graph *domain.Graph, opts Options) error {
	if opts.Prefix == "" {
		return domain.ErrPrefixNotSet
	}
	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}

	if err := graph.Validate(); err != nil {
		return err
	}
	for r := range graph.Walk() {
		s.updateStatus(r.Package.Name, StatusPending)
	}

	state := s.newRunState(ctx, graph, opts)

	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		if state.ctx.Err() != nil && state.active == 0 {
			return errors.Join(state.errs, state.ctx.Err())
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-state.ctx.Done():
		}
	}

	if state.ctx.Err() != nil {
		state.errs = errors.Join(state.errs, state.ctx.Err())
	}

	return state.errs
}

type result struct {
	name domain.InternedString
	err  error
}

type runState struct {
	graph     *domain.Graph
	inDegree  map[domain.InternedString]int
	ready     []domain.InternedString
	active    int
	resultsCh chan result
	errs      error
	ctx       context.Context
	opts      Options
	s         *Scheduler
}

func (s *Scheduler) newRunState(ctx context.Context, graph *domain.Graph, opts Options) *runState {
	inDegree := make(map[domain.InternedString]int, graph.RecipeCount())
	var ready []domain.InternedString

	for r := range graph.Walk() {
		deps := len(graph.BuildDeps(r))
		inDegree[r.Package.Name] = deps
		if deps == 0 {
			ready = append(ready, r.Package.Name)
		}
	}

	return &runState{
		graph:     graph,
		inDegree:  inDegree,
		ready:     ready,
		resultsCh: make(chan result, opts.Parallelism),
		ctx:       ctx,
		opts:      opts,
		s:         s,
	}
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) schedule() {
	for len(state.ready) > 0 && state.active < state.opts.Parallelism && state.ctx.Err() == nil {
		name := state.ready[0]
		state.ready = state.ready[1:]

		recipe, err := state.graph.Get(name)
		if err != nil {
			state.errs = errors.Join(state.errs, err)
			continue
		}

		state.active++
		state.s.updateStatus(name, StatusRunning)

		go func(r *domain.Recipe) {
			state.resultsCh <- result{
				name: r.Package.Name,
				err:  state.s.buildPackage(state.ctx, r, state.opts),
			}
		}(recipe)
	}
}

func (state *runState) handleResult(res result) {
	state.active--
	if res.err != nil {
		wrapped := zerr.With(zerr.Wrap(res.err, "package build failed"), "package", res.name.String())
		state.errs = errors.Join(state.errs, wrapped)
		state.s.updateStatus(res.name, StatusFailed)
		return
	}

	if state.s.Status(res.name) != StatusCached {
		state.s.updateStatus(res.name, StatusCompleted)
	}
	for _, dep := range state.graph.Dependents(res.name) {
		state.inDegree[dep]--
		if state.inDegree[dep] == 0 {
			state.ready = append(state.ready, dep)
		}
	}
}

// buildPackage runs the pipeline for one recipe: hash, cache check, copy,
// verify, script, manifest.
func (s *Scheduler) buildPackage(ctx context.Context, r *domain.Recipe, opts Options) error {
	name := r.Package.Name.String()
	ctx, vertex := s.telemetry.Record(ctx, name)

	err := s.stagePackage(ctx, r, opts)
	if err == nil && s.Status(r.Package.Name) == StatusCached {
		vertex.Cached()
	}
	vertex.Complete(err)
	return err
}

func (s *Scheduler) stagePackage(ctx context.Context, r *domain.Recipe, opts Options) error {
	name := r.Package.Name.String()

	treeHash, err := s.hasher.ComputeTreeHash(r)
	if err != nil {
		return err
	}

	if !opts.Force {
		installed, err := s.store.Get(opts.Prefix, name)
		if err != nil {
			return err
		}
		if installed != nil && installed.TreeHash == treeHash {
			s.updateStatus(r.Package.Name, StatusCached)
			s.logger.Info(name + " is up to date")
			return nil
		}
	}

	stageDir := r.StageDir(opts.Prefix)
	fileCount, err := s.copier.CopyTree(ctx, r.SourceDir(), stageDir, r.Source.Ignore)
	if err != nil {
		return err
	}

	// The byte-identical guarantee covers the copy itself, before any script
	// gets a chance to touch the staged tree.
	identical, err := s.verifier.VerifyStaged(r, opts.Prefix)
	if err != nil {
		return err
	}
	if !identical {
		return zerr.With(zerr.New("staged tree differs from source"), "path", stageDir)
	}

	buildString := r.BuildString(opts.BuildSuffix)
	scriptEnv := []string{
		"PREFIX=" + opts.Prefix,
		"PKG_NAME=" + name,
		"PKG_VERSION=" + r.Package.Version.String(),
		"PKG_BUILD_STRING=" + buildString,
		"RECIPE_DIR=" + r.Dir.String(),
	}
	for _, step := range r.Build.Script {
		if err := s.executor.Execute(ctx, step, stageDir, scriptEnv); err != nil {
			return err
		}
	}

	manifest := domain.Manifest{
		Name:        name,
		Version:     r.Package.Version.String(),
		BuildNumber: r.Build.Number,
		BuildString: buildString,
		TreeHash:    treeHash,
		FileCount:   fileCount,
		BuildID:     uuid.NewString(),
		Home:        r.About.Home.String(),
		License:     r.About.License.String(),
		InstalledAt: time.Now().UTC(),
	}
	if err := s.store.Put(opts.Prefix, manifest); err != nil {
		return zerr.Wrap(err, "failed to store manifest")
	}

	return nil
}
