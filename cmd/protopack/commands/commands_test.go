package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/michellab/protopack/cmd/protopack/commands"
	"github.com/michellab/protopack/internal/adapters/env"
	"github.com/michellab/protopack/internal/adapters/fs"
	"github.com/michellab/protopack/internal/adapters/prefix"
	"github.com/michellab/protopack/internal/adapters/recipe"
	"github.com/michellab/protopack/internal/adapters/shell"
	"github.com/michellab/protopack/internal/adapters/telemetry"
	"github.com/michellab/protopack/internal/app"
	"github.com/michellab/protopack/internal/core/domain"
	"github.com/michellab/protopack/internal/engine/scheduler"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func newCLI() (*commands.CLI, *bytes.Buffer) {
	logger := nopLogger{}
	walker := fs.NewWalker()
	hasher := fs.NewTreeHasher(walker)
	store := prefix.NewStore()
	sched := scheduler.NewScheduler(
		shell.NewExecutor(logger),
		store,
		hasher,
		fs.NewCopier(walker),
		fs.NewVerifier(hasher),
		telemetry.NewNoOp(),
		logger,
	)
	a := app.New(recipe.NewLoader(), sched, store, env.New(), telemetry.NewNoOp())

	cli := commands.New(a)
	out := &bytes.Buffer{}
	cli.SetOut(out)
	return cli, out
}

// writeRecipeDir lays out a one-package project and returns its recipe dir.
func writeRecipeDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "setup.py"), []byte("s"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	recipeDir := filepath.Join(root, "recipe")
	if err := os.MkdirAll(recipeDir, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	content := `
package:
  name: protocaller
  version: "1.1.0"
source:
  path: ..
  ignore: [recipe]
build:
  number: 1
`
	if err := os.WriteFile(filepath.Join(recipeDir, "recipe.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	return recipeDir
}

func TestBuild_StagesRecipe(t *testing.T) {
	t.Setenv(env.BuildSuffixVar, "")
	recipeDir := writeRecipeDir(t)
	prefixDir := t.TempDir()

	cli, _ := newCLI()
	cli.SetArgs([]string{"build", recipeDir, "--prefix", prefixDir})

	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(prefixDir, "protocaller", "setup.py")); err != nil {
		t.Errorf("expected staged file in prefix: %v", err)
	}
}

func TestBuild_NoArgsShowsHelp(t *testing.T) {
	cli, out := newCLI()
	cli.SetArgs([]string{"build"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("expected help instead of an error, got %v", err)
	}
	if !strings.Contains(out.String(), "build [recipe-dirs...]") {
		t.Errorf("expected usage output, got:\n%s", out.String())
	}
}

func TestBuild_MissingPrefix(t *testing.T) {
	t.Setenv(env.PrefixVar, "")
	recipeDir := writeRecipeDir(t)

	cli, _ := newCLI()
	cli.SetArgs([]string{"build", recipeDir})

	err := cli.Execute(context.Background())
	if !errors.Is(err, domain.ErrPrefixNotSet) {
		t.Fatalf("expected ErrPrefixNotSet, got %v", err)
	}
}

func TestList_PrintsInstalledPackages(t *testing.T) {
	t.Setenv(env.BuildSuffixVar, "")
	recipeDir := writeRecipeDir(t)
	prefixDir := t.TempDir()

	cli, _ := newCLI()
	cli.SetArgs([]string{"build", recipeDir, "--prefix", prefixDir})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	cli, out := newCLI()
	cli.SetArgs([]string{"list", "--prefix", prefixDir})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "NAME") || !strings.Contains(output, "protocaller") {
		t.Errorf("unexpected list output:\n%s", output)
	}
	if !strings.Contains(output, "1.1.0") || !strings.Contains(output, "b1") {
		t.Errorf("expected version and build string in output:\n%s", output)
	}
}

func TestRender_PrintsResolvedRecipe(t *testing.T) {
	t.Setenv(env.BuildSuffixVar, "gpu")
	recipeDir := writeRecipeDir(t)

	cli, out := newCLI()
	cli.SetArgs([]string{"render", recipeDir})

	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "name: protocaller") {
		t.Errorf("expected package name in output:\n%s", output)
	}
	if !strings.Contains(output, "string: b1_gpu") {
		t.Errorf("expected resolved build string in output:\n%s", output)
	}
}

func TestLint_ReportsOK(t *testing.T) {
	recipeDir := writeRecipeDir(t)

	cli, out := newCLI()
	cli.SetArgs([]string{"lint", recipeDir})

	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("lint failed: %v", err)
	}
	if !strings.Contains(out.String(), "1 recipe(s) OK") {
		t.Errorf("unexpected lint output:\n%s", out.String())
	}
}

func TestLint_FailsOnBrokenRecipe(t *testing.T) {
	root := t.TempDir()
	recipeDir := filepath.Join(root, "recipe")
	if err := os.MkdirAll(recipeDir, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	content := `
package:
  name: Bad Name
  version: "0.1"
`
	if err := os.WriteFile(filepath.Join(recipeDir, "recipe.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cli, _ := newCLI()
	cli.SetArgs([]string{"lint", recipeDir})

	err := cli.Execute(context.Background())
	if !errors.Is(err, domain.ErrInvalidPackageName) {
		t.Fatalf("expected ErrInvalidPackageName, got %v", err)
	}
}

func TestVersion_PrintsVersion(t *testing.T) {
	cli, out := newCLI()
	cli.SetArgs([]string{"version"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Error("expected a version string")
	}
}
