// Package shell provides the build-script executor adapter.
package shell

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"

	"github.com/michellab/protopack/internal/core/ports"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs one script step in dir. The extra environment entries are
// merged over the process environment, later entries winning, so PKG_* and
// PREFIX always reach the script. Stdout and stderr are streamed line-wise to
// the logger.
func (e *Executor) Execute(ctx context.Context, argv []string, dir string, env []string) error {
	if len(argv) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // recipe provided command
	cmd.Dir = dir
	cmd.Env = mergeEnvironment(os.Environ(), env)
	cmd.Stdout = &logWriter{logger: e.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: e.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		failed := zerr.With(zerr.Wrap(err, "build script step failed"), "exit_code", exitCode)
		return zerr.With(failed, "command", strings.Join(argv, " "))
	}

	return nil
}

// mergeEnvironment overlays extra entries on the base environment by key.
func mergeEnvironment(base, extra []string) []string {
	envMap := make(map[string]string, len(base)+len(extra))
	var order []string
	for _, entry := range append(append([]string{}, base...), extra...) {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

type logWriter struct {
	logger ports.Logger
	level  string
}

// Write splits output into lines before handing it to the logger. Partial
// trailing lines are logged as-is; script output is advisory only.
func (w *logWriter) Write(p []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(p), "\n")
	for line := range strings.SplitSeq(msg, "\n") {
		if line == "" {
			continue
		}
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
