package logger_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/michellab/protopack/internal/adapters/logger"
)

func newCaptured() (*logger.Logger, *bytes.Buffer) {
	lg := logger.New().(*logger.Logger)
	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newCaptured()
	lg.Info("staging protocaller")

	output := buf.String()
	if !strings.Contains(output, "staging protocaller") {
		t.Errorf("expected message in output, got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("expected INFO level in output, got: %s", output)
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newCaptured()
	lg.Warn("build string override")

	output := buf.String()
	if !strings.Contains(output, "build string override") {
		t.Errorf("expected message in output, got: %s", output)
	}
	if !strings.Contains(output, "WARN") {
		t.Errorf("expected WARN level in output, got: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newCaptured()
	lg.Error(os.ErrPermission)

	output := buf.String()
	if !strings.Contains(output, "permission denied") {
		t.Errorf("expected error message in output, got: %s", output)
	}
	if !strings.Contains(output, "ERROR") {
		t.Errorf("expected ERROR level in output, got: %s", output)
	}
}

func TestNew(t *testing.T) {
	if lg := logger.New(); lg == nil {
		t.Fatal("expected New() to return a non-nil logger")
	}
}
