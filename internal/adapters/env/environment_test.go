package env_test

import (
	"testing"

	"github.com/michellab/protopack/internal/adapters/env"
)

func TestEnvironment_Prefix(t *testing.T) {
	t.Setenv(env.PrefixVar, "/opt/protopack")
	if got := env.New().Prefix(); got != "/opt/protopack" {
		t.Errorf("expected /opt/protopack, got %q", got)
	}
}

func TestEnvironment_PrefixUnset(t *testing.T) {
	t.Setenv(env.PrefixVar, "")
	if got := env.New().Prefix(); got != "" {
		t.Errorf("expected empty prefix, got %q", got)
	}
}

func TestEnvironment_BuildSuffix(t *testing.T) {
	t.Setenv(env.BuildSuffixVar, "gpu")
	if got := env.New().BuildSuffix(); got != "gpu" {
		t.Errorf("expected gpu, got %q", got)
	}
}
