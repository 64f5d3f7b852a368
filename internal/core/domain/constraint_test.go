package domain_test

import (
	"errors"
	"testing"

	"github.com/michellab/protopack/internal/core/domain"
)

func TestParseConstraints_Operators(t *testing.T) {
	tests := []struct {
		input   string
		op      domain.ConstraintOp
		version string
	}{
		{">=2019.1", domain.OpGreaterEqual, "2019.1"},
		{"<=3.7", domain.OpLessEqual, "3.7"},
		{"!=1.0", domain.OpNotEqual, "1.0"},
		{">1", domain.OpGreater, "1"},
		{"<2", domain.OpLess, "2"},
		{"=1.2.3", domain.OpEqual, "1.2.3"},
		{"1.2.3", domain.OpEqual, "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cs, err := domain.ParseConstraints(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(cs) != 1 {
				t.Fatalf("expected 1 constraint, got %d", len(cs))
			}
			if cs[0].Op != tt.op {
				t.Errorf("expected op %q, got %q", tt.op, cs[0].Op)
			}
			if cs[0].Version.String() != tt.version {
				t.Errorf("expected version %q, got %q", tt.version, cs[0].Version.String())
			}
		})
	}
}

func TestParseConstraints_Conjunction(t *testing.T) {
	cs, err := domain.ParseConstraints(">=1.2, <2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cs) != 2 {
		t.Fatalf("expected 2 constraints, got %d", len(cs))
	}
	if got := cs[0].String(); got != ">=1.2" {
		t.Errorf("expected >=1.2, got %s", got)
	}
	if got := cs[1].String(); got != "<2" {
		t.Errorf("expected <2, got %s", got)
	}
}

func TestParseConstraints_Empty(t *testing.T) {
	cs, err := domain.ParseConstraints("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs != nil {
		t.Errorf("expected nil constraints, got %v", cs)
	}
}

func TestParseConstraints_Invalid(t *testing.T) {
	for _, input := range []string{">=", ">= 1.2, <", ">>1", "= =1"} {
		t.Run(input, func(t *testing.T) {
			_, err := domain.ParseConstraints(input)
			if !errors.Is(err, domain.ErrInvalidConstraint) {
				t.Fatalf("expected ErrInvalidConstraint, got %v", err)
			}
		})
	}
}
