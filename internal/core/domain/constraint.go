package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ConstraintOp is a version comparison operator.
type ConstraintOp string

const (
	OpEqual        ConstraintOp = "="
	OpNotEqual     ConstraintOp = "!="
	OpGreaterEqual ConstraintOp = ">="
	OpLessEqual    ConstraintOp = "<="
	OpGreater      ConstraintOp = ">"
	OpLess         ConstraintOp = "<"
)

// operator lookup order matters: two-character operators must be tried first
// so ">=1.2" does not parse as ">" with version "=1.2".
var constraintOps = []ConstraintOp{
	OpGreaterEqual, OpLessEqual, OpNotEqual, OpGreater, OpLess, OpEqual,
}

// Constraint is a single version bound on a dependency, e.g. ">=2019.1".
type Constraint struct {
	Op      ConstraintOp
	Version InternedString
}

// String renders the constraint in its source form.
func (c Constraint) String() string {
	return string(c.Op) + c.Version.String()
}

// ParseConstraints parses a comma-separated conjunction of version bounds.
// A bare version with no operator is treated as an exact pin ("=").
// An empty string yields no constraints.
func ParseConstraints(s string) ([]Constraint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	constraints := make([]Constraint, 0, len(parts))
	for _, part := range parts {
		c, err := parseConstraint(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, c)
	}
	return constraints, nil
}

func parseConstraint(s string) (Constraint, error) {
	if s == "" {
		return Constraint{}, zerr.With(ErrInvalidConstraint, "reason", "empty constraint in conjunction")
	}

	op := OpEqual
	version := s
	for _, candidate := range constraintOps {
		if strings.HasPrefix(s, string(candidate)) {
			op = candidate
			version = strings.TrimSpace(strings.TrimPrefix(s, string(candidate)))
			break
		}
	}

	if version == "" {
		return Constraint{}, zerr.With(ErrInvalidConstraint, "constraint", s)
	}
	if strings.ContainsAny(version, "=<>! ") {
		return Constraint{}, zerr.With(ErrInvalidConstraint, "constraint", s)
	}

	return Constraint{Op: op, Version: NewInternedString(version)}, nil
}
