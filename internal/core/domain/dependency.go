package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Dependency is one entry of a recipe requirement set: a package name plus an
// optional conjunction of version constraints. Dependencies are declared and
// validated only; protopack never resolves or installs them.
type Dependency struct {
	Name        InternedString
	Constraints []Constraint
}

// String renders the dependency in its source form, e.g. "rdkit >=2019.1".
func (d Dependency) String() string {
	if len(d.Constraints) == 0 {
		return d.Name.String()
	}
	parts := make([]string, len(d.Constraints))
	for i, c := range d.Constraints {
		parts[i] = c.String()
	}
	return d.Name.String() + " " + strings.Join(parts, ",")
}

// ParseDependency parses a requirement entry of the form "name" or
// "name <constraints>". The name must be a valid package identifier.
func ParseDependency(s string) (Dependency, error) {
	s = strings.TrimSpace(s)
	name, spec, _ := strings.Cut(s, " ")

	if err := ValidatePackageName(name); err != nil {
		return Dependency{}, err
	}

	constraints, err := ParseConstraints(spec)
	if err != nil {
		return Dependency{}, zerr.With(err, "dependency", s)
	}

	return Dependency{
		Name:        NewInternedString(name),
		Constraints: constraints,
	}, nil
}

// ValidatePackageName checks that name is a well-formed package identifier:
// non-empty, lowercase alphanumerics plus '-', '_' and '.', starting with an
// alphanumeric.
func ValidatePackageName(name string) error {
	if name == "" {
		return zerr.With(ErrInvalidPackageName, "reason", "empty name")
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
			if i == 0 {
				return zerr.With(ErrInvalidPackageName, "name", name)
			}
		default:
			return zerr.With(ErrInvalidPackageName, "name", name)
		}
	}
	return nil
}
