// Package env reads the ambient build configuration from the process
// environment.
package env

import "os"

// Names of the environment variables a build consumes.
const (
	PrefixVar      = "PREFIX"
	BuildSuffixVar = "BUILD_SUFFIX"
)

// Environment implements ports.Environment against the process environment.
type Environment struct{}

// New creates a new Environment.
func New() *Environment {
	return &Environment{}
}

// Prefix returns the installation prefix from PREFIX, or "" if unset.
// Flags override this value at the command layer.
func (e *Environment) Prefix() string {
	return os.Getenv(PrefixVar)
}

// BuildSuffix returns the build-string suffix from BUILD_SUFFIX, or "".
func (e *Environment) BuildSuffix() string {
	return os.Getenv(BuildSuffixVar)
}
