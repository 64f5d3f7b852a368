package ports

// Environment provides the two pieces of ambient configuration a build
// consumes from the process environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type Environment interface {
	// Prefix returns the installation prefix from PREFIX, or "" if unset.
	Prefix() string

	// BuildSuffix returns the build-string suffix from BUILD_SUFFIX, or "".
	BuildSuffix() string
}
