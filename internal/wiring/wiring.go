// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/michellab/protopack/internal/adapters/env"
	_ "github.com/michellab/protopack/internal/adapters/fs"
	_ "github.com/michellab/protopack/internal/adapters/logger"
	_ "github.com/michellab/protopack/internal/adapters/prefix"
	_ "github.com/michellab/protopack/internal/adapters/recipe"
	_ "github.com/michellab/protopack/internal/adapters/shell"
	_ "github.com/michellab/protopack/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/michellab/protopack/internal/app"
	_ "github.com/michellab/protopack/internal/engine/scheduler"
)
