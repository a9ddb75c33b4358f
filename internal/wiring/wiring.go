// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/FilipeBeck/pipe-builder/internal/adapters/config"
	_ "github.com/FilipeBeck/pipe-builder/internal/adapters/console"
	_ "github.com/FilipeBeck/pipe-builder/internal/adapters/fs"
	_ "github.com/FilipeBeck/pipe-builder/internal/adapters/logger"
	_ "github.com/FilipeBeck/pipe-builder/internal/adapters/metrics"
	_ "github.com/FilipeBeck/pipe-builder/internal/adapters/telemetry"
	_ "github.com/FilipeBeck/pipe-builder/internal/adapters/transforms"
	// Register app and engine nodes.
	_ "github.com/FilipeBeck/pipe-builder/internal/app"
	_ "github.com/FilipeBeck/pipe-builder/internal/engine/flags"
	_ "github.com/FilipeBeck/pipe-builder/internal/engine/ledger"
)
