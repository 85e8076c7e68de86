// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/packsync/internal/adapters/config"
	_ "go.trai.ch/packsync/internal/adapters/linear"
	_ "go.trai.ch/packsync/internal/adapters/lock"
	_ "go.trai.ch/packsync/internal/adapters/logger"
	_ "go.trai.ch/packsync/internal/adapters/manager"
	_ "go.trai.ch/packsync/internal/adapters/prompt"
	_ "go.trai.ch/packsync/internal/adapters/script"
	_ "go.trai.ch/packsync/internal/adapters/shell"
	_ "go.trai.ch/packsync/internal/adapters/store"
	_ "go.trai.ch/packsync/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/packsync/internal/app"
	_ "go.trai.ch/packsync/internal/engine/collector"
	_ "go.trai.ch/packsync/internal/engine/installer"
)
