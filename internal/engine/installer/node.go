package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packsync/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packsync/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packsync/internal/adapters/manager"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packsync/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/packsync/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "engine.installer"

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manager.NodeID,
			telemetry.NodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (*Installer, error) {
			pm, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return New(pm, tracer, log, settings.Skip), nil
		},
	})
}
