package collector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packsync/internal/adapters/config"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packsync/internal/adapters/manager" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/packsync/internal/core/ports"
)

// NodeID is the unique identifier for the collector Graft node.
const NodeID graft.ID = "engine.collector"

func init() {
	graft.Register(graft.Node[*Collector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{manager.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (*Collector, error) {
			pm, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return New(pm, settings.Skip), nil
		},
	})
}
