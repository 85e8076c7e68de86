package config

import (
	"context"

	"github.com/adrg/xdg"
	"github.com/grindlemire/graft"
	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/packsync/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// SettingsNodeID is the unique identifier for the resolved settings Graft node.
	SettingsNodeID graft.ID = "adapter.settings"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(DefaultPath(), xdg.Home), nil
		},
	})

	graft.Register(graft.Node[domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (domain.Settings, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return domain.Settings{}, err
			}
			return loader.Load()
		},
	})
}
