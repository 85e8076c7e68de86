package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packsync/internal/adapters/config"
	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/packsync/internal/core/ports"
)

// NodeID is the unique identifier for the profile store Graft node.
const NodeID graft.ID = "adapter.profile_store"

func init() {
	graft.Register(graft.Node[ports.ProfileStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.ProfileStore, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.StoreDir), nil
		},
	})
}
