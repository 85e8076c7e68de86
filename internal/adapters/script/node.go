package script

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packsync/internal/adapters/config"
	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/packsync/internal/core/ports"
)

// NodeID is the unique identifier for the retry script writer Graft node.
const NodeID graft.ID = "adapter.retry_script"

func init() {
	graft.Register(graft.Node[ports.RetryScriptWriter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.RetryScriptWriter, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(settings.StoreDir), nil
		},
	})
}
