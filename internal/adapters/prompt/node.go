package prompt

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/packsync/internal/core/ports"
)

// NodeID is the unique identifier for the prompt Graft node.
const NodeID graft.ID = "adapter.prompt"

func init() {
	graft.Register(graft.Node[ports.Prompter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Prompter, error) {
			return New(os.Stdin, os.Stdout), nil
		},
	})
}
