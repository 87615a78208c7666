package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pali/internal/core/ports"
)

// OracleNodeID is the unique identifier for the staleness oracle Graft node.
const OracleNodeID graft.ID = "adapter.staleness"

func init() {
	graft.Register(graft.Node[ports.StalenessOracle]{
		ID:        OracleNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.StalenessOracle, error) {
			return NewOracle(), nil
		},
	})
}
