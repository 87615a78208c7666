package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pali/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pali/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pali/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pali/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pali/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.OracleNodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			oracle, err := graft.Dep[ports.StalenessOracle](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(executor, oracle, tel, log), nil
		},
	})
}
