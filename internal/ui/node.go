package ui

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pali/internal/core/ports"
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "ui.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Renderer, error) {
			return NewRenderer(), nil
		},
	})
}
