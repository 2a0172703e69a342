package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/adapters/telemetry/progrock"
	"go.trai.ch/rig/internal/core/ports"
)

const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			// Recording is pointless without a consumer; CI log collectors
			// get everything through the logger and the XML report.
			if os.Getenv("RIG_PROGRESS") == "off" {
				return NewNoOp(), nil
			}
			return progrock.New(), nil
		},
	})
}
