package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/core/ports"
)

const NodeID graft.ID = "adapter.report_sink"

func init() {
	graft.Register(graft.Node[ports.ReportSink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ReportSink, error) {
			return NewJUnitSink(), nil
		},
	})
}
