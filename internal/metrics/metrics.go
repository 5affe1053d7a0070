//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Gateway=Gateway"
package metrics

import (
	"context"
)

// Snapshot is the backend performance readout.
type Snapshot struct {
	ResponseTime      float64
	RequestsPerSecond float64
	ActiveConnections int
	TotalMemory       float64
	FreeMemory        float64
}

type Gateway interface {
	Fetch(ctx context.Context) (Snapshot, error)
}
