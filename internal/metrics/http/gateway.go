package http

import (
	"context"
	"fmt"

	"github.com/atulub35/outsider-client-go/internal/metrics"
	"github.com/atulub35/outsider-client-go/internal/pkg/apierror"
	pkghttp "github.com/atulub35/outsider-client-go/pkg/http"
)

type gateway struct {
	client pkghttp.Client
	state  *apierror.CallState
}

func NewGateway(client pkghttp.Client) (metrics.Gateway, *apierror.CallState) {
	state := &apierror.CallState{}
	return gateway{client: client, state: state}, state
}

func (g gateway) Fetch(ctx context.Context) (metrics.Snapshot, error) {
	g.state.Begin()

	var body snapshotOut
	resp, err := g.client.NewRequest(ctx).
		SetResult(&body).
		Get("/metrics")
	if err := apierror.FromResponse(resp, err); err != nil {
		g.state.Finish(err)
		return metrics.Snapshot{}, fmt.Errorf("request metrics.fetch: %w", err)
	}
	g.state.Finish(nil)

	return metrics.Snapshot(body), nil
}

type snapshotOut struct {
	ResponseTime      float64 `json:"responseTime"`
	RequestsPerSecond float64 `json:"requestsPerSecond"`
	ActiveConnections int     `json:"activeConnections"`
	TotalMemory       float64 `json:"totalMemory"`
	FreeMemory        float64 `json:"freeMemory"`
}
