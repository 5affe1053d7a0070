package metrics_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/atulub35/outsider-client-go/internal/metrics"
	metricsmock "github.com/atulub35/outsider-client-go/internal/metrics/mock"
	pkglogstub "github.com/atulub35/outsider-client-go/pkg/log/stub"
)

func TestPoller_FetchesImmediatelyThenPerInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var fetches atomic.Int64
	gateway := metricsmock.NewGateway(ctrl)
	gateway.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(context.Context) (metrics.Snapshot, error) {
		return metrics.Snapshot{ActiveConnections: int(fetches.Add(1))}, nil
	}).MinTimes(3)

	observed := make(chan metrics.Snapshot, 100)

	poller := metrics.NewPoller(gateway, pkglogstub.NewLogger(), metrics.WithPollInterval(10*time.Millisecond))
	poller.Subscribe(func(snapshot metrics.Snapshot) {
		observed <- snapshot
	})

	poller.Start(context.Background())

	first := awaitSnapshot(t, observed)
	assert.Equal(t, 1, first.ActiveConnections)

	awaitSnapshot(t, observed)
	awaitSnapshot(t, observed)

	poller.Stop()

	require.Equal(t, poller.Latest().ActiveConnections, int(fetches.Load()))
}

func TestPoller_Stop_PreventsFurtherObservations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := metricsmock.NewGateway(ctrl)
	gateway.EXPECT().Fetch(gomock.Any()).Return(metrics.Snapshot{ActiveConnections: 1}, nil).AnyTimes()

	observed := make(chan metrics.Snapshot, 100)

	poller := metrics.NewPoller(gateway, pkglogstub.NewLogger(), metrics.WithPollInterval(10*time.Millisecond))
	poller.Subscribe(func(snapshot metrics.Snapshot) {
		observed <- snapshot
	})

	poller.Start(context.Background())
	awaitSnapshot(t, observed)

	poller.Stop()
	drain(observed)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, observed)
}

func TestPoller_FetchFailure_KeepsPolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := metricsmock.NewGateway(ctrl)
	first := gateway.EXPECT().Fetch(gomock.Any()).Return(metrics.Snapshot{}, errors.New("unexpected"))
	gateway.EXPECT().Fetch(gomock.Any()).Return(metrics.Snapshot{ActiveConnections: 42}, nil).MinTimes(1).After(first)

	observed := make(chan metrics.Snapshot, 100)

	poller := metrics.NewPoller(gateway, pkglogstub.NewLogger(), metrics.WithPollInterval(10*time.Millisecond))
	poller.Subscribe(func(snapshot metrics.Snapshot) {
		observed <- snapshot
	})

	poller.Start(context.Background())
	defer poller.Stop()

	snapshot := awaitSnapshot(t, observed)
	assert.Equal(t, 42, snapshot.ActiveConnections)
}

func TestPoller_StartTwice_RunsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var fetches atomic.Int64
	gateway := metricsmock.NewGateway(ctrl)
	gateway.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(context.Context) (metrics.Snapshot, error) {
		fetches.Add(1)
		return metrics.Snapshot{}, nil
	}).AnyTimes()

	poller := metrics.NewPoller(gateway, pkglogstub.NewLogger(), metrics.WithPollInterval(time.Hour))

	ctx := context.Background()
	poller.Start(ctx)
	poller.Start(ctx)
	poller.Stop()

	assert.Equal(t, int64(1), fetches.Load())
}

func awaitSnapshot(t *testing.T, observed chan metrics.Snapshot) metrics.Snapshot {
	t.Helper()

	select {
	case snapshot := <-observed:
		return snapshot
	case <-time.After(5 * time.Second):
		t.Fatal("no snapshot observed in time")
		return metrics.Snapshot{}
	}
}

func drain(observed chan metrics.Snapshot) {
	for {
		select {
		case <-observed:
		default:
			return
		}
	}
}
