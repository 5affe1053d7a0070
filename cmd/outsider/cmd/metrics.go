package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/atulub35/outsider-client-go/internal/metrics"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show backend performance metrics",
	RunE:  runMetrics,
}

func init() {
	metricsCmd.Flags().Bool("watch", false, "keep polling until interrupted")
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, _ []string) error {
	container := newContainer(cmd.Context())

	watch, _ := cmd.Flags().GetBool("watch")

	updates := make(chan metrics.Snapshot, 1)
	container.Metrics.Subscribe(func(snapshot metrics.Snapshot) {
		select {
		case updates <- snapshot:
		default:
		}
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	container.Metrics.Start(ctx)
	defer container.Metrics.Stop()

	for {
		select {
		case snapshot := <-updates:
			printSnapshot(snapshot)
			if !watch {
				return nil
			}
		case <-time.After(searchTimeout):
			if !watch {
				return fmt.Errorf("metrics fetch timed out: %s", container.MetricsCallState.ErrorMessage())
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func printSnapshot(s metrics.Snapshot) {
	fmt.Printf(
		"response time: %.1fms  requests/s: %.1f  active connections: %d  memory: %.1fMB total, %.1fMB free\n",
		s.ResponseTime, s.RequestsPerSecond, s.ActiveConnections, s.TotalMemory, s.FreeMemory,
	)
}
