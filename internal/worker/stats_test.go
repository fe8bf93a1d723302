package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pacp_coder/internal/worker"
)

type staticCounter int

func (c staticCounter) Count() int { return int(c) }

func TestStatsReporterStopsOnContextCancel(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())

	reporter := worker.NewStatsReporter(staticCounter(3), 10*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		done <- reporter.Run(ctx)
	}()

	// Let it tick a few times, then shut down.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		rq.NoError(err)
	case <-time.After(time.Second):
		t.Fatal("stats reporter did not stop")
	}
}
