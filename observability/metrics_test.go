package observability

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetrics_Snapshot(t *testing.T) {
	req := require.New(t)
	m := NewMetrics()

	m.IncrRoomsCreated()
	m.IncrRoomsCreated()
	m.IncrInboxOverflows()
	m.AddRoomsEvicted(3)
	m.AddRoomsEvicted(-1)
	req.Equal(uint64(1), m.IncrWorkerRestarts())
	m.SetProcess("RUNNING", 12.5, 3.2)

	stats := m.Snapshot()
	req.Equal(uint64(2), stats.RoomsCreated)
	req.Equal(uint64(1), stats.InboxOverflows)
	req.Equal(uint64(3), stats.RoomsEvicted)
	req.Equal(uint64(1), stats.WorkerRestarts)
	req.Equal("RUNNING", stats.ProcessStatus)
	req.Positive(stats.NumGoroutine)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	req := require.New(t)
	var m *Metrics

	req.NotPanics(func() {
		m.IncrGatewayDropped()
		m.SetProcess("SLEEP", 1, 1)
	})
	req.Equal(Stats{}, m.Snapshot())
}
