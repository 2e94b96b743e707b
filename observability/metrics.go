// Package observability holds the process-wide counters of the game runtime.
package observability

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Stats is the serializable view exposed by the debug server.
type Stats struct {
	RoomsCreated    uint64  `json:"rooms_created"`
	RoomsStarted    uint64  `json:"rooms_started"`
	RoomsFinished   uint64  `json:"rooms_finished"`
	RoomsEvicted    uint64  `json:"rooms_evicted"`
	GamePanics      uint64  `json:"game_panics"`
	MatchTimeouts   uint64  `json:"match_timeouts"`
	InboxOverflows  uint64  `json:"inbox_overflows"`
	GatewayRetries  uint64  `json:"gateway_retries"`
	GatewayDropped  uint64  `json:"gateway_dropped"`
	WorkerRestarts  uint64  `json:"worker_restarts"`
	ProcessStatus   string  `json:"process_status"`
	ProcessCPU      float64 `json:"process_cpu"`
	ProcessRAM      float32 `json:"process_ram"`
	AllocMemMb      uint64  `json:"alloc_mem_mb"`
	NumGC           uint32  `json:"num_gc"`
	NumGoroutine    int     `json:"num_goroutine"`
	UptimeInSeconds int64   `json:"uptime_in_seconds"`
}

// Metrics is safe for concurrent use. A nil *Metrics discards everything,
// which keeps unit tests free of wiring.
type Metrics struct {
	startedAt time.Time

	roomsCreated   atomic.Uint64
	roomsStarted   atomic.Uint64
	roomsFinished  atomic.Uint64
	roomsEvicted   atomic.Uint64
	gamePanics     atomic.Uint64
	matchTimeouts  atomic.Uint64
	inboxOverflows atomic.Uint64
	gatewayRetries atomic.Uint64
	gatewayDropped atomic.Uint64
	workerRestarts atomic.Uint64

	mu     sync.RWMutex
	status string
	cpu    float64
	ram    float32
}

func NewMetrics() *Metrics {
	return &Metrics{startedAt: time.Now()}
}

func (m *Metrics) IncrRoomsCreated() {
	if m != nil {
		m.roomsCreated.Add(1)
	}
}

func (m *Metrics) IncrRoomsStarted() {
	if m != nil {
		m.roomsStarted.Add(1)
	}
}

func (m *Metrics) IncrRoomsFinished() {
	if m != nil {
		m.roomsFinished.Add(1)
	}
}

func (m *Metrics) AddRoomsEvicted(n int) {
	if m != nil && n > 0 {
		m.roomsEvicted.Add(uint64(n))
	}
}

func (m *Metrics) IncrGamePanics() {
	if m != nil {
		m.gamePanics.Add(1)
	}
}

func (m *Metrics) IncrMatchTimeouts() {
	if m != nil {
		m.matchTimeouts.Add(1)
	}
}

func (m *Metrics) IncrInboxOverflows() {
	if m != nil {
		m.inboxOverflows.Add(1)
	}
}

func (m *Metrics) IncrGatewayRetries() {
	if m != nil {
		m.gatewayRetries.Add(1)
	}
}

func (m *Metrics) IncrGatewayDropped() {
	if m != nil {
		m.gatewayDropped.Add(1)
	}
}

// IncrWorkerRestarts returns the new total.
func (m *Metrics) IncrWorkerRestarts() uint64 {
	if m == nil {
		return 0
	}
	return m.workerRestarts.Add(1)
}

func (m *Metrics) SetProcess(status string, cpu float64, ram float32) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status, m.cpu, m.ram = status, cpu, ram
}

func (m *Metrics) Snapshot() Stats {
	if m == nil {
		return Stats{}
	}
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	m.mu.RLock()
	status, cpu, ram := m.status, m.cpu, m.ram
	m.mu.RUnlock()

	return Stats{
		RoomsCreated:    m.roomsCreated.Load(),
		RoomsStarted:    m.roomsStarted.Load(),
		RoomsFinished:   m.roomsFinished.Load(),
		RoomsEvicted:    m.roomsEvicted.Load(),
		GamePanics:      m.gamePanics.Load(),
		MatchTimeouts:   m.matchTimeouts.Load(),
		InboxOverflows:  m.inboxOverflows.Load(),
		GatewayRetries:  m.gatewayRetries.Load(),
		GatewayDropped:  m.gatewayDropped.Load(),
		WorkerRestarts:  m.workerRestarts.Load(),
		ProcessStatus:   status,
		ProcessCPU:      cpu,
		ProcessRAM:      ram,
		AllocMemMb:      mem.Alloc / 1024 / 1024,
		NumGC:           mem.NumGC,
		NumGoroutine:    runtime.NumGoroutine(),
		UptimeInSeconds: int64(time.Since(m.startedAt).Seconds()),
	}
}
