package service

import (
	"context"
	"sync"
	"time"

	"github.com/akhmetovr/go-grid-keeper/internal/adapter"
	"github.com/akhmetovr/go-grid-keeper/internal/logger"
)

// Monitor derives the single online/offline boolean the controller consumes:
// online means the network is up AND the remote service answered the last
// health probe. It probes on a ticker and reports each transition to exactly
// one observer.
type Monitor struct {
	remote   adapter.DriverClient
	log      *logger.Logger
	interval time.Duration
	onChange func(online bool)

	mu        sync.Mutex
	networkUp bool
	serverUp  bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewMonitor creates a Monitor that probes remote.Ping every interval. The
// monitor is idle until Start is called. Both axes start optimistic so a
// reachable service is treated as online from the first probe.
func NewMonitor(remote adapter.DriverClient, interval time.Duration, log *logger.Logger) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Monitor{
		remote:    remote,
		log:       log,
		interval:  interval,
		networkUp: true,
		serverUp:  true,
	}
}

// OnChange registers the single transition observer. Must be called before
// Start.
func (m *Monitor) OnChange(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// Online reports the current combined connectivity state.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.networkUp && m.serverUp
}

// SetNetworkUp flips the network axis, e.g. from an OS-level signal or a
// manual offline switch. Dropping the network also invalidates the last
// probe result: it will be re-established by the first probe after the
// network returns.
func (m *Monitor) SetNetworkUp(up bool) {
	m.mu.Lock()
	was := m.networkUp && m.serverUp
	m.networkUp = up
	if !up {
		m.serverUp = false
	}
	now := m.networkUp && m.serverUp
	fn := m.onChange
	m.mu.Unlock()

	if was != now && fn != nil {
		fn(now)
	}
}

// Probe performs one synchronous health check and applies the result.
func (m *Monitor) Probe(ctx context.Context) bool {
	m.mu.Lock()
	networkUp := m.networkUp
	m.mu.Unlock()

	if !networkUp {
		return false
	}

	reachable := m.remote.Ping(ctx) == nil

	m.mu.Lock()
	was := m.networkUp && m.serverUp
	m.serverUp = reachable
	now := m.networkUp && m.serverUp
	fn := m.onChange
	m.mu.Unlock()

	if was != now {
		m.log.Info().Bool("online", now).Msg("connectivity changed")
		if fn != nil {
			fn(now)
		}
	}

	return now
}

// Start launches the background probe loop. It stops any previously running
// loop first. The goroutine exits when ctx is cancelled or Stop is called.
func (m *Monitor) Start(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()

		m.Probe(loopCtx)

		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				m.Probe(loopCtx)
			}
		}
	}()
}

// Stop cancels the probe loop and blocks until it has fully exited. Safe to
// call when the monitor is not running.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}
