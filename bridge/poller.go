/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bridge

import (
	"context"
	"sync"
	"time"
)

// Status is the published reachability of the integration service.
type Status string

const (
	StatusLoading      Status = "loading"
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

// pollInterval is the fixed probe cadence. No backoff and no
// retry-now-on-failure.
const pollInterval = 5 * time.Second

// StatusPoller keeps a tri-state connection status for the integration
// service current by probing its health endpoint. The status starts as
// loading and never returns to loading once a probe has resolved.
type StatusPoller struct {
	client   *Client
	interval time.Duration

	mu      sync.RWMutex
	status  Status
	stopped bool
	cancel  context.CancelFunc
}

// NewStatusPoller creates a poller for the given client. Call Start to
// begin probing.
func NewStatusPoller(client *Client) *StatusPoller {
	return &StatusPoller{
		client:   client,
		interval: pollInterval,
		status:   StatusLoading,
	}
}

// Status returns the last published status.
func (p *StatusPoller) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// Start probes immediately and then on a fixed interval until Stop is
// called or ctx is cancelled. Probes run independently; a slow probe
// does not delay the next tick, and the latest resolved value wins.
func (p *StatusPoller) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		cancel()
		return
	}
	p.cancel = cancel
	p.mu.Unlock()

	go p.probe(ctx)
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				go p.probe(ctx)
			}
		}
	}()
}

// Stop halts polling. Probes that resolve afterwards do not update the
// published status.
func (p *StatusPoller) Stop() {
	p.mu.Lock()
	p.stopped = true
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (p *StatusPoller) probe(ctx context.Context) {
	status := StatusDisconnected
	if p.client.Ping(ctx) {
		status = StatusConnected
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	if p.status != status {
		logger.Info("Integration service status changed", "status", status)
	}
	p.status = status
}
