/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/humaidq/labwave/lis"
	"github.com/humaidq/labwave/logging"
)

var logger = logging.Logger(logging.SourceFeed)

// State represents the feed connection state.
type State string

const (
	StateIdle               State = "idle"
	StateConnecting         State = "connecting"
	StateOpen               State = "open"
	StateReconnectScheduled State = "reconnect-scheduled"
)

// reconnectDelay is the fixed wait before re-dialing after a closed or
// failed connection. There is no backoff.
const reconnectDelay = 2 * time.Second

// envelope is one inbound feed message. Either section may be absent;
// encoding/json matches "Summary"/"summary" case-insensitively.
type envelope struct {
	Summary   *lis.SummarySnapshot   `json:"summary"`
	Analytics *lis.AnalyticsSnapshot `json:"analytics"`
}

// Subscriber is notified after the feed applies a new snapshot.
type Subscriber func()

// Client maintains a single reconnecting WebSocket subscription to the
// backend summary feed and publishes the latest snapshots.
type Client struct {
	url string

	mu          sync.RWMutex
	state       State
	closed      bool
	conn        *websocket.Conn
	reconnect   *time.Timer
	summary     lis.SummarySnapshot
	analytics   lis.AnalyticsSnapshot
	subscribers []Subscriber
}

// URL derives the feed endpoint from the backend base URL, switching
// the scheme to ws/wss.
func URL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid backend URL: %w", err)
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported backend URL scheme %q", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/summary/ws"
	return u.String(), nil
}

// NewClient creates a feed client for the given ws/wss endpoint. Call
// Start to begin receiving.
func NewClient(feedURL string) *Client {
	return &Client{
		url:   feedURL,
		state: StateIdle,
	}
}

// State returns the current connection state.
func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Summary returns the latest dashboard counters.
func (c *Client) Summary() lis.SummarySnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.summary
}

// Analytics returns the latest chart series.
func (c *Client) Analytics() lis.AnalyticsSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.analytics
}

// Seed installs snapshots fetched over REST before the socket delivers
// its first message. A no-op once the client is stopped.
func (c *Client) Seed(summary *lis.SummarySnapshot, analytics *lis.AnalyticsSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if summary != nil {
		c.summary = *summary
	}
	if analytics != nil {
		c.analytics = *analytics
	}
}

// Subscribe registers a callback invoked after each applied snapshot.
// Callbacks run on the feed's read goroutine and must not block.
func (c *Client) Subscribe(fn Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Start dials the feed and keeps the subscription alive until Stop is
// called or ctx is cancelled.
func (c *Client) Start(ctx context.Context) {
	go c.connect(ctx)
}

// Stop tears the client down: the live socket is closed, any pending
// reconnect is cancelled, and late messages or timers are discarded.
func (c *Client) Stop() {
	c.mu.Lock()
	c.closed = true
	c.state = StateIdle
	if c.reconnect != nil {
		c.reconnect.Stop()
		c.reconnect = nil
	}
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		conn.Close(websocket.StatusNormalClosure, "shutting down")
	}
}

func (c *Client) connect(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.state = StateConnecting
	c.mu.Unlock()

	conn, _, err := websocket.Dial(ctx, c.url, nil)
	if err != nil {
		logger.Warn("Feed connection failed", "url", c.url, "error", err)
		c.scheduleReconnect(ctx)
		return
	}
	// Snapshot envelopes can exceed the 32KiB default read limit.
	conn.SetReadLimit(1 << 20)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		conn.Close(websocket.StatusNormalClosure, "shutting down")
		return
	}
	c.conn = conn
	c.state = StateOpen
	if c.reconnect != nil {
		c.reconnect.Stop()
		c.reconnect = nil
	}
	c.mu.Unlock()

	logger.Info("Feed connected", "url", c.url)
	c.readLoop(ctx, conn)
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			c.mu.Lock()
			if c.closed {
				c.mu.Unlock()
				return
			}
			c.conn = nil
			c.mu.Unlock()

			logger.Warn("Feed connection lost", "error", err)
			c.scheduleReconnect(ctx)
			return
		}
		c.apply(data)
	}
}

// apply parses one feed message and replaces the stored snapshots.
// Each present section replaces its view-model wholesale; a malformed
// payload is logged and prior state is kept.
func (c *Client) apply(data []byte) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		logger.Warn("Discarding malformed feed message", "error", err)
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if env.Summary != nil {
		c.summary = *env.Summary
	}
	if env.Analytics != nil {
		c.analytics = *env.Analytics
	}
	subscribers := make([]Subscriber, len(c.subscribers))
	copy(subscribers, c.subscribers)
	c.mu.Unlock()

	if env.Summary == nil && env.Analytics == nil {
		return
	}
	for _, fn := range subscribers {
		fn()
	}
}

// scheduleReconnect arms a single reconnect attempt after the fixed
// delay, replacing any previously scheduled one.
func (c *Client) scheduleReconnect(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || ctx.Err() != nil {
		return
	}
	c.state = StateReconnectScheduled
	if c.reconnect != nil {
		c.reconnect.Stop()
	}
	c.reconnect = time.AfterFunc(reconnectDelay, func() {
		c.connect(ctx)
	})
}
