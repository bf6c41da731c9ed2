package main

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Feed streams FlightState records over a websocket and overwrites the
// latest-value store. The render loop never waits on it: updates are
// last-write-wins, there is no queue.
type Feed struct {
	url   string
	store *StateStore

	mu        sync.Mutex
	cancel    context.CancelFunc
	running   bool
	connected bool
}

// NewFeed creates a feed reading from url into store.
func NewFeed(url string, store *StateStore) *Feed {
	return &Feed{url: url, store: store}
}

// Start launches the background stream. Calling it twice is a no-op.
func (f *Feed) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.running {
		return
	}
	f.running = true

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	go f.run(ctx)
}

// Stop cancels the stream and any pending reconnect.
func (f *Feed) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.running = false
}

// IsConnected reports whether a websocket session is currently open.
func (f *Feed) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

func (f *Feed) setConnected(v bool) {
	f.mu.Lock()
	f.connected = v
	f.mu.Unlock()
}

// run dials, reads until the connection drops, then reconnects after a short
// pause, forever, until the context is cancelled.
func (f *Feed) run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, f.url, nil)
		if err != nil {
			log.Printf("Feed dial error: %v", err)
			select {
			case <-time.After(time.Second):
				continue
			case <-ctx.Done():
				return
			}
		}

		log.Printf("Feed connected to %s", f.url)
		f.setConnected(true)
		f.readLoop(ctx, conn)
		f.setConnected(false)

		if ctx.Err() != nil {
			return
		}
		log.Printf("Feed disconnected, reconnecting")
	}
}

func (f *Feed) readLoop(ctx context.Context, conn *websocket.Conn) {
	done := make(chan struct{})
	defer close(done)

	// Unblock the pending read when the feed is stopped.
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
			conn.Close()
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				log.Printf("Feed read error: %v", err)
			}
			return
		}

		// Each message is a complete record; absent fields fall back to
		// the defaults rather than sticking at stale values.
		st := DefaultFlightState()
		if err := json.Unmarshal(data, &st); err != nil {
			log.Printf("Feed decode error: %v", err)
			continue
		}
		f.store.Set(st)
	}
}
