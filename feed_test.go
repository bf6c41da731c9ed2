package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFeedServer runs a websocket endpoint that sends each record in msgs to
// every client, then holds the connection open until the client closes it.
func newFeedServer(t *testing.T, msgs ...any) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for _, m := range msgs {
			if err := conn.WriteJSON(m); err != nil {
				return
			}
		}
		_, _, _ = conn.ReadMessage() // block until the client hangs up
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestFeedDeliversRecords(t *testing.T) {
	srv := newFeedServer(t, map[string]any{
		"pitch":    5.0,
		"heading":  123.0,
		"waypoint": "KAPA",
	})

	store := NewStateStore()
	f := NewFeed(wsURL(srv), store)
	f.Start()
	defer f.Stop()

	require.Eventually(t, func() bool {
		return store.Get().Waypoint == "KAPA"
	}, 2*time.Second, 10*time.Millisecond)

	st := store.Get()
	assert.InDelta(t, 5.0, st.Pitch, 1e-4)
	assert.InDelta(t, 123.0, st.Heading, 1e-4)
	assert.InDelta(t, 29.92, st.BaroSetting, 1e-4, "absent fields fall back to defaults")
}

func TestFeedLastWriteWins(t *testing.T) {
	srv := newFeedServer(t,
		map[string]any{"altitude": 1000.0},
		map[string]any{"altitude": 2000.0, "waypoint": "DONE"},
	)

	store := NewStateStore()
	f := NewFeed(wsURL(srv), store)
	f.Start()
	defer f.Stop()

	require.Eventually(t, func() bool {
		return store.Get().Waypoint == "DONE"
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, float32(2000), store.Get().Altitude)
}

func TestFeedSkipsMalformedMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upgrader := websocket.Upgrader{}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.WriteMessage(websocket.TextMessage, []byte("{not json"))
		_ = conn.WriteJSON(map[string]any{"waypoint": "OK"})
		_, _, _ = conn.ReadMessage()
	}))
	defer srv.Close()

	store := NewStateStore()
	f := NewFeed(wsURL(srv), store)
	f.Start()
	defer f.Stop()

	require.Eventually(t, func() bool {
		return store.Get().Waypoint == "OK"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFeedStopDisconnects(t *testing.T) {
	srv := newFeedServer(t)

	store := NewStateStore()
	f := NewFeed(wsURL(srv), store)
	f.Start()

	require.Eventually(t, f.IsConnected, 2*time.Second, 10*time.Millisecond)

	f.Stop()
	require.Eventually(t, func() bool {
		return !f.IsConnected()
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFeedStartTwiceIsNoop(t *testing.T) {
	srv := newFeedServer(t)

	f := NewFeed(wsURL(srv), NewStateStore())
	f.Start()
	f.Start()
	defer f.Stop()

	require.Eventually(t, f.IsConnected, 2*time.Second, 10*time.Millisecond)
}

func TestFeedSurvivesUnreachableServer(t *testing.T) {
	store := NewStateStore()
	f := NewFeed("ws://127.0.0.1:1/telemetry", store)
	f.Start()

	time.Sleep(50 * time.Millisecond)
	assert.False(t, f.IsConnected())
	f.Stop()
}
