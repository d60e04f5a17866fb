package websocket

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type wsMessage struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

func dialTestHub(t *testing.T, hub *Hub) (*websocket.Conn, func()) {
	t.Helper()

	handler := NewHandler(hub, testLogger(), true)
	server := httptest.NewServer(handler)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}

	return conn, func() {
		conn.Close()
		server.Close()
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) wsMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg wsMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestHubConnectionGreeting(t *testing.T) {
	hub := NewHub(testLogger())
	hub.Start()
	defer hub.Stop()

	conn, cleanup := dialTestHub(t, hub)
	defer cleanup()

	msg := readMessage(t, conn)
	assert.Equal(t, TypeConnection, msg.Type)
	assert.Contains(t, string(msg.Data), "connected")
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(testLogger())
	hub.Start()
	defer hub.Stop()

	conn, cleanup := dialTestHub(t, hub)
	defer cleanup()

	// Drain the greeting first
	greeting := readMessage(t, conn)
	require.Equal(t, TypeConnection, greeting.Type)

	hub.Broadcast(TypeDataRefresh, map[string]interface{}{"records": 1000})

	msg := readMessage(t, conn)
	assert.Equal(t, TypeDataRefresh, msg.Type)
	assert.Contains(t, string(msg.Data), "1000")
}

func TestHubClientCount(t *testing.T) {
	hub := NewHub(testLogger())
	hub.Start()
	defer hub.Stop()

	assert.Equal(t, 0, hub.ClientCount())

	conn, cleanup := dialTestHub(t, hub)
	defer cleanup()

	// Registration happens on the hub goroutine
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHubBroadcastWithoutClients(t *testing.T) {
	hub := NewHub(testLogger())
	hub.Start()
	defer hub.Stop()

	// Must not block or panic with nobody listening
	hub.Broadcast(TypeDataRefresh, map[string]int{"records": 5})
}

func TestHandlerRejectsPlainRequest(t *testing.T) {
	hub := NewHub(testLogger())
	hub.Start()
	defer hub.Stop()

	handler := NewHandler(hub, testLogger(), true)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
