package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-agents/loom/pkg/models"
)

type wsMessage struct {
	Type    string        `json:"type"`
	Channel string        `json:"channel,omitempty"`
	Event   *models.Event `json:"event,omitempty"`
}

func dialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) wsMessage {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var msg wsMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func sendMessage(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestWSSubscribeAndCatchup(t *testing.T) {
	s, coordinator := newTestServer(t)

	// Seed the log before the client connects.
	err := coordinator.PersistPlan(context.Background(), &models.Plan{
		Goal: models.Goal{
			SessionID:            "sess-ws",
			Objective:            "draft it",
			RequiredCapabilities: []string{"draft"},
		},
		Steps: []models.StepRecord{{Capability: "draft", Status: models.StepStatusPending}},
	})
	require.NoError(t, err)

	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	conn := dialWS(t, strings.Replace(srv.URL, "http", "ws", 1)+"/ws")

	msg := readMessage(t, conn)
	assert.Equal(t, "connection.established", msg.Type)

	sendMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "sess-ws"})

	msg = readMessage(t, conn)
	require.Equal(t, "subscription.confirmed", msg.Type)
	assert.Equal(t, "sess-ws", msg.Channel)

	// Catchup replays the persisted plan-created event.
	msg = readMessage(t, conn)
	require.Equal(t, "catchup.event", msg.Type)
	require.NotNil(t, msg.Event)
	assert.Equal(t, models.EventTypePlanCreated, msg.Event.Type)
}

func TestWSLiveDelivery(t *testing.T) {
	s, _ := newTestServer(t)

	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	conn := dialWS(t, strings.Replace(srv.URL, "http", "ws", 1)+"/ws")
	readMessage(t, conn) // connection.established

	sendMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "sess-live"})
	readMessage(t, conn) // subscription.confirmed

	require.Eventually(t, func() bool {
		return s.ConnManager().subscriberCount("sess-live") == 1
	}, 2*time.Second, 10*time.Millisecond)

	s.ConnManager().Deliver([]models.Event{
		models.NewEvent(models.EventTypeNodeStart, "sess-live", map[string]any{"capability": "draft"}),
		models.NewEvent(models.EventTypeNodeStart, "sess-other", nil),
	})

	msg := readMessage(t, conn)
	require.Equal(t, "event", msg.Type)
	assert.Equal(t, "sess-live", msg.Channel)
	require.NotNil(t, msg.Event)
	assert.Equal(t, models.EventTypeNodeStart, msg.Event.Type)

	// The sess-other event must not reach this subscriber; a ping round
	// trip proves nothing else is queued.
	sendMessage(t, conn, ClientMessage{Action: "ping"})
	msg = readMessage(t, conn)
	assert.Equal(t, "pong", msg.Type)
}

func TestWSUnsubscribeStopsDelivery(t *testing.T) {
	s, _ := newTestServer(t)

	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	conn := dialWS(t, strings.Replace(srv.URL, "http", "ws", 1)+"/ws")
	readMessage(t, conn) // connection.established

	sendMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "sess-u"})
	readMessage(t, conn) // subscription.confirmed

	require.Eventually(t, func() bool {
		return s.ConnManager().subscriberCount("sess-u") == 1
	}, 2*time.Second, 10*time.Millisecond)

	sendMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: "sess-u"})

	require.Eventually(t, func() bool {
		return s.ConnManager().subscriberCount("sess-u") == 0
	}, 2*time.Second, 10*time.Millisecond)

	s.ConnManager().Deliver([]models.Event{
		models.NewEvent(models.EventTypeNodeStart, "sess-u", nil),
	})

	sendMessage(t, conn, ClientMessage{Action: "ping"})
	msg := readMessage(t, conn)
	assert.Equal(t, "pong", msg.Type)
}

func TestWSSubscribeRequiresChannel(t *testing.T) {
	s, _ := newTestServer(t)

	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	conn := dialWS(t, strings.Replace(srv.URL, "http", "ws", 1)+"/ws")
	readMessage(t, conn) // connection.established

	sendMessage(t, conn, ClientMessage{Action: "subscribe"})

	msg := readMessage(t, conn)
	assert.Equal(t, "error", msg.Type)
}
