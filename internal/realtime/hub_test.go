package realtime_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"go-crm/internal/middleware"
	"go-crm/internal/realtime"
	realtimemock "go-crm/internal/realtime/mock"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const hubSecret = "hub-test-secret"

type fakePresence struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakePresence) UpdatePresence(ctx context.Context, userID, presence string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, userID+":"+presence)
	return nil
}

func (f *fakePresence) snapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func startHub(t *testing.T, presence realtime.PresenceUpdater) (*realtime.Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetJWTSecret(hubSecret)

	hub := realtime.NewHub(presence)
	r := gin.New()
	r.GET("/ws", middleware.AuthMiddleware(), hub.ServeWS)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    "Employee",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(hubSecret))
	require.NoError(t, err)
	return token
}

func dialAs(t *testing.T, url, userID string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url+"?token="+tokenFor(t, userID), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]json.RawMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	var frame map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &frame))
	return frame
}

func assertSilent(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(150*time.Millisecond)))
	_, raw, err := conn.ReadMessage()
	assert.Error(t, err, "unexpected frame %s", raw)
}

func TestHub_RejectsUnauthenticatedSocket(t *testing.T) {
	_, url := startHub(t, nil)

	_, resp, err := websocket.DefaultDialer.Dial(url+"?userId=victim", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHub_DeliverToRoom(t *testing.T) {
	hub, url := startHub(t, nil)

	alice := dialAs(t, url, "alice")
	bob := dialAs(t, url, "bob")

	assert.Eventually(t, func() bool {
		return hub.RoomSize("alice") == 1 && hub.RoomSize("bob") == 1
	}, time.Second, 10*time.Millisecond)

	env, err := realtime.NewEnvelope("alice", realtime.EventAlertReceived, map[string]string{"message": "hi"})
	require.NoError(t, err)
	hub.Deliver(env)

	frame := readFrame(t, alice)
	assert.JSONEq(t, `"alert_received"`, string(frame["event"]))
	assert.JSONEq(t, `{"message":"hi"}`, string(frame["data"]))

	assertSilent(t, bob)
}

func TestHub_Broadcast(t *testing.T) {
	hub, url := startHub(t, nil)

	a := dialAs(t, url, "a")
	b := dialAs(t, url, "b")

	assert.Eventually(t, func() bool {
		return hub.RoomSize("a") == 1 && hub.RoomSize("b") == 1
	}, time.Second, 10*time.Millisecond)

	env, err := realtime.NewEnvelope("", realtime.EventPresenceUpdated, map[string]string{"userId": "a"})
	require.NoError(t, err)
	hub.Deliver(env)

	for _, conn := range []*websocket.Conn{a, b} {
		frame := readFrame(t, conn)
		assert.JSONEq(t, `"presence_updated"`, string(frame["event"]))
	}
}

func TestHub_ForeignJoinReceivesNothing(t *testing.T) {
	presence := &fakePresence{}
	hub, url := startHub(t, presence)

	spy := dialAs(t, url, "attacker")
	assert.Eventually(t, func() bool { return hub.RoomSize("attacker") == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, spy.WriteJSON(map[string]any{"event": "join", "data": "victim"}))
	require.NoError(t, spy.WriteJSON(map[string]any{
		"event": "presence_change",
		"data":  map[string]string{"userId": "victim", "presence": "offline"},
	}))

	// presence is written for the socket's own user, which also proves both frames were handled
	assert.Eventually(t, func() bool {
		calls := presence.snapshot()
		return len(calls) == 1 && calls[0] == "attacker:offline"
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, hub.RoomSize("victim"))

	env, err := realtime.NewEnvelope("victim", realtime.EventAlertReceived, map[string]string{"message": "Leave Rejected: private"})
	require.NoError(t, err)
	hub.Deliver(env)

	assertSilent(t, spy)
}

func TestHub_ChatRelay(t *testing.T) {
	hub, url := startHub(t, nil)

	alice := dialAs(t, url, "alice")
	bob := dialAs(t, url, "bob")
	assert.Eventually(t, func() bool {
		return hub.RoomSize("alice") == 1 && hub.RoomSize("bob") == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, alice.WriteJSON(map[string]any{
		"event": "send_message",
		"data":  map[string]string{"to": "bob", "from": "someone-else", "text": "hello"},
	}))

	frame := readFrame(t, bob)
	assert.JSONEq(t, `"new_message"`, string(frame["event"]))
	var msg realtime.ChatMessage
	require.NoError(t, json.Unmarshal(frame["data"], &msg))
	assert.Equal(t, "alice", msg.From)
	assert.Equal(t, "bob", msg.To)
	assert.Equal(t, "hello", msg.Text)
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.SentAt.IsZero())

	require.NoError(t, alice.WriteJSON(map[string]any{"event": "typing", "data": map[string]string{"to": "bob"}}))
	frame = readFrame(t, bob)
	assert.JSONEq(t, `"typing"`, string(frame["event"]))
	assert.JSONEq(t, `{"from":"alice"}`, string(frame["data"]))

	assertSilent(t, alice)
}

func TestHub_ChatGoesThroughRelay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	middleware.SetJWTSecret(hubSecret)

	ctrl := gomock.NewController(t)
	relay := realtimemock.NewMockPublisher(ctrl)
	sent := make(chan realtime.ChatMessage, 1)
	relay.EXPECT().EmitToUser(gomock.Any(), "bob", realtime.EventNewMessage, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, data any) error {
			sent <- data.(realtime.ChatMessage)
			return nil
		})

	hub := realtime.NewHub(nil).WithRelay(relay)
	r := gin.New()
	r.GET("/ws", middleware.AuthMiddleware(), hub.ServeWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	alice := dialAs(t, url, "alice")
	require.NoError(t, alice.WriteJSON(map[string]any{
		"event": "send_message",
		"data":  map[string]string{"to": "bob", "text": "across processes"},
	}))

	select {
	case msg := <-sent:
		assert.Equal(t, "alice", msg.From)
		assert.Equal(t, "across processes", msg.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("chat message was not relayed")
	}
}

func TestHub_LeaveOnDisconnect(t *testing.T) {
	hub, url := startHub(t, nil)

	conn := dialAs(t, url, "dave")
	assert.Eventually(t, func() bool { return hub.RoomSize("dave") == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.RoomSize("dave") == 0 }, 2*time.Second, 10*time.Millisecond)
}
