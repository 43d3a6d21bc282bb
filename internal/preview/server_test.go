package preview

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/mainviews/internal/app"
	"github.com/muurk/mainviews/internal/event"
)

// fakeSession is only touched by the server loop.
type fakeSession struct {
	seq  uint64
	last string
}

func (f *fakeSession) Step(ev event.Event) error {
	f.seq++
	f.last = ev.String()
	return nil
}

func (f *fakeSession) Tick() error {
	f.seq++
	return nil
}

func (f *fakeSession) Snapshot() app.Frame {
	return app.Frame{Seq: f.seq, Menu: f.last, Lines: []string{"preview"}}
}

func startServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	srv := New(Config{FramePeriod: 10 * time.Millisecond}, &fakeSession{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		cancel()
		<-done
		ts.Close()
	})
	return srv, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// readUntil reads messages until match accepts one.
func readUntil(t *testing.T, conn *websocket.Conn, match func(Message) bool) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		if match(msg) {
			return msg
		}
	}
}

func TestHealthz(t *testing.T) {
	srv := New(Config{}, &fakeSession{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

func TestFrameBeforeFirstRender(t *testing.T) {
	srv := New(Config{}, &fakeSession{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/frame", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestWebSocketStreamsFrames(t *testing.T) {
	_, ts := startServer(t)
	conn := dial(t, ts)

	first := readUntil(t, conn, func(m Message) bool { return m.Type == TypeFrame })
	require.NotNil(t, first.Frame)
	assert.Equal(t, []string{"preview"}, first.Frame.Lines)

	next := readUntil(t, conn, func(m Message) bool {
		return m.Type == TypeFrame && m.Frame.Seq > first.Frame.Seq
	})
	assert.Greater(t, next.Frame.Seq, first.Frame.Seq)
}

func TestWebSocketEvent(t *testing.T) {
	_, ts := startServer(t)
	conn := dial(t, ts)

	require.NoError(t, conn.WriteJSON(Message{Type: TypeEvent, Event: "long-enter"}))

	msg := readUntil(t, conn, func(m Message) bool {
		return m.Type == TypeFrame && m.Frame.Menu == "long-enter"
	})
	assert.Equal(t, "long-enter", msg.Frame.Menu)
}

func TestWebSocketBadMessages(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantErr string
	}{
		{"unknown event", `{"type":"event","event":"bogus"}`, "unknown event"},
		{"unknown type", `{"type":"hello"}`, "unknown message type"},
		{"not json", `enter`, "invalid character"},
	}

	_, ts := startServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := dial(t, ts)
			require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(tt.message)))

			msg := readUntil(t, conn, func(m Message) bool { return m.Type == TypeError })
			assert.Contains(t, msg.Error, tt.wantErr)
		})
	}
}

func TestPostEvent(t *testing.T) {
	_, ts := startServer(t)

	resp, err := http.PostForm(ts.URL+"/event", url.Values{"event": {"rotary-right"}})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	assert.Eventually(t, func() bool {
		resp, err := http.Get(ts.URL + "/frame")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		var frame app.Frame
		if err := json.NewDecoder(resp.Body).Decode(&frame); err != nil {
			return false
		}
		return frame.Menu == "rotary-right"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestPostEventErrors(t *testing.T) {
	srv := New(Config{}, &fakeSession{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/event", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/event", strings.NewReader("event=bogus"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnqueueFull(t *testing.T) {
	srv := New(Config{}, &fakeSession{})
	for i := 0; i < eventQueueSize; i++ {
		require.NoError(t, srv.Enqueue(event.RotaryRight))
	}
	assert.ErrorIs(t, srv.Enqueue(event.RotaryRight), ErrQueueFull)
}

func TestTXTRecords(t *testing.T) {
	txt := TXTRecords()
	assert.Contains(t, txt, "path=/ws")
	assert.Contains(t, txt, "frame=/frame")
}
