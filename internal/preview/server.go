package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/mainviews/internal/app"
	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/logging"
)

const (
	// DefaultFramePeriod is the interval of frames without input
	DefaultFramePeriod = 100 * time.Millisecond

	// eventQueueSize bounds events waiting for the loop
	eventQueueSize = 64

	shutdownTimeout = 5 * time.Second
)

// ErrQueueFull is returned when the event queue cannot take another event.
var ErrQueueFull = errors.New("event queue full")

// Session is the editor the server drives.
type Session interface {
	Step(ev event.Event) error
	Tick() error
	Snapshot() app.Frame
}

// Config holds the server configuration
type Config struct {
	Host string
	Port int
	// FramePeriod <= 0 selects DefaultFramePeriod
	FramePeriod time.Duration
	// Advertise registers the server over mDNS
	Advertise bool
	Instance  string
}

// Server streams frames of one Session to WebSocket clients.
type Server struct {
	config   Config
	session  Session
	upgrader websocket.Upgrader

	events     chan event.Event
	register   chan *client
	unregister chan *client
	done       chan struct{}

	// clients is owned by the loop goroutine
	clients map[*client]bool

	mu     sync.Mutex
	latest []byte
	addr   net.Addr
}

// New creates a server for session.
func New(config Config, session Session) *Server {
	if config.FramePeriod <= 0 {
		config.FramePeriod = DefaultFramePeriod
	}
	return &Server{
		config:  config,
		session: session,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			// preview clients are served from anywhere on the LAN
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		events:     make(chan event.Event, eventQueueSize),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		clients:    make(map[*client]bool),
	}
}

// Handler returns the HTTP handler serving every endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/frame", s.handleFrame)
	mux.HandleFunc("/event", s.handleEvent)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}

// Enqueue queues ev for the loop.
func (s *Server) Enqueue(ev event.Event) error {
	select {
	case s.events <- ev:
		return nil
	case <-s.done:
		return errors.New("server stopped")
	default:
		return ErrQueueFull
	}
}

// Latest returns the JSON encoding of the last rendered frame, nil before
// the first frame.
func (s *Server) Latest() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Run is the loop owning the session. It renders a frame for every queued
// event and every frame period, and returns when ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.config.FramePeriod)
	defer ticker.Stop()
	defer close(s.done)

	s.broadcast(s.session.Tick())

	for {
		select {
		case <-ctx.Done():
			for c := range s.clients {
				s.drop(c)
			}
			return nil

		case c := <-s.register:
			s.clients[c] = true
			logging.LogPreviewClient(c.remoteAddr, "registered")
			if latest := s.Latest(); latest != nil {
				c.send <- latest
			}

		case c := <-s.unregister:
			if s.clients[c] {
				s.drop(c)
			}

		case ev := <-s.events:
			s.broadcast(s.session.Step(ev))

		case <-ticker.C:
			s.broadcast(s.session.Tick())
		}
	}
}

func (s *Server) drop(c *client) {
	delete(s.clients, c)
	close(c.send)
	logging.LogPreviewClient(c.remoteAddr, "unregistered")
}

// broadcast encodes the current frame and fans it out. A step error is
// reported to the clients after the frame.
func (s *Server) broadcast(stepErr error) {
	frame := s.session.Snapshot()
	data, err := json.Marshal(Message{Type: TypeFrame, Frame: &frame})
	if err != nil {
		logging.Error("Failed to encode frame", zap.Error(err))
		return
	}
	inner, _ := json.Marshal(frame)

	s.mu.Lock()
	s.latest = inner
	s.mu.Unlock()

	messages := [][]byte{data}
	if stepErr != nil {
		logging.Error("Session step failed", zap.Error(stepErr))
		if e, err := json.Marshal(Message{Type: TypeError, Error: stepErr.Error()}); err == nil {
			messages = append(messages, e)
		}
	}

	for c := range s.clients {
		for _, m := range messages {
			select {
			case c.send <- m:
			default:
				logging.Warn("Preview client too slow, dropping",
					zap.String("remote_addr", c.remoteAddr),
				)
				s.drop(c)
			}
			if !s.clients[c] {
				break
			}
		}
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	c := newClient(s, conn, r.RemoteAddr)
	logging.LogPreviewClient(c.remoteAddr, "connected")

	select {
	case s.register <- c:
	case <-s.done:
		_ = conn.Close()
		return
	}

	go c.writePump()
	c.readPump()
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	latest := s.Latest()
	if latest == nil {
		http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(latest)
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ev, err := event.Parse(r.FormValue("event"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.Enqueue(ev); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// Addr returns the listening address once ListenAndServe is running.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// ListenAndServe runs the loop and the HTTP server until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.mu.Lock()
	s.addr = listener.Addr()
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loopErr := make(chan error, 1)
	go func() { loopErr <- s.Run(ctx) }()

	if s.config.Advertise {
		port := listener.Addr().(*net.TCPAddr).Port
		adv, err := Advertise(s.config.Instance, port)
		if err != nil {
			logging.Warn("mDNS advertisement failed", zap.Error(err))
		} else {
			defer adv.Shutdown()
		}
	}

	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- httpServer.Serve(listener) }()

	logging.Info("Preview server listening", zap.String("addr", listener.Addr().String()))

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("preview server failed: %w", err)
		}
	}

	logging.Info("Shutting down preview server...")
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Warn("Preview server shutdown timeout", zap.Error(err))
	}
	cancel()
	return <-loopErr
}
