// Package wsnotify streams buffer change notifications to WebSocket clients.
// Hub is both a notify.Notifier and an http.Handler: mount it on any mux and
// every connected client receives each notification as a JSON frame.
package wsnotify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/c360/ringkit/errors"
	"github.com/c360/ringkit/notify"
)

const (
	writeTimeout = 10 * time.Second
	readTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
)

var _ notify.Notifier = (*Hub)(nil)
var _ http.Handler = (*Hub)(nil)

// Hub fans buffer notifications out to WebSocket clients. Each frame is the
// JSON form of a notify.Event. On connect a client first receives a
// synthetic collection_reset so it re-reads the collection from scratch
// before following incremental events.
//
// NewHub starts a maintenance goroutine; call Stop to shut the hub down.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*hubClient

	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup

	metrics *hubMetrics

	// Statistics (atomic)
	framesSent int64
	sendErrors int64
}

// hubClient holds per-connection state.
type hubClient struct {
	conn        *websocket.Conn
	connectedAt time.Time
	closed      atomic.Bool
	closeOnce   sync.Once
	// gorilla/websocket panics on concurrent writes to one connection
	writeMutex sync.Mutex
}

// HubOption represents a configuration option for a Hub
type HubOption func(*hubConfig)

type hubConfig struct {
	logger    *slog.Logger
	registrar MetricsRegistrar
}

// WithHubLogger sets the logger used for connection and send failures.
func WithHubLogger(logger *slog.Logger) HubOption {
	return func(c *hubConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHubMetrics enables Prometheus metrics through the given registrar.
// A nil registrar leaves metrics disabled.
func WithHubMetrics(registrar MetricsRegistrar) HubOption {
	return func(c *hubConfig) {
		c.registrar = registrar
	}
}

// NewHub creates a hub and starts its client maintenance goroutine.
func NewHub(opts ...HubOption) (*Hub, error) {
	cfg := hubConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	metrics, err := newHubMetrics(cfg.registrar)
	if err != nil {
		return nil, errors.WrapFatal(err, "Hub", "NewHub", "register metrics")
	}

	h := &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Observers connect from anywhere; restrict at the mux or proxy
			// when the deployment needs it.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		logger:   cfg.logger,
		clients:  make(map[*websocket.Conn]*hubClient),
		shutdown: make(chan struct{}),
		metrics:  metrics,
	}

	h.wg.Add(1)
	go h.maintainClients()

	return h, nil
}

// ServeHTTP upgrades the request and registers the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	select {
	case <-h.shutdown:
		http.Error(w, "hub is shut down", http.StatusServiceUnavailable)
		return
	default:
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		h.logger.Warn("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}

	client := &hubClient{
		conn:        conn,
		connectedAt: time.Now(),
	}

	h.clientsMu.Lock()
	h.clients[conn] = client
	count := len(h.clients)
	h.clientsMu.Unlock()

	if h.metrics != nil {
		h.metrics.clientsConnected.Set(float64(count))
		h.metrics.connectionsTotal.Inc()
	}

	// New observers must re-read the collection before trusting increments.
	h.sendEvent(client, notify.NewCollectionReset())

	h.wg.Add(1)
	go h.readPump(client)
}

// PropertyChanged implements notify.Notifier.
func (h *Hub) PropertyChanged(property string) {
	h.broadcast(notify.NewPropertyChanged(property))
}

// CollectionReset implements notify.Notifier.
func (h *Hub) CollectionReset() {
	h.broadcast(notify.NewCollectionReset())
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// FramesSent returns the number of frames successfully written.
func (h *Hub) FramesSent() int64 {
	return atomic.LoadInt64(&h.framesSent)
}

// SendErrors returns the number of failed writes.
func (h *Hub) SendErrors() int64 {
	return atomic.LoadInt64(&h.sendErrors)
}

// Stop disconnects every client and waits for the hub's goroutines to exit,
// up to the context deadline.
func (h *Hub) Stop(ctx context.Context) error {
	h.shutdownOnce.Do(func() {
		close(h.shutdown)
	})

	h.clientsMu.RLock()
	clients := make([]*hubClient, 0, len(h.clients))
	for _, client := range h.clients {
		clients = append(clients, client)
	}
	h.clientsMu.RUnlock()

	for _, client := range clients {
		h.removeClient(client)
	}

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.WrapTransient(
			fmt.Errorf("client pumps still running: %w", ctx.Err()),
			"Hub", "Stop", "wait for shutdown")
	}
}

// broadcast sends one event to every connected client concurrently.
func (h *Hub) broadcast(ev notify.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		atomic.AddInt64(&h.sendErrors, 1)
		h.logger.Error("failed to marshal notification frame", "error", err)
		return
	}

	h.clientsMu.RLock()
	clients := make([]*hubClient, 0, len(h.clients))
	for _, client := range h.clients {
		if !client.closed.Load() {
			clients = append(clients, client)
		}
	}
	h.clientsMu.RUnlock()

	var wg sync.WaitGroup
	for _, client := range clients {
		wg.Add(1)
		go func(c *hubClient) {
			defer wg.Done()
			h.sendFrame(c, data)
		}(client)
	}
	wg.Wait()
}

func (h *Hub) sendEvent(client *hubClient, ev notify.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		atomic.AddInt64(&h.sendErrors, 1)
		h.logger.Error("failed to marshal notification frame", "error", err)
		return
	}
	h.sendFrame(client, data)
}

func (h *Hub) sendFrame(client *hubClient, data []byte) {
	client.writeMutex.Lock()
	_ = client.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	start := time.Now()
	err := client.conn.WriteMessage(websocket.TextMessage, data)
	client.writeMutex.Unlock()

	if err != nil {
		atomic.AddInt64(&h.sendErrors, 1)
		if h.metrics != nil {
			h.metrics.sendErrorsTotal.Inc()
		}
		h.removeClient(client)
		return
	}

	atomic.AddInt64(&h.framesSent, 1)
	if h.metrics != nil {
		h.metrics.framesSentTotal.Inc()
		h.metrics.writeDuration.Observe(time.Since(start).Seconds())
	}
}

// readPump discards inbound frames and detects disconnects. Observers are
// read-only; anything a client sends is ignored.
func (h *Hub) readPump(client *hubClient) {
	defer h.wg.Done()
	defer h.removeClient(client)

	_ = client.conn.SetReadDeadline(time.Now().Add(readTimeout))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	for {
		select {
		case <-h.shutdown:
			return
		default:
		}

		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// maintainClients pings clients on an interval so dead connections are
// detected even when no notifications flow.
func (h *Hub) maintainClients() {
	defer h.wg.Done()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.shutdown:
			return
		case <-ticker.C:
			h.pingClients()
		}
	}
}

func (h *Hub) pingClients() {
	h.clientsMu.RLock()
	clients := make([]*hubClient, 0, len(h.clients))
	for _, client := range h.clients {
		if !client.closed.Load() {
			clients = append(clients, client)
		}
	}
	h.clientsMu.RUnlock()

	for _, client := range clients {
		client.writeMutex.Lock()
		_ = client.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		err := client.conn.WriteMessage(websocket.PingMessage, nil)
		client.writeMutex.Unlock()

		if err != nil {
			h.removeClient(client)
		}
	}
}

// removeClient unregisters and closes a client exactly once.
func (h *Hub) removeClient(client *hubClient) {
	client.closeOnce.Do(func() {
		client.closed.Store(true)

		h.clientsMu.Lock()
		delete(h.clients, client.conn)
		count := len(h.clients)
		h.clientsMu.Unlock()

		if h.metrics != nil {
			h.metrics.clientsConnected.Set(float64(count))
		}

		_ = client.conn.Close()
	})
}
