package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/battlepoint/arena/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	subscriberSend = 32
)

var (
	streamSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "arena_stream_subscribers",
		Help: "Connected websocket subscribers",
	})
	streamDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_stream_dropped_total",
		Help: "Stream events dropped for slow subscribers",
	})
)

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans stream events out to websocket subscribers. Slow subscribers lose
// events rather than block the publisher.
type Hub struct {
	mu       sync.RWMutex
	subs     map[*subscriber]struct{}
	upgrader websocket.Upgrader
	logger   *zap.SugaredLogger
}

func NewHub(allowedOrigins []string, logger *zap.Logger) *Hub {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return &Hub{
		subs: make(map[*subscriber]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 2048,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origins["*"] || origins[origin]
			},
		},
		logger: logger.Sugar(),
	}
}

// Publish implements logic.Publisher.
func (h *Hub) Publish(event models.StreamEvent) {
	msg, err := json.Marshal(event)
	if err != nil {
		h.logger.Errorw("Failed to encode stream event", "type", event.Type, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs {
		select {
		case s.send <- msg:
		default:
			streamDropped.Inc()
		}
	}
}

func (h *Hub) Subscribers() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs {
		close(s.send)
		delete(h.subs, s)
	}
	streamSubscribers.Set(0)
}

func (h *Hub) add(s *subscriber) {
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
	streamSubscribers.Inc()
}

func (h *Hub) remove(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[s]; ok {
		delete(h.subs, s)
		close(s.send)
		streamSubscribers.Dec()
	}
}

// ServeWS upgrades the request and streams events until the client leaves.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warnw("Websocket upgrade failed", "error", err)
		return
	}

	s := &subscriber{conn: conn, send: make(chan []byte, subscriberSend)}
	h.add(s)
	h.logger.Infow("Stream subscriber connected", "remote", r.RemoteAddr)

	go h.writer(s)
	h.reader(s)
}

// reader only drains control frames; clients never send commands here.
func (h *Hub) reader(s *subscriber) {
	defer h.remove(s)

	s.conn.SetReadLimit(512)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writer(s *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Stream serves GET /ws
// @Summary Event Stream
// @Description Websocket of activity entries, notifications, processing flag changes and dashboard snapshots
// @Tags Stream
// @Router /ws [get]
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "Stream unavailable")
		return
	}
	h.hub.ServeWS(w, r)
}
