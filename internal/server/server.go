// Package server is the WebSocket transport: it upgrades connections,
// pumps messages, and bridges them to the table orchestrator.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/bonaken-game/bonaken/internal/config"
	"github.com/bonaken-game/bonaken/internal/game/table"
	"github.com/bonaken-game/bonaken/internal/protocol"
	"github.com/bonaken-game/bonaken/internal/storage"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // tighten for production deployments
	},
}

// Server owns the connection set and delivers orchestrator events back
// to the right sockets.
type Server struct {
	config       *config.Config
	redis        *redis.Client
	stats        *storage.StatsStore
	orchestrator *table.Orchestrator
	handler      *Handler

	clients   map[string]*Client
	clientsMu sync.RWMutex

	httpServer *http.Server
	cancel     context.CancelFunc
}

// NewServer builds the full server stack. Stats are disabled when Redis
// is unreachable; the game itself needs no storage.
func NewServer(cfg *config.Config) (*Server, error) {
	s := &Server{
		config:  cfg,
		clients: make(map[string]*Client),
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var stats table.StatsRecorder
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis unavailable, stats disabled: %v", err)
	} else {
		s.redis = rdb
		s.stats = storage.NewStatsStore(rdb)
		stats = s.stats
	}

	s.orchestrator = table.New(table.NewRegistry(), s, &cfg.Game, stats)
	s.handler = NewHandler(s)
	return s, nil
}

// Start listens for WebSocket connections and runs the table janitor
// until the server is shut down.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.orchestrator.RunJanitor(ctx)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("🚀 Bonaken server listening on ws://%s/ws", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the listener, the janitor and every table timer.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}
	s.orchestrator.Stop()

	s.clientsMu.Lock()
	for _, c := range s.clients {
		c.Close()
	}
	s.clientsMu.Unlock()

	if s.redis != nil {
		s.redis.Close()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade failed: %v", err)
		return
	}

	client := newClient(s, conn, r.RemoteAddr)
	s.clientsMu.Lock()
	s.clients[client.ID] = client
	s.clientsMu.Unlock()

	log.Printf("🔗 Client %s connected from %s", client.ID, client.IP)
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","tables":%d}`, s.orchestrator.Registry().Count())
}

func (s *Server) handleDisconnect(c *Client) {
	s.clientsMu.Lock()
	delete(s.clients, c.ID)
	s.clientsMu.Unlock()
	c.Close()

	s.orchestrator.Disconnect(c.ID)
	log.Printf("🔌 Client %s disconnected", c.ID)
}

func (s *Server) client(connID string) (*Client, bool) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	c, ok := s.clients[connID]
	return c, ok
}

// --- table.Notifier ---

// Broadcast sends a message to every connected seat of a table.
func (s *Server) Broadcast(tableID string, msg *protocol.Message) {
	t, ok := s.orchestrator.Registry().Table(tableID)
	if !ok {
		return
	}
	for _, seat := range t.Seats {
		s.SendSeat(tableID, seat.ID, msg)
	}
}

// SendSeat sends a message to one seat's connection, if it is online.
func (s *Server) SendSeat(tableID, seatID string, msg *protocol.Message) {
	connID, ok := s.orchestrator.Registry().ConnForSeat(tableID, seatID)
	if !ok {
		return
	}
	if c, ok := s.client(connID); ok {
		c.SendMessage(msg)
	}
}
