package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/DRSN-tech/catalog-live/internal/cfg"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Envelope is the wire frame of every live-connection event, both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type outboundEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Pusher is one live client connection as the coordinator sees it.
type Pusher interface {
	ID() string
	Push(event string, data any) error
}

// Session wraps a websocket connection. Pushes are serialized under a mutex
// because both the read loop and shutdown may write to the same connection.
type Session struct {
	id   string
	conn *websocket.Conn
	cfg  *cfg.WSConfig
	mu   sync.Mutex
}

func NewSession(conn *websocket.Conn, cfg *cfg.WSConfig) *Session {
	return &Session{
		id:   uuid.NewString(),
		conn: conn,
		cfg:  cfg,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Push sends one event frame to this client.
func (s *Session) Push(event string, data any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout)); err != nil {
		return err
	}

	return s.conn.WriteJSON(outboundEnvelope{Event: event, Data: data})
}

// Close sends a close frame and tears the connection down.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline := time.Now().Add(s.cfg.WriteTimeout)
	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), deadline)

	return s.conn.Close()
}
