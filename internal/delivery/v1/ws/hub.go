package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/DRSN-tech/catalog-live/internal/cfg"
	"github.com/DRSN-tech/catalog-live/internal/usecase"
	"github.com/DRSN-tech/catalog-live/pkg/logger"
	"github.com/gorilla/websocket"
)

// Hub upgrades incoming connections and runs one read loop per session.
// Sessions are tracked only so shutdown can close them; they never observe
// each other.
type Hub struct {
	coordinator *Coordinator
	cfg         *cfg.WSConfig
	logger      logger.Logger
	upgrader    websocket.Upgrader

	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool
}

func NewHub(coordinator *Coordinator, cfg *cfg.WSConfig, logger logger.Logger) *Hub {
	return &Hub{
		coordinator: coordinator,
		cfg:         cfg,
		logger:      logger,
		upgrader: websocket.Upgrader{
			// The demo serves its own client from the same origin; no
			// cross-origin policy is enforced.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sessions: make(map[string]*Session),
	}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warnf("websocket upgrade failed: %v", err)
		return
	}

	s := NewSession(conn, h.cfg)
	if !h.add(s) {
		_ = s.Close()
		return
	}
	defer h.remove(s)

	conn.SetReadLimit(h.cfg.MaxMessageSize)
	h.logger.Infof("live session %s connected", s.ID())

	// The session outlives the upgrade request, so the read loop runs under
	// its own context rather than the request's.
	ctx := context.Background()

	h.coordinator.HandleConnect(ctx, s)
	h.readLoop(ctx, s)

	h.logger.Infof("live session %s disconnected", s.ID())
}

func (h *Hub) readLoop(ctx context.Context, s *Session) {
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warnf("session %s: read failed: %v", s.ID(), err)
			}

			return
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			h.logger.Warnf("session %s: malformed frame: %v", s.ID(), err)
			continue
		}

		h.dispatch(ctx, s, &env)
	}
}

// dispatch routes one inbound event. A bad payload or a failed handler keeps
// the session alive; later events are processed independently.
func (h *Hub) dispatch(ctx context.Context, s *Session, env *Envelope) {
	switch env.Event {
	case EventNewProduct:
		var req usecase.SaveProductReq
		if err := json.Unmarshal(env.Data, &req); err != nil {
			h.logger.Warnf("session %s: malformed %s payload: %v", s.ID(), env.Event, err)
			return
		}

		h.coordinator.HandleNewProduct(ctx, s, &req)
	case EventNewMessage:
		var req usecase.SaveMessageReq
		if err := json.Unmarshal(env.Data, &req); err != nil {
			h.logger.Warnf("session %s: malformed %s payload: %v", s.ID(), env.Event, err)
			return
		}

		h.coordinator.HandleNewMessage(ctx, s, &req)
	default:
		h.logger.Debugf("session %s: ignoring unknown event %q", s.ID(), env.Event)
	}
}

func (h *Hub) add(s *Session) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}

	h.sessions[s.ID()] = s
	return true
}

func (h *Hub) remove(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, s.ID())
}

// Shutdown closes every live session and refuses new ones.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	sessions := make([]*Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.Unlock()

	for _, s := range sessions {
		if err := s.Close(); err != nil {
			h.logger.Warnf("session %s: close failed: %v", s.ID(), err)
		}
	}

	return nil
}
