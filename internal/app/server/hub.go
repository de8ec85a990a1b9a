package server

import (
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/faceoff-game/faceoff/pkg/logging"
)

// hub tracks live connections by player id and implements game.Notifier.
type hub struct {
	mu      sync.RWMutex
	clients map[string]*client
}

type frame struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

func newHub() *hub {
	return &hub{clients: make(map[string]*client)}
}

func (h *hub) add(playerId string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[playerId] = newClient(playerId, conn)
}

func (h *hub) remove(playerId string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, playerId)
}

func (h *hub) get(playerId string) (*client, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.clients[playerId]
	return c, ok
}

// Send delivers one event to one player; delivery is keyed by player, so
// the match code is unused here. A missing or broken connection is logged
// and dropped; the read loop owns disconnect handling.
func (h *hub) Send(_, playerId, event string, data any) {
	c, ok := h.get(playerId)
	if !ok {
		return
	}
	if err := c.writeJson(frame{Type: event, Data: data}); err != nil {
		logging.Error("couldn't notify player",
			zap.String("player_id", playerId),
			zap.Error(err),
		)
	}
}
