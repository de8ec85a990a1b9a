package notification

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/faceoff-game/faceoff/pkg/logging"
)

// Mirror re-publishes every outbound match event onto NATS so external
// consumers (spectator bridges, monitoring) can follow matches without
// holding a websocket. It implements game.Notifier and is composed behind
// the connection hub; delivery to players never depends on it.
type Mirror struct {
	nc *nats.Conn
}

func NewMirror(url string) (*Mirror, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return &Mirror{nc: nc}, nil
}

// Send publishes the event on the match's subject so a single subscription
// follows one match end to end. Events with no match, like a failed join
// lookup, have no subject to land on and are skipped.
func (m *Mirror) Send(matchCode, playerID, event string, data any) {
	if matchCode == "" {
		return
	}
	msg, err := json.Marshal(map[string]any{
		"type":   event,
		"player": playerID,
		"data":   data,
	})
	if err != nil {
		logging.Error("failed to marshal event", zap.String("event", event), zap.Error(err))
		return
	}
	subject := fmt.Sprintf("faceoff.match.%s", matchCode)
	if err := m.nc.Publish(subject, msg); err != nil {
		logging.Error("failed to publish event",
			zap.String("subject", subject),
			zap.Error(err),
		)
	}
}

func (m *Mirror) Close() {
	m.nc.Close()
}
