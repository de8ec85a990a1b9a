package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/faceoff-game/faceoff/internal/game"
	"github.com/faceoff-game/faceoff/internal/notification"
	"github.com/faceoff-game/faceoff/pkg/logging"
)

type server struct {
	address  string
	upgrader websocket.Upgrader

	config Config
	hub    *hub
	core   *game.Core
}

type payload struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func NewServer() *server {
	cfg := NewConfig()
	h := newHub()

	var notifier game.Notifier = h
	if cfg.NatsEnabled {
		mirror, err := notification.NewMirror(cfg.NatsURL)
		if err != nil {
			panic(err)
		}
		notifier = fanout{h, mirror}
	}

	srv := &server{
		address: "0.0.0.0:" + cfg.Port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins
			},
		},
		config: cfg,
		hub:    h,
		core: game.NewCore(
			game.NewRegistry(),
			notifier,
			clockwork.NewRealClock(),
			cfg.Rules,
		),
	}
	return srv
}

// Start method    starts the game server
func (s *server) Start() error {
	http.HandleFunc("/play", func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			logging.Error(
				"failed to upgrade connection",
				zap.String("error", err.Error()),
			)
			return
		}
		defer conn.Close()

		playerId := uuid.NewString()
		s.hub.add(playerId, conn)
		logging.Info("player connected",
			zap.String("player_id", playerId),
			zap.String("remote_address", conn.RemoteAddr().String()),
		)

		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				s.hub.remove(playerId)
				s.core.Disconnect(playerId)
				logging.Info(
					"connection closed",
					zap.String("player_id", playerId),
					zap.Error(err),
				)
				break
			}

			payload := payload{}
			if err := json.Unmarshal(message, &payload); err != nil {
				logging.Info("malformed payload", zap.String("player_id", playerId))
				continue
			}
			s.handleMessage(playerId, payload)
		}
	})
	logging.Info("websocket server started", zap.String("port", s.config.Port))
	return http.ListenAndServe(s.address, nil)
}

// fanout delivers each outbound event to every wrapped notifier in order.
type fanout []game.Notifier

func (f fanout) Send(matchCode, playerID, event string, data any) {
	for _, n := range f {
		n.Send(matchCode, playerID, event, data)
	}
}
