package main

import (
	"github.com/faceoff-game/faceoff/internal/app/server"
	"github.com/faceoff-game/faceoff/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	logging.Fatal("Game server exited: ", zap.Error(
		server.NewServer().Start(),
	))
}
