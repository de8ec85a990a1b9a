package server

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/faceoff-game/faceoff/pkg/logging"
)

type createMatchData struct {
	Mode string `json:"mode"`
}

type joinMatchData struct {
	Code string `json:"code"`
}

type moveData struct {
	Direction string `json:"direction"`
}

type combinationData struct {
	Combination []string `json:"combination"`
}

type guessData struct {
	Guess []string `json:"guess"`
}

// Handler for inbound client messages. Payload data that fails to decode is
// dropped; the core does its own role and state checks.
func (s *server) handleMessage(playerId string, payload payload) {
	switch payload.Type {
	case "create_match":
		var data createMatchData
		decode(payload.Data, &data)
		s.core.CreateMatch(playerId, data.Mode)
	case "join_match":
		var data joinMatchData
		if !decode(payload.Data, &data) {
			return
		}
		s.core.JoinMatch(playerId, data.Code)
	case "attack_move":
		var data moveData
		if !decode(payload.Data, &data) {
			return
		}
		s.core.SubmitMove(playerId, data.Direction)
	case "defend_move":
		var data moveData
		if !decode(payload.Data, &data) {
			return
		}
		s.core.RespondMove(playerId, data.Direction)
	case "submit_combination":
		var data combinationData
		if !decode(payload.Data, &data) {
			return
		}
		s.core.SubmitCombination(playerId, data.Combination)
	case "submit_guess":
		var data guessData
		if !decode(payload.Data, &data) {
			return
		}
		s.core.SubmitGuess(playerId, data.Guess)
	case "rematch":
		s.core.ProposeRematch(playerId)
	default:
		logging.Info("invalid payload type:", zap.String("type", payload.Type))
	}
}

func decode(raw json.RawMessage, v any) bool {
	if len(raw) == 0 {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}
