package game

// Outbound event types. The transport wraps each as {"type": ..., "data": ...}.
const (
	EvtMatchCreated          = "match_created"
	EvtJoinError             = "join_error"
	EvtMatchStarted          = "match_started"
	EvtRoundStart            = "round_start"
	EvtCountdown             = "countdown"
	EvtStartAttacking        = "start_attacking"
	EvtStartDefending        = "start_defending"
	EvtInputCombination      = "input_combination"
	EvtWaitingForCombination = "waiting_for_combination"
	EvtStartGuessing         = "start_guessing"
	EvtRoundTimer            = "round_timer"
	EvtMoveSent              = "move_sent"
	EvtIncomingMove          = "incoming_move"
	EvtMoveMissed            = "move_missed"
	EvtOpponentMissed        = "opponent_missed"
	EvtMoveResult            = "move_result"
	EvtOpponentResult        = "opponent_result"
	EvtInvalidCombination    = "invalid_combination"
	EvtRoundResult           = "round_result"
	EvtRoundEnd              = "round_end"
	EvtMatchEnd              = "match_end"
	EvtRematchProposed       = "rematch_proposed"
	EvtRematchStarting       = "rematch_starting"
	EvtOpponentDisconnected  = "opponent_disconnected"
)

// Per-round roles as sent to clients.
const (
	RoleAttacker = "attacker"
	RoleDefender = "defender"
	RoleSetter   = "setter"
	RoleGuesser  = "guesser"
)

type Scores struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}

type MatchCreatedData struct {
	Code string `json:"code"`
}

type JoinErrorData struct {
	Message string `json:"message"`
}

type MatchStartedData struct {
	Code  string `json:"code"`
	SlotA string `json:"slotA"`
	SlotB string `json:"slotB"`
}

type RoundStartData struct {
	Round            int    `json:"round"`
	TotalRounds      int    `json:"totalRounds"`
	Role             string `json:"role"`
	CountdownSeconds int    `json:"countdownSeconds"`
}

type CountdownData struct {
	Count int `json:"count"`
}

// PhaseStartData announces an active phase (attacking/defending/guessing)
// with its duration in whole seconds.
type PhaseStartData struct {
	Duration int `json:"duration"`
	Round    int `json:"round"`
}

type RoundTimerData struct {
	TimeLeft int `json:"timeLeft"`
}

type MoveSentData struct {
	Direction Direction `json:"direction"`
}

type IncomingMoveData struct {
	Direction      Direction `json:"direction"`
	ReactionTimeMs int64     `json:"reactionTimeMs"`
}

type MoveMissedData struct {
	Direction Direction `json:"direction"`
}

type MoveResultData struct {
	Expected       Direction `json:"expected"`
	Detected       Direction `json:"detected"`
	Correct        bool      `json:"correct"`
	ReactionTimeMs int64     `json:"reactionTimeMs"`
	Scores         Scores    `json:"scores"`
}

type InvalidCombinationData struct {
	Message string `json:"message"`
}

type RoundResultData struct {
	Combination []Direction `json:"combination"`
	Guess       []Direction `json:"guess"`
	Points      int         `json:"points"`
	ElapsedMs   int64       `json:"elapsedMs"`
	Scores      Scores      `json:"scores"`
}

type RoundEndData struct {
	Round  int    `json:"round"`
	Scores Scores `json:"scores"`
}

type MatchEndData struct {
	Scores Scores `json:"scores"`
	Winner string `json:"winner"`
}
