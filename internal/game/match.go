package game

import (
	"time"
)

type State uint8

const (
	StateWaiting State = iota
	StateCountdown
	StateInputting
	StatePlaying
	StateGuessing
	StateRoundEnd
	StateMatchEnd
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "WAITING"
	case StateCountdown:
		return "COUNTDOWN"
	case StateInputting:
		return "INPUTTING"
	case StatePlaying:
		return "PLAYING"
	case StateGuessing:
		return "GUESSING"
	case StateRoundEnd:
		return "ROUND_END"
	case StateMatchEnd:
		return "MATCH_END"
	default:
		return "UNKNOWN"
	}
}

type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirNone  Direction = "none"
)

func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case DirUp, DirDown, DirLeft, DirRight, DirNone:
		return Direction(s), true
	}
	return DirNone, false
}

// Move is one attacker action awaiting the defender's response.
// Responded is checked-then-set before any notification goes out, so a
// response and a reaction timeout can never both resolve the same move.
type Move struct {
	Direction Direction
	CreatedAt time.Time
	Responded bool
}

type participant struct {
	ID      string
	Score   int
	Rematch bool
}

// Match is the aggregate root for one duel. All fields are guarded by the
// owning Core's lock; nothing here locks on its own.
type Match struct {
	Code        string
	Players     []*participant
	Round       int
	TotalRounds int
	State       State
	LeaderIdx   int // attacker (reflex) or setter (sequence) for the current round
	Move        *Move
	Combination []Direction
	ComboSetAt  time.Time

	policy roundPolicy
	timers *timerSet
}

func (m *Match) full() bool {
	return len(m.Players) == 2
}

func (m *Match) slotOf(playerID string) (int, bool) {
	for i, p := range m.Players {
		if p.ID == playerID {
			return i, true
		}
	}
	return 0, false
}

func (m *Match) leader() *participant {
	return m.Players[m.LeaderIdx]
}

func (m *Match) follower() *participant {
	return m.Players[1-m.LeaderIdx]
}

func (m *Match) scores() Scores {
	s := Scores{Player1: m.Players[0].Score}
	if m.full() {
		s.Player2 = m.Players[1].Score
	}
	return s
}

func (m *Match) winner() string {
	switch {
	case m.Players[0].Score > m.Players[1].Score:
		return "player1"
	case m.Players[1].Score > m.Players[0].Score:
		return "player2"
	default:
		return "tie"
	}
}

// resetForRematch rewinds the match to a fresh first round. Timers are the
// caller's concern.
func (m *Match) resetForRematch() {
	for _, p := range m.Players {
		p.Score = 0
		p.Rematch = false
	}
	m.Round = 1
	m.Move = nil
	m.Combination = nil
	m.State = StateWaiting
}
