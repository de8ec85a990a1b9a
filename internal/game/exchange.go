package game

import (
	"fmt"

	"github.com/faceoff-game/faceoff/pkg/logging"
	"go.uber.org/zap"
)

// SubmitMove handles an attacker firing a directional move. Anything out of
// order, the wrong sender, the wrong state, an unresolved previous move, is
// dropped without a reply; stale client messages are expected here.
func (c *Core) SubmitMove(senderID, direction string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.registry.MatchOf(senderID)
	if !ok || m.State != StatePlaying || m.policy.mode() != ModeReflex {
		return
	}
	idx, ok := m.slotOf(senderID)
	if !ok || idx != m.LeaderIdx {
		return
	}
	dir, ok := ParseDirection(direction)
	if !ok || dir == DirNone {
		return
	}
	if m.Move != nil {
		return
	}

	m.Move = &Move{Direction: dir, CreatedAt: c.clock.Now()}
	c.send(m, m.follower(), EvtIncomingMove, IncomingMoveData{
		Direction:      dir,
		ReactionTimeMs: c.rules.ReactionWindow.Milliseconds(),
	})
	c.send(m, m.leader(), EvtMoveSent, MoveSentData{Direction: dir})
	c.schedule(m, timerMove, c.rules.ReactionWindow, c.expireMove)
	logging.Info("move submitted",
		zap.String("match_code", m.Code),
		zap.String("direction", string(dir)),
	)
}

// RespondMove handles the defender's detected direction for the pending
// move. The responded flag flips before any notification, so a concurrent
// reaction timeout becomes a no-op. An unparseable direction is dropped
// without consuming the move: detection pipelines emit garbage frames and
// a later clean reading within the window should still count.
func (c *Core) RespondMove(senderID, direction string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.registry.MatchOf(senderID)
	if !ok || m.State != StatePlaying || m.policy.mode() != ModeReflex {
		return
	}
	idx, ok := m.slotOf(senderID)
	if !ok || idx == m.LeaderIdx {
		return
	}
	mv := m.Move
	if mv == nil || mv.Responded {
		return
	}
	detected, ok := ParseDirection(direction)
	if !ok {
		return
	}
	mv.Responded = true
	m.timers.cancel(timerMove)

	correct := detected == mv.Direction
	elapsed := c.clock.Now().Sub(mv.CreatedAt)
	if correct {
		m.follower().Score++
	}
	result := MoveResultData{
		Expected:       mv.Direction,
		Detected:       detected,
		Correct:        correct,
		ReactionTimeMs: elapsed.Milliseconds(),
		Scores:         m.scores(),
	}
	c.send(m, m.follower(), EvtMoveResult, result)
	c.send(m, m.leader(), EvtOpponentResult, result)
	m.Move = nil
	logging.Info("move resolved",
		zap.String("match_code", m.Code),
		zap.Bool("correct", correct),
		zap.Int64("reaction_ms", result.ReactionTimeMs),
	)
}

// expireMove fires when the reaction window elapses with the move still
// pending. No score changes; both sides learn the move was missed.
func (c *Core) expireMove(m *Match) {
	mv := m.Move
	if mv == nil || mv.Responded {
		return
	}
	mv.Responded = true
	c.send(m, m.follower(), EvtMoveMissed, MoveMissedData{Direction: mv.Direction})
	c.send(m, m.leader(), EvtOpponentMissed, MoveMissedData{Direction: mv.Direction})
	m.Move = nil
	logging.Info("move missed",
		zap.String("match_code", m.Code),
		zap.String("direction", string(mv.Direction)),
	)
}

// SubmitCombination stores the setter's hidden sequence and starts the
// guessing phase. A malformed combination is bounced back to the sender
// with no state change.
func (c *Core) SubmitCombination(senderID string, directions []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.registry.MatchOf(senderID)
	if !ok || m.State != StateInputting || m.policy.mode() != ModeSequence {
		return
	}
	idx, ok := m.slotOf(senderID)
	if !ok || idx != m.LeaderIdx {
		return
	}
	combo, err := c.parseCombination(directions)
	if err != nil {
		c.notifier.Send(m.Code, senderID, EvtInvalidCombination, InvalidCombinationData{
			Message: ErrStatusInvalidCombination,
		})
		return
	}
	m.Combination = combo
	m.ComboSetAt = c.clock.Now()
	c.startRound(m)
}

// SubmitGuess resolves the guesser's attempt against the stored combination
// and closes the round.
func (c *Core) SubmitGuess(senderID string, directions []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.registry.MatchOf(senderID)
	if !ok || m.State != StateGuessing || m.policy.mode() != ModeSequence {
		return
	}
	idx, ok := m.slotOf(senderID)
	if !ok || idx == m.LeaderIdx {
		return
	}
	guess, err := c.parseCombination(directions)
	if err != nil {
		c.notifier.Send(m.Code, senderID, EvtInvalidCombination, InvalidCombinationData{
			Message: ErrStatusInvalidCombination,
		})
		return
	}
	c.resolveGuess(m, guess)
}

// expireGuess scores an unanswered guessing phase as an all-none guess.
func (c *Core) expireGuess(m *Match) {
	guess := make([]Direction, len(m.Combination))
	for i := range guess {
		guess[i] = DirNone
	}
	c.resolveGuess(m, guess)
}

func (c *Core) resolveGuess(m *Match, guess []Direction) {
	points := 0
	for i, want := range m.Combination {
		if i < len(guess) && guess[i] == want && want != DirNone {
			points++
		}
	}
	m.follower().Score += points
	c.broadcast(m, EvtRoundResult, RoundResultData{
		Combination: m.Combination,
		Guess:       guess,
		Points:      points,
		ElapsedMs:   c.clock.Now().Sub(m.ComboSetAt).Milliseconds(),
		Scores:      m.scores(),
	})
	logging.Info("guess resolved",
		zap.String("match_code", m.Code),
		zap.Int("points", points),
	)
	c.endRound(m)
}

func (c *Core) parseCombination(directions []string) ([]Direction, error) {
	if len(directions) != c.rules.CombinationLength {
		return nil, fmt.Errorf("combination length %d, want %d", len(directions), c.rules.CombinationLength)
	}
	combo := make([]Direction, len(directions))
	for i, raw := range directions {
		dir, ok := ParseDirection(raw)
		if !ok {
			return nil, fmt.Errorf("invalid direction %q", raw)
		}
		combo[i] = dir
	}
	return combo, nil
}
