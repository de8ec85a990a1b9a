package game

import (
	"github.com/faceoff-game/faceoff/pkg/logging"
	"go.uber.org/zap"
)

// CreateMatch registers a fresh match with the sender as its creator and
// reports the join code back. A sender already inside a live match is
// ignored; the stale socket has to disconnect first.
func (c *Core) CreateMatch(senderID, mode string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.registry.MatchOf(senderID); ok {
		return
	}
	policy := policyFor(mode)
	m := &Match{
		Code:        c.registry.NewCode(),
		Players:     []*participant{{ID: senderID}},
		Round:       1,
		TotalRounds: policy.totalRounds(c.rules),
		State:       StateWaiting,
		policy:      policy,
		timers:      newTimerSet(c.clock),
	}
	c.registry.Put(m)
	c.registry.Bind(senderID, m.Code)
	c.notifier.Send(m.Code, senderID, EvtMatchCreated, MatchCreatedData{Code: m.Code})
	logging.Info("match created",
		zap.String("match_code", m.Code),
		zap.String("mode", string(policy.mode())),
		zap.String("player_id", senderID),
	)
}

// JoinMatch fills the second slot and kicks off round one. Lookup failures
// are the only user-facing errors in the whole flow; a sender already bound
// to a live match is ignored, same as CreateMatch, so the binding of a
// running match can never be overwritten.
func (c *Core) JoinMatch(senderID, code string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.registry.MatchOf(senderID); ok {
		return
	}
	m, ok := c.registry.Get(code)
	if !ok {
		c.notifier.Send("", senderID, EvtJoinError, JoinErrorData{Message: ErrStatusMatchNotFound})
		return
	}
	if m.full() {
		c.notifier.Send(m.Code, senderID, EvtJoinError, JoinErrorData{Message: ErrStatusMatchFull})
		return
	}
	m.Players = append(m.Players, &participant{ID: senderID})
	c.registry.Bind(senderID, m.Code)
	c.broadcast(m, EvtMatchStarted, MatchStartedData{
		Code:  m.Code,
		SlotA: m.Players[0].ID,
		SlotB: m.Players[1].ID,
	})
	logging.Info("match started",
		zap.String("match_code", m.Code),
		zap.String("player_id", senderID),
	)
	c.startCountdown(m)
}

// ProposeRematch records one side's intent; when both sides have proposed,
// the match resets exactly once and the first round flow restarts after a
// short pause.
func (c *Core) ProposeRematch(senderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.registry.MatchOf(senderID)
	if !ok || m.State != StateMatchEnd || !m.full() {
		return
	}
	idx, ok := m.slotOf(senderID)
	if !ok || m.Players[idx].Rematch {
		return
	}
	m.Players[idx].Rematch = true
	c.send(m, m.Players[1-idx], EvtRematchProposed, nil)

	if !m.Players[0].Rematch || !m.Players[1].Rematch {
		return
	}
	m.resetForRematch()
	c.broadcast(m, EvtRematchStarting, nil)
	logging.Info("rematch starting", zap.String("match_code", m.Code))
	c.schedule(m, timerTransition, c.rules.RematchDelay, c.startCountdown)
}

// Disconnect tears the sender's match down unconditionally: every timer is
// cancelled, the other side is told, and the code is freed. There is no
// grace period and no reconnection.
func (c *Core) Disconnect(senderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.registry.MatchOf(senderID)
	if !ok {
		return
	}
	m.timers.cancelAll()
	if idx, member := m.slotOf(senderID); member && m.full() {
		c.send(m, m.Players[1-idx], EvtOpponentDisconnected, nil)
	}
	c.registry.Delete(m.Code)
	logging.Info("match torn down",
		zap.String("match_code", m.Code),
		zap.String("player_id", senderID),
	)
}
