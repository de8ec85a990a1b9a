package game

import (
	"time"

	"github.com/faceoff-game/faceoff/pkg/logging"
	"go.uber.org/zap"
)

// startCountdown opens the next round: the previous transition timer is
// gone, roles are reassigned, and the policy decides whether the round
// opens with a countdown or waiting for input.
func (c *Core) startCountdown(m *Match) {
	m.timers.cancel(timerTransition)
	m.Move = nil
	m.policy.assignRoles(m)
	logging.Info("round opening",
		zap.String("match_code", m.Code),
		zap.Int("round", m.Round),
		zap.String("leader", m.leader().ID),
	)
	m.policy.openRound(c, m)
}

// runCountdown emits the current tick and chains the next one; on zero the
// round goes active.
func (c *Core) runCountdown(m *Match, count int) {
	c.broadcast(m, EvtCountdown, CountdownData{Count: count})
	if count == 0 {
		c.startRound(m)
		return
	}
	c.schedule(m, timerCountdown, time.Second, func(m *Match) {
		c.runCountdown(m, count-1)
	})
}

func (c *Core) startRound(m *Match) {
	m.policy.activateRound(c, m)
}

// tickRound drives the per-second time-remaining ticks of an active phase;
// when the clock runs out, expire forces the round closed whether or not
// its objective was completed.
func (c *Core) tickRound(m *Match, remaining time.Duration, expire func(*Match)) {
	c.schedule(m, timerRound, time.Second, func(m *Match) {
		remaining -= time.Second
		c.broadcast(m, EvtRoundTimer, RoundTimerData{TimeLeft: int(remaining.Seconds())})
		if remaining <= 0 {
			expire(m)
			return
		}
		c.tickRound(m, remaining, expire)
	})
}

// endRound closes the current round and schedules what follows: the next
// round after a short pause, or the match result if this was the last one.
func (c *Core) endRound(m *Match) {
	m.timers.cancel(timerRound)
	m.timers.cancel(timerMove)
	m.Move = nil
	m.State = StateRoundEnd
	c.broadcast(m, EvtRoundEnd, RoundEndData{Round: m.Round, Scores: m.scores()})
	logging.Info("round ended",
		zap.String("match_code", m.Code),
		zap.Int("round", m.Round),
		zap.Int("score_p1", m.Players[0].Score),
		zap.Int("score_p2", m.Players[1].Score),
	)
	if m.Round >= m.TotalRounds {
		c.schedule(m, timerTransition, c.rules.MatchEndDelay, c.endMatch)
		return
	}
	c.schedule(m, timerTransition, c.rules.RoundEndDelay, func(m *Match) {
		m.Round++
		c.startCountdown(m)
	})
}

func (c *Core) endMatch(m *Match) {
	m.State = StateMatchEnd
	winner := m.winner()
	c.broadcast(m, EvtMatchEnd, MatchEndData{Scores: m.scores(), Winner: winner})
	logging.Info("match ended",
		zap.String("match_code", m.Code),
		zap.String("winner", winner),
	)
}
