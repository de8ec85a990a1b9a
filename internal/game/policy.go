package game

// Mode selects the round structure at match creation.
type Mode string

const (
	ModeReflex   Mode = "reflex"
	ModeSequence Mode = "sequence"
)

// roundPolicy is the per-variant half of the round flow. The coordinator
// owns transitions and timers; the policy decides roles, the phase a round
// opens in, and what the active phase looks like.
type roundPolicy interface {
	mode() Mode
	totalRounds(r Rules) int
	assignRoles(m *Match)
	openRound(c *Core, m *Match)
	activateRound(c *Core, m *Match)
}

func policyFor(mode string) roundPolicy {
	if Mode(mode) == ModeSequence {
		return sequencePolicy{}
	}
	return reflexPolicy{}
}

// reflexPolicy: attacker and defender alternate every round. A round opens
// with a countdown and plays out as timed move/response exchanges.
type reflexPolicy struct{}

func (reflexPolicy) mode() Mode { return ModeReflex }

func (reflexPolicy) totalRounds(r Rules) int { return r.ReflexRounds }

func (reflexPolicy) assignRoles(m *Match) {
	m.LeaderIdx = (m.Round - 1) % 2
}

func (reflexPolicy) openRound(c *Core, m *Match) {
	m.State = StateCountdown
	for i, p := range m.Players {
		role := RoleDefender
		if i == m.LeaderIdx {
			role = RoleAttacker
		}
		c.send(m, p, EvtRoundStart, RoundStartData{
			Round:            m.Round,
			TotalRounds:      m.TotalRounds,
			Role:             role,
			CountdownSeconds: c.rules.CountdownTicks,
		})
	}
	c.runCountdown(m, c.rules.CountdownTicks)
}

func (reflexPolicy) activateRound(c *Core, m *Match) {
	m.State = StatePlaying
	data := PhaseStartData{
		Duration: int(c.rules.RoundDuration.Seconds()),
		Round:    m.Round,
	}
	c.send(m, m.leader(), EvtStartAttacking, data)
	c.send(m, m.follower(), EvtStartDefending, data)
	c.tickRound(m, c.rules.RoundDuration, c.endRound)
}

// sequencePolicy: the creator sets a hidden combination every round and the
// joiner guesses it. A round opens waiting for the setter's input; the timed
// phase only starts once the combination is in.
type sequencePolicy struct{}

func (sequencePolicy) mode() Mode { return ModeSequence }

func (sequencePolicy) totalRounds(r Rules) int { return r.SequenceRounds }

func (sequencePolicy) assignRoles(m *Match) {
	m.LeaderIdx = 0
}

func (sequencePolicy) openRound(c *Core, m *Match) {
	m.State = StateInputting
	m.Combination = nil
	data := RoundStartData{
		Round:            m.Round,
		TotalRounds:      m.TotalRounds,
		Role:             RoleSetter,
		CountdownSeconds: 0,
	}
	c.send(m, m.leader(), EvtInputCombination, data)
	data.Role = RoleGuesser
	c.send(m, m.follower(), EvtWaitingForCombination, data)
}

func (sequencePolicy) activateRound(c *Core, m *Match) {
	m.State = StateGuessing
	c.broadcast(m, EvtStartGuessing, PhaseStartData{
		Duration: int(c.rules.GuessDuration.Seconds()),
		Round:    m.Round,
	})
	c.tickRound(m, c.rules.GuessDuration, c.expireGuess)
}
