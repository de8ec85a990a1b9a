package game

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/faceoff-game/faceoff/pkg/logging"
	"go.uber.org/zap"
)

// Notifier delivers one outbound event to one identified participant. The
// transport layer implements it; the core never addresses connections
// directly. matchCode names the match the event belongs to and is empty
// when no match exists yet, as for a failed join lookup.
type Notifier interface {
	Send(matchCode, playerID, event string, data any)
}

// Rules carries every tunable duration and count of the round flow.
type Rules struct {
	ReflexRounds   int
	SequenceRounds int

	CountdownTicks    int
	RoundDuration     time.Duration
	GuessDuration     time.Duration
	ReactionWindow    time.Duration
	CombinationLength int

	RoundEndDelay time.Duration
	MatchEndDelay time.Duration
	RematchDelay  time.Duration
}

func DefaultRules() Rules {
	return Rules{
		ReflexRounds:      3,
		SequenceRounds:    4,
		CountdownTicks:    3,
		RoundDuration:     30 * time.Second,
		GuessDuration:     8 * time.Second,
		ReactionWindow:    2000 * time.Millisecond,
		CombinationLength: 4,
		RoundEndDelay:     3 * time.Second,
		MatchEndDelay:     2 * time.Second,
		RematchDelay:      time.Second,
	}
}

// Core owns all match state and serializes every mutation, whether it comes
// from an inbound event or a fired timer, behind one lock. Handlers run to
// completion atomically, so notifications for a match go out in the order
// their triggering events were processed.
type Core struct {
	mu       sync.Mutex
	registry *Registry
	notifier Notifier
	clock    clockwork.Clock
	rules    Rules
}

func NewCore(registry *Registry, notifier Notifier, clock clockwork.Clock, rules Rules) *Core {
	return &Core{
		registry: registry,
		notifier: notifier,
		clock:    clock,
		rules:    rules,
	}
}

// schedule arms a one-shot timer of the given kind for m and runs fn on
// expiry. The callback re-enters the core under its lock and is dropped if
// the match is gone from the registry or the timer has been replaced or
// cancelled since it was armed.
func (c *Core) schedule(m *Match, kind timerKind, d time.Duration, fn func(*Match)) {
	e := m.timers.arm(kind, d)
	go func() {
		select {
		case <-e.timer.Chan():
		case <-e.done:
			return
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		cur, ok := c.registry.Get(m.Code)
		if !ok || cur != m {
			logging.Debug("stale timer dropped", zap.String("match_code", m.Code))
			return
		}
		if !m.timers.live(kind, e) {
			return
		}
		m.timers.fired(kind, e)
		fn(m)
	}()
}

func (c *Core) send(m *Match, p *participant, event string, data any) {
	c.notifier.Send(m.Code, p.ID, event, data)
}

func (c *Core) broadcast(m *Match, event string, data any) {
	for _, p := range m.Players {
		c.notifier.Send(m.Code, p.ID, event, data)
	}
}
