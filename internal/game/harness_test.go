package game

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

type sentEvent struct {
	Match  string
	Player string
	Type   string
	Data   any
}

// recorder captures outbound notifications in emission order.
type recorder struct {
	mu     sync.Mutex
	events []sentEvent
}

func (r *recorder) Send(matchCode, playerID, event string, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, sentEvent{Match: matchCode, Player: playerID, Type: event, Data: data})
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func (r *recorder) all() []sentEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]sentEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recorder) ofType(event string) []sentEvent {
	var out []sentEvent
	for _, e := range r.all() {
		if e.Type == event {
			out = append(out, e)
		}
	}
	return out
}

func (r *recorder) lastOf(event string) (sentEvent, bool) {
	events := r.ofType(event)
	if len(events) == 0 {
		return sentEvent{}, false
	}
	return events[len(events)-1], true
}

func (r *recorder) typesFor(player string) []string {
	var out []string
	for _, e := range r.all() {
		if e.Player == player {
			out = append(out, e.Type)
		}
	}
	return out
}

type harness struct {
	core  *Core
	rec   *recorder
	clock *clockwork.FakeClock
	reg   *Registry
}

func newHarness(rules Rules) *harness {
	rec := &recorder{}
	clock := clockwork.NewFakeClock()
	reg := NewRegistry()
	return &harness{
		core:  NewCore(reg, rec, clock, rules),
		rec:   rec,
		clock: clock,
		reg:   reg,
	}
}

// seed installs a match directly in the given state, bypassing the create/
// join flow, so tests can start at any point of the lifecycle.
func (h *harness) seed(mode Mode, state State, p1Score, p2Score int) *Match {
	policy := policyFor(string(mode))
	m := &Match{
		Code:        "TESTAA",
		Players:     []*participant{{ID: "p1", Score: p1Score}, {ID: "p2", Score: p2Score}},
		Round:       1,
		TotalRounds: policy.totalRounds(h.core.rules),
		State:       state,
		policy:      policy,
		timers:      newTimerSet(h.clock),
	}
	h.reg.Put(m)
	h.reg.Bind("p1", m.Code)
	h.reg.Bind("p2", m.Code)
	return m
}

// fire advances fake time by exactly one armed interval and waits until the
// fired handler has emitted and released the core lock. Every timer handler
// in the round flow emits at least one notification, which is what makes
// the wait observable.
func (h *harness) fire(t *testing.T, d time.Duration) {
	t.Helper()
	before := h.rec.count()
	h.clock.Advance(d)
	require.Eventually(t, func() bool {
		return h.rec.count() > before
	}, time.Second, 2*time.Millisecond)
	h.barrier()
}

// barrier waits for any in-flight handler to finish with core state.
func (h *harness) barrier() {
	h.core.mu.Lock()
	defer h.core.mu.Unlock()
}

// locked runs fn the way a timer callback would, under the core lock.
func (h *harness) locked(fn func()) {
	h.core.mu.Lock()
	defer h.core.mu.Unlock()
	fn()
}

// createAndJoin runs the real create/join flow and returns the match code.
func (h *harness) createAndJoin(t *testing.T, mode string) string {
	t.Helper()
	h.core.CreateMatch("p1", mode)
	created, ok := h.rec.lastOf(EvtMatchCreated)
	require.True(t, ok)
	code := created.Data.(MatchCreatedData).Code
	h.core.JoinMatch("p2", code)
	return code
}
