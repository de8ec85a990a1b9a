package game

import (
	"time"

	"github.com/jonboulle/clockwork"
)

type timerKind uint8

const (
	timerCountdown timerKind = iota
	timerRound
	timerMove
	timerTransition
)

// timerEntry is one armed timer plus the channel that releases its waiting
// goroutine when the timer is cancelled instead of fired.
type timerEntry struct {
	timer clockwork.Timer
	done  chan struct{}
}

// timerSet holds the live timers for one match, at most one per kind.
// Arming a kind always replaces the previous timer of that kind, and a
// fired callback is only honored while its entry is still the registered
// one, so cancellation is enforced by identity rather than convention.
type timerSet struct {
	clock   clockwork.Clock
	entries map[timerKind]*timerEntry
}

func newTimerSet(clock clockwork.Clock) *timerSet {
	return &timerSet{
		clock:   clock,
		entries: make(map[timerKind]*timerEntry),
	}
}

// arm method    replaces any live timer of the kind with a fresh one
func (ts *timerSet) arm(kind timerKind, d time.Duration) *timerEntry {
	ts.cancel(kind)
	e := &timerEntry{
		timer: ts.clock.NewTimer(d),
		done:  make(chan struct{}),
	}
	ts.entries[kind] = e
	return e
}

// live reports whether e is still the registered entry of its kind.
func (ts *timerSet) live(kind timerKind, e *timerEntry) bool {
	return ts.entries[kind] == e
}

// fired drops the bookkeeping entry once e has expired and been honored.
func (ts *timerSet) fired(kind timerKind, e *timerEntry) {
	if ts.entries[kind] == e {
		delete(ts.entries, kind)
	}
}

func (ts *timerSet) cancel(kind timerKind) {
	if e, ok := ts.entries[kind]; ok {
		stopAndDrainTimer(e.timer)
		close(e.done)
		delete(ts.entries, kind)
	}
}

func (ts *timerSet) cancelAll() {
	for kind, e := range ts.entries {
		stopAndDrainTimer(e.timer)
		close(e.done)
		delete(ts.entries, kind)
	}
}

// stopAndDrainTimer stops a timer and drains its channel so a fire that
// raced the stop cannot linger in the buffer.
func stopAndDrainTimer(t clockwork.Timer) {
	if !t.Stop() {
		select {
		case <-t.Chan():
		default:
		}
	}
}
