package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPlaying(h *harness) *Match {
	m := h.seed(ModeReflex, StatePlaying, 0, 0)
	m.LeaderIdx = 0
	return m
}

func TestSubmitMoveNotifiesBothSides(t *testing.T) {
	h := newHarness(DefaultRules())
	m := seedPlaying(h)

	h.core.SubmitMove("p1", "up")

	incoming, ok := h.rec.lastOf(EvtIncomingMove)
	require.True(t, ok)
	assert.Equal(t, "p2", incoming.Player)
	assert.Equal(t, IncomingMoveData{Direction: DirUp, ReactionTimeMs: 2000}, incoming.Data)

	sent, ok := h.rec.lastOf(EvtMoveSent)
	require.True(t, ok)
	assert.Equal(t, "p1", sent.Player)

	require.NotNil(t, m.Move)
	assert.Equal(t, DirUp, m.Move.Direction)
	assert.False(t, m.Move.Responded)
}

func TestSubmitMoveIgnoredForWrongSenderOrState(t *testing.T) {
	h := newHarness(DefaultRules())
	m := seedPlaying(h)

	h.core.SubmitMove("p2", "up")     // defender cannot attack
	h.core.SubmitMove("ghost", "up")  // unknown sender
	h.core.SubmitMove("p1", "zigzag") // not a direction
	assert.Nil(t, m.Move)
	assert.Equal(t, 0, h.rec.count())

	m.State = StateCountdown
	h.core.SubmitMove("p1", "up")
	assert.Nil(t, m.Move)
	assert.Equal(t, 0, h.rec.count())
}

func TestSubmitMoveIgnoredWhilePending(t *testing.T) {
	h := newHarness(DefaultRules())
	m := seedPlaying(h)

	h.core.SubmitMove("p1", "up")
	h.core.SubmitMove("p1", "down")

	require.NotNil(t, m.Move)
	assert.Equal(t, DirUp, m.Move.Direction)
	assert.Len(t, h.rec.ofType(EvtIncomingMove), 1)
}

func TestRespondMoveCorrectScoresDefender(t *testing.T) {
	h := newHarness(DefaultRules())
	m := seedPlaying(h)

	h.core.SubmitMove("p1", "left")
	h.clock.Advance(150 * time.Millisecond)
	h.core.RespondMove("p2", "left")

	result, ok := h.rec.lastOf(EvtMoveResult)
	require.True(t, ok)
	assert.Equal(t, "p2", result.Player)
	assert.Equal(t, MoveResultData{
		Expected:       DirLeft,
		Detected:       DirLeft,
		Correct:        true,
		ReactionTimeMs: 150,
		Scores:         Scores{Player1: 0, Player2: 1},
	}, result.Data)

	opp, ok := h.rec.lastOf(EvtOpponentResult)
	require.True(t, ok)
	assert.Equal(t, "p1", opp.Player)

	assert.Nil(t, m.Move)
	assert.Equal(t, 1, m.Players[1].Score)
}

func TestRespondMoveIncorrectNoScore(t *testing.T) {
	h := newHarness(DefaultRules())
	m := seedPlaying(h)

	h.core.SubmitMove("p1", "left")
	h.core.RespondMove("p2", "right")

	result, _ := h.rec.lastOf(EvtMoveResult)
	data := result.Data.(MoveResultData)
	assert.False(t, data.Correct)
	assert.Equal(t, Scores{}, data.Scores)
	assert.Equal(t, 0, m.Players[1].Score)
}

func TestRespondMoveGarbageLeavesMovePending(t *testing.T) {
	h := newHarness(DefaultRules())
	m := seedPlaying(h)

	h.core.SubmitMove("p1", "left")
	h.clock.Advance(100 * time.Millisecond)
	h.core.RespondMove("p2", "???")

	require.NotNil(t, m.Move)
	assert.False(t, m.Move.Responded)
	assert.Empty(t, h.rec.ofType(EvtMoveResult))

	// a clean reading within the window still resolves the move
	h.clock.Advance(100 * time.Millisecond)
	h.core.RespondMove("p2", "left")

	result, ok := h.rec.lastOf(EvtMoveResult)
	require.True(t, ok)
	data := result.Data.(MoveResultData)
	assert.True(t, data.Correct)
	assert.Equal(t, int64(200), data.ReactionTimeMs)
	assert.Nil(t, m.Move)
}

func TestRespondMoveIgnoredFromAttacker(t *testing.T) {
	h := newHarness(DefaultRules())
	m := seedPlaying(h)

	h.core.SubmitMove("p1", "up")
	h.core.RespondMove("p1", "up")

	require.NotNil(t, m.Move)
	assert.False(t, m.Move.Responded)
	assert.Empty(t, h.rec.ofType(EvtMoveResult))
}

func TestReactionTimeoutViaTimer(t *testing.T) {
	h := newHarness(DefaultRules())
	m := seedPlaying(h)

	h.core.SubmitMove("p1", "down")
	h.fire(t, 2*time.Second)

	missed, ok := h.rec.lastOf(EvtMoveMissed)
	require.True(t, ok)
	assert.Equal(t, "p2", missed.Player)
	assert.Equal(t, MoveMissedData{Direction: DirDown}, missed.Data)

	oppMissed, ok := h.rec.lastOf(EvtOpponentMissed)
	require.True(t, ok)
	assert.Equal(t, "p1", oppMissed.Player)

	assert.Nil(t, m.Move)
	assert.Equal(t, Scores{}, m.scores())
}

func TestResponseJustBeforeExpiryWins(t *testing.T) {
	h := newHarness(DefaultRules())
	m := seedPlaying(h)

	h.core.SubmitMove("p1", "up")
	h.clock.Advance(1999 * time.Millisecond)
	h.core.RespondMove("p2", "up")

	// The timeout was cancelled; moving past the window changes nothing.
	h.clock.Advance(time.Millisecond)
	h.barrier()

	assert.Len(t, h.rec.ofType(EvtMoveResult), 1)
	assert.Empty(t, h.rec.ofType(EvtMoveMissed))
	assert.Equal(t, 1, m.Players[1].Score)
}

func TestResponseJustAfterExpiryIsNoOp(t *testing.T) {
	h := newHarness(DefaultRules())
	m := seedPlaying(h)

	h.core.SubmitMove("p1", "up")
	h.fire(t, 2*time.Second)
	h.core.RespondMove("p2", "up")

	assert.Len(t, h.rec.ofType(EvtMoveMissed), 1)
	assert.Empty(t, h.rec.ofType(EvtMoveResult))
	assert.Equal(t, 0, m.Players[1].Score)
}

func TestExpireAfterResolutionIsNoOp(t *testing.T) {
	h := newHarness(DefaultRules())
	m := seedPlaying(h)

	h.core.SubmitMove("p1", "up")
	h.core.RespondMove("p2", "up")
	before := h.rec.count()

	h.locked(func() { h.core.expireMove(m) })

	assert.Equal(t, before, h.rec.count())
}

func TestAtMostOnePendingMoveAcrossExchanges(t *testing.T) {
	h := newHarness(DefaultRules())
	m := seedPlaying(h)

	for i, dir := range []string{"up", "down", "left"} {
		h.core.SubmitMove("p1", dir)
		require.NotNil(t, m.Move)
		h.core.RespondMove("p2", dir)
		require.Nil(t, m.Move)
		assert.Equal(t, i+1, m.Players[1].Score)
	}
	// Score only ever went up, one point at a time.
	assert.Equal(t, 3, m.Players[1].Score)
	assert.Equal(t, 0, m.Players[0].Score)
}
