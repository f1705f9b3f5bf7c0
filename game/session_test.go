package game

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaicgames/wordmosaic/board"
	"github.com/mosaicgames/wordmosaic/config"
	"github.com/mosaicgames/wordmosaic/dictionary"
	"github.com/mosaicgames/wordmosaic/move"
	"github.com/mosaicgames/wordmosaic/placement"
	"github.com/mosaicgames/wordmosaic/tiles"
)

// fakeDict accepts an explicit word list, or every word when allValid is
// set. With unavailable set, every lookup fails like a network outage.
type fakeDict struct {
	valid       map[string]bool
	allValid    bool
	unavailable bool
}

func (f *fakeDict) Name() string { return "fake" }

func (f *fakeDict) Lookup(ctx context.Context, word string) (*dictionary.Entry, error) {
	if f.unavailable {
		return nil, dictionary.ErrLookupUnavailable
	}
	word = strings.ToUpper(word)
	return &dictionary.Entry{
		Word:  word,
		Valid: f.allValid || f.valid[word],
	}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		RackCapacity:            tiles.DefaultRackCapacity,
		LetterDistribution:      "English",
		MosaicBonus:             50,
		CoverageBonusPerPercent: 1.0,
		EfficiencyBonus:         25,
		EfficiencyThreshold:     15.0,
	}
}

func newTestSession(t *testing.T, dict dictionary.Lookup) *Session {
	t.Helper()
	s, err := NewSession(testConfig(), dict)
	require.NoError(t, err)
	return s
}

// setRack gives the session an exact rack, independent of the random
// initial draw.
func setRack(s *Session, letters string) {
	s.rack = tiles.RackFromString(letters, s.cfg.RackCapacity)
}

func TestFirstMoveMustCrossCenter(t *testing.T) {
	s := newTestSession(t, &fakeDict{allValid: true})
	setRack(s, "CATXXXX")

	res, err := s.Submit(context.Background(),
		move.NewPlacement(0, 0, board.HorizontalDirection, "CAT"))
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.ErrorIs(t, res.Reason, placement.ErrDoesNotCrossCenter)
	assert.True(t, s.BoardSnapshot().IsEmpty())
	assert.Equal(t, []rune("ACTXXXX"), s.RackLetters())
	assert.Equal(t, 0, s.TotalScore())
}

func TestFirstMoveThroughCenter(t *testing.T) {
	s := newTestSession(t, &fakeDict{allValid: true})
	setRack(s, "CAT")

	res, err := s.SubmitWord(context.Background(), 7, 5, false, "CAT")
	require.NoError(t, err)
	require.True(t, res.Accepted, "reason: %v", res.Reason)
	assert.Equal(t, 5, res.TurnScore)
	assert.Equal(t, 5, s.TotalScore())
	assert.True(t, s.BoardSnapshot().HasLetter(7, 7))
	// The rack was refilled back to capacity after the commit.
	assert.Equal(t, s.cfg.RackCapacity, len(s.RackLetters()))
	assert.Len(t, s.History(), 1)
}

func TestRejectedTurnIsANoOp(t *testing.T) {
	s := newTestSession(t, &fakeDict{allValid: true})
	setRack(s, "CAT")
	_, err := s.SubmitWord(context.Background(), 7, 5, false, "CAT")
	require.NoError(t, err)

	rackBefore := s.RackLetters()
	scoreBefore := s.TotalScore()
	tilesBefore := s.BoardSnapshot().TilesPlayed()
	bagBefore := s.TilesRemaining()

	// Disconnected from everything on the board.
	res, err := s.SubmitWord(context.Background(), 0, 0, false, "CAT")
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.ErrorIs(t, res.Reason, placement.ErrNotConnected)

	assert.Equal(t, rackBefore, s.RackLetters())
	assert.Equal(t, scoreBefore, s.TotalScore())
	assert.Equal(t, tilesBefore, s.BoardSnapshot().TilesPlayed())
	assert.Equal(t, bagBefore, s.TilesRemaining())
	assert.Equal(t, AwaitingPlacement, s.State())
}

func TestInsufficientLetters(t *testing.T) {
	s := newTestSession(t, &fakeDict{allValid: true})
	setRack(s, "AAA")

	res, err := s.SubmitWord(context.Background(), 7, 7, false, "B")
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.ErrorIs(t, res.Reason, tiles.ErrInsufficientLetters)
	assert.Equal(t, []rune("AAA"), s.RackLetters())
}

func TestNotAWordReturnsLettersToRack(t *testing.T) {
	s := newTestSession(t, &fakeDict{valid: map[string]bool{}})
	setRack(s, "CAT")

	res, err := s.SubmitWord(context.Background(), 7, 5, false, "CAT")
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.ErrorIs(t, res.Reason, ErrNotAWord)
	assert.True(t, s.BoardSnapshot().IsEmpty())
	assert.Equal(t, []rune("ACT"), s.RackLetters())
}

func TestLookupOutageIsNotAWordRejection(t *testing.T) {
	s := newTestSession(t, &fakeDict{unavailable: true})
	setRack(s, "CAT")

	res, err := s.SubmitWord(context.Background(), 7, 5, false, "CAT")
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.ErrorIs(t, res.Reason, dictionary.ErrLookupUnavailable)
	assert.NotErrorIs(t, res.Reason, ErrNotAWord)
	assert.Equal(t, []rune("ACT"), s.RackLetters())
	assert.True(t, s.BoardSnapshot().IsEmpty())
}

func TestUndoRevertsLastTurn(t *testing.T) {
	s := newTestSession(t, &fakeDict{allValid: true})
	setRack(s, "CAT")
	_, err := s.SubmitWord(context.Background(), 7, 5, false, "CAT")
	require.NoError(t, err)

	// ARC reads through the A already at (7,6); only R and C are placed.
	setRack(s, "RC")
	res, err := s.SubmitWord(context.Background(), 7, 6, true, "ARC")
	require.NoError(t, err)
	require.True(t, res.Accepted, "reason: %v", res.Reason)
	require.Len(t, s.History(), 2)

	require.NoError(t, s.Undo())
	assert.Len(t, s.History(), 1)
	assert.Equal(t, 5, s.TotalScore())
	assert.False(t, s.BoardSnapshot().HasLetter(8, 6))
	assert.False(t, s.BoardSnapshot().HasLetter(9, 6))
	assert.True(t, s.BoardSnapshot().HasLetter(7, 6))
	// The undone turn's tiles are back on the rack.
	assert.True(t, s.rack.Has([]rune("RC")))
}

func TestUndoRestoresBonusAvailability(t *testing.T) {
	s := newTestSession(t, &fakeDict{allValid: true})
	setRack(s, "CAT")
	_, err := s.SubmitWord(context.Background(), 7, 5, false, "CAT")
	require.NoError(t, err)

	// (8,6) is a double-letter square; ARC consumes it.
	setRack(s, "RC")
	res, err := s.SubmitWord(context.Background(), 7, 6, true, "ARC")
	require.NoError(t, err)
	require.True(t, res.Accepted)
	assert.False(t, s.BoardSnapshot().BonusAvailable(8, 6))

	require.NoError(t, s.Undo())
	assert.True(t, s.BoardSnapshot().BonusAvailable(8, 6))

	// Replaying the same turn scores the same as the first time.
	setRack(s, "RC")
	res, err = s.SubmitWord(context.Background(), 7, 6, true, "ARC")
	require.NoError(t, err)
	require.True(t, res.Accepted)
	assert.Equal(t, 8, res.TurnScore)
}

func TestUndoWithEmptyHistory(t *testing.T) {
	s := newTestSession(t, &fakeDict{allValid: true})
	assert.ErrorIs(t, s.Undo(), ErrNothingToUndo)
}

func TestExchange(t *testing.T) {
	s := newTestSession(t, &fakeDict{allValid: true})
	setRack(s, "CAT")

	require.NoError(t, s.Exchange([]rune("CA")))
	assert.Equal(t, 3, len(s.RackLetters()))
	assert.True(t, s.rack.Has([]rune("T")))

	assert.ErrorIs(t, s.Exchange([]rune("Z")), tiles.ErrInsufficientLetters)
}

func TestExchangeWithNearEmptyBag(t *testing.T) {
	s := newTestSession(t, &fakeDict{allValid: true})
	setRack(s, "CAT")
	s.bag.DrawAtMost(s.bag.TilesRemaining() - 1)

	assert.ErrorIs(t, s.Exchange([]rune("CA")), ErrBagTooSmall)
	require.NoError(t, s.Exchange([]rune("C")))
	assert.Equal(t, 3, len(s.RackLetters()))
}

func TestGameOver(t *testing.T) {
	s := newTestSession(t, &fakeDict{allValid: true})
	setRack(s, "CAT")
	s.bag.DrawAtMost(s.bag.TilesRemaining())

	res, err := s.SubmitWord(context.Background(), 7, 5, false, "CAT")
	require.NoError(t, err)
	require.True(t, res.Accepted, "reason: %v", res.Reason)
	assert.True(t, res.GameOver)
	assert.Equal(t, GameOver, s.State())

	_, err = s.Submit(context.Background(),
		move.NewPlacement(7, 6, board.VerticalDirection, "ARC"))
	assert.ErrorIs(t, err, ErrGameOver)
	assert.ErrorIs(t, s.Exchange([]rune("A")), ErrGameOver)
}

func TestFinalSummary(t *testing.T) {
	s := newTestSession(t, &fakeDict{allValid: true})
	setRack(s, "CAT")
	_, err := s.SubmitWord(context.Background(), 7, 5, false, "CAT")
	require.NoError(t, err)

	sum := s.FinalSummary()
	assert.Equal(t, 5, sum.Score)
	// 3 of 225 squares covered is 1.33%, rounded to a 1-point bonus.
	assert.Equal(t, 1, sum.CoverageBonus)
	// An average of 5 points per turn is below the efficiency threshold.
	assert.Equal(t, 0, sum.EfficiencyBonus)
	assert.Equal(t, 6, sum.FinalScore)
	assert.Equal(t, 1, sum.TurnsPlayed)
	assert.Equal(t, []string{"CAT"}, sum.WordsPlayed)
	assert.InDelta(t, 100.0*3/225, sum.Coverage, 1e-9)
}

func TestEfficiencyBonus(t *testing.T) {
	s := newTestSession(t, &fakeDict{allValid: true})
	setRack(s, "MOSAICS")

	// Seven tiles in one turn: 12 base (the S at column 3 sits on a
	// double-letter square), tripled for length, plus the mosaic bonus.
	res, err := s.SubmitWord(context.Background(), 7, 1, false, "MOSAICS")
	require.NoError(t, err)
	require.True(t, res.Accepted, "reason: %v", res.Reason)
	require.Equal(t, 86, res.TurnScore)

	sum := s.FinalSummary()
	assert.Equal(t, 25, sum.EfficiencyBonus)
	assert.Equal(t, 3, sum.CoverageBonus)
	assert.Equal(t, 86+25+3, sum.FinalScore)
}
