package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mosaicgames/wordmosaic/board"
	"github.com/mosaicgames/wordmosaic/move"
	"github.com/mosaicgames/wordmosaic/placement"
	"github.com/mosaicgames/wordmosaic/tiles"
)

// A small 7x7 layout keeps the bonus geometry easy to see. The center is
// (3,3).
func plainBoard() *board.GameBoard {
	return board.MakeBoard([]string{
		`       `,
		`       `,
		`       `,
		`   *   `,
		`       `,
		`       `,
		`       `,
	})
}

func boardWithBonusAt35(bonus string) *board.GameBoard {
	return board.MakeBoard([]string{
		`       `,
		`       `,
		`       `,
		`   * ` + bonus + ` `,
		`       `,
		`       `,
		`       `,
	})
}

func engine() *Engine {
	return NewEngine(tiles.EnglishLetterDistribution(), DefaultMosaicBonus)
}

func validateAndPlace(t *testing.T, g *board.GameBoard, p *move.Placement) *placement.Result {
	t.Helper()
	res, err := placement.Validate(g, p)
	assert.NoError(t, err)
	assert.NoError(t, g.PlaceTiles(res.NewTiles))
	return res
}

func TestScoreFirstWordNoMultipliers(t *testing.T) {
	g := plainBoard()
	res := validateAndPlace(t, g,
		move.NewPlacement(3, 2, board.HorizontalDirection, "CAT"))

	ts := engine().ScoreTurn(g, res, true)
	// C(3) + A(1) + T(1), length factor 1.0, no connection bonus.
	assert.Equal(t, 5, ts.Total)
	assert.Equal(t, 1, len(ts.Words))
	assert.Equal(t, WordScore{Text: "CAT", Score: 5}, ts.Words[0])
}

func TestScoreConnectionBonus(t *testing.T) {
	g := plainBoard()
	res := validateAndPlace(t, g,
		move.NewPlacement(3, 2, board.HorizontalDirection, "CAT"))
	engine().ScoreTurn(g, res, true)

	// ARC reads down through the existing A: A(3,3) R(4,3) C(5,3).
	res = validateAndPlace(t, g,
		move.NewPlacement(3, 3, board.VerticalDirection, "ARC"))
	ts := engine().ScoreTurn(g, res, true)
	// A(1) + R(1) + C(3) = 5, plus the connection bonus.
	assert.Equal(t, 5+ConnectionBonus, ts.Total)
}

func TestScoreWordMultiplierConsumedOnceAcrossCrossingWords(t *testing.T) {
	g := boardWithBonusAt35("-")
	g.SetRow(3, "  CAT  ")
	g.SetRow(4, "     O ")

	// S at (3,5) forms CATS horizontally and SO vertically; (3,5) is a
	// double-word square. Extraction order puts CATS first, so only CATS
	// is doubled.
	res := validateAndPlace(t, g, &move.Placement{
		Direction: board.HorizontalDirection,
		Letters:   []move.PlacedLetter{{Letter: 'S', Row: 3, Col: 5}},
	})
	ts := engine().ScoreTurn(g, res, true)

	assert.Equal(t, 2, len(ts.Words))
	// CATS: (3+1+1+1) x2 +2 connection.
	assert.Equal(t, WordScore{Text: "CATS", Score: 14}, ts.Words[0])
	// SO: (1+1), bonus already spent, +2 connection.
	assert.Equal(t, WordScore{Text: "SO", Score: 4}, ts.Words[1])
	assert.Equal(t, 18, ts.Total)

	// The square's bonus is gone for the rest of the session.
	assert.False(t, g.BonusAvailable(3, 5))
}

func TestScoreLetterMultiplierOnlyOnNewCells(t *testing.T) {
	g := boardWithBonusAt35(`"`)
	g.SetRow(3, "  CAT  ")
	g.SetRow(4, "     O ")

	res := validateAndPlace(t, g, &move.Placement{
		Direction: board.HorizontalDirection,
		Letters:   []move.PlacedLetter{{Letter: 'S', Row: 3, Col: 5}},
	})
	ts := engine().ScoreTurn(g, res, true)
	// CATS: 3+1+1+(1x3) = 8, +2 connection.
	assert.Equal(t, WordScore{Text: "CATS", Score: 10}, ts.Words[0])
	// SO: triple-letter already spent this turn.
	assert.Equal(t, WordScore{Text: "SO", Score: 4}, ts.Words[1])
}

func TestScoreReusedCellNeverTriggersBonus(t *testing.T) {
	// The T of CAT sits on an unconsumed double-word square, placed there
	// by SetRow without scoring. A later word reading through it must not
	// trigger the bonus, because the cell is not newly placed.
	g := board.MakeBoard([]string{
		`       `,
		`       `,
		`       `,
		`   *-  `,
		`       `,
		`       `,
		`       `,
	})
	g.SetRow(3, "  CAT  ")

	res := validateAndPlace(t, g, &move.Placement{
		Direction: board.HorizontalDirection,
		Letters:   []move.PlacedLetter{{Letter: 'S', Row: 3, Col: 5}},
	})
	ts := engine().ScoreTurn(g, res, true)
	// CATS: 3+1+1+1 = 6, undoubled, +2 connection.
	assert.Equal(t, WordScore{Text: "CATS", Score: 8}, ts.Words[0])
	assert.True(t, g.BonusAvailable(3, 4))
}

func TestScoreLengthFactors(t *testing.T) {
	assert.Equal(t, 1.0, lengthFactor(2))
	assert.Equal(t, 1.0, lengthFactor(4))
	assert.Equal(t, 1.5, lengthFactor(5))
	assert.Equal(t, 2.0, lengthFactor(6))
	assert.Equal(t, 3.0, lengthFactor(7))
	assert.Equal(t, 3.0, lengthFactor(12))
}

func TestScoreFiveLetterWord(t *testing.T) {
	g := plainBoard()
	res := validateAndPlace(t, g,
		move.NewPlacement(3, 1, board.HorizontalDirection, "QUEEN"))
	ts := engine().ScoreTurn(g, res, true)
	// (10+1+1+1+1) x 1.5
	assert.Equal(t, 21, ts.Total)
}

func TestScoreHalfPointRoundsUp(t *testing.T) {
	g := plainBoard()
	res := validateAndPlace(t, g,
		move.NewPlacement(3, 1, board.HorizontalDirection, "ARENA"))
	ts := engine().ScoreTurn(g, res, true)
	// (1+1+1+1+1) x 1.5 = 7.5, rounded away from zero.
	assert.Equal(t, 8, ts.Total)
}

func TestScoreMosaicBonus(t *testing.T) {
	g := plainBoard()
	res := validateAndPlace(t, g,
		move.NewPlacement(3, 0, board.HorizontalDirection, "MOSAICS"))
	ts := engine().ScoreTurn(g, res, true)
	// (3+1+1+1+1+3+1) x 3.0 = 33, plus the all-tiles bonus.
	assert.Equal(t, DefaultMosaicBonus, ts.MosaicBonus)
	assert.Equal(t, 33+DefaultMosaicBonus, ts.Total)
}

func TestScoreNoMosaicBonusWhenDisabled(t *testing.T) {
	g := plainBoard()
	res := validateAndPlace(t, g,
		move.NewPlacement(3, 0, board.HorizontalDirection, "MOSAICS"))
	e := NewEngine(tiles.EnglishLetterDistribution(), 0)
	ts := e.ScoreTurn(g, res, true)
	assert.Equal(t, 0, ts.MosaicBonus)
	assert.Equal(t, 33, ts.Total)
}

func TestScoreDryRunLeavesBonusesIntact(t *testing.T) {
	g := boardWithBonusAt35("-")
	g.SetRow(3, "  CAT  ")

	res := validateAndPlace(t, g, &move.Placement{
		Direction: board.HorizontalDirection,
		Letters:   []move.PlacedLetter{{Letter: 'S', Row: 3, Col: 5}},
	})
	e := engine()
	first := e.ScoreTurn(g, res, false)
	assert.True(t, g.BonusAvailable(3, 5))

	// Recomputation is deterministic and idempotent.
	second := e.ScoreTurn(g, res, false)
	assert.Equal(t, first, second)
}
