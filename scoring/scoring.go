// Package scoring computes the point value of a validated placement:
// letter values, one-time bonus squares, word-length factors, and
// connection bonuses.
package scoring

import (
	"math"

	"github.com/mosaicgames/wordmosaic/board"
	"github.com/mosaicgames/wordmosaic/placement"
	"github.com/mosaicgames/wordmosaic/tiles"
)

// ConnectionBonus is the flat award for a word that overlaps at least one
// pre-existing tile.
const ConnectionBonus = 2

// DefaultMosaicBonus is awarded when a single turn places seven or more
// new tiles.
const DefaultMosaicBonus = 50

// WordScore is the scored value of a single formed word.
type WordScore struct {
	Text  string
	Score int
}

// TurnScore is the full scoring breakdown for one committed turn.
type TurnScore struct {
	Words []WordScore
	// MosaicBonus is the all-tiles bonus, 0 when not earned.
	MosaicBonus int
	Total       int
}

// Engine scores validated placements against a grid. The same engine with
// the same inputs always produces the same breakdown; word order follows
// the validator's deterministic extraction order.
type Engine struct {
	dist        *tiles.LetterDistribution
	mosaicBonus int
}

// NewEngine creates a scoring engine. mosaicBonus of 0 disables the
// all-tiles bonus; pass DefaultMosaicBonus for the standard game.
func NewEngine(dist *tiles.LetterDistribution, mosaicBonus int) *Engine {
	return &Engine{dist: dist, mosaicBonus: mosaicBonus}
}

// lengthFactor is the word-length bonus factor.
func lengthFactor(length int) float64 {
	switch {
	case length >= 7:
		return 3.0
	case length == 6:
		return 2.0
	case length == 5:
		return 1.5
	}
	return 1.0
}

// ScoreTurn scores every word in the validation result. When commit is
// true, each participating bonus square is spent on the board; a square
// shared by two crossing words is consumed exactly once, by the first word
// in extraction order. When commit is false nothing is mutated, so a
// rejected turn leaves all bonuses intact.
func (e *Engine) ScoreTurn(g *board.GameBoard, res *placement.Result, commit bool) *TurnScore {
	newSet := res.NewCellSet()
	// Bonuses consumed earlier in this same turn. First consumption wins;
	// a later crossing word sees the square as already spent.
	usedThisTurn := make(map[board.Cell]bool)

	ts := &TurnScore{}
	for _, w := range res.Words {
		base := 0
		wordMult := 1
		for _, cell := range w.Cells {
			letterScore := e.dist.Score(g.GetLetter(cell.Row, cell.Col))
			if letterScore == 0 {
				// The cell may not be committed yet; fall back to the
				// word text for newly placed letters.
				letterScore = e.letterAt(w, cell)
			}
			// Only newly placed cells trigger a bonus.
			if newSet[cell] && !usedThisTurn[cell] && g.BonusAvailable(cell.Row, cell.Col) {
				bonus := g.GetBonus(cell.Row, cell.Col)
				letterScore *= bonus.LetterMultiplier()
				wordMult *= bonus.WordMultiplier()
				usedThisTurn[cell] = true
			}
			base += letterScore
		}
		score := int(math.Round(float64(base*wordMult) * lengthFactor(len(w.Cells))))
		if w.Extends {
			score += ConnectionBonus
		}
		ts.Words = append(ts.Words, WordScore{Text: w.Text, Score: score})
		ts.Total += score
	}
	if e.mosaicBonus > 0 && len(res.NewCells) >= 7 {
		ts.MosaicBonus = e.mosaicBonus
		ts.Total += e.mosaicBonus
	}
	if commit {
		for cell := range usedThisTurn {
			g.ConsumeBonus(cell.Row, cell.Col)
		}
	}
	return ts
}

// letterAt finds the letter a word places on a cell, used when scoring
// before the tiles are committed to the board.
func (e *Engine) letterAt(w placement.FormedWord, cell board.Cell) int {
	for i, c := range w.Cells {
		if c == cell {
			return e.dist.Score(rune(w.Text[i]))
		}
	}
	return 0
}
