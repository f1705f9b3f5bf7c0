// Package placement decides the geometric and connectivity legality of a
// proposed placement against the current grid, and extracts every word the
// placement would form. It never mutates the live board.
package placement

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mosaicgames/wordmosaic/board"
	"github.com/mosaicgames/wordmosaic/move"
)

// Rejection reasons. All of these are recoverable at the turn boundary.
var (
	ErrEmptyPlacement     = errors.New("placement has no tiles")
	ErrOutOfBounds        = errors.New("placement goes off the board")
	ErrNotCollinear       = errors.New("tiles are not in one row or column")
	ErrNotContiguous      = errors.New("tiles leave a gap")
	ErrDoesNotCrossCenter = errors.New("first word must cross the center square")
	ErrNotConnected       = errors.New("new tiles do not connect to the mosaic")
	ErrNoWordFormed       = errors.New("placement forms no word of two or more letters")
)

// FormedWord is one word formed or extended by a placement, with its cell
// span in reading order.
type FormedWord struct {
	Text  string
	Cells []board.Cell
	// Extends is true when the word overlaps at least one pre-existing
	// tile; such words earn the connection bonus.
	Extends bool
}

// Result is a successful validation: every word the placement forms, plus
// the cells that are newly occupied this turn.
type Result struct {
	Words    []FormedWord
	NewCells []board.Cell
	// NewTiles holds only the letters that actually come off the rack,
	// ready to hand to GameBoard.PlaceTiles on commit.
	NewTiles []board.TilePlacement
}

// NewCellSet returns the newly placed cells as a set.
func (r *Result) NewCellSet() map[board.Cell]bool {
	set := make(map[board.Cell]bool, len(r.NewCells))
	for _, c := range r.NewCells {
		set[c] = true
	}
	return set
}

// Validate checks a placement request against the grid. On success it
// returns the full set of formed words, extracted deterministically:
// row-major over the newly placed cells, horizontal run before vertical run
// per cell, each maximal run reported once.
func Validate(g *board.GameBoard, p *move.Placement) (*Result, error) {
	if p == nil || len(p.Letters) == 0 {
		return nil, ErrEmptyPlacement
	}
	for _, pl := range p.Letters {
		if !g.PosExists(pl.Row, pl.Col) {
			return nil, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, pl.Row, pl.Col)
		}
	}
	if err := checkGeometry(p); err != nil {
		return nil, err
	}

	res := &Result{}
	reusesExisting := false
	for _, pl := range p.Letters {
		cell := board.Cell{Row: pl.Row, Col: pl.Col}
		existing := g.GetLetter(pl.Row, pl.Col)
		switch existing {
		case 0:
			res.NewCells = append(res.NewCells, cell)
			res.NewTiles = append(res.NewTiles,
				board.TilePlacement{Letter: pl.Letter, Cell: cell})
		case pl.Letter:
			reusesExisting = true
		default:
			return nil, fmt.Errorf("%w: %c at (%d, %d), wanted %c",
				board.ErrLetterConflict, existing, pl.Row, pl.Col, pl.Letter)
		}
	}
	if len(res.NewCells) == 0 {
		return nil, fmt.Errorf("%w: every cell already holds its letter",
			ErrEmptyPlacement)
	}

	if g.IsEmpty() {
		if !coversCenter(g, p) {
			return nil, ErrDoesNotCrossCenter
		}
	} else if !reusesExisting && !touchesExisting(g, res.NewCells) {
		return nil, ErrNotConnected
	}

	res.Words = extractWords(g, res)
	if len(res.Words) == 0 {
		return nil, ErrNoWordFormed
	}
	return res, nil
}

func checkGeometry(p *move.Placement) error {
	seen := make(map[board.Cell]bool)
	rows := make(map[int]bool)
	cols := make(map[int]bool)
	for _, pl := range p.Letters {
		cell := board.Cell{Row: pl.Row, Col: pl.Col}
		if seen[cell] {
			return fmt.Errorf("%w: cell (%d, %d) repeated",
				ErrNotContiguous, pl.Row, pl.Col)
		}
		seen[cell] = true
		rows[pl.Row] = true
		cols[pl.Col] = true
	}
	if p.Direction == board.HorizontalDirection {
		if len(rows) != 1 {
			return ErrNotCollinear
		}
	} else if len(cols) != 1 {
		return ErrNotCollinear
	}
	// The requested cells themselves must be gapless along the axis; a
	// placement covers any existing tiles it reads through.
	positions := make([]int, 0, len(p.Letters))
	for _, pl := range p.Letters {
		if p.Direction == board.HorizontalDirection {
			positions = append(positions, pl.Col)
		} else {
			positions = append(positions, pl.Row)
		}
	}
	sort.Ints(positions)
	for i := 1; i < len(positions); i++ {
		if positions[i] != positions[i-1]+1 {
			return ErrNotContiguous
		}
	}
	return nil
}

func coversCenter(g *board.GameBoard, p *move.Placement) bool {
	center := g.Center()
	for _, pl := range p.Letters {
		if pl.Row == center.Row && pl.Col == center.Col {
			return true
		}
	}
	return false
}

func touchesExisting(g *board.GameBoard, newCells []board.Cell) bool {
	for _, c := range newCells {
		if g.HasAdjacentLetter(c.Row, c.Col) {
			return true
		}
	}
	return false
}

func extractWords(g *board.GameBoard, res *Result) []FormedWord {
	scratch := g.Copy()
	// NewTiles was conflict-checked above; this cannot fail.
	if err := scratch.PlaceTiles(res.NewTiles); err != nil {
		return nil
	}
	newSet := res.NewCellSet()

	ordered := make([]board.Cell, len(res.NewCells))
	copy(ordered, res.NewCells)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Row != ordered[j].Row {
			return ordered[i].Row < ordered[j].Row
		}
		return ordered[i].Col < ordered[j].Col
	})

	type runKey struct {
		start board.Cell
		dir   board.Direction
	}
	seen := make(map[runKey]bool)
	var words []FormedWord
	for _, cell := range ordered {
		for _, dir := range []board.Direction{
			board.HorizontalDirection, board.VerticalDirection} {
			text, span := scratch.WordThrough(cell.Row, cell.Col, dir)
			if len(span) < 2 {
				continue
			}
			key := runKey{start: span[0], dir: dir}
			if seen[key] {
				continue
			}
			seen[key] = true
			extends := false
			for _, c := range span {
				if !newSet[c] {
					extends = true
					break
				}
			}
			words = append(words, FormedWord{Text: text, Cells: span, Extends: extends})
		}
	}
	return words
}
