// Package board implements the grid for a Word Mosaic game: a square matrix
// of squares holding committed letters and one-time bonus markings.
package board

import (
	"errors"
	"fmt"
)

// Direction is an axis on the board.
type Direction uint8

const (
	HorizontalDirection Direction = iota
	VerticalDirection
)

func (d Direction) String() string {
	if d == HorizontalDirection {
		return "horizontal"
	}
	return "vertical"
}

// Cell is a (row, col) coordinate on the board.
type Cell struct {
	Row int
	Col int
}

// TilePlacement pairs a letter with the cell it should occupy.
type TilePlacement struct {
	Letter rune
	Cell   Cell
}

// ErrLetterConflict is returned when a placement targets a cell occupied by
// a different letter.
var ErrLetterConflict = errors.New("cell occupied by a different letter")

// A GameBoard is the main grid structure. Once a square is occupied its
// letter never changes for the rest of the session; turns are only reverted
// by rebuilding the board from history.
type GameBoard struct {
	squares     [][]Square
	tilesPlayed int
}

// MakeBoard creates a board from a layout description: one string per row,
// one bonus marker rune per square.
func MakeBoard(desc []string) *GameBoard {
	rows := make([][]Square, len(desc))
	for i, s := range desc {
		row := make([]Square, 0, len(s))
		for _, c := range s {
			row = append(row, Square{bonus: BonusSquare(c)})
		}
		rows[i] = row
	}
	return &GameBoard{squares: rows}
}

// Copy returns a deep copy of this board.
func (g *GameBoard) Copy() *GameBoard {
	rows := make([][]Square, len(g.squares))
	for i, row := range g.squares {
		rows[i] = make([]Square, len(row))
		copy(rows[i], row)
	}
	return &GameBoard{squares: rows, tilesPlayed: g.tilesPlayed}
}

// Dim is the dimension of the board. It assumes the board is square.
func (g *GameBoard) Dim() int {
	return len(g.squares)
}

// Center returns the center cell, where the first word must be placed.
func (g *GameBoard) Center() Cell {
	return Cell{g.Dim() / 2, g.Dim() / 2}
}

// PosExists reports whether the coordinates are on the board.
func (g *GameBoard) PosExists(row, col int) bool {
	d := g.Dim()
	return row >= 0 && row < d && col >= 0 && col < d
}

// GetLetter returns the letter at the given position, or 0 for empty.
func (g *GameBoard) GetLetter(row, col int) rune {
	return g.squares[row][col].letter
}

// HasLetter reports whether the given position holds a letter.
func (g *GameBoard) HasLetter(row, col int) bool {
	return g.PosExists(row, col) && !g.squares[row][col].IsEmpty()
}

// GetBonus returns the bonus marking at the given position.
func (g *GameBoard) GetBonus(row, col int) BonusSquare {
	return g.squares[row][col].bonus
}

// BonusAvailable reports whether the position carries an unconsumed bonus.
func (g *GameBoard) BonusAvailable(row, col int) bool {
	return g.squares[row][col].BonusAvailable()
}

// ConsumeBonus spends the bonus at the given position and returns it.
// A second consumption, or a plain square, returns NoBonus; a bonus is
// applied at most once across the lifetime of the session.
func (g *GameBoard) ConsumeBonus(row, col int) BonusSquare {
	sq := &g.squares[row][col]
	if !sq.BonusAvailable() {
		return NoBonus
	}
	sq.bonusUsed = true
	return sq.bonus
}

// IsEmpty returns whether no tile has been placed yet. The first placement
// of a session is special-cased on this.
func (g *GameBoard) IsEmpty() bool {
	return g.tilesPlayed == 0
}

// TilesPlayed returns the number of occupied squares.
func (g *GameBoard) TilesPlayed() int {
	return g.tilesPlayed
}

// PlaceTiles commits the given letters to the board. A target cell must be
// empty or already hold the identical letter (cross-word reuse). If any cell
// holds a different letter the whole call fails with ErrLetterConflict and
// nothing is placed.
func (g *GameBoard) PlaceTiles(placements []TilePlacement) error {
	for _, tp := range placements {
		if !g.PosExists(tp.Cell.Row, tp.Cell.Col) {
			return fmt.Errorf("position (%d, %d) is off the board",
				tp.Cell.Row, tp.Cell.Col)
		}
		existing := g.squares[tp.Cell.Row][tp.Cell.Col].letter
		if existing != 0 && existing != tp.Letter {
			return fmt.Errorf("%w: %c at (%d, %d), wanted %c",
				ErrLetterConflict, existing, tp.Cell.Row, tp.Cell.Col, tp.Letter)
		}
	}
	for _, tp := range placements {
		sq := &g.squares[tp.Cell.Row][tp.Cell.Col]
		if sq.letter == 0 {
			sq.letter = tp.Letter
			g.tilesPlayed++
		}
	}
	return nil
}

// WordThrough returns the maximal contiguous letter run through the given
// cell along the given direction, with its cell span. An empty cell, or a
// cell isolated along that axis, yields an empty word.
func (g *GameBoard) WordThrough(row, col int, dir Direction) (string, []Cell) {
	if !g.HasLetter(row, col) {
		return "", nil
	}
	dr, dc := 0, 1
	if dir == VerticalDirection {
		dr, dc = 1, 0
	}
	// Walk to the start of the run.
	r, c := row, col
	for g.HasLetter(r-dr, c-dc) {
		r, c = r-dr, c-dc
	}
	var letters []rune
	var span []Cell
	for g.HasLetter(r, c) {
		letters = append(letters, g.squares[r][c].letter)
		span = append(span, Cell{r, c})
		r, c = r+dr, c+dc
	}
	return string(letters), span
}

// HasAdjacentLetter reports whether any orthogonal neighbor of the position
// holds a letter.
func (g *GameBoard) HasAdjacentLetter(row, col int) bool {
	return g.HasLetter(row-1, col) || g.HasLetter(row+1, col) ||
		g.HasLetter(row, col-1) || g.HasLetter(row, col+1)
}

// Coverage returns the percentage of the board that is filled, used for the
// end-game coverage bonus.
func (g *GameBoard) Coverage() float64 {
	n := g.Dim()
	if n == 0 {
		return 0
	}
	return float64(g.tilesPlayed) / float64(n*n) * 100
}
