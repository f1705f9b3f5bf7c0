// Package move describes a proposed placement: an ordered sequence of
// letters and target cells for a single turn, plus the declared orientation.
package move

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/mosaicgames/wordmosaic/board"
)

// PlacedLetter is one (letter, cell) pair in a placement request.
type PlacedLetter struct {
	Letter rune
	Row    int
	Col    int
}

// Placement is a proposed word placement for the current turn. Cells are
// expected to be contiguous and collinear along the declared orientation;
// the validator re-checks this for placements built by hand.
type Placement struct {
	Letters   []PlacedLetter
	Direction board.Direction
}

// NewPlacement builds a placement from a start cell, an orientation, and
// the word as the player spells it (covering any existing tiles with the
// identical letter). Letters are normalized to uppercase.
func NewPlacement(row, col int, dir board.Direction, word string) *Placement {
	p := &Placement{Direction: dir}
	dr, dc := 0, 1
	if dir == board.VerticalDirection {
		dr, dc = 1, 0
	}
	for i, c := range strings.ToUpper(word) {
		p.Letters = append(p.Letters, PlacedLetter{
			Letter: c,
			Row:    row + i*dr,
			Col:    col + i*dc,
		})
	}
	return p
}

// Word returns the letters of the placement in order.
func (p *Placement) Word() string {
	letters := make([]rune, len(p.Letters))
	for i, pl := range p.Letters {
		letters[i] = pl.Letter
	}
	return string(letters)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (p *Placement) ShortDescription() string {
	if len(p.Letters) == 0 {
		return "(empty placement)"
	}
	first := p.Letters[0]
	coords := ToBoardCoords(first.Row, first.Col,
		p.Direction == board.VerticalDirection)
	return fmt.Sprintf("%v %v", coords, p.Word())
}

var reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
var reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)

// ToBoardCoords converts a row, col, and orientation to a coordinate like
// 5F (horizontal) or G4 (vertical).
func ToBoardCoords(row, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// FromBoardCoords does the inverse operation of ToBoardCoords. The letter
// coming first means vertical.
func FromBoardCoords(c string) (row, col int, vertical bool, err error) {
	c = strings.ToUpper(strings.TrimSpace(c))
	if m := reVertical.FindStringSubmatch(c); len(m) == 3 {
		row, _ = strconv.Atoi(m[2])
		return row - 1, int(m[1][0] - 'A'), true, nil
	}
	if m := reHorizontal.FindStringSubmatch(c); len(m) == 3 {
		row, _ = strconv.Atoi(m[1])
		return row - 1, int(m[2][0] - 'A'), false, nil
	}
	return 0, 0, false, errors.New("coordinates must look like 8H or H8")
}

// ParsePlacement turns a coordinate string and a word into a placement:
// "8H WORD" is horizontal starting at row 8 column H, "H8 WORD" vertical.
func ParsePlacement(coords, word string) (*Placement, error) {
	row, col, vertical, err := FromBoardCoords(coords)
	if err != nil {
		return nil, err
	}
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, errors.New("no word given")
	}
	for _, c := range word {
		if !unicode.IsLetter(c) {
			return nil, fmt.Errorf("word contains a non-letter: %q", c)
		}
	}
	dir := board.HorizontalDirection
	if vertical {
		dir = board.VerticalDirection
	}
	return NewPlacement(row, col, dir, word), nil
}
