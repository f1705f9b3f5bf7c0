package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/mosaicgames/wordmosaic/board"
)

func TestBoardCoords(t *testing.T) {
	is := is.New(t)

	is.Equal(ToBoardCoords(7, 7, false), "8H")
	is.Equal(ToBoardCoords(7, 7, true), "H8")
	is.Equal(ToBoardCoords(0, 0, false), "1A")
	is.Equal(ToBoardCoords(14, 14, true), "O15")

	row, col, vertical, err := FromBoardCoords("8H")
	is.NoErr(err)
	is.Equal(row, 7)
	is.Equal(col, 7)
	is.True(!vertical)

	row, col, vertical, err = FromBoardCoords("h8")
	is.NoErr(err)
	is.Equal(row, 7)
	is.Equal(col, 7)
	is.True(vertical)

	_, _, _, err = FromBoardCoords("8H8")
	is.True(err != nil)
	_, _, _, err = FromBoardCoords("")
	is.True(err != nil)
}

func TestNewPlacement(t *testing.T) {
	is := is.New(t)

	p := NewPlacement(7, 5, board.HorizontalDirection, "cat")
	is.Equal(p.Word(), "CAT")
	is.Equal(len(p.Letters), 3)
	is.Equal(p.Letters[2], PlacedLetter{Letter: 'T', Row: 7, Col: 7})

	p = NewPlacement(7, 6, board.VerticalDirection, "ARC")
	is.Equal(p.Letters[1], PlacedLetter{Letter: 'R', Row: 8, Col: 6})
	is.Equal(p.ShortDescription(), "H8 ARC")
}

func TestParsePlacement(t *testing.T) {
	is := is.New(t)

	p, err := ParsePlacement("8F", "cats")
	is.NoErr(err)
	is.Equal(p.Direction, board.HorizontalDirection)
	is.Equal(p.Letters[0], PlacedLetter{Letter: 'C', Row: 7, Col: 5})

	_, err = ParsePlacement("8F", "c4ts")
	is.True(err != nil)
	_, err = ParsePlacement("8F", " ")
	is.True(err != nil)
	_, err = ParsePlacement("woof", "cats")
	is.True(err != nil)
}
