package board

import (
	"fmt"
	"strings"
)

// ToDisplayText turns the current board into a human-readable string,
// for the shell.
func (g *GameBoard) ToDisplayText() string {
	var str string
	n := g.Dim()
	row := "   "
	for i := 0; i < n; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	for i := 0; i < n; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < n; j++ {
			row = row + g.squares[i][j].DisplayString() + " "
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	return "\n" + str
}

// SetRow sets a whole row of letters from a string, for tests and board
// setup. Spaces leave squares untouched.
func (g *GameBoard) SetRow(row int, letters string) {
	for col, c := range letters {
		if c == ' ' || !g.PosExists(row, col) {
			continue
		}
		sq := &g.squares[row][col]
		if sq.letter == 0 {
			g.tilesPlayed++
		}
		sq.letter = c
	}
}
