package board

import (
	"fmt"
	"os"
	"strings"
)

// StandardMosaicBoard is the default 15x15 layout: a symmetric pattern of
// word and letter bonuses with a plain center square. The layout is a
// configuration concern; an alternate one can be loaded from a file and fed
// to MakeBoard directly.
var StandardMosaicBoard = []string{
	`=  '   =   '  =`,
	` -   "   "   - `,
	`  -   ' '   -  `,
	`'  -   '   -  '`,
	`    -     -    `,
	` "   "   "   " `,
	`  '   ' '   '  `,
	`=  '   *   '  =`,
	`  '   ' '   '  `,
	` "   "   "   " `,
	`    -     -    `,
	`'  -   '   -  '`,
	`  -   ' '   -  `,
	` -   "   "   - `,
	`=  '   =   '  =`,
}

// LoadLayout reads a board layout from a text file, one row per line, one
// bonus marker per square. The grid must be square.
func LoadLayout(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if len(line) != len(lines) {
			return nil, fmt.Errorf("layout %s: row %d has %d squares, want %d",
				path, i+1, len(line), len(lines))
		}
		for _, c := range line {
			switch BonusSquare(c) {
			case Bonus3WS, Bonus2WS, Bonus3LS, Bonus2LS, CenterMarker, NoBonus:
			default:
				return nil, fmt.Errorf("layout %s: unknown marker %q in row %d",
					path, c, i+1)
			}
		}
		lines[i] = line
	}
	return lines, nil
}
