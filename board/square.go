package board

import "fmt"

// A BonusSquare is a one-time scoring bonus attached to a square.
type BonusSquare rune

const (
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// CenterMarker marks the center square. It carries no multiplier; the
	// default layout keeps the center plain so first-turn scores are not
	// inflated.
	CenterMarker BonusSquare = '*'
	// NoBonus is a plain square.
	NoBonus BonusSquare = ' '
)

// LetterMultiplier returns the letter multiplier for this bonus (1 when it
// is not a letter bonus).
func (b BonusSquare) LetterMultiplier() int {
	switch b {
	case Bonus2LS:
		return 2
	case Bonus3LS:
		return 3
	}
	return 1
}

// WordMultiplier returns the word multiplier for this bonus (1 when it is
// not a word bonus).
func (b BonusSquare) WordMultiplier() int {
	switch b {
	case Bonus2WS:
		return 2
	case Bonus3WS:
		return 3
	}
	return 1
}

// A Square is a single square in the grid. It holds a letter, if any
// (0 if empty), the bonus marking, and whether that bonus has already been
// spent by a scored word.
type Square struct {
	letter    rune
	bonus     BonusSquare
	bonusUsed bool
}

func (s Square) String() string {
	return fmt.Sprintf("<(%c) (%s)>", s.letter, string(s.bonus))
}

// Letter returns the letter on this square, or 0 if it is empty.
func (s *Square) Letter() rune {
	return s.letter
}

// Bonus returns the square's bonus marking.
func (s *Square) Bonus() BonusSquare {
	return s.bonus
}

// IsEmpty reports whether the square has no letter.
func (s *Square) IsEmpty() bool {
	return s.letter == 0
}

// BonusAvailable reports whether this square carries a bonus that has not
// yet been consumed by a scored word.
func (s *Square) BonusAvailable() bool {
	return s.bonus != NoBonus && s.bonus != CenterMarker && !s.bonusUsed
}

// DisplayString shows the letter, or the bonus marker for an empty square.
func (s Square) DisplayString() string {
	if s.letter == 0 {
		if s.bonus == NoBonus {
			return "."
		}
		return string(s.bonus)
	}
	return string(s.letter)
}
