// Package tiles holds the letter distribution, the letter bag, and the
// player's rack. Letters are plain uppercase runes throughout; there are no
// blank tiles in this game.
package tiles

// LetterDistribution encodes the tile distribution and point values for
// the relevant game.
type LetterDistribution struct {
	Distribution map[rune]uint8
	PointValues  map[rune]uint8
	numLetters   int
}

// EnglishLetterDistribution is the classic English letter set.
func EnglishLetterDistribution() *LetterDistribution {
	dist := map[rune]uint8{
		'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3, 'H': 2,
		'I': 9, 'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8, 'P': 2,
		'Q': 1, 'R': 6, 'S': 4, 'T': 6, 'U': 4, 'V': 2, 'W': 2, 'X': 1,
		'Y': 2, 'Z': 1,
	}
	ptValues := map[rune]uint8{
		'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4,
		'I': 1, 'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3,
		'Q': 10, 'R': 1, 'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8,
		'Y': 4, 'Z': 10,
	}
	numLetters := 0
	for _, ct := range dist {
		numLetters += int(ct)
	}
	return &LetterDistribution{dist, ptValues, numLetters}
}

// NamedLetterDistribution returns the letter distribution with the given
// name. Only "English" exists right now.
func NamedLetterDistribution(name string) *LetterDistribution {
	switch name {
	case "", "English", "english":
		return EnglishLetterDistribution()
	}
	return nil
}

// Score returns the point value of a letter, or 0 if the letter is not in
// the distribution.
func (ld *LetterDistribution) Score(letter rune) int {
	return int(ld.PointValues[letter])
}

// NumLetters is the total number of tiles in a full bag.
func (ld *LetterDistribution) NumLetters() int {
	return ld.numLetters
}

// MakeBag returns a full bag of tiles from this distribution.
func (ld *LetterDistribution) MakeBag() *Bag {
	return newBag(ld)
}
