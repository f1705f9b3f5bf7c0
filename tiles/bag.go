package tiles

import (
	"sort"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// A Bag is the finite, frequency-weighted source of letters for a session.
// Draws are uniform over the remaining tiles, so letter frequency follows
// the distribution counts. Exhaustion is not an error; draws simply return
// fewer letters.
type Bag struct {
	numTiles      int
	uniqueLetters []rune
	tileMap       map[rune]uint8
	distribution  *LetterDistribution
}

func newBag(ld *LetterDistribution) *Bag {
	tileMap := make(map[rune]uint8)
	uniques := make([]rune, 0, len(ld.Distribution))
	numTiles := 0
	for letter, ct := range ld.Distribution {
		tileMap[letter] = ct
		uniques = append(uniques, letter)
		numTiles += int(ct)
	}
	// Keep the unique letters sorted so that draws at a given random index
	// are reproducible given the same random stream.
	sort.Slice(uniques, func(i, j int) bool { return uniques[i] < uniques[j] })
	return &Bag{
		numTiles:      numTiles,
		uniqueLetters: uniques,
		tileMap:       tileMap,
		distribution:  ld,
	}
}

func (b *Bag) drawTileAt(idx int) rune {
	// Count up through the remaining tiles to find the letter "at" idx.
	counter := 0
	for _, letter := range b.uniqueLetters {
		counter += int(b.tileMap[letter])
		if counter > idx {
			b.tileMap[letter]--
			b.numTiles--
			return letter
		}
	}
	log.Fatal().Int("idx", idx).Int("numTiles", b.numTiles).
		Msg("bag indexing broke an invariant")
	return 0
}

// DrawAtMost draws at most n tiles from the bag. It can draw fewer if there
// are fewer tiles than n, and even no tiles at all.
func (b *Bag) DrawAtMost(n int) []rune {
	if n > b.numTiles {
		n = b.numTiles
	}
	drawn := make([]rune, n)
	for i := 0; i < n; i++ {
		drawn[i] = b.drawTileAt(frand.Intn(b.numTiles))
	}
	return drawn
}

// PutBack returns letters to the bag.
func (b *Bag) PutBack(letters []rune) {
	for _, letter := range letters {
		b.tileMap[letter]++
	}
	b.numTiles += len(letters)
}

// Exchange swaps the given letters for fresh draws. The letters go back in
// the bag only after the new ones are drawn, so an exchange can never hand
// back the same physical tiles.
func (b *Bag) Exchange(letters []rune) []rune {
	drawn := b.DrawAtMost(len(letters))
	b.PutBack(letters)
	return drawn
}

// TilesRemaining returns the number of tiles left in the bag.
func (b *Bag) TilesRemaining() int {
	return b.numTiles
}
