package tiles

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// DefaultRackCapacity is how many letters a full rack holds.
const DefaultRackCapacity = 20

// ErrInsufficientLetters is returned when a removal asks for letters the
// rack does not hold.
var ErrInsufficientLetters = errors.New("rack does not hold the requested letters")

// Rack is the player's current held letters, as a bounded multiset.
type Rack struct {
	letters  map[rune]uint8
	count    int
	capacity int
}

// NewRack creates an empty rack with the given capacity. A capacity of 0
// means DefaultRackCapacity.
func NewRack(capacity int) *Rack {
	if capacity <= 0 {
		capacity = DefaultRackCapacity
	}
	return &Rack{letters: make(map[rune]uint8), capacity: capacity}
}

// RackFromString creates a rack holding exactly the given letters,
// mostly useful in tests.
func RackFromString(letters string, capacity int) *Rack {
	r := NewRack(capacity)
	r.Add([]rune(strings.ToUpper(letters)))
	return r
}

// Copy returns a deep copy of this rack.
func (r *Rack) Copy() *Rack {
	n := NewRack(r.capacity)
	for letter, ct := range r.letters {
		n.letters[letter] = ct
	}
	n.count = r.count
	return n
}

// Add puts letters on the rack; turn rejection hands tentatively used
// letters back through here. Letters are normalized to uppercase.
func (r *Rack) Add(letters []rune) {
	for _, letter := range letters {
		r.letters[unicode.ToUpper(letter)]++
		r.count++
	}
}

// Remove takes the given letters off the rack. It is case-insensitive and
// all-or-nothing: if any letter is missing, ErrInsufficientLetters is
// returned and the rack is unchanged.
func (r *Rack) Remove(letters []rune) error {
	needed := make(map[rune]uint8)
	for _, letter := range letters {
		needed[unicode.ToUpper(letter)]++
	}
	for letter, ct := range needed {
		if r.letters[letter] < ct {
			return fmt.Errorf("%w: missing %c", ErrInsufficientLetters, letter)
		}
	}
	for letter, ct := range needed {
		r.letters[letter] -= ct
		if r.letters[letter] == 0 {
			delete(r.letters, letter)
		}
		r.count -= int(ct)
	}
	return nil
}

// Has reports whether the rack holds all the given letters at once.
func (r *Rack) Has(letters []rune) bool {
	needed := make(map[rune]uint8)
	for _, letter := range letters {
		needed[unicode.ToUpper(letter)]++
	}
	for letter, ct := range needed {
		if r.letters[letter] < ct {
			return false
		}
	}
	return true
}

// Fill replenishes the rack to capacity from the bag. It returns the drawn
// letters; fewer than the missing count when the bag runs dry.
func (r *Rack) Fill(bag *Bag) []rune {
	drawn := bag.DrawAtMost(r.capacity - r.count)
	r.Add(drawn)
	return drawn
}

// Letters returns the rack contents sorted alphabetically.
func (r *Rack) Letters() []rune {
	out := make([]rune, 0, r.count)
	for letter, ct := range r.letters {
		for i := uint8(0); i < ct; i++ {
			out = append(out, letter)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	return string(r.Letters())
}

// Count returns the number of letters on the rack.
func (r *Rack) Count() int {
	return r.count
}

// Capacity returns the rack's full size.
func (r *Rack) Capacity() int {
	return r.capacity
}

// Empty reports whether the rack holds no letters.
func (r *Rack) Empty() bool {
	return r.count == 0
}
