package game

import (
	"github.com/mosaicgames/wordmosaic/move"
	"github.com/mosaicgames/wordmosaic/placement"
	"github.com/mosaicgames/wordmosaic/scoring"
)

// TurnRecord is one committed turn: the request, what it formed, what it
// scored, and what was drawn afterwards. Records are immutable once
// appended; undo replays history rather than editing it.
type TurnRecord struct {
	Placement  *move.Placement
	Result     *placement.Result
	Words      []scoring.WordScore
	ScoreDelta int
	// DrawnAfter holds the letters that refilled the rack after this
	// turn committed; undo returns them to the bag.
	DrawnAfter []rune
}

// TurnResult is the structured answer to a submission, for the
// presentation layer.
type TurnResult struct {
	Accepted bool
	// Reason explains a rejection; nil when accepted. The error value
	// distinguishes geometric rejections, missing rack letters, invalid
	// words, and dictionary outages.
	Reason     error
	Words      []scoring.WordScore
	TurnScore  int
	TotalScore int
	GameOver   bool
}

// Summary is the end-of-game accounting.
type Summary struct {
	Score           int
	CoverageBonus   int
	EfficiencyBonus int
	FinalScore      int
	TurnsPlayed     int
	WordsPlayed     []string
	Coverage        float64
}
