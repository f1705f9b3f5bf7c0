// Package game encapsulates a Word Mosaic session: it orchestrates turns
// through validation, dictionary checks, and scoring, commits or rejects
// them atomically, and tracks history for undo and end-game statistics.
package game

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/mosaicgames/wordmosaic/board"
	"github.com/mosaicgames/wordmosaic/config"
	"github.com/mosaicgames/wordmosaic/dictionary"
	"github.com/mosaicgames/wordmosaic/move"
	"github.com/mosaicgames/wordmosaic/placement"
	"github.com/mosaicgames/wordmosaic/scoring"
	"github.com/mosaicgames/wordmosaic/tiles"
)

// State is the session's turn-cycle state.
type State int

const (
	// AwaitingPlacement means the session will accept a submission.
	AwaitingPlacement State = iota
	// Validating is the transient state while a submission is processed.
	Validating
	// GameOver is terminal: the rack is empty and the bag is exhausted.
	GameOver
)

var (
	// ErrGameOver is returned for submissions after the session ended.
	ErrGameOver = errors.New("the game is over")
	// ErrNotAWord is the lexical rejection: the dictionary does not
	// accept a formed word. Distinct from dictionary.ErrLookupUnavailable.
	ErrNotAWord = errors.New("not a word")
	// ErrNothingToUndo is returned by Undo on an empty history.
	ErrNothingToUndo = errors.New("no turns to undo")
	// ErrBagTooSmall is returned when an exchange asks for more tiles
	// than the bag holds.
	ErrBagTooSmall = errors.New("not enough tiles left to exchange")
)

// Session owns all mutable game state. It is not safe for concurrent use;
// play is strictly turn-based. The only internally concurrent work is the
// read-only dictionary lookups within a single submission.
type Session struct {
	cfg     *config.Config
	layout  []string
	board   *board.GameBoard
	rack    *tiles.Rack
	bag     *tiles.Bag
	dist    *tiles.LetterDistribution
	gateway dictionary.Lookup
	scorer  *scoring.Engine

	history    []*TurnRecord
	totalScore int
	state      State
}

// NewSession starts a fresh session: full bag, replenished rack, empty
// board in the standard layout.
func NewSession(cfg *config.Config, gateway dictionary.Lookup) (*Session, error) {
	dist := tiles.NamedLetterDistribution(cfg.LetterDistribution)
	if dist == nil {
		return nil, fmt.Errorf("unknown letter distribution %q", cfg.LetterDistribution)
	}
	layout := board.StandardMosaicBoard
	if cfg.BoardLayoutPath != "" {
		var err error
		if layout, err = board.LoadLayout(cfg.BoardLayoutPath); err != nil {
			return nil, err
		}
	}
	s := &Session{
		cfg:     cfg,
		layout:  layout,
		board:   board.MakeBoard(layout),
		bag:     dist.MakeBag(),
		rack:    tiles.NewRack(cfg.RackCapacity),
		dist:    dist,
		gateway: gateway,
		scorer:  scoring.NewEngine(dist, cfg.MosaicBonus),
	}
	s.rack.Fill(s.bag)
	log.Debug().Int("rack", s.rack.Count()).Int("bag", s.bag.TilesRemaining()).
		Msg("session started")
	return s, nil
}

// Submit processes one placement request. It is all-or-nothing: a rejected
// turn leaves the board, rack, and score exactly as they were, and the
// result's Reason says why. Dictionary lookups for the formed words run
// concurrently; the first invalid word or outage cancels the rest.
func (s *Session) Submit(ctx context.Context, p *move.Placement) (*TurnResult, error) {
	if s.state == GameOver {
		return nil, ErrGameOver
	}
	s.state = Validating
	defer func() {
		if s.state == Validating {
			s.state = AwaitingPlacement
		}
	}()

	// Tentatively take the newly placed letters off the rack. Letters
	// that read through existing tiles cost nothing.
	newLetters := s.newlyPlacedLetters(p)
	if err := s.rack.Remove(newLetters); err != nil {
		return s.reject(err), nil
	}

	res, err := placement.Validate(s.board, p)
	if err != nil {
		s.rack.Add(newLetters)
		return s.reject(err), nil
	}

	if err := s.lookupWords(ctx, res.Words); err != nil {
		s.rack.Add(newLetters)
		return s.reject(err), nil
	}

	// Commit. All words validated; mutate state in one pass.
	if err := s.board.PlaceTiles(res.NewTiles); err != nil {
		// Validation already conflict-checked; this cannot happen in a
		// single-threaded session.
		s.rack.Add(newLetters)
		return nil, err
	}
	ts := s.scorer.ScoreTurn(s.board, res, true)
	s.totalScore += ts.Total
	drawn := s.rack.Fill(s.bag)
	s.history = append(s.history, &TurnRecord{
		Placement:  p,
		Result:     res,
		Words:      ts.Words,
		ScoreDelta: ts.Total,
		DrawnAfter: drawn,
	})

	gameOver := s.rack.Empty() && s.bag.TilesRemaining() == 0
	if gameOver {
		s.state = GameOver
	} else {
		s.state = AwaitingPlacement
	}
	log.Info().Str("play", p.ShortDescription()).Int("score", ts.Total).
		Int("total", s.totalScore).Msg("turn committed")
	return &TurnResult{
		Accepted:   true,
		Words:      ts.Words,
		TurnScore:  ts.Total,
		TotalScore: s.totalScore,
		GameOver:   gameOver,
	}, nil
}

// SubmitWord is the presentation-boundary convenience: a start cell, an
// orientation, and the word as spelled, covering existing tiles.
func (s *Session) SubmitWord(ctx context.Context, row, col int, vertical bool, word string) (*TurnResult, error) {
	dir := board.HorizontalDirection
	if vertical {
		dir = board.VerticalDirection
	}
	return s.Submit(ctx, move.NewPlacement(row, col, dir, word))
}

func (s *Session) reject(reason error) *TurnResult {
	log.Debug().Err(reason).Msg("turn rejected")
	return &TurnResult{
		Accepted:   false,
		Reason:     reason,
		TotalScore: s.totalScore,
	}
}

// newlyPlacedLetters returns the letters of the request whose target cells
// are currently empty.
func (s *Session) newlyPlacedLetters(p *move.Placement) []rune {
	var letters []rune
	for _, pl := range p.Letters {
		if !s.board.PosExists(pl.Row, pl.Col) || !s.board.HasLetter(pl.Row, pl.Col) {
			letters = append(letters, pl.Letter)
		}
	}
	return letters
}

// lookupWords checks every formed word against the dictionary gateway,
// concurrently. The lookups are read-only; their results are joined before
// any state mutation. The first failure cancels the remaining lookups.
func (s *Session) lookupWords(ctx context.Context, words []placement.FormedWord) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, w := range words {
		word := w.Text
		g.Go(func() error {
			entry, err := s.gateway.Lookup(gctx, word)
			if err != nil {
				return err
			}
			if !entry.Valid {
				return fmt.Errorf("%w: %s", ErrNotAWord, word)
			}
			return nil
		})
	}
	return g.Wait()
}

// Exchange swaps rack letters for fresh draws from the bag. It is only
// allowed while the bag holds at least as many tiles as are exchanged.
func (s *Session) Exchange(letters []rune) error {
	if s.state == GameOver {
		return ErrGameOver
	}
	if s.bag.TilesRemaining() < len(letters) {
		return ErrBagTooSmall
	}
	if err := s.rack.Remove(letters); err != nil {
		return err
	}
	s.rack.Add(s.bag.Exchange(letters))
	return nil
}

// Undo reverts the last committed turn by rebuilding the board from
// history minus the final record and replaying each surviving turn's
// scoring, which restores bonus consumption deterministically. The undone
// turn's tiles return to the rack and its refill draw returns to the bag.
func (s *Session) Undo() error {
	n := len(s.history)
	if n == 0 {
		return ErrNothingToUndo
	}
	last := s.history[n-1]

	// The refill draw is still on the rack; nothing after the undone
	// turn has touched it.
	if err := s.rack.Remove(last.DrawnAfter); err != nil {
		return fmt.Errorf("undo: refill letters missing from rack: %w", err)
	}
	s.bag.PutBack(last.DrawnAfter)
	for _, tp := range last.Result.NewTiles {
		s.rack.Add([]rune{tp.Letter})
	}

	replayed := board.MakeBoard(s.layout)
	total := 0
	for _, rec := range s.history[:n-1] {
		if err := replayed.PlaceTiles(rec.Result.NewTiles); err != nil {
			return fmt.Errorf("undo: history replay failed: %w", err)
		}
		ts := s.scorer.ScoreTurn(replayed, rec.Result, true)
		total += ts.Total
	}
	s.board = replayed
	s.totalScore = total
	s.history = s.history[:n-1]
	s.state = AwaitingPlacement
	log.Info().Str("play", last.Placement.ShortDescription()).Msg("turn undone")
	return nil
}

// FinalSummary computes the end-game accounting: cumulative score plus the
// configured coverage and efficiency bonuses.
func (s *Session) FinalSummary() *Summary {
	coverage := s.board.Coverage()
	coverageBonus := int(math.Round(coverage * s.cfg.CoverageBonusPerPercent))
	efficiencyBonus := 0
	if n := len(s.history); n > 0 {
		avg := float64(s.totalScore) / float64(n)
		if avg >= s.cfg.EfficiencyThreshold {
			efficiencyBonus = s.cfg.EfficiencyBonus
		}
	}
	words := lo.FlatMap(s.history, func(rec *TurnRecord, _ int) []string {
		return lo.Map(rec.Words, func(w scoring.WordScore, _ int) string {
			return w.Text
		})
	})
	return &Summary{
		Score:           s.totalScore,
		CoverageBonus:   coverageBonus,
		EfficiencyBonus: efficiencyBonus,
		FinalScore:      s.totalScore + coverageBonus + efficiencyBonus,
		TurnsPlayed:     len(s.history),
		WordsPlayed:     words,
		Coverage:        coverage,
	}
}

// Read-only snapshot queries for rendering.

// BoardSnapshot returns a deep copy of the current grid.
func (s *Session) BoardSnapshot() *board.GameBoard {
	return s.board.Copy()
}

// RackLetters returns the rack contents, sorted.
func (s *Session) RackLetters() []rune {
	return s.rack.Letters()
}

// TotalScore returns the cumulative committed score.
func (s *Session) TotalScore() int {
	return s.totalScore
}

// TilesRemaining returns the number of tiles left in the bag.
func (s *Session) TilesRemaining() int {
	return s.bag.TilesRemaining()
}

// History returns the committed turn records, oldest first. Callers must
// treat the records as immutable.
func (s *Session) History() []*TurnRecord {
	out := make([]*TurnRecord, len(s.history))
	copy(out, s.history)
	return out
}

// State returns the session's current state.
func (s *Session) State() State {
	return s.state
}
