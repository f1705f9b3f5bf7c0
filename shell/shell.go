// Package shell is the interactive front end: it renders the grid, rack,
// and score, and turns typed commands into placement submissions.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/mosaicgames/wordmosaic/dictionary"
	"github.com/mosaicgames/wordmosaic/game"
	"github.com/mosaicgames/wordmosaic/move"
	"github.com/mosaicgames/wordmosaic/scoring"
)

// Controller runs the interactive loop against one session.
type Controller struct {
	l       *readline.Instance
	session *game.Session
	gateway *dictionary.Gateway
}

// NewController builds a shell around a session and its gateway.
func NewController(session *game.Session, gateway *dictionary.Gateway) (*Controller, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            "\033[32mmosaic>\033[0m ",
		HistoryFile:       "/tmp/wordmosaic_readline.tmp",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, err
	}
	return &Controller{l: l, session: session, gateway: gateway}, nil
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "place <coords> <word> - place a word; 8H is horizontal from row 8 col H,\n")
	io.WriteString(w, "    H8 is vertical. Spell through tiles already on the board.\n")
	io.WriteString(w, "board - show the grid\n")
	io.WriteString(w, "rack - show your letters\n")
	io.WriteString(w, "bag - show how many tiles remain\n")
	io.WriteString(w, "score - show the cumulative score\n")
	io.WriteString(w, "history - show committed turns\n")
	io.WriteString(w, "exchange <letters> - swap rack letters for fresh ones\n")
	io.WriteString(w, "undo - revert the last committed turn\n")
	io.WriteString(w, "define <word> - look a word up\n")
	io.WriteString(w, "summary - show the end-game accounting\n")
	io.WriteString(w, "exit\n")
}

// Loop reads and executes commands until exit or EOF.
func (c *Controller) Loop() {
	defer c.l.Close()
	c.printf("%s", c.session.BoardSnapshot().ToDisplayText())
	c.printf("rack: %s\n", string(c.session.RackLetters()))
	for {
		line, err := c.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := strings.ToLower(fields[0])
		args := fields[1:]
		if cmd == "exit" || cmd == "bye" || cmd == "quit" {
			break
		}
		if err := c.execute(cmd, args); err != nil {
			c.printf("error: %v\n", err)
		}
		if c.session.State() == game.GameOver {
			c.printf("no more tiles; the game is over.\n")
			c.showSummary()
			break
		}
	}
}

func (c *Controller) execute(cmd string, args []string) error {
	switch cmd {
	case "help":
		usage(c.l.Stderr())
	case "board":
		c.printf("%s", c.session.BoardSnapshot().ToDisplayText())
	case "rack":
		c.printf("rack: %s\n", string(c.session.RackLetters()))
	case "bag":
		c.printf("%d tiles remaining\n", c.session.TilesRemaining())
	case "score":
		c.printf("score: %d\n", c.session.TotalScore())
	case "history":
		c.showHistory()
	case "place":
		if len(args) != 2 {
			return errors.New("usage: place <coords> <word>")
		}
		return c.place(args[0], args[1])
	case "exchange":
		if len(args) != 1 {
			return errors.New("usage: exchange <letters>")
		}
		if err := c.session.Exchange([]rune(strings.ToUpper(args[0]))); err != nil {
			return err
		}
		c.printf("rack: %s\n", string(c.session.RackLetters()))
	case "undo":
		if err := c.session.Undo(); err != nil {
			return err
		}
		c.printf("undone. score: %d\n", c.session.TotalScore())
		c.printf("%s", c.session.BoardSnapshot().ToDisplayText())
	case "define":
		if len(args) != 1 {
			return errors.New("usage: define <word>")
		}
		return c.define(args[0])
	case "summary":
		c.showSummary()
	default:
		return fmt.Errorf("unknown command %q; try help", cmd)
	}
	return nil
}

func (c *Controller) place(coords, word string) error {
	p, err := move.ParsePlacement(coords, word)
	if err != nil {
		return err
	}
	result, err := c.session.Submit(context.Background(), p)
	if err != nil {
		return err
	}
	if !result.Accepted {
		if errors.Is(result.Reason, dictionary.ErrLookupUnavailable) {
			c.printf("the dictionary is unreachable; your letters are back on the rack. Try again.\n")
			return nil
		}
		c.printf("rejected: %v\n", result.Reason)
		return nil
	}
	for _, w := range result.Words {
		c.printf("  %s: %d\n", w.Text, w.Score)
	}
	c.printf("turn score: %d, total: %d\n", result.TurnScore, result.TotalScore)
	c.printf("%s", c.session.BoardSnapshot().ToDisplayText())
	c.printf("rack: %s\n", string(c.session.RackLetters()))
	return nil
}

func (c *Controller) define(word string) error {
	entry, err := c.gateway.Lookup(context.Background(), word)
	if err != nil {
		return err
	}
	if !entry.Valid {
		c.printf("%s is not a playable word\n", strings.ToUpper(word))
		return nil
	}
	if entry.Definition == "" {
		c.printf("%s is valid; no definition available\n", entry.Word)
		return nil
	}
	c.printf("%s: %s\n", entry.Word, entry.Definition)
	return nil
}

func (c *Controller) showHistory() {
	for i, rec := range c.session.History() {
		words := lo.Map(rec.Words, func(w scoring.WordScore, _ int) string {
			return fmt.Sprintf("%s(%d)", w.Text, w.Score)
		})
		c.printf("%2d. %-12s %-40s %+d\n", i+1,
			rec.Placement.ShortDescription(), strings.Join(words, " "),
			rec.ScoreDelta)
	}
}

func (c *Controller) showSummary() {
	summary := c.session.FinalSummary()
	c.printf("turns:            %d\n", summary.TurnsPlayed)
	c.printf("words:            %s\n", strings.Join(summary.WordsPlayed, " "))
	c.printf("coverage:         %.1f%%\n", summary.Coverage)
	c.printf("score:            %d\n", summary.Score)
	c.printf("coverage bonus:   %d\n", summary.CoverageBonus)
	c.printf("efficiency bonus: %d\n", summary.EfficiencyBonus)
	c.printf("final score:      %d\n", summary.FinalScore)
}

func (c *Controller) printf(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(c.l.Stdout(), format, args...); err != nil {
		log.Error().Err(err).Msg("shell write failed")
	}
}
