package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"othello-local/engine"
	"othello-local/types"
)

// ErrInputClosed is returned when the input ends before the game does.
var ErrInputClosed = errors.New("input closed before the game ended")

// Console plays a hot-seat game over line-based text input and output.
type Console struct {
	Hints bool

	in     *bufio.Reader
	out    io.Writer
	glyphs engine.Glyphs
	log    *zap.SugaredLogger
}

// NewConsole creates a console game reading moves from in and printing to out.
func NewConsole(in io.Reader, out io.Writer, glyphs engine.Glyphs, log *zap.SugaredLogger) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		glyphs: glyphs,
		log:    log,
	}
}

// AskHints asks whether legal moves should be marked on the board. Only an
// answer of exactly "y" enables them.
func (c *Console) AskHints() (bool, error) {
	answer, err := c.prompt("Do you want hints(+)? (y/n): ")
	if err != nil {
		return false, err
	}
	c.Hints = strings.TrimSpace(answer) == "y"
	return c.Hints, nil
}

// Run plays a game from the starting position.
func (c *Console) Run() (Result, error) {
	return c.RunFrom(NewTurn())
}

// RunFrom plays until two passes in a row, then prints the final board and
// the verdict. Engine invariant failures are returned unhandled.
func (c *Console) RunFrom(t Turn) (Result, error) {
	log := c.log.With("game", uuid.NewString())
	log.Infow("game started", "hints", c.Hints, "move", t.MoveNumber)

	for {
		moves := t.LegalMoves()
		if len(moves) == 0 {
			next, over := t.Pass()
			if over {
				break
			}
			glyph, err := c.glyphs.Player(t.Active)
			if err != nil {
				return Result{}, err
			}
			log.Debugw("pass", "player", t.Active.String(), "move", t.MoveNumber)
			fmt.Fprintf(c.out, "%c has no legal moves. Passing.\n", glyph)
			t = next
			continue
		}

		var highlighted engine.Moves
		if c.Hints {
			highlighted = moves
		}
		board, err := engine.Render(t.Board, c.glyphs, highlighted)
		if err != nil {
			return Result{}, err
		}
		glyph, err := c.glyphs.Player(t.Active)
		if err != nil {
			return Result{}, err
		}
		fmt.Fprintln(c.out, board)
		fmt.Fprintf(c.out, "%c's turn!\n", glyph)

		at, err := c.readMove(t.Board, moves, log)
		if err != nil {
			return Result{}, err
		}
		next, err := t.Play(at, moves)
		if err != nil {
			return Result{}, fmt.Errorf("move %d at %v: %w", t.MoveNumber+1, at, err)
		}
		log.Debugw("move",
			"player", t.Active.String(),
			"row", at.Row,
			"col", at.Col,
			"flips", len(moves[at]),
			"move", next.MoveNumber,
		)
		t = next
	}

	res := Finish(t)
	if err := c.printResult(res); err != nil {
		return Result{}, err
	}
	log.Infow("game over",
		"first", res.Score.First,
		"second", res.Score.Second,
		"draw", res.Verdict.Draw,
		"moves", t.MoveNumber,
	)
	return res, nil
}

// readMove prompts for a row and a column until they form a legal move.
func (c *Console) readMove(b engine.Board, moves engine.Moves, log *zap.SugaredLogger) (types.Coord, error) {
	for {
		rowText, err := c.prompt("i: ")
		if err != nil {
			return types.NoCoord, err
		}
		row, err := ParseIndex(rowText)
		if err != nil {
			c.reject(err, log)
			continue
		}
		colText, err := c.prompt("j: ")
		if err != nil {
			return types.NoCoord, err
		}
		col, err := ParseIndex(colText)
		if err != nil {
			c.reject(err, log)
			continue
		}

		at := types.Coord{Row: row, Col: col}
		if err := Check(at, b, moves); err != nil {
			c.reject(err, log)
			continue
		}
		return at, nil
	}
}

func (c *Console) reject(err error, log *zap.SugaredLogger) {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		log.Debugw("input rejected", "kind", int(inputErr.Kind))
	}
	fmt.Fprintln(c.out, err.Error())
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) printResult(res Result) error {
	board, err := engine.Render(res.Final.Board, c.glyphs, nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "---- GAME OVER ----")
	fmt.Fprintln(c.out, board)
	fmt.Fprintf(c.out, "%c: %d\n", c.glyphs.First, res.Score.First)
	fmt.Fprintf(c.out, "%c: %d\n", c.glyphs.Second, res.Score.Second)

	if res.Verdict.Draw {
		fmt.Fprintln(c.out, "It's a draw!")
		return nil
	}
	winner, err := c.glyphs.Player(res.Verdict.Winner)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%c wins!\n", winner)
	return nil
}
