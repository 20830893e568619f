// Package game drives an Othello game on top of the engine: the per-step Turn
// value, move validation, the final verdict and the console game loop.
package game

import (
	"fmt"

	"othello-local/engine"
	"othello-local/types"
)

// Turn is the whole game state between two steps. Transitions return a new
// Turn and leave the receiver untouched.
type Turn struct {
	Board      engine.Board
	Active     types.Player
	Passes     int // consecutive passes leading up to this turn
	MoveNumber int
	LastMove   types.Coord
}

// NewTurn returns the starting position with PlayerA to move.
func NewTurn() Turn {
	return Turn{
		Board:    engine.NewBoard(),
		Active:   types.PlayerA,
		LastMove: types.NoCoord,
	}
}

// LegalMoves returns the placements available to the active player.
func (t Turn) LegalMoves() engine.Moves {
	return engine.LegalMoves(t.Board, t.Active)
}

// Pass hands the turn to the opponent. over is true when the previous turn was
// a pass as well, in which case the returned Turn is the receiver.
func (t Turn) Pass() (next Turn, over bool) {
	if t.Passes >= 1 {
		return t, true
	}
	next = t
	next.Passes++
	next.Active = t.Active.Opponent()
	return next, false
}

// Play places the active player's stone on c and flips the stones recorded
// for c in moves. c must be a key of moves; use Validate for user input.
// The pass counter is not carried over.
func (t Turn) Play(c types.Coord, moves engine.Moves) (Turn, error) {
	flips, ok := moves[c]
	if !ok {
		return t, &engine.InvariantError{Op: "play", Msg: fmt.Sprintf("%v is not a legal move", c)}
	}
	board, err := t.Board.Place(t.Active, c)
	if err != nil {
		return t, err
	}
	board, err = board.ApplyFlips(flips)
	if err != nil {
		return t, err
	}
	return Turn{
		Board:      board,
		Active:     t.Active.Opponent(),
		MoveNumber: t.MoveNumber + 1,
		LastMove:   c,
	}, nil
}

// Verdict is the outcome of a finished game.
type Verdict struct {
	Draw   bool
	Winner types.Player
}

// Judge compares the stone counts.
func Judge(s engine.Score) Verdict {
	switch {
	case s.First > s.Second:
		return Verdict{Winner: types.PlayerA}
	case s.Second > s.First:
		return Verdict{Winner: types.PlayerB}
	}
	return Verdict{Draw: true}
}

// Result summarises a finished game.
type Result struct {
	Final   Turn
	Score   engine.Score
	Verdict Verdict
}

// Finish builds the Result for a terminal Turn.
func Finish(t Turn) Result {
	s := t.Board.Count()
	return Result{Final: t, Score: s, Verdict: Judge(s)}
}
