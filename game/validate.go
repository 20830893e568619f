package game

import (
	"strconv"
	"strings"

	"othello-local/engine"
	"othello-local/types"
)

// InputErrorKind classifies a rejected move.
type InputErrorKind int

const (
	NotInteger InputErrorKind = iota
	OutsideBoard
	Occupied
	NotLegal
)

// InputError is a recoverable problem with a move entered by the user.
type InputError struct {
	Kind InputErrorKind
}

func (e *InputError) Error() string {
	switch e.Kind {
	case NotInteger:
		return "Invalid input. Please try again."
	case OutsideBoard:
		return "This cell is not inside the board. Please try again."
	case Occupied:
		return "This cell is not open. Please try again."
	case NotLegal:
		return "That doesn't flip any of the stones. Please try again."
	}
	return "Unknown input error. Please try again."
}

// ParseIndex reads a single row or column number.
func ParseIndex(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &InputError{Kind: NotInteger}
	}
	return n, nil
}

// Validate turns raw row and column text into a legal placement.
func Validate(rowText, colText string, b engine.Board, moves engine.Moves) (types.Coord, error) {
	row, err := ParseIndex(rowText)
	if err != nil {
		return types.NoCoord, err
	}
	col, err := ParseIndex(colText)
	if err != nil {
		return types.NoCoord, err
	}
	c := types.Coord{Row: row, Col: col}
	return c, Check(c, b, moves)
}

// Check validates a coordinate against the board and the legal-move map.
func Check(c types.Coord, b engine.Board, moves engine.Moves) error {
	if !engine.IsInside(c.Row, c.Col) {
		return &InputError{Kind: OutsideBoard}
	}
	if b[c.Row][c.Col] != types.Empty {
		return &InputError{Kind: Occupied}
	}
	if !moves.Has(c) {
		return &InputError{Kind: NotLegal}
	}
	return nil
}
