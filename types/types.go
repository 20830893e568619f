// Package types contains shared data structures for othello-local.
package types

import "fmt"

// Cell is the state of a single board square.
type Cell int

const (
	Empty Cell = iota
	First
	Second
)

// Valid returns true for the three known cell states.
func (c Cell) Valid() bool {
	return c == Empty || c == First || c == Second
}

// Player returns the owner of the cell. ok is false for empty or unknown cells.
func (c Cell) Player() (p Player, ok bool) {
	switch c {
	case First:
		return PlayerA, true
	case Second:
		return PlayerB, true
	}
	return 0, false
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case First:
		return "first"
	case Second:
		return "second"
	}
	return fmt.Sprintf("Cell(%d)", int(c))
}

// Player identifies one of the two sides. PlayerA moves first.
type Player int

const (
	PlayerA Player = iota + 1
	PlayerB
)

// Valid returns true for PlayerA and PlayerB.
func (p Player) Valid() bool {
	return p == PlayerA || p == PlayerB
}

// Cell converts the player into the cell state its stones occupy.
// Unknown players map to Empty.
func (p Player) Cell() Cell {
	switch p {
	case PlayerA:
		return First
	case PlayerB:
		return Second
	}
	return Empty
}

// Opponent returns the other player. An unknown player is returned unchanged.
func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	return p
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	}
	return fmt.Sprintf("Player(%d)", int(p))
}

// Coord is a (row, column) position. Row 0 is the top, column 0 the left.
type Coord struct {
	Row int
	Col int
}

// NoCoord marks the absence of a position, e.g. before the first move.
var NoCoord = Coord{Row: -1, Col: -1}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}
