// Package engine implements the Othello board: legal move search, capture
// computation and the placement and flip primitives.
//
// Every function is pure over the Board value it receives. Broken
// preconditions are reported as *InvariantError so callers can tell them
// apart from user mistakes.
package engine

import (
	"othello-local/types"
)

// Size is the width and height of the board.
const Size = 8

// Board is indexed as Board[row][col].
type Board [Size][Size]types.Cell

// Moves maps each legal placement to the cells it would flip.
type Moves map[types.Coord][]types.Coord

// Score holds stone counts per cell state.
type Score struct {
	First  int
	Second int
	Empty  int
}

// Of returns the stone count of the given player.
func (s Score) Of(p types.Player) int {
	switch p {
	case types.PlayerA:
		return s.First
	case types.PlayerB:
		return s.Second
	}
	return 0
}

// Scan order: E, SE, S, SW, W, NW, N, NE.
var directions = [8]struct{ dr, dc int }{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = types.First, types.First
	b[mid-1][mid], b[mid][mid-1] = types.Second, types.Second
	return b
}

// IsInside reports whether (row, col) lies on the board.
func IsInside(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// OpponentOf returns the cell state of the other side.
func OpponentOf(c types.Cell) (types.Cell, error) {
	switch c {
	case types.First:
		return types.Second, nil
	case types.Second:
		return types.First, nil
	}
	return types.Empty, invariantf("opponent", "no opponent for %v cell", c)
}

// At returns the cell at c.
func (b Board) At(c types.Coord) (types.Cell, error) {
	if !IsInside(c.Row, c.Col) {
		return types.Empty, invariantf("at", "%v is outside the board", c)
	}
	return b[c.Row][c.Col], nil
}

// ComputeFlips returns the opponent stones captured by p placing at (row, col),
// grouped by direction in scan order. An empty result means the placement is
// not legal.
func ComputeFlips(b Board, p types.Player, row, col int) ([]types.Coord, error) {
	if !p.Valid() {
		return nil, invariantf("flips", "invalid player %v", p)
	}
	if !IsInside(row, col) {
		return nil, invariantf("flips", "(%d, %d) is outside the board", row, col)
	}
	if b[row][col] != types.Empty {
		return nil, invariantf("flips", "(%d, %d) is not empty", row, col)
	}

	own := p.Cell()
	opp := p.Opponent().Cell()

	var flips []types.Coord
	for _, d := range directions {
		var run []types.Coord
		r, c := row+d.dr, col+d.dc
		for IsInside(r, c) {
			cell := b[r][c]
			if cell == opp {
				run = append(run, types.Coord{Row: r, Col: c})
			} else if cell == own {
				flips = append(flips, run...)
				break
			} else {
				break
			}
			r += d.dr
			c += d.dc
		}
	}
	return flips, nil
}

// LegalMoves scans every empty cell and keeps the ones that capture at least
// one stone.
func LegalMoves(b Board, p types.Player) Moves {
	moves := Moves{}
	if !p.Valid() {
		return moves
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] != types.Empty {
				continue
			}
			// Cannot fail: the player is valid and the cell is empty and inside.
			flips, _ := ComputeFlips(b, p, row, col)
			if len(flips) > 0 {
				moves[types.Coord{Row: row, Col: col}] = flips
			}
		}
	}
	return moves
}

// Place puts a stone of p on c and returns the new board.
func (b Board) Place(p types.Player, c types.Coord) (Board, error) {
	if !p.Valid() {
		return b, invariantf("place", "invalid player %v", p)
	}
	cell, err := b.At(c)
	if err != nil {
		return b, invariantf("place", "%v is outside the board", c)
	}
	if cell != types.Empty {
		return b, invariantf("place", "%v is already occupied by %v", c, cell)
	}
	b[c.Row][c.Col] = p.Cell()
	return b, nil
}

// ApplyFlips hands every listed stone to the opposite side. The receiver is
// returned unchanged if any listed cell is outside the board or empty.
func (b Board) ApplyFlips(cells []types.Coord) (Board, error) {
	next := b
	for _, c := range cells {
		cell, err := b.At(c)
		if err != nil {
			return b, invariantf("flip", "%v is outside the board", c)
		}
		opp, err := OpponentOf(cell)
		if err != nil {
			return b, invariantf("flip", "cannot flip %v cell at %v", cell, c)
		}
		next[c.Row][c.Col] = opp
	}
	return next, nil
}

// Count tallies the cells of each state.
func (b Board) Count() Score {
	var s Score
	for row := range b {
		for _, cell := range b[row] {
			switch cell {
			case types.First:
				s.First++
			case types.Second:
				s.Second++
			default:
				s.Empty++
			}
		}
	}
	return s
}

// Coords returns the legal placements in row-major order.
func (m Moves) Coords() []types.Coord {
	coords := make([]types.Coord, 0, len(m))
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			c := types.Coord{Row: row, Col: col}
			if _, ok := m[c]; ok {
				coords = append(coords, c)
			}
		}
	}
	return coords
}

// Has reports whether c is a legal placement.
func (m Moves) Has(c types.Coord) bool {
	_, ok := m[c]
	return ok
}
