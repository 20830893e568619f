package engine

import (
	"strings"

	"othello-local/types"
)

// Glyphs holds the characters used to print a board.
type Glyphs struct {
	First  rune
	Second rune
	Empty  rune
	Hint   rune
}

// DefaultGlyphs prints the first player as a white circle and the second as
// a black one.
var DefaultGlyphs = Glyphs{
	First:  '○',
	Second: '●',
	Empty:  ' ',
	Hint:   '+',
}

// Of returns the glyph for a cell state.
func (g Glyphs) Of(c types.Cell) (rune, error) {
	switch c {
	case types.Empty:
		return g.Empty, nil
	case types.First:
		return g.First, nil
	case types.Second:
		return g.Second, nil
	}
	return 0, invariantf("glyph", "unknown cell state %d", int(c))
}

// Player returns the glyph of a player's stones.
func (g Glyphs) Player(p types.Player) (rune, error) {
	if !p.Valid() {
		return 0, invariantf("glyph", "invalid player %v", p)
	}
	return g.Of(p.Cell())
}

// Render prints the board as a labelled grid:
//
//	 : 0 1 2 3 4 5 6 7
//	-------------------
//	0:                 ...
//
// Cells present in highlighted are printed with the hint glyph.
func Render(b Board, g Glyphs, highlighted Moves) (string, error) {
	var sb strings.Builder
	sb.WriteString(" : 0 1 2 3 4 5 6 7\n")
	sb.WriteString("-------------------\n")
	for row := 0; row < Size; row++ {
		sb.WriteByte(byte('0' + row))
		sb.WriteString(": ")
		for col := 0; col < Size; col++ {
			r := g.Hint
			if !highlighted.Has(types.Coord{Row: row, Col: col}) {
				var err error
				if r, err = g.Of(b[row][col]); err != nil {
					return "", err
				}
			}
			sb.WriteRune(r)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
