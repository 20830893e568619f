package engine

import (
	"strings"
	"testing"

	"othello-local/types"
)

func coord(row, col int) types.Coord {
	return types.Coord{Row: row, Col: col}
}

func TestIsInside(t *testing.T) {
	checks := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{7, 7, true},
		{3, 5, true},
		{-1, 0, false},
		{0, -1, false},
		{8, 0, false},
		{0, 8, false},
	}
	for _, c := range checks {
		if got := IsInside(c.row, c.col); got != c.want {
			t.Errorf("IsInside(%d, %d) = %v, want %v", c.row, c.col, got, c.want)
		}
	}
}

func TestOpponentOf(t *testing.T) {
	for _, c := range []types.Cell{types.First, types.Second} {
		opp, err := OpponentOf(c)
		if err != nil {
			t.Fatalf("OpponentOf(%v): %v", c, err)
		}
		back, err := OpponentOf(opp)
		if err != nil {
			t.Fatalf("OpponentOf(%v): %v", opp, err)
		}
		if back != c {
			t.Errorf("OpponentOf(OpponentOf(%v)) = %v", c, back)
		}
		if opp == c {
			t.Errorf("OpponentOf(%v) returned the same cell", c)
		}
	}

	if _, err := OpponentOf(types.Empty); !IsInvariant(err) {
		t.Errorf("OpponentOf(Empty) error = %v, want invariant error", err)
	}
	if _, err := OpponentOf(types.Cell(42)); !IsInvariant(err) {
		t.Errorf("OpponentOf(42) error = %v, want invariant error", err)
	}
}

func TestPlayerOpponentSymmetry(t *testing.T) {
	for _, p := range []types.Player{types.PlayerA, types.PlayerB} {
		if p.Opponent().Opponent() != p {
			t.Errorf("%v.Opponent().Opponent() = %v", p, p.Opponent().Opponent())
		}
	}
}

func TestStartingPosition(t *testing.T) {
	b := NewBoard()
	s := b.Count()
	if s.First != 2 || s.Second != 2 || s.Empty != 60 {
		t.Fatalf("initial count = %+v, want 2/2/60", s)
	}

	moves := LegalMoves(b, types.PlayerA)
	if len(moves) != 4 {
		t.Fatalf("expected 4 legal moves, got %d: %v", len(moves), moves)
	}

	expected := map[types.Coord]types.Coord{
		coord(2, 4): coord(3, 4),
		coord(3, 5): coord(3, 4),
		coord(4, 2): coord(4, 3),
		coord(5, 3): coord(4, 3),
	}
	for at, flip := range expected {
		flips, ok := moves[at]
		if !ok {
			t.Errorf("%v should be legal", at)
			continue
		}
		if len(flips) != 1 || flips[0] != flip {
			t.Errorf("flips at %v = %v, want [%v]", at, flips, flip)
		}
	}
}

func TestMovesCoordsRowMajor(t *testing.T) {
	coords := LegalMoves(NewBoard(), types.PlayerB).Coords()
	want := []types.Coord{coord(2, 3), coord(3, 2), coord(4, 5), coord(5, 4)}
	if len(coords) != len(want) {
		t.Fatalf("got %v, want %v", coords, want)
	}
	for i := range want {
		if coords[i] != want[i] {
			t.Errorf("coords[%d] = %v, want %v", i, coords[i], want[i])
		}
	}
}

func TestComputeFlipsMultipleDirections(t *testing.T) {
	var b Board
	// Second stones to the east and south of (0,0), each closed by a first stone.
	b[0][1], b[0][2], b[0][3] = types.Second, types.Second, types.First
	b[1][0], b[2][0] = types.Second, types.First
	// Diagonal run that runs off into an empty cell: no capture.
	b[1][1], b[2][2] = types.Second, types.Second

	flips, err := ComputeFlips(b, types.PlayerA, 0, 0)
	if err != nil {
		t.Fatalf("ComputeFlips: %v", err)
	}
	want := []types.Coord{coord(0, 1), coord(0, 2), coord(1, 0)}
	if len(flips) != len(want) {
		t.Fatalf("flips = %v, want %v", flips, want)
	}
	for i := range want {
		if flips[i] != want[i] {
			t.Errorf("flips[%d] = %v, want %v", i, flips[i], want[i])
		}
	}
}

func TestComputeFlipsRunOffBoard(t *testing.T) {
	var b Board
	b[0][6], b[0][7] = types.Second, types.Second
	flips, err := ComputeFlips(b, types.PlayerA, 0, 5)
	if err != nil {
		t.Fatalf("ComputeFlips: %v", err)
	}
	if len(flips) != 0 {
		t.Errorf("run ending at the edge should not capture, got %v", flips)
	}
}

func TestComputeFlipsAdjacentOwnStone(t *testing.T) {
	var b Board
	b[3][4] = types.First
	flips, err := ComputeFlips(b, types.PlayerA, 3, 3)
	if err != nil {
		t.Fatalf("ComputeFlips: %v", err)
	}
	if len(flips) != 0 {
		t.Errorf("adjacent own stone should capture nothing, got %v", flips)
	}
}

func TestComputeFlipsPreconditions(t *testing.T) {
	b := NewBoard()
	if _, err := ComputeFlips(b, types.PlayerA, 3, 3); !IsInvariant(err) {
		t.Errorf("occupied target: error = %v, want invariant error", err)
	}
	if _, err := ComputeFlips(b, types.PlayerA, -1, 3); !IsInvariant(err) {
		t.Errorf("outside target: error = %v, want invariant error", err)
	}
	if _, err := ComputeFlips(b, types.Player(0), 2, 4); !IsInvariant(err) {
		t.Errorf("invalid player: error = %v, want invariant error", err)
	}
}

func TestLegalMovesOnlyEmptyCells(t *testing.T) {
	b := NewBoard()
	p := types.PlayerA
	// Play a few plies and check at each step.
	for ply := 0; ply < 10; ply++ {
		moves := LegalMoves(b, p)
		if len(moves) == 0 {
			p = p.Opponent()
			continue
		}
		for at, flips := range moves {
			if b[at.Row][at.Col] != types.Empty {
				t.Fatalf("ply %d: legal move %v is not empty", ply, at)
			}
			if len(flips) == 0 {
				t.Fatalf("ply %d: legal move %v has no flips", ply, at)
			}
		}
		at := moves.Coords()[0]
		var err error
		if b, err = b.Place(p, at); err != nil {
			t.Fatalf("Place: %v", err)
		}
		if b, err = b.ApplyFlips(moves[at]); err != nil {
			t.Fatalf("ApplyFlips: %v", err)
		}
		p = p.Opponent()
	}
}

func TestFlipsBecomePlayerOwned(t *testing.T) {
	b := NewBoard()
	p := types.PlayerA
	for ply := 0; ply < 20; ply++ {
		moves := LegalMoves(b, p)
		if len(moves) == 0 {
			p = p.Opponent()
			continue
		}
		coords := moves.Coords()
		at := coords[len(coords)-1]
		flips := moves[at]
		for _, f := range flips {
			if b[f.Row][f.Col] != p.Opponent().Cell() {
				t.Fatalf("ply %d: %v should belong to the opponent before the flip", ply, f)
			}
		}
		next, err := b.Place(p, at)
		if err != nil {
			t.Fatalf("Place: %v", err)
		}
		next, err = next.ApplyFlips(flips)
		if err != nil {
			t.Fatalf("ApplyFlips: %v", err)
		}
		for _, f := range flips {
			if next[f.Row][f.Col] != p.Cell() {
				t.Fatalf("ply %d: %v should belong to %v after the flip", ply, f, p)
			}
		}
		before, after := b.Count(), next.Count()
		if after.Of(p) != before.Of(p)+len(flips)+1 {
			t.Fatalf("ply %d: %v count %d -> %d with %d flips", ply, p, before.Of(p), after.Of(p), len(flips))
		}
		if after.First+after.Second+after.Empty != Size*Size {
			t.Fatalf("ply %d: counts do not sum to 64: %+v", ply, after)
		}
		b = next
		p = p.Opponent()
	}
}

func TestPlaceRoundTrip(t *testing.T) {
	b := NewBoard()
	at := coord(0, 0)
	next, err := b.Place(types.PlayerB, at)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	cell, err := next.At(at)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if cell != types.Second {
		t.Errorf("cell = %v, want second", cell)
	}
	if b[0][0] != types.Empty {
		t.Error("Place should not modify the receiver")
	}

	if _, err := next.Place(types.PlayerA, at); !IsInvariant(err) {
		t.Errorf("placing on an occupied cell: error = %v, want invariant error", err)
	}
	if _, err := next.Place(types.PlayerA, coord(8, 0)); !IsInvariant(err) {
		t.Errorf("placing outside: error = %v, want invariant error", err)
	}
}

func TestApplyFlipsEmptyCell(t *testing.T) {
	b := NewBoard()
	got, err := b.ApplyFlips([]types.Coord{coord(3, 3), coord(0, 0)})
	if !IsInvariant(err) {
		t.Fatalf("error = %v, want invariant error", err)
	}
	if got != b {
		t.Error("board should be unchanged after a failed flip")
	}
}

func TestApplyFlipsToggles(t *testing.T) {
	b := NewBoard()
	got, err := b.ApplyFlips([]types.Coord{coord(3, 3), coord(3, 4)})
	if err != nil {
		t.Fatalf("ApplyFlips: %v", err)
	}
	if got[3][3] != types.Second || got[3][4] != types.First {
		t.Errorf("row 3 after flip = %v %v", got[3][3], got[3][4])
	}
}

func TestGlyphs(t *testing.T) {
	g := DefaultGlyphs
	checks := map[types.Cell]rune{
		types.Empty:  ' ',
		types.First:  '○',
		types.Second: '●',
	}
	for c, want := range checks {
		r, err := g.Of(c)
		if err != nil {
			t.Fatalf("Of(%v): %v", c, err)
		}
		if r != want {
			t.Errorf("Of(%v) = %q, want %q", c, r, want)
		}
	}
	if _, err := g.Of(types.Cell(-1)); !IsInvariant(err) {
		t.Errorf("Of(-1) error = %v, want invariant error", err)
	}
	if _, err := g.Player(types.Player(0)); !IsInvariant(err) {
		t.Errorf("Player(0) error = %v, want invariant error", err)
	}
}

func renderRow(row int, cells string) string {
	return string(rune('0'+row)) + ": " + cells + "\n"
}

func TestRenderInitial(t *testing.T) {
	out, err := Render(NewBoard(), DefaultGlyphs, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	empty := strings.Repeat("  ", 8)
	var want strings.Builder
	want.WriteString(" : 0 1 2 3 4 5 6 7\n")
	want.WriteString("-------------------\n")
	for row := 0; row < 8; row++ {
		switch row {
		case 3:
			want.WriteString(renderRow(row, strings.Repeat("  ", 3)+"○ ● "+strings.Repeat("  ", 3)))
		case 4:
			want.WriteString(renderRow(row, strings.Repeat("  ", 3)+"● ○ "+strings.Repeat("  ", 3)))
		default:
			want.WriteString(renderRow(row, empty))
		}
	}
	if out != want.String() {
		t.Errorf("Render mismatch\ngot:\n%s\nwant:\n%s", out, want.String())
	}
}

func TestRenderHighlights(t *testing.T) {
	b := NewBoard()
	out, err := Render(b, DefaultGlyphs, LegalMoves(b, types.PlayerA))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(out, "\n")
	// lines[0] header, lines[1] separator, board rows start at 2.
	if got, want := lines[2+2], renderRow(2, strings.Repeat("  ", 4)+"+ "+strings.Repeat("  ", 3)); got+"\n" != want {
		t.Errorf("row 2 = %q, want %q", got, want)
	}
	if got := strings.Count(out, "+"); got != 4 {
		t.Errorf("expected 4 hint markers, got %d", got)
	}
}

func TestRenderInvalidCell(t *testing.T) {
	var b Board
	b[0][0] = types.Cell(9)
	if _, err := Render(b, DefaultGlyphs, nil); !IsInvariant(err) {
		t.Errorf("error = %v, want invariant error", err)
	}
}
