package types

import "testing"

func TestPlayerCellConversion(t *testing.T) {
	for _, p := range []Player{PlayerA, PlayerB} {
		back, ok := p.Cell().Player()
		if !ok || back != p {
			t.Errorf("%v.Cell().Player() = %v, %v", p, back, ok)
		}
	}
	if PlayerA.Cell() != First || PlayerB.Cell() != Second {
		t.Error("PlayerA must own First cells and PlayerB Second cells")
	}
	if _, ok := Empty.Player(); ok {
		t.Error("Empty has no owner")
	}
	if Player(0).Cell() != Empty {
		t.Error("an invalid player maps to Empty")
	}
}

func TestValidity(t *testing.T) {
	if Cell(3).Valid() || !Empty.Valid() {
		t.Error("Cell.Valid is wrong")
	}
	if Player(0).Valid() || Player(3).Valid() || !PlayerB.Valid() {
		t.Error("Player.Valid is wrong")
	}
	if PlayerA.Opponent() != PlayerB || PlayerB.Opponent() != PlayerA {
		t.Error("Opponent is wrong")
	}
}
