package main

import (
	"math/rand/v2"
	"testing"
)

func countShips(b *Board) int {
	n := 0
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			if b.Ships[r][c] {
				n++
			}
		}
	}
	return n
}

func TestNewBoardPlacesExactCount(t *testing.T) {
	for ships := 0; ships <= gridSize*gridSize; ships++ {
		b := NewBoard(ships, rand.NewPCG(uint64(ships)+1, 0))
		if got := countShips(b); got != ships {
			t.Errorf("ships=%d: placed %d", ships, got)
		}
	}
}

func TestNewBoardClampsCount(t *testing.T) {
	if got := countShips(NewBoard(-2, rand.NewPCG(1, 0))); got != 0 {
		t.Errorf("negative ship count: placed %d, want 0", got)
	}
	if got := countShips(NewBoard(99, rand.NewPCG(1, 0))); got != gridSize*gridSize {
		t.Errorf("oversized ship count: placed %d, want %d", got, gridSize*gridSize)
	}
}

func TestNewBoardDeterministicSeed(t *testing.T) {
	b1 := NewBoard(4, rand.NewPCG(123, 0))
	b2 := NewBoard(4, rand.NewPCG(123, 0))
	if b1.Ships != b2.Ships {
		t.Error("same seed produced different layouts")
	}
}

func TestRowAndColPatterns(t *testing.T) {
	b := &Board{ShipCount: 3}
	b.Ships[1][0] = true
	b.Ships[1][3] = true
	b.Ships[2][3] = true

	wantRow := []bool{true, false, false, true}
	for i, v := range b.RowPattern(1) {
		if v != wantRow[i] {
			t.Errorf("RowPattern(1)[%d] = %v, want %v", i, v, wantRow[i])
		}
	}

	wantCol := []bool{false, true, true, false}
	for i, v := range b.ColPattern(3) {
		if v != wantCol[i] {
			t.Errorf("ColPattern(3)[%d] = %v, want %v", i, v, wantCol[i])
		}
	}

	for i, v := range b.RowPattern(0) {
		if v {
			t.Errorf("RowPattern(0)[%d] should be empty", i)
		}
	}
}

func TestCoordLabel(t *testing.T) {
	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "A1"},
		{0, 3, "A4"},
		{3, 0, "D1"},
		{2, 1, "C2"},
	}
	for _, tt := range tests {
		if got := coordLabel(tt.row, tt.col); got != tt.want {
			t.Errorf("coordLabel(%d,%d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}
