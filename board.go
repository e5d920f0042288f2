package main

import (
	"fmt"
	"math/rand/v2"
)

// Grid geometry. Rows are lettered A–D, columns numbered 1–4.
const (
	gridSize  = 4
	rowLabels = "ABCD"
)

// Board holds the hidden ship layout. The quantum core never sees this —
// the board only translates grid coordinates into occupancy patterns.
type Board struct {
	Ships     [gridSize][gridSize]bool
	ShipCount int
}

// NewBoard places the given number of ships on distinct random cells.
func NewBoard(ships int, src rand.Source) *Board {
	if ships < 0 {
		ships = 0
	}
	if ships > gridSize*gridSize {
		ships = gridSize * gridSize
	}
	b := &Board{ShipCount: ships}
	rng := rand.New(src)
	for _, cell := range rng.Perm(gridSize * gridSize)[:ships] {
		b.Ships[cell/gridSize][cell%gridSize] = true
	}
	return b
}

func (b *Board) HasShip(row, col int) bool {
	return b.Ships[row][col]
}

// RowPattern returns the occupancy flags of one row, column by column.
func (b *Board) RowPattern(row int) []bool {
	pattern := make([]bool, gridSize)
	for col := 0; col < gridSize; col++ {
		pattern[col] = b.Ships[row][col]
	}
	return pattern
}

// ColPattern returns the occupancy flags of one column, row by row.
func (b *Board) ColPattern(col int) []bool {
	pattern := make([]bool, gridSize)
	for row := 0; row < gridSize; row++ {
		pattern[row] = b.Ships[row][col]
	}
	return pattern
}

// coordLabel formats a cell as its grid coordinate, e.g. "A1" or "D4".
func coordLabel(row, col int) string {
	return fmt.Sprintf("%c%d", rowLabels[row], col+1)
}

// rowName and colName label whole lines for the scanner log.
func rowName(row int) string { return fmt.Sprintf("ROW %c", rowLabels[row]) }
func colName(col int) string { return fmt.Sprintf("COL %d", col+1) }
