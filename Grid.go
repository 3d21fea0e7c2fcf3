package main

import (
	"fmt"

	"github.com/d3vpratap/zeotap/contracts"
)

const DefaultRowCount = 100
const DefaultColumnCount = 26

// Grid is a rectangular, never empty, row-major array of cells
type Grid struct {
	cells [][]contracts.Cell
}

func NewGrid(rows int, columns int) *Grid {
	if rows < 1 {
		rows = 1
	}
	if columns < 1 {
		columns = 1
	}

	cells := make([][]contracts.Cell, rows)
	for row := range cells {
		cells[row] = newEmptyRow(columns)
	}

	return &Grid{cells: cells}
}

// NewGridFromCells copies cells into a new grid; the input must be rectangular and non-empty
func NewGridFromCells(cells [][]contracts.Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: grid has no cells", contracts.SnapshotError)
	}

	columns := len(cells[0])
	copied := make([][]contracts.Cell, len(cells))
	for row, rowCells := range cells {
		if len(rowCells) != columns {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", contracts.SnapshotError, row+1, len(rowCells), columns)
		}

		copied[row] = make([]contracts.Cell, columns)
		copy(copied[row], rowCells)
	}

	return &Grid{cells: copied}, nil
}

func newEmptyRow(columns int) []contracts.Cell {
	row := make([]contracts.Cell, columns)
	for col := range row {
		row[col] = contracts.EmptyCell()
	}
	return row
}

func (g *Grid) Rows() int {
	return len(g.cells)
}

func (g *Grid) Columns() int {
	return len(g.cells[0])
}

func (g *Grid) InBounds(address contracts.Address) bool {
	return address.Row >= 0 && address.Row < g.Rows() &&
		address.Col >= 0 && address.Col < g.Columns()
}

// CellAt returns a copy of the cell, false when the address is outside the grid
func (g *Grid) CellAt(address contracts.Address) (contracts.Cell, bool) {
	if !g.InBounds(address) {
		return contracts.Cell{}, false
	}

	return g.cells[address.Row][address.Col], true
}

func (g *Grid) Cell(row int, col int) (contracts.Cell, bool) {
	return g.CellAt(contracts.Address{Row: row, Col: col})
}

func (g *Grid) cellRef(row int, col int) (*contracts.Cell, error) {
	address := contracts.Address{Row: row, Col: col}
	if !g.InBounds(address) {
		return nil, fmt.Errorf("%s: %w", EncodeAddress(row, col), contracts.CellOutOfRangeError)
	}

	return &g.cells[row][col], nil
}

// Cells returns a deep copy of the cell array
func (g *Grid) Cells() [][]contracts.Cell {
	cells := make([][]contracts.Cell, len(g.cells))
	for row, rowCells := range g.cells {
		cells[row] = make([]contracts.Cell, len(rowCells))
		copy(cells[row], rowCells)
	}
	return cells
}

// InsertRow adds an empty row right after an existing row
func (g *Grid) InsertRow(after int) error {
	if after < 0 || after >= g.Rows() {
		return fmt.Errorf("row %d: %w", after+1, contracts.CellOutOfRangeError)
	}

	g.cells = append(g.cells, nil)
	copy(g.cells[after+2:], g.cells[after+1:])
	g.cells[after+1] = newEmptyRow(g.Columns())

	return nil
}

// InsertColumn adds an empty column right after an existing column
func (g *Grid) InsertColumn(after int) error {
	if after < 0 || after >= g.Columns() {
		return fmt.Errorf("column %s: %w", ColumnLetters(after), contracts.CellOutOfRangeError)
	}

	for row, rowCells := range g.cells {
		rowCells = append(rowCells, contracts.Cell{})
		copy(rowCells[after+2:], rowCells[after+1:])
		rowCells[after+1] = contracts.EmptyCell()
		g.cells[row] = rowCells
	}

	return nil
}

// DeleteRow removes a row. The last remaining row is never removed.
func (g *Grid) DeleteRow(index int) bool {
	if g.Rows() <= 1 || index < 0 || index >= g.Rows() {
		return false
	}

	g.cells = append(g.cells[:index], g.cells[index+1:]...)
	return true
}

// DeleteColumn removes a column. The last remaining column is never removed.
func (g *Grid) DeleteColumn(index int) bool {
	if g.Columns() <= 1 || index < 0 || index >= g.Columns() {
		return false
	}

	for row, rowCells := range g.cells {
		g.cells[row] = append(rowCells[:index], rowCells[index+1:]...)
	}
	return true
}
