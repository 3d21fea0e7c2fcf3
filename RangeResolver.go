package main

import (
	"strings"

	"github.com/d3vpratap/zeotap/contracts"
)

const RangeDelimiter = ":"

type RangeResolver struct{}

func NewRangeResolver() *RangeResolver {
	return &RangeResolver{}
}

// ResolveCell returns the cell an uppercase A1 reference points to
func (r *RangeResolver) ResolveCell(reference string, grid contracts.GridReader) (contracts.Cell, bool) {
	if !IsAddressShape(reference) {
		return contracts.Cell{}, false
	}

	address, err := DecodeAddress(reference)
	if err != nil {
		return contracts.Cell{}, false
	}

	return grid.CellAt(address)
}

// ResolveRange expands "A1" or "A1:B3" into its cells, row-major.
// Anything unresolvable yields no cells; endpoints are not normalized,
// so "B2:A1" is empty, and coordinates outside the grid are skipped.
func (r *RangeResolver) ResolveRange(rangeText string, grid contracts.GridReader) []contracts.Cell {
	cells := make([]contracts.Cell, 0)

	if IsAddressShape(rangeText) {
		if cell, ok := r.ResolveCell(rangeText, grid); ok {
			cells = append(cells, cell)
		}
		return cells
	}

	parts := strings.Split(rangeText, RangeDelimiter)
	if len(parts) != 2 {
		return cells
	}

	start, err := DecodeAddress(parts[0])
	if err != nil {
		return cells
	}
	end, err := DecodeAddress(parts[1])
	if err != nil {
		return cells
	}

	// clipped to the grid
	for row := max(start.Row, 0); row <= min(end.Row, grid.Rows()-1); row++ {
		for col := max(start.Col, 0); col <= min(end.Col, grid.Columns()-1); col++ {
			if cell, ok := grid.CellAt(contracts.Address{Row: row, Col: col}); ok {
				cells = append(cells, cell)
			}
		}
	}

	return cells
}

// ParseRange decodes "A1:B3" into a normalized Range; a single address is a 1x1 range
func ParseRange(rangeText string) (contracts.Range, error) {
	parts := strings.Split(rangeText, RangeDelimiter)
	if len(parts) > 2 {
		return contracts.Range{}, contracts.AddressNotFoundError
	}

	start, err := DecodeAddress(parts[0])
	if err != nil {
		return contracts.Range{}, err
	}
	end := start
	if len(parts) == 2 {
		end, err = DecodeAddress(parts[1])
		if err != nil {
			return contracts.Range{}, err
		}
	}

	return NormalizeRange(contracts.Range{Start: start, End: end}), nil
}

func NormalizeRange(r contracts.Range) contracts.Range {
	if r.Start.Row > r.End.Row {
		r.Start.Row, r.End.Row = r.End.Row, r.Start.Row
	}
	if r.Start.Col > r.End.Col {
		r.Start.Col, r.End.Col = r.End.Col, r.Start.Col
	}
	return r
}
