package main

import (
	"fmt"

	"github.com/d3vpratap/zeotap/contracts"
)

type RecalculationMode string

const (
	SinglePassRecalculation RecalculationMode = "single"
	FixedPointRecalculation RecalculationMode = "fixed-point"
)

const DefaultMaxRecalculationPasses = 16

// Recalculator sweeps every formula cell of a grid in row-major order.
// In single mode one sweep is made: a formula reading a cell that comes later
// in row-major order sees that cell's previous value until the next sweep.
// Fixed-point mode repeats sweeps until nothing changes or maxPasses is hit.
type Recalculator struct {
	evaluator contracts.FormulaEvaluator
	mode      RecalculationMode
	maxPasses int
}

func NewRecalculator(evaluator contracts.FormulaEvaluator, mode RecalculationMode, maxPasses int) (*Recalculator, error) {
	switch mode {
	case "":
		mode = SinglePassRecalculation
	case SinglePassRecalculation, FixedPointRecalculation:
	default:
		return nil, fmt.Errorf("unknown recalculation mode `%s`", mode)
	}

	if maxPasses < 1 {
		maxPasses = DefaultMaxRecalculationPasses
	}

	return &Recalculator{
		evaluator: evaluator,
		mode:      mode,
		maxPasses: maxPasses,
	}, nil
}

func (r *Recalculator) Recalculate(grid *Grid) {
	if r.mode == FixedPointRecalculation {
		r.RecalculateUntilStable(grid, r.maxPasses)
		return
	}
	r.Pass(grid)
}

// Pass re-evaluates each formula cell once, writing results in place.
// It reports whether any display value changed.
func (r *Recalculator) Pass(grid *Grid) (changed bool) {
	for row := range grid.cells {
		for col := range grid.cells[row] {
			cell := &grid.cells[row][col]
			if !cell.HasFormula() {
				continue
			}

			value := r.evaluator.Evaluate(cell.Formula, grid)
			if value != cell.Value {
				cell.Value = value
				changed = true
			}
		}
	}
	return
}

// RecalculateUntilStable returns the number of passes made
func (r *Recalculator) RecalculateUntilStable(grid *Grid, maxPasses int) int {
	passes := 0
	for passes < maxPasses {
		passes++
		if !r.Pass(grid) {
			break
		}
	}
	return passes
}
