package main

import (
	"testing"

	"github.com/d3vpratap/zeotap/contracts"
	"github.com/stretchr/testify/assert"
)

func _newFormulaEvaluator() *FormulaEvaluator {
	return NewFormulaEvaluator(NewRangeResolver(), NewArithmeticEvaluator())
}

// _gridWithValues builds a grid whose rows hold the given literal values
func _gridWithValues(rows ...[]string) *Grid {
	grid := NewGrid(len(rows), len(rows[0]))
	for row, values := range rows {
		for col, value := range values {
			cell, _ := grid.cellRef(row, col)
			cell.Raw = value
			cell.Value = value
		}
	}
	return grid
}

func TestFormulaEvaluator_Evaluate(t *testing.T) {
	evaluator := _newFormulaEvaluator()
	grid := _gridWithValues(
		[]string{"1", "x", "3"},
		[]string{"  hello world ", "10", ""},
		[]string{"-4", "2.5", "Mixed Case"},
	)

	testCases := map[string]string{
		"=SUM(A1:C1)":     "4",
		"=sum(a1:c3)":     "12.5",
		"=AVERAGE(A1:C1)": "2",
		"=MAX(A1:C3)":     "10",
		"=MIN(A1:C3)":     "-4",
		"=COUNT(A1:C1)":   "2",
		"=COUNT(A1:C3)":   "5",
		"=SUM(B1)":        "0",
		"=AVERAGE(B1)":    contracts.ErrorDiv0,
		"=MAX(B1:B1)":     contracts.ErrorNA,
		"=MIN(C2)":        contracts.ErrorNA,
		"=SUM(C3:A1)":     "0",
		"=SUM(A1:Z99)":    "12.5",
		"=SUM(A1:B2:C3)":  "0",
		"=TRIM(A2)":       "hello world",
		"=UPPER(C3)":      "MIXED CASE",
		"=LOWER(C3)":      "mixed case",
		"=TRIM(Z99)":      contracts.ErrorRef,
		"=UPPER(A1:B2)":   contracts.ErrorRef,
		"=B2":             "10",
		"=b2":             "10",
		"=D1":             contracts.ErrorRef,
		"=A0":             contracts.ErrorRef,
		"=1+2*3":          "7",
		"=(1+2)*3":        "9",
		"=7/2":            "3.5",
		"=1/0":            contracts.ErrorOther,
		"=A1+1":           contracts.ErrorOther,
		"=hello":          contracts.ErrorOther,
		"=":               contracts.ErrorOther,
		"=SUM(A1)+1":      contracts.ErrorOther,
		"=0x10":           contracts.ErrorOther,
		"=1_000":          contracts.ErrorOther,
		"=1e21":           "1e+21",
		"plain text":      contracts.ErrorOther,
	}

	for formula, expected := range testCases {
		assert.Equal(t, expected, evaluator.Evaluate(formula, grid), formula)
	}
}

func TestFormulaEvaluator_ErrorTokensPropagateAsText(t *testing.T) {
	evaluator := _newFormulaEvaluator()
	grid := _gridWithValues([]string{contracts.ErrorDiv0, "2"})

	assert.Equal(t, contracts.ErrorDiv0, evaluator.Evaluate("=A1", grid))
	assert.Equal(t, "2", evaluator.Evaluate("=SUM(A1:B1)", grid))
	assert.Equal(t, "#div/0!", evaluator.Evaluate("=LOWER(A1)", grid))
}

func TestFormulaEvaluator_DoesNotMutateGrid(t *testing.T) {
	evaluator := _newFormulaEvaluator()
	grid := _gridWithValues([]string{"1", "2"})
	before := grid.Cells()

	evaluator.Evaluate("=SUM(A1:B1)", grid)
	evaluator.Evaluate("=UPPER(A1)", grid)

	assert.Equal(t, before, grid.Cells())
}

type _panickingGrid struct{}

func (g _panickingGrid) Rows() int    { panic("boom") }
func (g _panickingGrid) Columns() int { panic("boom") }
func (g _panickingGrid) CellAt(contracts.Address) (contracts.Cell, bool) {
	panic("boom")
}

func TestFormulaEvaluator_RecoversInternalFailure(t *testing.T) {
	evaluator := _newFormulaEvaluator()
	assert.Equal(t, contracts.ErrorOther, evaluator.Evaluate("=SUM(A1:B2)", _panickingGrid{}))
}

func TestIsFormula(t *testing.T) {
	assert.True(t, IsFormula("=1"))
	assert.False(t, IsFormula(" =1"))
	assert.False(t, IsFormula(""))
}
