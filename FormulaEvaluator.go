package main

import (
	"strings"

	"github.com/d3vpratap/zeotap/contracts"
)

type FormulaEvaluator struct {
	resolver   *RangeResolver
	arithmetic *ArithmeticEvaluator
}

func NewFormulaEvaluator(resolver *RangeResolver, arithmetic *ArithmeticEvaluator) *FormulaEvaluator {
	return &FormulaEvaluator{
		resolver:   resolver,
		arithmetic: arithmetic,
	}
}

func IsFormula(text string) bool {
	return strings.HasPrefix(text, contracts.FormulaPrefix)
}

// Evaluate computes the display value of a formula against a grid snapshot.
// Failures never escape: they come back as one of the contracts.Error* tokens.
func (e *FormulaEvaluator) Evaluate(formula string, grid contracts.GridReader) (result string) {
	defer func() {
		if recover() != nil {
			result = contracts.ErrorOther
		}
	}()

	classification := ClassifyFormula(formula)
	argument := classification.Argument

	switch classification.Kind {
	case FormulaSum:
		return calculateSum(e.resolver.ResolveRange(argument, grid))
	case FormulaAverage:
		return calculateAverage(e.resolver.ResolveRange(argument, grid))
	case FormulaMax:
		return calculateMax(e.resolver.ResolveRange(argument, grid))
	case FormulaMin:
		return calculateMin(e.resolver.ResolveRange(argument, grid))
	case FormulaCount:
		return calculateCount(e.resolver.ResolveRange(argument, grid))
	case FormulaTrim:
		return e.transformCell(argument, grid, trimText)
	case FormulaUpper:
		return e.transformCell(argument, grid, upperText)
	case FormulaLower:
		return e.transformCell(argument, grid, lowerText)
	case FormulaCellRef:
		return e.transformCell(argument, grid, func(cell contracts.Cell) string {
			return cell.Value
		})
	case FormulaArithmetic:
		value, err := e.arithmetic.Evaluate(argument)
		if err != nil {
			return contracts.ErrorOther
		}
		return FormatNumber(value)
	case FormulaMalformed:
		return contracts.ErrorOther
	}

	return contracts.ErrorOther
}

func (e *FormulaEvaluator) transformCell(reference string, grid contracts.GridReader, transform func(contracts.Cell) string) string {
	cell, ok := e.resolver.ResolveCell(reference, grid)
	if !ok {
		return contracts.ErrorRef
	}
	return transform(cell)
}
