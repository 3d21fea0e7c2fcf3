package main

import (
	"strings"

	"github.com/d3vpratap/zeotap/contracts"
)

type FormulaKind int

const (
	FormulaMalformed FormulaKind = iota
	FormulaSum
	FormulaAverage
	FormulaMax
	FormulaMin
	FormulaCount
	FormulaTrim
	FormulaUpper
	FormulaLower
	FormulaCellRef
	FormulaArithmetic
)

var formulaKindNames = map[FormulaKind]string{
	FormulaMalformed:  "MALFORMED",
	FormulaSum:        "SUM",
	FormulaAverage:    "AVERAGE",
	FormulaMax:        "MAX",
	FormulaMin:        "MIN",
	FormulaCount:      "COUNT",
	FormulaTrim:       "TRIM",
	FormulaUpper:      "UPPER",
	FormulaLower:      "LOWER",
	FormulaCellRef:    "CELLREF",
	FormulaArithmetic: "ARITHMETIC",
}

func (k FormulaKind) String() string {
	return formulaKindNames[k]
}

// functionKinds is checked in order; the first matching NAME( prefix wins
var functionKinds = []FormulaKind{
	FormulaSum,
	FormulaAverage,
	FormulaMax,
	FormulaMin,
	FormulaCount,
	FormulaTrim,
	FormulaUpper,
	FormulaLower,
}

// Classification is a formula tagged with its kind. Argument holds the text
// between the parentheses for functions, the reference for CellRef and the
// whole expression for Arithmetic.
type Classification struct {
	Kind     FormulaKind
	Argument string
}

// ClassifyFormula strips the leading "=", uppercases and tags the formula
func ClassifyFormula(formula string) Classification {
	if !strings.HasPrefix(formula, contracts.FormulaPrefix) {
		return Classification{Kind: FormulaMalformed, Argument: formula}
	}

	expression := strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(formula, contracts.FormulaPrefix)))

	for _, kind := range functionKinds {
		prefix := kind.String() + "("
		if strings.HasPrefix(expression, prefix) && strings.HasSuffix(expression, ")") {
			return Classification{
				Kind:     kind,
				Argument: expression[len(prefix) : len(expression)-1],
			}
		}
	}

	if IsAddressShape(expression) {
		return Classification{Kind: FormulaCellRef, Argument: expression}
	}

	return Classification{Kind: FormulaArithmetic, Argument: expression}
}
