package main

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
)

var ExpressionError = errors.New("expression error")

var DivisionByZeroError = fmt.Errorf("%w: %s", ExpressionError, "division by zero")

// hex, binary and octal prefixes and digit separators, all accepted by expr
var nonDecimalLiteralRegex = regexp.MustCompile(`0[xXbBoO]|_`)

// ArithmeticEvaluator computes + - * / over decimal literals and parentheses.
// The text is only parsed by expr; the tree is checked by ArithmeticNodeVisitor
// and folded here, so no other expr feature is reachable.
type ArithmeticEvaluator struct{}

func NewArithmeticEvaluator() *ArithmeticEvaluator {
	return &ArithmeticEvaluator{}
}

func (a *ArithmeticEvaluator) Evaluate(expression string) (float64, error) {
	if strings.TrimSpace(expression) == "" {
		return 0, fmt.Errorf("%w: empty expression", ExpressionError)
	}

	if literal := nonDecimalLiteralRegex.FindString(expression); literal != "" {
		return 0, fmt.Errorf("%w: `%s` is not a decimal literal", ExpressionError, literal)
	}

	tree, err := parser.Parse(expression)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ExpressionError, err.Error())
	}

	visitor := &ArithmeticNodeVisitor{}
	ast.Walk(&tree.Node, visitor)
	if err = visitor.Err(); err != nil {
		return 0, err
	}

	result, err := a.fold(tree.Node)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("%w: result is not a finite number", ExpressionError)
	}
	return result, nil
}

func (a *ArithmeticEvaluator) fold(node ast.Node) (float64, error) {
	switch n := node.(type) {
	case *ast.IntegerNode:
		return float64(n.Value), nil

	case *ast.FloatNode:
		return n.Value, nil

	case *ast.UnaryNode:
		value, err := a.fold(n.Node)
		if err != nil {
			return 0, err
		}
		if n.Operator == "-" {
			return -value, nil
		}
		return value, nil

	case *ast.BinaryNode:
		left, err := a.fold(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := a.fold(n.Right)
		if err != nil {
			return 0, err
		}

		switch n.Operator {
		case "+":
			return left + right, nil
		case "-":
			return left - right, nil
		case "*":
			return left * right, nil
		case "/":
			if right == 0 {
				return 0, DivisionByZeroError
			}
			return left / right, nil
		}
	}

	return 0, fmt.Errorf("%w: unsupported element `%s`", ExpressionError, node.String())
}
