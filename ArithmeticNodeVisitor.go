package main

import (
	"fmt"

	"github.com/expr-lang/expr/ast"
)

var allowedOperators = map[string]bool{"+": true, "-": true, "*": true, "/": true}

// ArithmeticNodeVisitor records the first node that is not a number literal
// or one of + - * / (unary + and - included)
type ArithmeticNodeVisitor struct {
	rejected ast.Node
}

func (v *ArithmeticNodeVisitor) Visit(node *ast.Node) {
	if v.rejected != nil {
		return
	}

	switch n := (*node).(type) {
	case *ast.IntegerNode, *ast.FloatNode:
	case *ast.UnaryNode:
		if n.Operator != "+" && n.Operator != "-" {
			v.rejected = n
		}
	case *ast.BinaryNode:
		if !allowedOperators[n.Operator] {
			v.rejected = n
		}
	default:
		v.rejected = n
	}
}

func (v *ArithmeticNodeVisitor) Err() error {
	if v.rejected == nil {
		return nil
	}
	return fmt.Errorf("%w: unsupported element `%s`", ExpressionError, v.rejected.String())
}
