package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmeticEvaluator_Evaluate(t *testing.T) {
	evaluator := NewArithmeticEvaluator()

	t.Run("valid expressions", func(t *testing.T) {
		for expression, expected := range map[string]float64{
			"5":             5,
			"1+2":           3,
			"  1 +   2 ":    3,
			"2*3+4":         10,
			"2*(3+4)":       14,
			"10/4":          2.5,
			"-3+1":          -2,
			"-(2+3)*2":      -10,
			"+7":            7,
			"1.5*2":         3,
			"((1))":         1,
			"8/2/2":         2,
			"10-2-3":        5,
			"0.1+0.2":       0.30000000000000004,
			"3 * -2":        -6,
			"100 / 8 * 2.5": 31.25,
		} {
			actual, err := evaluator.Evaluate(expression)
			assert.NoError(t, err, expression)
			assert.Equal(t, expected, actual, expression)
		}
	})

	t.Run("division by zero", func(t *testing.T) {
		_, err := evaluator.Evaluate("1/0")
		assert.ErrorIs(t, err, DivisionByZeroError)

		_, err = evaluator.Evaluate("5/(2-2)")
		assert.ErrorIs(t, err, DivisionByZeroError)
	})

	t.Run("rejected syntax", func(t *testing.T) {
		for _, expression := range []string{
			"",
			"   ",
			"1+",
			"(1+2",
			"1 2",
			"A1+1",
			"HELLO",
			"SUM(1,2)",
			"\"text\"",
			"2**3",
			"2^3",
			"10%3",
			"1 == 1",
			"true",
			"[1,2]",
			"LEN(\"abc\")",
			"!1",
			"0x10",
			"0X1F",
			"0b11",
			"0o7",
			"1_000",
			"2*0x2",
		} {
			_, err := evaluator.Evaluate(expression)
			assert.ErrorIs(t, err, ExpressionError, expression)
		}
	})
}
