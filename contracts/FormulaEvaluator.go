package contracts

type FormulaEvaluator interface {
	Evaluate(formula string, grid GridReader) string
}
