package contracts

// GridReader is the read-only view the evaluator works against
type GridReader interface {
	Rows() int
	Columns() int
	CellAt(address Address) (Cell, bool)
}
