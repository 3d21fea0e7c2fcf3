package main

import (
	"github.com/d3vpratap/zeotap/contracts"
)

// WorkbookFactory builds workbooks sharing one evaluator and recalculation policy
type WorkbookFactory struct {
	evaluator    contracts.FormulaEvaluator
	recalculator *Recalculator
}

func NewWorkbookFactory(evaluator contracts.FormulaEvaluator, recalculator *Recalculator) *WorkbookFactory {
	return &WorkbookFactory{
		evaluator:    evaluator,
		recalculator: recalculator,
	}
}

func (f *WorkbookFactory) New(name string, rows int, columns int) *Workbook {
	return NewWorkbook(name, NewGrid(rows, columns), f.evaluator, f.recalculator)
}

func (f *WorkbookFactory) Load(snapshot *contracts.Snapshot) (*Workbook, error) {
	workbook := f.New("", 1, 1)
	if err := workbook.Deserialize(snapshot); err != nil {
		return nil, err
	}
	return workbook, nil
}

// Restore rebuilds a workbook from a snapshot this service stored itself,
// keeping display values exactly as they were saved
func (f *WorkbookFactory) Restore(snapshot *contracts.Snapshot) (*Workbook, error) {
	workbook := f.New("", 1, 1)
	if err := workbook.load(snapshot, false); err != nil {
		return nil, err
	}
	return workbook, nil
}
