package main

import (
	"fmt"
	"strings"

	"github.com/d3vpratap/zeotap/contracts"
)

const DefaultSheetName = "Untitled spreadsheet"

const duplicateRowDelimiter = "|"

const (
	FormatBold        = "bold"
	FormatItalic      = "italic"
	FormatAlignLeft   = "alignLeft"
	FormatAlignCenter = "alignCenter"
	FormatAlignRight  = "alignRight"
)

// Workbook owns one named grid. Every content or structural change is
// followed by a recalculation pass, so formula values are never stale
// relative to the last pass.
type Workbook struct {
	name         string
	grid         *Grid
	evaluator    contracts.FormulaEvaluator
	recalculator *Recalculator
}

func NewWorkbook(name string, grid *Grid, evaluator contracts.FormulaEvaluator, recalculator *Recalculator) *Workbook {
	workbook := &Workbook{
		grid:         grid,
		evaluator:    evaluator,
		recalculator: recalculator,
	}
	workbook.Rename(name)
	return workbook
}

func (w *Workbook) Name() string {
	return w.name
}

func (w *Workbook) Rename(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultSheetName
	}
	w.name = name
}

func (w *Workbook) Rows() int {
	return w.grid.Rows()
}

func (w *Workbook) Columns() int {
	return w.grid.Columns()
}

// SetCellText is the only way cell text changes
func (w *Workbook) SetCellText(row int, col int, text string) error {
	cell, err := w.grid.cellRef(row, col)
	if err != nil {
		return err
	}

	cell.Raw = text
	if IsFormula(text) {
		cell.Formula = text
		cell.Value = w.evaluator.Evaluate(text, w.grid)
	} else {
		cell.Formula = ""
		cell.Value = text
	}

	w.recalculator.Recalculate(w.grid)
	return nil
}

func (w *Workbook) Cell(row int, col int) (contracts.Cell, error) {
	cell, ok := w.grid.Cell(row, col)
	if !ok {
		return cell, fmt.Errorf("%s: %w", EncodeAddress(row, col), contracts.CellOutOfRangeError)
	}
	return cell, nil
}

func (w *Workbook) CellDisplay(row int, col int) (string, error) {
	cell, err := w.Cell(row, col)
	return cell.Value, err
}

func (w *Workbook) InsertRow(after int) error {
	if err := w.grid.InsertRow(after); err != nil {
		return err
	}
	w.recalculator.Recalculate(w.grid)
	return nil
}

func (w *Workbook) InsertColumn(after int) error {
	if err := w.grid.InsertColumn(after); err != nil {
		return err
	}
	w.recalculator.Recalculate(w.grid)
	return nil
}

// DeleteRow reports false, leaving the workbook untouched, when the row
// does not exist or is the last one
func (w *Workbook) DeleteRow(index int) bool {
	if !w.grid.DeleteRow(index) {
		return false
	}
	w.recalculator.Recalculate(w.grid)
	return true
}

func (w *Workbook) DeleteColumn(index int) bool {
	if !w.grid.DeleteColumn(index) {
		return false
	}
	w.recalculator.Recalculate(w.grid)
	return true
}

// ApplyFormat changes presentation flags only; values are not recalculated
func (w *Workbook) ApplyFormat(row int, col int, format string) error {
	cell, err := w.grid.cellRef(row, col)
	if err != nil {
		return err
	}

	switch format {
	case FormatBold:
		cell.Bold = !cell.Bold
	case FormatItalic:
		cell.Italic = !cell.Italic
	case FormatAlignLeft:
		cell.Align = contracts.AlignLeft
	case FormatAlignCenter:
		cell.Align = contracts.AlignCenter
	case FormatAlignRight:
		cell.Align = contracts.AlignRight
	default:
		return fmt.Errorf("`%s`: %w", format, contracts.InvalidFormatError)
	}

	return nil
}

// RemoveDuplicateRows deletes every row of the range whose display values,
// joined with "|", repeat an earlier row of the range. Returns the number of
// rows removed.
func (w *Workbook) RemoveDuplicateRows(selection contracts.Range) int {
	selection = NormalizeRange(selection)
	startRow, endRow := max(selection.Start.Row, 0), min(selection.End.Row, w.grid.Rows()-1)
	startCol, endCol := max(selection.Start.Col, 0), min(selection.End.Col, w.grid.Columns()-1)
	if startRow > endRow || startCol > endCol {
		return 0
	}

	seen := make(map[string]bool)
	duplicates := make([]int, 0)
	for row := startRow; row <= endRow; row++ {
		values := make([]string, 0, endCol-startCol+1)
		for _, cell := range w.grid.cells[row][startCol : endCol+1] {
			values = append(values, cell.Value)
		}

		key := strings.Join(values, duplicateRowDelimiter)
		if seen[key] {
			duplicates = append(duplicates, row)
		} else {
			seen[key] = true
		}
	}

	// bottom to top keeps the remaining indexes valid
	for i := len(duplicates) - 1; i >= 0; i-- {
		w.grid.DeleteRow(duplicates[i])
	}

	if len(duplicates) > 0 {
		w.recalculator.Recalculate(w.grid)
	}
	return len(duplicates)
}

// FindAndReplace rewrites literal cells only; formula text is left alone
func (w *Workbook) FindAndReplace(find string, replace string) int {
	if find == "" {
		return 0
	}

	replaced := 0
	for row := range w.grid.cells {
		for col := range w.grid.cells[row] {
			cell := &w.grid.cells[row][col]
			if cell.HasFormula() || !strings.Contains(cell.Value, find) {
				continue
			}

			cell.Value = strings.ReplaceAll(cell.Value, find, replace)
			cell.Raw = cell.Value
			replaced++
		}
	}

	if replaced > 0 {
		w.recalculator.Recalculate(w.grid)
	}
	return replaced
}

func (w *Workbook) Serialize() *contracts.Snapshot {
	return &contracts.Snapshot{
		Name:  w.name,
		Cells: w.grid.Cells(),
	}
}

// Deserialize replaces the grid with the snapshot and recalculates once.
// An invalid snapshot leaves the workbook as it was.
func (w *Workbook) Deserialize(snapshot *contracts.Snapshot) error {
	return w.load(snapshot, true)
}

func (w *Workbook) load(snapshot *contracts.Snapshot, recalculate bool) error {
	if snapshot == nil {
		return fmt.Errorf("%w: empty snapshot", contracts.SnapshotError)
	}

	grid, err := NewGridFromCells(snapshot.Cells)
	if err != nil {
		return err
	}

	for row := range grid.cells {
		for col := range grid.cells[row] {
			if err = normalizeLoadedCell(&grid.cells[row][col]); err != nil {
				return fmt.Errorf("%s: %w", EncodeAddress(row, col), err)
			}
		}
	}

	w.grid = grid
	w.Rename(snapshot.Name)
	if recalculate {
		w.recalculator.Recalculate(w.grid)
	}
	return nil
}

// normalizeLoadedCell fills defaults for snapshots that predate the raw field
func normalizeLoadedCell(cell *contracts.Cell) error {
	switch cell.Align {
	case "":
		cell.Align = contracts.AlignLeft
	case contracts.AlignLeft, contracts.AlignCenter, contracts.AlignRight:
	default:
		return fmt.Errorf("%w: unknown alignment `%s`", contracts.SnapshotError, cell.Align)
	}

	if cell.Formula != "" && !IsFormula(cell.Formula) {
		return fmt.Errorf("%w: formula `%s` does not start with %s", contracts.SnapshotError, cell.Formula, contracts.FormulaPrefix)
	}

	if cell.Raw == "" {
		if cell.HasFormula() {
			cell.Raw = cell.Formula
		} else {
			cell.Raw = cell.Value
		}
	} else if !cell.HasFormula() && cell.Value == "" {
		cell.Value = cell.Raw
	}

	return nil
}
