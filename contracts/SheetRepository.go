package contracts

import "errors"

type StructureAction string

const (
	InsertRowAction    StructureAction = "insertRow"
	InsertColumnAction StructureAction = "insertColumn"
	DeleteRowAction    StructureAction = "deleteRow"
	DeleteColumnAction StructureAction = "deleteColumn"
)

type SheetInfo struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}

type SheetRepository interface {
	CreateSheet(name string, rows int, columns int) (*SheetInfo, error)
	GetSheet(sheetId string) (*Snapshot, error)
	ImportSheet(sheetId string, data []byte) (*SheetInfo, error)
	SetCell(sheetId string, cellId string, text string) (*CellView, error)
	GetCell(sheetId string, cellId string) (*CellView, error)
	FormatCell(sheetId string, cellId string, format string) (*CellView, error)
	ChangeStructure(sheetId string, action StructureAction, index int) (*SheetInfo, error)
	RemoveDuplicates(sheetId string, rangeText string) (int, error)
	FindAndReplace(sheetId string, find string, replace string) (int, error)
}

var SheetNotFoundError = errors.New("sheet not found")

var InvalidStructureActionError = errors.New("unknown structure action")

var InvalidRangeError = errors.New("invalid range")

var InvalidSheetSizeError = errors.New("invalid sheet size")
