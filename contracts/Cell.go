package contracts

import (
	"errors"
)

type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Cell is one grid position. Formula is empty for literal cells; Value is the
// literal text or the most recent evaluation result of Formula.
type Cell struct {
	Raw     string    `json:"raw"`
	Formula string    `json:"formula"`
	Value   string    `json:"value"`
	Bold    bool      `json:"isBold"`
	Italic  bool      `json:"isItalic"`
	Align   Alignment `json:"align"`
}

// CellView is a cell as seen from outside the grid, labelled with its address
type CellView struct {
	Address string `json:"address"`
	Cell
}

type Address struct {
	Row int
	Col int
}

type Range struct {
	Start Address
	End   Address
}

// Display error tokens, stored in Cell.Value
const (
	ErrorRef   = "#REF!"
	ErrorDiv0  = "#DIV/0!"
	ErrorNA    = "#N/A"
	ErrorOther = "#ERROR!"
)

const FormulaPrefix = "="

var AddressNotFoundError = errors.New("address not found")

var CellOutOfRangeError = errors.New("cell is out of grid bounds")

var InvalidFormatError = errors.New("unknown format")

func EmptyCell() Cell {
	return Cell{Align: AlignLeft}
}

func (c Cell) HasFormula() bool {
	return c.Formula != ""
}
