package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/d3vpratap/zeotap/contracts"
	"github.com/xuri/excelize/v2"
)

const defaultWorksheetName = "Sheet1"

const maxWorksheetNameLength = 31

var worksheetNameReplacer = strings.NewReplacer(
	":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", " ", "]", " ",
)

type cellStyleKey struct {
	bold   bool
	italic bool
	align  contracts.Alignment
}

// XlsxExporter writes display values of a snapshot into a single worksheet.
// Formula cells are exported with their computed value.
type XlsxExporter struct{}

func NewXlsxExporter() *XlsxExporter {
	return &XlsxExporter{}
}

func (e *XlsxExporter) Export(snapshot *contracts.Snapshot, w io.Writer) (err error) {
	if snapshot == nil {
		return contracts.SnapshotError
	}

	file := excelize.NewFile()
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	sheet := worksheetName(snapshot.Name)
	if sheet != defaultWorksheetName {
		if err = file.SetSheetName(defaultWorksheetName, sheet); err != nil {
			return err
		}
	}

	styles := map[cellStyleKey]int{}

	for row, cells := range snapshot.Cells {
		for col, cell := range cells {
			var address string
			address, err = excelize.CoordinatesToCellName(col+1, row+1)
			if err != nil {
				return err
			}

			if err = e.writeValue(file, sheet, address, cell.Value); err != nil {
				return fmt.Errorf("%s: %w", address, err)
			}

			if err = e.writeStyle(file, sheet, address, cell, styles); err != nil {
				return fmt.Errorf("%s: %w", address, err)
			}
		}
	}

	err = file.SetDocProps(&excelize.DocProperties{
		Title: snapshot.Name,
	})
	if err != nil {
		return err
	}

	return file.Write(w)
}

func (e *XlsxExporter) writeValue(file *excelize.File, sheet string, address string, value string) error {
	if value == "" {
		return nil
	}

	if number, ok := ParseNumber(value); ok {
		return file.SetCellFloat(sheet, address, number, -1, 64)
	}

	return file.SetCellStr(sheet, address, value)
}

func (e *XlsxExporter) writeStyle(file *excelize.File, sheet string, address string, cell contracts.Cell, styles map[cellStyleKey]int) error {
	key := cellStyleKey{bold: cell.Bold, italic: cell.Italic, align: cell.Align}
	if key.align == "" {
		key.align = contracts.AlignLeft
	}

	// plain left aligned cells keep the workbook default style
	if !key.bold && !key.italic && key.align == contracts.AlignLeft {
		return nil
	}

	styleId, ok := styles[key]
	if !ok {
		var err error
		styleId, err = file.NewStyle(&excelize.Style{
			Font: &excelize.Font{
				Bold:   key.bold,
				Italic: key.italic,
			},
			Alignment: &excelize.Alignment{
				Horizontal: string(key.align),
			},
		})
		if err != nil {
			return err
		}
		styles[key] = styleId
	}

	return file.SetCellStyle(sheet, address, address, styleId)
}

func worksheetName(name string) string {
	name = strings.Trim(worksheetNameReplacer.Replace(name), " '")

	runes := []rune(name)
	if len(runes) > maxWorksheetNameLength {
		name = strings.TrimSpace(string(runes[:maxWorksheetNameLength]))
	}

	if name == "" {
		return defaultWorksheetName
	}
	return name
}
