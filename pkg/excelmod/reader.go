package excelmod

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ukaji3/excelmod-go/pkg/excelmod/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet builds a column-oriented snapshot of a sheet. The first row
// is taken as the header naming each column; the remaining rows are data.
// Cells that do not parse as numbers (including empty and absent cells)
// become the missing-value sentinel and are carried through unmodified.
func ReadSheet(f *excelize.File, sheetName string) (models.Sheet, error) {
	if !slices.Contains(f.GetSheetList(), sheetName) {
		return models.Sheet{}, fmt.Errorf("%q: %w", sheetName, ErrSheetNotFound)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Sheet{}, err
	}
	if len(rows) == 0 {
		return models.Sheet{Name: sheetName}, nil
	}

	header := rows[0]
	numRows := len(rows) - 1

	sheet := models.Sheet{Name: sheetName}
	for colIdx, name := range header {
		col := models.Column{
			Name:  name,
			Cells: make([]models.Cell, numRows),
		}
		for rowIdx := 0; rowIdx < numRows; rowIdx++ {
			row := rows[rowIdx+1]
			if colIdx < len(row) {
				col.Cells[rowIdx] = parseCell(row[colIdx])
			}
		}
		sheet.Columns = append(sheet.Columns, col)
	}
	return sheet, nil
}

// ReadWorkbook reads every sheet of an open workbook.
func ReadWorkbook(f *excelize.File, bookName string) (models.Workbook, error) {
	wb := models.Workbook{BookName: bookName}
	for _, sheetName := range f.GetSheetList() {
		sheet, err := ReadSheet(f, sheetName)
		if err != nil {
			return models.Workbook{}, err
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb, nil
}

// parseCell attempts to parse a cell string as a number. Anything else,
// including the textual NaN markers pandas-produced sheets carry, becomes
// the missing sentinel.
func parseCell(s string) models.Cell {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Missing()
	}
	switch strings.ToLower(s) {
	case "nan", "n/a", "#n/a":
		return models.Missing()
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Num(v)
	}
	return models.Missing()
}
