package excelmod

import (
	"unicode/utf8"

	"github.com/ukaji3/excelmod-go/pkg/excelmod/models"
	"github.com/xuri/excelize/v2"
)

// Column width is measured in character units of the default font.
// MaxColumnWidth is the xlsx format limit.
const (
	autofitPadding = 2.0
	MinColumnWidth = 6.0
	MaxColumnWidth = 255.0
)

// ExcelSink applies write intents to one sheet of an excelize workbook.
// It implements Sink. Styles are registered once per distinct color.
type ExcelSink struct {
	f         *excelize.File
	sheetName string
	styles    map[models.Color]int
}

// NewExcelSink creates a sink bound to the named sheet of an open
// workbook. The sheet must exist.
func NewExcelSink(f *excelize.File, sheetName string) *ExcelSink {
	return &ExcelSink{
		f:         f,
		sheetName: sheetName,
		styles:    map[models.Color]int{},
	}
}

// RegisterStyle returns the style id of the pattern fill for a color,
// creating it on first use.
func (s *ExcelSink) RegisterStyle(color models.Color) (int, error) {
	if id, ok := s.styles[color]; ok {
		return id, nil
	}
	id, err := s.f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{color.Hex()},
			Pattern: 1,
		},
	})
	if err != nil {
		return 0, err
	}
	s.styles[color] = id
	return id, nil
}

// WriteCell rewrites the cell at the 0-based (row, col) with its original
// value and the registered style.
func (s *ExcelSink) WriteCell(row, col int, value float64, styleID int) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	if err := s.f.SetCellValue(s.sheetName, cell, value); err != nil {
		return err
	}
	return s.f.SetCellStyle(s.sheetName, cell, cell, styleID)
}

// AutofitColumns sizes every column of the sheet to its longest cell
// content. The xlsx format has no stored autofit, so widths are set
// explicitly from a content scan, clamped to the format limits.
func (s *ExcelSink) AutofitColumns() error {
	rows, err := s.f.GetRows(s.sheetName)
	if err != nil {
		return err
	}

	var widths []int
	for _, row := range rows {
		for colIdx, cell := range row {
			for colIdx >= len(widths) {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(cell); n > widths[colIdx] {
				widths[colIdx] = n
			}
		}
	}

	for colIdx, w := range widths {
		if w == 0 {
			continue
		}
		width := float64(w) + autofitPadding
		if width < MinColumnWidth {
			width = MinColumnWidth
		}
		if width > MaxColumnWidth {
			width = MaxColumnWidth
		}
		name, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return err
		}
		if err := s.f.SetColWidth(s.sheetName, name, name, width); err != nil {
			return err
		}
	}
	return nil
}
