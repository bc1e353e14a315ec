package models

// Column is an ordered sequence of cells identified by a name.
type Column struct {
	// Name is the column header.
	Name string `json:"name"`
	// Cells contains the column values in row order.
	Cells []Cell `json:"cells"`
}

// Eligible returns the numeric values that participate in bound and
// majority computation: missing cells are always skipped, and zero
// values are skipped unless includeZero is true.
func (c Column) Eligible(includeZero bool) []float64 {
	var out []float64
	for _, cell := range c.Cells {
		if !cell.Valid {
			continue
		}
		if !includeZero && cell.Value == 0 {
			continue
		}
		out = append(out, cell.Value)
	}
	return out
}

// Sheet represents a named table of columns sharing the same row count.
type Sheet struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Columns contains the sheet columns in worksheet order.
	Columns []Column `json:"columns"`
}

// NumRows returns the sheet row count.
func (s Sheet) NumRows() int {
	if len(s.Columns) == 0 {
		return 0
	}
	return len(s.Columns[0].Cells)
}

// Column returns the named column and whether it exists.
func (s Sheet) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnPosition returns the 0-based position of the named column and
// whether it exists.
func (s Sheet) ColumnPosition(name string) (int, bool) {
	for i, c := range s.Columns {
		if c.Name == name {
			return i, true
		}
	}
	return 0, false
}
