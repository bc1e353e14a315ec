package models

// Workbook represents a workbook-level container with per-sheet data.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets contains the workbook sheets in file order.
	Sheets []Sheet `json:"sheets"`
}

// Sheet returns the named sheet and whether it exists.
func (w Workbook) Sheet(name string) (Sheet, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}
