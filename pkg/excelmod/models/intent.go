package models

// WriteIntent is a deferred cell update: the cell keeps its original
// value and gains the resolved highlight color. Intents decouple
// classification from the act of writing, so the algorithm is testable
// without a spreadsheet backend.
type WriteIntent struct {
	// Row is the 0-based target row, write offset already applied.
	Row int `json:"row"`
	// Col is the 0-based target column, write offset already applied.
	Col int `json:"col"`
	// Value is the original cell value, carried through unmodified.
	Value float64 `json:"value"`
	// Color is the resolved highlight color.
	Color Color `json:"color"`
}
