package models

// MarginBounds holds the two threshold values demarcating the upper and
// lower margins of a column. Immutable once computed; scoped to a single
// classification pass.
type MarginBounds struct {
	// Upper is the value at the (1 - upper_pct/100) quantile. Cells at or
	// above it fall in the upper margin.
	Upper float64 `json:"upper"`
	// Lower is the value at the (lower_pct/100) quantile. Cells at or
	// below it fall in the lower margin.
	Lower float64 `json:"lower"`
}

// Offset shifts write positions relative to the data origin. Both fields
// are 0-based; they account for header rows or index columns preceding
// the data in the worksheet.
type Offset struct {
	// Row is added to each intent's row.
	Row int `json:"row"`
	// Col is added to each intent's column.
	Col int `json:"col"`
}
