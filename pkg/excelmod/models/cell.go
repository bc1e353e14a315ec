// Package models defines data structures for margin colorization.
package models

// Cell represents a single cell in a column.
type Cell struct {
	// Value is the numeric cell value. Only meaningful when Valid is true.
	Value float64 `json:"value"`
	// Valid reports whether the cell holds a numeric value. Missing and
	// non-numeric cells have Valid set to false and are never compared
	// numerically.
	Valid bool `json:"valid"`
}

// Num returns a valid numeric cell.
func Num(v float64) Cell {
	return Cell{Value: v, Valid: true}
}

// Missing returns the missing-value sentinel cell.
func Missing() Cell {
	return Cell{}
}
