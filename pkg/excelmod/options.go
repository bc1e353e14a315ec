// Package excelmod colors spreadsheet cells whose values fall in the
// percentile margins of their column.
package excelmod

import (
	"fmt"

	"github.com/ukaji3/excelmod-go/pkg/excelmod/margin"
	"github.com/ukaji3/excelmod-go/pkg/excelmod/models"
)

// Config holds the shared colorization parameters for a pass.
type Config struct {
	// UpperPct is the share of the data (0-100) treated as the upper margin.
	UpperPct float64
	// LowerPct is the share of the data (0-100) treated as the lower margin.
	LowerPct float64
	// MajorityPct is the relative-frequency threshold (0-100) above which
	// a column extreme counts as a majority value and is not colored.
	MajorityPct float64
	// Colors assigns a color to each margin.
	Colors models.ColorPair
	// IncludeZero keeps zero-valued cells in bound computation and
	// classification. Defaults to false: zero usually means "no data".
	IncludeZero bool
	// Offset shifts write positions, e.g. past a header row.
	Offset models.Offset
}

// DefaultConfig returns the default colorization parameters: 5% upper and
// lower margins, green upper / red lower fills, 10% majority threshold,
// zeros excluded.
func DefaultConfig() Config {
	return Config{
		UpperPct:    5.0,
		LowerPct:    5.0,
		MajorityPct: 10.0,
		Colors:      models.ColorPair{Upper: models.ColorGreen, Lower: models.ColorRed},
	}
}

// Validate checks the configuration, rejecting invalid percentages,
// colors and offsets before any cell is touched.
func (c Config) Validate() error {
	for _, p := range []struct {
		name string
		pct  float64
	}{
		{"upper margin", c.UpperPct},
		{"lower margin", c.LowerPct},
		{"majority share", c.MajorityPct},
	} {
		if p.pct < 0 || p.pct > 100 {
			return fmt.Errorf("%s %v: %w", p.name, p.pct, ErrInvalidPercent)
		}
	}
	if !c.Colors.Upper.Valid() {
		return fmt.Errorf("upper color %q: %w", c.Colors.Upper, ErrInvalidColor)
	}
	if !c.Colors.Lower.Valid() {
		return fmt.Errorf("lower color %q: %w", c.Colors.Lower, ErrInvalidColor)
	}
	if c.Offset.Row < 0 || c.Offset.Col < 0 {
		return fmt.Errorf("offset (%d, %d): %w", c.Offset.Row, c.Offset.Col, ErrInvalidOffset)
	}
	return nil
}

// params converts the config into classification parameters for one
// directed column.
func (c Config) params(directive models.Directive) margin.Params {
	return margin.Params{
		Directive:   directive,
		Colors:      c.Colors,
		MajorityPct: c.MajorityPct,
		IncludeZero: c.IncludeZero,
		Offset:      c.Offset,
	}
}
