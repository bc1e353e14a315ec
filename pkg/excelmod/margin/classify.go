package margin

import (
	"fmt"

	"github.com/ukaji3/excelmod-go/pkg/excelmod/models"
)

// Params holds parameters for margin classification.
type Params struct {
	// Directive selects which margins are eligible for coloring.
	Directive models.Directive
	// Colors assigns a color to each margin.
	Colors models.ColorPair
	// MajorityPct is the relative-frequency threshold (0-100) above which
	// a column extreme counts as a majority value and is excluded from
	// its margin.
	MajorityPct float64
	// IncludeZero keeps zero-valued cells eligible for classification.
	IncludeZero bool
	// Offset shifts the emitted write positions.
	Offset models.Offset
}

// DefaultParams returns default classification parameters.
func DefaultParams() Params {
	return Params{
		Directive:   models.DirectiveBoth,
		Colors:      models.ColorPair{Upper: models.ColorGreen, Lower: models.ColorRed},
		MajorityPct: 10.0,
	}
}

// Classify evaluates every cell of a column against precomputed margin
// bounds and returns the write intents for cells that must be colored,
// in ascending row order.
//
// A column extreme whose relative frequency among the eligible cells
// exceeds MajorityPct is a majority value: it is excluded from its margin
// with a strict inequality on the extreme side, while the threshold side
// stays inclusive. When the margins overlap and a cell satisfies both,
// the upper margin claims it; the lower color is applied only to cells
// the upper margin did not take.
func Classify(col models.Column, colPos int, bounds models.MarginBounds, params Params) ([]models.WriteIntent, error) {
	if !params.Directive.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirective, params.Directive)
	}
	if params.Directive == models.DirectiveNone {
		return nil, nil
	}

	eligible := col.Eligible(params.IncludeZero)
	if len(eligible) == 0 {
		return nil, nil
	}

	max, maxCount := eligible[0], 0
	min, minCount := eligible[0], 0
	for _, v := range eligible {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	for _, v := range eligible {
		if v == max {
			maxCount++
		}
		if v == min {
			minCount++
		}
	}
	// Strictly above the threshold: with p=10 and ten distinct values each
	// extreme occupies exactly 10%, and that alone must not suppress it.
	share := params.MajorityPct / 100.0
	maxIsMajority := float64(maxCount)/float64(len(eligible)) > share
	minIsMajority := float64(minCount)/float64(len(eligible)) > share

	var intents []models.WriteIntent
	for row, cell := range col.Cells {
		if !cell.Valid {
			continue
		}
		v := cell.Value
		if !params.IncludeZero && v == 0 {
			continue
		}

		var color models.Color
		claimed := false
		if params.Directive.Upper() && inUpperMargin(v, max, bounds.Upper, maxIsMajority) {
			color = params.Colors.Upper
			claimed = true
		}
		if !claimed && params.Directive.Lower() && inLowerMargin(v, min, bounds.Lower, minIsMajority) {
			color = params.Colors.Lower
			claimed = true
		}
		if !claimed {
			continue
		}

		intents = append(intents, models.WriteIntent{
			Row:   params.Offset.Row + row,
			Col:   params.Offset.Col + colPos,
			Value: v,
			Color: color,
		})
	}

	return intents, nil
}

func inUpperMargin(v, max, threshold float64, majority bool) bool {
	if majority {
		return max > v && v >= threshold
	}
	return max >= v && v >= threshold
}

func inLowerMargin(v, min, threshold float64, majority bool) bool {
	if majority {
		return min < v && v <= threshold
	}
	return min <= v && v <= threshold
}
