// Package margin computes percentile margin bounds and classifies cells
// against them.
package margin

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/ukaji3/excelmod-go/pkg/excelmod/models"
)

// ErrInsufficientData indicates a column has no eligible values after
// missing/zero filtering, so bounds cannot be computed.
var ErrInsufficientData = errors.New("no eligible values in column")

// ErrInvalidDirective indicates an unknown formatting directive.
var ErrInvalidDirective = errors.New("invalid formatting directive")

// ComputeBounds returns the threshold values demarcating the upper and
// lower margins of a column. The upper threshold is the value at the
// (1 - upperPct/100) quantile of the eligible values, the lower threshold
// the value at the (lowerPct/100) quantile, both using linear
// interpolation between order statistics. upperPct=5 therefore yields the
// threshold separating the top 5% of values.
//
// Missing cells are always skipped; zero cells are skipped unless
// includeZero is true (zero usually means "no data" rather than a true
// low value, and including it skews the lower bound). The two margins may
// overlap when upperPct+lowerPct > 100; the classifier handles that.
func ComputeBounds(col models.Column, upperPct, lowerPct float64, includeZero bool) (models.MarginBounds, error) {
	if upperPct < 0 || upperPct > 100 {
		return models.MarginBounds{}, fmt.Errorf("upper percentage %v out of range [0, 100]", upperPct)
	}
	if lowerPct < 0 || lowerPct > 100 {
		return models.MarginBounds{}, fmt.Errorf("lower percentage %v out of range [0, 100]", lowerPct)
	}

	values := col.Eligible(includeZero)
	if len(values) == 0 {
		return models.MarginBounds{}, fmt.Errorf("column %q: %w", col.Name, ErrInsufficientData)
	}
	sort.Float64s(values)

	return models.MarginBounds{
		Upper: quantile(values, 1.0-upperPct/100.0),
		Lower: quantile(values, lowerPct/100.0),
	}, nil
}

// quantile returns the q-quantile of sorted values using linear
// interpolation between the two neighboring order statistics (the R-7
// method, matching pandas/numpy defaults).
func quantile(sorted []float64, q float64) float64 {
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	// Tied order statistics interpolate to themselves; skipping the
	// arithmetic keeps thresholds exact where cells compare against them
	// inclusively.
	if lo == hi || sorted[lo] == sorted[hi] {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
