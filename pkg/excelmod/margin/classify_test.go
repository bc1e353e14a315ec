package margin

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ukaji3/excelmod-go/pkg/excelmod/models"
)

func upperParams(majorityPct float64) Params {
	p := DefaultParams()
	p.Directive = models.DirectiveUpper
	p.MajorityPct = majorityPct
	return p
}

func TestClassifyMajorityExclusion(t *testing.T) {
	// 5 occupies 4/7 of the column (~57%).
	col := numColumn("score", 5, 5, 5, 5, 1, 2, 3)
	bounds, err := ComputeBounds(col, 10, 0, false)
	if err != nil {
		t.Fatalf("ComputeBounds failed: %v", err)
	}
	if bounds.Upper != 5 {
		t.Fatalf("Upper = %v, expected 5", bounds.Upper)
	}

	// At 50% the maximum is a majority value and must not be colored.
	intents, err := Classify(col, 0, bounds, upperParams(50))
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(intents) != 0 {
		t.Errorf("expected no intents for majority extreme, got %v", intents)
	}

	// At 60% it no longer counts as a majority and is colored.
	intents, err = Classify(col, 0, bounds, upperParams(60))
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(intents) != 4 {
		t.Fatalf("expected 4 intents, got %d", len(intents))
	}
	for i, intent := range intents {
		if intent.Row != i || intent.Value != 5 {
			t.Errorf("intent %d = %+v, expected row %d value 5", i, intent, i)
		}
	}
}

func TestClassifyMinorityMajorityExclusion(t *testing.T) {
	col := numColumn("score", 1, 1, 1, 1, 8, 9, 10)
	bounds, err := ComputeBounds(col, 0, 10, false)
	if err != nil {
		t.Fatalf("ComputeBounds failed: %v", err)
	}

	params := DefaultParams()
	params.Directive = models.DirectiveLower
	params.MajorityPct = 50

	intents, err := Classify(col, 0, bounds, params)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(intents) != 0 {
		t.Errorf("expected no intents for majority minimum, got %v", intents)
	}
}

func TestClassifyOverlapUpperWins(t *testing.T) {
	col := numColumn("score", 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	bounds, err := ComputeBounds(col, 60, 60, false)
	if err != nil {
		t.Fatalf("ComputeBounds failed: %v", err)
	}

	intents, err := Classify(col, 0, bounds, DefaultParams())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	// Every cell lands in at least one margin; 5 and 6 land in both and
	// must take the upper color, never both or neither.
	if len(intents) != 10 {
		t.Fatalf("expected 10 intents, got %d", len(intents))
	}
	for _, intent := range intents {
		want := models.ColorRed
		if intent.Value >= bounds.Upper {
			want = models.ColorGreen
		}
		if intent.Color != want {
			t.Errorf("value %v colored %s, expected %s", intent.Value, intent.Color, want)
		}
	}
}

func TestClassifyMissingPassthrough(t *testing.T) {
	col := models.Column{
		Name: "score",
		Cells: []models.Cell{
			models.Num(10),
			models.Num(90),
			models.Num(100),
			models.Missing(),
			models.Num(95),
		},
	}
	bounds := models.MarginBounds{Upper: 91, Lower: 19}

	intents, err := Classify(col, 0, bounds, DefaultParams())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	for _, intent := range intents {
		if intent.Row == 3 {
			t.Errorf("missing cell at row 3 must not produce an intent: %+v", intent)
		}
	}
}

func TestClassifySkipsZeros(t *testing.T) {
	col := numColumn("score", 0, 10, 20, 30)
	bounds := models.MarginBounds{Upper: 30, Lower: 10}

	intents, err := Classify(col, 0, bounds, DefaultParams())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	for _, intent := range intents {
		if intent.Value == 0 {
			t.Errorf("zero cell must not be colored: %+v", intent)
		}
	}
}

func TestClassifyAppliesOffset(t *testing.T) {
	col := numColumn("score", 10, 100)
	bounds := models.MarginBounds{Upper: 91, Lower: 19}

	params := DefaultParams()
	params.Offset = models.Offset{Row: 1, Col: 2}

	intents, err := Classify(col, 3, bounds, params)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(intents) != 2 {
		t.Fatalf("expected 2 intents, got %d", len(intents))
	}
	if intents[0].Row != 1 || intents[0].Col != 5 {
		t.Errorf("intent 0 at (%d,%d), expected (1,5)", intents[0].Row, intents[0].Col)
	}
	if intents[1].Row != 2 || intents[1].Col != 5 {
		t.Errorf("intent 1 at (%d,%d), expected (2,5)", intents[1].Row, intents[1].Col)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	col := numColumn("score", 3, 1, 4, 1, 5, 9, 2, 6)
	bounds, err := ComputeBounds(col, 25, 25, false)
	if err != nil {
		t.Fatalf("ComputeBounds failed: %v", err)
	}

	first, err := Classify(col, 0, bounds, DefaultParams())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	second, err := Classify(col, 0, bounds, DefaultParams())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("classification is not order-stable:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestClassifyDirectives(t *testing.T) {
	col := numColumn("score", 10, 20, 30, 40, 50, 60, 70, 80, 90, 100)
	bounds := models.MarginBounds{Upper: 91, Lower: 19}

	tests := []struct {
		directive  models.Directive
		wantColors []models.Color
	}{
		{models.DirectiveUpper, []models.Color{models.ColorGreen}},
		{models.DirectiveLower, []models.Color{models.ColorRed}},
		{models.DirectiveBoth, []models.Color{models.ColorRed, models.ColorGreen}},
		{models.DirectiveNone, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.directive), func(t *testing.T) {
			params := DefaultParams()
			params.Directive = tt.directive

			intents, err := Classify(col, 0, bounds, params)
			if err != nil {
				t.Fatalf("Classify failed: %v", err)
			}
			var colors []models.Color
			for _, intent := range intents {
				colors = append(colors, intent.Color)
			}
			if !reflect.DeepEqual(colors, tt.wantColors) {
				t.Errorf("colors = %v, expected %v", colors, tt.wantColors)
			}
		})
	}
}

func TestClassifyInvalidDirective(t *testing.T) {
	col := numColumn("score", 1, 2, 3)
	params := DefaultParams()
	params.Directive = "sideways"

	_, err := Classify(col, 0, models.MarginBounds{Upper: 3, Lower: 1}, params)
	if !errors.Is(err, ErrInvalidDirective) {
		t.Errorf("expected ErrInvalidDirective, got %v", err)
	}
}
