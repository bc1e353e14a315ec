package excelmod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/excelmod-go/pkg/excelmod/models"
)

func TestParseInstructions(t *testing.T) {
	t.Parallel()

	inst, err := ParseInstructions("M 5.0 m 10.0 C g c r p 10.0 s b o 1 O 0")
	require.NoError(t, err)

	assert.Equal(t, 5.0, inst.Config.UpperPct)
	assert.Equal(t, 10.0, inst.Config.LowerPct)
	assert.Equal(t, models.ColorGreen, inst.Config.Colors.Upper)
	assert.Equal(t, models.ColorRed, inst.Config.Colors.Lower)
	assert.Equal(t, 10.0, inst.Config.MajorityPct)
	assert.Equal(t, models.DirectiveBoth, inst.Directive)
	assert.Equal(t, models.Offset{Row: 1, Col: 0}, inst.Config.Offset)
}

func TestParseInstructionsOrderIndependent(t *testing.T) {
	t.Parallel()

	a, err := ParseInstructions("M 20 m 20 c r C g p 90 s b o 1 O 0")
	require.NoError(t, err)
	b, err := ParseInstructions("s b p 90 O 0 o 1 C g c r m 20 M 20")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestParseInstructionsDefaults(t *testing.T) {
	t.Parallel()

	inst, err := ParseInstructions("M 5 m 5 s u")
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.MajorityPct, inst.Config.MajorityPct)
	assert.Equal(t, def.Colors, inst.Config.Colors)
	assert.Equal(t, models.Offset{}, inst.Config.Offset)
	assert.False(t, inst.Config.IncludeZero)
	assert.Equal(t, models.DirectiveUpper, inst.Directive)
}

func TestParseInstructionsRejectsMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"unknown option", "M 5 m 5 s b Z 3"},
		{"dangling option", "M 5 m 5 s"},
		{"duplicate option", "M 5 M 6 m 5 s b"},
		{"bad number", "M five m 5 s b"},
		{"bad color", "M 5 m 5 s b C blue"},
		{"bad section", "M 5 m 5 s x"},
		{"negative offset", "M 5 m 5 s b o -1"},
		{"missing upper margin", "m 5 s b"},
		{"missing lower margin", "M 5 s b"},
		{"missing section", "M 5 m 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseInstructions(tt.input)
			assert.ErrorIs(t, err, ErrInvalidInstruction)
		})
	}
}

func TestParseInstructionsValidatesPercent(t *testing.T) {
	t.Parallel()

	_, err := ParseInstructions("M 5 m 120 s b")
	assert.ErrorIs(t, err, ErrInvalidPercent)
}
