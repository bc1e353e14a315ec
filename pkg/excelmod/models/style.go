package models

// Color identifies a highlight color from the fixed palette.
type Color string

const (
	// ColorRed highlights cells with the standard "bad" fill.
	ColorRed Color = "red"
	// ColorGreen highlights cells with the standard "good" fill.
	ColorGreen Color = "green"
)

// Valid reports whether the color is part of the palette.
func (c Color) Valid() bool {
	return c == ColorRed || c == ColorGreen
}

// Hex returns the background fill for the color. These are the classic
// Excel conditional-formatting fills (light red / light green).
func (c Color) Hex() string {
	if c == ColorRed {
		return "#FFC7CE"
	}
	return "#C6EFCE"
}

// ColorPair assigns a color to each margin of a column.
type ColorPair struct {
	// Upper is the color applied to cells in the upper margin.
	Upper Color `json:"upper"`
	// Lower is the color applied to cells in the lower margin.
	Lower Color `json:"lower"`
}

// Valid reports whether both colors are part of the palette.
func (p ColorPair) Valid() bool {
	return p.Upper.Valid() && p.Lower.Valid()
}

// Directive selects which margins of a column are eligible for coloring.
type Directive string

const (
	// DirectiveUpper colors only the upper margin.
	DirectiveUpper Directive = "upper"
	// DirectiveLower colors only the lower margin.
	DirectiveLower Directive = "lower"
	// DirectiveBoth colors both margins.
	DirectiveBoth Directive = "both"
	// DirectiveNone disables coloring for the column.
	DirectiveNone Directive = "none"
)

// Valid reports whether the directive is one of the known values.
func (d Directive) Valid() bool {
	switch d {
	case DirectiveUpper, DirectiveLower, DirectiveBoth, DirectiveNone:
		return true
	}
	return false
}

// Upper reports whether the directive makes the upper margin eligible.
func (d Directive) Upper() bool {
	return d == DirectiveUpper || d == DirectiveBoth
}

// Lower reports whether the directive makes the lower margin eligible.
func (d Directive) Lower() bool {
	return d == DirectiveLower || d == DirectiveBoth
}
