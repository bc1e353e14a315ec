package excelmod

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/excelmod-go/pkg/excelmod/models"
)

// Instruction is a parsed instruction string: the shared colorization
// parameters plus the directive to apply to each targeted column.
type Instruction struct {
	Config    Config
	Directive models.Directive
}

// ParseInstructions parses a compact instruction string into structured
// parameters. The format is space-separated option/value pairs, order
// independent:
//
//	M 5.0    upper margin percentage
//	m 10.0   lower margin percentage
//	C g      upper margin color (r or g)
//	c r      lower margin color (r or g)
//	p 10.0   majority percentage
//	s b      sections to color: u (upper), l (lower), b (both), n (none)
//	o 1      row offset to start writing from
//	O 0      column offset to start writing from
//
// Example: "M 5.0 m 10.0 C g c r p 10.0 s b o 1 O 0".
//
// M, m and s are required; the rest default to DefaultConfig. Unknown
// options and malformed values are rejected rather than skipped.
func ParseInstructions(s string) (Instruction, error) {
	inst := Instruction{Config: DefaultConfig()}

	fields := strings.Fields(s)
	seen := map[string]bool{}
	for i := 0; i < len(fields); i += 2 {
		opt := fields[i]
		if i+1 >= len(fields) {
			return Instruction{}, fmt.Errorf("%w: option %q has no value", ErrInvalidInstruction, opt)
		}
		val := fields[i+1]
		if seen[opt] {
			return Instruction{}, fmt.Errorf("%w: option %q given twice", ErrInvalidInstruction, opt)
		}
		seen[opt] = true

		var err error
		switch opt {
		case "M":
			inst.Config.UpperPct, err = parsePercent(opt, val)
		case "m":
			inst.Config.LowerPct, err = parsePercent(opt, val)
		case "C":
			inst.Config.Colors.Upper, err = parseColor(opt, val)
		case "c":
			inst.Config.Colors.Lower, err = parseColor(opt, val)
		case "p":
			inst.Config.MajorityPct, err = parsePercent(opt, val)
		case "s":
			inst.Directive, err = parseSection(val)
		case "o":
			inst.Config.Offset.Row, err = parseOffset(opt, val)
		case "O":
			inst.Config.Offset.Col, err = parseOffset(opt, val)
		default:
			return Instruction{}, fmt.Errorf("%w: unknown option %q", ErrInvalidInstruction, opt)
		}
		if err != nil {
			return Instruction{}, err
		}
	}

	for _, required := range []string{"M", "m", "s"} {
		if !seen[required] {
			return Instruction{}, fmt.Errorf("%w: missing required option %q", ErrInvalidInstruction, required)
		}
	}
	if err := inst.Config.Validate(); err != nil {
		return Instruction{}, err
	}
	return inst, nil
}

func parsePercent(opt, val string) (float64, error) {
	pct, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: option %q: %q is not a number", ErrInvalidInstruction, opt, val)
	}
	return pct, nil
}

func parseColor(opt, val string) (models.Color, error) {
	switch val {
	case "r":
		return models.ColorRed, nil
	case "g":
		return models.ColorGreen, nil
	}
	return "", fmt.Errorf("%w: option %q: color %q is not one of r, g", ErrInvalidInstruction, opt, val)
}

func parseSection(val string) (models.Directive, error) {
	switch val {
	case "u":
		return models.DirectiveUpper, nil
	case "l":
		return models.DirectiveLower, nil
	case "b":
		return models.DirectiveBoth, nil
	case "n":
		return models.DirectiveNone, nil
	}
	return "", fmt.Errorf("%w: option \"s\": section %q is not one of u, l, b, n", ErrInvalidInstruction, val)
}

func parseOffset(opt, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: option %q: %q is not a non-negative integer", ErrInvalidInstruction, opt, val)
	}
	return n, nil
}
