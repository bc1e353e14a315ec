package excelmod

import (
	"errors"
	"sort"

	"github.com/ukaji3/excelmod-go/pkg/excelmod/margin"
	"github.com/ukaji3/excelmod-go/pkg/excelmod/models"
)

// Sink receives resolved cell colors. Implementations own the style
// representation; the library only deals in palette colors and 0-based
// coordinates.
type Sink interface {
	// RegisterStyle returns an opaque style handle for a color.
	// Registering the same color twice may return the same handle.
	RegisterStyle(color models.Color) (int, error)
	// WriteCell rewrites the cell at (row, col) with its value and style.
	WriteCell(row, col int, value float64, styleID int) error
}

// Plan computes the write intents for every directed column of a sheet
// without touching any workbook. Columns are processed in sheet order and
// intents within a column are emitted in ascending row order, so output
// is deterministic for identical inputs.
//
// Per-column failures (unknown column, insufficient data, invalid
// directive) do not abort the remaining columns; they are joined into the
// returned error alongside any intents that were produced.
func Plan(sheet models.Sheet, directives map[string]models.Directive, cfg Config) ([]models.WriteIntent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var intents []models.WriteIntent
	var errs []error
	for _, name := range orderedColumns(sheet, directives) {
		colIntents, err := planColumn(sheet, name, directives[name], cfg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		intents = append(intents, colIntents...)
	}
	return intents, errors.Join(errs...)
}

// Colorize computes and applies margin coloring for every directed column
// of a sheet. Intents are streamed to the sink one column at a time, so a
// large sheet never materializes its full intent list. Per-column
// failures are collected and joined; the remaining columns continue.
func Colorize(sheet models.Sheet, directives map[string]models.Directive, cfg Config, sink Sink) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	styles := map[models.Color]int{}
	var errs []error
	for _, name := range orderedColumns(sheet, directives) {
		intents, err := planColumn(sheet, name, directives[name], cfg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, intent := range intents {
			styleID, ok := styles[intent.Color]
			if !ok {
				styleID, err = sink.RegisterStyle(intent.Color)
				if err != nil {
					return errors.Join(append(errs, err)...)
				}
				styles[intent.Color] = styleID
			}
			if err := sink.WriteCell(intent.Row, intent.Col, intent.Value, styleID); err != nil {
				return errors.Join(append(errs, err)...)
			}
		}
	}
	return errors.Join(errs...)
}

// ColorizeAll applies one directive to every column of the sheet except
// those listed in exclude (e.g. ID columns).
func ColorizeAll(sheet models.Sheet, directive models.Directive, cfg Config, sink Sink, exclude []string) error {
	excluded := map[string]bool{}
	for _, name := range exclude {
		excluded[name] = true
	}

	directives := map[string]models.Directive{}
	for _, col := range sheet.Columns {
		if !excluded[col.Name] {
			directives[col.Name] = directive
		}
	}
	return Colorize(sheet, directives, cfg, sink)
}

// planColumn computes bounds and classifies a single column.
func planColumn(sheet models.Sheet, name string, directive models.Directive, cfg Config) ([]models.WriteIntent, error) {
	col, ok := sheet.Column(name)
	if !ok {
		return nil, NewColumnError(sheet.Name, name, ErrUnknownColumn)
	}
	pos, _ := sheet.ColumnPosition(name)

	bounds, err := margin.ComputeBounds(col, cfg.UpperPct, cfg.LowerPct, cfg.IncludeZero)
	if err != nil {
		return nil, NewColumnError(sheet.Name, name, err)
	}

	intents, err := margin.Classify(col, pos, bounds, cfg.params(directive))
	if err != nil {
		return nil, NewColumnError(sheet.Name, name, err)
	}
	return intents, nil
}

// orderedColumns returns the directed column names in sheet order, with
// names absent from the sheet appended alphabetically so their failures
// surface deterministically.
func orderedColumns(sheet models.Sheet, directives map[string]models.Directive) []string {
	var names []string
	seen := map[string]bool{}
	for _, col := range sheet.Columns {
		if _, ok := directives[col.Name]; ok {
			names = append(names, col.Name)
			seen[col.Name] = true
		}
	}

	var missing []string
	for name := range directives {
		if !seen[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return append(names, missing...)
}
