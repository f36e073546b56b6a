package xlsxadapter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

type xlsxGrid struct {
	f     *excelize.File
	sheet string
}

// OpenGrid reads a workbook and exposes its first worksheet as a Grid. The
// report always keeps its data on the first sheet; the name is returned for
// logging only.
func OpenGrid(r io.Reader) (Grid, string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("cannot open workbook: %w", err)
	}

	return NewGrid(f)
}

// NewGrid wraps the first worksheet of an already opened workbook.
func NewGrid(f *excelize.File) (Grid, string, error) {
	sheets := f.GetSheetList()
	if len(sheets) < 1 {
		return nil, "", fmt.Errorf("workbook has no sheets")
	}

	return &xlsxGrid{f: f, sheet: sheets[0]}, sheets[0], nil
}

func (g *xlsxGrid) Cell(row, col int) Cell {
	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return Cell{Kind: CellAbsent}
	}

	// The stored value, not the rendered one: a thousands-separator number
	// format would otherwise turn a counter cell into unparseable text.
	raw, err := g.f.GetCellValue(g.sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return Cell{Kind: CellAbsent}
	}

	kind, err := g.f.GetCellType(g.sheet, axis)
	if err != nil {
		return Cell{Kind: CellAbsent}
	}

	switch kind {
	case excelize.CellTypeBool:
		return Cell{Kind: CellBool, Bool: raw == "TRUE" || raw == "1"}
	case excelize.CellTypeError:
		return Cell{Kind: CellError, Text: raw}
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
		return Cell{Kind: CellText, Text: raw}
	}

	// Number cells and unset-type cells with content; excelize hands the
	// value back as a string either way.
	if raw == "" {
		return Cell{Kind: CellAbsent}
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Cell{Kind: CellInt, Int: n}
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Cell{Kind: CellFloat, Float: f}
	}

	return Cell{Kind: CellText, Text: raw}
}
