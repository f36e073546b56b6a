// Package xlsxadapter reads prefecture records out of the fixed grid of the
// treatment/sickbed report workbook.
package xlsxadapter

import "fmt"

type CellKind int

const (
	CellAbsent CellKind = iota
	CellText
	CellInt
	CellFloat
	CellBool
	CellError
)

func (k CellKind) String() string {
	return [...]string{"Absent", "Text", "Int", "Float", "Bool", "Error"}[k]
}

// Cell is one loosely-typed spreadsheet value. Only the field matching Kind
// is meaningful.
type Cell struct {
	Kind  CellKind
	Text  string
	Int   int64
	Float float64
	Bool  bool
}

// Grid is a zero-based (row, column) view over one worksheet. Cells outside
// the populated range are CellAbsent, never an error.
type Grid interface {
	Cell(row, col int) Cell
}

// CellMissingError marks a cell the layout requires but the grid does not
// have. Row and column locate it in the source document.
type CellMissingError struct {
	Row   int
	Col   int
	Field string
}

func (e *CellMissingError) Error() string {
	return fmt.Sprintf("no %s cell in row %d, column %d", e.Field, e.Row, e.Col)
}

// CellTypeError marks a cell whose type does not fit its column role.
type CellTypeError struct {
	Row   int
	Col   int
	Field string
	Kind  CellKind
}

func (e *CellTypeError) Error() string {
	return fmt.Sprintf("unexpected %s value for %s in row %d, column %d", e.Kind, e.Field, e.Row, e.Col)
}
