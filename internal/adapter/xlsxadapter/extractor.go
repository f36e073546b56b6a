package xlsxadapter

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mskmysht/covid-treatment-sickbed/internal/config"
	"github.com/mskmysht/covid-treatment-sickbed/internal/entity"
	"github.com/mskmysht/covid-treatment-sickbed/internal/parser"
)

const (
	fieldPrefecture          = "prefecture"
	fieldPhase               = "phase"
	fieldInpatientTotal      = "inpatient total"
	fieldInpatientDedicated  = "inpatient dedicated"
	fieldInpatientExtra      = "inpatient extra"
	fieldAvailableOrAssigned = "available or assigned bed"
	fieldGuaranteed          = "guaranteed bed"
	fieldExtraGuaranteed     = "extra guaranteed bed"
)

type Extractor struct {
	layout *config.Layout
	log    *slog.Logger
}

func NewExtractor(layout *config.Layout, log *slog.Logger) *Extractor {
	return &Extractor{
		layout: layout,
		log:    log.With(slog.String("item", "Extractor")),
	}
}

// Extract reads every row of the configured range, in row order. The first
// failing cell aborts the whole pass; its error names the row, column and
// field so the cell can be found in the source document.
func (e *Extractor) Extract(grid Grid) ([]*entity.Record, error) {
	records := make([]*entity.Record, 0, e.layout.EndRow-e.layout.StartRow+1)
	for row := e.layout.StartRow; row <= e.layout.EndRow; row++ {
		record, err := e.readRecord(grid, row)
		if err != nil {
			e.log.Error("Cannot read row", slog.Int("row", row), slog.Any("error", err))

			return nil, fmt.Errorf("cannot read row %d: %w", row, err)
		}

		records = append(records, record)
	}

	return records, nil
}

func (e *Extractor) readRecord(grid Grid, row int) (*entity.Record, error) {
	prefecture, err := e.readPrefecture(grid, row)
	if err != nil {
		return nil, err
	}

	rawPhase, err := textCell(grid, row, e.layout.PhaseCol, fieldPhase)
	if err != nil {
		return nil, err
	}

	phase, err := parser.ParsePhase(rawPhase)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s cell: %w", fieldPhase, err)
	}

	total, err := countCell(grid, row, e.layout.InpatientTotalCol, fieldInpatientTotal)
	if err != nil {
		return nil, err
	}

	dedicated, err := countCell(grid, row, e.layout.InpatientDedicatedCol, fieldInpatientDedicated)
	if err != nil {
		return nil, err
	}

	extra, err := countCell(grid, row, e.layout.InpatientExtraCol, fieldInpatientExtra)
	if err != nil {
		return nil, err
	}

	availableOrAssigned, err := countCell(grid, row, e.layout.AvailableOrAssignedCol, fieldAvailableOrAssigned)
	if err != nil {
		return nil, err
	}

	guaranteed, err := countCell(grid, row, e.layout.GuaranteedCol, fieldGuaranteed)
	if err != nil {
		return nil, err
	}

	extraGuaranteed, err := countCell(grid, row, e.layout.ExtraGuaranteedCol, fieldExtraGuaranteed)
	if err != nil {
		return nil, err
	}

	return &entity.Record{
		Prefecture: prefecture,
		Phase:      phase,
		InpatientCount: entity.PatientCount{
			Total:     total,
			Dedicated: dedicated,
			Extra:     extra,
		},
		DedicatedBedCount: entity.ResourceCount{
			AvailableOrAssigned: availableOrAssigned,
			Guaranteed:          guaranteed,
			ExtraGuaranteed:     extraGuaranteed,
		},
	}, nil
}

// The prefecture cell is "<code> <name>", e.g. "13 東京都".
func (e *Extractor) readPrefecture(grid Grid, row int) (entity.Prefecture, error) {
	raw, err := textCell(grid, row, e.layout.PrefectureCol, fieldPrefecture)
	if err != nil {
		return entity.Prefecture{}, err
	}

	code, name, found := strings.Cut(raw, " ")
	if !found {
		return entity.Prefecture{}, fmt.Errorf("cannot split %s cell %q in row %d", fieldPrefecture, raw, row)
	}

	return entity.Prefecture{
		Code: strings.TrimSpace(code),
		Name: strings.TrimSpace(name),
	}, nil
}

func textCell(grid Grid, row, col int, field string) (string, error) {
	switch c := grid.Cell(row, col); c.Kind {
	case CellText:
		return c.Text, nil
	case CellAbsent:
		return "", &CellMissingError{Row: row, Col: col, Field: field}
	default:
		return "", &CellTypeError{Row: row, Col: col, Field: field, Kind: c.Kind}
	}
}

// countCell coerces a counter cell to an unsigned integer. Floats truncate,
// as the source coerced them; anything but a number is a typed failure.
func countCell(grid Grid, row, col int, field string) (uint32, error) {
	switch c := grid.Cell(row, col); c.Kind {
	case CellInt:
		return uint32(c.Int), nil
	case CellFloat:
		return uint32(c.Float), nil
	case CellAbsent:
		return 0, &CellMissingError{Row: row, Col: col, Field: field}
	default:
		return 0, &CellTypeError{Row: row, Col: col, Field: field, Kind: c.Kind}
	}
}
