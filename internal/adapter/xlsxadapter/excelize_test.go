package xlsxadapter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mskmysht/covid-treatment-sickbed/internal/config"
	"github.com/mskmysht/covid-treatment-sickbed/internal/entity"
)

func TestXlsxGridCellKinds(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellStr("Sheet1", "A1", "01 北海道"))
	require.NoError(t, f.SetCellInt("Sheet1", "B1", 3066))
	require.NoError(t, f.SetCellFloat("Sheet1", "C1", 225.7, 1, 64))
	require.NoError(t, f.SetCellBool("Sheet1", "D1", true))

	grid, sheet, err := NewGrid(f)
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", sheet)

	c := grid.Cell(0, 0)
	assert.Equal(t, CellText, c.Kind)
	assert.Equal(t, "01 北海道", c.Text)

	c = grid.Cell(0, 1)
	assert.Equal(t, CellInt, c.Kind)
	assert.Equal(t, int64(3066), c.Int)

	c = grid.Cell(0, 2)
	assert.Equal(t, CellFloat, c.Kind)
	assert.InDelta(t, 225.7, c.Float, 0.01)

	c = grid.Cell(0, 3)
	assert.Equal(t, CellBool, c.Kind)
	assert.True(t, c.Bool)

	// Far outside the populated range.
	assert.Equal(t, CellAbsent, grid.Cell(100, 100).Kind)
	assert.Equal(t, CellAbsent, grid.Cell(0, 4).Kind)
}

func TestXlsxGridFormattedNumber(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellInt("Sheet1", "A1", 3066))
	style, err := f.NewStyle(&excelize.Style{NumFmt: 3}) // #,##0
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "A1", "A1", style))

	grid, _, err := NewGrid(f)
	require.NoError(t, err)

	// The applied format renders "3,066"; classification must look at the
	// stored value and still see an integer.
	c := grid.Cell(0, 0)
	assert.Equal(t, CellInt, c.Kind)
	assert.Equal(t, int64(3066), c.Int)
}

// Round-trip through a real workbook: write a report-shaped sheet with
// excelize, read it back through the extractor.
func TestExtractFromWorkbook(t *testing.T) {
	layout := config.Default().Layout
	layout.StartRow = 8
	layout.EndRow = 9

	f := excelize.NewFile()

	write := func(row int, prefecture, phase string, counts [6]int64) {
		axis := func(col int) string {
			name, err := excelize.CoordinatesToCellName(col+1, row+1)
			require.NoError(t, err)
			return name
		}
		require.NoError(t, f.SetCellStr("Sheet1", axis(layout.PrefectureCol), prefecture))
		require.NoError(t, f.SetCellStr("Sheet1", axis(layout.PhaseCol), phase))
		cols := []int{
			layout.InpatientTotalCol, layout.InpatientDedicatedCol, layout.InpatientExtraCol,
			layout.AvailableOrAssignedCol, layout.GuaranteedCol, layout.ExtraGuaranteedCol,
		}
		for i, col := range cols {
			require.NoError(t, f.SetCellInt("Sheet1", axis(col), int(counts[i])))
		}
	}

	write(8, "01 北海道", "２／３", [6]int64{1483, 1323, 109, 1986, 2269, 109})
	write(9, "02 青森県", "Ⅱ／Ⅲ", [6]int64{328, 265, 0, 450, 450, 0})

	// Counter columns in the published workbook carry a thousands-separator
	// format; extraction must not care.
	style, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "C9", "I10", style))

	var buf bytes.Buffer
	_, err = f.WriteTo(&buf)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	grid, sheet, err := OpenGrid(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", sheet)

	records, err := NewExtractor(&layout, testLogger()).Extract(grid)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "01", records[0].Prefecture.Code)
	assert.Equal(t, entity.PhaseModeNormal, records[0].Phase.Mode)
	assert.Equal(t, uint32(1483), records[0].InpatientCount.Total)

	assert.Equal(t, "02", records[1].Prefecture.Code)
	assert.Equal(t, entity.PhaseModeEmergency, records[1].Phase.Mode)
	assert.Equal(t, uint8(2), records[1].Phase.Current)
	assert.Equal(t, uint8(3), records[1].Phase.Maximum)
}
