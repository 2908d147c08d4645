package excel

import (
	"testing"

	"github.com/xuri/excelize/v2"
	"gotest.tools/v3/assert"
)

func pagingFixture(t *testing.T, rows, cols int) *ExcelizeWorksheet {
	t.Helper()
	file := excelize.NewFile()
	t.Cleanup(func() { file.Close() })
	sheet := file.GetSheetName(0)
	for row := 1; row <= rows; row++ {
		for col := 1; col <= cols; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			assert.NilError(t, err)
			assert.NilError(t, file.SetCellValue(sheet, cell, row*col))
		}
	}
	endCell, err := excelize.CoordinatesToCellName(cols, rows)
	assert.NilError(t, err)
	assert.NilError(t, file.SetSheetDimension(sheet, "A1:"+endCell))
	return &ExcelizeWorksheet{file: file, sheetName: sheet}
}

func TestCalculatePagingRanges(t *testing.T) {
	t.Run("single page when data fits", func(t *testing.T) {
		worksheet := pagingFixture(t, 10, 3)
		strategy, err := NewExcelizeFixedSizePagingStrategy(100, worksheet)
		assert.NilError(t, err)
		ranges := strategy.CalculatePagingRanges()
		assert.DeepEqual(t, ranges, []string{"A1:C10"})
	})

	t.Run("splits into row-aligned pages", func(t *testing.T) {
		worksheet := pagingFixture(t, 10, 3)
		// 9 cells per page = 3 rows of 3 columns
		strategy, err := NewExcelizeFixedSizePagingStrategy(9, worksheet)
		assert.NilError(t, err)
		ranges := strategy.CalculatePagingRanges()
		assert.DeepEqual(t, ranges, []string{"A1:C3", "A4:C6", "A7:C9", "A10:C10"})
	})

	t.Run("page size below column count still yields one row per page", func(t *testing.T) {
		worksheet := pagingFixture(t, 3, 5)
		strategy, err := NewExcelizeFixedSizePagingStrategy(2, worksheet)
		assert.NilError(t, err)
		ranges := strategy.CalculatePagingRanges()
		assert.DeepEqual(t, ranges, []string{"A1:E1", "A2:E2", "A3:E3"})
	})
}

func TestValidatePagingRange(t *testing.T) {
	worksheet := pagingFixture(t, 10, 3)
	strategy, err := NewExcelizeFixedSizePagingStrategy(9, worksheet)
	assert.NilError(t, err)

	t.Run("accepts range within dimension", func(t *testing.T) {
		assert.NilError(t, strategy.ValidatePagingRange("A1:C3"))
	})

	t.Run("rejects range outside dimension", func(t *testing.T) {
		err := strategy.ValidatePagingRange("A1:D3")
		assert.ErrorContains(t, err, "outside sheet dimensions")
	})

	t.Run("rejects oversized range", func(t *testing.T) {
		err := strategy.ValidatePagingRange("A1:C4")
		assert.ErrorContains(t, err, "exceeding page size")
	})
}

func TestPagingRangeService(t *testing.T) {
	worksheet := pagingFixture(t, 10, 3)
	strategy, err := NewExcelizeFixedSizePagingStrategy(9, worksheet)
	assert.NilError(t, err)
	service := NewPagingRangeService(strategy)
	allRanges := service.GetPagingRanges()

	t.Run("finds next range", func(t *testing.T) {
		assert.Equal(t, service.FindNextRange(allRanges, "A1:C3"), "A4:C6")
	})

	t.Run("next range tolerates absolute markers", func(t *testing.T) {
		assert.Equal(t, service.FindNextRange(allRanges, "$A$1:$C$3"), "A4:C6")
	})

	t.Run("last page has no next range", func(t *testing.T) {
		assert.Equal(t, service.FindNextRange(allRanges, "A10:C10"), "")
	})

	t.Run("unknown range has no next range", func(t *testing.T) {
		assert.Equal(t, service.FindNextRange(allRanges, "Z1:Z2"), "")
	})

	t.Run("filters known ranges", func(t *testing.T) {
		remaining := service.FilterRemainingPagingRanges(allRanges, []string{"A1:C3", "A4:C6"})
		assert.DeepEqual(t, remaining, []string{"A7:C9", "A10:C10"})
	})
}
