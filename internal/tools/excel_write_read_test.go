package tools

import (
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/soralis/excel-mcp-server/internal/excel"
)

func TestWriteToSheetTool(t *testing.T) {
	t.Run("writes values and formulas", func(t *testing.T) {
		path := workbookFixture(t)
		values := [][]any{
			{"a", float64(1)},
			{"b", "=SUM(B1:B1)"},
		}
		result, err := writeSheet(path, "Sheet1", false, "A1:B2", values)
		assert.NilError(t, err)

		var response WriteToSheetResponse
		decodeResult(t, result, &response)
		assert.Equal(t, response.Status, "success")
		assert.Equal(t, response.WrittenRange, "A1:B2")
		assert.Equal(t, response.RowsWritten, 2)
		assert.Equal(t, response.ColumnsWritten, 2)
		assert.Assert(t, response.WroteFormula)
	})

	t.Run("creates file when missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fresh.xlsx")
		result, err := writeSheet(path, "Sheet1", false, "A1", [][]any{{"x"}})
		assert.NilError(t, err)
		assert.Assert(t, !result.IsError)
	})

	t.Run("creates sheet when requested", func(t *testing.T) {
		path := workbookFixture(t)
		result, err := writeSheet(path, "Fresh", true, "A1", [][]any{{"x"}})
		assert.NilError(t, err)
		assert.Assert(t, !result.IsError)
	})

	t.Run("rejects mismatched row count", func(t *testing.T) {
		path := workbookFixture(t)
		result, err := writeSheet(path, "Sheet1", false, "A1:B2", [][]any{{"only one row", "x"}})
		assert.NilError(t, err)
		assert.Assert(t, result.IsError)
	})

	t.Run("rejects mismatched column count", func(t *testing.T) {
		path := workbookFixture(t)
		result, err := writeSheet(path, "Sheet1", false, "A1:B1", [][]any{{"just one"}})
		assert.NilError(t, err)
		assert.Assert(t, result.IsError)
	})
}

func TestReadSheetTool(t *testing.T) {
	path := workbookFixture(t)
	_, err := writeSheet(path, "Sheet1", false, "A1:B2", [][]any{
		{"name", "count"},
		{"first", float64(1)},
	})
	assert.NilError(t, err)

	t.Run("reads default range", func(t *testing.T) {
		result, err := readSheet(path, "Sheet1", "", nil, false, false)
		assert.NilError(t, err)
		var response ReadSheetResponse
		decodeResult(t, result, &response)
		assert.Equal(t, response.ReadRange, "A1:B2")
		assert.Equal(t, response.Cells[0][0].Value, "name")
		assert.Equal(t, response.Cells[1][1].Value, "1")
		assert.Equal(t, response.NextRange, "")
		assert.Equal(t, len(response.RemainingRanges), 0)
	})

	t.Run("filters known paging ranges", func(t *testing.T) {
		result, err := readSheet(path, "Sheet1", "", []string{"A1:B2"}, false, false)
		assert.NilError(t, err)
		var response ReadSheetResponse
		decodeResult(t, result, &response)
		assert.Equal(t, len(response.RemainingRanges), 0)
	})

	t.Run("rejects range exceeding the paging limit", func(t *testing.T) {
		t.Setenv("EXCEL_MCP_PAGING_CELLS_LIMIT", "2")
		result, err := readSheet(path, "Sheet1", "A1:B2", nil, false, false)
		assert.NilError(t, err)
		assert.Assert(t, result.IsError)
	})

	t.Run("rejects range outside sheet dimensions", func(t *testing.T) {
		result, err := readSheet(path, "Sheet1", "A1:Z99", nil, false, false)
		assert.NilError(t, err)
		assert.Assert(t, result.IsError)
	})

	t.Run("missing sheet fails", func(t *testing.T) {
		result, err := readSheet(path, "Nope", "", nil, false, false)
		assert.NilError(t, err)
		assert.Assert(t, result.IsError)
	})
}

func TestReadCellsTool(t *testing.T) {
	path := workbookFixture(t)
	_, err := writeSheet(path, "Sheet1", false, "A1:A2", [][]any{
		{float64(1)},
		{"=A1*2"},
	})
	assert.NilError(t, err)

	result, err := readCells(path, "Sheet1", "A1:A2")
	assert.NilError(t, err)
	var response ReadCellsResponse
	decodeResult(t, result, &response)
	assert.Equal(t, response.CellCount, 2)
	assert.Equal(t, response.Cells[0].Address, "A1")
	assert.Equal(t, response.Cells[0].Value, "1")
	assert.Equal(t, response.Cells[1].Formula, "=A1*2")
}

func TestUpdateCellTool(t *testing.T) {
	path := workbookFixture(t)

	t.Run("writes plain value", func(t *testing.T) {
		result, err := updateCell(path, "Sheet1", "A1", "hello")
		assert.NilError(t, err)
		var response UpdateCellResponse
		decodeResult(t, result, &response)
		assert.Equal(t, response.Value, "hello")
	})

	t.Run("writes formula", func(t *testing.T) {
		_, err := updateCell(path, "Sheet1", "B1", "2")
		assert.NilError(t, err)
		result, err := updateCell(path, "Sheet1", "B2", "=B1*3")
		assert.NilError(t, err)
		var response UpdateCellResponse
		decodeResult(t, result, &response)
		assert.Equal(t, response.Value, "6")
	})

	t.Run("creates missing workbook and sheet", func(t *testing.T) {
		freshPath := filepath.Join(t.TempDir(), "fresh.xlsx")
		result, err := updateCell(freshPath, "Notes", "A1", "hello")
		assert.NilError(t, err)
		assert.Assert(t, !result.IsError)
	})
}

func TestWriteFormulaTool(t *testing.T) {
	path := workbookFixture(t)
	_, err := updateCell(path, "Sheet1", "A1", "5")
	assert.NilError(t, err)

	t.Run("applies valid formula", func(t *testing.T) {
		result, err := writeFormula(path, "Sheet1", "A2", "=A1*2")
		assert.NilError(t, err)
		var response WriteFormulaResponse
		decodeResult(t, result, &response)
		assert.Equal(t, response.Value, "10")
	})

	t.Run("rejects invalid formula before writing", func(t *testing.T) {
		result, err := writeFormula(path, "Sheet1", "A3", "SUM(A1)")
		assert.NilError(t, err)
		assert.Assert(t, result.IsError)
	})
}

func TestSearchValuesTool(t *testing.T) {
	path := workbookFixture(t)
	_, err := writeSheet(path, "Sheet1", false, "A1:A3", [][]any{
		{"alpha"}, {"beta"}, {"alphabet"},
	})
	assert.NilError(t, err)

	t.Run("exact match", func(t *testing.T) {
		result, err := searchValues(path, "Sheet1", "alpha", false)
		assert.NilError(t, err)
		var response SearchValuesResponse
		decodeResult(t, result, &response)
		assert.Equal(t, response.MatchCount, 1)
		assert.Equal(t, response.Matches[0].Address, "A1")
		assert.Equal(t, response.Matches[0].Row, 1)
		assert.Equal(t, response.Matches[0].Column, 1)
	})

	t.Run("regex match", func(t *testing.T) {
		result, err := searchValues(path, "Sheet1", "^alpha", true)
		assert.NilError(t, err)
		var response SearchValuesResponse
		decodeResult(t, result, &response)
		assert.Equal(t, response.MatchCount, 2)
	})
}

func TestClearRangeTool(t *testing.T) {
	path := workbookFixture(t)
	_, err := writeSheet(path, "Sheet1", false, "A1:B2", [][]any{
		{"a", "b"},
		{"c", "d"},
	})
	assert.NilError(t, err)

	result, err := clearRange(path, "Sheet1", "A1:B2")
	assert.NilError(t, err)
	var response ClearRangeResponse
	decodeResult(t, result, &response)
	assert.Equal(t, response.CellsCleared, 4)

	read, err := readCells(path, "Sheet1", "A1")
	assert.NilError(t, err)
	var readResponse ReadCellsResponse
	decodeResult(t, read, &readResponse)
	assert.Equal(t, readResponse.Cells[0].Value, "")
}

func TestCopyRangeTool(t *testing.T) {
	path := workbookFixture(t)
	_, err := writeSheet(path, "Sheet1", false, "A1:B2", [][]any{
		{"a", float64(1)},
		{"b", float64(2)},
	})
	assert.NilError(t, err)

	result, err := copyRange(path, "Sheet1", "A1:B2", "", "D1")
	assert.NilError(t, err)
	var response CopyRangeResponse
	decodeResult(t, result, &response)
	assert.Equal(t, response.DstRange, "D1:E2")
	assert.Equal(t, response.CellsCopied, 4)

	read, err := readCells(path, "Sheet1", "D1:E2")
	assert.NilError(t, err)
	var readResponse ReadCellsResponse
	decodeResult(t, read, &readResponse)
	assert.Equal(t, readResponse.Cells[0].Value, "a")
	assert.Equal(t, readResponse.Cells[3].Value, "2")

	t.Run("carries cell styles", func(t *testing.T) {
		bold := true
		styles := [][]*excel.CellStyle{
			{{Font: &excel.FontStyle{Bold: &bold}}},
		}
		_, err := formatRange(path, "Sheet1", "A1:A1", styles)
		assert.NilError(t, err)

		_, err = copyRange(path, "Sheet1", "A1:A1", "", "G1")
		assert.NilError(t, err)

		workbook, release, err := excel.OpenFile(path)
		assert.NilError(t, err)
		defer release()
		worksheet, err := workbook.FindSheet("Sheet1")
		assert.NilError(t, err)
		defer worksheet.Release()
		style, err := worksheet.GetCellStyle("G1")
		assert.NilError(t, err)
		assert.Assert(t, style.Font != nil && style.Font.Bold != nil && *style.Font.Bold)
	})
}
