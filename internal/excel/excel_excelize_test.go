package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	"gotest.tools/v3/assert"
)

func workbookFixture(t *testing.T, sheets ...string) string {
	t.Helper()
	file := excelize.NewFile()
	defer file.Close()
	for _, sheet := range sheets {
		_, err := file.NewSheet(sheet)
		assert.NilError(t, err)
	}
	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	assert.NilError(t, file.SaveAs(path))
	return path
}

func TestValidateFileExtension(t *testing.T) {
	for _, path := range []string{"/tmp/a.xlsx", "/tmp/a.xlsm", "/tmp/a.xltx", "/tmp/a.xltm", "/tmp/a.XLSX"} {
		assert.NilError(t, ValidateFileExtension(path))
	}
	assert.ErrorContains(t, ValidateFileExtension("/tmp/a.csv"), "unsupported file extension")
	assert.ErrorContains(t, ValidateFileExtension("/tmp/a"), "unsupported file extension")
}

func TestOpenFile(t *testing.T) {
	t.Run("opens existing workbook", func(t *testing.T) {
		path := workbookFixture(t)
		workbook, release, err := OpenFile(path)
		assert.NilError(t, err)
		defer release()
		assert.Equal(t, workbook.GetBackendName(), "excelize")
	})

	t.Run("fails on missing file", func(t *testing.T) {
		_, _, err := OpenFile(filepath.Join(t.TempDir(), "missing.xlsx"))
		assert.Assert(t, err != nil)
	})

	t.Run("fails on unsupported extension", func(t *testing.T) {
		_, _, err := OpenFile("/tmp/data.csv")
		assert.ErrorContains(t, err, "unsupported file extension")
	})
}

func TestOpenFileOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.xlsx")
	workbook, release, err := OpenFileOrCreate(path)
	assert.NilError(t, err)
	defer release()
	assert.NilError(t, workbook.Save())

	_, err = os.Stat(path)
	assert.NilError(t, err)
}

func TestCreateFile(t *testing.T) {
	t.Run("creates workbook with requested sheets", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "created.xlsx")
		workbook, release, err := CreateFile(path, []string{"Data", "Summary"})
		assert.NilError(t, err)
		defer release()

		sheets, err := workbook.GetSheets()
		assert.NilError(t, err)
		names := make([]string, len(sheets))
		for i, sheet := range sheets {
			names[i], err = sheet.Name()
			assert.NilError(t, err)
		}
		assert.DeepEqual(t, names, []string{"Data", "Summary"})
	})

	t.Run("fails when file already exists", func(t *testing.T) {
		path := workbookFixture(t)
		_, _, err := CreateFile(path, []string{"Data"})
		assert.ErrorContains(t, err, "file already exists")
	})
}

func TestSheetLifecycle(t *testing.T) {
	path := workbookFixture(t)
	workbook, release, err := OpenFile(path)
	assert.NilError(t, err)
	defer release()

	t.Run("create", func(t *testing.T) {
		assert.NilError(t, workbook.CreateNewSheet("Extra"))
		_, err := workbook.FindSheet("Extra")
		assert.NilError(t, err)
	})

	t.Run("create duplicate fails", func(t *testing.T) {
		assert.ErrorContains(t, workbook.CreateNewSheet("Extra"), "sheet already exists")
	})

	t.Run("rename", func(t *testing.T) {
		assert.NilError(t, workbook.RenameSheet("Extra", "Renamed"))
		_, err := workbook.FindSheet("Renamed")
		assert.NilError(t, err)
		_, err = workbook.FindSheet("Extra")
		assert.ErrorContains(t, err, "sheet not found")
	})

	t.Run("rename to existing name fails", func(t *testing.T) {
		assert.ErrorContains(t, workbook.RenameSheet("Renamed", "Sheet1"), "sheet already exists")
	})

	t.Run("copy", func(t *testing.T) {
		assert.NilError(t, workbook.CopySheet("Renamed", "Copied"))
		_, err := workbook.FindSheet("Copied")
		assert.NilError(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		assert.NilError(t, workbook.DeleteSheet("Copied"))
		_, err := workbook.FindSheet("Copied")
		assert.ErrorContains(t, err, "sheet not found")
	})

	t.Run("delete missing sheet fails", func(t *testing.T) {
		assert.ErrorContains(t, workbook.DeleteSheet("Nope"), "sheet not found")
	})
}

func TestDeleteLastSheet(t *testing.T) {
	path := workbookFixture(t)
	workbook, release, err := OpenFile(path)
	assert.NilError(t, err)
	defer release()

	assert.ErrorContains(t, workbook.DeleteSheet("Sheet1"), "cannot delete the only sheet")
}

func TestCopySheetOrdering(t *testing.T) {
	path := workbookFixture(t)
	workbook, release, err := OpenFile(path)
	assert.NilError(t, err)
	defer release()

	assert.NilError(t, workbook.CreateNewSheet("Last"))
	assert.NilError(t, workbook.CopySheet("Sheet1", "Sheet1 (2)"))

	sheets, err := workbook.GetSheets()
	assert.NilError(t, err)
	names := make([]string, len(sheets))
	for i, sheet := range sheets {
		name, err := sheet.Name()
		assert.NilError(t, err)
		names[i] = name
		sheet.Release()
	}
	assert.DeepEqual(t, names, []string{"Sheet1", "Sheet1 (2)", "Last"})
}

func TestWorksheetValues(t *testing.T) {
	path := workbookFixture(t)
	workbook, release, err := OpenFile(path)
	assert.NilError(t, err)
	defer release()

	worksheet, err := workbook.FindSheet("Sheet1")
	assert.NilError(t, err)
	defer worksheet.Release()

	t.Run("set and get value", func(t *testing.T) {
		assert.NilError(t, worksheet.SetValue("A1", "hello"))
		value, err := worksheet.GetValue("A1")
		assert.NilError(t, err)
		assert.Equal(t, value, "hello")
	})

	t.Run("set and get formula", func(t *testing.T) {
		assert.NilError(t, worksheet.SetValue("B1", 1))
		assert.NilError(t, worksheet.SetValue("B2", 2))
		assert.NilError(t, worksheet.SetFormula("B3", "=SUM(B1:B2)"))
		formula, err := worksheet.GetFormula("B3")
		assert.NilError(t, err)
		assert.Equal(t, formula, "=SUM(B1:B2)")
		value, err := worksheet.GetValue("B3")
		assert.NilError(t, err)
		assert.Equal(t, value, "3")
	})

	t.Run("dimension grows with writes", func(t *testing.T) {
		assert.NilError(t, worksheet.SetValue("D5", "far"))
		dimension, err := worksheet.GetDimention()
		assert.NilError(t, err)
		assert.Equal(t, NormalizeRange(dimension), "A1:D5")
	})

	t.Run("clear cell", func(t *testing.T) {
		assert.NilError(t, worksheet.ClearCell("A1"))
		value, err := worksheet.GetValue("A1")
		assert.NilError(t, err)
		assert.Equal(t, value, "")
	})
}

func TestWorksheetMergeAndSearch(t *testing.T) {
	path := workbookFixture(t)
	workbook, release, err := OpenFile(path)
	assert.NilError(t, err)
	defer release()

	worksheet, err := workbook.FindSheet("Sheet1")
	assert.NilError(t, err)
	defer worksheet.Release()

	assert.NilError(t, worksheet.SetValue("A1", "title"))
	assert.NilError(t, worksheet.SetValue("A2", "alpha"))
	assert.NilError(t, worksheet.SetValue("B2", "beta"))

	t.Run("merge and list", func(t *testing.T) {
		assert.NilError(t, worksheet.MergeCells("A1:C1"))
		ranges, err := worksheet.GetMergedRanges()
		assert.NilError(t, err)
		assert.DeepEqual(t, ranges, []string{"A1:C1"})
	})

	t.Run("unmerge", func(t *testing.T) {
		assert.NilError(t, worksheet.UnmergeCells("A1:C1"))
		ranges, err := worksheet.GetMergedRanges()
		assert.NilError(t, err)
		assert.Equal(t, len(ranges), 0)
	})

	t.Run("exact search", func(t *testing.T) {
		cells, err := worksheet.Search("alpha", false)
		assert.NilError(t, err)
		assert.DeepEqual(t, cells, []string{"A2"})
	})

	t.Run("regex search", func(t *testing.T) {
		cells, err := worksheet.Search("^(alpha|beta)$", true)
		assert.NilError(t, err)
		assert.DeepEqual(t, cells, []string{"A2", "B2"})
	})
}

func TestAutoFitColumn(t *testing.T) {
	path := workbookFixture(t)
	workbook, release, err := OpenFile(path)
	assert.NilError(t, err)
	defer release()

	worksheet, err := workbook.FindSheet("Sheet1")
	assert.NilError(t, err)
	defer worksheet.Release()

	t.Run("fits longest value plus padding", func(t *testing.T) {
		assert.NilError(t, worksheet.SetValue("A1", "short"))
		assert.NilError(t, worksheet.SetValue("A2", "a longer value"))
		width, err := worksheet.AutoFitColumn("A")
		assert.NilError(t, err)
		assert.Equal(t, width, float64(len("a longer value")+2))
	})

	t.Run("caps width at maximum", func(t *testing.T) {
		long := make([]byte, 100)
		for i := range long {
			long[i] = 'x'
		}
		assert.NilError(t, worksheet.SetValue("B1", string(long)))
		width, err := worksheet.AutoFitColumn("B")
		assert.NilError(t, err)
		assert.Equal(t, width, float64(autoFitMaxWidth))
	})

	t.Run("rejects invalid column", func(t *testing.T) {
		_, err := worksheet.AutoFitColumn("42")
		assert.ErrorContains(t, err, "invalid column name")
	})
}

func TestUsedColumns(t *testing.T) {
	path := workbookFixture(t)
	workbook, release, err := OpenFile(path)
	assert.NilError(t, err)
	defer release()

	worksheet, err := workbook.FindSheet("Sheet1")
	assert.NilError(t, err)
	defer worksheet.Release()

	assert.NilError(t, worksheet.SetValue("A1", "a"))
	assert.NilError(t, worksheet.SetValue("C2", "c"))

	columns, err := worksheet.UsedColumns()
	assert.NilError(t, err)
	assert.DeepEqual(t, columns, []string{"A", "C"})
}

func TestWorksheetObjects(t *testing.T) {
	path := workbookFixture(t)
	workbook, release, err := OpenFile(path)
	assert.NilError(t, err)
	defer release()

	worksheet, err := workbook.FindSheet("Sheet1")
	assert.NilError(t, err)
	defer worksheet.Release()

	assert.NilError(t, worksheet.SetValue("A1", "name"))
	assert.NilError(t, worksheet.SetValue("B1", "count"))
	assert.NilError(t, worksheet.SetValue("A2", "first"))
	assert.NilError(t, worksheet.SetValue("B2", 1))
	assert.NilError(t, worksheet.SetValue("A3", "second"))
	assert.NilError(t, worksheet.SetValue("B3", 2))

	t.Run("add table", func(t *testing.T) {
		assert.NilError(t, worksheet.AddTable("A1:B3", "Items"))
		tables, err := worksheet.GetTables()
		assert.NilError(t, err)
		assert.Equal(t, len(tables), 1)
		assert.Equal(t, tables[0].Name, "Items")
		assert.Equal(t, tables[0].Range, "A1:B3")
	})

	t.Run("add chart", func(t *testing.T) {
		err := worksheet.AddChart("D2", &Chart{
			Type:  ChartTypeCol,
			Title: "Counts",
			Series: []ChartSeries{{
				Name:       "count",
				Categories: "Sheet1!$A$2:$A$3",
				Values:     "Sheet1!$B$2:$B$3",
			}},
			Legend: ChartLegendPositionBottom,
		})
		assert.NilError(t, err)
	})

	t.Run("unsupported chart type fails", func(t *testing.T) {
		err := worksheet.AddChart("D20", &Chart{Type: ChartType("sparkline")})
		assert.ErrorContains(t, err, "unsupported chart type")
	})

	t.Run("list data validation", func(t *testing.T) {
		err := worksheet.AddDataValidation(&DataValidationRule{
			Range:    "C2:C10",
			Type:     DataValidationTypeList,
			DropList: []string{"yes", "no"},
		})
		assert.NilError(t, err)
	})

	t.Run("numeric data validation", func(t *testing.T) {
		minimum := 1.0
		maximum := 100.0
		err := worksheet.AddDataValidation(&DataValidationRule{
			Range:        "D2:D10",
			Type:         DataValidationTypeWhole,
			Operator:     DataValidationOperatorBetween,
			Minimum:      &minimum,
			Maximum:      &maximum,
			InputTitle:   "Count",
			InputMessage: "Enter a value between 1 and 100",
		})
		assert.NilError(t, err)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := workbookFixture(t)
	workbook, release, err := OpenFile(path)
	assert.NilError(t, err)

	worksheet, err := workbook.FindSheet("Sheet1")
	assert.NilError(t, err)
	assert.NilError(t, worksheet.SetValue("A1", "persisted"))
	worksheet.Release()
	assert.NilError(t, workbook.Save())
	release()

	reopened, release, err := OpenFile(path)
	assert.NilError(t, err)
	defer release()
	worksheet, err = reopened.FindSheet("Sheet1")
	assert.NilError(t, err)
	defer worksheet.Release()
	value, err := worksheet.GetValue("A1")
	assert.NilError(t, err)
	assert.Equal(t, value, "persisted")
}

func TestCellStyleRoundTrip(t *testing.T) {
	path := workbookFixture(t)
	workbook, release, err := OpenFile(path)
	assert.NilError(t, err)
	defer release()

	worksheet, err := workbook.FindSheet("Sheet1")
	assert.NilError(t, err)
	defer worksheet.Release()

	bold := true
	color := "#FF0000"
	style := &CellStyle{
		Font: &FontStyle{Bold: &bold, Color: &color},
		Fill: &FillStyle{
			Type:    FillTypePattern,
			Pattern: FillPatternSolid,
			Color:   []string{"#FFFF00"},
		},
	}
	assert.NilError(t, worksheet.SetCellStyle("A1", style))

	got, err := worksheet.GetCellStyle("A1")
	assert.NilError(t, err)
	assert.Assert(t, got.Font != nil)
	assert.Assert(t, *got.Font.Bold)
	assert.Equal(t, *got.Font.Color, "#FF0000")
	assert.Assert(t, got.Fill != nil)
	assert.Equal(t, got.Fill.Pattern, FillPatternSolid)
}
