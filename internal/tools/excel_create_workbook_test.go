package tools

import (
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func TestCreateWorkbook(t *testing.T) {
	t.Run("creates workbook with sheets", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.xlsx")
		result, err := createWorkbook(path, []string{"Data", "Summary"})
		assert.NilError(t, err)

		var response CreateWorkbookResponse
		decodeResult(t, result, &response)
		assert.Equal(t, response.Status, "success")
		assert.Equal(t, response.FilePath, path)
		assert.DeepEqual(t, response.SheetsCreated, []string{"Data", "Summary"})
	})

	t.Run("fails when file exists", func(t *testing.T) {
		path := workbookFixture(t)
		result, err := createWorkbook(path, []string{"Data"})
		assert.NilError(t, err)
		assert.Assert(t, result.IsError)
		assert.Assert(t, len(errorText(t, result)) > 0)
	})

	t.Run("rejects unsupported extension", func(t *testing.T) {
		result, err := createWorkbook(filepath.Join(t.TempDir(), "report.csv"), []string{"Data"})
		assert.NilError(t, err)
		assert.Assert(t, result.IsError)
	})
}
