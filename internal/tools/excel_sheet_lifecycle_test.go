package tools

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestCreateSheetTool(t *testing.T) {
	path := workbookFixture(t)

	result, err := createSheet(path, "Extra")
	assert.NilError(t, err)
	var response CreateSheetResponse
	decodeResult(t, result, &response)
	assert.Equal(t, response.Status, "success")
	assert.DeepEqual(t, response.Sheets, []string{"Sheet1", "Extra"})

	t.Run("duplicate name fails", func(t *testing.T) {
		result, err := createSheet(path, "Extra")
		assert.NilError(t, err)
		assert.Assert(t, result.IsError)
	})
}

func TestDeleteSheetTool(t *testing.T) {
	path := workbookFixture(t, "Extra")

	result, err := deleteSheet(path, "Extra")
	assert.NilError(t, err)
	var response DeleteSheetResponse
	decodeResult(t, result, &response)
	assert.DeepEqual(t, response.RemainingSheets, []string{"Sheet1"})

	t.Run("last sheet cannot be deleted", func(t *testing.T) {
		result, err := deleteSheet(path, "Sheet1")
		assert.NilError(t, err)
		assert.Assert(t, result.IsError)
	})
}

func TestRenameSheetTool(t *testing.T) {
	path := workbookFixture(t, "Old")

	result, err := renameSheet(path, "Old", "New")
	assert.NilError(t, err)
	var response RenameSheetResponse
	decodeResult(t, result, &response)
	assert.DeepEqual(t, response.Sheets, []string{"Sheet1", "New"})

	t.Run("missing sheet fails", func(t *testing.T) {
		result, err := renameSheet(path, "Old", "Another")
		assert.NilError(t, err)
		assert.Assert(t, result.IsError)
	})
}

func TestCopySheetTool(t *testing.T) {
	path := workbookFixture(t)

	result, err := copySheet(path, "Sheet1", "Sheet1 copy")
	assert.NilError(t, err)
	var response CopySheetResponse
	decodeResult(t, result, &response)
	assert.Equal(t, response.Status, "success")
	assert.Equal(t, response.DstSheetName, "Sheet1 copy")

	t.Run("missing source fails", func(t *testing.T) {
		result, err := copySheet(path, "Nope", "Copy")
		assert.NilError(t, err)
		assert.Assert(t, result.IsError)
	})
}

func TestDescribeSheetsTool(t *testing.T) {
	path := workbookFixture(t, "Data")

	result, err := describeSheets(path)
	assert.NilError(t, err)
	var response DescribeSheetsResponse
	decodeResult(t, result, &response)
	assert.Equal(t, response.Backend, "excelize")
	assert.Equal(t, len(response.Sheets), 2)
	assert.Equal(t, response.Sheets[0].Name, "Sheet1")
	assert.Equal(t, response.Sheets[1].Name, "Data")
}

func TestWorkbookMetadataTool(t *testing.T) {
	path := workbookFixture(t, "Data")

	result, err := workbookMetadata(path, true)
	assert.NilError(t, err)
	var response WorkbookMetadataResponse
	decodeResult(t, result, &response)
	assert.Equal(t, response.SheetCount, 2)
	assert.DeepEqual(t, response.SheetNames, []string{"Sheet1", "Data"})
	assert.Equal(t, len(response.SheetsInfo), 2)
}
