package tools

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/xuri/excelize/v2"
	"gotest.tools/v3/assert"

	"github.com/soralis/excel-mcp-server/internal/excel"
)

// workbookFixture writes a workbook with the given sheets to a temp dir
// and returns its absolute path.
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

// decodeResult unmarshals the JSON payload of a successful tool result.
func decodeResult(t *testing.T, result *mcp.CallToolResult, v any) {
	t.Helper()
	assert.Assert(t, result != nil)
	assert.Assert(t, !result.IsError)
	assert.Equal(t, len(result.Content), 1)
	text, ok := result.Content[0].(mcp.TextContent)
	assert.Assert(t, ok)
	assert.NilError(t, json.Unmarshal([]byte(text.Text), v))
}

// errorText returns the message of an error tool result.
func errorText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	assert.Assert(t, result != nil)
	assert.Assert(t, result.IsError)
	text, ok := result.Content[0].(mcp.TextContent)
	assert.Assert(t, ok)
	return text.Text
}

func TestStyleRegistry(t *testing.T) {
	bold := true
	boldStyle := &excel.CellStyle{Font: &excel.FontStyle{Bold: &bold}}
	italic := true
	italicStyle := &excel.CellStyle{Font: &excel.FontStyle{Italic: &italic}}

	t.Run("deduplicates identical styles", func(t *testing.T) {
		registry := NewStyleRegistry()
		first := registry.RegisterStyle(boldStyle)
		second := registry.RegisterStyle(boldStyle)
		assert.Equal(t, first, "s1")
		assert.Equal(t, second, "s1")
	})

	t.Run("distinct styles get distinct IDs", func(t *testing.T) {
		registry := NewStyleRegistry()
		assert.Equal(t, registry.RegisterStyle(boldStyle), "s1")
		assert.Equal(t, registry.RegisterStyle(italicStyle), "s2")
	})

	t.Run("empty style registers as no style", func(t *testing.T) {
		registry := NewStyleRegistry()
		assert.Equal(t, registry.RegisterStyle(&excel.CellStyle{}), "")
		assert.Equal(t, registry.RegisterStyle(nil), "")
	})

	t.Run("definitions are ordered by ID", func(t *testing.T) {
		registry := NewStyleRegistry()
		registry.RegisterStyle(boldStyle)
		registry.RegisterStyle(italicStyle)
		definitions := registry.Definitions()
		assert.Equal(t, len(definitions), 2)
		assert.Equal(t, definitions[0].ID, "s1")
		assert.Equal(t, definitions[1].ID, "s2")
	})
}

func TestSheetNameList(t *testing.T) {
	path := workbookFixture(t, "Data")
	workbook, release, err := excel.OpenFile(path)
	assert.NilError(t, err)
	defer release()

	names, err := SheetNameList(workbook)
	assert.NilError(t, err)
	assert.DeepEqual(t, names, []string{"Sheet1", "Data"})
}
