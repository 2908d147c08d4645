package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
	"github.com/xuri/excelize/v2"
)

type ExcelClearRangeArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
	Range            string `zog:"range"`
}

var excelClearRangeArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"range":            z.String().Required(),
})

func AddExcelClearRangeTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_clear_range",
		mcp.WithDescription("Remove values and formulas from a range of cells"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Sheet name in the Excel file"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("Cell (e.g., \"B2\") or range (e.g., \"A1:C10\") to clear"),
		),
	), handleClearRange)
}

func handleClearRange(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelClearRangeArguments{}
	if issues := excelClearRangeArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return clearRange(args.FileAbsolutePath, args.SheetName, args.Range)
}

type ClearRangeResponse struct {
	Status       string `json:"status"`
	SheetName    string `json:"sheetName"`
	ClearedRange string `json:"clearedRange"`
	CellsCleared int    `json:"cellsCleared"`
}

func clearRange(fileAbsolutePath string, sheetName string, cellRange string) (*mcp.CallToolResult, error) {
	workbook, release, err := excel.OpenFile(fileAbsolutePath)
	if err != nil {
		return nil, err
	}
	defer release()

	worksheet, err := workbook.FindSheet(sheetName)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	defer worksheet.Release()

	startCol, startRow, endCol, endRow, err := excel.ParseRange(cellRange)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	cellsCleared := 0
	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			if err := worksheet.ClearCell(cell); err != nil {
				return nil, err
			}
			cellsCleared++
		}
	}

	if err := workbook.Save(); err != nil {
		return nil, err
	}

	return imcp.NewToolResultJSON(ClearRangeResponse{
		Status:       "success",
		SheetName:    sheetName,
		ClearedRange: excel.NormalizeRange(cellRange),
		CellsCleared: cellsCleared,
	})
}
