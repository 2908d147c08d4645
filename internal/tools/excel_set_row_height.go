package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
)

type ExcelSetRowHeightArguments struct {
	FileAbsolutePath string  `zog:"fileAbsolutePath"`
	SheetName        string  `zog:"sheetName"`
	Row              int     `zog:"row"`
	Height           float64 `zog:"height"`
}

var excelSetRowHeightArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"row":              z.Int().GTE(1).Required(),
	"height":           z.Float64().GT(0).LTE(409).Required(),
})

func AddExcelSetRowHeightTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_set_row_height",
		mcp.WithDescription("Set the height of a row"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Sheet name in the Excel file"),
		),
		mcp.WithNumber("row",
			mcp.Required(),
			mcp.Description("Row number, starting at 1"),
		),
		mcp.WithNumber("height",
			mcp.Required(),
			mcp.Description("Row height in points (0 to 409)"),
		),
	), handleSetRowHeight)
}

func handleSetRowHeight(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelSetRowHeightArguments{}
	if issues := excelSetRowHeightArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return setRowHeight(args.FileAbsolutePath, args.SheetName, args.Row, args.Height)
}

type SetRowHeightResponse struct {
	Status    string  `json:"status"`
	SheetName string  `json:"sheetName"`
	Row       int     `json:"row"`
	Height    float64 `json:"height"`
}

func setRowHeight(fileAbsolutePath string, sheetName string, row int, height float64) (*mcp.CallToolResult, error) {
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

	if err := worksheet.SetRowHeight(row, height); err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := workbook.Save(); err != nil {
		return nil, err
	}

	return imcp.NewToolResultJSON(SetRowHeightResponse{
		Status:    "success",
		SheetName: sheetName,
		Row:       row,
		Height:    height,
	})
}
