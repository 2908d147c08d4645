package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
)

type ExcelSetColumnWidthArguments struct {
	FileAbsolutePath string  `zog:"fileAbsolutePath"`
	SheetName        string  `zog:"sheetName"`
	StartColumn      string  `zog:"startColumn"`
	EndColumn        string  `zog:"endColumn"`
	Width            float64 `zog:"width"`
}

var excelSetColumnWidthArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"startColumn":      z.String().Min(1).Required(),
	"endColumn":        z.String().Min(1),
	"width":            z.Float64().GT(0).LTE(255).Required(),
})

func AddExcelSetColumnWidthTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_set_column_width",
		mcp.WithDescription("Set the width of a column or column range"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Sheet name in the Excel file"),
		),
		mcp.WithString("startColumn",
			mcp.Required(),
			mcp.Description("First column name (e.g., \"A\")"),
		),
		mcp.WithString("endColumn",
			mcp.Description("Last column name. Same as startColumn when omitted"),
		),
		mcp.WithNumber("width",
			mcp.Required(),
			mcp.Description("Column width in characters (0 to 255)"),
		),
	), handleSetColumnWidth)
}

func handleSetColumnWidth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelSetColumnWidthArguments{}
	if issues := excelSetColumnWidthArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return setColumnWidth(args.FileAbsolutePath, args.SheetName, args.StartColumn, args.EndColumn, args.Width)
}

type SetColumnWidthResponse struct {
	Status      string  `json:"status"`
	SheetName   string  `json:"sheetName"`
	StartColumn string  `json:"startColumn"`
	EndColumn   string  `json:"endColumn"`
	Width       float64 `json:"width"`
}

func setColumnWidth(fileAbsolutePath string, sheetName string, startColumn string, endColumn string, width float64) (*mcp.CallToolResult, error) {
	if endColumn == "" {
		endColumn = startColumn
	}

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

	if err := worksheet.SetColumnWidth(startColumn, endColumn, width); err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := workbook.Save(); err != nil {
		return nil, err
	}

	return imcp.NewToolResultJSON(SetColumnWidthResponse{
		Status:      "success",
		SheetName:   sheetName,
		StartColumn: startColumn,
		EndColumn:   endColumn,
		Width:       width,
	})
}
