package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
)

type ExcelAutofitColumnsArguments struct {
	FileAbsolutePath string   `zog:"fileAbsolutePath"`
	SheetName        string   `zog:"sheetName"`
	Columns          []string `zog:"columns"`
}

var excelAutofitColumnsArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"columns":          z.Slice(z.String().Min(1)),
})

func AddExcelAutofitColumnsTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_autofit_columns",
		mcp.WithDescription("Adjust column widths to fit their content"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Sheet name in the Excel file"),
		),
		mcp.WithArray("columns",
			mcp.Description("Column names to fit (e.g., [\"A\", \"C\"]). All used columns when omitted"),
			mcp.Items(map[string]any{
				"type": "string",
			}),
		),
	), handleAutofitColumns)
}

func handleAutofitColumns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelAutofitColumnsArguments{}
	if issues := excelAutofitColumnsArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return autofitColumns(args.FileAbsolutePath, args.SheetName, args.Columns)
}

type AutofitColumnsResponse struct {
	Status    string             `json:"status"`
	SheetName string             `json:"sheetName"`
	Widths    map[string]float64 `json:"widths"`
}

func autofitColumns(fileAbsolutePath string, sheetName string, columns []string) (*mcp.CallToolResult, error) {
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

	if len(columns) == 0 {
		columns, err = worksheet.UsedColumns()
		if err != nil {
			return nil, err
		}
	}

	widths := make(map[string]float64, len(columns))
	for _, column := range columns {
		width, err := worksheet.AutoFitColumn(column)
		if err != nil {
			return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
		}
		widths[column] = width
	}

	if err := workbook.Save(); err != nil {
		return nil, err
	}

	return imcp.NewToolResultJSON(AutofitColumnsResponse{
		Status:    "success",
		SheetName: sheetName,
		Widths:    widths,
	})
}
