package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
)

type ExcelCreateTableArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
	Range            string `zog:"range"`
	TableName        string `zog:"tableName"`
}

var excelCreateTableArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"range":            z.String().Required(),
	"tableName":        z.String().Min(1).Required(),
})

func AddExcelCreateTableTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_create_table",
		mcp.WithDescription("Create a native Excel table over a range"),
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
			mcp.Description("Range the table covers, including the header row (e.g., \"A1:D10\")"),
		),
		mcp.WithString("tableName",
			mcp.Required(),
			mcp.Description("Name of the table. Must be unique in the workbook"),
		),
	), handleCreateTable)
}

func handleCreateTable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelCreateTableArguments{}
	if issues := excelCreateTableArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return createTable(args.FileAbsolutePath, args.SheetName, args.Range, args.TableName)
}

type CreateTableResponse struct {
	Status    string  `json:"status"`
	SheetName string  `json:"sheetName"`
	TableName string  `json:"tableName"`
	Range     string  `json:"range"`
	Tables    []Table `json:"tables"`
}

func createTable(fileAbsolutePath string, sheetName string, tableRange string, tableName string) (*mcp.CallToolResult, error) {
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

	if _, _, _, _, err := excel.ParseRange(tableRange); err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	if err := worksheet.AddTable(tableRange, tableName); err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := workbook.Save(); err != nil {
		return nil, err
	}

	tables, err := worksheet.GetTables()
	if err != nil {
		return nil, err
	}
	tableList := make([]Table, len(tables))
	for i, table := range tables {
		tableList[i] = Table{Name: table.Name, Range: table.Range}
	}
	return imcp.NewToolResultJSON(CreateTableResponse{
		Status:    "success",
		SheetName: sheetName,
		TableName: tableName,
		Range:     excel.NormalizeRange(tableRange),
		Tables:    tableList,
	})
}
