package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
)

type ExcelCreateSheetArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
}

var excelCreateSheetArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Min(1).Required(),
})

func AddExcelCreateSheetTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_create_sheet",
		mcp.WithDescription("Create a new sheet in an existing workbook"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Name of the sheet to create"),
		),
	), handleCreateSheet)
}

func handleCreateSheet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelCreateSheetArguments{}
	if issues := excelCreateSheetArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return createSheet(args.FileAbsolutePath, args.SheetName)
}

type CreateSheetResponse struct {
	Status    string   `json:"status"`
	FilePath  string   `json:"filePath"`
	SheetName string   `json:"sheetName"`
	Sheets    []string `json:"sheets"`
}

func createSheet(fileAbsolutePath string, sheetName string) (*mcp.CallToolResult, error) {
	workbook, release, err := excel.OpenFile(fileAbsolutePath)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := workbook.CreateNewSheet(sheetName); err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := workbook.Save(); err != nil {
		return nil, err
	}

	sheets, err := SheetNameList(workbook)
	if err != nil {
		return nil, err
	}
	return imcp.NewToolResultJSON(CreateSheetResponse{
		Status:    "success",
		FilePath:  fileAbsolutePath,
		SheetName: sheetName,
		Sheets:    sheets,
	})
}
