package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
)

type ExcelRenameSheetArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
	NewSheetName     string `zog:"newSheetName"`
}

var excelRenameSheetArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Min(1).Required(),
	"newSheetName":     z.String().Min(1).Required(),
})

func AddExcelRenameSheetTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_rename_sheet",
		mcp.WithDescription("Rename a sheet in the workbook"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Current name of the sheet"),
		),
		mcp.WithString("newSheetName",
			mcp.Required(),
			mcp.Description("New name for the sheet"),
		),
	), handleRenameSheet)
}

func handleRenameSheet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelRenameSheetArguments{}
	if issues := excelRenameSheetArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return renameSheet(args.FileAbsolutePath, args.SheetName, args.NewSheetName)
}

type RenameSheetResponse struct {
	Status       string   `json:"status"`
	FilePath     string   `json:"filePath"`
	SheetName    string   `json:"sheetName"`
	NewSheetName string   `json:"newSheetName"`
	Sheets       []string `json:"sheets"`
}

func renameSheet(fileAbsolutePath string, sheetName string, newSheetName string) (*mcp.CallToolResult, error) {
	workbook, release, err := excel.OpenFile(fileAbsolutePath)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := workbook.RenameSheet(sheetName, newSheetName); err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := workbook.Save(); err != nil {
		return nil, err
	}

	sheets, err := SheetNameList(workbook)
	if err != nil {
		return nil, err
	}
	return imcp.NewToolResultJSON(RenameSheetResponse{
		Status:       "success",
		FilePath:     fileAbsolutePath,
		SheetName:    sheetName,
		NewSheetName: newSheetName,
		Sheets:       sheets,
	})
}
