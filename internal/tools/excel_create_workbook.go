package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
)

type ExcelCreateWorkbookArguments struct {
	FileAbsolutePath string   `zog:"fileAbsolutePath"`
	SheetNames       []string `zog:"sheetNames"`
}

var excelCreateWorkbookArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetNames":       z.Slice(z.String().Min(1)).Default([]string{"Sheet1"}),
})

func AddExcelCreateWorkbookTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_create_workbook",
		mcp.WithDescription("Create a new Excel workbook. Fails if the file already exists"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path of the Excel file to create"),
		),
		imcp.WithArray("sheetNames",
			mcp.Description("Names of sheets to create in the new workbook [default: [\"Sheet1\"]]"),
			mcp.Items(map[string]any{
				"type": "string",
			}),
		),
	), handleCreateWorkbook)
}

func handleCreateWorkbook(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelCreateWorkbookArguments{}
	if issues := excelCreateWorkbookArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return createWorkbook(args.FileAbsolutePath, args.SheetNames)
}

type CreateWorkbookResponse struct {
	Status        string   `json:"status"`
	FilePath      string   `json:"filePath"`
	SheetsCreated []string `json:"sheetsCreated"`
}

func createWorkbook(fileAbsolutePath string, sheetNames []string) (*mcp.CallToolResult, error) {
	workbook, release, err := excel.CreateFile(fileAbsolutePath, sheetNames)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	defer release()

	created, err := SheetNameList(workbook)
	if err != nil {
		return nil, err
	}
	return imcp.NewToolResultJSON(CreateWorkbookResponse{
		Status:        "success",
		FilePath:      fileAbsolutePath,
		SheetsCreated: created,
	})
}
