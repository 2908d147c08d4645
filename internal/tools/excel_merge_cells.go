package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
)

type ExcelMergeCellsArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
	Range            string `zog:"range"`
}

var excelMergeCellsArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"range":            z.String().Required(),
})

func AddExcelMergeCellsTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_merge_cells",
		mcp.WithDescription("Merge a range of cells into one"),
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
			mcp.Description("Range of cells to merge (e.g., \"A1:C1\")"),
		),
	), handleMergeCells)
}

func handleMergeCells(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelMergeCellsArguments{}
	if issues := excelMergeCellsArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return mergeCells(args.FileAbsolutePath, args.SheetName, args.Range)
}

type MergeCellsResponse struct {
	Status       string   `json:"status"`
	SheetName    string   `json:"sheetName"`
	MergedRange  string   `json:"mergedRange"`
	MergedRanges []string `json:"mergedRanges"`
}

func mergeCells(fileAbsolutePath string, sheetName string, cellRange string) (*mcp.CallToolResult, error) {
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

	if err := worksheet.MergeCells(cellRange); err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := workbook.Save(); err != nil {
		return nil, err
	}

	mergedRanges, err := worksheet.GetMergedRanges()
	if err != nil {
		return nil, err
	}
	return imcp.NewToolResultJSON(MergeCellsResponse{
		Status:       "success",
		SheetName:    sheetName,
		MergedRange:  excel.NormalizeRange(cellRange),
		MergedRanges: mergedRanges,
	})
}
