package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
)

type ExcelUnmergeCellsArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
	Range            string `zog:"range"`
}

var excelUnmergeCellsArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"range":            z.String().Required(),
})

func AddExcelUnmergeCellsTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_unmerge_cells",
		mcp.WithDescription("Split a previously merged range back into cells"),
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
			mcp.Description("Merged range to split (e.g., \"A1:C1\")"),
		),
	), handleUnmergeCells)
}

func handleUnmergeCells(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelUnmergeCellsArguments{}
	if issues := excelUnmergeCellsArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return unmergeCells(args.FileAbsolutePath, args.SheetName, args.Range)
}

type UnmergeCellsResponse struct {
	Status        string   `json:"status"`
	SheetName     string   `json:"sheetName"`
	UnmergedRange string   `json:"unmergedRange"`
	MergedRanges  []string `json:"mergedRanges"`
}

func unmergeCells(fileAbsolutePath string, sheetName string, cellRange string) (*mcp.CallToolResult, error) {
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

	if err := worksheet.UnmergeCells(cellRange); err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := workbook.Save(); err != nil {
		return nil, err
	}

	mergedRanges, err := worksheet.GetMergedRanges()
	if err != nil {
		return nil, err
	}
	return imcp.NewToolResultJSON(UnmergeCellsResponse{
		Status:        "success",
		SheetName:     sheetName,
		UnmergedRange: excel.NormalizeRange(cellRange),
		MergedRanges:  mergedRanges,
	})
}
