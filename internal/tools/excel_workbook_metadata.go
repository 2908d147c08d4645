package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
)

type ExcelWorkbookMetadataArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	IncludeRanges    bool   `zog:"includeRanges"`
}

var excelWorkbookMetadataArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"includeRanges":    z.Bool().Default(false),
})

func AddExcelWorkbookMetadataTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_workbook_metadata",
		mcp.WithDescription("Get metadata about an Excel workbook: sheet names, active sheet, and optionally per-sheet ranges"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithBoolean("includeRanges",
			mcp.Description("Include used range, merged ranges and table count for each sheet"),
		),
	), handleWorkbookMetadata)
}

func handleWorkbookMetadata(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelWorkbookMetadataArguments{}
	if issues := excelWorkbookMetadataArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return workbookMetadata(args.FileAbsolutePath, args.IncludeRanges)
}

type WorkbookMetadataResponse struct {
	FilePath    string                    `json:"filePath"`
	SheetCount  int                       `json:"sheetCount"`
	SheetNames  []string                  `json:"sheetNames"`
	ActiveSheet string                    `json:"activeSheet"`
	SheetsInfo  map[string]SheetRangeInfo `json:"sheetsInfo,omitempty"`
}

type SheetRangeInfo struct {
	UsedRange    string   `json:"usedRange"`
	MergedRanges []string `json:"mergedRanges"`
	TableCount   int      `json:"tableCount"`
}

func workbookMetadata(fileAbsolutePath string, includeRanges bool) (*mcp.CallToolResult, error) {
	workbook, release, err := excel.OpenFile(fileAbsolutePath)
	if err != nil {
		return nil, err
	}
	defer release()

	sheetNames, err := SheetNameList(workbook)
	if err != nil {
		return nil, err
	}
	activeSheet, err := workbook.GetActiveSheetName()
	if err != nil {
		return nil, err
	}

	response := WorkbookMetadataResponse{
		FilePath:    fileAbsolutePath,
		SheetCount:  len(sheetNames),
		SheetNames:  sheetNames,
		ActiveSheet: activeSheet,
	}

	if includeRanges {
		response.SheetsInfo = make(map[string]SheetRangeInfo, len(sheetNames))
		for _, sheetName := range sheetNames {
			worksheet, err := workbook.FindSheet(sheetName)
			if err != nil {
				return nil, err
			}
			usedRange, err := worksheet.GetDimention()
			if err != nil {
				worksheet.Release()
				return nil, err
			}
			mergedRanges, err := worksheet.GetMergedRanges()
			if err != nil {
				worksheet.Release()
				return nil, err
			}
			tables, err := worksheet.GetTables()
			if err != nil {
				worksheet.Release()
				return nil, err
			}
			worksheet.Release()
			if mergedRanges == nil {
				mergedRanges = []string{}
			}
			response.SheetsInfo[sheetName] = SheetRangeInfo{
				UsedRange:    excel.NormalizeRange(usedRange),
				MergedRanges: mergedRanges,
				TableCount:   len(tables),
			}
		}
	}

	return imcp.NewToolResultJSON(response)
}
