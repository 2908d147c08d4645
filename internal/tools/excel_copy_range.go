package tools

import (
	"context"
	"fmt"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
	"github.com/xuri/excelize/v2"
)

type ExcelCopyRangeArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SrcSheetName     string `zog:"srcSheetName"`
	SrcRange         string `zog:"srcRange"`
	DstSheetName     string `zog:"dstSheetName"`
	DstCell          string `zog:"dstCell"`
}

var excelCopyRangeArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"srcSheetName":     z.String().Required(),
	"srcRange":         z.String().Required(),
	"dstSheetName":     z.String(),
	"dstCell":          z.String().Min(1).Required(),
})

func AddExcelCopyRangeTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_copy_range",
		mcp.WithDescription("Copy values, formulas and styles from one range to another"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("srcSheetName",
			mcp.Required(),
			mcp.Description("Sheet to copy from"),
		),
		mcp.WithString("srcRange",
			mcp.Required(),
			mcp.Description("Range to copy (e.g., \"A1:C10\")"),
		),
		mcp.WithString("dstSheetName",
			mcp.Description("Sheet to copy to. Same as srcSheetName when omitted"),
		),
		mcp.WithString("dstCell",
			mcp.Required(),
			mcp.Description("Top-left cell of the destination (e.g., \"E1\")"),
		),
	), handleCopyRange)
}

func handleCopyRange(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelCopyRangeArguments{}
	if issues := excelCopyRangeArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return copyRange(args.FileAbsolutePath, args.SrcSheetName, args.SrcRange, args.DstSheetName, args.DstCell)
}

type CopyRangeResponse struct {
	Status       string `json:"status"`
	SrcSheetName string `json:"srcSheetName"`
	SrcRange     string `json:"srcRange"`
	DstSheetName string `json:"dstSheetName"`
	DstRange     string `json:"dstRange"`
	CellsCopied  int    `json:"cellsCopied"`
}

func copyRange(fileAbsolutePath string, srcSheetName string, srcRange string, dstSheetName string, dstCell string) (*mcp.CallToolResult, error) {
	if dstSheetName == "" {
		dstSheetName = srcSheetName
	}

	workbook, release, err := excel.OpenFile(fileAbsolutePath)
	if err != nil {
		return nil, err
	}
	defer release()

	srcSheet, err := workbook.FindSheet(srcSheetName)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	defer srcSheet.Release()

	dstSheet, err := workbook.FindSheet(dstSheetName)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	defer dstSheet.Release()

	startCol, startRow, endCol, endRow, err := excel.ParseRange(srcRange)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	dstCol, dstRow, err := excelize.CellNameToCoordinates(dstCell)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	cellsCopied := 0
	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			srcCell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			targetCell, err := excelize.CoordinatesToCellName(dstCol+col-startCol, dstRow+row-startRow)
			if err != nil {
				return nil, err
			}
			formula, err := srcSheet.GetFormula(srcCell)
			if err != nil {
				return nil, err
			}
			if formula != "" {
				if err := dstSheet.SetFormula(targetCell, formula); err != nil {
					return nil, err
				}
			} else {
				value, err := srcSheet.GetValue(srcCell)
				if err != nil {
					return nil, err
				}
				if err := dstSheet.SetValue(targetCell, value); err != nil {
					return nil, err
				}
			}
			style, err := srcSheet.GetCellStyle(srcCell)
			if err != nil {
				return nil, err
			}
			if style != nil && !isEmptyStyle(style) {
				if err := dstSheet.SetCellStyle(targetCell, style); err != nil {
					return nil, err
				}
			}
			cellsCopied++
		}
	}

	if err := workbook.Save(); err != nil {
		return nil, err
	}

	dstEndCell, err := excelize.CoordinatesToCellName(dstCol+endCol-startCol, dstRow+endRow-startRow)
	if err != nil {
		return nil, err
	}
	return imcp.NewToolResultJSON(CopyRangeResponse{
		Status:       "success",
		SrcSheetName: srcSheetName,
		SrcRange:     excel.NormalizeRange(srcRange),
		DstSheetName: dstSheetName,
		DstRange:     fmt.Sprintf("%s:%s", dstCell, dstEndCell),
		CellsCopied:  cellsCopied,
	})
}
