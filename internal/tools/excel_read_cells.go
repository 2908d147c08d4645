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

type ExcelReadCellsArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
	Range            string `zog:"range"`
}

var excelReadCellsArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"range":            z.String().Required(),
})

func AddExcelReadCellsTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_read_cells",
		mcp.WithDescription("Read a cell or small range with values and formulas"),
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
			mcp.Description("Cell (e.g., \"B2\") or range (e.g., \"A1:C10\") to read"),
		),
	), handleReadCells)
}

func handleReadCells(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelReadCellsArguments{}
	if issues := excelReadCellsArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return readCells(args.FileAbsolutePath, args.SheetName, args.Range)
}

type CellDetail struct {
	Address string `json:"address"`
	Value   string `json:"value"`
	Formula string `json:"formula,omitempty"`
}

type ReadCellsResponse struct {
	SheetName string       `json:"sheetName"`
	Range     string       `json:"range"`
	CellCount int          `json:"cellCount"`
	Cells     []CellDetail `json:"cells"`
}

func readCells(fileAbsolutePath string, sheetName string, cellRange string) (*mcp.CallToolResult, error) {
	config, issues := LoadConfig()
	if issues != nil {
		return imcp.NewToolResultZogIssueMap(issues), nil
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

	startCol, startRow, endCol, endRow, err := excel.ParseRange(cellRange)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	cellCount := (endRow - startRow + 1) * (endCol - startCol + 1)
	if cellCount > config.EXCEL_MCP_PAGING_CELLS_LIMIT {
		return imcp.NewToolResultInvalidArgumentError(
			fmt.Sprintf("range contains %d cells, exceeding the limit of %d; use excel_read_sheet for large ranges", cellCount, config.EXCEL_MCP_PAGING_CELLS_LIMIT)), nil
	}

	cells := make([]CellDetail, 0, cellCount)
	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			value, err := worksheet.GetValue(cell)
			if err != nil {
				return nil, err
			}
			formula, err := worksheet.GetFormula(cell)
			if err != nil {
				return nil, err
			}
			cells = append(cells, CellDetail{
				Address: cell,
				Value:   value,
				Formula: formula,
			})
		}
	}

	return imcp.NewToolResultJSON(ReadCellsResponse{
		SheetName: sheetName,
		Range:     excel.NormalizeRange(cellRange),
		CellCount: cellCount,
		Cells:     cells,
	})
}
