package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
	"github.com/xuri/excelize/v2"
)

type ExcelReadSheetArguments struct {
	FileAbsolutePath  string   `zog:"fileAbsolutePath"`
	SheetName         string   `zog:"sheetName"`
	Range             string   `zog:"range"`
	KnownPagingRanges []string `zog:"knownPagingRanges"`
	ShowFormula       bool     `zog:"showFormula"`
	ShowStyle         bool     `zog:"showStyle"`
}

var excelReadSheetArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath":  z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":         z.String().Required(),
	"range":             z.String(),
	"knownPagingRanges": z.Slice(z.String()),
	"showFormula":       z.Bool().Default(false),
	"showStyle":         z.Bool().Default(false),
})

func AddExcelReadSheetTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_read_sheet",
		mcp.WithDescription("Read values from Excel sheet with pagination."),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Sheet name in the Excel file"),
		),
		mcp.WithString("range",
			mcp.Description("Range of cells to read in the Excel sheet (e.g., \"A1:C10\"). [default: first paging range]"),
		),
		imcp.WithArray("knownPagingRanges",
			mcp.Description("List of already read paging ranges"),
			mcp.Items(map[string]any{
				"type": "string",
			}),
		),
		mcp.WithBoolean("showFormula",
			mcp.Description("Show formula instead of value"),
		),
		mcp.WithBoolean("showStyle",
			mcp.Description("Show style information for cells"),
		),
	), handleReadSheet)
}

func handleReadSheet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelReadSheetArguments{}
	if issues := excelReadSheetArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return readSheet(args.FileAbsolutePath, args.SheetName, args.Range, args.KnownPagingRanges, args.ShowFormula, args.ShowStyle)
}

type CellData struct {
	Value   string `json:"value"`
	Formula string `json:"formula,omitempty"`
	StyleID string `json:"styleId,omitempty"`
}

type ReadSheetResponse struct {
	Backend          string            `json:"backend"`
	SheetName        string            `json:"sheetName"`
	ReadRange        string            `json:"readRange"`
	Cells            [][]CellData      `json:"cells"`
	StyleDefinitions []StyleDefinition `json:"styleDefinitions,omitempty"`
	NextRange        string            `json:"nextRange,omitempty"`
	RemainingRanges  []string          `json:"remainingRanges,omitempty"`
}

func readSheet(fileAbsolutePath string, sheetName string, valueRange string, knownPagingRanges []string, showFormula bool, showStyle bool) (*mcp.CallToolResult, error) {
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

	strategy, err := worksheet.GetPagingStrategy(config.EXCEL_MCP_PAGING_CELLS_LIMIT)
	if err != nil {
		return nil, err
	}
	pagingService := excel.NewPagingRangeService(strategy)

	allRanges := pagingService.GetPagingRanges()
	if len(allRanges) == 0 {
		return imcp.NewToolResultInvalidArgumentError("no range available to read"), nil
	}

	currentRange := valueRange
	if currentRange == "" {
		currentRange = allRanges[0]
	}

	nextRange := pagingService.FindNextRange(allRanges, currentRange)
	remainingRanges := pagingService.FilterRemainingPagingRanges(allRanges, append(knownPagingRanges, currentRange))
	if err := pagingService.ValidatePagingRange(currentRange); err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	startCol, startRow, endCol, endRow, err := excel.ParseRange(currentRange)
	if err != nil {
		return nil, err
	}

	registry := NewStyleRegistry()
	cells := make([][]CellData, 0, endRow-startRow+1)
	for row := startRow; row <= endRow; row++ {
		rowData := make([]CellData, 0, endCol-startCol+1)
		for col := startCol; col <= endCol; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			data := CellData{}
			data.Value, err = worksheet.GetValue(cell)
			if err != nil {
				return nil, err
			}
			if showFormula {
				data.Formula, err = worksheet.GetFormula(cell)
				if err != nil {
					return nil, err
				}
			}
			if showStyle {
				style, err := worksheet.GetCellStyle(cell)
				if err != nil {
					return nil, err
				}
				data.StyleID = registry.RegisterStyle(style)
			}
			rowData = append(rowData, data)
		}
		cells = append(cells, rowData)
	}

	response := ReadSheetResponse{
		Backend:         workbook.GetBackendName(),
		SheetName:       sheetName,
		ReadRange:       currentRange,
		Cells:           cells,
		NextRange:       nextRange,
		RemainingRanges: remainingRanges,
	}
	if showStyle {
		response.StyleDefinitions = registry.Definitions()
	}
	return imcp.NewToolResultJSON(response)
}
