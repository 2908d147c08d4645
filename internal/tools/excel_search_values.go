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

type ExcelSearchValuesArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
	Value            string `zog:"value"`
	Regex            bool   `zog:"regex"`
}

var excelSearchValuesArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"value":            z.String().Min(1).Required(),
	"regex":            z.Bool().Default(false),
})

func AddExcelSearchValuesTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_search_values",
		mcp.WithDescription("Search cells by value in a sheet"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Sheet name in the Excel file"),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("Value to search for. Interpreted as a regular expression when regex is true, otherwise matched exactly"),
		),
		mcp.WithBoolean("regex",
			mcp.Description("Treat value as a regular expression"),
		),
	), handleSearchValues)
}

func handleSearchValues(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelSearchValuesArguments{}
	if issues := excelSearchValuesArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return searchValues(args.FileAbsolutePath, args.SheetName, args.Value, args.Regex)
}

type SearchMatch struct {
	Address string `json:"address"`
	Row     int    `json:"row"`
	Column  int    `json:"column"`
	Value   string `json:"value"`
}

type SearchValuesResponse struct {
	SheetName  string        `json:"sheetName"`
	Query      string        `json:"query"`
	Regex      bool          `json:"regex"`
	MatchCount int           `json:"matchCount"`
	Matches    []SearchMatch `json:"matches"`
}

func searchValues(fileAbsolutePath string, sheetName string, value string, regex bool) (*mcp.CallToolResult, error) {
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

	addresses, err := worksheet.Search(value, regex)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	matches := make([]SearchMatch, 0, len(addresses))
	for _, address := range addresses {
		col, row, err := excelize.CellNameToCoordinates(address)
		if err != nil {
			return nil, err
		}
		cellValue, err := worksheet.GetValue(address)
		if err != nil {
			return nil, err
		}
		matches = append(matches, SearchMatch{
			Address: address,
			Row:     row,
			Column:  col,
			Value:   cellValue,
		})
	}

	return imcp.NewToolResultJSON(SearchValuesResponse{
		SheetName:  sheetName,
		Query:      value,
		Regex:      regex,
		MatchCount: len(matches),
		Matches:    matches,
	})
}
