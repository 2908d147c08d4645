package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
)

type ExcelUpdateCellArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
	Cell             string `zog:"cell"`
	Value            string `zog:"value"`
}

var excelUpdateCellArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"cell":             z.String().Min(1).Required(),
	"value":            z.String().Required(),
})

func AddExcelUpdateCellTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_update_cell",
		mcp.WithDescription("Update a single cell value"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Sheet name in the Excel file"),
		),
		mcp.WithString("cell",
			mcp.Required(),
			mcp.Description("Cell to update (e.g., \"B2\")"),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("Value to write. If the value is a formula, it should start with \"=\""),
		),
	), handleUpdateCell)
}

func handleUpdateCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelUpdateCellArguments{}
	if issues := excelUpdateCellArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return updateCell(args.FileAbsolutePath, args.SheetName, args.Cell, args.Value)
}

type UpdateCellResponse struct {
	Status    string `json:"status"`
	SheetName string `json:"sheetName"`
	Cell      string `json:"cell"`
	Value     string `json:"value"`
}

func updateCell(fileAbsolutePath string, sheetName string, cell string, value string) (*mcp.CallToolResult, error) {
	workbook, release, err := excel.OpenFileOrCreate(fileAbsolutePath)
	if err != nil {
		return nil, err
	}
	defer release()

	worksheet, err := workbook.FindSheet(sheetName)
	if err != nil {
		if err := workbook.CreateNewSheet(sheetName); err != nil {
			return nil, err
		}
		worksheet, err = workbook.FindSheet(sheetName)
		if err != nil {
			return nil, err
		}
	}
	defer worksheet.Release()

	if isFormula(value) {
		err = worksheet.SetFormula(cell, value)
	} else {
		err = worksheet.SetValue(cell, value)
	}
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := workbook.Save(); err != nil {
		return nil, err
	}

	written, err := worksheet.GetValue(cell)
	if err != nil {
		return nil, err
	}
	return imcp.NewToolResultJSON(UpdateCellResponse{
		Status:    "success",
		SheetName: sheetName,
		Cell:      cell,
		Value:     written,
	})
}
