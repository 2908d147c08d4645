package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
)

type ExcelWriteFormulaArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
	Cell             string `zog:"cell"`
	Formula          string `zog:"formula"`
}

var excelWriteFormulaArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"cell":             z.String().Min(1).Required(),
	"formula":          z.String().Required(),
})

func AddExcelWriteFormulaTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_write_formula",
		mcp.WithDescription("Apply a formula to a cell after validating its syntax"),
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
			mcp.Description("Cell to write the formula to (e.g., \"B2\")"),
		),
		mcp.WithString("formula",
			mcp.Required(),
			mcp.Description("Formula to apply (e.g., \"=SUM(A1:A10)\")"),
		),
	), handleWriteFormula)
}

func handleWriteFormula(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelWriteFormulaArguments{}
	if issues := excelWriteFormulaArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return writeFormula(args.FileAbsolutePath, args.SheetName, args.Cell, args.Formula)
}

type WriteFormulaResponse struct {
	Status    string `json:"status"`
	SheetName string `json:"sheetName"`
	Cell      string `json:"cell"`
	Formula   string `json:"formula"`
	Value     string `json:"value"`
}

func writeFormula(fileAbsolutePath string, sheetName string, cell string, formula string) (*mcp.CallToolResult, error) {
	if err := validateFormulaSyntax(formula); err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
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

	if err := worksheet.SetFormula(cell, formula); err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := workbook.Save(); err != nil {
		return nil, err
	}

	value, err := worksheet.GetValue(cell)
	if err != nil {
		return nil, err
	}
	return imcp.NewToolResultJSON(WriteFormulaResponse{
		Status:    "success",
		SheetName: sheetName,
		Cell:      cell,
		Formula:   formula,
		Value:     value,
	})
}
