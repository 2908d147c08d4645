package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
)

type ExcelAddDataValidationArguments struct {
	FileAbsolutePath string                       `zog:"fileAbsolutePath"`
	SheetName        string                       `zog:"sheetName"`
	Range            string                       `zog:"range"`
	ValidationType   excel.DataValidationType     `zog:"validationType"`
	Operator         excel.DataValidationOperator `zog:"operator"`
	DropList         []string                     `zog:"dropList"`
	Minimum          *float64                     `zog:"minimum"`
	Maximum          *float64                     `zog:"maximum"`
	InputTitle       string                       `zog:"inputTitle"`
	InputMessage     string                       `zog:"inputMessage"`
}

var excelAddDataValidationArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"range":            z.String().Required(),
	"validationType":   z.StringLike[excel.DataValidationType]().OneOf(excel.DataValidationTypeValues()).Required(),
	"operator":         z.StringLike[excel.DataValidationOperator]().OneOf(excel.DataValidationOperatorValues()).Default(excel.DataValidationOperatorBetween),
	"dropList":         z.Slice(z.String()),
	"minimum":          z.Ptr(z.Float64()),
	"maximum":          z.Ptr(z.Float64()),
	"inputTitle":       z.String(),
	"inputMessage":     z.String(),
})

func AddExcelAddDataValidationTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_add_data_validation",
		mcp.WithDescription("Add a data validation rule to a range"),
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
			mcp.Description("Range the rule applies to (e.g., \"B2:B100\")"),
		),
		mcp.WithString("validationType",
			mcp.Required(),
			mcp.Description("Kind of validation rule"),
			mcp.Enum(dataValidationTypeNames()...),
		),
		mcp.WithString("operator",
			mcp.Description("Comparison operator for numeric rules [default: between]"),
			mcp.Enum(dataValidationOperatorNames()...),
		),
		mcp.WithArray("dropList",
			mcp.Description("Allowed values for list validation"),
			mcp.Items(map[string]any{
				"type": "string",
			}),
		),
		mcp.WithNumber("minimum",
			mcp.Description("Lower bound for numeric rules"),
		),
		mcp.WithNumber("maximum",
			mcp.Description("Upper bound for numeric rules"),
		),
		mcp.WithString("inputTitle",
			mcp.Description("Title of the input hint shown on cell selection"),
		),
		mcp.WithString("inputMessage",
			mcp.Description("Body of the input hint shown on cell selection"),
		),
	), handleAddDataValidation)
}

func dataValidationTypeNames() []string {
	values := excel.DataValidationTypeValues()
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return names
}

func dataValidationOperatorNames() []string {
	values := excel.DataValidationOperatorValues()
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return names
}

func handleAddDataValidation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelAddDataValidationArguments{}
	if issues := excelAddDataValidationArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return addDataValidation(args.FileAbsolutePath, args.SheetName, &excel.DataValidationRule{
		Range:        args.Range,
		Type:         args.ValidationType,
		Operator:     args.Operator,
		DropList:     args.DropList,
		Minimum:      args.Minimum,
		Maximum:      args.Maximum,
		InputTitle:   args.InputTitle,
		InputMessage: args.InputMessage,
	})
}

type AddDataValidationResponse struct {
	Status         string `json:"status"`
	SheetName      string `json:"sheetName"`
	Range          string `json:"range"`
	ValidationType string `json:"validationType"`
}

func addDataValidation(fileAbsolutePath string, sheetName string, rule *excel.DataValidationRule) (*mcp.CallToolResult, error) {
	if rule.Type == excel.DataValidationTypeList {
		if len(rule.DropList) == 0 {
			return imcp.NewToolResultInvalidArgumentError("dropList is required for list validation"), nil
		}
	} else if rule.Minimum == nil {
		return imcp.NewToolResultInvalidArgumentError("minimum is required for numeric validation"), nil
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

	if err := worksheet.AddDataValidation(rule); err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := workbook.Save(); err != nil {
		return nil, err
	}

	return imcp.NewToolResultJSON(AddDataValidationResponse{
		Status:         "success",
		SheetName:      sheetName,
		Range:          excel.NormalizeRange(rule.Range),
		ValidationType: rule.Type.String(),
	})
}
