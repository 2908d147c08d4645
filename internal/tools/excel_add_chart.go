package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/soralis/excel-mcp-server/internal/excel"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
)

type ExcelAddChartArguments struct {
	FileAbsolutePath string                    `zog:"fileAbsolutePath"`
	SheetName        string                    `zog:"sheetName"`
	Anchor           string                    `zog:"anchor"`
	ChartType        excel.ChartType           `zog:"chartType"`
	Title            string                    `zog:"title"`
	Legend           excel.ChartLegendPosition `zog:"legend"`
	Series           []excel.ChartSeries       `zog:"series"`
}

var excelAddChartArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"anchor":           z.String().Min(1).Required(),
	"chartType":        z.StringLike[excel.ChartType]().OneOf(excel.ChartTypeValues()).Required(),
	"title":            z.String(),
	"legend":           z.StringLike[excel.ChartLegendPosition]().OneOf(excel.ChartLegendPositionValues()).Default(excel.ChartLegendPositionRight),
	"series": z.Slice(z.Struct(z.Shape{
		"name":       z.String(),
		"categories": z.String(),
		"values":     z.String().Min(1).Required(),
	})).Min(1).Required(),
})

func AddExcelAddChartTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_add_chart",
		mcp.WithDescription("Insert a chart into the Excel sheet"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Sheet name in the Excel file"),
		),
		mcp.WithString("anchor",
			mcp.Required(),
			mcp.Description("Top-left cell where the chart is anchored (e.g., \"E2\")"),
		),
		mcp.WithString("chartType",
			mcp.Required(),
			mcp.Description("Chart kind"),
			mcp.Enum(chartTypeNames()...),
		),
		mcp.WithString("title",
			mcp.Description("Chart title"),
		),
		mcp.WithString("legend",
			mcp.Description("Legend position [default: right]"),
			mcp.Enum(chartLegendPositionNames()...),
		),
		mcp.WithArray("series",
			mcp.Required(),
			mcp.Description("Data series of the chart. Categories and values are sheet-qualified ranges (e.g., \"Sheet1!$A$2:$A$10\")"),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{
						"type":        "string",
						"description": "Series name shown in the legend",
					},
					"categories": map[string]any{
						"type":        "string",
						"description": "Range of category labels",
					},
					"values": map[string]any{
						"type":        "string",
						"description": "Range of series values",
					},
				},
				"required": []string{"values"},
			}),
		),
	), handleAddChart)
}

func chartTypeNames() []string {
	values := excel.ChartTypeValues()
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return names
}

func chartLegendPositionNames() []string {
	values := excel.ChartLegendPositionValues()
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return names
}

func handleAddChart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelAddChartArguments{}
	if issues := excelAddChartArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return addChart(args.FileAbsolutePath, args.SheetName, args.Anchor, &excel.Chart{
		Type:   args.ChartType,
		Series: args.Series,
		Title:  args.Title,
		Legend: args.Legend,
	})
}

type AddChartResponse struct {
	Status      string `json:"status"`
	SheetName   string `json:"sheetName"`
	Anchor      string `json:"anchor"`
	ChartType   string `json:"chartType"`
	SeriesCount int    `json:"seriesCount"`
}

func addChart(fileAbsolutePath string, sheetName string, anchor string, chart *excel.Chart) (*mcp.CallToolResult, error) {
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

	if err := worksheet.AddChart(anchor, chart); err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := workbook.Save(); err != nil {
		return nil, err
	}

	return imcp.NewToolResultJSON(AddChartResponse{
		Status:      "success",
		SheetName:   sheetName,
		Anchor:      anchor,
		ChartType:   chart.Type.String(),
		SeriesCount: len(chart.Series),
	})
}
