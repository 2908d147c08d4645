package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

type ExcelizeExcel struct {
	file *excelize.File
}

func NewExcelizeExcel(file *excelize.File) Excel {
	return &ExcelizeExcel{file: file}
}

func (e *ExcelizeExcel) GetBackendName() string {
	return "excelize"
}

func (e *ExcelizeExcel) FindSheet(sheetName string) (Worksheet, error) {
	index, err := e.file.GetSheetIndex(sheetName)
	if err != nil {
		return nil, fmt.Errorf("sheet not found: %s", sheetName)
	}
	if index < 0 {
		return nil, fmt.Errorf("sheet not found: %s", sheetName)
	}
	return &ExcelizeWorksheet{file: e.file, sheetName: sheetName}, nil
}

func (e *ExcelizeExcel) CreateNewSheet(sheetName string) error {
	index, err := e.file.GetSheetIndex(sheetName)
	if err == nil && index >= 0 {
		return fmt.Errorf("sheet already exists: %s", sheetName)
	}
	if _, err := e.file.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create new sheet: %w", err)
	}
	return nil
}

func (e *ExcelizeExcel) DeleteSheet(sheetName string) error {
	index, err := e.file.GetSheetIndex(sheetName)
	if err != nil || index < 0 {
		return fmt.Errorf("sheet not found: %s", sheetName)
	}
	if len(e.file.GetSheetList()) == 1 {
		return fmt.Errorf("cannot delete the only sheet in the workbook")
	}
	if err := e.file.DeleteSheet(sheetName); err != nil {
		return fmt.Errorf("failed to delete sheet: %w", err)
	}
	return nil
}

func (e *ExcelizeExcel) RenameSheet(oldName, newName string) error {
	index, err := e.file.GetSheetIndex(oldName)
	if err != nil || index < 0 {
		return fmt.Errorf("sheet not found: %s", oldName)
	}
	if index, err := e.file.GetSheetIndex(newName); err == nil && index >= 0 {
		return fmt.Errorf("sheet already exists: %s", newName)
	}
	if err := e.file.SetSheetName(oldName, newName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	return nil
}

func (e *ExcelizeExcel) CopySheet(srcSheetName string, destSheetName string) error {
	srcIndex, err := e.file.GetSheetIndex(srcSheetName)
	if srcIndex < 0 {
		return fmt.Errorf("source sheet not found: %s", srcSheetName)
	}
	if err != nil {
		return err
	}
	destIndex, err := e.file.NewSheet(destSheetName)
	if err != nil {
		return fmt.Errorf("failed to create destination sheet: %w", err)
	}
	if err := e.file.CopySheet(srcIndex, destIndex); err != nil {
		return fmt.Errorf("failed to copy sheet: %w", err)
	}
	srcNext := e.file.GetSheetList()[srcIndex+1]
	if srcNext != srcSheetName {
		if err := e.file.MoveSheet(destSheetName, srcNext); err != nil {
			return fmt.Errorf("failed to move copied sheet: %w", err)
		}
	}
	return nil
}

func (e *ExcelizeExcel) GetActiveSheetName() (string, error) {
	return e.file.GetSheetName(e.file.GetActiveSheetIndex()), nil
}

func (e *ExcelizeExcel) GetSheets() ([]Worksheet, error) {
	sheetList := e.file.GetSheetList()
	worksheets := make([]Worksheet, len(sheetList))
	for i, sheetName := range sheetList {
		worksheets[i] = &ExcelizeWorksheet{file: e.file, sheetName: sheetName}
	}
	return worksheets, nil
}

// Save writes the workbook back to its path.
// Excelize's Save method restricts the file path length to 207 characters,
// but since this limitation has been relaxed in some environments,
// we ignore this restriction.
// https://github.com/qax-os/excelize/blob/v2.9.0/file.go#L71-L73
func (e *ExcelizeExcel) Save() error {
	file, err := os.OpenFile(filepath.Clean(e.file.Path), os.O_WRONLY|os.O_TRUNC|os.O_CREATE, os.ModePerm)
	if err != nil {
		return err
	}
	defer file.Close()
	return e.file.Write(file)
}

type ExcelizeWorksheet struct {
	file      *excelize.File
	sheetName string
}

func (w *ExcelizeWorksheet) Release() {
	// No resources to release in excelize
}

func (w *ExcelizeWorksheet) Name() (string, error) {
	return w.sheetName, nil
}

func (w *ExcelizeWorksheet) GetTables() ([]Table, error) {
	tables, err := w.file.GetTables(w.sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get tables: %w", err)
	}
	tableList := make([]Table, len(tables))
	for i, table := range tables {
		tableList[i] = Table{
			Name:  table.Name,
			Range: NormalizeRange(table.Range),
		}
	}
	return tableList, nil
}

func (w *ExcelizeWorksheet) GetPivotTables() ([]PivotTable, error) {
	pivotTables, err := w.file.GetPivotTables(w.sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get pivot tables: %w", err)
	}
	pivotTableList := make([]PivotTable, len(pivotTables))
	for i, pivotTable := range pivotTables {
		pivotTableList[i] = PivotTable{
			Name:  pivotTable.Name,
			Range: NormalizeRange(pivotTable.PivotTableRange),
		}
	}
	return pivotTableList, nil
}

func (w *ExcelizeWorksheet) SetValue(cell string, value any) error {
	if err := w.file.SetCellValue(w.sheetName, cell, value); err != nil {
		return err
	}
	if err := w.updateDimension(cell); err != nil {
		return fmt.Errorf("failed to update dimension: %w", err)
	}
	return nil
}

func (w *ExcelizeWorksheet) SetFormula(cell string, formula string) error {
	if err := w.file.SetCellFormula(w.sheetName, cell, formula); err != nil {
		return err
	}
	if err := w.updateDimension(cell); err != nil {
		return fmt.Errorf("failed to update dimension: %w", err)
	}
	return nil
}

func (w *ExcelizeWorksheet) GetValue(cell string) (string, error) {
	value, err := w.file.GetCellValue(w.sheetName, cell)
	if err != nil {
		return "", err
	}
	if value == "" {
		// try to get calculated value
		formula, err := w.file.GetCellFormula(w.sheetName, cell)
		if err != nil {
			return "", fmt.Errorf("failed to get formula: %w", err)
		}
		if formula != "" {
			return w.file.CalcCellValue(w.sheetName, cell)
		}
	}
	return value, nil
}

func (w *ExcelizeWorksheet) GetFormula(cell string) (string, error) {
	formula, err := w.file.GetCellFormula(w.sheetName, cell)
	if err != nil {
		return "", fmt.Errorf("failed to get formula: %w", err)
	}
	if formula == "" {
		// fallback
		return w.GetValue(cell)
	}
	if !strings.HasPrefix(formula, "=") {
		formula = "=" + formula
	}
	return formula, nil
}

func (w *ExcelizeWorksheet) ClearCell(cell string) error {
	if err := w.file.SetCellFormula(w.sheetName, cell, ""); err != nil {
		return err
	}
	return w.file.SetCellValue(w.sheetName, cell, nil)
}

func (w *ExcelizeWorksheet) GetDimention() (string, error) {
	return w.file.GetSheetDimension(w.sheetName)
}

func (w *ExcelizeWorksheet) GetPagingStrategy(pageSize int) (PagingStrategy, error) {
	return NewExcelizeFixedSizePagingStrategy(pageSize, w)
}

func (w *ExcelizeWorksheet) AddTable(tableRange, tableName string) error {
	enable := true
	if err := w.file.AddTable(w.sheetName, &excelize.Table{
		Range:             tableRange,
		Name:              tableName,
		StyleName:         "TableStyleMedium2",
		ShowColumnStripes: true,
		ShowFirstColumn:   false,
		ShowHeaderRow:     &enable,
		ShowLastColumn:    false,
		ShowRowStripes:    &enable,
	}); err != nil {
		return err
	}
	return nil
}

func (w *ExcelizeWorksheet) AddChart(cell string, chart *Chart) error {
	chartType, err := chartTypeToExcelize(chart.Type)
	if err != nil {
		return err
	}
	series := make([]excelize.ChartSeries, len(chart.Series))
	for i, s := range chart.Series {
		series[i] = excelize.ChartSeries{
			Name:       s.Name,
			Categories: s.Categories,
			Values:     s.Values,
		}
	}
	excelizeChart := &excelize.Chart{
		Type:   chartType,
		Series: series,
	}
	if chart.Title != "" {
		excelizeChart.Title = []excelize.RichTextRun{{Text: chart.Title}}
	}
	if chart.Legend != "" && chart.Legend != ChartLegendPositionNone {
		excelizeChart.Legend = excelize.ChartLegend{Position: chart.Legend.String()}
	}
	if err := w.file.AddChart(w.sheetName, cell, excelizeChart); err != nil {
		return fmt.Errorf("failed to add chart: %w", err)
	}
	return nil
}

func (w *ExcelizeWorksheet) AddDataValidation(rule *DataValidationRule) error {
	dv := excelize.NewDataValidation(true)
	dv.Sqref = NormalizeRange(rule.Range)
	switch rule.Type {
	case DataValidationTypeList:
		if err := dv.SetDropList(rule.DropList); err != nil {
			return fmt.Errorf("failed to set drop list: %w", err)
		}
	default:
		dvType, err := dataValidationTypeToExcelize(rule.Type)
		if err != nil {
			return err
		}
		operator, err := dataValidationOperatorToExcelize(rule.Operator)
		if err != nil {
			return err
		}
		var minimum, maximum float64
		if rule.Minimum != nil {
			minimum = *rule.Minimum
		}
		if rule.Maximum != nil {
			maximum = *rule.Maximum
		} else {
			maximum = minimum
		}
		if err := dv.SetRange(minimum, maximum, dvType, operator); err != nil {
			return fmt.Errorf("failed to set validation range: %w", err)
		}
	}
	if rule.InputTitle != "" || rule.InputMessage != "" {
		dv.SetInput(rule.InputTitle, rule.InputMessage)
	}
	if err := w.file.AddDataValidation(w.sheetName, dv); err != nil {
		return fmt.Errorf("failed to add data validation: %w", err)
	}
	return nil
}

func (w *ExcelizeWorksheet) MergeCells(cellRange string) error {
	startCol, startRow, endCol, endRow, err := ParseRange(cellRange)
	if err != nil {
		return err
	}
	startCell, _ := excelize.CoordinatesToCellName(startCol, startRow)
	endCell, _ := excelize.CoordinatesToCellName(endCol, endRow)
	if err := w.file.MergeCell(w.sheetName, startCell, endCell); err != nil {
		return fmt.Errorf("failed to merge cells: %w", err)
	}
	return nil
}

func (w *ExcelizeWorksheet) UnmergeCells(cellRange string) error {
	startCol, startRow, endCol, endRow, err := ParseRange(cellRange)
	if err != nil {
		return err
	}
	startCell, _ := excelize.CoordinatesToCellName(startCol, startRow)
	endCell, _ := excelize.CoordinatesToCellName(endCol, endRow)
	if err := w.file.UnmergeCell(w.sheetName, startCell, endCell); err != nil {
		return fmt.Errorf("failed to unmerge cells: %w", err)
	}
	return nil
}

func (w *ExcelizeWorksheet) GetMergedRanges() ([]string, error) {
	mergedCells, err := w.file.GetMergeCells(w.sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get merged cells: %w", err)
	}
	ranges := make([]string, len(mergedCells))
	for i, mergedCell := range mergedCells {
		ranges[i] = fmt.Sprintf("%s:%s", mergedCell.GetStartAxis(), mergedCell.GetEndAxis())
	}
	return ranges, nil
}

func (w *ExcelizeWorksheet) SetColumnWidth(startColumn, endColumn string, width float64) error {
	if err := w.file.SetColWidth(w.sheetName, startColumn, endColumn, width); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	return nil
}

func (w *ExcelizeWorksheet) SetRowHeight(row int, height float64) error {
	if err := w.file.SetRowHeight(w.sheetName, row, height); err != nil {
		return fmt.Errorf("failed to set row height: %w", err)
	}
	return nil
}

// autoFitMaxWidth caps auto-fitted column widths.
const autoFitMaxWidth = 50

func (w *ExcelizeWorksheet) AutoFitColumn(column string) (float64, error) {
	colIndex, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return 0, fmt.Errorf("invalid column name: %s", column)
	}
	rows, err := w.file.GetRows(w.sheetName)
	if err != nil {
		return 0, fmt.Errorf("failed to read rows: %w", err)
	}
	maxLength := 0
	for _, row := range rows {
		if colIndex-1 < len(row) {
			if length := len(row[colIndex-1]); length > maxLength {
				maxLength = length
			}
		}
	}
	width := float64(maxLength + 2)
	if width > autoFitMaxWidth {
		width = autoFitMaxWidth
	}
	if err := w.file.SetColWidth(w.sheetName, column, column, width); err != nil {
		return 0, fmt.Errorf("failed to set column width: %w", err)
	}
	return width, nil
}

func (w *ExcelizeWorksheet) UsedColumns() ([]string, error) {
	rows, err := w.file.GetRows(w.sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	var columns []string
	for col := 1; col <= maxCols; col++ {
		hasData := false
		for _, row := range rows {
			if col-1 < len(row) && row[col-1] != "" {
				hasData = true
				break
			}
		}
		if hasData {
			name, _ := excelize.ColumnNumberToName(col)
			columns = append(columns, name)
		}
	}
	return columns, nil
}

func (w *ExcelizeWorksheet) Search(value string, regex bool) ([]string, error) {
	cells, err := w.file.SearchSheet(w.sheetName, value, regex)
	if err != nil {
		return nil, fmt.Errorf("failed to search sheet: %w", err)
	}
	return cells, nil
}

func (w *ExcelizeWorksheet) GetCellStyle(cell string) (*CellStyle, error) {
	styleID, err := w.file.GetCellStyle(w.sheetName, cell)
	if err != nil {
		return nil, fmt.Errorf("failed to get cell style: %w", err)
	}

	style, err := w.file.GetStyle(styleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get style details: %w", err)
	}

	return convertExcelizeStyleToCellStyle(style), nil
}

func (w *ExcelizeWorksheet) SetCellStyle(cell string, style *CellStyle) error {
	excelizeStyle := convertCellStyleToExcelizeStyle(style)

	styleID, err := w.file.NewStyle(excelizeStyle)
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	if err := w.file.SetCellStyle(w.sheetName, cell, cell, styleID); err != nil {
		return fmt.Errorf("failed to set cell style: %w", err)
	}

	return nil
}

func chartTypeToExcelize(chartType ChartType) (excelize.ChartType, error) {
	types := map[ChartType]excelize.ChartType{
		ChartTypeCol:         excelize.Col,
		ChartTypeColStacked:  excelize.ColStacked,
		ChartTypeBar:         excelize.Bar,
		ChartTypeBarStacked:  excelize.BarStacked,
		ChartTypeLine:        excelize.Line,
		ChartTypePie:         excelize.Pie,
		ChartTypeDoughnut:    excelize.Doughnut,
		ChartTypeArea:        excelize.Area,
		ChartTypeAreaStacked: excelize.AreaStacked,
		ChartTypeRadar:       excelize.Radar,
		ChartTypeScatter:     excelize.Scatter,
		ChartTypeBubble:      excelize.Bubble,
	}
	if value, exists := types[chartType]; exists {
		return value, nil
	}
	return 0, fmt.Errorf("unsupported chart type: %s", chartType)
}

func dataValidationTypeToExcelize(dvType DataValidationType) (excelize.DataValidationType, error) {
	types := map[DataValidationType]excelize.DataValidationType{
		DataValidationTypeWhole:      excelize.DataValidationTypeWhole,
		DataValidationTypeDecimal:    excelize.DataValidationTypeDecimal,
		DataValidationTypeTextLength: excelize.DataValidationTypeTextLength,
	}
	if value, exists := types[dvType]; exists {
		return value, nil
	}
	return 0, fmt.Errorf("unsupported data validation type: %s", dvType)
}

func dataValidationOperatorToExcelize(operator DataValidationOperator) (excelize.DataValidationOperator, error) {
	operators := map[DataValidationOperator]excelize.DataValidationOperator{
		DataValidationOperatorBetween:            excelize.DataValidationOperatorBetween,
		DataValidationOperatorNotBetween:         excelize.DataValidationOperatorNotBetween,
		DataValidationOperatorEqual:              excelize.DataValidationOperatorEqual,
		DataValidationOperatorNotEqual:           excelize.DataValidationOperatorNotEqual,
		DataValidationOperatorGreaterThan:        excelize.DataValidationOperatorGreaterThan,
		DataValidationOperatorGreaterThanOrEqual: excelize.DataValidationOperatorGreaterThanOrEqual,
		DataValidationOperatorLessThan:           excelize.DataValidationOperatorLessThan,
		DataValidationOperatorLessThanOrEqual:    excelize.DataValidationOperatorLessThanOrEqual,
	}
	if value, exists := operators[operator]; exists {
		return value, nil
	}
	return 0, fmt.Errorf("unsupported data validation operator: %s", operator)
}

func convertCellStyleToExcelizeStyle(style *CellStyle) *excelize.Style {
	result := &excelize.Style{}

	// Border
	if len(style.Border) > 0 {
		borders := make([]excelize.Border, len(style.Border))
		for i, border := range style.Border {
			excelizeBorder := excelize.Border{
				Type: border.Type.String(),
			}
			if border.Color != "" {
				excelizeBorder.Color = strings.TrimPrefix(border.Color, "#")
			}
			excelizeBorder.Style = borderStyleNameToInt(border.Style)
			borders[i] = excelizeBorder
		}
		result.Border = borders
	}

	// Font
	if style.Font != nil {
		font := &excelize.Font{}
		if style.Font.Bold != nil {
			font.Bold = *style.Font.Bold
		}
		if style.Font.Italic != nil {
			font.Italic = *style.Font.Italic
		}
		if style.Font.Underline != nil {
			font.Underline = style.Font.Underline.String()
		}
		if style.Font.Size != nil && *style.Font.Size > 0 {
			font.Size = float64(*style.Font.Size)
		}
		if style.Font.Strike != nil {
			font.Strike = *style.Font.Strike
		}
		if style.Font.Color != nil && *style.Font.Color != "" {
			font.Color = strings.TrimPrefix(*style.Font.Color, "#")
		}
		if style.Font.VertAlign != nil {
			font.VertAlign = style.Font.VertAlign.String()
		}
		result.Font = font
	}

	// Fill
	if style.Fill != nil {
		fill := excelize.Fill{}
		if style.Fill.Type != "" {
			fill.Type = style.Fill.Type.String()
		}
		fill.Pattern = fillPatternNameToInt(style.Fill.Pattern)
		if len(style.Fill.Color) > 0 {
			colors := make([]string, len(style.Fill.Color))
			for i, color := range style.Fill.Color {
				colors[i] = strings.TrimPrefix(color, "#")
			}
			fill.Color = colors
		}
		if style.Fill.Shading != nil {
			fill.Shading = fillShadingNameToInt(*style.Fill.Shading)
		}
		result.Fill = fill
	}

	// NumFmt
	if style.NumFmt != nil && *style.NumFmt != "" {
		result.CustomNumFmt = style.NumFmt
	}

	// DecimalPlaces
	if style.DecimalPlaces != nil && *style.DecimalPlaces > 0 {
		result.DecimalPlaces = style.DecimalPlaces
	}

	return result
}

func convertExcelizeStyleToCellStyle(style *excelize.Style) *CellStyle {
	result := &CellStyle{}

	// Border
	if len(style.Border) > 0 {
		var borders []Border
		for _, border := range style.Border {
			borderStyle := Border{
				Type: BorderType(border.Type),
			}
			if border.Color != "" {
				borderStyle.Color = "#" + strings.ToUpper(border.Color)
			}
			if border.Style != 0 {
				borderStyle.Style = intToBorderStyleName(border.Style)
			}
			borders = append(borders, borderStyle)
		}
		if len(borders) > 0 {
			result.Border = borders
		}
	}

	// Font
	if style.Font != nil {
		font := &FontStyle{}
		if style.Font.Bold {
			font.Bold = &style.Font.Bold
		}
		if style.Font.Italic {
			font.Italic = &style.Font.Italic
		}
		if style.Font.Underline != "" {
			underline := FontUnderline(style.Font.Underline)
			font.Underline = &underline
		}
		if style.Font.Size > 0 {
			size := int(style.Font.Size)
			font.Size = &size
		}
		if style.Font.Strike {
			font.Strike = &style.Font.Strike
		}
		if style.Font.Color != "" {
			color := "#" + strings.ToUpper(style.Font.Color)
			font.Color = &color
		}
		if style.Font.VertAlign != "" {
			vertAlign := FontVertAlign(style.Font.VertAlign)
			font.VertAlign = &vertAlign
		}
		if font.Bold != nil || font.Italic != nil || font.Underline != nil || font.Size != nil || font.Strike != nil || font.Color != nil || font.VertAlign != nil {
			result.Font = font
		}
	}

	// Fill
	if style.Fill.Type != "" || style.Fill.Pattern != 0 || len(style.Fill.Color) > 0 {
		fill := &FillStyle{}
		if style.Fill.Type != "" {
			fill.Type = FillType(style.Fill.Type)
		}
		if style.Fill.Pattern != 0 {
			fill.Pattern = intToFillPatternName(style.Fill.Pattern)
		}
		if len(style.Fill.Color) > 0 {
			var colors []string
			for _, color := range style.Fill.Color {
				if color != "" {
					colors = append(colors, "#"+strings.ToUpper(color))
				}
			}
			if len(colors) > 0 {
				fill.Color = colors
			}
		}
		if style.Fill.Shading != 0 {
			shading := intToFillShadingName(style.Fill.Shading)
			fill.Shading = &shading
		}
		if fill.Type != "" || fill.Pattern != FillPatternNone || len(fill.Color) > 0 || fill.Shading != nil {
			result.Fill = fill
		}
	}

	// NumFmt
	if style.CustomNumFmt != nil && *style.CustomNumFmt != "" {
		result.NumFmt = style.CustomNumFmt
	}

	// DecimalPlaces
	if style.DecimalPlaces != nil && *style.DecimalPlaces != 0 {
		result.DecimalPlaces = style.DecimalPlaces
	}

	return result
}

func intToBorderStyleName(style int) BorderStyle {
	styles := map[int]BorderStyle{
		0:  BorderStyleNone,
		1:  BorderStyleContinuous,
		2:  BorderStyleContinuous,
		3:  BorderStyleDash,
		4:  BorderStyleDot,
		5:  BorderStyleContinuous,
		6:  BorderStyleDouble,
		7:  BorderStyleContinuous,
		8:  BorderStyleDashDot,
		9:  BorderStyleDashDotDot,
		10: BorderStyleSlantDashDot,
		11: BorderStyleContinuous,
		12: BorderStyleMediumDashDot,
		13: BorderStyleMediumDashDotDot,
	}
	if name, exists := styles[style]; exists {
		return name
	}
	return BorderStyleContinuous
}

func intToFillPatternName(pattern int) FillPattern {
	patterns := map[int]FillPattern{
		0:  FillPatternNone,
		1:  FillPatternSolid,
		2:  FillPatternMediumGray,
		3:  FillPatternDarkGray,
		4:  FillPatternLightGray,
		5:  FillPatternDarkHorizontal,
		6:  FillPatternDarkVertical,
		7:  FillPatternDarkDown,
		8:  FillPatternDarkUp,
		9:  FillPatternDarkGrid,
		10: FillPatternDarkTrellis,
		11: FillPatternLightHorizontal,
		12: FillPatternLightVertical,
		13: FillPatternLightDown,
		14: FillPatternLightUp,
		15: FillPatternLightGrid,
		16: FillPatternLightTrellis,
		17: FillPatternGray125,
		18: FillPatternGray0625,
	}
	if name, exists := patterns[pattern]; exists {
		return name
	}
	return FillPatternNone
}

func intToFillShadingName(shading int) FillShading {
	shadings := map[int]FillShading{
		0: FillShadingHorizontal,
		1: FillShadingVertical,
		2: FillShadingDiagonalDown,
		3: FillShadingDiagonalUp,
		4: FillShadingFromCenter,
		5: FillShadingFromCorner,
	}
	if name, exists := shadings[shading]; exists {
		return name
	}
	return FillShadingHorizontal
}

func borderStyleNameToInt(style BorderStyle) int {
	styles := map[BorderStyle]int{
		BorderStyleNone:             0,
		BorderStyleContinuous:       1,
		BorderStyleDash:             3,
		BorderStyleDot:              4,
		BorderStyleDouble:           6,
		BorderStyleDashDot:          8,
		BorderStyleDashDotDot:       9,
		BorderStyleSlantDashDot:     10,
		BorderStyleMediumDashDot:    12,
		BorderStyleMediumDashDotDot: 13,
	}
	if value, exists := styles[style]; exists {
		return value
	}
	return 1
}

func fillPatternNameToInt(pattern FillPattern) int {
	patterns := map[FillPattern]int{
		FillPatternNone:            0,
		FillPatternSolid:           1,
		FillPatternMediumGray:      2,
		FillPatternDarkGray:        3,
		FillPatternLightGray:       4,
		FillPatternDarkHorizontal:  5,
		FillPatternDarkVertical:    6,
		FillPatternDarkDown:        7,
		FillPatternDarkUp:          8,
		FillPatternDarkGrid:        9,
		FillPatternDarkTrellis:     10,
		FillPatternLightHorizontal: 11,
		FillPatternLightVertical:   12,
		FillPatternLightDown:       13,
		FillPatternLightUp:         14,
		FillPatternLightGrid:       15,
		FillPatternLightTrellis:    16,
		FillPatternGray125:         17,
		FillPatternGray0625:        18,
	}
	if value, exists := patterns[pattern]; exists {
		return value
	}
	return 0
}

func fillShadingNameToInt(shading FillShading) int {
	shadings := map[FillShading]int{
		FillShadingHorizontal:   0,
		FillShadingVertical:     1,
		FillShadingDiagonalDown: 2,
		FillShadingDiagonalUp:   3,
		FillShadingFromCenter:   4,
		FillShadingFromCorner:   5,
	}
	if value, exists := shadings[shading]; exists {
		return value
	}
	return 0
}

// updateDimension widens the sheet dimension to cover an updated cell.
func (w *ExcelizeWorksheet) updateDimension(updatedCell string) error {
	dimension, err := w.file.GetSheetDimension(w.sheetName)
	if err != nil {
		return err
	}
	startCol, startRow, endCol, endRow, err := ParseRange(dimension)
	if err != nil {
		return err
	}
	updatedCol, updatedRow, err := excelize.CellNameToCoordinates(updatedCell)
	if err != nil {
		return err
	}
	if startCol > updatedCol {
		startCol = updatedCol
	}
	if endCol < updatedCol {
		endCol = updatedCol
	}
	if startRow > updatedRow {
		startRow = updatedRow
	}
	if endRow < updatedRow {
		endRow = updatedRow
	}
	startRange, err := excelize.CoordinatesToCellName(startCol, startRow)
	if err != nil {
		return err
	}
	endRange, err := excelize.CoordinatesToCellName(endCol, endRow)
	if err != nil {
		return err
	}
	updatedDimension := fmt.Sprintf("%s:%s", startRange, endRange)
	return w.file.SetSheetDimension(w.sheetName, updatedDimension)
}
