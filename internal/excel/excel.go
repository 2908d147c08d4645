package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

type Excel interface {
	// GetBackendName returns the backend used to manipulate the Excel file.
	GetBackendName() string
	// GetSheets returns a list of all worksheets in the Excel file.
	GetSheets() ([]Worksheet, error)
	// FindSheet finds a sheet by its name and returns a Worksheet.
	FindSheet(sheetName string) (Worksheet, error)
	// CreateNewSheet creates a new sheet with the specified name.
	CreateNewSheet(sheetName string) error
	// DeleteSheet deletes the sheet with the specified name.
	DeleteSheet(sheetName string) error
	// RenameSheet renames a sheet.
	RenameSheet(oldName, newName string) error
	// CopySheet copies a sheet from one to another.
	CopySheet(srcSheetName, destSheetName string) error
	// GetActiveSheetName returns the name of the active sheet.
	GetActiveSheetName() (string, error)
	// Save saves the Excel file.
	Save() error
}

type Worksheet interface {
	// Release releases the worksheet resources.
	Release()
	// Name returns the name of the worksheet.
	Name() (string, error)
	// GetTables returns the tables in this worksheet.
	GetTables() ([]Table, error)
	// GetPivotTables returns the pivot tables in this worksheet.
	GetPivotTables() ([]PivotTable, error)
	// SetValue sets a value in the specified cell.
	SetValue(cell string, value any) error
	// SetFormula sets a formula in the specified cell.
	SetFormula(cell string, formula string) error
	// GetValue gets the value from the specified cell.
	GetValue(cell string) (string, error)
	// GetFormula gets the formula from the specified cell.
	GetFormula(cell string) (string, error)
	// ClearCell removes the value and formula from the specified cell.
	ClearCell(cell string) error
	// GetDimention gets the dimension of the worksheet.
	GetDimention() (string, error)
	// GetPagingStrategy returns the paging strategy for the worksheet.
	// The pageSize parameter is used to determine the max size of each page.
	GetPagingStrategy(pageSize int) (PagingStrategy, error)
	// GetCellStyle gets style information for the specified cell.
	GetCellStyle(cell string) (*CellStyle, error)
	// SetCellStyle sets style for the specified cell.
	SetCellStyle(cell string, style *CellStyle) error
	// AddTable adds a table to this worksheet.
	AddTable(tableRange, tableName string) error
	// AddChart inserts a chart anchored at the specified cell.
	AddChart(cell string, chart *Chart) error
	// AddDataValidation adds a data validation rule to this worksheet.
	AddDataValidation(rule *DataValidationRule) error
	// MergeCells merges the specified range into a single cell.
	MergeCells(cellRange string) error
	// UnmergeCells splits a previously merged range.
	UnmergeCells(cellRange string) error
	// GetMergedRanges returns the merged ranges in this worksheet.
	GetMergedRanges() ([]string, error)
	// SetColumnWidth sets the width of a column range (e.g. "A", "C").
	SetColumnWidth(startColumn, endColumn string, width float64) error
	// SetRowHeight sets the height of the specified row.
	SetRowHeight(row int, height float64) error
	// AutoFitColumn computes and applies a width for the column based on
	// its longest value. Returns the applied width.
	AutoFitColumn(column string) (float64, error)
	// UsedColumns returns the names of columns that contain data.
	UsedColumns() ([]string, error)
	// Search returns the addresses of cells whose value matches.
	Search(value string, regex bool) ([]string, error)
}

type Table struct {
	Name  string
	Range string
}

type PivotTable struct {
	Name  string
	Range string
}

type CellStyle struct {
	Border        []Border   `yaml:"border,omitempty" json:"border,omitempty"`
	Font          *FontStyle `yaml:"font,omitempty" json:"font,omitempty"`
	Fill          *FillStyle `yaml:"fill,omitempty" json:"fill,omitempty"`
	NumFmt        *string    `yaml:"numFmt,omitempty" json:"numFmt,omitempty"`
	DecimalPlaces *int       `yaml:"decimalPlaces,omitempty" json:"decimalPlaces,omitempty"`
}

type Border struct {
	Type  BorderType  `yaml:"type" json:"type"`
	Style BorderStyle `yaml:"style,omitempty" json:"style,omitempty"`
	Color string      `yaml:"color,omitempty" json:"color,omitempty"`
}

type FontStyle struct {
	Bold      *bool          `yaml:"bold,omitempty" json:"bold,omitempty"`
	Italic    *bool          `yaml:"italic,omitempty" json:"italic,omitempty"`
	Underline *FontUnderline `yaml:"underline,omitempty" json:"underline,omitempty"`
	Size      *int           `yaml:"size,omitempty" json:"size,omitempty"`
	Strike    *bool          `yaml:"strike,omitempty" json:"strike,omitempty"`
	Color     *string        `yaml:"color,omitempty" json:"color,omitempty"`
	VertAlign *FontVertAlign `yaml:"vertAlign,omitempty" json:"vertAlign,omitempty"`
}

type FillStyle struct {
	Type    FillType     `yaml:"type,omitempty" json:"type,omitempty"`
	Pattern FillPattern  `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Color   []string     `yaml:"color,omitempty" json:"color,omitempty"`
	Shading *FillShading `yaml:"shading,omitempty" json:"shading,omitempty"`
}

// Chart describes a chart to be inserted into a worksheet.
type Chart struct {
	Type   ChartType
	Series []ChartSeries
	Title  string
	Legend ChartLegendPosition
}

// ChartSeries describes one data series of a chart. Categories and
// Values are sheet-qualified range references (e.g. "Sheet1!$A$2:$A$10").
type ChartSeries struct {
	Name       string
	Categories string
	Values     string
}

// DataValidationRule describes a data validation rule applied to a range.
// Either DropList is set (list validation), or Minimum/Maximum together
// with Type and Operator describe a numeric rule.
type DataValidationRule struct {
	Range        string
	Type         DataValidationType
	Operator     DataValidationOperator
	DropList     []string
	Minimum      *float64
	Maximum      *float64
	InputTitle   string
	InputMessage string
}

// supportedExtensions are the workbook formats the excelize backend can
// round-trip.
var supportedExtensions = []string{".xlsx", ".xlsm", ".xltx", ".xltm"}

func ValidateFileExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range supportedExtensions {
		if ext == supported {
			return nil
		}
	}
	return fmt.Errorf("unsupported file extension: %s (supported: %s)", ext, strings.Join(supportedExtensions, ", "))
}

// OpenFile opens an Excel file and returns an Excel interface.
func OpenFile(absoluteFilePath string) (Excel, func(), error) {
	if err := ValidateFileExtension(absoluteFilePath); err != nil {
		return nil, func() {}, err
	}
	workbook, err := excelize.OpenFile(absoluteFilePath)
	if err != nil {
		return nil, func() {}, err
	}
	backend := NewExcelizeExcel(workbook)
	return backend, func() {
		workbook.Close()
	}, nil
}

// OpenFileOrCreate opens an Excel file, creating an empty workbook at the
// path when the file does not exist yet.
func OpenFileOrCreate(absoluteFilePath string) (Excel, func(), error) {
	if _, err := os.Stat(absoluteFilePath); err == nil {
		return OpenFile(absoluteFilePath)
	}
	if err := ValidateFileExtension(absoluteFilePath); err != nil {
		return nil, func() {}, err
	}
	workbook := excelize.NewFile()
	workbook.Path = absoluteFilePath
	backend := NewExcelizeExcel(workbook)
	return backend, func() {
		workbook.Close()
	}, nil
}

// CreateFile creates a new workbook with the given sheets and writes it to
// the path. It fails if the file already exists.
func CreateFile(absoluteFilePath string, sheetNames []string) (Excel, func(), error) {
	if err := ValidateFileExtension(absoluteFilePath); err != nil {
		return nil, func() {}, err
	}
	if _, err := os.Stat(absoluteFilePath); err == nil {
		return nil, func() {}, fmt.Errorf("file already exists: %s", absoluteFilePath)
	}
	workbook := excelize.NewFile()
	if len(sheetNames) > 0 {
		for _, sheetName := range sheetNames {
			if _, err := workbook.NewSheet(sheetName); err != nil {
				workbook.Close()
				return nil, func() {}, fmt.Errorf("failed to create sheet %s: %w", sheetName, err)
			}
		}
		// drop the implicit default sheet unless it was requested
		defaultName := workbook.GetSheetName(0)
		requested := false
		for _, sheetName := range sheetNames {
			if sheetName == defaultName {
				requested = true
				break
			}
		}
		if !requested {
			if err := workbook.DeleteSheet(defaultName); err != nil {
				workbook.Close()
				return nil, func() {}, err
			}
		}
	}
	if err := workbook.SaveAs(absoluteFilePath); err != nil {
		workbook.Close()
		return nil, func() {}, err
	}
	backend := NewExcelizeExcel(workbook)
	return backend, func() {
		workbook.Close()
	}, nil
}

// BorderType represents border direction
type BorderType string

const (
	BorderTypeLeft         BorderType = "left"
	BorderTypeRight        BorderType = "right"
	BorderTypeTop          BorderType = "top"
	BorderTypeBottom       BorderType = "bottom"
	BorderTypeDiagonalDown BorderType = "diagonalDown"
	BorderTypeDiagonalUp   BorderType = "diagonalUp"
)

func (b BorderType) String() string {
	return string(b)
}

func (b BorderType) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func BorderTypeValues() []BorderType {
	return []BorderType{
		BorderTypeLeft,
		BorderTypeRight,
		BorderTypeTop,
		BorderTypeBottom,
		BorderTypeDiagonalDown,
		BorderTypeDiagonalUp,
	}
}

// BorderStyle represents border style constants
type BorderStyle string

const (
	BorderStyleNone             BorderStyle = "none"
	BorderStyleContinuous       BorderStyle = "continuous"
	BorderStyleDash             BorderStyle = "dash"
	BorderStyleDot              BorderStyle = "dot"
	BorderStyleDouble           BorderStyle = "double"
	BorderStyleDashDot          BorderStyle = "dashDot"
	BorderStyleDashDotDot       BorderStyle = "dashDotDot"
	BorderStyleSlantDashDot     BorderStyle = "slantDashDot"
	BorderStyleMediumDashDot    BorderStyle = "mediumDashDot"
	BorderStyleMediumDashDotDot BorderStyle = "mediumDashDotDot"
)

func (b BorderStyle) String() string {
	return string(b)
}

func (b BorderStyle) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func BorderStyleValues() []BorderStyle {
	return []BorderStyle{
		BorderStyleNone,
		BorderStyleContinuous,
		BorderStyleDash,
		BorderStyleDot,
		BorderStyleDouble,
		BorderStyleDashDot,
		BorderStyleDashDotDot,
		BorderStyleSlantDashDot,
		BorderStyleMediumDashDot,
		BorderStyleMediumDashDotDot,
	}
}

// FontUnderline represents underline styles for font
type FontUnderline string

const (
	FontUnderlineNone             FontUnderline = "none"
	FontUnderlineSingle           FontUnderline = "single"
	FontUnderlineDouble           FontUnderline = "double"
	FontUnderlineSingleAccounting FontUnderline = "singleAccounting"
	FontUnderlineDoubleAccounting FontUnderline = "doubleAccounting"
)

func (f FontUnderline) String() string {
	return string(f)
}

func (f FontUnderline) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func FontUnderlineValues() []FontUnderline {
	return []FontUnderline{
		FontUnderlineNone,
		FontUnderlineSingle,
		FontUnderlineDouble,
		FontUnderlineSingleAccounting,
		FontUnderlineDoubleAccounting,
	}
}

// FontVertAlign represents vertical alignment options for font styles
type FontVertAlign string

const (
	FontVertAlignBaseline    FontVertAlign = "baseline"
	FontVertAlignSuperscript FontVertAlign = "superscript"
	FontVertAlignSubscript   FontVertAlign = "subscript"
)

func (v FontVertAlign) String() string {
	return string(v)
}

func (v FontVertAlign) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func FontVertAlignValues() []FontVertAlign {
	return []FontVertAlign{
		FontVertAlignBaseline,
		FontVertAlignSuperscript,
		FontVertAlignSubscript,
	}
}

// FillType represents fill types for cell styles
type FillType string

const (
	FillTypeGradient FillType = "gradient"
	FillTypePattern  FillType = "pattern"
)

func (f FillType) String() string {
	return string(f)
}

func (f FillType) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func FillTypeValues() []FillType {
	return []FillType{
		FillTypeGradient,
		FillTypePattern,
	}
}

// FillPattern represents fill pattern constants
type FillPattern string

const (
	FillPatternNone            FillPattern = "none"
	FillPatternSolid           FillPattern = "solid"
	FillPatternMediumGray      FillPattern = "mediumGray"
	FillPatternDarkGray        FillPattern = "darkGray"
	FillPatternLightGray       FillPattern = "lightGray"
	FillPatternDarkHorizontal  FillPattern = "darkHorizontal"
	FillPatternDarkVertical    FillPattern = "darkVertical"
	FillPatternDarkDown        FillPattern = "darkDown"
	FillPatternDarkUp          FillPattern = "darkUp"
	FillPatternDarkGrid        FillPattern = "darkGrid"
	FillPatternDarkTrellis     FillPattern = "darkTrellis"
	FillPatternLightHorizontal FillPattern = "lightHorizontal"
	FillPatternLightVertical   FillPattern = "lightVertical"
	FillPatternLightDown       FillPattern = "lightDown"
	FillPatternLightUp         FillPattern = "lightUp"
	FillPatternLightGrid       FillPattern = "lightGrid"
	FillPatternLightTrellis    FillPattern = "lightTrellis"
	FillPatternGray125         FillPattern = "gray125"
	FillPatternGray0625        FillPattern = "gray0625"
)

func (f FillPattern) String() string {
	return string(f)
}

func (f FillPattern) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func FillPatternValues() []FillPattern {
	return []FillPattern{
		FillPatternNone,
		FillPatternSolid,
		FillPatternMediumGray,
		FillPatternDarkGray,
		FillPatternLightGray,
		FillPatternDarkHorizontal,
		FillPatternDarkVertical,
		FillPatternDarkDown,
		FillPatternDarkUp,
		FillPatternDarkGrid,
		FillPatternDarkTrellis,
		FillPatternLightHorizontal,
		FillPatternLightVertical,
		FillPatternLightDown,
		FillPatternLightUp,
		FillPatternLightGrid,
		FillPatternLightTrellis,
		FillPatternGray125,
		FillPatternGray0625,
	}
}

// FillShading represents fill shading constants
type FillShading string

const (
	FillShadingHorizontal   FillShading = "horizontal"
	FillShadingVertical     FillShading = "vertical"
	FillShadingDiagonalDown FillShading = "diagonalDown"
	FillShadingDiagonalUp   FillShading = "diagonalUp"
	FillShadingFromCenter   FillShading = "fromCenter"
	FillShadingFromCorner   FillShading = "fromCorner"
)

func (f FillShading) String() string {
	return string(f)
}

func (f FillShading) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func FillShadingValues() []FillShading {
	return []FillShading{
		FillShadingHorizontal,
		FillShadingVertical,
		FillShadingDiagonalDown,
		FillShadingDiagonalUp,
		FillShadingFromCenter,
		FillShadingFromCorner,
	}
}

// ChartType represents the chart kinds that can be inserted
type ChartType string

const (
	ChartTypeCol         ChartType = "col"
	ChartTypeColStacked  ChartType = "colStacked"
	ChartTypeBar         ChartType = "bar"
	ChartTypeBarStacked  ChartType = "barStacked"
	ChartTypeLine        ChartType = "line"
	ChartTypePie         ChartType = "pie"
	ChartTypeDoughnut    ChartType = "doughnut"
	ChartTypeArea        ChartType = "area"
	ChartTypeAreaStacked ChartType = "areaStacked"
	ChartTypeRadar       ChartType = "radar"
	ChartTypeScatter     ChartType = "scatter"
	ChartTypeBubble      ChartType = "bubble"
)

func (c ChartType) String() string {
	return string(c)
}

func (c ChartType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func ChartTypeValues() []ChartType {
	return []ChartType{
		ChartTypeCol,
		ChartTypeColStacked,
		ChartTypeBar,
		ChartTypeBarStacked,
		ChartTypeLine,
		ChartTypePie,
		ChartTypeDoughnut,
		ChartTypeArea,
		ChartTypeAreaStacked,
		ChartTypeRadar,
		ChartTypeScatter,
		ChartTypeBubble,
	}
}

// ChartLegendPosition represents where the chart legend is placed
type ChartLegendPosition string

const (
	ChartLegendPositionNone   ChartLegendPosition = "none"
	ChartLegendPositionTop    ChartLegendPosition = "top"
	ChartLegendPositionBottom ChartLegendPosition = "bottom"
	ChartLegendPositionLeft   ChartLegendPosition = "left"
	ChartLegendPositionRight  ChartLegendPosition = "right"
)

func (c ChartLegendPosition) String() string {
	return string(c)
}

func (c ChartLegendPosition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func ChartLegendPositionValues() []ChartLegendPosition {
	return []ChartLegendPosition{
		ChartLegendPositionNone,
		ChartLegendPositionTop,
		ChartLegendPositionBottom,
		ChartLegendPositionLeft,
		ChartLegendPositionRight,
	}
}

// DataValidationType represents data validation rule kinds
type DataValidationType string

const (
	DataValidationTypeList       DataValidationType = "list"
	DataValidationTypeWhole      DataValidationType = "whole"
	DataValidationTypeDecimal    DataValidationType = "decimal"
	DataValidationTypeTextLength DataValidationType = "textLength"
)

func (d DataValidationType) String() string {
	return string(d)
}

func (d DataValidationType) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func DataValidationTypeValues() []DataValidationType {
	return []DataValidationType{
		DataValidationTypeList,
		DataValidationTypeWhole,
		DataValidationTypeDecimal,
		DataValidationTypeTextLength,
	}
}

// DataValidationOperator represents comparison operators for numeric rules
type DataValidationOperator string

const (
	DataValidationOperatorBetween            DataValidationOperator = "between"
	DataValidationOperatorNotBetween         DataValidationOperator = "notBetween"
	DataValidationOperatorEqual              DataValidationOperator = "equal"
	DataValidationOperatorNotEqual           DataValidationOperator = "notEqual"
	DataValidationOperatorGreaterThan        DataValidationOperator = "greaterThan"
	DataValidationOperatorGreaterThanOrEqual DataValidationOperator = "greaterThanOrEqual"
	DataValidationOperatorLessThan           DataValidationOperator = "lessThan"
	DataValidationOperatorLessThanOrEqual    DataValidationOperator = "lessThanOrEqual"
)

func (d DataValidationOperator) String() string {
	return string(d)
}

func (d DataValidationOperator) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func DataValidationOperatorValues() []DataValidationOperator {
	return []DataValidationOperator{
		DataValidationOperatorBetween,
		DataValidationOperatorNotBetween,
		DataValidationOperatorEqual,
		DataValidationOperatorNotEqual,
		DataValidationOperatorGreaterThan,
		DataValidationOperatorGreaterThanOrEqual,
		DataValidationOperatorLessThan,
		DataValidationOperatorLessThanOrEqual,
	}
}
