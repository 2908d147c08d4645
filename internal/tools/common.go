package tools

import (
	"crypto/md5"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/soralis/excel-mcp-server/internal/excel"

	z "github.com/Oudwins/zog"
)

// StyleRegistry deduplicates cell styles seen while reading a range so a
// response can reference each distinct style by a short ID.
type StyleRegistry struct {
	styles   map[string]*excel.CellStyle // styleID -> CellStyle
	hashToID map[string]string           // styleHash -> styleID
	counter  int
}

func NewStyleRegistry() *StyleRegistry {
	return &StyleRegistry{
		styles:   make(map[string]*excel.CellStyle),
		hashToID: make(map[string]string),
		counter:  0,
	}
}

func (sr *StyleRegistry) RegisterStyle(cellStyle *excel.CellStyle) string {
	if cellStyle == nil || isEmptyStyle(cellStyle) {
		return ""
	}

	styleHash := sr.calculateStyleHash(cellStyle)

	if existingID, exists := sr.hashToID[styleHash]; exists {
		return existingID
	}

	sr.counter++
	styleID := fmt.Sprintf("s%d", sr.counter)
	sr.styles[styleID] = cellStyle
	sr.hashToID[styleHash] = styleID

	return styleID
}

func isEmptyStyle(style *excel.CellStyle) bool {
	if len(style.Border) > 0 || style.Font != nil || style.NumFmt != nil {
		return false
	}
	if style.DecimalPlaces != nil && *style.DecimalPlaces != 0 {
		return false
	}
	if style.Fill != nil && style.Fill.Type != "" {
		return false
	}
	return true
}

func (sr *StyleRegistry) calculateStyleHash(cellStyle *excel.CellStyle) string {
	yamlBytes, err := yaml.MarshalWithOptions(cellStyle, yaml.Flow(true), yaml.OmitEmpty())
	if err != nil {
		return ""
	}

	hash := md5.Sum(yamlBytes)
	return fmt.Sprintf("%x", hash)[:8]
}

// StyleDefinition pairs a registry ID with its style for responses.
type StyleDefinition struct {
	ID    string           `json:"id"`
	Style *excel.CellStyle `json:"style"`
}

// Definitions returns the registered styles ordered by ID.
func (sr *StyleRegistry) Definitions() []StyleDefinition {
	var styleIDs []string
	for styleID := range sr.styles {
		styleIDs = append(styleIDs, styleID)
	}
	slices.SortFunc(styleIDs, func(a, b string) int {
		// styleID must have number suffix
		ai, _ := strconv.Atoi(a[1:])
		bi, _ := strconv.Atoi(b[1:])
		return ai - bi
	})

	definitions := make([]StyleDefinition, len(styleIDs))
	for i, styleID := range styleIDs {
		definitions[i] = StyleDefinition{ID: styleID, Style: sr.styles[styleID]}
	}
	return definitions
}

// SheetNameList collects the names of all worksheets in order.
func SheetNameList(workbook excel.Excel) ([]string, error) {
	sheets, err := workbook.GetSheets()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(sheets))
	for i, sheet := range sheets {
		defer sheet.Release()
		name, err := sheet.Name()
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

func AbsolutePathTest() z.Test[*string] {
	return z.Test[*string]{
		Func: func(path *string, ctx z.Ctx) {
			if !filepath.IsAbs(*path) {
				ctx.AddIssue(ctx.Issue().SetMessage(fmt.Sprintf("Path '%s' is not absolute", *path)))
			}
		},
	}
}
