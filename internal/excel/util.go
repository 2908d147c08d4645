package excel

import (
	"fmt"
	"regexp"

	"github.com/xuri/excelize/v2"
)

var rangePattern = regexp.MustCompile(`^(\$?[A-Z]+\$?\d+)(?::(\$?[A-Z]+\$?\d+))?$`)

// ParseRange parses Excel's range string (e.g. "A1:C10" or a single
// cell "A1") into 1-based column/row bounds.
func ParseRange(rangeStr string) (int, int, int, int, error) {
	matches := rangePattern.FindStringSubmatch(rangeStr)
	if matches == nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid range format: %s", rangeStr)
	}
	startCol, startRow, err := excelize.CellNameToCoordinates(matches[1])
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if matches[2] == "" {
		return startCol, startRow, startCol, startRow, nil
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(matches[2])
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if endCol < startCol || endRow < startRow {
		return 0, 0, 0, 0, fmt.Errorf("range end precedes range start: %s", rangeStr)
	}
	return startCol, startRow, endCol, endRow, nil
}

// NormalizeRange rewrites a range string without absolute markers,
// always in the "A1:C10" two-cell form.
func NormalizeRange(rangeStr string) string {
	startCol, startRow, endCol, endRow, err := ParseRange(rangeStr)
	if err != nil {
		return rangeStr
	}
	startCell, _ := excelize.CoordinatesToCellName(startCol, startRow)
	endCell, _ := excelize.CoordinatesToCellName(endCol, endRow)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}
