package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// PagingStrategy computes the paging ranges of a worksheet.
type PagingStrategy interface {
	// CalculatePagingRanges returns the list of available paging ranges.
	CalculatePagingRanges() []string
	// ValidatePagingRange verifies that the given range is pageable.
	ValidatePagingRange(rangeStr string) error
}

// ExcelizeFixedSizePagingStrategy splits the used range into pages of a
// fixed cell count.
type ExcelizeFixedSizePagingStrategy struct {
	pageSize  int
	worksheet *ExcelizeWorksheet
	dimension string
}

func NewExcelizeFixedSizePagingStrategy(pageSize int, worksheet *ExcelizeWorksheet) (*ExcelizeFixedSizePagingStrategy, error) {
	if pageSize <= 0 {
		pageSize = 5000
	}

	dimension, err := worksheet.GetDimention()
	if err != nil {
		return nil, err
	}

	return &ExcelizeFixedSizePagingStrategy{
		pageSize:  pageSize,
		worksheet: worksheet,
		dimension: dimension,
	}, nil
}

// CalculatePagingRanges generates row-aligned ranges so that each page
// holds at most pageSize cells.
func (s *ExcelizeFixedSizePagingStrategy) CalculatePagingRanges() []string {
	startCol, startRow, endCol, endRow, err := ParseRange(s.dimension)
	if err != nil {
		return []string{}
	}

	totalCols := endCol - startCol + 1
	cellsPerPage := s.pageSize

	rowsPerPage := cellsPerPage / totalCols
	if rowsPerPage < 1 {
		rowsPerPage = 1
	}

	var ranges []string
	currentRow := startRow
	for currentRow <= endRow {
		pageEndRow := currentRow + rowsPerPage - 1
		if pageEndRow > endRow {
			pageEndRow = endRow
		}

		startRange, _ := excelize.CoordinatesToCellName(startCol, currentRow)
		endRange, _ := excelize.CoordinatesToCellName(endCol, pageEndRow)
		ranges = append(ranges, fmt.Sprintf("%s:%s", startRange, endRange))

		currentRow = pageEndRow + 1
	}

	return ranges
}

// ValidatePagingRange verifies that the given range lies within the sheet
// dimension and does not exceed the page size.
func (s *ExcelizeFixedSizePagingStrategy) ValidatePagingRange(rangeStr string) error {
	startCol, startRow, endCol, endRow, err := ParseRange(rangeStr)
	if err != nil {
		return fmt.Errorf("invalid range format: %v", err)
	}

	dimStartCol, dimStartRow, dimEndCol, dimEndRow, err := ParseRange(s.dimension)
	if err != nil {
		return fmt.Errorf("invalid dimension format: %v", err)
	}

	if startCol < dimStartCol || startRow < dimStartRow ||
		endCol > dimEndCol || endRow > dimEndRow {
		return fmt.Errorf("range %s is outside sheet dimensions %s",
			rangeStr, s.dimension)
	}

	cellCount := (endRow - startRow + 1) * (endCol - startCol + 1)
	if cellCount > s.pageSize {
		return fmt.Errorf("range contains %d cells, exceeding page size of %d",
			cellCount, s.pageSize)
	}

	return nil
}

// PagingRangeService provides paging operations over a strategy.
type PagingRangeService struct {
	strategy PagingStrategy
}

func NewPagingRangeService(strategy PagingStrategy) *PagingRangeService {
	return &PagingRangeService{strategy: strategy}
}

// GetPagingRanges returns the list of available paging ranges.
func (s *PagingRangeService) GetPagingRanges() []string {
	return s.strategy.CalculatePagingRanges()
}

// ValidatePagingRange verifies that the given range is pageable.
func (s *PagingRangeService) ValidatePagingRange(rangeStr string) error {
	return s.strategy.ValidatePagingRange(rangeStr)
}

// FindNextRange returns the paging range that follows currentRange, or an
// empty string when currentRange is the last page or not a paging range.
func (s *PagingRangeService) FindNextRange(allRanges []string, currentRange string) string {
	normalized := NormalizeRange(currentRange)
	for i, r := range allRanges {
		if NormalizeRange(r) == normalized && i+1 < len(allRanges) {
			return allRanges[i+1]
		}
	}
	return ""
}

// FilterRemainingPagingRanges returns the ranges not yet read.
func (s *PagingRangeService) FilterRemainingPagingRanges(allRanges []string, knownRanges []string) []string {
	if len(knownRanges) == 0 {
		return allRanges
	}

	knownMap := make(map[string]bool)
	for _, r := range knownRanges {
		knownMap[r] = true
	}

	remaining := make([]string, 0)
	for _, r := range allRanges {
		if !knownMap[r] {
			remaining = append(remaining, r)
		}
	}

	return remaining
}
