package excel

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestParseRange(t *testing.T) {
	t.Run("two-cell range", func(t *testing.T) {
		startCol, startRow, endCol, endRow, err := ParseRange("A1:C10")
		assert.NilError(t, err)
		assert.Equal(t, startCol, 1)
		assert.Equal(t, startRow, 1)
		assert.Equal(t, endCol, 3)
		assert.Equal(t, endRow, 10)
	})

	t.Run("single cell", func(t *testing.T) {
		startCol, startRow, endCol, endRow, err := ParseRange("B2")
		assert.NilError(t, err)
		assert.Equal(t, startCol, 2)
		assert.Equal(t, startRow, 2)
		assert.Equal(t, endCol, 2)
		assert.Equal(t, endRow, 2)
	})

	t.Run("absolute references", func(t *testing.T) {
		startCol, startRow, endCol, endRow, err := ParseRange("$A$1:$C$10")
		assert.NilError(t, err)
		assert.Equal(t, startCol, 1)
		assert.Equal(t, startRow, 1)
		assert.Equal(t, endCol, 3)
		assert.Equal(t, endRow, 10)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, _, _, _, err := ParseRange("not-a-range")
		assert.ErrorContains(t, err, "invalid range format")
	})

	t.Run("end precedes start", func(t *testing.T) {
		_, _, _, _, err := ParseRange("C10:A1")
		assert.ErrorContains(t, err, "range end precedes range start")
	})
}

func TestNormalizeRange(t *testing.T) {
	t.Run("strips absolute markers", func(t *testing.T) {
		assert.Equal(t, NormalizeRange("$A$1:$C$10"), "A1:C10")
	})

	t.Run("expands single cell", func(t *testing.T) {
		assert.Equal(t, NormalizeRange("B2"), "B2:B2")
	})

	t.Run("passes through invalid input", func(t *testing.T) {
		assert.Equal(t, NormalizeRange("bogus"), "bogus")
	})
}
