package converter

import "github.com/nconklindev/menuconv/internal/types"

const (
	MenuItemColumn       = "Menu Item"
	KeyIngredientsColumn = "Key Ingredients"
)

// findHeaderRow locates the row holding the first "Menu Item" cell,
// scanning rows top to bottom and cells left to right. Returns -1 if none.
func findHeaderRow(rows [][]string) int {
	for i, row := range rows {
		for _, cell := range row {
			if cell == MenuItemColumn {
				return i
			}
		}
	}
	return -1
}

// NormalizeSheet promotes the header row to column names and keeps only the
// non-blank rows below it. A sheet without a header row comes back with no
// headers and no rows.
func NormalizeSheet(name string, rows [][]string) *types.SheetData {
	data := &types.SheetData{Name: name}

	headerRowIdx := findHeaderRow(rows)
	if headerRowIdx == -1 {
		return data
	}

	data.Headers = rows[headerRowIdx]
	data.HeaderRow = headerRowIdx
	data.Rows = [][]string{}

	for i := headerRowIdx + 1; i < len(rows); i++ {
		if isBlankRow(rows[i]) {
			continue
		}
		data.Rows = append(data.Rows, rows[i])
		data.RowNumbers = append(data.RowNumbers, i+1)
	}

	return data
}

// isBlankRow reports whether every cell of a row is empty. Spacer rows
// between menu items are not records.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
