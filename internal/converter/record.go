package converter

import (
	"fmt"
	"strings"

	"github.com/nconklindev/menuconv/internal/types"
)

const ingredientSeparator = ", "

// Column is one named cell of a data row.
type Column struct {
	Name  string
	Value string
}

// Row is a data row keyed by header name, in header order.
type Row []Column

// NewRow pairs a data row with the header names. Cells missing from a short
// row are empty. A repeated header name keeps its first position and takes
// the last value, the way an ordered map would.
func NewRow(headers, cells []string) Row {
	row := make(Row, 0, len(headers))
	index := make(map[string]int, len(headers))

	for i, name := range headers {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		if pos, ok := index[name]; ok {
			row[pos].Value = value
			continue
		}
		index[name] = len(row)
		row = append(row, Column{Name: name, Value: value})
	}

	return row
}

// Get returns the value of the named column.
func (r Row) Get(name string) (string, bool) {
	for _, c := range r {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// IsTruthy reports whether a cell counts as populated. Only the empty string
// is falsy; "0" and "False" are populated values.
func IsTruthy(value string) bool {
	return value != ""
}

// ExtractIngredients splits a Key Ingredients cell on ", ".
// Values using any other separator are kept whole.
func ExtractIngredients(value string) []string {
	ingredients := []string{}
	if !IsTruthy(value) {
		return ingredients
	}

	if strings.Contains(value, ",") {
		return append(ingredients, strings.Split(value, ingredientSeparator)...)
	}
	return append(ingredients, value)
}

// ExtractNutrients returns the names of populated columns to the right of
// Key Ingredients, in column order.
func ExtractNutrients(row Row) []string {
	nutrients := []string{}
	isNutrient := false

	for _, c := range row {
		if isNutrient && IsTruthy(c.Value) {
			nutrients = append(nutrients, c.Name)
		}
		if c.Name == KeyIngredientsColumn {
			isNutrient = true
		}
	}

	return nutrients
}

// NewMenuItem builds the output record for one data row of a cuisine sheet.
func NewMenuItem(cuisineType string, row Row) (types.MenuItem, error) {
	name, ok := row.Get(MenuItemColumn)
	if !ok {
		return types.MenuItem{}, fmt.Errorf("%w %q", ErrMissingColumn, MenuItemColumn)
	}
	ingredients, ok := row.Get(KeyIngredientsColumn)
	if !ok {
		return types.MenuItem{}, fmt.Errorf("%w %q", ErrMissingColumn, KeyIngredientsColumn)
	}

	return types.MenuItem{
		CuisineType:    cuisineType,
		MenuItem:       name,
		KeyIngredients: ExtractIngredients(ingredients),
		Nutrients:      ExtractNutrients(row),
		ImageURL:       "",
	}, nil
}
