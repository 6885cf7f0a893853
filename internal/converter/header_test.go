package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSheet(t *testing.T) {
	tests := []struct {
		name        string
		rows        [][]string
		wantHeaders []string
		wantRows    [][]string
		wantHeader  int
		wantNumbers []int
		wantEmpty   bool
	}{
		{
			name: "Header in first row",
			rows: [][]string{
				{"Menu Item", "Key Ingredients"},
				{"Soup", "Leek"},
			},
			wantHeaders: []string{"Menu Item", "Key Ingredients"},
			wantRows:    [][]string{{"Soup", "Leek"}},
			wantHeader:  0,
			wantNumbers: []int{2},
		},
		{
			name: "Decorative rows above header are dropped",
			rows: [][]string{
				{"Our Menu"},
				{},
				{"", "Menu Item", "Key Ingredients"},
				{"", "Soup", "Leek"},
				{"", "Salad", ""},
			},
			wantHeaders: []string{"", "Menu Item", "Key Ingredients"},
			wantRows:    [][]string{{"", "Soup", "Leek"}, {"", "Salad", ""}},
			wantHeader:  2,
			wantNumbers: []int{4, 5},
		},
		{
			name: "Blank spacer rows are dropped",
			rows: [][]string{
				{"Menu Item", "Key Ingredients"},
				{"Soup", "Leek"},
				{},
				{"", ""},
				{"Salad", ""},
			},
			wantHeaders: []string{"Menu Item", "Key Ingredients"},
			wantRows:    [][]string{{"Soup", "Leek"}, {"Salad", ""}},
			wantHeader:  0,
			wantNumbers: []int{2, 5},
		},
		{
			name: "Only blank rows under the header",
			rows: [][]string{
				{"Menu Item", "Key Ingredients"},
				{},
				{"", ""},
			},
			wantHeaders: []string{"Menu Item", "Key Ingredients"},
			wantRows:    [][]string{},
			wantEmpty:   true,
		},
		{
			name: "First match in row-major order wins",
			rows: [][]string{
				{"Title", "", "Menu Item"},
				{"Menu Item", "Key Ingredients"},
				{"Soup", "Leek", "x"},
			},
			wantHeaders: []string{"Title", "", "Menu Item"},
			wantRows:    [][]string{{"Menu Item", "Key Ingredients"}, {"Soup", "Leek", "x"}},
			wantHeader:  0,
			wantNumbers: []int{2, 3},
		},
		{
			name:      "No header cell",
			rows:      [][]string{{"Item", "Ingredients"}, {"Soup", "Leek"}},
			wantEmpty: true,
		},
		{
			name:      "Match must be exact",
			rows:      [][]string{{"menu item", "Menu Item "}, {"Soup", "Leek"}},
			wantEmpty: true,
		},
		{
			name:        "Header without data rows",
			rows:        [][]string{{"Menu Item", "Key Ingredients"}},
			wantHeaders: []string{"Menu Item", "Key Ingredients"},
			wantRows:    [][]string{},
			wantEmpty:   true,
		},
		{
			name:      "Empty grid",
			rows:      nil,
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSheet("Italian", tt.rows)

			assert.Equal(t, "Italian", got.Name)
			assert.Equal(t, tt.wantEmpty, got.Empty())
			if tt.wantHeaders == nil {
				assert.Nil(t, got.Headers)
				assert.Empty(t, got.Rows)
				return
			}
			assert.Equal(t, tt.wantHeaders, got.Headers)
			assert.Equal(t, tt.wantRows, got.Rows)
			assert.Equal(t, tt.wantHeader, got.HeaderRow)
			assert.Equal(t, tt.wantNumbers, got.RowNumbers)
		})
	}
}
