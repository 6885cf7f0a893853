package types

// MenuItem is one output record. The JSON keys are part of the output format.
type MenuItem struct {
	CuisineType    string   `json:"CuisineType"`
	MenuItem       string   `json:"MenuItem"`
	KeyIngredients []string `json:"KeyIngredients"`
	Nutrients      []string `json:"Nutrients"`
	ImageURL       string   `json:"ImageURL"`
}

type SheetSummary struct {
	Name    string
	Records int
	Skipped bool
}

type ConversionResult struct {
	InputFile      string
	OutputFile     string
	RecordsWritten int
	Sheets         []SheetSummary
}

// SkippedSheets returns the names of sheets that contributed no records.
func (r *ConversionResult) SkippedSheets() []string {
	var names []string
	for _, s := range r.Sheets {
		if s.Skipped {
			names = append(names, s.Name)
		}
	}
	return names
}

type SheetData struct {
	Name      string
	Headers   []string
	Rows      [][]string
	HeaderRow int // 0-based index of the header row in the raw grid
	// RowNumbers holds the 1-based worksheet row number of each entry in Rows.
	RowNumbers []int
}

// Empty reports whether the sheet has no data rows under a header.
func (d *SheetData) Empty() bool {
	return d.Headers == nil || len(d.Rows) == 0
}
