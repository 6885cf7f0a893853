package converter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nconklindev/menuconv/internal/types"

	"go.uber.org/zap"
)

// LoggerName tags every line the converter logs.
const LoggerName = "ExcelToJson"

const DefaultIndent = "    "

// Options holds the paths of one conversion run.
type Options struct {
	InputFile  string
	OutputFile string
	Indent     string
}

// Converter turns a menu workbook into a JSON array of menu items.
type Converter struct {
	opts Options
	log  *zap.Logger
	open OpenFunc
}

// New returns a Converter reading xlsx files. A nil logger discards output.
func New(opts Options, log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	return &Converter{
		opts: opts,
		log:  log.Named(LoggerName),
		open: OpenXLSX,
	}
}

// WithOpener replaces the workbook opener.
func (c *Converter) WithOpener(open OpenFunc) *Converter {
	c.open = open
	return c
}

// Run converts every sheet of the input workbook and writes the output file.
// Nothing is written unless every sheet converts. Progress in [0,1] is sent
// after each sheet when progressChan is non-nil; sends never block.
func (c *Converter) Run(progressChan chan<- float64) (*types.ConversionResult, error) {
	c.log.Info("*****ExcelToJson converter started*****")

	wb, err := c.open(c.opts.InputFile)
	if err != nil {
		c.log.Error(fmt.Sprintf("Cannot locate file '%s'", filepath.Base(c.opts.InputFile)), zap.Error(err))
		if !errors.Is(err, ErrOpenWorkbook) {
			err = fmt.Errorf("%w %s: %w", ErrOpenWorkbook, c.opts.InputFile, err)
		}
		return nil, err
	}
	defer wb.Close()

	result, items, err := c.convert(wb, progressChan)
	if err != nil {
		c.log.Error("Conversion aborted", zap.Error(err))
		return nil, err
	}

	c.log.Info("Done converting excel to json. Saving records...")

	if err := WriteJSON(c.opts.OutputFile, items, c.opts.Indent); err != nil {
		c.log.Error("Cannot save records", zap.Error(err))
		return nil, err
	}

	c.log.Debug("Wrote output file", zap.Int("records", len(items)), zap.String("output", c.opts.OutputFile))
	c.log.Info("Records saved.")
	return result, nil
}

func (c *Converter) convert(wb Workbook, progressChan chan<- float64) (*types.ConversionResult, []types.MenuItem, error) {
	result := &types.ConversionResult{
		InputFile:  c.opts.InputFile,
		OutputFile: c.opts.OutputFile,
	}
	items := []types.MenuItem{}

	sheetNames := wb.SheetNames()
	totalSheets := len(sheetNames)

	reportProgress := func(current int) {
		if progressChan != nil && totalSheets > 0 {
			select {
			case progressChan <- float64(current) / float64(totalSheets):
			default:
			}
		}
	}

	for i, sheetName := range sheetNames {
		c.log.Info(fmt.Sprintf("Converting sheet '%s' to json...", sheetName))

		rows, err := wb.Rows(sheetName)
		if err != nil {
			return nil, nil, fmt.Errorf("reading sheet %q: %w", sheetName, err)
		}

		data := NormalizeSheet(sheetName, rows)
		if data.Empty() {
			c.log.Warn(fmt.Sprintf("%s sheet has no records...", sheetName))
			result.Sheets = append(result.Sheets, types.SheetSummary{Name: sheetName, Skipped: true})
			reportProgress(i + 1)
			continue
		}

		c.log.Info(fmt.Sprintf("Records found: %d", len(data.Rows)))

		sheetItems, err := convertSheet(data)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, sheetItems...)

		result.Sheets = append(result.Sheets, types.SheetSummary{Name: sheetName, Records: len(sheetItems)})
		reportProgress(i + 1)
	}

	result.RecordsWritten = len(items)
	return result, items, nil
}

// convertSheet maps every data row of a normalized sheet to a menu item.
func convertSheet(data *types.SheetData) ([]types.MenuItem, error) {
	items := make([]types.MenuItem, 0, len(data.Rows))

	for i, cells := range data.Rows {
		item, err := NewMenuItem(data.Name, NewRow(data.Headers, cells))
		if err != nil {
			return nil, &RowError{Sheet: data.Name, Row: data.RowNumbers[i], Err: err}
		}
		items = append(items, item)
	}

	return items, nil
}

// WriteJSON writes items as one indented JSON array, replacing the file.
// The file is only created once encoding has succeeded.
func WriteJSON(outputFile string, items []types.MenuItem, indent string) error {
	if items == nil {
		items = []types.MenuItem{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}

	if dir := filepath.Dir(outputFile); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	outFile, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if _, err := outFile.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}

	return outFile.Close()
}
