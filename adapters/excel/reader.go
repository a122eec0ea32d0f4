// Package excel loads XLSX workbooks into analysis datasets.
package excel

import (
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"goeda/domain/dataset"
	"goeda/internal"
	"goeda/internal/errors"
)

// Reader loads one worksheet of an XLSX file into a dataset
type Reader struct {
	path  string
	sheet string
	log   *internal.Logger
}

// NewReader creates a reader for the given workbook. An empty sheet name
// selects the first sheet.
func NewReader(path, sheet string) *Reader {
	return &Reader{path: path, sheet: sheet, log: internal.DefaultLogger}
}

// Read opens the workbook and returns the sheet as a dataset. The first row
// is the header; column types are inferred from the cell values.
func (r *Reader) Read() (*dataset.Dataset, error) {
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return nil, errors.BadInput("XLSX file not found: " + r.path)
	}

	start := time.Now()
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open XLSX file")
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheet)
	}
	r.log.Debug("read sheet %s: %d rows in %s", sheet, len(rows), time.Since(start))

	if len(rows) < 2 {
		return nil, errors.EmptyData("sheet needs a header row and at least one data row")
	}

	header := rows[0]
	records := make([][]string, len(header))
	for i := range records {
		records[i] = make([]string, len(rows)-1)
	}
	for rowIdx, row := range rows[1:] {
		for colIdx := range header {
			if colIdx < len(row) {
				records[colIdx][rowIdx] = strings.TrimSpace(row[colIdx])
			}
		}
	}

	columns := make([]dataset.Column, len(header))
	for i, name := range header {
		columns[i] = buildColumn(strings.TrimSpace(name), records[i])
	}

	return dataset.New(columns)
}

// buildColumn infers the column type from its raw cell values. A column is
// boolean when every non-empty cell is a 0/1 or true/false literal, numeric
// when every non-empty cell parses as a float, categorical otherwise.
func buildColumn(name string, cells []string) dataset.Column {
	boolean, numeric := len(cells) > 0, len(cells) > 0
	nonEmpty := 0
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		nonEmpty++
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			numeric = false
		}
		switch strings.ToLower(cell) {
		case "0", "1", "true", "false":
		default:
			boolean = false
		}
	}
	if nonEmpty == 0 {
		boolean, numeric = false, false
	}

	if boolean || numeric {
		colType := dataset.TypeNumeric
		if boolean {
			colType = dataset.TypeBoolean
		}
		floats := make([]float64, len(cells))
		for i, cell := range cells {
			floats[i] = parseFloatCell(cell)
		}
		return dataset.Column{Name: name, Type: colType, Floats: floats}
	}

	return dataset.Column{Name: name, Type: dataset.TypeCategorical, Labels: cells}
}

func parseFloatCell(cell string) float64 {
	if cell == "" {
		return math.NaN()
	}
	switch strings.ToLower(cell) {
	case "true":
		return 1
	case "false":
		return 0
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
