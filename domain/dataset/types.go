package dataset

import (
	"math"

	"goeda/internal/errors"
)

// ColumnType classifies a column for analysis purposes
type ColumnType string

const (
	TypeNumeric     ColumnType = "numeric"
	TypeCategorical ColumnType = "categorical"
	TypeBoolean     ColumnType = "boolean"
)

// Column is a single named, typed column. Numeric and boolean columns carry
// their values in Floats (booleans as 0/1) with NaN marking a missing cell;
// categorical columns carry Labels with the empty string marking a missing
// cell.
type Column struct {
	Name   string
	Type   ColumnType
	Floats []float64
	Labels []string
}

// IsNumeric reports whether the column participates in numeric analysis.
// Boolean columns do: they are stored as 0/1 and summarize like integers.
func (c Column) IsNumeric() bool {
	return c.Type == TypeNumeric || c.Type == TypeBoolean
}

// Len returns the number of rows in the column
func (c Column) Len() int {
	if c.IsNumeric() {
		return len(c.Floats)
	}
	return len(c.Labels)
}

// MissingCount returns the number of absent cells
func (c Column) MissingCount() int {
	missing := 0
	if c.IsNumeric() {
		for _, v := range c.Floats {
			if math.IsNaN(v) {
				missing++
			}
		}
		return missing
	}
	for _, v := range c.Labels {
		if v == "" {
			missing++
		}
	}
	return missing
}

// NonMissing returns the numeric values of the column with missing cells
// dropped. For categorical columns it returns nil.
func (c Column) NonMissing() []float64 {
	if !c.IsNumeric() {
		return nil
	}
	values := make([]float64, 0, len(c.Floats))
	for _, v := range c.Floats {
		if !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	return values
}

// Dataset is an ordered collection of equally sized named columns. It is
// immutable once constructed; analysis code holds a reference and never
// writes through it.
type Dataset struct {
	columns []Column
	byName  map[string]int
	rows    int
}

// New builds a dataset from columns, validating that names are unique and
// every column has the same row count.
func New(columns []Column) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, errors.EmptyData("dataset has no columns")
	}

	rows := columns[0].Len()
	byName := make(map[string]int, len(columns))
	for i, col := range columns {
		if col.Name == "" {
			return nil, errors.BadInput("column with empty name")
		}
		if _, exists := byName[col.Name]; exists {
			return nil, errors.BadInput("duplicate column name: " + col.Name)
		}
		if col.Len() != rows {
			return nil, errors.BadInput("column " + col.Name + " has mismatched row count")
		}
		byName[col.Name] = i
	}

	return &Dataset{columns: columns, byName: byName, rows: rows}, nil
}

// Rows returns the shared row count
func (d *Dataset) Rows() int {
	return d.rows
}

// Columns returns all columns in their original order
func (d *Dataset) Columns() []Column {
	return d.columns
}

// Column looks up a column by name
func (d *Dataset) Column(name string) (Column, bool) {
	idx, ok := d.byName[name]
	if !ok {
		return Column{}, false
	}
	return d.columns[idx], true
}

// NumericColumns returns the numeric (and boolean) columns in order
func (d *Dataset) NumericColumns() []Column {
	var numeric []Column
	for _, col := range d.columns {
		if col.IsNumeric() {
			numeric = append(numeric, col)
		}
	}
	return numeric
}
