// Package csvfile loads CSV files into analysis datasets, delegating parsing
// and column type detection to the gota dataframe library.
package csvfile

import (
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"goeda/domain/dataset"
	"goeda/internal/errors"
)

// Reader loads one CSV file into a dataset
type Reader struct {
	path string
}

// NewReader creates a reader for the given CSV file path
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Read parses the file and returns the dataset
func (r *Reader) Read() (*dataset.Dataset, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open CSV file %s", r.path)
	}
	defer f.Close()

	return ReadFrom(f)
}

// ReadFrom parses CSV content from the given reader. The first row is the
// header; column types are detected from the values.
func ReadFrom(r io.Reader) (*dataset.Dataset, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "failed to parse CSV")
	}

	columns := make([]dataset.Column, 0, df.Ncol())
	for _, name := range df.Names() {
		s := df.Col(name)
		switch s.Type() {
		case series.Int, series.Float:
			columns = append(columns, dataset.Column{
				Name:   name,
				Type:   dataset.TypeNumeric,
				Floats: s.Float(),
			})
		case series.Bool:
			columns = append(columns, dataset.Column{
				Name:   name,
				Type:   dataset.TypeBoolean,
				Floats: s.Float(),
			})
		default:
			labels := make([]string, s.Len())
			for i := 0; i < s.Len(); i++ {
				if elem := s.Elem(i); !elem.IsNA() {
					labels[i] = elem.String()
				}
			}
			columns = append(columns, dataset.Column{
				Name:   name,
				Type:   dataset.TypeCategorical,
				Labels: labels,
			})
		}
	}

	return dataset.New(columns)
}
