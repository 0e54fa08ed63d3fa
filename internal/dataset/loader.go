package dataset

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// DataLoadError reports that the input file is missing, unreadable, or not
// parseable as tabular data. It is fatal: the run aborts.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load dataset: %v", e.Err)
	}
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// Load reads a delimited tabular file into a raw dataframe. Column names are
// kept exactly as they appear in the file; all cells are loaded as strings so
// that cleaning, not type sniffing, decides what each value means.
func Load(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, &DataLoadError{Path: path, Err: err}
	}
	defer f.Close()

	df := ReadFrame(f, sniffDelimiter(path))
	if df.Err != nil {
		return dataframe.DataFrame{}, &DataLoadError{Path: path, Err: df.Err}
	}
	if df.Ncol() == 0 {
		return dataframe.DataFrame{}, &DataLoadError{Path: path, Err: fmt.Errorf("no columns")}
	}
	return df, nil
}

// ReadFrame parses delimited data into the raw string frame the cleaner
// expects: header row kept, no type sniffing.
func ReadFrame(r io.Reader, delim rune) dataframe.DataFrame {
	return dataframe.ReadCSV(r,
		dataframe.WithDelimiter(delim),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
}

// sniffDelimiter picks the field delimiter from the file extension. The
// filename heuristic avoids reading the file twice.
func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
