package dataset

import (
	"compress/gzip"
	"encoding/csv"
	"io"
	"os"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// table is one parsed CSV source: a column index plus raw string rows.
type table struct {
	columns map[string]int
	rows    [][]string
}

func (t table) value(row []string, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// readTable reads a CSV file, transparently decompressing a .gz suffix, and
// verifies that every required column is present in the header.
func readTable(path string, required []string) (table, error) {
	file, err := os.Open(path)
	if err != nil {
		return table{}, crerr.Mark(crerr.Wrapf(err, "open source %s", path), ErrMissingSource)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, gzErr := gzip.NewReader(file)
		if gzErr != nil {
			return table{}, crerr.Mark(crerr.Wrapf(gzErr, "decompress source %s", path), ErrMalformedSchema)
		}
		defer gz.Close()
		reader = gz
	}

	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return table{}, crerr.Mark(crerr.Wrapf(err, "read header of %s", path), ErrMalformedSchema)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, column := range required {
		if _, ok := columns[column]; !ok {
			return table{}, crerr.Mark(crerr.Newf("source %s is missing column %q", path, column), ErrMalformedSchema)
		}
	}

	rows := make([][]string, 0)
	for {
		record, readErr := cr.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return table{}, crerr.Mark(crerr.Wrapf(readErr, "read rows of %s", path), ErrMalformedSchema)
		}
		rows = append(rows, record)
	}

	return table{columns: columns, rows: rows}, nil
}
