// Package report reads a downloaded RPS workbook into an ordered, typed table.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat is returned when the downloaded file is not a readable
// spreadsheet. It is fatal to the run - a corrupt download is never retried.
var ErrFormat = errors.New("not a readable RPS spreadsheet")

// Table is an in-memory copy of the report worksheet - a header row and the
// data records, in the row and column order of the source sheet.
type Table struct {
	Header  []string
	Records [][]any
}

// FromRows builds a table from raw worksheet rows. The first row is the
// header; rows shorter than the header are padded with empty cells so every
// record has at least the header width.
func FromRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w (empty sheet)", ErrFormat)
	}

	header := make([]string, len(rows[0]))
	for i, v := range rows[0] {
		header[i] = clean(v)
	}

	records := make([][]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		width := len(header)
		if len(row) > width {
			width = len(row)
		}

		record := make([]any, width)
		for i := range record {
			record[i] = ""
		}

		for i, v := range row {
			record[i] = value(v)
		}

		records = append(records, record)
	}

	return &Table{
		Header:  header,
		Records: records,
	}, nil
}

// value types a cell as int64, float64 or string so that numeric columns
// survive the round trip to Google Sheets as numbers.
func value(v string) any {
	s := strings.TrimSpace(v)

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	return clean(v)
}

func clean(v string) string {
	return strings.TrimSpace(v)
}
