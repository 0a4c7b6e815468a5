package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Parse reads the first worksheet of the downloaded workbook into a table.
// Any file that excelize cannot open as a spreadsheet fails with ErrFormat.
func Parse(file string) (*Table, error) {
	f, err := excelize.OpenFile(file)
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrFormat, err)
	}

	defer f.Close()

	worksheets := f.GetSheetList()
	if len(worksheets) == 0 {
		return nil, fmt.Errorf("%w (no worksheets)", ErrFormat)
	}

	rows, err := f.GetRows(worksheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrFormat, err)
	}

	return FromRows(rows)
}
