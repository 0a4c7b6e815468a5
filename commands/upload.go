package commands

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/Yogeshkumar786/All-RPS/report"
)

// upload replaces the worksheet contents with the report table - a batch clear
// followed by a single batch write of header + records at A1, in source order.
// There are no partial-success semantics: a failed write fails the run and the
// next scheduled run overwrites the worksheet from scratch.
func upload(google *sheets.Service, spreadsheet *sheets.Spreadsheet, worksheet string, table *report.Table, policy retry, ctx context.Context) error {
	values := makeValues(worksheet, table)

	infof("Clearing worksheet '%v'", worksheet)
	if err := policy.Do(func() error {
		return clear(google, spreadsheet, []string{worksheet}, ctx)
	}, isTransient); err != nil {
		return fmt.Errorf("error clearing worksheet (%w)", err)
	}

	infof("Uploading %v rows to worksheet '%v'", len(values.Values), worksheet)
	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             []*sheets.ValueRange{values},
	}

	if err := policy.Do(func() error {
		_, err := google.Spreadsheets.Values.BatchUpdate(spreadsheet.SpreadsheetId, &rq).Context(ctx).Do()
		return err
	}, isTransient); err != nil {
		return fmt.Errorf("error uploading to worksheet (%w)", err)
	}

	return nil
}

func clear(google *sheets.Service, spreadsheet *sheets.Spreadsheet, ranges []string, ctx context.Context) error {
	rq := sheets.BatchClearValuesRequest{
		Ranges: ranges,
	}

	if _, err := google.Spreadsheets.Values.BatchClear(spreadsheet.SpreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

// makeValues converts a report table to a Sheets value range rooted at A1,
// preserving the row and column order of the source workbook.
func makeValues(worksheet string, table *report.Table) *sheets.ValueRange {
	rows := make([][]any, 0, len(table.Records)+1)

	header := make([]any, len(table.Header))
	for i, v := range table.Header {
		header[i] = v
	}

	rows = append(rows, header)

	for _, record := range table.Records {
		row := make([]any, len(record))
		copy(row, record)
		rows = append(rows, row)
	}

	return &sheets.ValueRange{
		Range:  fmt.Sprintf("%v!A1", worksheet),
		Values: rows,
	}
}
