package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func fixture(t *testing.T, rows [][]any) string {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			f.SetCellValue("Sheet1", cell, v)
		}
	}

	file := filepath.Join(t.TempDir(), "rps.xlsx")
	if err := f.SaveAs(file); err != nil {
		t.Fatalf("Failed to save test workbook (%v)", err)
	}

	return file
}

func TestParse(t *testing.T) {
	file := fixture(t, [][]any{
		{"Vehicle", "Trips", "Distance"},
		{"KA01-1001", 7, 231.5},
		{"KA01-1002", 3, 98.25},
		{"KA01-1003", 0, 0},
		{"KA01-1004", 12, 402.75},
		{"KA01-1005", 5, 156.5},
	})

	table, err := Parse(file)
	if err != nil {
		t.Fatalf("Unexpected error returned from Parse (%v)", err)
	}

	header := []string{"Vehicle", "Trips", "Distance"}
	if len(table.Header) != 3 || table.Header[0] != header[0] || table.Header[1] != header[1] || table.Header[2] != header[2] {
		t.Errorf("Incorrect header\n   expected: %v\n   got:      %v\n", header, table.Header)
	}

	if len(table.Records) != 5 {
		t.Fatalf("Incorrect record count - expected:%v, got:%v", 5, len(table.Records))
	}

	vehicles := []string{"KA01-1001", "KA01-1002", "KA01-1003", "KA01-1004", "KA01-1005"}
	for i, record := range table.Records {
		if len(record) != 3 {
			t.Errorf("Incorrect cell count in record %v - expected:%v, got:%v", i, 3, len(record))
		}

		if record[0] != vehicles[i] {
			t.Errorf("Records out of order - expected:%v, got:%v", vehicles[i], record[0])
		}
	}
}

func TestParseWithUnreadableFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "rps.xlsx")
	if err := os.WriteFile(file, []byte("<html>503 Service Unavailable</html>"), 0660); err != nil {
		t.Fatalf("Failed to create test file (%v)", err)
	}

	_, err := Parse(file)
	if err == nil {
		t.Fatalf("Expected error return for unreadable file, got %v", err)
	}

	if !errors.Is(err, ErrFormat) {
		t.Errorf("Expected format error, got %v", err)
	}
}

func TestParseWithMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "no-such-file.xlsx"))
	if err == nil {
		t.Fatalf("Expected error return for missing file, got %v", err)
	}

	if !errors.Is(err, ErrFormat) {
		t.Errorf("Expected format error, got %v", err)
	}
}

// Two different fixture files parsed in sequence should produce entirely
// independent tables - nothing carried over between runs.
func TestParseConsecutiveFiles(t *testing.T) {
	first := fixture(t, [][]any{
		{"Vehicle", "Trips"},
		{"KA01-1001", 7},
		{"KA01-1002", 3},
	})

	second := fixture(t, [][]any{
		{"Vehicle", "Trips"},
		{"KA01-1009", 1},
	})

	a, err := Parse(first)
	if err != nil {
		t.Fatalf("Unexpected error returned from Parse (%v)", err)
	}

	b, err := Parse(second)
	if err != nil {
		t.Fatalf("Unexpected error returned from Parse (%v)", err)
	}

	if len(a.Records) != 2 || len(b.Records) != 1 {
		t.Fatalf("Incorrect record counts - expected:%v/%v, got:%v/%v", 2, 1, len(a.Records), len(b.Records))
	}

	if b.Records[0][0] != "KA01-1009" {
		t.Errorf("Residual data in second table - got %v", b.Records[0])
	}
}
