package report

import (
	"errors"
	"reflect"
	"testing"
)

func TestFromRows(t *testing.T) {
	expected := Table{
		Header: []string{"Vehicle", "Trips", "Distance"},
		Records: [][]any{
			{"KA01-1001", int64(7), 231.5},
			{"KA01-1002", int64(3), 98.25},
		},
	}

	rows := [][]string{
		{"Vehicle", "Trips", "Distance"},
		{"KA01-1001", "7", "231.5"},
		{"KA01-1002", "3", "98.25"},
	}

	table, err := FromRows(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from FromRows (%v)", err)
	}

	if !reflect.DeepEqual(*table, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, *table)
	}
}

func TestFromRowsWithRaggedRows(t *testing.T) {
	expected := Table{
		Header: []string{"Vehicle", "Trips", "Distance"},
		Records: [][]any{
			{"KA01-1001", int64(7), ""},
			{"KA01-1002", int64(3), 98.25, "spillover"},
		},
	}

	rows := [][]string{
		{"Vehicle", "Trips", "Distance"},
		{"KA01-1001", "7"},
		{"KA01-1002", "3", "98.25", "spillover"},
	}

	table, err := FromRows(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from FromRows (%v)", err)
	}

	if !reflect.DeepEqual(*table, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, *table)
	}
}

func TestFromRowsWithHeaderOnly(t *testing.T) {
	expected := Table{
		Header:  []string{"Vehicle", "Trips"},
		Records: [][]any{},
	}

	table, err := FromRows([][]string{{"Vehicle", "Trips"}})
	if err != nil {
		t.Fatalf("Unexpected error returned from FromRows (%v)", err)
	}

	if !reflect.DeepEqual(*table, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, *table)
	}
}

func TestFromRowsWithEmptySheet(t *testing.T) {
	_, err := FromRows([][]string{})
	if err == nil {
		t.Fatalf("Expected error return for empty sheet, got %v", err)
	}

	if !errors.Is(err, ErrFormat) {
		t.Errorf("Expected format error, got %v", err)
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		v        string
		expected any
	}{
		{"7", int64(7)},
		{" 7 ", int64(7)},
		{"98.25", 98.25},
		{"-3.5", -3.5},
		{"KA01-1001", "KA01-1001"},
		{" 06:30 AM ", "06:30 AM"},
		{"", ""},
	}

	for _, test := range tests {
		if got := value(test.v); !reflect.DeepEqual(got, test.expected) {
			t.Errorf("Incorrect value for %q - expected:%v (%T), got:%v (%T)", test.v, test.expected, test.expected, got, got)
		}
	}
}
