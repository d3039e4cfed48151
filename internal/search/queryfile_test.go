package search

import (
	"path/filepath"
	"testing"
)

func TestQueryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")
	filters := Filters{
		Years:   &YearRange{From: 2018, To: 2022},
		OnlyDOI: true,
	}

	if err := WriteQueryFile(path, "graph networks", filters, 7); err != nil {
		t.Fatalf("WriteQueryFile() error = %v", err)
	}

	qf, err := ReadQueryFile(path)
	if err != nil {
		t.Fatalf("ReadQueryFile() error = %v", err)
	}

	if qf.Query.Text != "graph networks" {
		t.Errorf("Text = %q, want %q", qf.Query.Text, "graph networks")
	}
	if qf.Summary.Total != 7 {
		t.Errorf("Total = %d, want 7", qf.Summary.Total)
	}

	got := qf.Query.ToFilters()
	if got.Years == nil || got.Years.From != 2018 || got.Years.To != 2022 {
		t.Errorf("Years = %+v, want 2018-2022", got.Years)
	}
	if !got.OnlyDOI {
		t.Error("OnlyDOI lost in round trip")
	}
}

func TestQueryFileNoYears(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")
	if err := WriteQueryFile(path, "x", Filters{}, 0); err != nil {
		t.Fatalf("WriteQueryFile() error = %v", err)
	}
	qf, err := ReadQueryFile(path)
	if err != nil {
		t.Fatalf("ReadQueryFile() error = %v", err)
	}
	if qf.Query.ToFilters().Years != nil {
		t.Error("Years should stay nil when unset")
	}
}

func TestReadQueryFileMissing(t *testing.T) {
	if _, err := ReadQueryFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("ReadQueryFile() should fail on a missing file")
	}
}
