package search

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/pdiddy/litsearch/internal/index"
	"github.com/pdiddy/litsearch/pkg/types"
)

// corpus decodes a references document into records.
func corpus(t *testing.T, doc string) []types.Record {
	t.Helper()
	ix, err := index.Parse([]byte(doc), "")
	if err != nil {
		t.Fatalf("parsing test corpus: %v", err)
	}
	return ix.Records
}

const twoPapers = `{
	"references": [
		{"id": 1, "title": "Graph Neural Networks", "year": 2019, "doi": "10.1/a"},
		{"id": 2, "title": "Deep Learning Basics", "year": 2021}
	]
}`

func titles(records []types.Record) []string {
	var out []string
	for _, r := range records {
		out = append(out, r["title"].(string))
	}
	return out
}

func TestSearchEmptyQuery(t *testing.T) {
	records := corpus(t, twoPapers)
	for _, q := range []string{"", "   ", "\t\n"} {
		results, err := Search(records, q, Filters{})
		if !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("Search(%q) error = %v, want ErrEmptyQuery", q, err)
		}
		if results != nil {
			t.Errorf("Search(%q) returned records on an empty query", q)
		}
	}
}

func TestSearchSubstringMatch(t *testing.T) {
	records := corpus(t, twoPapers)

	tests := []struct {
		name  string
		query string
		f     Filters
		want  []string
	}{
		{"title match", "graph", Filters{}, []string{"Graph Neural Networks"}},
		{"case folded", "GRAPH", Filters{}, []string{"Graph Neural Networks"}},
		{"trimmed", "  deep  ", Filters{}, []string{"Deep Learning Basics"}},
		{"no match", "quantum", Filters{}, nil},
		{"year range keeps later paper", "deep", Filters{Years: &YearRange{From: 2020, To: 2022}}, []string{"Deep Learning Basics"}},
		{"year range excludes", "graph", Filters{Years: &YearRange{From: 2020, To: 2022}}, nil},
		{"inclusive bounds", "graph", Filters{Years: &YearRange{From: 2019, To: 2019}}, []string{"Graph Neural Networks"}},
		{"only doi", "graph", Filters{OnlyDOI: true}, []string{"Graph Neural Networks"}},
		{"only doi excludes", "deep", Filters{OnlyDOI: true}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := Search(records, tt.query, tt.f)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if got := titles(results); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search() = %v, want %v", got, tt.want)
			}
		})
	}
}

// A record without a usable year passes any year range.
func TestSearchMissingYearIsPermissive(t *testing.T) {
	records := corpus(t, `{
		"references": [
			{"id": 1, "title": "undated paper"},
			{"id": 2, "title": "string year paper", "year": "2020"},
			{"id": 3, "title": "dated paper", "year": 1500}
		]
	}`)

	results, err := Search(records, "paper", Filters{Years: &YearRange{From: 2000, To: 2001}})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	want := []string{"undated paper", "string year paper"}
	if got := titles(results); !reflect.DeepEqual(got, want) {
		t.Errorf("Search() = %v, want %v", got, want)
	}
}

// Matching searches all fields the searchable text is built from.
func TestSearchMatchesAllFields(t *testing.T) {
	records := corpus(t, `{
		"references": [
			{"id": 1, "abstract": "novel attention mechanism"},
			{"id": 2, "authors": ["Grace Hopper"]},
			{"id": 3, "keywords": ["compilers"]},
			{"id": 4, "venue": "SOSP"}
		]
	}`)

	for query, wantID := range map[string]string{
		"attention": "1",
		"hopper":    "2",
		"compilers": "3",
		"sosp":      "4",
	} {
		results, err := Search(records, query, Filters{})
		if err != nil {
			t.Fatalf("Search(%q) error = %v", query, err)
		}
		if len(results) != 1 {
			t.Fatalf("Search(%q) returned %d records, want 1", query, len(results))
		}
		if id := results[0]["id"].(json.Number).String(); id != wantID {
			t.Errorf("Search(%q) matched id %s, want %s", query, id, wantID)
		}
	}
}

// Repeated runs return the same sequence, in source order, without dedup.
func TestSearchDeterministicAndOrderPreserving(t *testing.T) {
	records := corpus(t, `{
		"references": [
			{"id": "a", "title": "graph one"},
			{"id": "dup", "title": "graph two"},
			{"id": "dup", "title": "graph two"},
			{"id": "b", "title": "other"},
			{"id": "c", "title": "graph three"}
		]
	}`)

	first, err := Search(records, "graph", Filters{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	second, err := Search(records, "graph", Filters{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	want := []string{"graph one", "graph two", "graph two", "graph three"}
	if got := titles(first); !reflect.DeepEqual(got, want) {
		t.Errorf("Search() = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(titles(first), titles(second)) {
		t.Error("repeated Search() runs differ")
	}
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	records := corpus(t, twoPapers)
	before := titles(records)

	if _, err := Search(records, "graph", Filters{}); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if got := titles(records); !reflect.DeepEqual(got, before) {
		t.Errorf("input records changed: %v != %v", got, before)
	}
}
