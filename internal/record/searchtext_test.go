package record

import (
	"strings"
	"testing"
)

func TestSearchText(t *testing.T) {
	r := rec(t, `{
		"title": "Graph Neural Networks",
		"abstract": "A Survey",
		"authors": ["Ada Lovelace", "Alan Turing"],
		"journal": "JMLR",
		"venue": "NeurIPS",
		"doi": "10.1/GNN",
		"keywords": ["Graphs", "ML"]
	}`)

	got := SearchText(r)
	want := "graph neural networks a survey ada lovelace alan turing jmlr neurips 10.1/gnn graphs ml"
	if got != want {
		t.Errorf("SearchText() = %q, want %q", got, want)
	}
}

func TestSearchTextMissingFields(t *testing.T) {
	got := SearchText(rec(t, `{"title": "Only Title"}`))

	if !strings.Contains(got, "only title") {
		t.Errorf("SearchText() = %q, should contain the lowercased title", got)
	}
	// Six empty contributions leave only separator spaces around the title.
	if want := "only title      "; got != want {
		t.Errorf("SearchText() = %q, want %q", got, want)
	}
}

func TestSearchTextDeterministic(t *testing.T) {
	r := rec(t, `{"title": "T", "keywords": ["a", "b"]}`)
	if SearchText(r) != SearchText(r) {
		t.Error("SearchText() should be deterministic")
	}
}
