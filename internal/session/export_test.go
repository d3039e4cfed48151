package session

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/litsearch/internal/index"
)

func exportIndex(t *testing.T) *index.Index {
	t.Helper()
	ix, err := index.Parse([]byte(`{
		"references": [
			{"id": "a", "title": "dated 2020", "year": 2020},
			{"id": "b", "title": "undated one"},
			{"id": "c", "title": "dated 2022", "year": 2022},
			{"id": "d", "title": "undated two"}
		]
	}`), "")
	if err != nil {
		t.Fatalf("parsing test corpus: %v", err)
	}
	return ix
}

// Export orders by descending year; undated records come last, keeping
// the order they were saved in.
func TestExportOrdering(t *testing.T) {
	ix := exportIndex(t)
	saves := NewSaveSet()
	for _, id := range []string{"a", "b", "c", "d"} {
		saves.Toggle(id)
	}

	saved := ExportSaved(saves, ix)

	var got []string
	for _, r := range saved {
		got = append(got, r["title"].(string))
	}
	want := []string{"dated 2022", "dated 2020", "undated one", "undated two"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("export order = %v, want %v", got, want)
	}
}

func TestExportDropsDanglingIDs(t *testing.T) {
	ix := exportIndex(t)
	saves := NewSaveSet()
	saves.Toggle("a")
	saves.Toggle("ghost")

	saved := ExportSaved(saves, ix)
	if len(saved) != 1 {
		t.Fatalf("len(saved) = %d, want 1", len(saved))
	}
	if saved[0]["title"] != "dated 2020" {
		t.Errorf("saved[0] = %v", saved[0]["title"])
	}
}

// The export document carries the source's top-level field name and the
// records verbatim, including fields the engine does not know about.
func TestExportDocumentShape(t *testing.T) {
	ix, err := index.Parse([]byte(`{
		"papers": [
			{"id": 1, "title": "t", "year": 2019, "custom_field": {"nested": [1, 2]}}
		]
	}`), "papers")
	if err != nil {
		t.Fatalf("parsing test corpus: %v", err)
	}

	s := New()
	s.ToggleSave("1")

	var buf bytes.Buffer
	if err := s.Export(ix).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	// The export loads back as a corpus under the same key.
	reloaded, err := index.Parse(buf.Bytes(), "papers")
	if err != nil {
		t.Fatalf("re-parsing export: %v", err)
	}
	if len(reloaded.Records) != 1 {
		t.Fatalf("reloaded %d records, want 1", len(reloaded.Records))
	}
	if !reflect.DeepEqual(reloaded.Records[0], ix.Records[0]) {
		t.Errorf("record did not round-trip verbatim:\n%#v\n%#v", reloaded.Records[0], ix.Records[0])
	}

	// Numbers stay number literals, not strings.
	if !bytes.Contains(buf.Bytes(), []byte(`"year": 2019`)) {
		t.Errorf("year lost its numeric form:\n%s", buf.String())
	}
}

func TestExportEmptySaveSet(t *testing.T) {
	ix := exportIndex(t)
	s := New()

	var buf bytes.Buffer
	if err := s.Export(ix).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var doc map[string][]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("parsing export: %v", err)
	}
	list, ok := doc["references"]
	if !ok {
		t.Fatal("export missing references field")
	}
	if len(list) != 0 {
		t.Errorf("empty save set exported %d records", len(list))
	}
}

func TestExportYAMLPlainScalars(t *testing.T) {
	ix := exportIndex(t)
	s := New()
	s.ToggleSave("a")

	var buf bytes.Buffer
	if err := s.Export(ix).WriteYAML(&buf); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}

	var doc map[string][]map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("parsing yaml export: %v", err)
	}
	records := doc["references"]
	if len(records) != 1 {
		t.Fatalf("yaml export has %d records, want 1", len(records))
	}
	if year, ok := records[0]["year"].(int); !ok || year != 2020 {
		t.Errorf("year = %#v, want int 2020", records[0]["year"])
	}
}
