// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/litsearch/internal/index"
	"github.com/pdiddy/litsearch/internal/record"
	"github.com/pdiddy/litsearch/pkg/types"
)

// Document is the export shape: the saved records keyed under the same
// top-level field name as the source document, so an export can be
// loaded back as a corpus.
type Document map[string][]types.Record

// ExportSaved resolves the save set against the index and returns the
// records ordered by descending year, with undated records after all
// dated ones. The sort is stable, so ties keep the save set's insertion
// order. Ids with no matching record are silently dropped.
func ExportSaved(saves *SaveSet, ix *index.Index) []types.Record {
	var saved []types.Record
	for _, id := range saves.IDs() {
		if r, ok := ix.ByID[id]; ok {
			saved = append(saved, r)
		}
	}

	sort.SliceStable(saved, func(i, j int) bool {
		yi, iok := record.Year(saved[i])
		yj, jok := record.Year(saved[j])
		if iok != jok {
			return iok
		}
		return iok && yi > yj
	})

	return saved
}

// Export builds the export document for the session's saved records.
func (s *Session) Export(ix *index.Index) Document {
	saved := ExportSaved(s.saves, ix)
	if saved == nil {
		saved = []types.Record{}
	}
	return Document{ix.Key: saved}
}

// WriteJSON writes the document as indented JSON, the canonical export
// format (saved-papers.json). Records round-trip verbatim: json.Number
// values marshal back as the source's original number literals.
func (d Document) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding export document: %w", err)
	}
	return nil
}

// WriteYAML writes the document as YAML. Records are rewritten with
// plain scalar types first: yaml would otherwise serialize json.Number
// values as strings.
func (d Document) WriteYAML(w io.Writer) error {
	plain := make(map[string][]any, len(d))
	for key, records := range d {
		items := make([]any, len(records))
		for i, r := range records {
			items[i] = plainValue(map[string]any(r))
		}
		plain[key] = items
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(plain); err != nil {
		return fmt.Errorf("encoding export document: %w", err)
	}
	return nil
}

// plainValue converts json.Number values to int64 or float64 recursively.
func plainValue(v any) any {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = plainValue(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = plainValue(val)
		}
		return out
	default:
		return v
	}
}
