// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index loads the bibliographic source document into an immutable
// in-memory collection. Loading happens once at startup; any structural
// problem with the document is an error the caller treats as fatal.
package index

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdiddy/litsearch/internal/record"
	"github.com/pdiddy/litsearch/pkg/types"
)

// DefaultKey is the conventional top-level field holding the record array.
const DefaultKey = "references"

// Index is the read-only collection of all records plus an id lookup.
// Records preserves source order, duplicates included. ByID maps each
// canonical record id to its record; when two records share an id the
// later one silently overwrites the earlier in the map while both remain
// in Records. That mirrors the source format's behavior and is kept
// as-is rather than corrected.
type Index struct {
	Records []types.Record
	ByID    map[string]types.Record
	Key     string
}

// New builds an Index over already-decoded records, keyed under key.
func New(records []types.Record, key string) *Index {
	if key == "" {
		key = DefaultKey
	}
	byID := make(map[string]types.Record)
	for _, r := range records {
		if id, ok := record.ID(r); ok {
			byID[id] = r
		}
	}
	return &Index{Records: records, ByID: byID, Key: key}
}

// Load reads and decodes the source document at path. The document must
// be a JSON object whose key field holds an array of record objects.
// Numbers decode as json.Number so integer years stay distinguishable
// from floats and numeric fields round-trip verbatim on export.
func Load(path, key string) (*Index, error) {
	if key == "" {
		key = DefaultKey
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source document: %w", err)
	}

	return Parse(data, key)
}

// Parse decodes a source document from raw bytes. See Load.
func Parse(data []byte, key string) (*Index, error) {
	if key == "" {
		key = DefaultKey
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing source document: %w", err)
	}

	raw, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("source document has no %q field", key)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("source field %q is not an array", key)
	}

	records := make([]types.Record, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d under %q is not an object", i, key)
		}
		records = append(records, types.Record(obj))
	}

	return New(records, key), nil
}

// YearBounds returns the minimum and maximum integer year across the
// collection, for populating range filters. ok is false when no record
// carries a usable year.
func (ix *Index) YearBounds() (lo, hi int, ok bool) {
	for _, r := range ix.Records {
		y, yok := record.Year(r)
		if !yok {
			continue
		}
		if !ok {
			lo, hi, ok = y, y, true
			continue
		}
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	return lo, hi, ok
}
