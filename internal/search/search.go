// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search filters the in-memory record collection by keyword and
// metadata constraints. Matching is a case-folded substring containment
// test over each record's searchable text; there is no ranking, no
// stemming, and no deduplication. Result order is source order.
package search

import (
	"errors"
	"strings"

	"github.com/pdiddy/litsearch/internal/record"
	"github.com/pdiddy/litsearch/pkg/types"
)

// ErrEmptyQuery signals that the query was empty after trimming. Callers
// surface it as a user-facing warning and must not treat it as a run.
var ErrEmptyQuery = errors.New("empty query: enter a search term first")

// YearRange bounds the publication year filter, inclusive on both ends.
type YearRange struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// Filters holds the metadata constraints applied alongside the keyword
// match. A nil Years means no year filtering.
type Filters struct {
	Years   *YearRange
	OnlyDOI bool
}

// Search scans records in order and keeps each one that passes all
// filters and contains the trimmed, lowercased query in its searchable
// text. Records without a usable integer year pass any year range: the
// year filter only excludes records it can actually read. OnlyDOI
// requires the raw doi field to be present and non-empty.
//
// An empty query after trimming returns ErrEmptyQuery and no records.
func Search(records []types.Record, rawQuery string, f Filters) ([]types.Record, error) {
	q := strings.TrimSpace(rawQuery)
	if q == "" {
		return nil, ErrEmptyQuery
	}
	q = strings.ToLower(q)

	var results []types.Record
	for _, r := range records {
		if f.Years != nil {
			if y, ok := record.Year(r); ok && (y < f.Years.From || y > f.Years.To) {
				continue
			}
		}
		if f.OnlyDOI && !record.HasDOI(r) {
			continue
		}
		if strings.Contains(record.SearchText(r), q) {
			results = append(results, r)
		}
	}
	return results, nil
}
