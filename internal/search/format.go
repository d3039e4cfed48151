// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/litsearch/internal/record"
	"github.com/pdiddy/litsearch/pkg/types"
)

// FormatTable writes results as a human-readable table to w. shown caps
// how many rows are printed (0 = all); the footer always reports the
// full match count.
func FormatTable(results []types.Record, shown int, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	rows := results
	if shown > 0 && len(rows) > shown {
		rows = rows[:shown]
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-6s  %-24s  %s\n",
		"Rank", "Title", "Year", "Venue", "DOI")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, r := range rows {
		card := record.NewCard(r, false)
		fmt.Fprintf(w, "%-4d  %-60s  %-6s  %-24s  %s\n",
			i+1,
			truncate(card.Title, 60),
			truncate(card.YearLabel, 6),
			truncate(card.Venue, 24),
			card.DOI)
	}

	fmt.Fprintf(w, "\nFound %d matches", len(results))
	if len(rows) < len(results) {
		fmt.Fprintf(w, ", showing %d", len(rows))
	}
	fmt.Fprintln(w, ".")
}

// FormatJSON writes the full result list as indented JSON to w.
func FormatJSON(results []types.Record, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
