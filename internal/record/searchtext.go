// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"strings"

	"github.com/pdiddy/litsearch/pkg/types"
)

// SearchText derives the lowercase text blob a record is matched against:
// title, abstract, authors, journal, venue, doi, and keywords joined with
// spaces. Missing fields contribute empty strings. The blob is used only
// for substring containment; there is no tokenization and no unicode
// normalization beyond case folding.
func SearchText(r types.Record) string {
	parts := []string{
		stringify(r["title"]),
		stringify(r["abstract"]),
		strings.Join(Authors(r), " "),
		stringify(r["journal"]),
		stringify(r["venue"]),
		stringify(r["doi"]),
		strings.Join(Keywords(r), " "),
	}
	return strings.ToLower(strings.Join(parts, " "))
}
