// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"strings"

	"github.com/pdiddy/litsearch/pkg/types"
)

// keywordPreview is how many keywords a card shows before truncating to
// a "+N more" count.
const keywordPreview = 12

// Save button labels and glyphs per saved state.
const (
	saveLabel  = "Save"
	savedLabel = "Saved"
	saveGlyph  = "☆"
	savedGlyph = "★"
)

// Card is the display-ready projection of a record for presentation
// layers. All defaulting and fallback logic lives here so renderers never
// touch raw record fields.
type Card struct {
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title"`
	YearLabel    string   `json:"year"`
	Venue        string   `json:"venue"`
	Authors      string   `json:"authors"`
	URL          string   `json:"url"`
	DOI          string   `json:"doi"`
	Keywords     []string `json:"keywords,omitempty"`
	MoreKeywords int      `json:"more_keywords,omitempty"`
	Abstract     string   `json:"abstract"`
	HasAbstract  bool     `json:"has_abstract"`
	Saved        bool     `json:"saved"`
	SaveLabel    string   `json:"save_label"`
	SaveGlyph    string   `json:"save_glyph"`
}

// NewCard builds the display card for a record. Venue falls back from
// journal to venue; a missing title renders as "(no title)".
func NewCard(r types.Record, saved bool) Card {
	id, _ := ID(r)

	title := stringify(r["title"])
	if title == "" {
		title = "(no title)"
	}

	venue := strings.TrimSpace(stringify(r["journal"]))
	if venue == "" {
		venue = strings.TrimSpace(stringify(r["venue"]))
	}

	kw := Keywords(r)
	more := 0
	if len(kw) > keywordPreview {
		more = len(kw) - keywordPreview
		kw = kw[:keywordPreview]
	}

	abstract := strings.TrimSpace(stringify(r["abstract"]))

	c := Card{
		ID:           id,
		Title:        title,
		YearLabel:    stringify(r["year"]),
		Venue:        venue,
		Authors:      strings.Join(Authors(r), ", "),
		URL:          URL(r),
		DOI:          DOI(r),
		Keywords:     kw,
		MoreKeywords: more,
		Abstract:     abstract,
		HasAbstract:  abstract != "",
		Saved:        saved,
		SaveLabel:    saveLabel,
		SaveGlyph:    saveGlyph,
	}
	if saved {
		c.SaveLabel = savedLabel
		c.SaveGlyph = savedGlyph
	}
	return c
}
