// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package record normalizes raw bibliographic records at the boundary.
// Source documents are free-form JSON: fields may be missing, null, a
// scalar where a list belongs, or a nested value in the wrong place.
// Every accessor here degrades malformed input to an empty value instead
// of returning an error, and applying an accessor to its own output is a
// no-op.
package record

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/litsearch/pkg/types"
)

// ID returns the canonical string form of the record's identifier and
// whether one is present. Records without an id (or with an explicit
// null) cannot be saved and report ok = false.
func ID(r types.Record) (string, bool) {
	v, ok := r["id"]
	if !ok || v == nil {
		return "", false
	}
	return stringify(v), true
}

// Year returns the record's publication year and whether it is a usable
// integer. Strings, floats, and absent values report ok = false; the
// year-range filter treats those records permissively.
func Year(r types.Record) (int, bool) {
	switch v := r["year"].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// Authors returns the record's authors as an ordered list of strings.
// A scalar value becomes a single-element list; blank entries are
// dropped, all others are kept verbatim (untrimmed).
func Authors(r types.Record) []string {
	return normList(r["authors"])
}

// Keywords returns the record's keywords, normalized like Authors.
func Keywords(r types.Record) []string {
	return normList(r["keywords"])
}

// normList coerces a scalar-or-list value into a list of non-blank strings.
func normList(v any) []string {
	if v == nil {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		items = []any{v}
	}
	var out []string
	for _, item := range items {
		s := stringify(item)
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// URL resolves a single display URL: the first non-empty of url, link,
// pdf (trimmed), then a DOI-resolver URL if only a DOI is present, else "".
func URL(r types.Record) string {
	for _, field := range []string{"url", "link", "pdf"} {
		if v, ok := r[field]; ok && truthy(v) {
			return strings.TrimSpace(stringify(v))
		}
	}
	if doi := DOI(r); doi != "" {
		return "https://doi.org/" + doi
	}
	return ""
}

// DOI returns the trimmed string form of the doi field, or "".
func DOI(r types.Record) string {
	return strings.TrimSpace(stringify(r["doi"]))
}

// HasDOI reports whether the raw doi field is present and non-empty.
// This is a presence check on the raw value, not on the trimmed form:
// a whitespace-only doi still counts as present.
func HasDOI(r types.Record) bool {
	v, ok := r["doi"]
	return ok && truthy(v)
}

// stringify coerces any JSON-decoded value to its string form. Nil maps
// to the empty string; nested objects and arrays in a scalar position are
// treated as opaque scalars.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprint(x)
	}
}

// truthy mirrors JSON-value truthiness: nil, "", 0, false, and empty
// collections are false; everything else is true.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	case float64:
		return x != 0
	case int:
		return x != 0
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}
