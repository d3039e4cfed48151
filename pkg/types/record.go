// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for litsearch: the raw
// bibliographic Record and the application configuration.
package types

// Record is one bibliographic entry exactly as decoded from the source
// document. Every field is optional and may be heterogeneously typed (a
// scalar where a list is expected, numbers as json.Number, nested values
// in the wrong place). Nothing reads fields directly; the record package
// normalizes all access at the boundary.
//
// Keeping the raw map means a record survives export byte-equivalent to
// its input form, including fields litsearch knows nothing about.
type Record map[string]any
