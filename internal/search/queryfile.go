// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// QueryFile is the on-disk representation of a search query. A query can
// be saved after a run and re-executed later against the same corpus;
// only the parameters and a run summary are stored, never the results,
// since session state does not outlive the session.
type QueryFile struct {
	Query   QueryParams  `yaml:"query"`
	Summary QuerySummary `yaml:"summary"`
}

// QueryParams stores the query parameters in a serializable form.
type QueryParams struct {
	Text    string     `yaml:"text"`
	Years   *YearRange `yaml:"years,omitempty"`
	OnlyDOI bool       `yaml:"only_doi,omitempty"`
}

// QuerySummary stores result statistics and a timestamp for the run that
// produced the file.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves the query and its run summary to a YAML file.
func WriteQueryFile(path, query string, f Filters, total int) error {
	qf := QueryFile{
		Query: QueryParams{
			Text:    query,
			Years:   f.Years,
			OnlyDOI: f.OnlyDOI,
		},
		Summary: QuerySummary{
			Total:     total,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// ToFilters converts stored QueryParams back into Filters.
func (p QueryParams) ToFilters() Filters {
	return Filters{Years: p.Years, OnlyDOI: p.OnlyDOI}
}
