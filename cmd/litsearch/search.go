// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litsearch/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [query words...]",
	Short: "Run a keyword search over the corpus",
	Long: `Search filters the corpus by case-insensitive substring match against
each record's title, abstract, authors, journal, venue, DOI, and keywords,
optionally constrained by a year range and DOI presence. Records without a
usable integer year pass any year range.

A run can be saved to a query file with --save-query and re-executed later
with --query-file.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := appConfig(cmd)
	if err != nil {
		return err
	}

	query, filters, err := queryFromFlags(cmd, args)
	if err != nil {
		return err
	}

	ix, err := loadIndex(cfg)
	if err != nil {
		return err
	}

	results, err := search.Search(ix.Records, query, filters)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("save-query"); path != "" {
		if err := search.WriteQueryFile(path, strings.TrimSpace(query), filters, len(results)); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved query to %s\n", path)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return search.FormatJSON(results, os.Stdout)
	}

	maxShown := cfg.Display.MaxShown
	if cmd.Flags().Changed("max-shown") {
		maxShown, _ = cmd.Flags().GetInt("max-shown")
	}
	search.FormatTable(results, maxShown, os.Stdout)
	return nil
}

// queryFromFlags resolves the query text and filters, either from a
// saved query file or from flags and positional arguments.
func queryFromFlags(cmd *cobra.Command, args []string) (string, search.Filters, error) {
	if path, _ := cmd.Flags().GetString("query-file"); path != "" {
		qf, err := search.ReadQueryFile(path)
		if err != nil {
			return "", search.Filters{}, err
		}
		return qf.Query.Text, qf.Query.ToFilters(), nil
	}

	query, _ := cmd.Flags().GetString("query")
	if query == "" && len(args) > 0 {
		query = strings.Join(args, " ")
	}

	filters := search.Filters{}
	filters.OnlyDOI, _ = cmd.Flags().GetBool("only-doi")

	fromSet := cmd.Flags().Changed("year-from")
	toSet := cmd.Flags().Changed("year-to")
	if fromSet != toSet {
		return "", filters, fmt.Errorf("year range requires both --year-from and --year-to")
	}
	if fromSet {
		from, _ := cmd.Flags().GetInt("year-from")
		to, _ := cmd.Flags().GetInt("year-to")
		filters.Years = &search.YearRange{From: from, To: to}
	}

	return query, filters, nil
}

func init() {
	searchCmd.Flags().String("query", "", "free-text search query")
	searchCmd.Flags().Int("year-from", 0, "publication year range start (inclusive)")
	searchCmd.Flags().Int("year-to", 0, "publication year range end (inclusive)")
	searchCmd.Flags().Bool("only-doi", false, "keep only records with a DOI")
	searchCmd.Flags().Int("max-shown", 0, "cap displayed results (0 = show all; default from config)")
	searchCmd.Flags().Bool("json", false, "output the full result list as JSON")
	searchCmd.Flags().String("save-query", "", "write the query to a YAML file after the run")
	searchCmd.Flags().String("query-file", "", "load query and filters from a saved query file")

	rootCmd.AddCommand(searchCmd)
}
