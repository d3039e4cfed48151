// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litsearch/internal/session"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export records by id as a saved-records document",
	Long: `Export builds a save set from the given record ids and writes the
matching records as a document keyed under the source's top-level field,
ordered by descending year with undated records last. Ids that do not
resolve to a record are silently dropped.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := appConfig(cmd)
	if err != nil {
		return err
	}

	ids, _ := cmd.Flags().GetStringSlice("ids")
	if len(ids) == 0 {
		return fmt.Errorf("no ids given: use --ids with a comma-separated list of record ids")
	}

	ix, err := loadIndex(cfg)
	if err != nil {
		return err
	}

	sess := session.New()
	for _, id := range ids {
		// Repeated ids would toggle back off; save each at most once.
		if !sess.Saved().Contains(id) {
			sess.ToggleSave(id)
		}
	}
	doc := sess.Export(ix)

	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		switch format {
		case "yaml":
			out = "saved-papers.yaml"
		default:
			out = "saved-papers.json"
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	switch format {
	case "json", "":
		err = doc.WriteJSON(f)
	case "yaml":
		err = doc.WriteYAML(f)
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d record(s) to %s\n", len(doc[ix.Key]), out)
	return nil
}

func init() {
	exportCmd.Flags().StringSlice("ids", nil, "record ids to export (comma-separated)")
	exportCmd.Flags().String("format", "json", "export format: json or yaml")
	exportCmd.Flags().String("out", "", "output path (default saved-papers.json or .yaml)")

	rootCmd.AddCommand(exportCmd)
}
