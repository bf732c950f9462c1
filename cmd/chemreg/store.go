package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/chemreg/internal/store"
	"github.com/pdiddy/chemreg/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Query the resolution archive",
	Long: `Store queries the SQLite archive written by "resolve --db". The archive
is a record of past runs, not a cache; resolve never reads from it.`,
}

var storeLookupCmd = &cobra.Command{
	Use:   "lookup <substance name>",
	Short: "Show the most recently archived rows for a substance",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoreLookup,
}

func init() {
	storeCmd.PersistentFlags().String("db", "chemreg.db", "SQLite archive database")
	storeLookupCmd.Flags().Int("max-results", 50, "maximum number of rows returned")
	storeLookupCmd.Flags().Bool("json", false, "output rows as JSON")

	storeCmd.AddCommand(storeLookupCmd)
	rootCmd.AddCommand(storeCmd)
}

func runStoreLookup(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	asJSON, _ := cmd.Flags().GetBool("json")

	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("archive %s not found: run resolve with --db first", dbPath)
	}

	s, err := store.Open(types.StoreConfig{ArchivePath: dbPath, MaxResults: maxResults})
	if err != nil {
		return err
	}
	defer s.Close()

	rows, err := s.Lookup(args[0])
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Printf("No archived rows for %q.\n", args[0])
		return nil
	}
	fmt.Printf("%-12s  %-40s  %s\n", "CAS", "Synonym", "Source")
	for _, r := range rows {
		synonym := r.Synonym
		if len(synonym) > 40 {
			synonym = synonym[:37] + "..."
		}
		fmt.Printf("%-12s  %-40s  %s\n", r.CAS, synonym, r.CompoundSource)
	}
	fmt.Printf("\n%d rows\n", len(rows))
	return nil
}
