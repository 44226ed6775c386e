package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storeq/storeq/internal/data/sqlite"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import directory data into a SQLite store directory",
}

var importAliasesCmd = &cobra.Command{
	Use:   "aliases <file.json>",
	Short: "Load alias mappings into the store directory",
	Long: `Load a JSON file of alias mappings into a SQLite store directory.
Format: [{"alias": "acme", "store": "Acme Store"}, ...] where store is a
storeId or storeName. Entries whose store is unknown are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := storesPath()
		if !isSQLitePath(path) {
			return fmt.Errorf("alias import needs a SQLite store directory, got %s (use --stores)", path)
		}
		db, err := sqlite.Open(path)
		if err != nil {
			return err
		}
		defer db.Close()

		loaded, skipped, err := sqlite.LoadAliasesFromFile(cmd.Context(), db.DB(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Aliases: %d loaded, %d skipped (store not found)\n", loaded, skipped)
		return nil
	},
}

func init() {
	importCmd.AddCommand(importAliasesCmd)
}
