package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storeq/storeq/internal/data/sqlite"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a SQLite store directory with sample stores",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "stores.db"
		if len(args) == 1 {
			path = args[0]
		}
		if err := sqlite.Init(path); err != nil {
			return fmt.Errorf("initializing %s: %w", path, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Store directory created: %s\n", path)
		return nil
	},
}
