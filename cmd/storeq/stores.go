package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/storeq/storeq/internal/formatter"
)

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "Inspect the configured store directory",
}

var storesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every configured store in load order",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formatter.ParseFormat(cfgFormat)
		if err != nil {
			return err
		}
		dir := loadDirectory(cmd.Context())
		out, err := formatter.Stores(dir.All(), format)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
		return nil
	},
}

var storesFindCmd = &cobra.Command{
	Use:   "find <pattern>",
	Short: "Find stores whose name or alias contains a pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formatter.ParseFormat(cfgFormat)
		if err != nil {
			return err
		}
		dir := loadDirectory(cmd.Context())
		matches, err := dir.FindByPattern(args[0])
		if err != nil {
			return err
		}
		if len(matches) == 0 && format == formatter.FormatTable {
			fmt.Fprintln(cmd.OutOrStdout(), "No matching stores.")
			return nil
		}
		out, err := formatter.Stores(matches, format)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
		return nil
	},
}

func init() {
	storesCmd.AddCommand(storesListCmd)
	storesCmd.AddCommand(storesFindCmd)
}
