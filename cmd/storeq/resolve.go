package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/storeq/storeq/internal/formatter"
	"github.com/storeq/storeq/internal/resolver"
)

var (
	flagStoreID    string
	flagStoreName  string
	flagStrictName bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [question...]",
	Short: "Resolve a store id, store name, or question to a store filter",
	Long: `Resolve applies the priority chain: --store-id is returned verbatim,
--store-name is matched against the directory (exact, alias, then partial),
and otherwise a candidate name is extracted from the question text.
An unresolved request exits 0 and prints "via: none" — that is a valid
outcome meaning no store filter applies.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formatter.ParseFormat(cfgFormat)
		if err != nil {
			return err
		}

		dir := loadDirectory(cmd.Context())
		r := resolver.New(dir, resolver.Options{StrictExplicitName: flagStrictName}, logger)
		res := r.Resolve(resolver.Request{
			StoreID:   flagStoreID,
			StoreName: flagStoreName,
			Question:  strings.Join(args, " "),
		})

		out, err := formatter.Resolution(res, format)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&flagStoreID, "store-id", "", "Explicit store id (passed through verbatim)")
	resolveCmd.Flags().StringVar(&flagStoreName, "store-name", "", "Explicit store name (resolved via the directory)")
	resolveCmd.Flags().BoolVar(&flagStrictName, "strict-name", false, "Do not fall back to the question when --store-name fails to resolve")
}
