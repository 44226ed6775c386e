package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/storeq/storeq/internal/data"
	"github.com/storeq/storeq/internal/data/file"
	"github.com/storeq/storeq/internal/data/sqlite"
	"github.com/storeq/storeq/internal/directory"
)

var (
	cfgStoresPath string
	cfgFormat     string
	cfgVerbose    bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "storeq",
	Short: "storeq resolves store names in analytics requests to store ids",
	Long: `storeq loads a static store directory (JSON, YAML, or SQLite) and
resolves an explicit store id, an explicit store name, or a free-text
question to a canonical store id. The result feeds the storeId.keyword
filter of downstream analytics queries; an unresolved request means
"query across all stores".`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config := zap.NewProductionConfig()
		if cfgVerbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if l, err := config.Build(); err == nil {
			logger = l
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgStoresPath, "stores", "", "Path to the store directory (default: stores.json or STOREQ_STORES)")
	rootCmd.PersistentFlags().StringVar(&cfgFormat, "format", "", "Output format: table, json, csv")
	rootCmd.PersistentFlags().BoolVarP(&cfgVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(storesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(importCmd)
}

func storesPath() string {
	if cfgStoresPath != "" {
		return cfgStoresPath
	}
	if p := os.Getenv("STOREQ_STORES"); p != "" {
		return p
	}
	return "stores.json"
}

func isSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

func openSource(path string) (data.Source, error) {
	if isSQLitePath(path) {
		return sqlite.Open(path)
	}
	return file.New(path), nil
}

// loadDirectory loads the configured store directory. A missing or malformed
// source degrades to an empty directory so resolution still runs, just
// without a store filter.
func loadDirectory(ctx context.Context) *directory.Directory {
	path := storesPath()
	src, err := openSource(path)
	if err == nil {
		var dir *directory.Directory
		dir, err = data.Load(ctx, src)
		_ = src.Close()
		if err == nil {
			logger.Debug("store directory loaded", zap.String("path", path), zap.Int("stores", dir.Len()))
			return dir
		}
	}
	var cfgErr *data.ConfigError
	if errors.As(err, &cfgErr) {
		logger.Warn("store directory unavailable, continuing without store filter", zap.Error(cfgErr))
	} else {
		logger.Warn("store directory unavailable, continuing without store filter", zap.String("path", path), zap.Error(err))
	}
	return directory.New(nil)
}
