// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wmelvin/libreoffice-doc-to-txt/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded conversions from the ledger",
	Long: `History lists past conversions recorded in the SQLite ledger,
newest first. Recording happens only when a ledger path is configured
via --history-db, the DOC2TXT_HISTORY_DB environment variable, or the
history_db config key.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("history-db")
	if dbPath == "" {
		dbPath = viper.GetString("history_db")
	}
	if dbPath == "" {
		return fmt.Errorf("no ledger configured: provide --history-db or set history_db in the config file")
	}

	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	source, _ := cmd.Flags().GetString("source")
	limit, _ := cmd.Flags().GetInt("limit")

	records, err := store.List(context.Background(), history.ListOptions{
		Source: source,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-10s  %-40s  %s\n",
		"Converted", "Status", "Source", "Output")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for _, rec := range records {
		src := rec.Source
		if len(src) > 40 {
			src = "..." + src[len(src)-37:]
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-10s  %-40s  %s\n",
			rec.ConvertedAt.Local().Format(time.DateTime),
			rec.Status, src, rec.Output)
	}

	fmt.Fprintf(os.Stdout, "\n%d records\n", len(records))
	return nil
}

func init() {
	historyCmd.Flags().String("history-db", "", "path to the SQLite conversion ledger")
	historyCmd.Flags().String("source", "", "filter by source path substring")
	historyCmd.Flags().Int("limit", 0, "maximum records to list (0 = default)")

	rootCmd.AddCommand(historyCmd)
}
