// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the doc2txt CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wmelvin/libreoffice-doc-to-txt/internal/convert"
	"github.com/wmelvin/libreoffice-doc-to-txt/internal/history"
	"github.com/wmelvin/libreoffice-doc-to-txt/internal/office"
	"github.com/wmelvin/libreoffice-doc-to-txt/internal/report"
	"github.com/wmelvin/libreoffice-doc-to-txt/internal/wrap"
	"github.com/wmelvin/libreoffice-doc-to-txt/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command; running it performs the conversion.
var rootCmd = &cobra.Command{
	Use:   "doc2txt [paths...]",
	Short: "Convert office documents to plain text with LibreOffice",
	Long: `doc2txt runs LibreOffice to convert document files to text files.
It handles the .odt, .doc, and .docx formats. Each converted document
gains a '<name>-as.txt' text output and a width-limited '<stem>-wrap.txt'
companion, written next to the source.

Directories given as arguments are searched for supported documents;
backup files ('.bak') whose names contain '.odt' or '.doc' are converted
as well. Existing outputs are not replaced unless --overwrite is set.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}

	recurse, _ := cmd.Flags().GetBool("recurse")
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	dtTag, _ := cmd.Flags().GetBool("datetime-tag")

	opts := types.Options{
		Paths:       args,
		Recurse:     recurse,
		Overwrite:   overwrite,
		DateTimeTag: dtTag,
	}
	cfg := convertConfig()

	var runner office.Runner
	var err error
	if cfg.Binary != "" {
		runner, err = office.ForBinary(cfg.Binary)
	} else {
		runner, err = office.DetectRunner()
	}
	if err != nil {
		return err
	}

	var store *history.Store
	if cfg.HistoryDB != "" {
		store, err = history.Open(cfg.HistoryDB)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	p := &convert.Processor{
		Office:    runner,
		Opts:      opts,
		WrapWidth: cfg.WrapWidth,
		History:   store,
		Out:       os.Stdout,
	}

	if err := p.ProcessPaths(context.Background()); err != nil {
		return err
	}

	p.PrintWarnings(os.Stdout)

	if cfg.ReportPath != "" {
		result := p.Result()
		r := report.New(result.Converted, result.Skipped, result.Files, p.Warnings())
		if err := report.Write(cfg.ReportPath, r); err != nil {
			return err
		}
	}
	return nil
}

// convertConfig resolves run settings from flags, environment, and the
// optional config file, with flags taking precedence.
func convertConfig() types.ConvertConfig {
	cfg := types.ConvertConfig{
		Binary:     viper.GetString("binary"),
		WrapWidth:  viper.GetInt("wrap_width"),
		HistoryDB:  viper.GetString("history_db"),
		ReportPath: viper.GetString("report_path"),
	}
	if cfg.WrapWidth <= 0 {
		cfg.WrapWidth = wrap.DefaultWidth
	}
	return cfg
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./doc2txt.yaml or ~/.config/doc2txt/config.yaml)")

	rootCmd.Flags().BoolP("recurse", "r", false, "search for document files in sub-directories")
	rootCmd.Flags().BoolP("overwrite", "o", false, "overwrite existing output files")
	rootCmd.Flags().BoolP("datetime-tag", "d", false, "add a date_time tag, from the source document's last-modified timestamp, to output file names")

	rootCmd.Flags().String("binary", "", "office binary to run (default: auto-detect libreoffice or soffice)")
	rootCmd.Flags().Int("wrap-width", wrap.DefaultWidth, "column width for the wrapped companion file")
	rootCmd.Flags().String("history-db", "", "path to the SQLite conversion ledger (empty disables recording)")
	rootCmd.Flags().String("report", "", "write a YAML run report to this path")

	viper.BindPFlag("binary", rootCmd.Flags().Lookup("binary"))
	viper.BindPFlag("wrap_width", rootCmd.Flags().Lookup("wrap-width"))
	viper.BindPFlag("history_db", rootCmd.Flags().Lookup("history-db"))
	viper.BindPFlag("report_path", rootCmd.Flags().Lookup("report"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("doc2txt")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "doc2txt"))
		}
	}

	viper.SetEnvPrefix("DOC2TXT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
