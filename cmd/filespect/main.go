package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "filespect [flags] path...",
		Short: "filespect - profile text, CSV and JSON files",
		Long: `filespect inspects files of unknown shape and writes a report per file:
per-column type classification and statistics for tabular data, lexical
statistics for text, and a structural survey for nested JSON. Directories
are scanned for supported files (.txt, .log, .md, .csv, .json).`,
		Version: "1.0.0",
		Args:    cobra.MinimumNArgs(1),
		RunE:    runAnalyze,
	}

	rootCmd.Flags().BoolP("recursive", "r", false, "Recurse into subdirectories")
	rootCmd.Flags().Int("top", 10, "Top N words/values in rankings")
	rootCmd.Flags().Bool("stopwords", false, "Ignore common words in text analysis")
	rootCmd.Flags().String("format", "md", "Report format (md, json)")
	rootCmd.Flags().StringP("out", "o", "reports", "Output directory for reports")
	rootCmd.Flags().String("delimiter", ",", "Field delimiter for delimited tables")
	rootCmd.Flags().Int("workers", 4, "Number of parallel profiling workers")
	rootCmd.Flags().Int64("max-bytes", 64*1024*1024, "Per-file input byte ceiling (0 = unlimited)")

	rootCmd.PersistentFlags().String("log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Use JSON log format")

	viper.BindPFlag("recursive", rootCmd.Flags().Lookup("recursive"))
	viper.BindPFlag("top", rootCmd.Flags().Lookup("top"))
	viper.BindPFlag("stopwords", rootCmd.Flags().Lookup("stopwords"))
	viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	viper.BindPFlag("out", rootCmd.Flags().Lookup("out"))
	viper.BindPFlag("delimiter", rootCmd.Flags().Lookup("delimiter"))
	viper.BindPFlag("workers", rootCmd.Flags().Lookup("workers"))
	viper.BindPFlag("max_bytes", rootCmd.Flags().Lookup("max-bytes"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
