// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gst-archive CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd archives a single notification PDF; parse and version ride
// alongside as subcommands.
var rootCmd = &cobra.Command{
	Use:   "gst-archive <pdf-url> [manual-date] [manual-subject]",
	Short: "Archive GST notification PDFs under standardized names",
	Long: `gst-archive downloads a GST notification PDF, extracts the notification
date and subject line from its first page, and re-saves the file as
YYYY-MM-DD_Subject.pdf under the output directory.

When the heuristics misfire on a document, pass the date and subject
manually as the second and third arguments; parsing is skipped only when
both are given.`,
	Args:         cobra.RangeArgs(1, 3),
	SilenceUsage: true,
	RunE:         runArchive,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gst-archive.yaml or ~/.config/gst-archive/config.yaml)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	rootCmd.PersistentFlags().String("output-dir", "", "directory for archived PDFs (default notifications)")
}

func initConfig() {
	// A .env file, when present, feeds the environment viper reads below.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gst-archive")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gst-archive"))
		}
	}

	viper.SetEnvPrefix("GST_ARCHIVE")
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
