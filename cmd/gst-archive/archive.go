package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tbhavar/gst-notifications-archive/internal/archive"
	"github.com/tbhavar/gst-notifications-archive/internal/fetch"
	"github.com/tbhavar/gst-notifications-archive/internal/parse"
	"github.com/tbhavar/gst-notifications-archive/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultOutputDir = "notifications"
	defaultUserAgent = "gst-archive/0.1"
)

// archiveConfig resolves settings from flags, then the config file and
// environment, then built-in defaults.
func archiveConfig(cmd *cobra.Command) types.ArchiveConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = viper.GetString("output_dir")
	}
	if outputDir == "" {
		outputDir = defaultOutputDir
	}

	userAgent := viper.GetString("user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return types.ArchiveConfig{
		HTTPConfig: types.HTTPConfig{Timeout: timeout, UserAgent: userAgent},
		OutputDir:  outputDir,
	}
}

// runArchive is the primary operation: determine the date and subject for
// the notification at args[0], then re-save it under the standardized name.
func runArchive(cmd *cobra.Command, args []string) error {
	pdfURL := args[0]
	var manualDate, manualSubject string
	if len(args) > 1 {
		manualDate = args[1]
	}
	if len(args) > 2 {
		manualSubject = args[2]
	}

	cfg := archiveConfig(cmd)
	client := &http.Client{Timeout: cfg.Timeout}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Processing URL: %s\n", pdfURL)

	// Manual values are used as a pair; a lone date or subject still goes
	// through automatic parsing.
	var rawDate, subject string
	if manualDate != "" && manualSubject != "" {
		fmt.Fprintln(out, "Using manual date and subject; skipping PDF parsing.")
		rawDate = manualDate
		subject = manualSubject
	} else {
		data, err := fetch.Download(ctx, client, pdfURL, cfg.HTTPConfig)
		if err != nil {
			return fmt.Errorf("could not download PDF for parsing: %w", err)
		}
		text, err := fetch.FirstPageText(data)
		if err != nil {
			return fmt.Errorf("could not read PDF for parsing: %w", err)
		}
		fmt.Fprintln(out, "Attempting automatic PDF parsing...")
		details := parse.Extract(text)
		rawDate = details.RawDate
		subject = details.Subject
	}

	cleanSubject := parse.Sanitize(subject)
	if rawDate == "" || cleanSubject == "" {
		return fmt.Errorf("could not determine date or subject for renaming (date %q, subject %q)", rawDate, subject)
	}

	datePrefix, err := archive.NormalizeDate(rawDate)
	if err != nil {
		return err
	}

	filename := archive.Filename(datePrefix, cleanSubject)
	fmt.Fprintf(out, "Constructed filename: %s\n", filename)

	// Second pass: fetch the archive copy itself and make sure it really
	// is a PDF before filing it.
	data, err := fetch.Download(ctx, client, pdfURL, cfg.HTTPConfig)
	if err != nil {
		return fmt.Errorf("downloading archive copy: %w", err)
	}
	if err := fetch.Validate(data); err != nil {
		return err
	}

	path, err := archive.Save(cfg.OutputDir, filename, data)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "::notice file=%s::Successfully saved as %s\n", path, filename)
	fmt.Fprintf(out, "File saved successfully as %s\n", path)
	return nil
}
