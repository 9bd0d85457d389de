package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/tbhavar/gst-notifications-archive/internal/archive"
	"github.com/tbhavar/gst-notifications-archive/internal/fetch"
	"github.com/tbhavar/gst-notifications-archive/internal/parse"
	"github.com/tbhavar/gst-notifications-archive/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <pdf-url>",
	Short: "Show what the heuristics extract from a notification PDF",
	Long: `Parse downloads a notification PDF and prints the extracted date, subject,
and the filename the archive step would use, without writing anything.
Use it to decide whether a document needs manual date/subject overrides.
Fields the heuristics could not resolve come out empty.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	pdfURL := args[0]
	cfg := archiveConfig(cmd)
	client := &http.Client{Timeout: cfg.Timeout}

	data, err := fetch.Download(cmd.Context(), client, pdfURL, cfg.HTTPConfig)
	if err != nil {
		return fmt.Errorf("could not download PDF: %w", err)
	}
	text, err := fetch.FirstPageText(data)
	if err != nil {
		return fmt.Errorf("could not read PDF: %w", err)
	}

	details := parse.Extract(text)
	record := types.Notification{
		URL:     pdfURL,
		RawDate: details.RawDate,
		Subject: parse.Sanitize(details.Subject),
	}
	if record.RawDate != "" {
		if date, err := archive.NormalizeDate(record.RawDate); err == nil {
			record.Date = date
		}
	}
	if record.Date != "" && record.Subject != "" {
		record.Filename = archive.Filename(record.Date, record.Subject)
	}

	encoded, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling parse record: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(encoded))
	return nil
}
