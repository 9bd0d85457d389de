// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads notification PDFs and extracts first-page text.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/tbhavar/gst-notifications-archive/internal/httputil"
	"github.com/tbhavar/gst-notifications-archive/pkg/types"
)

// Download fetches the PDF bytes at url.
func Download(ctx context.Context, client *http.Client, url string, cfg types.HTTPConfig) ([]byte, error) {
	data, err := httputil.Get(ctx, client, url, cfg.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", url, err)
	}
	return data, nil
}

// Validate checks that data is a structurally sound PDF. It guards the
// archive pass against truncated downloads and HTML error pages served
// with a 200 status.
func Validate(data []byte) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.Validate(bytes.NewReader(data), conf); err != nil {
		return fmt.Errorf("validating downloaded PDF: %w", err)
	}
	return nil
}

// FirstPageText extracts the plain text of page 1, one physical line per
// output line. Encrypted or corrupted documents and documents without pages
// are errors; pages beyond the first are never read.
func FirstPageText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	if r.NumPage() < 1 {
		return "", fmt.Errorf("PDF has no pages")
	}

	page := r.Page(1)
	if page.V.IsNull() {
		return "", fmt.Errorf("PDF first page is empty")
	}
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", fmt.Errorf("extracting first-page text: %w", err)
	}

	var b strings.Builder
	for _, row := range rows {
		for i, word := range row.Content {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(word.S)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
